package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"asset-sorter/core/loader"
	"asset-sorter/core/logger"
	"asset-sorter/core/middleware/auth"
	"asset-sorter/core/middleware/rayid"
	"asset-sorter/feature/health"
	"asset-sorter/feature/history"
	"asset-sorter/feature/sorter"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "asset-sorter/docs/swagger"
)

// @title Asset Sorter API
// @version 1.0
// @description API for drag-and-drop ordering of DAM folders.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the asset sorter server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		rt, err := newRuntime(ctx)
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer rt.close()
		logg := rt.logger
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager()
		mgr.Register(health.NewFeature(rt.sorter, rt.store, rt.cfg.Storage.Bucket, rt.db, logg))
		mgr.Register(sorter.NewFeature(rt.sorter, logg))
		mgr.Register(history.NewFeature(rt.history, logg))

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(logger.Requests(logg))

		// Only whitelisted host applications may embed the sorter
		if origins := rt.cfg.Server.Origins(); len(origins) > 0 {
			app.Use(cors.New(cors.Config{
				AllowOrigins:  strings.Join(origins, ","),
				AllowMethods:  "GET,POST,DELETE,OPTIONS",
				AllowHeaders:  "Origin,Content-Type,Accept,Authorization," + auth.HeaderName + "," + rayid.HeaderName,
				ExposeHeaders: rayid.HeaderName,
			}))
		}

		// Public endpoints
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", rt.metrics.Handler())

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey, Skip: []string{"/health"}}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		go func() {
			logg.Info("Starting server",
				zap.String("port", rt.cfg.Server.Port),
				zap.Bool("host_online", rt.sorter.Online()))
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}

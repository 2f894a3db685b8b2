// Package config loads the sorter configuration.
//
// Every section lives in the package that consumes it (server, assets,
// storage, database, logger) and declares its defaults in `default:"..."`
// tags. LoadConfig registers those defaults with viper, applies an optional
// .env file through godotenv, lets environment variables override any key
// (HOST_URL, SORTER_CONCURRENCY, ...) and validates the result. List values
// such as HOST_COLUMNS are comma separated.
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
package config

package health

import (
	"context"
	"errors"
	"testing"

	"asset-sorter/core/database"
	"asset-sorter/core/storage/mocks"
	"asset-sorter/feature/history"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeHost struct {
	err   error
	calls int
}

func (f *fakeHost) Ping(ctx context.Context) error {
	f.calls++
	return f.err
}

func setupHistoryDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, history.NewRepository(db).Migrate(context.Background()))
	return db
}

func TestService_RunAllHealthy(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "sorter").Return(true, nil)
	host := &fakeHost{}

	svc := NewService(host, client, "sorter", setupHistoryDB(t), zap.NewNop())
	report := svc.Run(context.Background())

	assert.Equal(t, StatusOK, report.Status)
	assert.Equal(t, "online", report.Host.Status)
	assert.Equal(t, "ok", report.Storage.Status)
	assert.Equal(t, "ok", report.Database.Status)
	assert.Equal(t, "reorder_events", report.Database.Schema.Table)
	assert.Equal(t, 1, host.calls)
}

func TestService_RunOptionalComponentsDisabled(t *testing.T) {
	svc := NewService(&fakeHost{}, nil, "sorter", nil, zap.NewNop())
	report := svc.Run(context.Background())

	assert.Equal(t, StatusOK, report.Status)
	assert.Equal(t, "disabled", report.Storage.Status)
	assert.Equal(t, "disabled", report.Database.Status)
}

func TestService_RunDegraded(t *testing.T) {
	t.Run("HostOffline", func(t *testing.T) {
		svc := NewService(&fakeHost{err: errors.New("timeout")}, nil, "sorter", nil, zap.NewNop())
		report := svc.Run(context.Background())
		assert.Equal(t, StatusDegraded, report.Status)
		assert.Equal(t, "timeout", report.Host.Error)
	})

	t.Run("BucketMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "sorter").Return(false, nil)
		svc := NewService(&fakeHost{}, client, "sorter", nil, zap.NewNop())
		assert.Equal(t, StatusDegraded, svc.Run(context.Background()).Status)
	})

	t.Run("TableMissing", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
		require.NoError(t, err)
		svc := NewService(&fakeHost{}, nil, "sorter", db, zap.NewNop())

		report := svc.Run(context.Background())
		assert.Equal(t, StatusDegraded, report.Status)
		assert.Equal(t, "error", report.Database.Status)
		assert.Contains(t, report.Database.Schema.MissingColumns, "item_id")
	})
}

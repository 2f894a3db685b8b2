package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"asset-sorter/core/reconcile"
	"asset-sorter/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFolderKey(t *testing.T) {
	key := FolderKey("/Demo/Summer 2026/")
	assert.True(t, strings.HasPrefix(key, "snapshots/Demo_Summer_2026-"))
	assert.True(t, strings.HasSuffix(key, "/"))

	assert.Equal(t, key, FolderKey(" /Demo/Summer 2026"), "normalized folders share a key")
	assert.NotEqual(t, FolderKey("/Demo/a b"), FolderKey("/Demo/a_b"))
	assert.True(t, strings.HasPrefix(FolderKey("/"), "snapshots/root-"))
}

func TestStore_Save(t *testing.T) {
	mockClient := new(mocks.Client)
	store := NewStore(mockClient, "test-bucket", 0, zap.NewNop())
	taken := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return taken }

	var uploaded []byte
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			data, err := io.ReadAll(args.Get(3).(io.Reader))
			require.NoError(t, err)
			uploaded = data
		}).
		Return(minio.UploadInfo{}, nil)

	snap, err := store.Save(context.Background(), "/Demo", []reconcile.Item{
		{ID: "b", Position: 1},
		{ID: "a", Position: 2},
	})
	require.NoError(t, err)

	assert.Equal(t, FolderKey("/Demo")+"1772366400000000000.json", snap.Key)
	assert.Equal(t, []string{"b", "a"}, snap.IDs())

	var stored Snapshot
	require.NoError(t, json.Unmarshal(uploaded, &stored))
	assert.Equal(t, "/Demo", stored.Folder)
	assert.Equal(t, []Entry{{ID: "b", Position: 1}, {ID: "a", Position: 2}}, stored.Items)
	assert.True(t, taken.Equal(stored.TakenAt))

	mockClient.AssertNotCalled(t, "ListObjects", mock.Anything, mock.Anything, mock.Anything)
}

func TestStore_SaveUploadError(t *testing.T) {
	mockClient := new(mocks.Client)
	store := NewStore(mockClient, "test-bucket", 0, zap.NewNop())
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, errors.New("access denied"))

	snap, err := store.Save(context.Background(), "/Demo", nil)
	assert.Nil(t, snap)
	assert.ErrorContains(t, err, "access denied")
}

func TestStore_SavePrunesOldSnapshots(t *testing.T) {
	mockClient := new(mocks.Client)
	store := NewStore(mockClient, "test-bucket", 2, zap.NewNop())
	prefix := FolderKey("/Demo")

	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", minio.ListObjectsOptions{Prefix: prefix, Recursive: true}).
		Return(mocks.Objects(
			minio.ObjectInfo{Key: prefix + "0000000000000000003.json"},
			minio.ObjectInfo{Key: prefix + "0000000000000000001.json"},
			minio.ObjectInfo{Key: prefix + "0000000000000000002.json"},
		))
	mockClient.On("RemoveObject", mock.Anything, "test-bucket", prefix+"0000000000000000001.json", mock.Anything).Return(nil)

	_, err := store.Save(context.Background(), "/Demo", nil)
	require.NoError(t, err)
	mockClient.AssertNumberOfCalls(t, "RemoveObject", 1)
}

func TestStore_Latest(t *testing.T) {
	mockClient := new(mocks.Client)
	store := NewStore(mockClient, "test-bucket", 0, zap.NewNop())
	prefix := FolderKey("/Demo")
	newest := prefix + "0000000000000000002.json"

	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return(mocks.Objects(
			minio.ObjectInfo{Key: newest},
			minio.ObjectInfo{Key: prefix + "0000000000000000001.json"},
			minio.ObjectInfo{Key: prefix + "notes.txt"},
		))
	body := `{"folder":"/Demo","items":[{"id":"c","position":1},{"id":"a","position":2}]}`
	mockClient.On("GetObject", mock.Anything, "test-bucket", newest, mock.Anything).
		Return(io.NopCloser(bytes.NewReader([]byte(body))), nil)

	snap, err := store.Latest(context.Background(), "/Demo")
	require.NoError(t, err)
	assert.Equal(t, newest, snap.Key)
	assert.Equal(t, []string{"c", "a"}, snap.IDs())
}

func TestStore_LatestNone(t *testing.T) {
	mockClient := new(mocks.Client)
	store := NewStore(mockClient, "test-bucket", 0, zap.NewNop())
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return(mocks.Objects())

	_, err := store.Latest(context.Background(), "/Demo")
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestStore_ListError(t *testing.T) {
	mockClient := new(mocks.Client)
	store := NewStore(mockClient, "test-bucket", 0, zap.NewNop())
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return(mocks.Objects(minio.ObjectInfo{Err: errors.New("bucket gone")}))

	_, err := store.Latest(context.Background(), "/Demo")
	assert.ErrorContains(t, err, "bucket gone")
}

func TestStore_GetCorrupt(t *testing.T) {
	mockClient := new(mocks.Client)
	store := NewStore(mockClient, "test-bucket", 0, zap.NewNop())
	mockClient.On("GetObject", mock.Anything, "test-bucket", "k", mock.Anything).
		Return(io.NopCloser(strings.NewReader("{")), nil)

	_, err := store.Get(context.Background(), "k")
	assert.ErrorContains(t, err, "failed to decode k")
}

func TestStore_Disabled(t *testing.T) {
	store := NewStore(nil, "test-bucket", 0, zap.NewNop())
	assert.False(t, store.Enabled())

	snap, err := store.Save(context.Background(), "/Demo", []reconcile.Item{{ID: "a"}})
	assert.NoError(t, err)
	assert.Nil(t, snap)

	keys, err := store.Keys(context.Background(), "/Demo")
	assert.NoError(t, err)
	assert.Empty(t, keys)

	_, err = store.Latest(context.Background(), "/Demo")
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

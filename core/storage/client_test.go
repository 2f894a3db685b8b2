package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"asset-sorter/core/storage"
	"asset-sorter/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "sorter",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EmptyEndpoint", func(t *testing.T) {
		_, err := storage.NewClient(storage.Config{})
		assert.Error(t, err)
	})
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "sorter").Return(true, nil)

		assert.NoError(t, storage.EnsureBucket(ctx, m, "sorter", ""))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "sorter").Return(false, nil)
		m.On("MakeBucket", mock.Anything, "sorter", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		assert.NoError(t, storage.EnsureBucket(ctx, m, "sorter", "eu-west-1"))
		m.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", mock.Anything, "sorter").Return(false, errors.New("denied"))

		err := storage.EnsureBucket(ctx, m, "sorter", "")
		assert.ErrorContains(t, err, "denied")
	})
}

func TestJSONObjects(t *testing.T) {
	ctx := context.Background()

	t.Run("PutJSON", func(t *testing.T) {
		m := new(mocks.Client)
		var body []byte
		m.On("PutObject", mock.Anything, "sorter", "a.json", mock.Anything, int64(7), minio.PutObjectOptions{ContentType: "application/json"}).
			Run(func(args mock.Arguments) {
				body, _ = io.ReadAll(args.Get(3).(io.Reader))
			}).
			Return(minio.UploadInfo{}, nil)

		require.NoError(t, storage.PutJSON(ctx, m, "sorter", "a.json", map[string]int{"a": 1}))
		assert.JSONEq(t, `{"a":1}`, string(body))
	})

	t.Run("GetJSON", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", mock.Anything, "sorter", "a.json", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(`{"a":2}`))), nil)

		var out map[string]int
		require.NoError(t, storage.GetJSON(ctx, m, "sorter", "a.json", &out))
		assert.Equal(t, map[string]int{"a": 2}, out)
	})

	t.Run("GetJSONCorrupt", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", mock.Anything, "sorter", "a.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader("{")), nil)

		var out map[string]int
		assert.ErrorContains(t, storage.GetJSON(ctx, m, "sorter", "a.json", &out), "failed to decode a.json")
	})
}

func TestListKeys(t *testing.T) {
	m := new(mocks.Client)
	m.On("ListObjects", mock.Anything, "sorter", minio.ListObjectsOptions{Prefix: "p/", Recursive: true}).
		Return(mocks.Objects(
			minio.ObjectInfo{Key: "p/2.json"},
			minio.ObjectInfo{Key: "p/readme.txt"},
			minio.ObjectInfo{Key: "p/1.json"},
		))

	keys, err := storage.ListKeys(context.Background(), m, "sorter", "p/", ".json")
	require.NoError(t, err)
	assert.Equal(t, []string{"p/1.json", "p/2.json"}, keys)
}

func TestRemoveKeys_StopsOnError(t *testing.T) {
	m := new(mocks.Client)
	m.On("RemoveObject", mock.Anything, "sorter", "a", mock.Anything).Return(nil)
	m.On("RemoveObject", mock.Anything, "sorter", "b", mock.Anything).Return(errors.New("locked"))

	err := storage.RemoveKeys(context.Background(), m, "sorter", []string{"a", "b", "c"})
	assert.ErrorContains(t, err, "locked")
	m.AssertNumberOfCalls(t, "RemoveObject", 2)
}

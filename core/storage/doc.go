// Package storage keeps the sorter's objects in an S3-compatible bucket.
//
// Client is the slice of the MinIO API the snapshot store and the health
// check call. mocks.Client implements it for tests.
//
// PutJSON, GetJSON, ListKeys and RemoveKeys operate on JSON documents
// addressed by key. Keys are listed recursively and returned sorted, so a
// zero-padded timestamp in the key orders objects by age.
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
//	    return err
//	}
//	keys, err := storage.ListKeys(ctx, client, bucket, "snapshots/", ".json")
package storage

// Package snapshot keeps the persisted order of a folder in object storage.
//
// Before the sorter pushes a changed set it saves the order the host holds
// at that moment under snapshots/<folder-key>/<unix-nanos>.json. Keys sort
// chronologically, so the newest snapshot is the last key of the listing.
// Restoring a folder reorders its session to the newest snapshot and
// reconciles, which undoes the last reorder even when it only partly
// succeeded.
//
// Snapshots are optional. A Store without a storage client skips writes and
// reports ErrNoSnapshot on reads.
package snapshot

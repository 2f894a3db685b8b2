package snapshot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"asset-sorter/core/assets"
	"asset-sorter/core/reconcile"
	"asset-sorter/core/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Prefix is the object prefix all snapshots live under.
const Prefix = "snapshots/"

// ErrNoSnapshot is returned when a folder has no stored snapshot.
var ErrNoSnapshot = errors.New("no snapshot for folder")

// Entry is one item of a snapshot.
type Entry struct {
	ID       string `json:"id"`
	Position int    `json:"position"`
}

// Snapshot is the persisted order of a folder at a point in time.
type Snapshot struct {
	Folder  string    `json:"folder"`
	TakenAt time.Time `json:"taken_at"`
	Items   []Entry   `json:"items"`
	// Key is the object key the snapshot was read from or written to.
	Key string `json:"key,omitempty"`
}

// IDs returns the item IDs in snapshot order.
func (s *Snapshot) IDs() []string {
	out := make([]string, len(s.Items))
	for i, e := range s.Items {
		out[i] = e.ID
	}
	return out
}

// Store reads and writes folder snapshots in object storage.
// A store without a client is disabled and every write is skipped.
type Store struct {
	client storage.Client
	bucket string
	keep   int
	logger *zap.Logger
	now    func() time.Time
}

// NewStore creates a snapshot store. keep bounds the number of snapshots
// retained per folder; zero or negative keeps all of them.
func NewStore(client storage.Client, bucket string, keep int, logger *zap.Logger) *Store {
	return &Store{
		client: client,
		bucket: bucket,
		keep:   keep,
		logger: logger,
		now:    time.Now,
	}
}

// Enabled reports whether a storage client is attached.
func (s *Store) Enabled() bool {
	return s != nil && s.client != nil
}

// FolderKey returns the object prefix of a folder's snapshots.
// The readable part is sanitized and suffixed with a name-based UUID fragment
// so folders that sanitize to the same slug stay apart.
func FolderKey(folder string) string {
	folder = assets.NormalizeFolder(folder)

	var b strings.Builder
	for _, r := range strings.Trim(folder, "/") {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	slug := b.String()
	if slug == "" {
		slug = "root"
	}
	id := uuid.NewSHA1(uuid.NameSpaceURL, []byte(folder)).String()
	return Prefix + slug + "-" + id[:8] + "/"
}

// Save writes items as the folder's newest snapshot and prunes old ones.
func (s *Store) Save(ctx context.Context, folder string, items []reconcile.Item) (*Snapshot, error) {
	if !s.Enabled() {
		return nil, nil
	}

	taken := s.now().UTC()
	snap := &Snapshot{
		Folder:  folder,
		TakenAt: taken,
		Items:   make([]Entry, len(items)),
		Key:     fmt.Sprintf("%s%019d.json", FolderKey(folder), taken.UnixNano()),
	}
	for i, it := range items {
		snap.Items[i] = Entry{ID: it.ID, Position: it.Position}
	}

	if err := storage.PutJSON(ctx, s.client, s.bucket, snap.Key, snap); err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}
	s.logger.Debug("Snapshot saved", zap.String("folder", folder), zap.String("key", snap.Key), zap.Int("items", len(items)))

	if err := s.prune(ctx, folder); err != nil {
		s.logger.Warn("Snapshot pruning failed", zap.String("folder", folder), zap.Error(err))
	}
	return snap, nil
}

// Keys returns the folder's snapshot keys, oldest first.
func (s *Store) Keys(ctx context.Context, folder string) ([]string, error) {
	if !s.Enabled() {
		return nil, nil
	}

	keys, err := storage.ListKeys(ctx, s.client, s.bucket, FolderKey(folder), ".json")
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return keys, nil
}

// Latest returns the folder's newest snapshot.
func (s *Store) Latest(ctx context.Context, folder string) (*Snapshot, error) {
	if !s.Enabled() {
		return nil, ErrNoSnapshot
	}

	keys, err := s.Keys(ctx, folder)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("%w %s", ErrNoSnapshot, folder)
	}
	return s.Get(ctx, keys[len(keys)-1])
}

// Get reads a snapshot by object key.
func (s *Store) Get(ctx context.Context, key string) (*Snapshot, error) {
	var snap Snapshot
	if err := storage.GetJSON(ctx, s.client, s.bucket, key, &snap); err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	snap.Key = key
	return &snap, nil
}

func (s *Store) prune(ctx context.Context, folder string) error {
	if s.keep <= 0 {
		return nil
	}
	keys, err := s.Keys(ctx, folder)
	if err != nil {
		return err
	}
	if len(keys) <= s.keep {
		return nil
	}
	return storage.RemoveKeys(ctx, s.client, s.bucket, keys[:len(keys)-s.keep])
}

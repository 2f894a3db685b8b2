package sorter

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"asset-sorter/core/assets"
	"asset-sorter/core/columns"
	"asset-sorter/core/metrics"
	"asset-sorter/core/reconcile"
	"asset-sorter/feature/history"
	"asset-sorter/feature/snapshot"

	"go.uber.org/zap"
)

var (
	// ErrNotOpen is returned when a folder has no open session.
	ErrNotOpen = errors.New("folder is not open")
	// ErrOffline is returned when the host cannot be reached.
	ErrOffline = errors.New("host is offline")
	// ErrUnknownStatus is returned for a status outside the configured list.
	ErrUnknownStatus = errors.New("unknown status")
)

// Deps holds the collaborators of a Service.
// Snapshots, History and Metrics are optional.
type Deps struct {
	Client    assets.Client
	Host      assets.Config
	Options   reconcile.Options
	Snapshots *snapshot.Store
	History   *history.Repository
	Metrics   *metrics.Metrics
	Logger    *zap.Logger
}

// Service drives folder sessions against the host.
type Service struct {
	client    assets.Client
	host      assets.Config
	opts      reconcile.Options
	registry  *reconcile.Registry
	snapshots *snapshot.Store
	history   *history.Repository
	metrics   *metrics.Metrics
	logger    *zap.Logger

	online atomic.Bool
}

// NewService creates a sorter service. The host is assumed online until
// SetOnline(false) or a failed Ping says otherwise.
func NewService(d Deps) (*Service, error) {
	resolver, err := columns.NewResolver(d.Host.Columns)
	if err != nil {
		return nil, err
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Snapshots == nil {
		d.Snapshots = snapshot.NewStore(nil, "", 0, d.Logger)
	}
	if d.History == nil {
		d.History = history.NewRepository(nil)
	}

	s := &Service{
		client:    d.Client,
		host:      d.Host,
		opts:      d.Options,
		registry:  reconcile.NewRegistry(NewHostAdapter(d.Client, d.Host, resolver)),
		snapshots: d.Snapshots,
		history:   d.History,
		metrics:   d.Metrics,
		logger:    d.Logger,
	}
	s.online.Store(true)
	return s, nil
}

// Online reports whether the host was reachable at the last check.
func (s *Service) Online() bool {
	return s.online.Load()
}

// SetOnline overrides the host reachability flag.
func (s *Service) SetOnline(online bool) {
	s.online.Store(online)
}

// Ping checks the host within the configured connect timeout and updates
// the reachability flag.
func (s *Service) Ping(ctx context.Context) error {
	timeout := time.Duration(s.host.ConnectTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := s.client.Ping(ctx); err != nil {
		if s.online.Swap(false) {
			s.logger.Warn("Host went offline", zap.Error(err))
		}
		return fmt.Errorf("%w: %v", ErrOffline, err)
	}
	if !s.online.Swap(true) {
		s.logger.Info("Host is back online")
	}
	return nil
}

// ensureOnline re-checks an offline host before doing host I/O.
func (s *Service) ensureOnline(ctx context.Context) error {
	if s.online.Load() {
		return nil
	}
	return s.Ping(ctx)
}

// Folders returns the folders with an open session.
func (s *Service) Folders() []string {
	return s.registry.Folders()
}

// Open loads folder on first use and returns its current list.
func (s *Service) Open(ctx context.Context, folder string) ([]reconcile.Item, error) {
	folder = assets.NormalizeFolder(folder)
	if err := s.ensureOnline(ctx); err != nil {
		return nil, err
	}
	sess, err := s.registry.Open(ctx, folder)
	if err != nil {
		s.fetchFailed(folder, err)
		return nil, err
	}
	return sess.Items(), nil
}

// Items returns the current list of an open folder.
func (s *Service) Items(folder string) ([]reconcile.Item, error) {
	sess, err := s.session(folder)
	if err != nil {
		return nil, err
	}
	return sess.Items(), nil
}

// Refresh refetches folder, discarding unsaved order.
func (s *Service) Refresh(ctx context.Context, folder string) ([]reconcile.Item, error) {
	folder = assets.NormalizeFolder(folder)
	if err := s.ensureOnline(ctx); err != nil {
		return nil, err
	}
	sess, err := s.registry.Refresh(ctx, folder)
	if err != nil {
		s.fetchFailed(folder, err)
		return nil, err
	}
	return sess.Items(), nil
}

// Close drops the session of folder.
func (s *Service) Close(folder string) error {
	if !s.registry.Discard(assets.NormalizeFolder(folder)) {
		return fmt.Errorf("%w: %s", ErrNotOpen, folder)
	}
	return nil
}

// Plan returns the changed set the next reconciliation would push.
func (s *Service) Plan(folder string) ([]reconcile.Change, error) {
	sess, err := s.session(folder)
	if err != nil {
		return nil, err
	}
	changes := sess.Pending()
	if changes == nil {
		changes = []reconcile.Change{}
	}
	return changes, nil
}

// Apply moves one item within folder without persisting anything.
func (s *Service) Apply(folder string, oldIndex, newIndex int) error {
	sess, err := s.session(folder)
	if err != nil {
		return err
	}
	if err := sess.ApplyMove(oldIndex, newIndex); err != nil {
		return err
	}
	s.countMove(oldIndex, newIndex)
	return nil
}

// Move moves one item within folder and persists the new order. The session
// stays claimed from the move until history is written, so a concurrent move
// on the same folder fails with reconcile.ErrInProgress.
// An invalid index leaves the list untouched and sends nothing.
func (s *Service) Move(ctx context.Context, folder string, oldIndex, newIndex int, rayID string) (*reconcile.Report, error) {
	if err := s.ensureOnline(ctx); err != nil {
		return nil, err
	}
	txn, err := s.begin(folder)
	if err != nil {
		return nil, err
	}
	defer txn.End()

	if err := txn.ApplyMove(oldIndex, newIndex); err != nil {
		return nil, err
	}
	s.countMove(oldIndex, newIndex)
	return s.reconcile(ctx, txn, rayID), nil
}

// Reconcile pushes whatever is still pending, typically failed updates.
func (s *Service) Reconcile(ctx context.Context, folder string, rayID string) (*reconcile.Report, error) {
	if _, err := s.session(folder); err != nil {
		return nil, err
	}
	if err := s.ensureOnline(ctx); err != nil {
		return nil, err
	}
	txn, err := s.begin(folder)
	if err != nil {
		return nil, err
	}
	defer txn.End()
	return s.reconcile(ctx, txn, rayID), nil
}

// Restore reorders folder to its newest snapshot and persists it.
func (s *Service) Restore(ctx context.Context, folder string, rayID string) (*reconcile.Report, error) {
	if _, err := s.session(folder); err != nil {
		return nil, err
	}
	if err := s.ensureOnline(ctx); err != nil {
		return nil, err
	}
	txn, err := s.begin(folder)
	if err != nil {
		return nil, err
	}
	defer txn.End()

	sess := txn.Session()
	snap, err := s.snapshots.Latest(ctx, sess.Folder())
	if err != nil {
		return nil, err
	}
	if err := txn.Reorder(snap.IDs()); err != nil {
		return nil, err
	}
	s.logger.Info("Restoring snapshot",
		zap.String("folder", sess.Folder()),
		zap.String("key", snap.Key),
		zap.Time("taken_at", snap.TakenAt))
	return s.reconcile(ctx, txn, rayID), nil
}

// SetStatus sets status on every asset below folder that does not have it yet.
func (s *Service) SetStatus(ctx context.Context, folder, status string) (int, error) {
	if !s.host.AllowsStatus(status) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	if err := s.ensureOnline(ctx); err != nil {
		return 0, err
	}

	folder = assets.NormalizeFolder(folder)
	n, err := s.client.UpdateBulk(ctx, assets.BulkStatusQuery(folder, status), map[string]any{"status": status})
	if err != nil {
		return 0, err
	}
	s.logger.Info("Status updated",
		zap.String("folder", folder),
		zap.String("status", status),
		zap.Int("processed", n))
	return n, nil
}

// begin claims the open session of folder.
func (s *Service) begin(folder string) (*reconcile.Txn, error) {
	sess, err := s.session(folder)
	if err != nil {
		return nil, err
	}
	return sess.Begin()
}

// countMove counts moves that changed the list.
func (s *Service) countMove(oldIndex, newIndex int) {
	if s.metrics != nil && oldIndex != newIndex {
		s.metrics.Moves.Inc()
	}
}

func (s *Service) session(folder string) (*reconcile.Session, error) {
	folder = assets.NormalizeFolder(folder)
	sess, ok := s.registry.Get(folder)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotOpen, folder)
	}
	return sess, nil
}

// reconcile snapshots the persisted order, pushes the changed set and
// records the outcome, all under txn. Snapshot and history failures are
// logged only.
func (s *Service) reconcile(ctx context.Context, txn *reconcile.Txn, rayID string) *reconcile.Report {
	sess := txn.Session()
	l := s.logger.With(zap.String("folder", sess.Folder()))
	if rayID != "" {
		l = l.With(zap.String("ray_id", rayID))
	}

	if len(sess.Pending()) > 0 {
		if _, err := s.snapshots.Save(ctx, sess.Folder(), sess.Persisted()); err != nil {
			l.Warn("Snapshot failed", zap.Error(err))
		}
	}

	start := time.Now()
	report := txn.Reconcile(ctx, s.registry.Adapter(), s.opts)
	elapsed := time.Since(start)

	if len(report.Changes) == 0 {
		return report
	}

	if s.metrics != nil {
		s.metrics.ObserveUpdates(report.Updated(), len(report.Failures), elapsed.Seconds())
	}
	if err := s.history.Record(context.WithoutCancel(ctx), report, rayID); err != nil {
		l.Warn("History record failed", zap.Error(err))
	}

	if report.OK() {
		l.Info("Order persisted", zap.Int("updated", report.Updated()), zap.Duration("took", elapsed))
	} else {
		l.Warn("Order partially persisted",
			zap.Int("updated", report.Updated()),
			zap.Strings("failed", report.FailedIDs()),
			zap.Duration("took", elapsed))
	}
	return report
}

func (s *Service) fetchFailed(folder string, err error) {
	if !errors.Is(err, reconcile.ErrFetchFailed) {
		return
	}
	if s.metrics != nil {
		s.metrics.FetchFailures.Inc()
	}
	s.logger.Error("Folder fetch failed", zap.String("folder", folder), zap.Error(err))
}

package sorter

import (
	"context"
	"fmt"
	"strings"

	"asset-sorter/core/assets"
	"asset-sorter/core/columns"
	"asset-sorter/core/reconcile"
	"asset-sorter/core/utils"
)

// HostAdapter implements reconcile.Adapter against the DAM host.
type HostAdapter struct {
	client  assets.Client
	cfg     assets.Config
	columns *columns.Resolver
}

// NewHostAdapter creates an adapter reading and writing cfg.PositionField.
func NewHostAdapter(client assets.Client, cfg assets.Config, resolver *columns.Resolver) *HostAdapter {
	return &HostAdapter{client: client, cfg: cfg, columns: resolver}
}

// Name returns the unique name of this adapter.
func (a *HostAdapter) Name() string {
	return "host"
}

// Fetch pages through the direct children of folder in host sort order.
// Assets without a usable position get 0, which the next reconciliation
// treats as unpersisted.
func (a *HostAdapter) Fetch(ctx context.Context, folder string) ([]reconcile.Item, error) {
	req := assets.SearchRequest{
		Query:    assets.FolderQuery(folder),
		Sort:     a.cfg.Sort,
		PageSize: a.cfg.PageSize,
		Fields:   a.fields(),
	}

	var items []reconcile.Item
	for {
		res, err := a.client.Search(ctx, req)
		if err != nil {
			return nil, err
		}
		for _, hit := range res.Hits {
			pos, _ := utils.ToPosition(hit.Metadata[a.cfg.PositionField])
			items = append(items, reconcile.Item{
				ID:            hit.ID,
				Position:      pos,
				DisplayFields: a.columns.Resolve(hit.ID, hit.Metadata),
			})
		}

		req.Start += len(res.Hits)
		if len(res.Hits) == 0 || req.Start >= res.TotalHits {
			break
		}
	}

	if items == nil {
		items = []reconcile.Item{}
	}
	return items, nil
}

// UpdatePosition writes the explicit sort order of one asset.
func (a *HostAdapter) UpdatePosition(ctx context.Context, itemID string, position int) error {
	if err := a.client.Update(ctx, itemID, map[string]any{a.cfg.PositionField: position}); err != nil {
		return fmt.Errorf("set %s=%d: %w", a.cfg.PositionField, position, err)
	}
	return nil
}

// fields returns the metadata to request, nil meaning all of it.
func (a *HostAdapter) fields() []string {
	cols := a.columns.Columns()
	if len(cols) == 0 {
		return nil
	}

	seen := map[string]struct{}{a.cfg.PositionField: {}}
	out := []string{a.cfg.PositionField}
	for _, col := range cols {
		// Nested paths are requested by their top-level field.
		col = strings.TrimPrefix(col, "metadata.")
		field, _, _ := strings.Cut(col, ".")
		if field == "id" || field == "metadata" {
			continue
		}
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		out = append(out, field)
	}
	return out
}

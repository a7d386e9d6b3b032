// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pdiddy/praxis-listings/internal/listing"
	"github.com/pdiddy/praxis-listings/internal/loader"
	"github.com/pdiddy/praxis-listings/pkg/types"
)

// snapshot is an immutable set of loaded listings. Requests read it
// without locking; reloads replace it whole.
type snapshot struct {
	lists    map[types.Kind][]types.ContentItem
	loadedAt time.Time
}

// Catalog holds the most recently loaded items for every listing kind.
type Catalog struct {
	loader  *loader.Loader
	sources []types.Source
	logger  *slog.Logger

	current atomic.Pointer[snapshot]
}

// NewCatalog creates an empty catalog over sources. Call Reload to load it.
func NewCatalog(l *loader.Loader, sources []types.Source, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Catalog{loader: l, sources: sources, logger: logger}
	c.current.Store(&snapshot{lists: map[types.Kind][]types.ContentItem{}})
	return c
}

// Reload loads every source and swaps in the result. Items from several
// sources of the same kind are concatenated in source order. On any error
// the previous snapshot stays in place.
func (c *Catalog) Reload(ctx context.Context) error {
	start := time.Now()
	lists := make(map[types.Kind][]types.ContentItem)
	for _, src := range c.sources {
		l, err := c.loader.Load(ctx, src)
		if err != nil {
			RecordReload(false)
			return fmt.Errorf("loading %s: %w", src.Location, err)
		}
		lists[l.Kind] = append(lists[l.Kind], l.Items...)
	}

	if err := c.Replace(lists); err != nil {
		RecordReload(false)
		return err
	}
	RecordReload(true)

	for kind, items := range lists {
		c.logger.Info("catalog loaded",
			slog.String("kind", string(kind)),
			slog.Int("items", len(items)),
			slog.Duration("duration", time.Since(start)))
	}
	return nil
}

// Replace validates lists and makes them the current snapshot. Each list
// must be acceptable to a listing engine: every ID present and unique.
func (c *Catalog) Replace(lists map[types.Kind][]types.ContentItem) error {
	for kind, items := range lists {
		if err := listing.New().Initialize(items); err != nil {
			return fmt.Errorf("%s listing: %w", kind, err)
		}
	}

	prev := c.current.Swap(&snapshot{lists: lists, loadedAt: time.Now()})
	for kind := range prev.lists {
		if _, ok := lists[kind]; !ok {
			CatalogItems.DeleteLabelValues(string(kind))
		}
	}
	for kind, items := range lists {
		CatalogItems.WithLabelValues(string(kind)).Set(float64(len(items)))
	}
	return nil
}

// Items returns the loaded items for kind. The slice is shared and must
// not be modified.
func (c *Catalog) Items(kind types.Kind) ([]types.ContentItem, bool) {
	items, ok := c.current.Load().lists[kind]
	return items, ok
}

// LoadedAt is when the current snapshot was installed, zero if never.
func (c *Catalog) LoadedAt() time.Time {
	return c.current.Load().loadedAt
}

// ScheduleReload reloads the catalog on the cron spec until ctx is done.
// The returned scheduler is already started.
func (c *Catalog) ScheduleReload(ctx context.Context, spec string, timeout time.Duration) (*cron.Cron, error) {
	sched := cron.New()
	_, err := sched.AddFunc(spec, func() {
		rctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		if err := c.Reload(rctx); err != nil {
			c.logger.Error("catalog reload failed", slog.Any("error", err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid refresh schedule %q: %w", spec, err)
	}
	sched.Start()

	go func() {
		<-ctx.Done()
		<-sched.Stop().Done()
	}()
	return sched, nil
}

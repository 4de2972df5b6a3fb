package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// ErrEmptySource is reported when a source returns no decodable records.
var ErrEmptySource = errors.New("data source returned no records")

// LoadInfo describes the snapshot currently served by a Store.
type LoadInfo struct {
	Source   string    `json:"source"`
	Records  int       `json:"records"`
	Skipped  int       `json:"skipped"`
	Fallback bool      `json:"fallback"`
	LoadedAt time.Time `json:"loadedAt"`
}

// snapshot is one immutable, fully indexed record list.
type snapshot struct {
	records []Record
	byID    map[string]int
	info    LoadInfo
}

// Store loads records once and serves them for the life of the process.
//
// Concurrent callers of Load that arrive before the first load completes
// share a single in-flight fetch. Once loaded, reads are lock-free.
type Store struct {
	source Source
	newID   func() string
	now     func() time.Time
	logger  *slog.Logger
	timeout time.Duration

	sf      singleflight.Group
	current atomic.Pointer[snapshot]
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDFunc overrides how record IDs are generated.
func WithIDFunc(fn func() string) StoreOption {
	return func(s *Store) { s.newID = fn }
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = l }
}

// WithFetchTimeout bounds each fetch from the source. Zero means no bound.
func WithFetchTimeout(d time.Duration) StoreOption {
	return func(s *Store) { s.timeout = d }
}

// NewStore creates a Store over src. Nothing is fetched until the first Load.
func NewStore(src Source, opts ...StoreOption) *Store {
	s := &Store{
		source: src,
		newID:  uuid.NewString,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the cached records, fetching them on the first call.
//
// The returned slice is shared by every caller and must not be modified.
// Load never reports a source failure: it falls back to the built-in sample
// set instead. The only error is ctx's, when the caller stops waiting.
func (s *Store) Load(ctx context.Context) ([]Record, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.records, nil
}

// Info describes the loaded snapshot. ok is false before the first load.
func (s *Store) Info() (info LoadInfo, ok bool) {
	snap := s.current.Load()
	if snap == nil {
		return LoadInfo{}, false
	}
	return snap.info, true
}

// snapshot returns the current snapshot, loading it if needed.
func (s *Store) snapshot(ctx context.Context) (*snapshot, error) {
	if snap := s.current.Load(); snap != nil {
		return snap, nil
	}

	ch := s.sf.DoChan("load", func() (interface{}, error) {
		// Double-check inside the flight: a previous flight may have finished
		// between our fast-path read and joining this one.
		if snap := s.current.Load(); snap != nil {
			return snap, nil
		}
		// The load outlives any single caller.
		snap := s.build(context.WithoutCancel(ctx))
		if !s.current.CompareAndSwap(nil, snap) {
			// A reload won the race; serve its newer records.
			snap = s.current.Load()
		}
		return snap, nil
	})

	select {
	case res := <-ch:
		return res.Val.(*snapshot), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// build fetches from the source, falling back to sample data on failure.
func (s *Store) build(ctx context.Context) *snapshot {
	batch, err := s.fetch(ctx)
	if err != nil {
		s.logger.Warn("using fallback data",
			"source", s.sourceName(),
			"error", err,
		)
		snap := s.index(Batch{Records: FallbackRecords()})
		snap.info.Source = "fallback"
		snap.info.Fallback = true
		snap.info.Skipped = batch.Skipped
		return snap
	}

	snap := s.index(batch)
	snap.info.Source = s.sourceName()
	s.logger.Info("records loaded",
		"source", snap.info.Source,
		"records", snap.info.Records,
		"skipped_lines", snap.info.Skipped,
	)
	return snap
}

func (s *Store) sourceName() string {
	if s.source == nil {
		return "none"
	}
	return s.source.Name()
}

// fetch runs the source and treats an empty result as a failure.
func (s *Store) fetch(ctx context.Context) (Batch, error) {
	if s.source == nil {
		return Batch{}, fmt.Errorf("data source unavailable: no source configured")
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	batch, err := s.source.Fetch(ctx)
	if err != nil {
		return batch, err
	}
	if len(batch.Records) == 0 {
		return batch, fmt.Errorf("%s: %w", s.source.Name(), ErrEmptySource)
	}
	return batch, nil
}

// index normalizes a batch into a snapshot with an ID lookup table.
func (s *Store) index(batch Batch) *snapshot {
	records := make([]Record, len(batch.Records))
	byID := make(map[string]int, len(batch.Records))
	for i, raw := range batch.Records {
		id := s.newID()
		records[i] = Normalize(raw, id)
		byID[id] = i
	}
	return &snapshot{
		records: records,
		byID:    byID,
		info: LoadInfo{
			Records:  len(records),
			Skipped:  batch.Skipped,
			LoadedAt: s.now(),
		},
	}
}

// Reload fetches the source again and swaps in the new records.
// On failure or an empty result the current records stay in place and the
// error is returned; fallback data is only used for the very first load.
func (s *Store) Reload(ctx context.Context) error {
	v, err, _ := s.sf.Do("reload", func() (interface{}, error) {
		batch, err := s.fetch(ctx)
		if err != nil {
			return nil, err
		}
		snap := s.index(batch)
		snap.info.Source = s.sourceName()
		return snap, nil
	})
	if err != nil {
		s.logger.Warn("reload failed, keeping current records",
			"source", s.sourceName(),
			"error", err,
		)
		return err
	}

	snap := v.(*snapshot)
	s.current.Store(snap)
	s.logger.Info("records reloaded",
		"source", snap.info.Source,
		"records", snap.info.Records,
		"skipped_lines", snap.info.Skipped,
	)
	return nil
}

// lookup returns the record with the given ID from the current snapshot.
func (s *Store) lookup(ctx context.Context, id string) (Record, bool, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return Record{}, false, err
	}
	i, ok := snap.byID[id]
	if !ok {
		return Record{}, false, nil
	}
	return snap.records[i], true, nil
}

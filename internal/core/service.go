package core

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel not-found errors. Check with errors.Is.
var (
	ErrRecordNotFound = errors.New("record not found")
	ErrTargetNotFound = errors.New("target not found")
)

// Service provides the query operations the presentation layer calls.
// Every method loads records on first use and then works on the cache.
type Service struct {
	store *Store
}

// NewService creates a new Service instance.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Store returns the underlying record store.
func (s *Service) Store() *Store {
	return s.store
}

// Records returns every loaded record.
func (s *Service) Records(ctx context.Context) ([]Record, error) {
	return s.store.Load(ctx)
}

// Search returns the target groups matching query. See [Search].
func (s *Service) Search(ctx context.Context, query string) ([]TargetGroup, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Search(records, query), nil
}

// TargetGroup returns all records for an exact target name.
// Returns ErrTargetNotFound when no record has that target.
func (s *Service) TargetGroup(ctx context.Context, name string) (TargetGroup, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return TargetGroup{}, err
	}
	g, ok := BuildTargetGroup(records, name)
	if !ok {
		return TargetGroup{}, fmt.Errorf("%w: %q", ErrTargetNotFound, name)
	}
	return g, nil
}

// RecordByID returns the record with the loader-assigned id.
// Returns ErrRecordNotFound for unknown ids.
func (s *Service) RecordByID(ctx context.Context, id string) (Record, error) {
	r, ok, err := s.store.lookup(ctx, id)
	if err != nil {
		return Record{}, err
	}
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrRecordNotFound, id)
	}
	return r, nil
}

// Stats summarizes the loaded dataset.
func (s *Service) Stats(ctx context.Context) (DatasetStats, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return DatasetStats{}, err
	}
	return Summarize(records), nil
}

// Suggest returns target names close to query. See [Suggest].
func (s *Service) Suggest(ctx context.Context, query string, limit int) ([]string, error) {
	records, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Suggest(records, query, limit), nil
}

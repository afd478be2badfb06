package app

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/singleflight"

	"artsdash/domain/core"
	"artsdash/domain/survey"
	"artsdash/internal/errors"
	"artsdash/ports"
)

// LoaderService owns the load pipeline: pick a source, fetch, validate the
// schema, cache the outcome. Every render goes through Load; only the first
// call per locator touches the network.
type LoaderService struct {
	sources []ports.DatasetSource
	cache   ports.DatasetCache
	schema  survey.Schema
	group   singleflight.Group
}

// NewLoaderService creates a loader over the given cache and sources.
// Sources are tried in order; the first one that supports the locator wins.
func NewLoaderService(cache ports.DatasetCache, sources ...ports.DatasetSource) *LoaderService {
	return &LoaderService{
		sources: sources,
		cache:   cache,
		schema:  survey.DefaultSchema(),
	}
}

// Load returns the dataset for the locator, fetching at most once per
// process lifetime. Failures are cached too: a locator that failed once
// keeps failing without another fetch.
func (s *LoaderService) Load(ctx context.Context, locator string) (*survey.Table, error) {
	key := core.NewLocatorKey(locator)

	if table, err, ok := s.cache.Get(key); ok {
		return table, err
	}

	// Concurrent first loads of the same locator share one fetch. The fetch
	// is detached from the initiating request's context: a caller that
	// disconnects mid-load must not poison the forever-cache with its own
	// cancellation. The source's fetch timeout still bounds the request.
	fetchCtx := context.WithoutCancel(ctx)
	result, _, _ := s.group.Do(key.String(), func() (interface{}, error) {
		if table, err, ok := s.cache.Get(key); ok {
			return loadOutcome{table: table, err: err}, nil
		}

		table, err := s.fetchAndValidate(fetchCtx, locator)
		if err != nil {
			log.Printf("[Loader] Load failed for %s: %v", locator, err)
		}
		s.cache.Put(key, table, err)
		return loadOutcome{table: table, err: err}, nil
	})

	outcome := result.(loadOutcome)
	return outcome.table, outcome.err
}

type loadOutcome struct {
	table *survey.Table
	err   error
}

func (s *LoaderService) fetchAndValidate(ctx context.Context, locator string) (*survey.Table, error) {
	source := s.pickSource(locator)
	if source == nil {
		return nil, errors.FetchFailed(locator, fmt.Errorf("no data source supports this locator"))
	}

	table, err := source.Fetch(ctx, locator)
	if err != nil {
		return nil, err
	}

	if err := s.schema.Validate(table); err != nil {
		return nil, err
	}

	log.Printf("[Loader] Dataset %s ready (snapshot %s, %d rows)", locator, table.SnapshotID, len(table.Rows))
	return table, nil
}

func (s *LoaderService) pickSource(locator string) ports.DatasetSource {
	for _, src := range s.sources {
		if src.Supports(locator) {
			return src
		}
	}
	return nil
}

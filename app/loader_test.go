package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"artsdash/adapters/cache"
	"artsdash/adapters/httpcsv"
	"artsdash/internal/errors"
	"artsdash/internal/testkit"
)

func newCountingServer(t *testing.T, status int, body string) (*httptest.Server, *int64) {
	t.Helper()

	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&hits, 1)
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, &hits
}

func newTestLoader() *LoaderService {
	return NewLoaderService(cache.NewMemoryCache(), httpcsv.NewReader(5*time.Second))
}

func TestLoadCachesSuccess(t *testing.T) {
	server, hits := newCountingServer(t, http.StatusOK, testkit.SampleCSV())
	loader := newTestLoader()

	first, err := loader.Load(context.Background(), server.URL)
	assert.NoError(t, err)
	assert.Len(t, first.Rows, 3)

	second, err := loader.Load(context.Background(), server.URL)
	assert.NoError(t, err)
	// Identical result object, no second fetch
	assert.Same(t, first, second)
	assert.Equal(t, int64(1), atomic.LoadInt64(hits))
}

func TestLoadCachesFailure(t *testing.T) {
	server, hits := newCountingServer(t, http.StatusInternalServerError, "boom")
	loader := newTestLoader()

	table, err := loader.Load(context.Background(), server.URL)
	assert.Nil(t, table)
	assert.Equal(t, errors.CodeFetchFailed, errors.GetCode(err))

	// The failure is sticky: no refetch for the same locator
	_, err = loader.Load(context.Background(), server.URL)
	assert.Error(t, err)
	assert.Equal(t, int64(1), atomic.LoadInt64(hits))
}

func TestLoadSurvivesCallerCancellation(t *testing.T) {
	server, hits := newCountingServer(t, http.StatusOK, testkit.SampleCSV())
	loader := newTestLoader()

	// A caller that disconnects during the very first load must not leave a
	// sticky failure behind for a healthy locator
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	first, err := loader.Load(cancelled, server.URL)
	assert.NoError(t, err)
	assert.NotNil(t, first)

	second, err := loader.Load(context.Background(), server.URL)
	assert.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, int64(1), atomic.LoadInt64(hits))
}

func TestLoadUnreachableLocator(t *testing.T) {
	loader := newTestLoader()

	table, err := loader.Load(context.Background(), "http://127.0.0.1:1/unreachable.csv")
	assert.Nil(t, table)
	assert.Equal(t, errors.CodeFetchFailed, errors.GetCode(err))
}

func TestLoadRejectsUnsupportedLocator(t *testing.T) {
	loader := newTestLoader()

	table, err := loader.Load(context.Background(), "ftp://example.com/data.csv")
	assert.Nil(t, table)
	assert.Equal(t, errors.CodeFetchFailed, errors.GetCode(err))
}

func TestLoadValidatesSchema(t *testing.T) {
	server, _ := newCountingServer(t, http.StatusOK, "Gender,Score\nF,3\n")
	loader := newTestLoader()

	table, err := loader.Load(context.Background(), server.URL)
	assert.Nil(t, table)
	assert.Equal(t, errors.CodeSchemaInvalid, errors.GetCode(err))
}

func TestLoadDistinctLocatorsFetchSeparately(t *testing.T) {
	serverA, hitsA := newCountingServer(t, http.StatusOK, testkit.SampleCSV())
	serverB, hitsB := newCountingServer(t, http.StatusOK, testkit.SampleCSV())
	loader := newTestLoader()

	_, err := loader.Load(context.Background(), serverA.URL)
	assert.NoError(t, err)
	_, err = loader.Load(context.Background(), serverB.URL)
	assert.NoError(t, err)

	assert.Equal(t, int64(1), atomic.LoadInt64(hitsA))
	assert.Equal(t, int64(1), atomic.LoadInt64(hitsB))
}

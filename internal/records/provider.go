package records

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrDataUnavailable marks a failed dataset load. The request layer maps it
// to a 503; there is no alternate data source to retry against.
var ErrDataUnavailable = errors.New("dataset unavailable")

// Provider memoizes a single dataset load. Concurrent first callers share
// one load; afterwards the dataset is read-only and lock-free to share.
type Provider struct {
	loader Loader

	once sync.Once
	ds   atomic.Pointer[Dataset]
	err  error
}

// NewProvider wraps a loader with load-once semantics.
func NewProvider(loader Loader) *Provider {
	return &Provider{loader: loader}
}

// Dataset returns the loaded collections, loading them on first call.
// A failed load is sticky for the process lifetime, matching the
// full-reload-only lifecycle of the source files.
func (p *Provider) Dataset() (*Dataset, error) {
	p.once.Do(func() {
		ds, err := p.loader.Load()
		if err != nil {
			p.err = fmt.Errorf("%w: %v", ErrDataUnavailable, err)
			return
		}
		p.ds.Store(ds)
	})
	return p.ds.Load(), p.err
}

// Loaded reports whether a dataset is resident, without triggering a load.
// Health checks call this concurrently with the first load, so the pointer
// read is atomic.
func (p *Provider) Loaded() bool {
	return p.ds.Load() != nil
}

package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mmrzaf/dataz/internal/dataset"
	"github.com/mmrzaf/dataz/internal/domain"
	"github.com/mmrzaf/dataz/internal/kvtd"
	"github.com/mmrzaf/dataz/internal/timeutil"
	"github.com/mmrzaf/dataz/internal/tpcc"
)

// Factory builds a Set from a scenario's parameters.
type Factory func(sc *domain.Scenario) (dataset.Set, error)

type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	now       func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		now:       time.Now,
	}
}

func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

func (r *Registry) Get(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("set not found: %s", name)
	}
	return f, nil
}

func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build returns the Set named by sc.Set, configured from sc.
func (r *Registry) Build(sc *domain.Scenario) (dataset.Set, error) {
	if sc == nil {
		return nil, errors.New("scenario is required")
	}
	f, err := r.Get(sc.Set)
	if err != nil {
		return nil, err
	}
	return f(sc)
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(kvtd.Name, func(sc *domain.Scenario) (dataset.Set, error) {
		cfg, err := KvtdConfig(sc)
		if err != nil {
			return nil, err
		}
		return kvtd.New(cfg), nil
	})
	r.Register(tpcc.Name, func(sc *domain.Scenario) (dataset.Set, error) {
		cfg, err := TpccConfig(sc, r.now())
		if err != nil {
			return nil, err
		}
		return tpcc.New(cfg), nil
	})
	return r
}

func KvtdConfig(sc *domain.Scenario) (kvtd.Config, error) {
	if sc.Kvtd == nil {
		return kvtd.Config{}, errors.New("kvtd params are required")
	}
	return kvtd.Config{
		ValBytes:        sc.Kvtd.ValBytes,
		NumRows:         sc.Kvtd.NumRows,
		MaxRowsPerBatch: sc.Kvtd.MaxRowsPerBatch,
	}, nil
}

// TpccConfig resolves the scenario's timestamp against now. An empty value
// selects tpcc.Feb182023At1PM so runs are reproducible by default.
func TpccConfig(sc *domain.Scenario, now time.Time) (tpcc.Config, error) {
	if sc.Tpcc == nil {
		return tpcc.Config{}, errors.New("tpcc params are required")
	}
	cfg := tpcc.Config{Warehouses: sc.Tpcc.Warehouses, Now: tpcc.Feb182023At1PM}
	if sc.Tpcc.Now != "" {
		dt, err := timeutil.ParseDateTime(sc.Tpcc.Now, now)
		if err != nil {
			return tpcc.Config{}, fmt.Errorf("tpcc.now: %w", err)
		}
		cfg.Now = dt
	}
	return cfg, nil
}

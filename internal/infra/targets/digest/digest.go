// Package digest is a target that hashes every relation it receives.
package digest

import (
	"sync"

	"github.com/mmrzaf/dataz/internal/dataset"
	"github.com/mmrzaf/dataz/internal/exec"
	"github.com/mmrzaf/dataz/internal/hashing"
)

// Result is the digest of one relation.
type Result struct {
	Relation string `json:"relation" yaml:"relation"`
	Rows     int64  `json:"rows" yaml:"rows"`
	Digest   string `json:"digest" yaml:"digest"`
}

type DigestTarget struct {
	mu      sync.Mutex
	results []Result
}

func NewDigestTarget() *DigestTarget {
	return &DigestTarget{}
}

func (t *DigestTarget) Connect() error { return nil }

func (t *DigestTarget) Close() error { return nil }

func (t *DigestTarget) Open(name string, _ dataset.Schema, _ string) (exec.BatchWriter, error) {
	return &writer{t: t, name: name, d: hashing.NewDigest()}, nil
}

// Results returns the digests of all relations in the order they finished.
func (t *DigestTarget) Results() []Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Result(nil), t.results...)
}

type writer struct {
	t    *DigestTarget
	name string
	d    *hashing.Digest
}

func (w *writer) WriteBatch(b dataset.Batch) error {
	w.d.WriteBatch(b)
	return nil
}

func (w *writer) Close() error {
	w.t.mu.Lock()
	w.t.results = append(w.t.results, Result{Relation: w.name, Rows: w.d.Rows(), Digest: w.d.Sum()})
	w.t.mu.Unlock()
	return nil
}

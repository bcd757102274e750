package eval

import (
	"errors"
	"strconv"

	"github.com/patrickmn/go-cache"
	"gonum.org/v1/gonum/mat"

	"github.com/ahmadiphy/ffx/basis"
	"github.com/ahmadiphy/ffx/internal/options"
)

var (
	// ErrNilBase is returned when Simulate is called with a nil base.
	ErrNilBase = errors.New("eval: nil base")
	// ErrNilMatrix is returned when the evaluator is created without a
	// dataset.
	ErrNilMatrix = errors.New("eval: nil input matrix")
)

// Evaluator simulates basis functions over one fixed dataset, memoizing
// results by basis fingerprint.
type Evaluator struct {
	x     mat.Matrix
	cache *cache.Cache
}

// NewEvaluator creates an evaluator bound to the dataset x.
func NewEvaluator(x mat.Matrix, opts ...Option) (*Evaluator, error) {
	if x == nil {
		return nil, ErrNilMatrix
	}

	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	return &Evaluator{
		x:     x,
		cache: cache.New(cfg.ttl, cfg.cleanup),
	}, nil
}

// Rows returns the number of samples in the bound dataset, which is also
// the length of every vector Simulate returns.
func (e *Evaluator) Rows() int {
	rows, _ := e.x.Dims()
	return rows
}

// Simulate returns b evaluated over the bound dataset, serving repeated
// calls for equal-fingerprint bases from the cache.
//
// The returned slice is shared with the cache and must not be mutated.
func (e *Evaluator) Simulate(b basis.Base) ([]float64, error) {
	if b == nil {
		return nil, ErrNilBase
	}

	key := strconv.FormatUint(basis.Fingerprint(b), 16)
	if v, ok := e.cache.Get(key); ok {
		return v.([]float64), nil
	}

	y := b.Simulate(e.x)
	e.cache.Set(key, y, cache.DefaultExpiration)

	return y, nil
}

// Flush drops every cached simulation vector.
func (e *Evaluator) Flush() {
	e.cache.Flush()
}

// CachedCount returns the number of cached vectors, including entries that
// have expired but have not been swept yet.
func (e *Evaluator) CachedCount() int {
	return e.cache.ItemCount()
}

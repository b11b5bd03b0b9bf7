package sample

import (
	"database/sql"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"datarange/bounds"
	"datarange/sample/options"
)

var _ SampleRepo = (*MemorySampleRepo)(nil)

// MemorySampleRepo keeps samples in insertion order
type MemorySampleRepo struct {
	mu      sync.RWMutex
	samples []*Sample
}

func NewMemoryRepo() *MemorySampleRepo {
	return &MemorySampleRepo{}
}

func (r *MemorySampleRepo) Create(sample *Sample) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sample.ID == "" {
		sample.ID = uuid.New().String()
	}
	if sample.CreatedAt.IsZero() {
		sample.CreatedAt = time.Now().UTC()
	}

	stored := *sample
	r.samples = append(r.samples, &stored)
	return nil
}

func (r *MemorySampleRepo) FindByID(id string) (*Sample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, each := range r.samples {
		if each.ID == id {
			found := *each
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r *MemorySampleRepo) Find(sampleOptions ...*options.SampleOptions) ([]*Sample, error) {
	var opt *options.SampleOptions
	if len(sampleOptions) > 0 {
		opt = sampleOptions[0]
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*Sample
	for _, each := range r.samples {
		ok, err := matches(each, opt)
		if err != nil {
			return nil, err
		}
		if ok {
			found := *each
			result = append(result, &found)
		}
	}
	return result, nil
}

func (r *MemorySampleRepo) Extent(sampleOptions ...*options.SampleOptions) (bounds.Opt, error) {
	samples, err := r.Find(sampleOptions...)
	if err != nil {
		return bounds.None(), err
	}
	return extentOf(samples), nil
}

func matches(s *Sample, opt *options.SampleOptions) (bool, error) {
	if opt == nil {
		return true, nil
	}

	if len(opt.IDs) > 0 && !containsString(opt.IDs, s.ID) {
		return false, nil
	}
	if len(opt.SeriesIDs) > 0 && !containsUUID(opt.SeriesIDs, s.SeriesID) {
		return false, nil
	}

	if opt.Value != nil {
		ok, err := valueInRange(s.Value, opt.Value)
		if err != nil || !ok {
			return false, err
		}
	}

	if opt.Timestamp != nil {
		if from, ok := opt.Timestamp.From(); ok && s.CreatedAt.Before(from.(time.Time)) {
			return false, nil
		}
		if to, ok := opt.Timestamp.To(); ok && s.CreatedAt.After(to.(time.Time)) {
			return false, nil
		}
	}

	return true, nil
}

func valueInRange(v decimal.Decimal, r options.Range) (bool, error) {
	if from, ok := r.From(); ok {
		low, err := toDecimal(from)
		if err != nil {
			return false, err
		}
		if v.LessThan(low) {
			return false, nil
		}
	}
	if to, ok := r.To(); ok {
		high, err := toDecimal(to)
		if err != nil {
			return false, err
		}
		if v.GreaterThan(high) {
			return false, nil
		}
	}
	return true, nil
}

func toDecimal(bound interface{}) (decimal.Decimal, error) {
	switch b := bound.(type) {
	case decimal.Decimal:
		return b, nil
	case string:
		return decimal.NewFromString(b)
	case float64:
		if err := checkBound(b); err != nil {
			return decimal.Decimal{}, err
		}
		return decimal.NewFromFloat(b), nil
	case int:
		return decimal.NewFromInt(int64(b)), nil
	default:
		return decimal.Decimal{}, errors.Errorf("unsupported bound type %T", bound)
	}
}

func containsString(list []string, v string) bool {
	for _, each := range list {
		if each == v {
			return true
		}
	}
	return false
}

func containsUUID(list []uuid.UUID, v uuid.UUID) bool {
	for _, each := range list {
		if each == v {
			return true
		}
	}
	return false
}

package sample

import (
	"fmt"
	"math"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"datarange/bounds"
	"datarange/sample/options"
)

// Data store abstraction for querying samples
type SampleRepo interface {
	Create(*Sample) error
	FindByID(id string) (*Sample, error)
	Find(opts ...*options.SampleOptions) ([]*Sample, error)
	// Extent returns the smallest range holding the values of every matched sample
	Extent(opts ...*options.SampleOptions) (bounds.Opt, error)
}

var _ SampleRepo = (*PostgresSampleRepo)(nil)

type PostgresSampleRepo struct {
	db *sqlx.DB
}

func NewPostgresRepo(db *sqlx.DB) (*PostgresSampleRepo, error) {
	r := &PostgresSampleRepo{db: db}

	return r, nil
}

func (r *PostgresSampleRepo) Create(sample *Sample) error {
	rows, err := r.db.NamedQuery(
		`INSERT INTO sample (series_id, value) VALUES (:series_id, :value) RETURNING id, created_at`,
		sample,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&sample.ID, &sample.CreatedAt); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *PostgresSampleRepo) FindByID(id string) (*Sample, error) {
	var result Sample
	err := r.db.Get(&result, "SELECT * FROM sample WHERE id = $1", id)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Executes a Find operation and returns a list of Samples
// The `sampleOptions` can be used to specify options for the operation
func (r *PostgresSampleRepo) Find(sampleOptions ...*options.SampleOptions) ([]*Sample, error) {
	var opt *options.SampleOptions
	if len(sampleOptions) > 0 {
		opt = sampleOptions[0]
	}

	query, args, err := buildQuery(opt)
	if err != nil {
		return nil, err
	}

	var result []*Sample
	err = r.db.Select(&result, r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PostgresSampleRepo) Extent(sampleOptions ...*options.SampleOptions) (bounds.Opt, error) {
	samples, err := r.Find(sampleOptions...)
	if err != nil {
		return bounds.None(), err
	}
	return extentOf(samples), nil
}

// buildQuery renders the select statement for opt using "?" bind variables
func buildQuery(opt *options.SampleOptions) (string, []interface{}, error) {
	query := "SELECT * FROM sample"
	const order = " ORDER BY created_at, id"

	if opt == nil {
		return query + order, nil, nil
	}

	var where []string
	namedParams := make(map[string]interface{})

	updateQueryParams := func(stmt, key string, value interface{}) {
		where = append(where, stmt)
		namedParams[key] = value
	}

	addRange := func(columnName string, v options.Range) error {
		if from, ok := v.From(); ok {
			if err := checkBound(from); err != nil {
				return errors.Wrapf(err, "lower %s bound", columnName)
			}
			key := columnName + "_from"
			updateQueryParams(fmt.Sprintf("%s >= :%s", columnName, key), key, from)
		}
		if to, ok := v.To(); ok {
			if err := checkBound(to); err != nil {
				return errors.Wrapf(err, "upper %s bound", columnName)
			}
			key := columnName + "_to"
			updateQueryParams(fmt.Sprintf("%s <= :%s", columnName, key), key, to)
		}
		return nil
	}

	if len(opt.IDs) > 0 {
		updateQueryParams("id IN (:id)", "id", opt.IDs)
	}
	if len(opt.SeriesIDs) > 0 {
		updateQueryParams("series_id IN (:series_id)", "series_id", opt.SeriesIDs)
	}
	if opt.Value != nil {
		if err := addRange("value", opt.Value); err != nil {
			return "", nil, err
		}
	}
	if opt.Timestamp != nil {
		if err := addRange("created_at", opt.Timestamp); err != nil {
			return "", nil, err
		}
	}

	if len(where) == 0 {
		return query + order, nil, nil
	}

	query = fmt.Sprintf("%s WHERE %s%s",
		query,
		strings.Join(where, " AND "),
		order,
	)

	query, args, err := sqlx.Named(query, namedParams)
	if err != nil {
		return "", nil, err
	}
	return sqlx.In(query, args...)
}

// checkBound rejects float bounds that no numeric column can compare against
func checkBound(bound interface{}) error {
	if f, ok := bound.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return errors.Wrapf(bounds.ErrInvalidRange, "bound %v is not a finite number", f)
	}
	return nil
}

package sample

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"datarange/bounds"
)

// Sample represents a single numeric observation in a series
type Sample struct {
	ID        string          `db:"id"`
	SeriesID  uuid.UUID       `db:"series_id"`
	Value     decimal.Decimal `db:"value"`
	CreatedAt time.Time       `db:"created_at"`
}

// extentOf returns the smallest range holding every sample value
func extentOf(samples []*Sample) bounds.Opt {
	extent := bounds.None()
	for _, each := range samples {
		v, _ := each.Value.Float64()
		extent = bounds.Some(bounds.ExpandToInclude(extent, v))
	}
	return extent
}

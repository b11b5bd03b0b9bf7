package options

import "github.com/google/uuid"

// SampleOptions represent options that can be used to configure a Find operation
type SampleOptions struct {
	// filters samples that match any id in this slice
	IDs []string
	// filters samples that belong to any of these series
	SeriesIDs []uuid.UUID
	// filters samples that have a value in this range (inclusive)
	Value Range
	// filters samples that were created in this range (inclusive)
	Timestamp *TimeRange
}

func NewSampleOptions() *SampleOptions {
	return &SampleOptions{}
}

func (this *SampleOptions) SetIDs(v ...string) *SampleOptions {
	this.IDs = v
	return this
}

func (this *SampleOptions) SetSeriesIDs(v ...uuid.UUID) *SampleOptions {
	this.SeriesIDs = v
	return this
}

func (this *SampleOptions) SetValueRange(v Range) *SampleOptions {
	this.Value = v
	return this
}

func (this *SampleOptions) SetTimeRange(v *TimeRange) *SampleOptions {
	this.Timestamp = v
	return this
}

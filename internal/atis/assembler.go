package atis

import (
	"errors"
	"fmt"
	"time"

	"github.com/yegors/co-atis/internal/datis"
	"github.com/yegors/co-atis/pkg/logger"
)

const (
	// Preset is the fixed display preset sent with every record
	Preset = "RW"
	// Version is the record schema version
	Version = "4.0.0"
)

// JSON names of the extracted fields, used in Unavailable
const (
	FieldConditions = "airportConditions"
	FieldNOTAMs     = "notams"
)

// NormalizedRecord is the response body for a successful request
type NormalizedRecord struct {
	Facility          string   `json:"facility"`
	Preset            string   `json:"preset"`
	ATISLetter        string   `json:"atisLetter"`
	ATISType          string   `json:"atisType"`
	AirportConditions string   `json:"airportConditions"`
	NOTAMs            string   `json:"notams"`
	Timestamp         string   `json:"timestamp"`
	Version           string   `json:"version"`
	Unavailable       []string `json:"unavailable,omitempty"` // fields whose landmark was missing
}

// SelectRecord picks the record to report. Only the first is used even
// when the provider returns one per ATIS type.
func SelectRecord(records []datis.OriginRecord) (datis.OriginRecord, error) {
	if len(records) == 0 {
		return datis.OriginRecord{}, ErrEmptyPayload
	}
	return records[0], nil
}

// Assembler turns upstream records into a NormalizedRecord
type Assembler struct {
	extractor Extractor
	now       func() time.Time
	logger    *logger.Logger
}

// Option configures an Assembler
type Option func(*Assembler)

// WithExtractor replaces the landmark extractor
func WithExtractor(e Extractor) Option {
	return func(a *Assembler) { a.extractor = e }
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

// NewAssembler creates an assembler using LandmarkExtractor and the wall clock
func NewAssembler(logger *logger.Logger, opts ...Option) *Assembler {
	a := &Assembler{
		extractor: LandmarkExtractor{},
		now:       time.Now,
		logger:    logger.Named("atis-assembler"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble builds the record from the first upstream entry. A missing
// landmark leaves the field empty and lists it in Unavailable; any other
// extractor error is returned.
func (a *Assembler) Assemble(records []datis.OriginRecord) (*NormalizedRecord, error) {
	origin, err := SelectRecord(records)
	if err != nil {
		return nil, err
	}
	if origin.DATIS == "" {
		return nil, fmt.Errorf("%w (airport %q)", ErrMalformedPayload, origin.Airport)
	}

	record := &NormalizedRecord{
		Facility:   origin.Airport,
		Preset:     Preset,
		ATISLetter: origin.Code,
		ATISType:   NormalizeType(origin.Type),
		Timestamp:  FormatTimestamp(a.now().Local()),
		Version:    Version,
	}

	if record.AirportConditions, err = a.extract(record, FieldConditions, origin.DATIS, a.extractor.Conditions); err != nil {
		return nil, err
	}
	if record.NOTAMs, err = a.extract(record, FieldNOTAMs, origin.DATIS, a.extractor.NOTAMs); err != nil {
		return nil, err
	}

	return record, nil
}

func (a *Assembler) extract(record *NormalizedRecord, field, broadcast string, fn func(string) (string, error)) (string, error) {
	value, err := fn(broadcast)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, ErrLandmarkNotFound) {
		return "", fmt.Errorf("failed to extract %s: %w", field, err)
	}

	a.logger.Warn("Broadcast landmark missing",
		logger.String("facility", record.Facility),
		logger.String("field", field),
		logger.Error(err))
	record.Unavailable = append(record.Unavailable, field)
	return "", nil
}

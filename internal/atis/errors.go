package atis

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPayload is returned when the provider sent no records
	ErrEmptyPayload = errors.New("upstream returned no records")
	// ErrMalformedPayload is returned when the selected record lacks a broadcast
	ErrMalformedPayload = errors.New("upstream record has no datis text")
	// ErrLandmarkNotFound is matched by every *LandmarkError
	ErrLandmarkNotFound = errors.New("landmark not found")
)

// LandmarkError names the anchor that was missing for a field
type LandmarkError struct {
	Field    string
	Landmark string
}

func (e *LandmarkError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.Field, ErrLandmarkNotFound, e.Landmark)
}

func (e *LandmarkError) Is(target error) bool {
	return target == ErrLandmarkNotFound
}

package atis

import "strings"

// Landmarks the provider embeds in every broadcast
const (
	notamsMarker    = "NOTAMS"
	notamsSeparator = 4 // fixed-width gap between the marker and the NOTAM text
	advisoryMarker  = "...ADVS YOU HAVE INFO I."
)

// Extractor slices the segments of interest out of a broadcast. A missing
// landmark is reported as ErrLandmarkNotFound rather than a bogus slice.
type Extractor interface {
	Conditions(broadcast string) (string, error)
	NOTAMs(broadcast string) (string, error)
}

// LandmarkExtractor locates fixed tokens by index arithmetic
type LandmarkExtractor struct{}

var _ Extractor = LandmarkExtractor{}

// indexFrom is strings.Index starting at from, returning an absolute
// position or -1.
func indexFrom(s, substr string, from int) int {
	if from > len(s) {
		return -1
	}
	i := strings.Index(s[from:], substr)
	if i < 0 {
		return -1
	}
	return from + i
}

// Conditions returns the third sentence: the text starting two bytes
// after the second period and running up to the next period, untrimmed.
func (LandmarkExtractor) Conditions(broadcast string) (string, error) {
	first := strings.Index(broadcast, ".")
	if first < 0 {
		return "", &LandmarkError{Field: FieldConditions, Landmark: "first period"}
	}
	second := indexFrom(broadcast, ".", first+1)
	if second < 0 {
		return "", &LandmarkError{Field: FieldConditions, Landmark: "second period"}
	}

	start := second + 2
	end := indexFrom(broadcast, ".", start)
	if end < 0 {
		return "", &LandmarkError{Field: FieldConditions, Landmark: "third period"}
	}
	return broadcast[start:end], nil
}

// NOTAMs returns the text between the NOTAMS marker (plus its fixed
// separator) and the closing advisory, untrimmed.
func (LandmarkExtractor) NOTAMs(broadcast string) (string, error) {
	marker := strings.Index(broadcast, notamsMarker)
	if marker < 0 {
		return "", &LandmarkError{Field: FieldNOTAMs, Landmark: notamsMarker}
	}

	start := marker + len(notamsMarker) + notamsSeparator
	end := indexFrom(broadcast, advisoryMarker, start)
	if end < 0 {
		return "", &LandmarkError{Field: FieldNOTAMs, Landmark: advisoryMarker}
	}
	return broadcast[start:end], nil
}

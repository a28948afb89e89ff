package datis

import "fmt"

// OriginRecord is one upstream D-ATIS entry for an airport and ATIS type
type OriginRecord struct {
	Airport string `json:"airport"`
	Type    string `json:"type"` // "dep", "arr" or "combined"
	Code    string `json:"code"` // ATIS information letter
	DATIS   string `json:"datis"`
}

// FetchError reports a failed upstream call. Status is zero when no
// response was received.
type FetchError struct {
	ICAO   string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("datis fetch for %q: status %d: %v", e.ICAO, e.Status, e.Err)
	}
	return fmt.Sprintf("datis fetch for %q: %v", e.ICAO, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

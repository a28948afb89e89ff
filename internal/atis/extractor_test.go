package atis

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConditions(t *testing.T) {
	tests := []struct {
		name      string
		broadcast string
		want      string
	}{
		{
			name:      "short fixture",
			broadcast: "ABC. DEF. GHI. NOTAMS ... JKL...ADVS YOU HAVE INFO I.",
			want:      "GHI",
		},
		{
			name:      "full broadcast",
			broadcast: "KXYZ ATIS INFO A. 1200Z. WIND CALM. NOTAMS ... RWY CLSD...ADVS YOU HAVE INFO I.",
			want:      "WIND CALM",
		},
		{
			name:      "no trimming",
			broadcast: "A. B.  SIMUL APCHS IN USE .",
			want:      " SIMUL APCHS IN USE ",
		},
		{
			name:      "separator is skipped whatever it is",
			broadcast: "A. B.XDEPG RWY 16L.",
			want:      "DEPG RWY 16L",
		},
		{
			name:      "empty third sentence",
			broadcast: "A. B. . D.",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LandmarkExtractor{}.Conditions(tt.broadcast)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConditionsMissingLandmark(t *testing.T) {
	tests := map[string]string{
		"no periods":         "KXYZ ATIS INFO A",
		"one period":         "KXYZ ATIS INFO A. 1200Z",
		"two periods":        "KXYZ ATIS INFO A. 1200Z. WIND CALM",
		"second period last": "A. B.",
		"empty":              "",
	}

	for name, broadcast := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := LandmarkExtractor{}.Conditions(broadcast)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrLandmarkNotFound))
			assert.Empty(t, got)

			var le *LandmarkError
			require.ErrorAs(t, err, &le)
			assert.Equal(t, FieldConditions, le.Field)
		})
	}
}

func TestNOTAMs(t *testing.T) {
	tests := []struct {
		name      string
		broadcast string
		want      string
	}{
		{
			name:      "short fixture",
			broadcast: "ABC. DEF. GHI. NOTAMS ... JKL...ADVS YOU HAVE INFO I.",
			want:      " JKL",
		},
		{
			name:      "full broadcast",
			broadcast: "KXYZ ATIS INFO A. 1200Z. WIND CALM. NOTAMS ... RWY CLSD...ADVS YOU HAVE INFO I.",
			want:      " RWY CLSD",
		},
		{
			name:      "period space separator",
			broadcast: "NOTAMS. .. TWY B CLSD. BIRD ACTIVITY...ADVS YOU HAVE INFO I.",
			want:      " TWY B CLSD. BIRD ACTIVITY",
		},
		{
			name:      "nothing between markers",
			broadcast: "NOTAMS ......ADVS YOU HAVE INFO I.",
			want:      "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LandmarkExtractor{}.NOTAMs(tt.broadcast)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNOTAMsMissingLandmark(t *testing.T) {
	tests := map[string]string{
		"no notams marker":       "KXYZ ATIS INFO A. 1200Z. WIND CALM...ADVS YOU HAVE INFO I.",
		"no advisory marker":     "KXYZ ATIS INFO A. 1200Z. WIND CALM. NOTAMS ... RWY CLSD.",
		"advisory before notams": "...ADVS YOU HAVE INFO I. NOTAMS ... RWY CLSD",
		"marker at the very end": "WIND CALM. NOTAMS",
	}

	for name, broadcast := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := LandmarkExtractor{}.NOTAMs(broadcast)
			require.ErrorIs(t, err, ErrLandmarkNotFound)
			assert.Empty(t, got)
		})
	}
}

package flickr

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDatePosted(t *testing.T) {
	posted, err := ParseDatePosted("1490376472")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2017, 3, 24, 17, 27, 52, 0, time.UTC), posted)

	_, err = ParseDatePosted("yesterday")
	assert.Error(t, err)
}

func TestParseDateTaken(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		granularity string
		want        DateTaken
	}{
		{
			name:        "known to the second",
			value:       "2017-02-17 00:00:00",
			granularity: "0",
			want: DateTaken{
				Known:       true,
				Value:       time.Date(2017, 2, 17, 0, 0, 0, 0, time.UTC),
				Granularity: GranularitySecond,
			},
		},
		{
			name:        "known to the month",
			value:       "2017-02-01 00:00:00",
			granularity: "4",
			want: DateTaken{
				Known:       true,
				Value:       time.Date(2017, 2, 1, 0, 0, 0, 0, time.UTC),
				Granularity: GranularityMonth,
			},
		},
		{
			name:        "known to the year",
			value:       "2017-01-01 00:00:00",
			granularity: "6",
			want: DateTaken{
				Known:       true,
				Value:       time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC),
				Granularity: GranularityYear,
			},
		},
		{
			name:        "circa",
			value:       "1910-01-01 00:00:00",
			granularity: "8",
			want: DateTaken{
				Known:       true,
				Value:       time.Date(1910, 1, 1, 0, 0, 0, 0, time.UTC),
				Granularity: GranularityCirca,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDateTaken(tt.value, tt.granularity, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDateTakenUnknownDropsPlaceholder(t *testing.T) {
	// The API defaults an unknown taken-date to the posted date; that
	// placeholder must never be visible to callers.
	got, err := ParseDateTaken("2001-01-01 00:00:00", "0", true)
	require.NoError(t, err)

	assert.Equal(t, DateTaken{Known: false}, got)
	assert.True(t, got.Value.IsZero())
}

func TestParseDateTakenBadGranularity(t *testing.T) {
	_, err := ParseDateTaken("2017-02-17 00:00:00", "37", false)

	var granularityErr *UnknownGranularityError
	require.ErrorAs(t, err, &granularityErr)
	assert.Equal(t, "37", granularityErr.Code)
}

func TestDateTakenJSONHidesUnknownValue(t *testing.T) {
	data, err := json.Marshal(DateTaken{
		Known: false,
		Value: time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"known": false}`, string(data))
}

func TestDateTakenJSONKnownValue(t *testing.T) {
	data, err := json.Marshal(DateTaken{
		Known:       true,
		Value:       time.Date(2017, 2, 17, 0, 0, 0, 0, time.UTC),
		Granularity: GranularitySecond,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"known": true, "value": "2017-02-17T00:00:00Z", "granularity": "second"}`, string(data))
}

func TestRenderDateTaken(t *testing.T) {
	date := time.Date(2017, 2, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		granularity Granularity
		want        string
	}{
		{GranularitySecond, "on February 17, 2017"},
		{GranularityMonth, "in February 2017"},
		{GranularityYear, "sometime in 2017"},
		{GranularityCirca, "circa 2017"},
	}

	for _, tt := range tests {
		t.Run(string(tt.granularity), func(t *testing.T) {
			got := RenderDateTaken(DateTaken{Known: true, Value: date, Granularity: tt.granularity})
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Empty(t, RenderDateTaken(DateTaken{Known: false}))
}

func TestParseSafetyLevel(t *testing.T) {
	tests := []struct {
		code string
		want SafetyLevel
	}{
		{"0", SafetySafe},
		{"1", SafetyModerate},
		{"2", SafetyRestricted},
	}

	for _, tt := range tests {
		got, err := ParseSafetyLevel(tt.code)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	// some API responses omit the attribute entirely
	got, err := ParseSafetyLevel("")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = ParseSafetyLevel("3")
	var safetyErr *UnknownSafetyLevelError
	assert.ErrorAs(t, err, &safetyErr)
}

func TestSizeWithLabel(t *testing.T) {
	photo := &Photo{
		ID: "1234",
		Sizes: []Size{
			{Label: "Small", Width: 240, Source: "https://live.staticflickr.com/1/1234_s.jpg"},
			{Label: "Medium", Width: 500, Source: "https://live.staticflickr.com/1/1234_m.jpg"},
		},
	}

	t.Run("exact label", func(t *testing.T) {
		size, err := SizeWithLabel(photo, "Small")
		require.NoError(t, err)
		assert.Equal(t, "Small", size.Label)
	})

	t.Run("absent label falls back to widest", func(t *testing.T) {
		// Original may be missing for downloads-restricted photos; the
		// fallback must be the widest size, not an error.
		size, err := SizeWithLabel(photo, "Original")
		require.NoError(t, err)
		assert.Equal(t, "Medium", size.Label)
		assert.Equal(t, 500, size.Width)
	})

	t.Run("no sizes at all", func(t *testing.T) {
		_, err := SizeWithLabel(&Photo{ID: "9999"}, "Medium")

		var noSizes *NoSizesError
		require.ErrorAs(t, err, &noSizes)
		assert.Equal(t, "9999", noSizes.PhotoID)
	})
}

func TestNormalizeLicense(t *testing.T) {
	t.Run("known license gets short id and label", func(t *testing.T) {
		license := normalizeLicense("Attribution License", "https://creativecommons.org/licenses/by/2.0/")
		assert.Equal(t, License{
			ID:    "cc-by-2.0",
			Label: "CC BY 2.0",
			URL:   "https://creativecommons.org/licenses/by/2.0/",
		}, license)
	})

	t.Run("license without compact label keeps its name", func(t *testing.T) {
		license := normalizeLicense("All Rights Reserved", "")
		assert.Equal(t, License{ID: "in-copyright", Label: "All Rights Reserved"}, license)
	})
}

package flickr

import (
	"fmt"
	"strconv"
	"time"
)

// ParseDatePosted converts a posted-date attribute, which is a Unix
// timestamp in seconds, to a time.Time in UTC.
func ParseDatePosted(value string) (time.Time, error) {
	secs, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid posted date %q: %w", value, err)
	}
	return time.Unix(secs, 0).UTC(), nil
}

// takenDateLayout is the format of taken-date attributes, which are
// local to wherever the photo was taken and carry no zone.
const takenDateLayout = "2006-01-02 15:04:05"

// granularities maps the API's taken-date granularity codes to symbolic
// precision levels.
//
// See https://www.flickr.com/services/api/misc.dates.html
var granularities = map[string]Granularity{
	"0": GranularitySecond,
	"4": GranularityMonth,
	"6": GranularityYear,
	"8": GranularityCirca,
}

// ParseDateTaken converts a raw taken-date triple into a DateTaken.
//
// When the unknown flag is set the API defaults the value to the posted
// date. That placeholder must never reach callers, so it's dropped here.
func ParseDateTaken(value, granularityCode string, unknown bool) (DateTaken, error) {
	if unknown {
		return DateTaken{Known: false}, nil
	}

	granularity, ok := granularities[granularityCode]
	if !ok {
		return DateTaken{}, &UnknownGranularityError{Code: granularityCode}
	}

	parsed, err := time.Parse(takenDateLayout, value)
	if err != nil {
		return DateTaken{}, fmt.Errorf("invalid taken date %q: %w", value, err)
	}

	return DateTaken{Known: true, Value: parsed, Granularity: granularity}, nil
}

// RenderDateTaken formats a DateTaken for human-readable display, e.g.
// "on February 17, 2017" or "sometime in 1910". It returns "" for
// unknown dates.
func RenderDateTaken(d DateTaken) string {
	if !d.Known {
		return ""
	}

	switch d.Granularity {
	case GranularitySecond:
		return "on " + d.Value.Format("January 2, 2006")
	case GranularityMonth:
		return "in " + d.Value.Format("January 2006")
	case GranularityYear:
		return "sometime in " + d.Value.Format("2006")
	case GranularityCirca:
		return "circa " + d.Value.Format("2006")
	default:
		return ""
	}
}

// ParseSafetyLevel converts the API's numeric safety level to a
// SafetyLevel. The attribute is not guaranteed to be present on every
// response, so an empty code maps to an empty SafetyLevel rather than
// an error.
func ParseSafetyLevel(code string) (SafetyLevel, error) {
	switch code {
	case "":
		return "", nil
	case "0":
		return SafetySafe, nil
	case "1":
		return SafetyModerate, nil
	case "2":
		return SafetyRestricted, nil
	default:
		return "", &UnknownSafetyLevelError{Code: code}
	}
}

// SizeWithLabel returns the size with the given label from a photo's
// size list. If that label is absent, it falls back to the widest
// available size: "Original" in particular is missing for photos whose
// owner has restricted downloads, and max width is the only ordering
// that's always safe.
func SizeWithLabel(photo *Photo, label string) (Size, error) {
	if len(photo.Sizes) == 0 {
		return Size{}, &NoSizesError{PhotoID: photo.ID}
	}

	best := photo.Sizes[0]
	for _, s := range photo.Sizes {
		if s.Label == label {
			return s, nil
		}
		if s.Width > best.Width {
			best = s
		}
	}

	return best, nil
}

package flickr

import (
	"fmt"
	"net/url"
)

// APIError is a failure response from the Flickr API. Different endpoints
// use different codes, so callers decide how to handle them.
type APIError struct {
	Method  string
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("flickr API call %s failed: %s (code %s)", e.Method, e.Message, e.Code)
}

// ResourceNotFoundError means the API couldn't find the requested
// resource, e.g. a photo or album ID that doesn't exist.
type ResourceNotFoundError struct {
	Method string
	Params url.Values
}

func (e *ResourceNotFoundError) Error() string {
	return fmt.Sprintf("could not find resource for %s with params %v", e.Method, e.Params)
}

// LicenseNotFoundError means a photo carried a license code that isn't in
// the API's own license table. License correctness matters for downstream
// reuse of the photo, so this is never silently defaulted.
type LicenseNotFoundError struct {
	Code string
}

func (e *LicenseNotFoundError) Error() string {
	return fmt.Sprintf("unrecognised license code: %q", e.Code)
}

// UnknownGranularityError means a taken-date carried a granularity code
// outside the documented set. Guessing date precision would be worse
// than failing.
type UnknownGranularityError struct {
	Code string
}

func (e *UnknownGranularityError) Error() string {
	return fmt.Sprintf("unrecognised date taken granularity: %q", e.Code)
}

// UnknownSafetyLevelError means a photo carried a safety level code
// outside the documented set.
type UnknownSafetyLevelError struct {
	Code string
}

func (e *UnknownSafetyLevelError) Error() string {
	return fmt.Sprintf("unrecognised safety level: %q", e.Code)
}

// NoSizesError means a size was requested from a photo that has no size
// variants at all.
type NoSizesError struct {
	PhotoID string
}

func (e *NoSizesError) Error() string {
	return fmt.Sprintf("photo %s has no sizes", e.PhotoID)
}

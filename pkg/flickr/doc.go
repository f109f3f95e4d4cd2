// Package flickr is a client for the Flickr REST API, focused on turning
// the inconsistently-shaped responses of its various photo-listing
// endpoints into one uniform photo/collection model.
//
// The Client makes the API calls; the normalization helpers (sizes,
// licenses, taken-dates, safety levels) are pure functions so they can be
// applied uniformly regardless of which endpoint produced the data.
package flickr

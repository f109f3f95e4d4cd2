package urls

import "fmt"

// NotFlickrURLError is returned when the input doesn't point at Flickr at
// all: the host is unrecognised, or the string couldn't be parsed as a URL
// in the first place. Callers should treat both the same way ("this isn't
// a Flickr URL"), so unparseable input deliberately collapses into this
// error rather than surfacing as a separate failure.
type NotFlickrURLError struct {
	URL string
}

func (e *NotFlickrURLError) Error() string {
	return fmt.Sprintf("not a Flickr URL: %q", e.URL)
}

// UnrecognisedURLError is returned when the host is a Flickr domain but
// the path doesn't match any known shape.
type UnrecognisedURLError struct {
	URL string
}

func (e *UnrecognisedURLError) Error() string {
	return fmt.Sprintf("unrecognised Flickr URL: %q", e.URL)
}

// UnresolvedShortLinkError is returned by Parse for flic.kr URLs that
// don't encode a photo ID directly (e.g. album or person short links).
// These need a network round trip to resolve; use ParseWithResolver.
type UnresolvedShortLinkError struct {
	URL string
}

func (e *UnresolvedShortLinkError) Error() string {
	return fmt.Sprintf("short link needs resolving: %q", e.URL)
}

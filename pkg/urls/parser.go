// Package urls classifies Flickr URLs.
//
// Given any string a user might paste in, Parse works out what kind of
// resource it points at (a single photo, an album, a user's photostream,
// a group pool, a gallery, or a tag search) and extracts the identifiers
// needed to fetch it. Matching is a purely local operation; the only
// network access in this package is the short-link resolver, which is
// behind the Resolver interface so it can be replayed in tests.
package urls

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"flinumeratr/pkg/base58"
)

// Kind identifies which sort of Flickr resource a URL refers to.
type Kind string

const (
	KindSinglePhoto Kind = "single_photo"
	KindAlbum       Kind = "album"
	KindUser        Kind = "user"
	KindGroup       Kind = "group"
	KindGallery     Kind = "gallery"
	KindTag         Kind = "tag"
)

// ParseResult is the outcome of classifying a URL. Exactly one kind is
// populated; only the identifier fields for that kind are non-empty.
// Page is always at least 1 -- a URL with no explicit page number gets
// an explicit page of 1 rather than a zero value.
type ParseResult struct {
	Kind Kind `json:"type"`

	PhotoID   string `json:"photo_id,omitempty"`
	UserURL   string `json:"user_url,omitempty"`
	AlbumID   string `json:"album_id,omitempty"`
	GroupURL  string `json:"group_url,omitempty"`
	GalleryID string `json:"gallery_id,omitempty"`
	Tag       string `json:"tag,omitempty"`

	Page int `json:"page"`
}

var longFormHosts = map[string]bool{
	"www.flickr.com": true,
	"flickr.com":     true,
}

var shortLinkHosts = map[string]bool{
	"flic.kr":     true,
	"www.flic.kr": true,
}

var pagePattern = regexp.MustCompile(`^page(\d+)$`)

// Parse classifies a Flickr URL without touching the network.
//
// It returns NotFlickrURLError if the host isn't a Flickr domain,
// UnrecognisedURLError if the host matches but the path doesn't, and
// UnresolvedShortLinkError for flic.kr shapes that need a redirect lookup
// (see ParseWithResolver).
func Parse(raw string) (*ParseResult, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, &NotFlickrURLError{URL: raw}
	}

	// A bare "flickr.com/photos/..." parses as a path with no host.
	// If the first path segment is one of our hosts, retry with a scheme
	// so it classifies identically to the https form.
	if u.Host == "" && u.Scheme == "" {
		segs := splitPath(u.Path)
		if len(segs) > 0 && isKnownHost(segs[0]) {
			return Parse("https://" + raw)
		}
		return nil, &NotFlickrURLError{URL: raw}
	}

	host := strings.ToLower(u.Host)
	segs := splitPath(u.Path)

	switch {
	case longFormHosts[host]:
		result := matchLongForm(segs)
		if result == nil {
			return nil, &UnrecognisedURLError{URL: raw}
		}
		return result, nil

	case shortLinkHosts[host]:
		return matchShortLink(raw, segs)

	default:
		return nil, &NotFlickrURLError{URL: raw}
	}
}

// splitPath breaks a URL path into segments, ignoring leading and
// trailing slashes so "/photos/bees/" and "/photos/bees" are equivalent.
func splitPath(p string) []string {
	trimmed := strings.Trim(p, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func isKnownHost(s string) bool {
	h := strings.ToLower(s)
	return longFormHosts[h] || shortLinkHosts[h]
}

// matchLongForm runs the ordered rule table for www.flickr.com paths.
// Rules are checked most-specific first: a short shape like
// /photos/{user}/{id} is a prefix of /photos/{user}/{id}/in/{context},
// so the longer shape has to win. First match takes it.
var longFormRules = []func(segs []string) *ParseResult{
	matchPhotoInContext,
	matchAlbum,
	matchGallery,
	matchTag,
	matchSinglePhoto,
	matchUser,
	matchGroup,
}

func matchLongForm(segs []string) *ParseResult {
	for _, rule := range longFormRules {
		if result := rule(segs); result != nil {
			if result.Page == 0 {
				result.Page = 1
			}
			return result
		}
	}
	return nil
}

// /photos/{user}/{id}/in/{album-... or photolist-...}
func matchPhotoInContext(segs []string) *ParseResult {
	if len(segs) == 5 && segs[0] == "photos" && isNumeric(segs[2]) && segs[3] == "in" {
		return &ParseResult{Kind: KindSinglePhoto, PhotoID: segs[2]}
	}
	return nil
}

// /photos/{user}/{id}
func matchSinglePhoto(segs []string) *ParseResult {
	if len(segs) == 3 && segs[0] == "photos" && isNumeric(segs[2]) {
		return &ParseResult{Kind: KindSinglePhoto, PhotoID: segs[2]}
	}
	return nil
}

// /photos/{user}/albums/{id} -- "sets" is the legacy name for albums and
// still appears in old links.
func matchAlbum(segs []string) *ParseResult {
	if len(segs) < 4 || len(segs) > 5 || segs[0] != "photos" {
		return nil
	}
	if segs[2] != "albums" && segs[2] != "sets" {
		return nil
	}
	if !isNumeric(segs[3]) {
		return nil
	}

	result := &ParseResult{
		Kind:    KindAlbum,
		UserURL: userURL(segs[1]),
		AlbumID: segs[3],
	}
	if len(segs) == 5 {
		page, ok := parsePageSuffix(segs[4])
		if !ok {
			return nil
		}
		result.Page = page
	}
	return result
}

// /photos/{user}/galleries/{id}
func matchGallery(segs []string) *ParseResult {
	if len(segs) < 4 || len(segs) > 5 || segs[0] != "photos" || segs[2] != "galleries" {
		return nil
	}
	if !isNumeric(segs[3]) {
		return nil
	}

	result := &ParseResult{Kind: KindGallery, GalleryID: segs[3]}
	if len(segs) == 5 {
		page, ok := parsePageSuffix(segs[4])
		if !ok {
			return nil
		}
		result.Page = page
	}
	return result
}

// /photos/tags/{tag}
func matchTag(segs []string) *ParseResult {
	if len(segs) < 3 || len(segs) > 4 || segs[0] != "photos" || segs[1] != "tags" {
		return nil
	}

	result := &ParseResult{Kind: KindTag, Tag: segs[2]}
	if len(segs) == 4 {
		page, ok := parsePageSuffix(segs[3])
		if !ok {
			return nil
		}
		result.Page = page
	}
	return result
}

// /photos/{user}, /people/{user}, /photos/{user}/albums,
// /photos/{user}/page{n}
func matchUser(segs []string) *ParseResult {
	if len(segs) == 2 && (segs[0] == "photos" || segs[0] == "people") {
		return &ParseResult{Kind: KindUser, UserURL: userURL(segs[1])}
	}
	if len(segs) == 3 && segs[0] == "photos" {
		if segs[2] == "albums" {
			return &ParseResult{Kind: KindUser, UserURL: userURL(segs[1])}
		}
		if page, ok := parsePageSuffix(segs[2]); ok {
			return &ParseResult{Kind: KindUser, UserURL: userURL(segs[1]), Page: page}
		}
	}
	return nil
}

// /groups/{group}, /groups/{group}/pool, either with a page{n} suffix
func matchGroup(segs []string) *ParseResult {
	if len(segs) < 2 || len(segs) > 4 || segs[0] != "groups" {
		return nil
	}

	result := &ParseResult{Kind: KindGroup, GroupURL: groupURL(segs[1])}
	rest := segs[2:]

	if len(rest) > 0 && rest[0] == "pool" {
		rest = rest[1:]
	}
	switch len(rest) {
	case 0:
		return result
	case 1:
		page, ok := parsePageSuffix(rest[0])
		if !ok {
			return nil
		}
		result.Page = page
		return result
	default:
		return nil
	}
}

// matchShortLink handles flic.kr paths. Photo short links carry the ID
// base58-encoded in the path, so they decode without a lookup; everything
// else needs the redirect followed.
func matchShortLink(raw string, segs []string) (*ParseResult, error) {
	if len(segs) == 2 && segs[0] == "p" && base58.IsBase58(segs[1]) {
		photoID, err := base58.Decode(segs[1])
		if err != nil {
			return nil, &UnrecognisedURLError{URL: raw}
		}
		return &ParseResult{Kind: KindSinglePhoto, PhotoID: photoID, Page: 1}, nil
	}

	if len(segs) > 0 {
		return nil, &UnresolvedShortLinkError{URL: raw}
	}
	return nil, &UnrecognisedURLError{URL: raw}
}

// ParseWithResolver is Parse plus short-link resolution: flic.kr URLs
// that Parse can't classify locally are resolved to their long-form
// target with a single redirect lookup and re-classified.
func ParseWithResolver(ctx context.Context, raw string, resolver Resolver) (*ParseResult, error) {
	result, err := Parse(raw)
	if err == nil {
		return result, nil
	}

	var unresolved *UnresolvedShortLinkError
	if errors.As(err, &unresolved) && resolver != nil {
		target, rerr := resolver.ResolveRedirect(ctx, raw)
		if rerr != nil {
			return nil, fmt.Errorf("resolving short link %q: %w", raw, rerr)
		}
		return parseResolved(raw, target)
	}
	return nil, err
}

// parseResolved classifies the redirect target of a short link. The
// target must be a long-form URL; a short host here would mean a
// redirect loop.
func parseResolved(short, target string) (*ParseResult, error) {
	u, err := url.Parse(target)
	if err != nil || !longFormHosts[strings.ToLower(u.Host)] {
		return nil, &UnrecognisedURLError{URL: short}
	}
	return Parse(target)
}

func parsePageSuffix(s string) (int, bool) {
	m := pagePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	page, err := strconv.Atoi(m[1])
	if err != nil || page < 1 {
		return 0, false
	}
	return page, true
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func userURL(pathAlias string) string {
	return "https://www.flickr.com/photos/" + pathAlias
}

func groupURL(name string) string {
	return "https://www.flickr.com/groups/" + name
}

package flickr

import (
	"context"
	"fmt"

	"flinumeratr/pkg/urls"
)

// GetPhotosFromURL classifies a Flickr URL and returns the photos at it.
//
// Classification errors (urls.NotFlickrURLError and friends) propagate
// unchanged; short links that need network resolution are handled when a
// resolver is supplied.
func (c *Client) GetPhotosFromURL(ctx context.Context, rawURL string, resolver urls.Resolver, perPage int) (*PhotosFromURL, error) {
	var parsed *urls.ParseResult
	var err error

	if resolver != nil {
		parsed, err = urls.ParseWithResolver(ctx, rawURL, resolver)
	} else {
		parsed, err = urls.Parse(rawURL)
	}
	if err != nil {
		return nil, err
	}

	return c.GetPhotosFromParseResult(ctx, parsed, perPage)
}

// GetPhotosFromParseResult returns the photos at an already-classified
// Flickr URL.
func (c *Client) GetPhotosFromParseResult(ctx context.Context, parsed *urls.ParseResult, perPage int) (*PhotosFromURL, error) {
	switch parsed.Kind {
	case urls.KindSinglePhoto:
		photo, err := c.GetSinglePhoto(ctx, parsed.PhotoID)
		if err != nil {
			return nil, err
		}
		return &PhotosFromURL{
			Kind:        string(parsed.Kind),
			PageCount:   1,
			TotalPhotos: 1,
			Photos:      []*Photo{photo},
		}, nil

	case urls.KindAlbum:
		album, err := c.GetPhotosInAlbum(ctx, parsed.UserURL, parsed.AlbumID, parsed.Page, perPage)
		if err != nil {
			return nil, err
		}
		return &PhotosFromURL{
			Kind:        string(parsed.Kind),
			PageCount:   album.PageCount,
			TotalPhotos: album.TotalPhotos,
			Photos:      album.Photos,
			Album:       &album.Album,
		}, nil

	case urls.KindUser:
		collection, err := c.GetPublicPhotosByUser(ctx, parsed.UserURL, parsed.Page, perPage)
		if err != nil {
			return nil, err
		}
		return &PhotosFromURL{
			Kind:        string(parsed.Kind),
			PageCount:   collection.PageCount,
			TotalPhotos: collection.TotalPhotos,
			Photos:      collection.Photos,
		}, nil

	case urls.KindGallery:
		gallery, err := c.GetPhotosInGallery(ctx, parsed.GalleryID, parsed.Page, perPage)
		if err != nil {
			return nil, err
		}
		return &PhotosFromURL{
			Kind:        string(parsed.Kind),
			PageCount:   gallery.PageCount,
			TotalPhotos: gallery.TotalPhotos,
			Photos:      gallery.Photos,
			Gallery:     &gallery.Gallery,
		}, nil

	case urls.KindGroup:
		group, err := c.GetPhotosInGroupPool(ctx, parsed.GroupURL, parsed.Page, perPage)
		if err != nil {
			return nil, err
		}
		return &PhotosFromURL{
			Kind:        string(parsed.Kind),
			PageCount:   group.PageCount,
			TotalPhotos: group.TotalPhotos,
			Photos:      group.Photos,
			Group:       &group.Group,
		}, nil

	case urls.KindTag:
		collection, err := c.GetPhotosWithTag(ctx, parsed.Tag, parsed.Page, perPage)
		if err != nil {
			return nil, err
		}
		return &PhotosFromURL{
			Kind:        string(parsed.Kind),
			PageCount:   collection.PageCount,
			TotalPhotos: collection.TotalPhotos,
			Photos:      collection.Photos,
		}, nil

	default:
		return nil, fmt.Errorf("unrecognised URL type: %q", parsed.Kind)
	}
}

package flickr

import (
	"context"
	"net/url"
	"strconv"
)

func pageParams(page, perPage int) url.Values {
	return url.Values{
		"page":     {strconv.Itoa(page)},
		"per_page": {strconv.Itoa(perPage)},
	}
}

type photosetPhotosResponse struct {
	// The wrapper is absent entirely for some degenerate responses, so
	// it's a pointer rather than a value.
	Photoset *collectionPage `xml:"photoset"`
}

type photosetInfoResponse struct {
	Photoset struct {
		Title string `xml:"title"`
	} `xml:"photoset"`
}

type photosListResponse struct {
	Photos  *collectionPage `xml:"photos"`
	Gallery *struct {
		Username string `xml:"username,attr"`
		Title    string `xml:"title"`
	} `xml:"gallery"`
}

// emptyCollection is what callers see for a collection that exists but
// has no photos, e.g. a user who has never made a photo public.
func emptyCollection() *CollectionOfPhotos {
	return &CollectionOfPhotos{PageCount: 1, TotalPhotos: 0, Photos: []*Photo{}}
}

// GetPhotosInAlbum gets one page of the photos in an album. The album
// has a single owner, resolved once, and every returned photo shares
// that User.
func (c *Client) GetPhotosInAlbum(ctx context.Context, userURL, albumID string, page, perPage int) (*PhotosInAlbum, error) {
	user, err := c.LookupUserByURL(ctx, userURL)
	if err != nil {
		return nil, err
	}

	params := pageParams(page, perPage)
	params.Set("user_id", user.ID)
	params.Set("photoset_id", albumID)
	params.Set("extras", extrasParam())

	var resp photosetPhotosResponse
	if err := c.call(ctx, "flickr.photosets.getPhotos", params, &resp); err != nil {
		return nil, err
	}

	collection := emptyCollection()
	if resp.Photoset != nil {
		collection, err = c.parseCollectionPage(ctx, resp.Photoset, user)
		if err != nil {
			return nil, err
		}
	}

	infoParams := url.Values{"user_id": {user.ID}, "photoset_id": {albumID}}
	var infoResp photosetInfoResponse
	if err := c.call(ctx, "flickr.photosets.getInfo", infoParams, &infoResp); err != nil {
		return nil, err
	}

	return &PhotosInAlbum{
		CollectionOfPhotos: *collection,
		Album: AlbumInfo{
			Owner: user,
			Title: infoResp.Photoset.Title,
		},
	}, nil
}

// GetPublicPhotosByUser gets one page of a user's public photos. A user
// with no public photos yields an empty single-page collection, not an
// error.
func (c *Client) GetPublicPhotosByUser(ctx context.Context, userURL string, page, perPage int) (*CollectionOfPhotos, error) {
	user, err := c.LookupUserByURL(ctx, userURL)
	if err != nil {
		return nil, err
	}

	params := pageParams(page, perPage)
	params.Set("user_id", user.ID)
	params.Set("extras", extrasParam())

	var resp photosListResponse
	if err := c.call(ctx, "flickr.people.getPublicPhotos", params, &resp); err != nil {
		return nil, err
	}

	if resp.Photos == nil {
		return emptyCollection(), nil
	}
	return c.parseCollectionPage(ctx, resp.Photos, user)
}

// GetPhotosInGallery gets one page of the photos in a gallery. Galleries
// span multiple owners, so each photo carries its own; path_alias is
// requested as an extra to build those owners' URLs.
func (c *Client) GetPhotosInGallery(ctx context.Context, galleryID string, page, perPage int) (*PhotosInGallery, error) {
	params := pageParams(page, perPage)
	params.Set("gallery_id", galleryID)
	params.Set("get_gallery_info", "1")
	params.Set("extras", extrasParam("path_alias"))

	var resp photosListResponse
	if err := c.call(ctx, "flickr.galleries.getPhotos", params, &resp); err != nil {
		return nil, err
	}

	collection := emptyCollection()
	if resp.Photos != nil {
		var err error
		collection, err = c.parseCollectionPage(ctx, resp.Photos, nil)
		if err != nil {
			return nil, err
		}
	}

	result := &PhotosInGallery{CollectionOfPhotos: *collection}
	if resp.Gallery != nil {
		result.Gallery = GalleryInfo{
			OwnerName: resp.Gallery.Username,
			Title:     resp.Gallery.Title,
		}
	}
	return result, nil
}

// GetPhotosInGroupPool gets one page of the photos in a group pool.
func (c *Client) GetPhotosInGroupPool(ctx context.Context, groupURL string, page, perPage int) (*PhotosInGroup, error) {
	group, err := c.LookupGroupByURL(ctx, groupURL)
	if err != nil {
		return nil, err
	}

	params := pageParams(page, perPage)
	params.Set("group_id", group.ID)
	params.Set("extras", extrasParam())

	var resp photosListResponse
	if err := c.call(ctx, "flickr.groups.pools.getPhotos", params, &resp); err != nil {
		return nil, err
	}

	collection := emptyCollection()
	if resp.Photos != nil {
		collection, err = c.parseCollectionPage(ctx, resp.Photos, nil)
		if err != nil {
			return nil, err
		}
	}

	return &PhotosInGroup{
		CollectionOfPhotos: *collection,
		Group:              *group,
	}, nil
}

// GetPhotosWithTag gets one page of the photos with a given tag, sorted
// by interestingness so the results match the site's own tag pages.
func (c *Client) GetPhotosWithTag(ctx context.Context, tag string, page, perPage int) (*CollectionOfPhotos, error) {
	params := pageParams(page, perPage)
	params.Set("tags", tag)
	params.Set("sort", "interestingness-desc")
	params.Set("extras", extrasParam())

	var resp photosListResponse
	if err := c.call(ctx, "flickr.photos.search", params, &resp); err != nil {
		return nil, err
	}

	if resp.Photos == nil {
		return emptyCollection(), nil
	}
	return c.parseCollectionPage(ctx, resp.Photos, nil)
}

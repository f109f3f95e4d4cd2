package flickr

import (
	"context"
	"strings"
)

// extras is the list of extra per-photo attributes requested from the
// various flickr.XXX.getPhotos-style methods, so every collection
// endpoint returns photo elements with the same shape.
//
// The url_q and url_l parameters aren't documented but work fine.
var extras = []string{
	"license",
	"date_upload",
	"date_taken",
	"media",
	"original_format",
	"owner_name",
	"url_sq",
	"url_t",
	"url_s",
	"url_m",
	"url_o",
	"url_q",
	"url_l",
	"description",
	"safety_level",
	"realname",
}

func extrasParam(extra ...string) string {
	return strings.Join(append(append([]string{}, extras...), extra...), ",")
}

// collectionPage is the wrapper element of a collection response, e.g.
// <photoset pages="34" total="10000">…</photoset> or the equivalent
// <photos> element. The pagination attributes live on the wrapper.
type collectionPage struct {
	Pages  int               `xml:"pages,attr"`
	Total  int               `xml:"total,attr"`
	Photos []collectionPhoto `xml:"photo"`
}

// collectionPhoto is one <photo> element inside a collection response,
// with the attributes the extras list asks for. Size variants arrive as
// suffix-coded attribute triples (url_m / width_m / height_m and so on);
// a photo that lacks a given variant simply omits those attributes.
type collectionPhoto struct {
	ID                   string `xml:"id,attr"`
	Title                string `xml:"title,attr"`
	Description          string `xml:"description"`
	Owner                string `xml:"owner,attr"`
	OwnerName            string `xml:"ownername,attr"`
	Realname             string `xml:"realname,attr"`
	PathAlias            string `xml:"pathalias,attr"`
	License              string `xml:"license,attr"`
	DateUpload           string `xml:"dateupload,attr"`
	DateTaken            string `xml:"datetaken,attr"`
	DateTakenGranularity string `xml:"datetakengranularity,attr"`
	DateTakenUnknown     string `xml:"datetakenunknown,attr"`
	Media                string `xml:"media,attr"`
	OriginalFormat       string `xml:"originalformat,attr"`
	SafetyLevel          string `xml:"safety_level,attr"`

	URLSq    string `xml:"url_sq,attr"`
	WidthSq  int    `xml:"width_sq,attr"`
	HeightSq int    `xml:"height_sq,attr"`
	URLQ     string `xml:"url_q,attr"`
	WidthQ   int    `xml:"width_q,attr"`
	HeightQ  int    `xml:"height_q,attr"`
	URLT     string `xml:"url_t,attr"`
	WidthT   int    `xml:"width_t,attr"`
	HeightT  int    `xml:"height_t,attr"`
	URLS     string `xml:"url_s,attr"`
	WidthS   int    `xml:"width_s,attr"`
	HeightS  int    `xml:"height_s,attr"`
	URLM     string `xml:"url_m,attr"`
	WidthM   int    `xml:"width_m,attr"`
	HeightM  int    `xml:"height_m,attr"`
	URLL     string `xml:"url_l,attr"`
	WidthL   int    `xml:"width_l,attr"`
	HeightL  int    `xml:"height_l,attr"`
	URLO     string `xml:"url_o,attr"`
	WidthO   int    `xml:"width_o,attr"`
	HeightO  int    `xml:"height_o,attr"`
}

// sizes assembles the photo's size list from the suffix-coded
// attributes, in fixed suffix order. An absent variant is skipped, not
// an error: which variants exist varies with upload and permissions.
func (p *collectionPhoto) sizes() []Size {
	variants := []struct {
		label, source string
		width, height int
	}{
		{"Square", p.URLSq, p.WidthSq, p.HeightSq},
		{"Large Square", p.URLQ, p.WidthQ, p.HeightQ},
		{"Thumbnail", p.URLT, p.WidthT, p.HeightT},
		{"Small", p.URLS, p.WidthS, p.HeightS},
		{"Medium", p.URLM, p.WidthM, p.HeightM},
		{"Large", p.URLL, p.WidthL, p.HeightL},
		{"Original", p.URLO, p.WidthO, p.HeightO},
	}

	var sizes []Size
	for _, v := range variants {
		if v.source == "" {
			continue
		}
		sizes = append(sizes, Size{
			Label:  v.label,
			Width:  v.width,
			Height: v.height,
			Media:  p.Media,
			Source: v.source,
		})
	}
	return sizes
}

// owner builds a User from the photo's own attributes, for collections
// that span multiple owners (group pools, galleries, tag searches).
func (p *collectionPhoto) owner() *User {
	pathAlias := p.PathAlias
	if pathAlias == "" {
		pathAlias = p.Owner
	}

	return &User{
		ID:         p.Owner,
		Username:   p.OwnerName,
		Realname:   p.Realname,
		PhotosURL:  "https://www.flickr.com/photos/" + pathAlias + "/",
		ProfileURL: "https://www.flickr.com/people/" + pathAlias + "/",
	}
}

// parseCollectionPage turns a collection response page into the uniform
// model. When collectionOwner is non-nil (albums, user streams), every
// photo shares that one User; otherwise each photo derives its own.
func (c *Client) parseCollectionPage(ctx context.Context, page *collectionPage, collectionOwner *User) (*CollectionOfPhotos, error) {
	// A collection with no photos at all reports zero pages; callers
	// still see one (empty) page.
	pageCount := page.Pages
	if pageCount < 1 {
		pageCount = 1
	}

	result := &CollectionOfPhotos{
		PageCount:   pageCount,
		TotalPhotos: page.Total,
		Photos:      make([]*Photo, 0, len(page.Photos)),
	}

	for i := range page.Photos {
		p := &page.Photos[i]

		owner := collectionOwner
		if owner == nil {
			owner = p.owner()
		}

		datePosted, err := ParseDatePosted(p.DateUpload)
		if err != nil {
			return nil, err
		}

		dateTaken, err := ParseDateTaken(p.DateTaken, p.DateTakenGranularity, p.DateTakenUnknown == "1")
		if err != nil {
			return nil, err
		}

		license, err := c.LookupLicenseByID(ctx, p.License)
		if err != nil {
			return nil, err
		}

		safetyLevel, err := ParseSafetyLevel(p.SafetyLevel)
		if err != nil {
			return nil, err
		}

		result.Photos = append(result.Photos, &Photo{
			ID:             p.ID,
			Title:          p.Title,
			Description:    p.Description,
			Owner:          owner,
			DatePosted:     datePosted,
			DateTaken:      dateTaken,
			SafetyLevel:    safetyLevel,
			License:        license,
			URL:            owner.PhotosURL + p.ID + "/",
			Sizes:          p.sizes(),
			OriginalFormat: p.OriginalFormat,
		})
	}

	return result, nil
}

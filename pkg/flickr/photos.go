package flickr

import (
	"context"
	"net/url"
)

type photoInfoResponse struct {
	Photo struct {
		License        string `xml:"license,attr"`
		SafetyLevel    string `xml:"safety_level,attr"`
		OriginalFormat string `xml:"originalformat,attr"`
		Owner          struct {
			NSID      string `xml:"nsid,attr"`
			Username  string `xml:"username,attr"`
			Realname  string `xml:"realname,attr"`
			PathAlias string `xml:"path_alias,attr"`
		} `xml:"owner"`
		Title       string `xml:"title"`
		Description string `xml:"description"`
		Dates       struct {
			Posted           string `xml:"posted,attr"`
			Taken            string `xml:"taken,attr"`
			TakenGranularity string `xml:"takengranularity,attr"`
			TakenUnknown     string `xml:"takenunknown,attr"`
		} `xml:"dates"`
		URLs []struct {
			Type  string `xml:"type,attr"`
			Value string `xml:",chardata"`
		} `xml:"urls>url"`
	} `xml:"photo"`
}

type sizesResponse struct {
	Sizes []struct {
		Label  string `xml:"label,attr"`
		Width  int    `xml:"width,attr"`
		Height int    `xml:"height,attr"`
		Media  string `xml:"media,attr"`
		Source string `xml:"source,attr"`
	} `xml:"sizes>size"`
}

// GetSinglePhoto looks up the information for a single photo: one detail
// call merged with one size-list call.
func (c *Client) GetSinglePhoto(ctx context.Context, photoID string) (*Photo, error) {
	var infoResp photoInfoResponse
	if err := c.call(ctx, "flickr.photos.getInfo", url.Values{"photo_id": {photoID}}, &infoResp); err != nil {
		return nil, err
	}

	var sizesResp sizesResponse
	if err := c.call(ctx, "flickr.photos.getSizes", url.Values{"photo_id": {photoID}}, &sizesResp); err != nil {
		return nil, err
	}

	info := &infoResp.Photo

	pathAlias := info.Owner.PathAlias
	if pathAlias == "" {
		pathAlias = info.Owner.NSID
	}
	owner := &User{
		ID:         info.Owner.NSID,
		Username:   info.Owner.Username,
		Realname:   info.Owner.Realname,
		PhotosURL:  "https://www.flickr.com/photos/" + pathAlias + "/",
		ProfileURL: "https://www.flickr.com/people/" + pathAlias + "/",
	}

	datePosted, err := ParseDatePosted(info.Dates.Posted)
	if err != nil {
		return nil, err
	}

	dateTaken, err := ParseDateTaken(info.Dates.Taken, info.Dates.TakenGranularity, info.Dates.TakenUnknown == "1")
	if err != nil {
		return nil, err
	}

	license, err := c.LookupLicenseByID(ctx, info.License)
	if err != nil {
		return nil, err
	}

	safetyLevel, err := ParseSafetyLevel(info.SafetyLevel)
	if err != nil {
		return nil, err
	}

	var photoPageURL string
	for _, u := range info.URLs {
		if u.Type == "photopage" {
			photoPageURL = u.Value
			break
		}
	}

	sizes := make([]Size, 0, len(sizesResp.Sizes))
	for _, s := range sizesResp.Sizes {
		sizes = append(sizes, Size{
			Label:  s.Label,
			Width:  s.Width,
			Height: s.Height,
			Media:  s.Media,
			Source: s.Source,
		})
	}

	return &Photo{
		ID:             photoID,
		Title:          info.Title,
		Description:    info.Description,
		Owner:          owner,
		DatePosted:     datePosted,
		DateTaken:      dateTaken,
		SafetyLevel:    safetyLevel,
		License:        license,
		URL:            photoPageURL,
		Sizes:          sizes,
		OriginalFormat: info.OriginalFormat,
	}, nil
}

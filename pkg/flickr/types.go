package flickr

import (
	"encoding/json"
	"time"
)

// User is a Flickr user, either looked up explicitly or embedded in a
// collection response. PhotosURL always ends with a slash.
type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Realname   string `json:"realname,omitempty"`
	PhotosURL  string `json:"photos_url"`
	ProfileURL string `json:"profile_url"`
}

// License describes the license a photo is published under.
type License struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url,omitempty"`
}

// Granularity is the precision at which a photo's taken-date is known.
type Granularity string

const (
	GranularitySecond Granularity = "second"
	GranularityMonth  Granularity = "month"
	GranularityYear   Granularity = "year"
	GranularityCirca  Granularity = "circa"
)

// DateTaken is the date a photo was taken, if known.
//
// When the taken-date is unknown, the API still sends a value (defaulted
// to the posted date), which is useless and easy to misuse. Value and
// Granularity are only set when Known is true, and the JSON encoding
// drops them entirely otherwise.
type DateTaken struct {
	Known       bool        `json:"known"`
	Value       time.Time   `json:"value,omitempty"`
	Granularity Granularity `json:"granularity,omitempty"`
}

// MarshalJSON hides Value and Granularity for unknown dates.
func (d DateTaken) MarshalJSON() ([]byte, error) {
	if !d.Known {
		return []byte(`{"known":false}`), nil
	}
	return json.Marshal(struct {
		Known       bool        `json:"known"`
		Value       time.Time   `json:"value"`
		Granularity Granularity `json:"granularity"`
	}{true, d.Value, d.Granularity})
}

// SafetyLevel is Flickr's content classification for a photo.
type SafetyLevel string

const (
	SafetySafe       SafetyLevel = "safe"
	SafetyModerate   SafetyLevel = "moderate"
	SafetyRestricted SafetyLevel = "restricted"
)

// Size is one size variant of a photo. Not every label exists for every
// photo; which ones do depends on the uploader's download permissions
// and the original resolution.
type Size struct {
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Media  string `json:"media"`
	Source string `json:"source"`
}

// Photo is the canonical photo record assembled from any endpoint.
//
// Owner is a pointer so that photos from a single-owner collection
// (album, user stream) can share one User rather than each deriving
// their own.
type Photo struct {
	ID             string      `json:"id"`
	Title          string      `json:"title,omitempty"`
	Description    string      `json:"description,omitempty"`
	Owner          *User       `json:"owner"`
	DatePosted     time.Time   `json:"date_posted"`
	DateTaken      DateTaken   `json:"date_taken"`
	SafetyLevel    SafetyLevel `json:"safety_level,omitempty"`
	License        License     `json:"license"`
	URL            string      `json:"url"`
	Sizes          []Size      `json:"sizes"`
	OriginalFormat string      `json:"original_format,omitempty"`
}

// CollectionOfPhotos is one page of photos from any listing endpoint.
type CollectionOfPhotos struct {
	PageCount   int      `json:"page_count"`
	TotalPhotos int      `json:"total_photos"`
	Photos      []*Photo `json:"photos"`
}

// AlbumInfo describes the album a collection of photos came from.
type AlbumInfo struct {
	Owner *User  `json:"owner"`
	Title string `json:"title"`
}

// PhotosInAlbum is a page of an album's photos plus the album metadata.
type PhotosInAlbum struct {
	CollectionOfPhotos
	Album AlbumInfo `json:"album"`
}

// GalleryInfo describes the gallery a collection of photos came from.
type GalleryInfo struct {
	OwnerName string `json:"owner_name"`
	Title     string `json:"title"`
}

// PhotosInGallery is a page of a gallery's photos plus the gallery metadata.
type PhotosInGallery struct {
	CollectionOfPhotos
	Gallery GalleryInfo `json:"gallery"`
}

// GroupInfo describes a Flickr group.
type GroupInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PhotosInGroup is a page of a group pool's photos plus the group metadata.
type PhotosInGroup struct {
	CollectionOfPhotos
	Group GroupInfo `json:"group"`
}

// PhotosFromURL is the result of enumerating any Flickr URL: the photos
// at that URL, pagination info, and whatever container metadata the URL
// kind carries.
type PhotosFromURL struct {
	Kind        string       `json:"type"`
	PageCount   int          `json:"page_count"`
	TotalPhotos int          `json:"total_photos"`
	Photos      []*Photo     `json:"photos"`
	Album       *AlbumInfo   `json:"album,omitempty"`
	Gallery     *GalleryInfo `json:"gallery,omitempty"`
	Group       *GroupInfo   `json:"group,omitempty"`
}

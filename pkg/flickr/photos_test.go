package flickr

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const photoInfoFixture = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
<photo id="32812033543" secret="c1b3784192" server="2903" license="8" safety_level="0" originalformat="jpg">
  <owner nsid="30884892@N08" username="U.S. Coast Guard" realname="Coast Guard" path_alias="coast_guard" />
  <title>Puppy Kisses</title>
  <description>Seaman Nina Bowen shows off her lifesaving skills.</description>
  <dates posted="1490376472" taken="2017-02-17 00:00:00" takengranularity="0" takenunknown="0" />
  <urls>
    <url type="photopage">https://www.flickr.com/photos/coast_guard/32812033543/</url>
  </urls>
</photo>
</rsp>`

const photoSizesFixture = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
<sizes canblog="0" canprint="0" candownload="1">
  <size label="Square" width="75" height="75" source="https://live.staticflickr.com/2903/32812033543_c1b3784192_s.jpg" url="https://www.flickr.com/photos/coast_guard/32812033543/sizes/sq/" media="photo" />
  <size label="Large Square" width="150" height="150" source="https://live.staticflickr.com/2903/32812033543_c1b3784192_q.jpg" url="https://www.flickr.com/photos/coast_guard/32812033543/sizes/q/" media="photo" />
  <size label="Medium" width="500" height="333" source="https://live.staticflickr.com/2903/32812033543_c1b3784192.jpg" url="https://www.flickr.com/photos/coast_guard/32812033543/sizes/m/" media="photo" />
  <size label="Original" width="4928" height="3280" source="https://live.staticflickr.com/2903/32812033543_415b3acfae_o.jpg" url="https://www.flickr.com/photos/coast_guard/32812033543/sizes/o/" media="photo" />
</sizes>
</rsp>`

func TestGetSinglePhoto(t *testing.T) {
	ts := newTestServer(t)
	ts.register("flickr.photos.getInfo", photoInfoFixture)
	ts.register("flickr.photos.getSizes", photoSizesFixture)
	client := newTestClient(t, ts)

	photo, err := client.GetSinglePhoto(context.Background(), "32812033543")
	require.NoError(t, err)

	assert.Equal(t, "32812033543", photo.ID)
	assert.Equal(t, "Puppy Kisses", photo.Title)
	assert.Equal(t, "Seaman Nina Bowen shows off her lifesaving skills.", photo.Description)
	assert.Equal(t, "https://www.flickr.com/photos/coast_guard/32812033543/", photo.URL)
	assert.Equal(t, "jpg", photo.OriginalFormat)
	assert.Equal(t, SafetySafe, photo.SafetyLevel)

	assert.Equal(t, &User{
		ID:         "30884892@N08",
		Username:   "U.S. Coast Guard",
		Realname:   "Coast Guard",
		PhotosURL:  "https://www.flickr.com/photos/coast_guard/",
		ProfileURL: "https://www.flickr.com/people/coast_guard/",
	}, photo.Owner)

	assert.Equal(t, time.Date(2017, 3, 24, 17, 27, 52, 0, time.UTC), photo.DatePosted)
	assert.Equal(t, DateTaken{
		Known:       true,
		Value:       time.Date(2017, 2, 17, 0, 0, 0, 0, time.UTC),
		Granularity: GranularitySecond,
	}, photo.DateTaken)

	assert.Equal(t, License{
		ID:    "nkcr",
		Label: "No known copyright restrictions",
		URL:   "https://www.flickr.com/commons/usage/",
	}, photo.License)

	require.Len(t, photo.Sizes, 4)
	assert.Equal(t, Size{
		Label:  "Square",
		Width:  75,
		Height: 75,
		Media:  "photo",
		Source: "https://live.staticflickr.com/2903/32812033543_c1b3784192_s.jpg",
	}, photo.Sizes[0])
	assert.Equal(t, "Original", photo.Sizes[3].Label)
}

func TestGetSinglePhotoOwnerWithoutPathAlias(t *testing.T) {
	ts := newTestServer(t)
	ts.register("flickr.photos.getInfo", `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
<photo id="52782497889" license="0" safety_level="0">
  <owner nsid="199246608@N02" username="cefarrjf87" realname="" path_alias="" />
  <title>IMG_6027</title>
  <dates posted="1678666385" taken="2023-02-20 23:32:31" takengranularity="0" takenunknown="1" />
  <urls>
    <url type="photopage">https://www.flickr.com/photos/199246608@N02/52782497889/</url>
  </urls>
</photo>
</rsp>`)
	ts.register("flickr.photos.getSizes", `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
<sizes><size label="Medium" width="500" height="375" source="https://live.staticflickr.com/1/52782497889.jpg" media="photo" /></sizes>
</rsp>`)
	client := newTestClient(t, ts)

	photo, err := client.GetSinglePhoto(context.Background(), "52782497889")
	require.NoError(t, err)

	// No path alias: the owner URLs fall back to the user ID.
	assert.Equal(t, "https://www.flickr.com/photos/199246608@N02/", photo.Owner.PhotosURL)
	assert.Empty(t, photo.Owner.Realname)

	// The taken-date was flagged unknown, so no value leaks through.
	assert.Equal(t, DateTaken{Known: false}, photo.DateTaken)
	assert.Empty(t, photo.OriginalFormat)
}

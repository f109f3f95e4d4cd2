package flickr

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flinumeratr/pkg/logger"
)

const licensesFixture = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
<licenses>
  <license id="0" name="All Rights Reserved" url="" />
  <license id="1" name="Attribution-NonCommercial-ShareAlike License" url="https://creativecommons.org/licenses/by-nc-sa/2.0/" />
  <license id="4" name="Attribution License" url="https://creativecommons.org/licenses/by/2.0/" />
  <license id="8" name="No known copyright restrictions" url="https://www.flickr.com/commons/usage/" />
</licenses>
</rsp>`

const lookupUserFixture = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
<user id="12403504@N02">
  <username>The British Library</username>
</user>
</rsp>`

const personFixture = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
<person id="12403504@N02">
  <username>The British Library</username>
  <realname>British Library</realname>
  <photosurl>https://www.flickr.com/photos/britishlibrary/</photosurl>
  <profileurl>https://www.flickr.com/people/britishlibrary/</profileurl>
</person>
</rsp>`

const lookupGroupFixture = `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="ok">
<group id="34427469792@N01">
  <groupname>FlickrCentral</groupname>
</group>
</rsp>`

// testServer fakes the Flickr API: each registered method serves a fixed
// XML body, and calls per method are counted.
type testServer struct {
	*httptest.Server

	mu       sync.Mutex
	fixtures map[string]string
	calls    map[string]int
	requests []*http.Request
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		fixtures: make(map[string]string),
		calls:    make(map[string]int),
	}
	ts.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method := r.URL.Query().Get("method")

		ts.mu.Lock()
		ts.calls[method]++
		ts.requests = append(ts.requests, r.Clone(r.Context()))
		fixture, ok := ts.fixtures[method]
		ts.mu.Unlock()

		if !ok {
			t.Errorf("unexpected API method: %s", method)
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(fixture))
	}))
	t.Cleanup(ts.Close)

	ts.fixtures["flickr.photos.licenses.getInfo"] = licensesFixture
	return ts
}

func (ts *testServer) register(method, fixture string) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.fixtures[method] = fixture
}

func (ts *testServer) callCount(method string) int {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.calls[method]
}

// lastQuery returns the query values of the most recent call to method.
func (ts *testServer) lastQuery(method string) map[string]string {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	for i := len(ts.requests) - 1; i >= 0; i-- {
		q := ts.requests[i].URL.Query()
		if q.Get("method") == method {
			flat := make(map[string]string, len(q))
			for k := range q {
				flat[k] = q.Get(k)
			}
			return flat
		}
	}
	return nil
}

func newTestClient(t *testing.T, ts *testServer) *Client {
	t.Helper()

	client := NewClient("test-api-key", "flinumeratr-tests", 5*time.Second, logger.NewTestLogger())
	client.SetBaseURL(ts.URL + "/")
	return client
}

func TestCallSendsAPIKeyAndUserAgent(t *testing.T) {
	ts := newTestServer(t)
	client := newTestClient(t, ts)

	_, err := client.LookupLicenseByID(context.Background(), "0")
	require.NoError(t, err)

	query := ts.lastQuery("flickr.photos.licenses.getInfo")
	assert.Equal(t, "test-api-key", query["api_key"])

	ts.mu.Lock()
	lastReq := ts.requests[len(ts.requests)-1]
	ts.mu.Unlock()
	assert.Equal(t, "flinumeratr-tests", lastReq.Header.Get("User-Agent"))
}

func TestCallNotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.register("flickr.photos.getInfo", `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="fail">
  <err code="1" msg="Photo &quot;9999999999999999&quot; not found (invalid ID)" />
</rsp>`)
	client := newTestClient(t, ts)

	_, err := client.GetSinglePhoto(context.Background(), "9999999999999999")

	var notFound *ResourceNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "flickr.photos.getInfo", notFound.Method)
}

func TestCallAPIError(t *testing.T) {
	ts := newTestServer(t)
	ts.register("flickr.photos.getInfo", `<?xml version="1.0" encoding="utf-8" ?>
<rsp stat="fail">
  <err code="100" msg="Invalid API Key (Key has invalid format)" />
</rsp>`)
	client := newTestClient(t, ts)

	_, err := client.GetSinglePhoto(context.Background(), "32812033543")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "100", apiErr.Code)
	assert.Contains(t, apiErr.Message, "Invalid API Key")
}

func TestCallHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-api-key", "flinumeratr-tests", 5*time.Second, logger.NewTestLogger())
	client.SetBaseURL(server.URL + "/")

	_, err := client.LookupUserByURL(context.Background(), "https://www.flickr.com/photos/example/")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")

	// HTTP failures are not API failures: no fail envelope was
	// returned, so no *APIError either.
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestLookupLicenseByID(t *testing.T) {
	ts := newTestServer(t)
	client := newTestClient(t, ts)
	ctx := context.Background()

	license, err := client.LookupLicenseByID(ctx, "0")
	require.NoError(t, err)
	assert.Equal(t, License{ID: "in-copyright", Label: "All Rights Reserved"}, license)

	license, err = client.LookupLicenseByID(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, License{
		ID:    "cc-by-2.0",
		Label: "CC BY 2.0",
		URL:   "https://creativecommons.org/licenses/by/2.0/",
	}, license)
}

func TestLookupLicenseByIDNotFound(t *testing.T) {
	ts := newTestServer(t)
	client := newTestClient(t, ts)

	_, err := client.LookupLicenseByID(context.Background(), "99")

	var notFound *LicenseNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "99", notFound.Code)
}

func TestLicensesAreFetchedOnce(t *testing.T) {
	ts := newTestServer(t)
	client := newTestClient(t, ts)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := client.LookupLicenseByID(ctx, "0")
		require.NoError(t, err)
	}

	assert.Equal(t, 1, ts.callCount("flickr.photos.licenses.getInfo"))
}

func TestLookupUserByURL(t *testing.T) {
	ts := newTestServer(t)
	ts.register("flickr.urls.lookupUser", lookupUserFixture)
	ts.register("flickr.people.getInfo", personFixture)
	client := newTestClient(t, ts)

	user, err := client.LookupUserByURL(context.Background(), "https://www.flickr.com/photos/britishlibrary/")
	require.NoError(t, err)

	assert.Equal(t, &User{
		ID:         "12403504@N02",
		Username:   "The British Library",
		Realname:   "British Library",
		PhotosURL:  "https://www.flickr.com/photos/britishlibrary/",
		ProfileURL: "https://www.flickr.com/people/britishlibrary/",
	}, user)
}

func TestLookupUserByURLIsCached(t *testing.T) {
	ts := newTestServer(t)
	ts.register("flickr.urls.lookupUser", lookupUserFixture)
	ts.register("flickr.people.getInfo", personFixture)
	client := newTestClient(t, ts)
	ctx := context.Background()

	first, err := client.LookupUserByURL(ctx, "https://www.flickr.com/photos/britishlibrary/")
	require.NoError(t, err)
	second, err := client.LookupUserByURL(ctx, "https://www.flickr.com/photos/britishlibrary/")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, ts.callCount("flickr.urls.lookupUser"))
	assert.Equal(t, 1, ts.callCount("flickr.people.getInfo"))
}

func TestLookupGroupByURL(t *testing.T) {
	ts := newTestServer(t)
	ts.register("flickr.urls.lookupGroup", lookupGroupFixture)
	client := newTestClient(t, ts)
	ctx := context.Background()

	group, err := client.LookupGroupByURL(ctx, "https://www.flickr.com/groups/central/")
	require.NoError(t, err)
	assert.Equal(t, &GroupInfo{ID: "34427469792@N01", Name: "FlickrCentral"}, group)

	_, err = client.LookupGroupByURL(ctx, "https://www.flickr.com/groups/central/")
	require.NoError(t, err)
	assert.Equal(t, 1, ts.callCount("flickr.urls.lookupGroup"))
}

package flickr

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"flinumeratr/pkg/logger"
	"flinumeratr/pkg/ratelimit"
)

// DefaultBaseURL is the endpoint all Flickr REST API methods go through.
const DefaultBaseURL = "https://api.flickr.com/services/rest/"

// Client is a thin wrapper for calling the Flickr API. It keeps the XML
// envelope handling in one place and caches immutable reference data
// (licenses, user and group lookups) for the lifetime of the client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	logger     logger.Logger
	limiter    ratelimit.Limiter

	licensesOnce sync.Once
	licenses     map[string]License
	licensesErr  error

	mu     sync.Mutex
	users  map[string]*User
	groups map[string]*GroupInfo
}

// NewClient creates a new Flickr API client.
func NewClient(apiKey, userAgent string, timeout time.Duration, log logger.Logger) *Client {
	if log == nil {
		log = logger.GetLogger()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		userAgent: userAgent,
		logger:    log,
		limiter:   ratelimit.Unlimited{},
		users:     make(map[string]*User),
		groups:    make(map[string]*GroupInfo),
	}
}

// SetBaseURL overrides the API endpoint, for testing.
func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = baseURL
}

// SetHTTPClient overrides the underlying HTTP client.
func (c *Client) SetHTTPClient(httpClient *http.Client) {
	c.httpClient = httpClient
}

// SetLimiter installs a rate limiter applied before every API call.
func (c *Client) SetLimiter(limiter ratelimit.Limiter) {
	c.limiter = limiter
}

// rspEnvelope is the outer <rsp> element every API response carries.
//
// Failures look like:
//
//	<rsp stat="fail">
//	    <err code="1" msg="Photo not found" />
//	</rsp>
type rspEnvelope struct {
	Stat string `xml:"stat,attr"`
	Err  *struct {
		Code string `xml:"code,attr"`
		Msg  string `xml:"msg,attr"`
	} `xml:"err"`
}

// call invokes one API method and unmarshals the response body into out.
//
// The envelope is checked first: error code "1" is the API's convention
// for "not found" across endpoints, and becomes a ResourceNotFoundError.
func (c *Client) call(ctx context.Context, method string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	query := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	query.Set("method", method)
	query.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", method, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	c.logger.DebugWithFields("calling flickr API", map[string]interface{}{
		"method": method,
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.ErrorWithFields("flickr API request failed", map[string]interface{}{
			"method": method,
			"error":  err.Error(),
		})
		return fmt.Errorf("request to %s failed: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", method, err)
	}

	c.logger.DebugWithFields("flickr API call completed", map[string]interface{}{
		"method":   method,
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	})

	// A non-200 status is a transport-level failure, not an API failure:
	// *APIError is reserved for codes the API itself reports in its
	// fail envelope.
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s returned HTTP %d", method, resp.StatusCode)
	}

	var envelope rspEnvelope
	if err := xml.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", method, err)
	}

	if envelope.Stat == "fail" {
		code, msg := "", ""
		if envelope.Err != nil {
			code, msg = envelope.Err.Code, envelope.Err.Msg
		}
		if code == "1" {
			return &ResourceNotFoundError{Method: method, Params: params}
		}
		return &APIError{Method: method, Code: code, Message: msg}
	}

	if out != nil {
		if err := xml.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to parse response from %s: %w", method, err)
		}
	}
	return nil
}

type licensesResponse struct {
	Licenses []struct {
		ID   string `xml:"id,attr"`
		Name string `xml:"name,attr"`
		URL  string `xml:"url,attr"`
	} `xml:"licenses>license"`
}

// getLicenses fetches the license table, once per client.
func (c *Client) getLicenses(ctx context.Context) (map[string]License, error) {
	c.licensesOnce.Do(func() {
		var resp licensesResponse
		if err := c.call(ctx, "flickr.photos.licenses.getInfo", url.Values{}, &resp); err != nil {
			c.licensesErr = err
			return
		}

		licenses := make(map[string]License, len(resp.Licenses))
		for _, lic := range resp.Licenses {
			licenses[lic.ID] = normalizeLicense(lic.Name, lic.URL)
		}
		c.licenses = licenses
	})

	return c.licenses, c.licensesErr
}

// LookupLicenseByID returns the license data for a numeric license code
// as it appears in photo responses, e.g. license="0".
func (c *Client) LookupLicenseByID(ctx context.Context, id string) (License, error) {
	licenses, err := c.getLicenses(ctx)
	if err != nil {
		return License{}, err
	}

	license, ok := licenses[id]
	if !ok {
		return License{}, &LicenseNotFoundError{Code: id}
	}
	return license, nil
}

type lookupUserResponse struct {
	User struct {
		ID string `xml:"id,attr"`
	} `xml:"user"`
}

type personResponse struct {
	Person struct {
		Username   string `xml:"username"`
		Realname   string `xml:"realname"`
		PhotosURL  string `xml:"photosurl"`
		ProfileURL string `xml:"profileurl"`
	} `xml:"person"`
}

// LookupUserByURL resolves the link to a user's photos or profile into
// their info. Results are cached per client.
func (c *Client) LookupUserByURL(ctx context.Context, userURL string) (*User, error) {
	c.mu.Lock()
	if user, ok := c.users[userURL]; ok {
		c.mu.Unlock()
		return user, nil
	}
	c.mu.Unlock()

	var lookupResp lookupUserResponse
	if err := c.call(ctx, "flickr.urls.lookupUser", url.Values{"url": {userURL}}, &lookupResp); err != nil {
		return nil, err
	}

	var infoResp personResponse
	params := url.Values{"user_id": {lookupResp.User.ID}}
	if err := c.call(ctx, "flickr.people.getInfo", params, &infoResp); err != nil {
		return nil, err
	}

	user := &User{
		ID:         lookupResp.User.ID,
		Username:   infoResp.Person.Username,
		Realname:   infoResp.Person.Realname,
		PhotosURL:  infoResp.Person.PhotosURL,
		ProfileURL: infoResp.Person.ProfileURL,
	}

	c.mu.Lock()
	c.users[userURL] = user
	c.mu.Unlock()

	return user, nil
}

type lookupGroupResponse struct {
	Group struct {
		ID   string `xml:"id,attr"`
		Name string `xml:"groupname"`
	} `xml:"group"`
}

// LookupGroupByURL resolves the link to a group's photos or profile into
// its info. Results are cached per client.
func (c *Client) LookupGroupByURL(ctx context.Context, groupURL string) (*GroupInfo, error) {
	c.mu.Lock()
	if group, ok := c.groups[groupURL]; ok {
		c.mu.Unlock()
		return group, nil
	}
	c.mu.Unlock()

	var resp lookupGroupResponse
	if err := c.call(ctx, "flickr.urls.lookupGroup", url.Values{"url": {groupURL}}, &resp); err != nil {
		return nil, err
	}

	group := &GroupInfo{
		ID:   resp.Group.ID,
		Name: resp.Group.Name,
	}

	c.mu.Lock()
	c.groups[groupURL] = group
	c.mu.Unlock()

	return group, nil
}

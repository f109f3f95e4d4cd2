package urls

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Resolver turns a short link into its long-form target URL. flic.kr is
// a plain HTTP redirector, so resolution means following one redirect --
// but it's behind this interface so the classifier stays testable without
// the network.
type Resolver interface {
	ResolveRedirect(ctx context.Context, shortURL string) (string, error)
}

// RedirectResolver resolves short links by asking flic.kr where they
// redirect to. It never follows the redirect itself; it just reads the
// Location header off the 30x response.
type RedirectResolver struct {
	httpClient *http.Client
}

// NewRedirectResolver returns a resolver with its own HTTP client.
func NewRedirectResolver(timeout time.Duration) *RedirectResolver {
	return &RedirectResolver{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (r *RedirectResolver) ResolveRedirect(ctx context.Context, shortURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, shortURL, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 300 || resp.StatusCode >= 400 {
		return "", fmt.Errorf("expected a redirect, got HTTP %d", resp.StatusCode)
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return "", fmt.Errorf("redirect without a Location header")
	}
	return location, nil
}

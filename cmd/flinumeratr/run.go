package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"flinumeratr/pkg/auth"
	"flinumeratr/pkg/flickr"
	"flinumeratr/pkg/logger"
	"flinumeratr/pkg/ratelimit"
	"flinumeratr/pkg/urls"
)

var (
	perPage int
	page    int
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <flickr-url>",
	Short: "List the photos behind a Flickr URL",
	Long: `Classify a Flickr URL, fetch the photos at it, and print them
as JSON. Requires a Flickr API key (flinumeratr auth set, the
FLICKR_API_KEY environment variable, or --api-key).`,
	Example: `  # A single photo
  flinumeratr run https://www.flickr.com/photos/coast_guard/32812033543

  # An album, 100 photos per page
  flinumeratr run https://www.flickr.com/photos/cat_tac/albums/72157666833379009

  # A short link
  flinumeratr run https://flic.kr/p/2nRgmi2`,
	Args: cobra.ExactArgs(1),
	RunE: runEnumerate,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntVar(&perPage, "per-page", 0, "photos per page (default from config)")
	runCmd.Flags().IntVar(&page, "page", 0, "page to fetch (overrides any page in the URL)")
}

func runEnumerate(cmd *cobra.Command, args []string) error {
	log := logger.GetLogger()
	ctx := context.Background()

	apiKey, err := resolveAPIKey()
	if err != nil {
		return err
	}

	client := flickr.NewClient(apiKey, cfg.Flickr.UserAgent, cfg.Flickr.Timeout, log)
	if cfg.Fetch.RequestsPerMinute > 0 {
		client.SetLimiter(ratelimit.PerMinute(cfg.Fetch.RequestsPerMinute))
	}

	resolver := urls.NewRedirectResolver(cfg.Flickr.Timeout)

	parsed, err := urls.ParseWithResolver(ctx, args[0], resolver)
	if err != nil {
		return describeParseError(err)
	}
	if page > 0 {
		parsed.Page = page
	}

	size := cfg.Fetch.PerPage
	if perPage > 0 {
		size = perPage
	}

	log.InfoWithFields("enumerating photos", map[string]interface{}{
		"kind": string(parsed.Kind),
		"page": parsed.Page,
	})

	result, err := client.GetPhotosFromParseResult(ctx, parsed, size)
	if err != nil {
		var notFound *flickr.ResourceNotFoundError
		if errors.As(err, &notFound) {
			return fmt.Errorf("there is no content at %s", args[0])
		}
		return err
	}

	return printJSON(result)
}

// resolveAPIKey picks the API key from config (which already folds in
// flags and the environment), falling back to stored credentials.
func resolveAPIKey() (string, error) {
	if cfg.Flickr.APIKey != "" {
		return cfg.Flickr.APIKey, nil
	}

	creds, err := auth.NewManager().Retrieve()
	if err != nil {
		return "", errors.New("no Flickr API key found: run 'flinumeratr auth set', set FLICKR_API_KEY, or pass --api-key")
	}
	return creds.APIKey, nil
}

func describeParseError(err error) error {
	var notFlickr *urls.NotFlickrURLError
	var unrecognised *urls.UnrecognisedURLError

	switch {
	case errors.As(err, &notFlickr):
		return fmt.Errorf("%s doesn't live on Flickr.com", notFlickr.URL)
	case errors.As(err, &unrecognised):
		return fmt.Errorf("%s is a Flickr URL, but not one with photos behind it", unrecognised.URL)
	default:
		return err
	}
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

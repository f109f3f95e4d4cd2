package main

import (
	"context"

	"github.com/spf13/cobra"

	"flinumeratr/pkg/urls"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <flickr-url>",
	Short: "Classify a Flickr URL without fetching anything",
	Long: `Work out what kind of resource a Flickr URL points to -- single
photo, album, user, group, gallery, or tag -- and print the extracted
identifiers as JSON. Needs no API key; only flic.kr short links other
than photo links touch the network (to follow the redirect).`,
	Example: `  flinumeratr classify https://www.flickr.com/photos/sdasmarchives/50567213201
  flinumeratr classify https://flic.kr/p/2nRgmi2`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	resolver := urls.NewRedirectResolver(cfg.Flickr.Timeout)

	parsed, err := urls.ParseWithResolver(context.Background(), args[0], resolver)
	if err != nil {
		return describeParseError(err)
	}

	return printJSON(parsed)
}

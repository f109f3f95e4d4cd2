package main

import (
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"flinumeratr/pkg/auth"
)

// authCmd represents the auth command
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the stored Flickr API key",
	Long: `Manage the Flickr API key used for fetching photos.

The key is stored in the system keychain when one is available. The
FLICKR_API_KEY environment variable always works as a read-only
fallback.

Get an API key at https://www.flickr.com/services/api/misc.api_keys.html`,
}

// authSetCmd represents the auth set command
var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store a Flickr API key",
	Long:  `Prompt for a Flickr API key and store it in the system keychain.`,
	Args:  cobra.NoArgs,
	RunE:  runAuthSet,
}

// authShowCmd represents the auth show command
var authShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored API key (masked)",
	Args:  cobra.NoArgs,
	RunE:  runAuthShow,
}

// authRemoveCmd represents the auth remove command
var authRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove the stored API key",
	Args:  cobra.NoArgs,
	RunE:  runAuthRemove,
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authSetCmd)
	authCmd.AddCommand(authShowCmd)
	authCmd.AddCommand(authRemoveCmd)
}

func runAuthSet(cmd *cobra.Command, args []string) error {
	fmt.Print("Flickr API key: ")
	keyBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read API key: %w", err)
	}

	apiKey := strings.TrimSpace(string(keyBytes))
	if apiKey == "" {
		return errors.New("API key cannot be empty")
	}

	manager := auth.NewManager()
	if err := manager.Store(&auth.Credentials{APIKey: apiKey}); err != nil {
		return err
	}

	fmt.Println("API key stored.")
	return nil
}

func runAuthShow(cmd *cobra.Command, args []string) error {
	creds, err := auth.NewManager().Retrieve()
	if err != nil {
		if errors.Is(err, auth.ErrCredentialsNotFound) {
			return errors.New("no API key stored")
		}
		return err
	}

	fmt.Printf("API key: %s\n", auth.MaskKey(creds.APIKey))
	if !creds.LastModified.IsZero() {
		fmt.Printf("Stored:  %s\n", creds.LastModified.Format("2006-01-02 15:04:05"))
	}
	return nil
}

func runAuthRemove(cmd *cobra.Command, args []string) error {
	if err := auth.NewManager().Delete(); err != nil {
		if errors.Is(err, auth.ErrCredentialsNotFound) {
			return errors.New("no API key stored")
		}
		return err
	}

	fmt.Println("API key removed.")
	return nil
}

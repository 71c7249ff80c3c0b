package cmd

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nfrund/learnhub/internal/apiclient"
)

type options struct {
	apiURL  string
	token   string
	timeout time.Duration
	format  string
}

// NewRootCmd builds the command tree. Flags default to API_BASE_URL and
// LEARNHUB_TOKEN from the environment.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "learnhub-cli",
		Short: "LearnHub CLI tool",
		Long: `learnhub-cli talks to the LearnHub REST API the web front-end uses.

Available commands:
  courses          List the course catalog
  payments config  Show the payment gateway configuration
  payments test    Create a test payment through the gateway

Use "learnhub-cli [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.apiURL, "api", os.Getenv("API_BASE_URL"), "Base URL of the REST API")
	flags.StringVar(&opts.token, "token", os.Getenv("LEARNHUB_TOKEN"), "Bearer token for authenticated endpoints")
	flags.DurationVar(&opts.timeout, "timeout", 10*time.Second, "Timeout of each API call")
	flags.StringVarP(&opts.format, "format", "f", "table", "Output format (table, json)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCoursesCmd(opts))
	rootCmd.AddCommand(newPaymentsCmd(opts))
	return rootCmd
}

// Execute executes the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (o *options) client() (*apiclient.Client, error) {
	if o.apiURL == "" {
		return nil, errors.New("no API URL: pass --api or set API_BASE_URL")
	}
	return apiclient.New(o.apiURL, apiclient.NewHTTPClient(o.timeout)), nil
}

// context carries the token, if any, for the API client.
func (o *options) context(parent context.Context) context.Context {
	if o.token == "" {
		return parent
	}
	return apiclient.WithToken(parent, o.token)
}

package cli

import (
	"os"

	"highscore-server/internal/client"
	"highscore-server/internal/integrity"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ServerURL string
	Secret    string
	Algorithm string
}

// NewRootCommand creates the root command for scorectl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "scorectl",
		Short:         "Submit and inspect high scores",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ServerURL, "server", envOr("HIGHSCORE_SERVER_URL", "http://localhost:3000"), "score server base URL")
	cmd.PersistentFlags().StringVar(&opts.Secret, "secret", os.Getenv("HIGHSCORE_SECRET_KEY"), "shared signing secret")
	cmd.PersistentFlags().StringVar(&opts.Algorithm, "algorithm", envOr("INTEGRITY_ALGORITHM", "sha1"), "digest algorithm (sha1|hmac-sha256)")

	cmd.AddCommand(NewSubmitCommand(opts))
	cmd.AddCommand(NewPlayerCommand(opts))
	cmd.AddCommand(NewTopCommand(opts))
	cmd.AddCommand(NewSecretCommand())

	return cmd
}

func (o *RootOptions) client() (*client.Client, error) {
	strategy, err := integrity.StrategyFor(o.Algorithm)
	if err != nil {
		return nil, err
	}
	return client.New(client.Options{BaseURL: o.ServerURL, Secret: o.Secret, Strategy: strategy}), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

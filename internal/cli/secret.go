package cli

import (
	"errors"
	"fmt"

	"highscore-server/internal/constants"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/spf13/cobra"
)

func NewSecretCommand() *cobra.Command {
	var length int

	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Generate a shared signing secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := GenerateSecret(length)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "HIGHSCORE_SECRET_KEY=%s\n", secret)
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", constants.SecretLength, "number of characters")
	return cmd
}

// GenerateSecret returns a random URL-safe key of the given length.
func GenerateSecret(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("length must be greater than zero")
	}
	secret, err := gonanoid.New(length)
	if err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return secret, nil
}

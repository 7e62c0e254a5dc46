package cli

import (
	"errors"
	"fmt"
	"time"

	"highscore-server/internal/client"

	"github.com/spf13/cobra"
)

type submitOptions struct {
	initials  string
	score     int64
	player    string
	timestamp string
}

func NewSubmitCommand(root *RootOptions) *cobra.Command {
	opts := &submitOptions{}

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Sign and submit a score",
		RunE: func(cmd *cobra.Command, args []string) error {
			if root.Secret == "" {
				return errors.New("a signing secret is required (--secret or HIGHSCORE_SECRET_KEY)")
			}
			c, err := root.client()
			if err != nil {
				return err
			}

			ts := opts.timestamp
			if ts == "" {
				ts = time.Now().Format(client.TimestampLayout)
			}

			resp, err := c.Submit(cmd.Context(), client.Score{
				Initials:  opts.initials,
				Score:     opts.score,
				PlayerID:  opts.player,
				Timestamp: ts,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.initials, "initials", "", "player initials")
	cmd.Flags().Int64Var(&opts.score, "score", 0, "score value")
	cmd.Flags().StringVar(&opts.player, "player", "", "player unique id")
	cmd.Flags().StringVar(&opts.timestamp, "timestamp", "", "submission time as DD/MM/YYYY hh:mm:ss (default now)")
	_ = cmd.MarkFlagRequired("initials")
	_ = cmd.MarkFlagRequired("player")

	return cmd
}

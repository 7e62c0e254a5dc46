package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"highscore-server/internal/client"

	"github.com/spf13/cobra"
)

func NewPlayerCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "player <uniqueid>",
		Short: "List a player's scores",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			scores, err := c.PlayerScores(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printScores(cmd.OutOrStdout(), scores)
		},
	}
}

func NewTopCommand(root *RootOptions) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the global leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}
			if raw {
				entries, err := c.Top100(cmd.Context())
				if err != nil {
					return err
				}
				return printRaw(cmd.OutOrStdout(), entries)
			}
			scores, err := c.Top10(cmd.Context())
			if err != nil {
				return err
			}
			return printScores(cmd.OutOrStdout(), scores)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "top 100 with epoch-second timestamps")
	return cmd
}

func printScores(out io.Writer, scores []client.ScoreEntry) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tINITIALS\tSCORE\tSUBMITTED")
	for i, s := range scores {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", i+1, s.Initials, s.Score, s.Timestamp)
	}
	return w.Flush()
}

func printRaw(out io.Writer, entries []client.RawEntry) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tINITIALS\tSCORE\tTIMESTAMP")
	for i, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%d\t%d\n", i+1, e.Initials, e.Score, e.Timestamp)
	}
	return w.Flush()
}

package main

import (
	"fmt"
	"strconv"

	"github.com/example/voicebank/internal/vocab"
	"github.com/spf13/cobra"
)

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <score>",
		Short: "Show which clips play, in order, to announce a score",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid score %q: %w", args[0], err)
			}

			seq, err := vocab.ScoreSequence(score)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Score %d plays:\n", score)
			for _, entry := range seq {
				fmt.Fprintf(out, "  -> %s (%q)\n", vocab.FileName(entry), entry.Text)
			}

			return nil
		},
	}

	return cmd
}

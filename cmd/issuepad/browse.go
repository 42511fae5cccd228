package main

import (
	"github.com/amonks/issuepad/tui"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse [owner/repo]",
	Short: "Browse repositories and issues interactively",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	opts := tui.Options{OldestFirst: a.cfg.OldestFirst()}
	if len(args) > 0 {
		if _, _, err := splitRepoArg(args[0]); err != nil {
			return err
		}
		opts.Repo = args[0]
	}

	return tui.Run(cmd.Context(), a.tracker, opts)
}

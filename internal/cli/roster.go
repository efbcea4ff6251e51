package cli

import (
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/golfcup/internal/api/response"
)

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster selection and team balancing commands",
	}

	cmd.AddCommand(newRosterShowCmd())
	cmd.AddCommand(newRosterToggleCmd())
	cmd.AddCommand(newRosterIncludeAllCmd())
	cmd.AddCommand(newRosterIncludeNoneCmd())
	cmd.AddCommand(newRosterBalanceCmd())
	cmd.AddCommand(newRosterSaveCmd())

	return cmd
}

func newRosterShowCmd() *cobra.Command {
	var sort string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the roster table",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/roster"
			if sort != "" {
				path += "?sort=" + url.QueryEscape(sort)
			}

			var result response.Roster
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&sort, "sort", "", "Sort order: name-asc, hi-asc, hi-desc")

	return cmd
}

func newRosterToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <player-id>",
		Short: "Include or exclude a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Toggle
			if err := client.Post("/api/v1/roster/included/"+url.PathEscape(args[0]), nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newRosterIncludeAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "include-all",
		Short: "Include every registered player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/roster/include-all", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("All players included")
			return nil
		},
	}
}

func newRosterIncludeNoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "include-none",
		Short: "Exclude every player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/roster/include-none", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("All players excluded")
			return nil
		},
	}
}

func newRosterBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Split the included players into two teams by handicap",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Balance
			if err := client.Post("/api/v1/roster/balance", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newRosterSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [name]",
		Short: "Save the current selection as the active roster",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"name": ""}
			if len(args) == 1 {
				req["name"] = args[0]
			}

			var result response.SavedRoster
			if err := client.Post("/api/v1/roster", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

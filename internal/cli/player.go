package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/golfcup/internal/api/response"
)

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player registry commands",
	}

	cmd.AddCommand(newPlayerListCmd())
	cmd.AddCommand(newPlayerAddCmd())
	cmd.AddCommand(newPlayerEditCmd())
	cmd.AddCommand(newPlayerTeamCmd())
	cmd.AddCommand(newPlayerRemoveCmd())
	cmd.AddCommand(newPlayerSearchCmd())
	cmd.AddCommand(newPlayerClearCmd())

	return cmd
}

func newPlayerListCmd() *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered players",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/players"
			if team != "" {
				path += "?team=" + url.QueryEscape(team)
			}

			var result response.PlayerList
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Only list players on a team (A, B or NA)")

	return cmd
}

func newPlayerAddCmd() *cobra.Command {
	var team string

	cmd := &cobra.Command{
		Use:   "add <name> <index>",
		Short: "Register a player with a handicap index",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[1], err)
			}

			req := map[string]any{"name": args[0], "index": index}
			if team != "" {
				req["team"] = team
			}

			var result response.Player
			if err := client.Post("/api/v1/players", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&team, "team", "", "Team (A, B or NA; default NA)")

	return cmd
}

func newPlayerEditCmd() *cobra.Command {
	var name string
	var index float64

	cmd := &cobra.Command{
		Use:   "edit <player-id>",
		Short: "Change a player's name or handicap index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{}
			if cmd.Flags().Changed("name") {
				req["name"] = name
			}
			if cmd.Flags().Changed("index") {
				req["index"] = index
			}
			if len(req) == 0 {
				return fmt.Errorf("at least one of --name or --index is required")
			}

			var result response.Player
			if err := client.Patch("/api/v1/players/"+url.PathEscape(args[0]), req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().Float64Var(&index, "index", 0, "New handicap index")

	return cmd
}

func newPlayerTeamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "team <player-id> <A|B|NA>",
		Short: "Move a player to a team",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"team": args[1]}

			var result response.Player
			if err := client.Put("/api/v1/players/"+url.PathEscape(args[0])+"/team", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newPlayerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <player-id>",
		Short: "Remove a player",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/players/"+url.PathEscape(args[0]), nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("Player removed")
			return nil
		},
	}
}

func newPlayerSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Find players by approximate name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.PlayerList
			if err := client.Get("/api/v1/players/search?q="+url.QueryEscape(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newPlayerClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every player",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to remove all players without --yes")
			}

			if err := client.Delete("/api/v1/players", nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.PrintMessage("All players removed")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm removing all players")

	return cmd
}

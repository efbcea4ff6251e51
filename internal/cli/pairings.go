package cli

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mcoot/golfcup/internal/api/response"
)

func newPairingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pairings",
		Short: "Per-round pairing commands",
	}

	cmd.AddCommand(newPairingsRoundsCmd())
	cmd.AddCommand(newPairingsShowCmd())
	cmd.AddCommand(newPairingsSetCmd())
	cmd.AddCommand(newPairingsSaveCmd())
	cmd.AddCommand(newPairingsClearCmd())

	return cmd
}

func pairingsPath(round string) string {
	return "/api/v1/rounds/" + url.PathEscape(round) + "/pairings"
}

func newPairingsRoundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rounds",
		Short: "List the rounds of the event",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.RoundList
			if err := client.Get("/api/v1/rounds", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newPairingsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <round>",
		Short: "Show a round's pairings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Pairings
			if err := client.Get(pairingsPath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newPairingsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <round> <match> <field> [player-id]",
		Short: "Select a player for a match field; omit the player to clear it",
		Long: `Select a player for one field of a match.

Matches are numbered from 1. Four-player rounds use the fields a1, a2, b1
and b2; singles use a and b. Omitting the player ID clears the field.`,
		Args: cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			match, err := strconv.Atoi(args[1])
			if err != nil || match < 1 {
				return fmt.Errorf("invalid match number %q", args[1])
			}

			req := map[string]string{"playerId": ""}
			if len(args) == 4 {
				req["playerId"] = args[3]
			}

			path := fmt.Sprintf("%s/%d/%s", pairingsPath(args[0]), match-1, url.PathEscape(args[2]))
			var result response.Pairings
			if err := client.Put(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newPairingsSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <round>",
		Short: "Save a round's pairings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Pairings
			if err := client.Post(pairingsPath(args[0])+"/save", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

func newPairingsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear <round>",
		Short: "Empty every match of a round and save",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Pairings
			if err := client.Delete(pairingsPath(args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/golfcup/internal/api/response"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var outputFormats = []string{OutputText, OutputJSON, OutputYAML}

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	switch o.format {
	case OutputJSON:
		o.printJSON(data)
	case OutputYAML:
		o.printYAML(data)
	default:
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == OutputJSON {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	switch o.format {
	case OutputJSON:
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	case OutputYAML:
		o.printYAML(map[string]string{"message": msg})
	default:
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

// printYAML goes through JSON first so keys match the API field names
func (o *Output) printYAML(data any) {
	raw, err := json.Marshal(data)
	if err != nil {
		o.PrintError(err)
		return
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		o.PrintError(err)
		return
	}

	enc := yaml.NewEncoder(o.w)
	enc.SetIndent(2)
	_ = enc.Encode(generic)
	_ = enc.Close()
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case response.Player:
		o.printPlayer(v)
	case response.PlayerList:
		o.printPlayerList(v)
	case response.Roster:
		o.printRoster(v)
	case response.SavedRoster:
		o.printSavedRoster(v)
	case response.Toggle:
		o.printToggle(v)
	case response.Balance:
		o.printBalance(v)
	case response.RoundList:
		o.printRoundList(v)
	case response.Pairings:
		o.printPairings(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p response.Player) {
	fmt.Fprintf(o.w, "Player: %s (%s)\n", p.Name, p.ID)
	fmt.Fprintf(o.w, "Index: %s\n", p.DisplayIndex)
	fmt.Fprintf(o.w, "Team: %s\n", p.Team)
}

func (o *Output) printPlayerRow(p response.Player, marker string) {
	fmt.Fprintf(o.w, "  %s%-24s %5s  %-2s  %s\n", marker, p.Name, p.DisplayIndex, p.Team, p.ID)
}

func (o *Output) printPlayerList(l response.PlayerList) {
	fmt.Fprintf(o.w, "Players (%d):\n", len(l.Players))
	for _, p := range l.Players {
		o.printPlayerRow(p, "")
	}
}

func (o *Output) printRoster(r response.Roster) {
	fmt.Fprintf(o.w, "Roster: %s\n", r.Name)
	if r.SavedAt != nil {
		fmt.Fprintf(o.w, "Saved: %s\n", r.SavedAt.Format("2006-01-02 15:04"))
	} else {
		fmt.Fprintln(o.w, "Saved: never")
	}
	fmt.Fprintf(o.w, "Included: %d of %d (sorted by %s)\n", len(r.IncludedIDs), len(r.Players), r.Sort)
	for _, e := range r.Players {
		marker := "[ ] "
		if e.Included {
			marker = "[x] "
		}
		o.printPlayerRow(e.Player, marker)
	}

	fmt.Fprintf(o.w, "\nTeam A (%d):\n", len(r.TeamA))
	for _, p := range r.TeamA {
		o.printPlayerRow(p, "")
	}
	fmt.Fprintf(o.w, "Team B (%d):\n", len(r.TeamB))
	for _, p := range r.TeamB {
		o.printPlayerRow(p, "")
	}
}

func (o *Output) printSavedRoster(r response.SavedRoster) {
	fmt.Fprintf(o.w, "Roster saved: %s\n", r.Name)
	fmt.Fprintf(o.w, "Included: %d\n", len(r.IncludedIDs))
	fmt.Fprintf(o.w, "Saved at: %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
}

func (o *Output) printToggle(t response.Toggle) {
	if t.Included {
		fmt.Fprintf(o.w, "Included %s\n", t.PlayerID)
	} else {
		fmt.Fprintf(o.w, "Excluded %s\n", t.PlayerID)
	}
}

func (o *Output) printBalance(b response.Balance) {
	fmt.Fprintf(o.w, "Team A (%d, total index %.1f):\n", len(b.TeamA), b.TeamAIndex)
	for _, p := range b.TeamA {
		o.printPlayerRow(p, "")
	}
	fmt.Fprintf(o.w, "Team B (%d, total index %.1f):\n", len(b.TeamB), b.TeamBIndex)
	for _, p := range b.TeamB {
		o.printPlayerRow(p, "")
	}
}

func (o *Output) printRoundList(l response.RoundList) {
	for _, r := range l.Rounds {
		fmt.Fprintf(o.w, "%-8s %-20s %-20s %d matches, %g pts each\n",
			r.ID, r.Name, strings.Join(r.Formats, "/"), r.Slots, r.Points)
	}
}

func (o *Output) printPairings(p response.Pairings) {
	fmt.Fprintf(o.w, "%s (%s)\n", p.Round.Name, strings.Join(p.Round.Formats, "/"))
	for i, slot := range p.Slots {
		parts := make([]string, 0, len(p.Round.Fields))
		for _, field := range p.Round.Fields {
			parts = append(parts, fmt.Sprintf("%s=%s", field, selectionLabel(slot[field])))
		}
		fmt.Fprintf(o.w, "  Match %d: %s\n", i+1, strings.Join(parts, "  "))
	}
	if p.DuplicateWarning {
		fmt.Fprintf(o.w, "Warning: players selected more than once: %s\n", strings.Join(p.DuplicateIDs, ", "))
	}
}

func selectionLabel(s response.Selection) string {
	switch {
	case s.PlayerID == "":
		return "-"
	case s.Dangling:
		return s.PlayerID + " (removed)"
	default:
		return s.Name
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/mcoot/golfcup/internal/api"
	"github.com/mcoot/golfcup/internal/api/response"
	"github.com/mcoot/golfcup/internal/factory"
	"github.com/mcoot/golfcup/internal/testutil"
)

type CLISuite struct {
	suite.Suite
	server *httptest.Server
	app    *factory.App
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	app, err := factory.New(context.Background(), factory.Config{Logger: testutil.NopLogger()})
	s.Require().NoError(err)
	s.app = app

	s.server = httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:   testutil.NopLogger(),
		Registry: app.Registry,
		Roster:   app.Roster,
		Pairings: app.Pairings,
	}))
}

func (s *CLISuite) TearDownTest() {
	s.server.Close()
}

func (s *CLISuite) run(args ...string) (string, error) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--server", s.server.URL}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLISuite) addPlayer(name, index, team string) response.Player {
	out, err := s.run("-o", "json", "player", "add", name, index, "--team", team)
	s.Require().NoError(err, out)

	var p response.Player
	s.Require().NoError(json.Unmarshal([]byte(out), &p))
	return p
}

func (s *CLISuite) TestHealth() {
	out, err := s.run("health")
	s.Require().NoError(err)
	s.Equal("Status: ok\n", out)
}

func (s *CLISuite) TestInvalidOutputFormat() {
	_, err := s.run("-o", "xml", "health")
	s.Error(err)
}

func (s *CLISuite) TestPlayerAddAndList() {
	s.addPlayer("Alice", "4.3", "A")
	s.addPlayer("Bob", "12", "B")

	out, err := s.run("player", "list")
	s.Require().NoError(err)
	s.Contains(out, "Players (2):")
	s.Contains(out, "Alice")
	s.Contains(out, "12.0")

	out, err = s.run("player", "list", "--team", "B")
	s.Require().NoError(err)
	s.Contains(out, "Players (1):")
	s.NotContains(out, "Alice")
}

func (s *CLISuite) TestPlayerAddRejectsBadIndex() {
	_, err := s.run("player", "add", "Alice", "low")
	s.Error(err)
}

func (s *CLISuite) TestPlayerAddReportsAPIError() {
	_, err := s.run("player", "add", " ", "3")
	s.Require().Error(err)
	s.Contains(err.Error(), "INVALID_NAME")
}

func (s *CLISuite) TestPlayerEditTeamAndRemove() {
	p := s.addPlayer("Alice", "4.3", "A")

	out, err := s.run("player", "edit", p.ID, "--index", "6")
	s.Require().NoError(err)
	s.Contains(out, "Index: 6.0")

	out, err = s.run("player", "team", p.ID, "NA")
	s.Require().NoError(err)
	s.Contains(out, "Team: NA")

	_, err = s.run("player", "edit", p.ID)
	s.Error(err)

	out, err = s.run("player", "remove", p.ID)
	s.Require().NoError(err)
	s.Equal("Player removed\n", out)
	s.Empty(s.app.Registry.List())
}

func (s *CLISuite) TestPlayerClearNeedsConfirmation() {
	s.addPlayer("Alice", "4.3", "A")

	_, err := s.run("player", "clear")
	s.Error(err)
	s.Len(s.app.Registry.List(), 1)

	_, err = s.run("player", "clear", "--yes")
	s.Require().NoError(err)
	s.Empty(s.app.Registry.List())
}

func (s *CLISuite) TestRosterFlow() {
	for _, index := range []string{"1", "13", "5", "9"} {
		s.addPlayer("P"+index, index, "NA")
	}

	_, err := s.run("roster", "include-all")
	s.Require().NoError(err)

	out, err := s.run("roster", "balance")
	s.Require().NoError(err)
	s.Contains(out, "Team A (2, total index 10.0):")
	s.Contains(out, "Team B (2, total index 18.0):")

	out, err = s.run("roster", "save", "Spring Cup")
	s.Require().NoError(err)
	s.Contains(out, "Roster saved: Spring Cup")

	out, err = s.run("roster", "show", "--sort", "hi-asc")
	s.Require().NoError(err)
	s.Contains(out, "Included: 4 of 4 (sorted by hi-asc)")
	s.Less(strings.Index(out, "P1 "), strings.Index(out, "P13"))
}

func (s *CLISuite) TestPairingsFlow() {
	a := s.addPlayer("Alice", "1", "A")
	b := s.addPlayer("Bob", "2", "B")

	out, err := s.run("pairings", "rounds")
	s.Require().NoError(err)
	s.Contains(out, "sat-am")
	s.Contains(out, "sunday")

	_, err = s.run("pairings", "set", "sunday", "1", "a", a.ID)
	s.Require().NoError(err)
	out, err = s.run("pairings", "set", "sunday", "1", "b", b.ID)
	s.Require().NoError(err)
	s.Contains(out, "Match 1: a=Alice  b=Bob")

	out, err = s.run("pairings", "set", "sunday", "2", "a", a.ID)
	s.Require().NoError(err)
	s.Contains(out, "Warning: players selected more than once: "+a.ID)

	_, err = s.run("pairings", "save", "sunday")
	s.Require().NoError(err)

	out, err = s.run("pairings", "clear", "sunday")
	s.Require().NoError(err)
	s.Contains(out, "Match 6: a=-  b=-")
	s.NotContains(out, "Warning")

	_, err = s.run("pairings", "set", "sunday", "0", "a", a.ID)
	s.Error(err)
}

func (s *CLISuite) TestYAMLOutput() {
	s.addPlayer("Alice", "4.3", "A")

	out, err := s.run("-o", "yaml", "player", "list")
	s.Require().NoError(err)

	var parsed struct {
		Players []struct {
			Name         string `yaml:"name"`
			DisplayIndex string `yaml:"displayIndex"`
		} `yaml:"players"`
	}
	s.Require().NoError(yaml.Unmarshal([]byte(out), &parsed))
	s.Require().Len(parsed.Players, 1)
	s.Equal("Alice", parsed.Players[0].Name)
	s.Equal("4.3", parsed.Players[0].DisplayIndex)
}

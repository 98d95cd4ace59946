// Package command exposes launcher built-ins. Commands do not run
// external programs; they resolve to control outcomes the host shell
// acts on, like opening its settings pane or quitting.
package command

import (
	"context"
	"sort"
	"strings"

	"github.com/GriffinCanCode/lumen/internal/providers"
	"github.com/GriffinCanCode/lumen/internal/shared/types"
)

type command struct {
	info    types.CommandInfo
	outcome func() types.Outcome
}

// builtins are the fixed commands. Matching is by name or description
// substring.
var builtins = []command{
	{
		info: types.CommandInfo{
			ID:          "settings",
			Name:        "Settings",
			Description: "Open launcher settings",
		},
		outcome: types.OpenSettings,
	},
	{
		info: types.CommandInfo{
			ID:          "quit",
			Name:        "Quit",
			Description: "Quit the launcher",
		},
		outcome: types.Quit,
	},
}

// Provider matches queries against the built-in launcher commands.
type Provider struct{}

func NewProvider() *Provider { return &Provider{} }

func (p *Provider) ID() string       { return "commands" }
func (p *Provider) Kind() types.Kind { return types.KindCommand }
func (p *Provider) Priority() int    { return providers.PriorityCommands }

// Match returns built-ins whose name or description contains the
// query, name matches first.
func (p *Provider) Match(ctx context.Context, query string) []providers.Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []providers.Match
	for _, cmd := range builtins {
		nameLower := strings.ToLower(cmd.info.Name)
		hint := -1
		switch {
		case strings.HasPrefix(nameLower, q):
			hint = providers.HintCommand
		case strings.Contains(nameLower, q):
			hint = providers.HintCommand - 5
		case strings.Contains(strings.ToLower(cmd.info.Description), q):
			hint = providers.HintCommand - 10
		}
		if hint < 0 {
			continue
		}
		info := cmd.info
		out = append(out, providers.Match{
			Candidate: types.Candidate{Kind: types.KindCommand, Command: &info},
			Hint:      hint,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Hint > out[j].Hint })
	return out
}

// Execute resolves a command to its control outcome.
func (p *Provider) Execute(ctx context.Context, cand types.Candidate) types.Outcome {
	if cand.Command == nil {
		return types.Errorf("command candidate missing payload")
	}
	for _, cmd := range builtins {
		if cmd.info.ID == cand.Command.ID {
			return cmd.outcome()
		}
	}
	return types.Errorf("unknown command %q", cand.Command.ID)
}

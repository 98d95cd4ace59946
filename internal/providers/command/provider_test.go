package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/lumen/internal/shared/types"
)

func TestMatchByName(t *testing.T) {
	p := NewProvider()

	matches := p.Match(context.Background(), "qui")
	require.Len(t, matches, 1)
	assert.Equal(t, "Quit", matches[0].Candidate.Command.Name)
}

func TestMatchByDescription(t *testing.T) {
	p := NewProvider()

	matches := p.Match(context.Background(), "launcher")
	require.Len(t, matches, 2)
}

func TestMatchEmptyAndMiss(t *testing.T) {
	p := NewProvider()

	assert.Empty(t, p.Match(context.Background(), ""))
	assert.Empty(t, p.Match(context.Background(), "firefox"))
}

func TestExecuteOutcomes(t *testing.T) {
	p := NewProvider()

	settings := p.Execute(context.Background(), types.Candidate{
		Kind:    types.KindCommand,
		Command: &types.CommandInfo{ID: "settings"},
	})
	assert.Equal(t, types.OutcomeOpenSettings, settings.Kind)

	quit := p.Execute(context.Background(), types.Candidate{
		Kind:    types.KindCommand,
		Command: &types.CommandInfo{ID: "quit"},
	})
	assert.Equal(t, types.OutcomeQuit, quit.Kind)

	unknown := p.Execute(context.Background(), types.Candidate{
		Kind:    types.KindCommand,
		Command: &types.CommandInfo{ID: "restart"},
	})
	assert.True(t, unknown.IsError())

	missing := p.Execute(context.Background(), types.Candidate{Kind: types.KindCommand})
	assert.True(t, missing.IsError())
}

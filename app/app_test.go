package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/fast/internal/testutil"
)

type goldenOutput struct {
	name   string
	output []byte
}

func (g goldenOutput) Output() ([]byte, string) {
	return g.output, g.name
}

func TestStatesJSON(t *testing.T) {
	b, err := statesJSON()
	require.NoError(t, err)

	testutil.CompareGoldenFile(t, goldenOutput{
		name:   "states_json",
		output: b,
	})
}

func TestPresetRows(t *testing.T) {
	rows := presetRows()

	require.Len(t, rows, 9)
	assert.Equal(t, []string{"omad", "OMAD (23:1)", "23h"}, rows[4])
	assert.Equal(t, []string{"week", "1 Week Fast", "168h"}, rows[8])
}

func TestStateRows(t *testing.T) {
	rows := stateRows()

	require.Len(t, rows, 7)
	assert.Equal(t, "24h", rows[5][1])
	assert.Equal(t, "168h", rows[6][2])
}

func TestCommands(t *testing.T) {
	fastApp := Get()

	var names []string
	for _, c := range fastApp.Commands {
		names = append(names, c.Name)
	}

	assert.ElementsMatch(
		t,
		[]string{"edit-config", "history", "delete", "stats", "presets", "states", "status"},
		names,
	)
}

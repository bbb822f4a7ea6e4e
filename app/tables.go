package app

import (
	"encoding/json"
	"fmt"

	"github.com/ayoisaiah/fast/internal/fasting"
	"github.com/ayoisaiah/fast/internal/ui"
)

func presetRows() [][]string {
	rows := [][]string{{"KEY", "PRESET", "DURATION"}}

	for _, p := range fasting.Presets {
		rows = append(rows, []string{p.Key, p.Label, fmt.Sprintf("%gh", p.Hours)})
	}

	return rows
}

func presetsJSON() []fasting.Preset {
	return fasting.Presets
}

func stateRows() [][]string {
	rows := [][]string{{"STATE", "FROM", "UNTIL"}}

	for _, s := range fasting.States {
		rows = append(rows, []string{
			ui.State(s.Name),
			fmt.Sprintf("%gh", s.StartHour),
			fmt.Sprintf("%gh", s.EndHour),
		})
	}

	return rows
}

func statesJSON() ([]byte, error) {
	return json.MarshalIndent(fasting.States, "", "  ")
}

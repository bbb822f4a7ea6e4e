package fasting

import (
	"fmt"
	"strings"
)

// Preset is a named target duration offered to the user.
type Preset struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Hours float64 `json:"hours"`
}

// Presets is the fixed menu of target durations.
var Presets = []Preset{
	{Key: "16:8", Label: "16:8 Fast", Hours: 16},
	{Key: "18:6", Label: "18:6 Fast", Hours: 18},
	{Key: "20:4", Label: "20:4 Fast", Hours: 20},
	{Key: "omad", Label: "OMAD (23:1)", Hours: 23},
	{Key: "36h", Label: "36 Hour Fast", Hours: 36},
	{Key: "48h", Label: "48 Hour Fast", Hours: 48},
	{Key: "72h", Label: "72 Hour Fast", Hours: 72},
	{Key: "week", Label: "1 Week Fast", Hours: 168},
}

// LookupPreset finds a preset by its key or label, ignoring case.
func LookupPreset(s string) (Preset, bool) {
	s = strings.TrimSpace(s)

	for _, p := range Presets {
		if strings.EqualFold(p.Key, s) || strings.EqualFold(p.Label, s) {
			return p, true
		}
	}

	return Preset{}, false
}

// PresetLabel returns the label of the preset matching hours, or a label
// describing a custom duration.
func PresetLabel(hours float64) string {
	for _, p := range Presets {
		if p.Hours == hours {
			return p.Label
		}
	}

	return fmt.Sprintf("Custom %gh Fast", hours)
}

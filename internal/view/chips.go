package view

import "github.com/fplpulse/fplpulse/internal/domain/chip"

// ChipColumn is the renderer contract for one chip slot column.
type ChipColumn struct {
	Key   chip.Slot `json:"key"`
	Label string    `json:"label"`
	Color string    `json:"color"`
}

const (
	colorWildcard      = "#8b5cf6"
	colorFreeHit       = "#3b82f6"
	colorBenchBoost    = "#06b6d4"
	colorTripleCaptain = "#f97316"
)

var chipColumns = []ChipColumn{
	{Key: chip.SlotWildcard, Label: "WC", Color: colorWildcard},
	{Key: chip.SlotFreeHit, Label: "FH", Color: colorFreeHit},
	{Key: chip.SlotBenchBoost, Label: "BB", Color: colorBenchBoost},
	{Key: chip.SlotTripleCaptain, Label: "TC", Color: colorTripleCaptain},
	{Key: chip.SlotWildcard2, Label: "WC", Color: colorWildcard},
	{Key: chip.SlotFreeHit2, Label: "FH", Color: colorFreeHit},
	{Key: chip.SlotBenchBoost2, Label: "BB", Color: colorBenchBoost},
	{Key: chip.SlotTripleCaptain2, Label: "TC", Color: colorTripleCaptain},
}

// ChipColumns returns the eight slot columns in pager order: the four
// first-half slots, then the four second-half slots.
func ChipColumns() []ChipColumn {
	out := make([]ChipColumn, len(chipColumns))
	copy(out, chipColumns)
	return out
}

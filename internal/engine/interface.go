// Package engine implements the ability and skill arithmetic behind a sheet
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-sheet/internal/engine Engine

import (
	"context"
)

// Engine provides game mechanics calculations for a character sheet
type Engine interface {
	// Derived stats for the whole sheet
	CalculateCharacterStats(
		ctx context.Context,
		input *CalculateCharacterStatsInput,
	) (*CalculateCharacterStatsOutput, error)

	// Spellcasting numbers for one class
	CalculateSpellcasting(input *CalculateSpellcastingInput) *CalculateSpellcastingOutput

	// Utility methods
	CalculateAbilityModifier(score int) int
	CalculateSkillBonus(input *CalculateSkillBonusInput) int
}

package engine

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// ProficiencyRank is how trained a character is in a skill
type ProficiencyRank int

const (
	// RankNone adds nothing
	RankNone ProficiencyRank = iota
	// RankProficient adds the proficiency bonus once
	RankProficient
	// RankExpertise adds the proficiency bonus twice
	RankExpertise
)

// Multiplier is the number of proficiency bonuses the rank adds
func (r ProficiencyRank) Multiplier() int {
	switch r {
	case RankExpertise:
		return 2
	case RankProficient:
		return 1
	}
	return 0
}

// CalculateCharacterStatsInput contains the character to calculate
type CalculateCharacterStatsInput struct {
	Character *dnd5e.Character
}

// CalculateCharacterStatsOutput contains the derived sheet stats
type CalculateCharacterStatsOutput struct {
	// Abilities are in sheet order, Strength through Charisma
	Abilities         []AbilityStat
	ProficiencyBonus  int
	Initiative        int
	PassivePerception int
}

// Ability returns the stat for a named ability
func (o *CalculateCharacterStatsOutput) Ability(name string) (AbilityStat, bool) {
	for _, a := range o.Abilities {
		if a.Name == name {
			return a, true
		}
	}
	return AbilityStat{}, false
}

// AbilityStat is one ability with its grouped skills
type AbilityStat struct {
	Name     string
	Score    int
	Modifier int
	Skills   []SkillStat
}

// ShortName is the three-letter uppercase label, e.g. "STR"
func (a AbilityStat) ShortName() string {
	return shortName(a.Name)
}

// SkillStat is one skill bonus with its proficiency rank
type SkillStat struct {
	Name  string
	Rank  ProficiencyRank
	Bonus int
}

// CalculateSkillBonusInput contains the parts of a skill bonus
type CalculateSkillBonusInput struct {
	AbilityModifier  int
	ProficiencyBonus int
	Rank             ProficiencyRank
}

// CalculateSpellcastingInput contains the caster's numbers
type CalculateSpellcastingInput struct {
	AbilityScore     int
	ProficiencyBonus int
}

// CalculateSpellcastingOutput contains spell attack and save DC
type CalculateSpellcastingOutput struct {
	AttackBonus int
	SaveDC      int
}

package engine

import (
	"context"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// passivePerceptionBase is the flat 10 every passive check starts from
const passivePerceptionBase = 10

// spellSaveBase is the flat 8 in a spell save DC
const spellSaveBase = 8

type engine struct {
}

type Config struct {
}

func (cfg *Config) Validate() error {
	return nil
}

func New(cfg *Config) (Engine, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &engine{}, nil
}

func (e *engine) CalculateAbilityModifier(score int) int {
	return AbilityModifier(score)
}

func (e *engine) CalculateSkillBonus(input *CalculateSkillBonusInput) int {
	if input == nil {
		return 0
	}
	return input.AbilityModifier + input.ProficiencyBonus*input.Rank.Multiplier()
}

func (e *engine) CalculateCharacterStats(
	ctx context.Context,
	input *CalculateCharacterStatsInput,
) (*CalculateCharacterStatsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	c := input.Character
	pb := c.ProficiencyBonus
	out := &CalculateCharacterStatsOutput{
		Abilities:        make([]AbilityStat, 0, len(dnd5e.Abilities)),
		ProficiencyBonus: pb,
	}

	for _, ability := range dnd5e.Abilities {
		score := c.Abilities.Score(ability)
		stat := AbilityStat{
			Name:     ability,
			Score:    score,
			Modifier: e.CalculateAbilityModifier(score),
		}
		for _, skill := range dnd5e.SkillsByAbility[ability] {
			rank := SkillRank(c, skill)
			stat.Skills = append(stat.Skills, SkillStat{
				Name: skill,
				Rank: rank,
				Bonus: e.CalculateSkillBonus(&CalculateSkillBonusInput{
					AbilityModifier:  stat.Modifier,
					ProficiencyBonus: pb,
					Rank:             rank,
				}),
			})
		}
		out.Abilities = append(out.Abilities, stat)
	}

	out.Initiative = e.CalculateAbilityModifier(c.Abilities.Score(dnd5e.AbilityDexterity))

	// Proficiency and expertise stack independently here, unlike skill bonuses
	perception := e.CalculateAbilityModifier(c.Abilities.Score(dnd5e.AbilityWisdom))
	if c.SkillProficiencies[dnd5e.SkillPerception] {
		perception += pb
	}
	if c.SkillExpertise[dnd5e.SkillPerception] {
		perception += pb
	}
	out.PassivePerception = passivePerceptionBase + perception

	return out, nil
}

func (e *engine) CalculateSpellcasting(input *CalculateSpellcastingInput) *CalculateSpellcastingOutput {
	mod := e.CalculateAbilityModifier(input.AbilityScore)
	return &CalculateSpellcastingOutput{
		AttackBonus: input.ProficiencyBonus + mod,
		SaveDC:      spellSaveBase + input.ProficiencyBonus + mod,
	}
}

// AbilityModifier is floor((score-10)/2). Go's integer division truncates,
// so odd scores below 10 need the extra step down.
func AbilityModifier(score int) int {
	diff := score - 10
	if diff < 0 && diff%2 != 0 {
		return diff/2 - 1
	}
	return diff / 2
}

// SkillRank reports expertise before proficiency
func SkillRank(c *dnd5e.Character, skill string) ProficiencyRank {
	switch {
	case c.SkillExpertise[skill]:
		return RankExpertise
	case c.SkillProficiencies[skill]:
		return RankProficient
	}
	return RankNone
}

// FormatModifier renders a signed modifier: "+2", "+0", "-1"
func FormatModifier(n int) string {
	if n >= 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func shortName(ability string) string {
	if len(ability) > 3 {
		ability = ability[:3]
	}
	return strings.ToUpper(ability)
}

package sheet

import (
	"context"
	"strconv"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/extractors"
	"github.com/KirkDiggler/rpg-sheet/internal/render"
)

const (
	defaultUnknown = "Unknown"
	defaultSize    = "Medium"
	defaultSpeed   = "30 ft."
)

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// assemble builds the flat placeholder map for one character. Every
// declared field is always present.
func (o *orchestrator) assemble(ctx context.Context, c *dnd5e.Character) (map[string]string, error) {
	stats, err := o.engine.CalculateCharacterStats(ctx, &engine.CalculateCharacterStatsInput{Character: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate character stats")
	}

	speed := c.Species.Speed
	if speed == "" {
		speed = c.Speed
	}

	return map[string]string{
		render.FieldCharacterName:      orDefault(c.Name, defaultUnknown),
		render.FieldSpeciesName:        orDefault(c.Species.Name, defaultUnknown),
		render.FieldSpeciesDescription: c.Species.Description,
		render.FieldSize:               orDefault(c.Species.Size, defaultSize),
		render.FieldSpeed:              orDefault(speed, defaultSpeed),
		render.FieldClasses:            extractors.Classes(c.Classes),
		render.FieldBackground:         orDefault(c.Background, defaultUnknown),
		render.FieldAlignment:          orDefault(c.Alignment, defaultUnknown),
		render.FieldMaxHP:              orDefault(c.MaxHP, defaultUnknown),
		render.FieldArmorClass:         orDefault(c.ArmorClass, defaultUnknown),

		render.FieldSpeciesFeatures:      extractors.Features(c.Species.Traits),
		render.FieldClassFeatures:        extractors.Features(c.Features),
		render.FieldLeveledClassFeatures: extractors.LeveledClassFeatures(c.Classes),
		render.FieldFeats:                extractors.Features(c.Feats),

		render.FieldSpellcastingSections: extractors.SpellcastingSections(c, o.engine),
		render.FieldSpellsSections:       extractors.SpellsSection(c.Spells),
		render.FieldSpellDetailsSections: extractors.SpellDetailsSection(c.Spells),

		render.FieldActions:   extractors.Actions(c),
		render.FieldWeapons:   extractors.Weapons(c.Equipment, c.ProficiencyBonus),
		render.FieldInventory: extractors.Inventory(c.Equipment),
		render.FieldBio:       extractors.Bio(c.Bio),
		render.FieldNotes:     extractors.Notes(c.Notes),

		render.FieldAbilityStats:           extractors.AbilityStats(stats),
		render.FieldAbilitiesSkillsGrouped: extractors.AbilitiesSkillsGrouped(stats),
		render.FieldProficiencyBonus:       "+" + strconv.Itoa(stats.ProficiencyBonus),
		render.FieldInitiative:             engine.FormatModifier(stats.Initiative),
		render.FieldPassivePerception:      strconv.Itoa(stats.PassivePerception),
		render.FieldHitDice:                extractors.HitDice(c.Classes),
		render.FieldLanguages:              extractors.Languages(c.Languages),
		render.FieldProficiencies:          extractors.Proficiencies(c),
	}, nil
}

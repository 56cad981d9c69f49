// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// CharacterBuilder provides a fluent interface for building test Character instances
type CharacterBuilder struct {
	character *dnd5e.Character
}

// NewCharacterBuilder creates a builder with all ability scores at 10 and a
// proficiency bonus of 2
func NewCharacterBuilder() *CharacterBuilder {
	scores := dnd5e.AbilityScores{}
	for _, a := range dnd5e.Abilities {
		scores[a] = dnd5e.DefaultAbilityScore
	}
	return &CharacterBuilder{
		character: &dnd5e.Character{
			Name:               "Test Character",
			Abilities:          scores,
			ProficiencyBonus:   dnd5e.DefaultProficiencyBonus,
			SkillProficiencies: map[string]bool{},
			SkillExpertise:     map[string]bool{},
		},
	}
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.character.Name = name
	return b
}

// WithAbility sets one ability score
func (b *CharacterBuilder) WithAbility(ability string, score int) *CharacterBuilder {
	b.character.Abilities[ability] = score
	return b
}

// WithProficiencyBonus sets the proficiency bonus
func (b *CharacterBuilder) WithProficiencyBonus(pb int) *CharacterBuilder {
	b.character.ProficiencyBonus = pb
	return b
}

// WithClass appends a class entry
func (b *CharacterBuilder) WithClass(cls dnd5e.Class) *CharacterBuilder {
	b.character.Classes = append(b.character.Classes, cls)
	return b
}

// WithSpeciesTrait appends a named species trait
func (b *CharacterBuilder) WithSpeciesTrait(trait dnd5e.Feature) *CharacterBuilder {
	b.character.Species.Traits = append(b.character.Species.Traits, trait)
	return b
}

// WithFeature appends a feature to featuresAndTraits
func (b *CharacterBuilder) WithFeature(f dnd5e.Feature) *CharacterBuilder {
	b.character.Features = append(b.character.Features, f)
	return b
}

// WithItem appends an equipment item
func (b *CharacterBuilder) WithItem(item dnd5e.Item) *CharacterBuilder {
	b.character.Equipment = append(b.character.Equipment, item)
	return b
}

// WithSpell appends a spell
func (b *CharacterBuilder) WithSpell(sp dnd5e.Spell) *CharacterBuilder {
	b.character.Spells = append(b.character.Spells, sp)
	return b
}

// WithSkillProficiency marks a skill proficient
func (b *CharacterBuilder) WithSkillProficiency(skill string) *CharacterBuilder {
	b.character.SkillProficiencies[skill] = true
	return b
}

// WithSkillExpertise marks a skill as expertise
func (b *CharacterBuilder) WithSkillExpertise(skill string) *CharacterBuilder {
	b.character.SkillExpertise[skill] = true
	return b
}

// Build returns the built character
func (b *CharacterBuilder) Build() *dnd5e.Character {
	return b.character
}

// NamedFeature is shorthand for a feature written as an object
func NamedFeature(name, description string) dnd5e.Feature {
	return dnd5e.Feature{
		Kind:           dnd5e.FeatureNamed,
		Name:           name,
		Description:    description,
		HasDescription: true,
	}
}

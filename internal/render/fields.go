package render

// Placeholder names filled by the sheet orchestrator
const (
	FieldCharacterName          = "character_name"
	FieldSpeciesName            = "species_name"
	FieldSpeciesDescription     = "species_description"
	FieldSize                   = "size"
	FieldSpeed                  = "speed"
	FieldClasses                = "classes"
	FieldBackground             = "background"
	FieldAlignment              = "alignment"
	FieldMaxHP                  = "max_hp"
	FieldArmorClass             = "armor_class"
	FieldSpeciesFeatures        = "species_features"
	FieldClassFeatures          = "class_features"
	FieldLeveledClassFeatures   = "leveled_class_features"
	FieldFeats                  = "feats"
	FieldSpellcastingSections   = "spellcasting_sections"
	FieldSpellsSections         = "spells_sections"
	FieldSpellDetailsSections   = "spell_details_sections"
	FieldActions                = "actions"
	FieldWeapons                = "weapons"
	FieldInventory              = "inventory"
	FieldBio                    = "bio"
	FieldNotes                  = "notes"
	FieldAbilityStats           = "ability_stats"
	FieldAbilitiesSkillsGrouped = "abilities_skills_grouped"
	FieldProficiencyBonus       = "proficiency_bonus"
	FieldInitiative             = "initiative"
	FieldPassivePerception      = "passive_perception"
	FieldHitDice                = "hit_dice"
	FieldLanguages              = "languages"
	FieldProficiencies          = "proficiencies"
)

// Fields is the declared placeholder vocabulary of a character sheet
var Fields = []string{
	FieldCharacterName,
	FieldSpeciesName,
	FieldSpeciesDescription,
	FieldSize,
	FieldSpeed,
	FieldClasses,
	FieldBackground,
	FieldAlignment,
	FieldMaxHP,
	FieldArmorClass,
	FieldSpeciesFeatures,
	FieldClassFeatures,
	FieldLeveledClassFeatures,
	FieldFeats,
	FieldSpellcastingSections,
	FieldSpellsSections,
	FieldSpellDetailsSections,
	FieldActions,
	FieldWeapons,
	FieldInventory,
	FieldBio,
	FieldNotes,
	FieldAbilityStats,
	FieldAbilitiesSkillsGrouped,
	FieldProficiencyBonus,
	FieldInitiative,
	FieldPassivePerception,
	FieldHitDice,
	FieldLanguages,
	FieldProficiencies,
}

// IsField reports whether name belongs to the declared vocabulary
func IsField(name string) bool {
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}

// UnknownPlaceholders returns the template's placeholders outside the
// declared vocabulary
func (t *Template) UnknownPlaceholders() []string {
	var unknown []string
	for _, name := range t.Placeholders() {
		if !IsField(name) {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

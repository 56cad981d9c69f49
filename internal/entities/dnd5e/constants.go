package dnd5e

// Ability names as they appear as keys in character documents
const (
	AbilityStrength     = "Strength"
	AbilityDexterity    = "Dexterity"
	AbilityConstitution = "Constitution"
	AbilityIntelligence = "Intelligence"
	AbilityWisdom       = "Wisdom"
	AbilityCharisma     = "Charisma"
)

// Abilities lists the six abilities in sheet order
var Abilities = []string{
	AbilityStrength,
	AbilityDexterity,
	AbilityConstitution,
	AbilityIntelligence,
	AbilityWisdom,
	AbilityCharisma,
}

// DefaultAbilityScore is used for absent or non-numeric scores
const DefaultAbilityScore = 10

// DefaultProficiencyBonus is used when the document carries none
const DefaultProficiencyBonus = 2

// Skill names as they appear as keys in skillProficiencies / skillExpertise
const (
	SkillAthletics      = "Athletics"
	SkillAcrobatics     = "Acrobatics"
	SkillSleightOfHand  = "Sleight of Hand"
	SkillStealth        = "Stealth"
	SkillArcana         = "Arcana"
	SkillHistory        = "History"
	SkillInvestigation  = "Investigation"
	SkillNature         = "Nature"
	SkillReligion       = "Religion"
	SkillAnimalHandling = "Animal Handling"
	SkillInsight        = "Insight"
	SkillMedicine       = "Medicine"
	SkillPerception     = "Perception"
	SkillSurvival       = "Survival"
	SkillDeception      = "Deception"
	SkillIntimidation   = "Intimidation"
	SkillPerformance    = "Performance"
	SkillPersuasion     = "Persuasion"
)

// SkillsByAbility is the fixed skill grouping. Constitution has no skills.
var SkillsByAbility = map[string][]string{
	AbilityStrength:     {SkillAthletics},
	AbilityDexterity:    {SkillAcrobatics, SkillSleightOfHand, SkillStealth},
	AbilityIntelligence: {SkillArcana, SkillHistory, SkillInvestigation, SkillNature, SkillReligion},
	AbilityWisdom:       {SkillAnimalHandling, SkillInsight, SkillMedicine, SkillPerception, SkillSurvival},
	AbilityCharisma:     {SkillDeception, SkillIntimidation, SkillPerformance, SkillPersuasion},
}

// Equipment type strings
const (
	ItemTypeMeleeWeapon = "Melee Weapon"
	// ItemTypeWeaponMarker is matched as a substring for the Attack action
	ItemTypeWeaponMarker = "Weapon"
)

// Spell schools with special handling
const (
	SchoolInvocation = "Invocation"
	// ClassWarlock gains invocations regardless of preparing class
	ClassWarlock = "Warlock"
)

// EditionSuffix is stripped from class names when matching slot tables
const EditionSuffix = " [2024]"

// ProficiencyBonusToken is replaced by the numeric bonus in damage formulas
const ProficiencyBonusToken = "+pb"

// Scaling rule types for limited-use features
const (
	ScalingProficiency = "proficiency"
	ScalingAttribute   = "attribute"
	ScalingLevel       = "level"
)

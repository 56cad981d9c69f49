// Package dnd5e implements the D&D 5e entities rendered onto a sheet
package dnd5e

// Character is the typed view of one character document.
// NOTE: This is a data-only struct. Every ambiguous input shape has been
// resolved when the document was decoded; derived values (modifiers,
// skill bonuses, uses counts) are computed by the engine and extractors.
type Character struct {
	Name             string
	Abilities        AbilityScores
	ProficiencyBonus int
	Classes          []Class
	Species          Species
	Background       string
	Alignment        string
	MaxHP            string
	ArmorClass       string
	Speed            string

	Equipment []Item
	Spells    []Spell
	Features  []Feature // featuresAndTraits
	Feats     []Feature
	Notes     []Note

	SkillProficiencies map[string]bool
	SkillExpertise     map[string]bool

	Languages           []string
	WeaponProficiencies []string
	ToolProficiencies   []string

	Bio Bio
}

// AbilityScores maps ability names to scores already coerced to integers
type AbilityScores map[string]int

// Score returns the score for an ability, defaulting to 10
func (a AbilityScores) Score(ability string) int {
	if score, ok := a[ability]; ok {
		return score
	}
	return DefaultAbilityScore
}

// TotalLevel sums the levels of every class entry
func (c *Character) TotalLevel() int {
	total := 0
	for _, cls := range c.Classes {
		total += cls.Level
	}
	return total
}

// Class is one class entry
type Class struct {
	Name          string
	Level         int
	SpellAbility  string
	HitPointDie   string
	ArmorTraining string
	// Features holds the optional level-keyed feature table in document order
	Features []LevelFeatures
}

// LevelFeatures is one key of a level-keyed feature table. Key is kept as
// written; non-integer keys are dropped by the extractor, not here.
type LevelFeatures struct {
	Key      string
	Features []Feature
}

// FeatureKind tags how a feature entry was written
type FeatureKind int

const (
	// FeatureNamed came from an object with name and description
	FeatureNamed FeatureKind = iota
	// FeaturePlain came from a bare string
	FeaturePlain
)

// Feature is a feature, trait, or feat
type Feature struct {
	Kind        FeatureKind
	Name        string
	Description string
	Text        string
	// HasDescription distinguishes an empty description from an absent one
	HasDescription bool
	// Type is the recorded type string, e.g. "Wizard Feature"
	Type string

	Scaling        []ScalingRule
	CustomResource int

	// SpellSlots is non-nil when the feature carries spellSlotsPerLevel
	SpellSlots SpellSlotTable
}

// Body returns the description, falling back to text when no description
// was recorded
func (f Feature) Body() string {
	if f.HasDescription {
		return f.Description
	}
	return f.Text
}

// ScalingRule describes how a limited-use count grows
type ScalingRule struct {
	Type      string
	Attribute string
	BaseValue int
}

// SpellSlotTable maps a class level (as written) to slots per spell level
type SpellSlotTable map[string][]int

// Species holds the species block. A missing or non-object block decodes
// to the zero value.
type Species struct {
	Name        string
	Description string
	Size        string
	Speed       string
	Traits      []Feature
}

// Item is one equipment entry
type Item struct {
	Title    string
	Type     string
	Quantity string
	Weight   string
	Equipped bool

	HitBonus   string
	Damages    []Damage
	Properties string
}

// Damage is one damage type and its formula, in document order
type Damage struct {
	Type    string
	Formula string
}

// Spell is one spell or invocation entry
type Spell struct {
	Title          string
	Level          int
	School         string
	PreparingClass string
	CastingTime    string
	Range          string
	Duration       string
	Description    string
}

// NoteKind tags how a note was written
type NoteKind int

const (
	// NotePlain is untitled text
	NotePlain NoteKind = iota
	// NoteTitled is a title plus plain content
	NoteTitled
	// NoteRichText is a title plus an encoded array of text-run operations
	NoteRichText
)

// Note is one freeform note
type Note struct {
	Kind  NoteKind
	Title string
	// Content is the plain text, or the encoded operations for NoteRichText
	Content string
	// Runs holds already-decoded text runs when the operations arrived as
	// an array rather than a string
	Runs []string
}

// Bio holds biography fields; empty values are omitted from the sheet
type Bio struct {
	Bio    string
	Age    string
	Height string
	Weight string
	Eyes   string
	Hair   string
	Skin   string
}

// Package render formats sheet fragments and substitutes them into a
// template.
//
// Fragment values are inserted verbatim. Character documents routinely
// carry markup in their rule text, so nothing here escapes HTML.
package render

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
)

// Fallback text for empty facets
const (
	NoFeatures       = "No features available"
	NoSpells         = "No spells available"
	NoSpellSlots     = "No spell slots available"
	NoWeapons        = "No weapons available"
	NoItems          = "No items available"
	NoNotes          = "No notes available"
	NoBio            = "No bio information available"
	tallyBox         = `<span class="prof-indicator"></span>`
	indicatorExpert  = `<span class="prof-indicator expertise">E</span>`
	indicatorProfic  = `<span class="prof-indicator proficient">P</span>`
	indicatorUntrain = `<span class="prof-indicator"></span>`
)

// FeatureItem is a titled block of rule text
func FeatureItem(name, description string) string {
	return `<div class="feature-item"><strong>` + name + `</strong><div class="feature-text">` +
		description + `</div></div>`
}

// NameItem is a block holding only a bold name
func NameItem(name string) string {
	return `<div class="feature-item"><strong>` + name + `</strong></div>`
}

// TextItem is an untitled block of text
func TextItem(text string) string {
	return `<div class="feature-item"><div class="feature-text">` + text + `</div></div>`
}

// SpellCard holds the fields of a detailed spell entry
type SpellCard struct {
	Name        string
	School      string
	CastingTime string
	Range       string
	Duration    string
	Description string
}

// SpellItem renders a detailed spell entry
func SpellItem(s SpellCard) string {
	return fmt.Sprintf(
		`<div class="feature-item"><strong>%s</strong> (%s)<div class="feature-text">`+
			`<em>Casting Time:</em> %s, <em>Range:</em> %s, <em>Duration:</em> %s<br>%s</div></div>`,
		s.Name, s.School, s.CastingTime, s.Range, s.Duration, s.Description)
}

// SpellListItem renders a short-list spell line with its preparing class
func SpellListItem(name, preparingClass string) string {
	return `<div class="feature-item"><strong>` + name + `</strong> <em>(` + preparingClass + `)</em></div>`
}

// ListHeading is a short-list group label such as "Cantrips:"
func ListHeading(label string) string {
	return `<p><strong>` + label + `:</strong></p>`
}

// SectionHeading is a detailed-list group heading
func SectionHeading(label string) string {
	return `<h4>` + label + `</h4>`
}

// WeaponCard holds the fields of a weapon entry
type WeaponCard struct {
	Name       string
	HitBonus   string
	Damage     string
	Properties string
}

// WeaponItem renders a weapon entry
func WeaponItem(w WeaponCard) string {
	return fmt.Sprintf(
		`<div class="feature-item"><strong>%s</strong><div class="feature-text">`+
			`<em>Attack Bonus:</em> +%s, <em>Damage:</em> %s<br><em>Properties:</em> %s</div></div>`,
		w.Name, w.HitBonus, w.Damage, w.Properties)
}

// InventoryCard holds the fields of an inventory entry
type InventoryCard struct {
	Name     string
	Equipped bool
	Type     string
	Quantity string
	Weight   string
}

// InventoryItem renders an inventory entry
func InventoryItem(i InventoryCard) string {
	status := ""
	if i.Equipped {
		status = " (Equipped)"
	}
	return fmt.Sprintf(
		`<div class="feature-item"><strong>%s%s</strong><div class="feature-text">`+
			`<em>Type:</em> %s, <em>Quantity:</em> %s, <em>Weight:</em> %s lbs</div></div>`,
		i.Name, status, i.Type, i.Quantity, i.Weight)
}

// MaxTally caps the boxes a single tally draws
const MaxTally = 100

// Tally renders n empty tally boxes, at most MaxTally
func Tally(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(tallyBox, min(n, MaxTally))
}

// UsesItem renders a limited-use action with its recharge label and tally.
// A non-positive count renders the name alone.
func UsesItem(name, recharge string, uses int) string {
	if uses <= 0 {
		return NameItem(name)
	}
	return `<div class="feature-item"><strong>` + name + `</strong><div class="uses-row"><span>` +
		recharge + `</span><span class="uses-boxes">` + Tally(uses) + `</span></div></div>`
}

// SlotRow renders one spell level of slots
func SlotRow(spellLevel, slots int) string {
	return fmt.Sprintf(`<div class="spell-slot-row"><span class="slot-label">Level %d:</span>`+
		`<span class="slot-boxes">%s</span></div>`, spellLevel, Tally(slots))
}

// AbilityStat renders an ability score box
func AbilityStat(shortName string, score int, modifier string) string {
	return fmt.Sprintf(`<div class="stat"><label>%s</label><div class="stat-value">%d</div>`+
		`<div class="stat-mod">%s</div></div>`, shortName, score, modifier)
}

// AbilityGroup wraps an ability score box with its skills
func AbilityGroup(stat, skills string) string {
	return `<div class="ability-group"><div class="abilities-skills-layout">` + stat +
		`<div class="skills-box">` + skills + `</div></div></div>`
}

// SkillItem renders one skill line
func SkillItem(name string, rank engine.ProficiencyRank, bonus string) string {
	mark := indicatorUntrain
	switch rank {
	case engine.RankExpertise:
		mark = indicatorExpert
	case engine.RankProficient:
		mark = indicatorProfic
	}
	return `<div class="skill-item"><span class="skill-name">` + name + `</span>` + mark +
		`<span class="skill-bonus">` + bonus + `</span></div>`
}

// SpellcastingCard holds one class's casting summary
type SpellcastingCard struct {
	ClassName   string
	SpellAttack string
	SaveDC      int
	Ability     string
	Slots       string
}

// SpellcastingSection renders a class spellcasting panel
func SpellcastingSection(c SpellcastingCard) string {
	return fmt.Sprintf(`
            <div class="section">
                <h2>%s Spellcasting</h2>
                <div class="info-grid">
                    <div class="info-card">
                        <div class="label">Spell Attack</div>
                        <div class="value">%s</div>
                    </div>
                    <div class="info-card">
                        <div class="label">Spell Save DC</div>
                        <div class="value">%d</div>
                    </div>
                    <div class="info-card">
                        <div class="label">Ability</div>
                        <div class="value">%s</div>
                    </div>
                </div>
                <div class="content-box">%s</div>
            </div>
            `, c.ClassName, c.SpellAttack, c.SaveDC, c.Ability, c.Slots)
}

// ContentSection renders a titled section around a content box
func ContentSection(title, content string) string {
	return `
            <div class="section">
                <h2>` + title + `</h2>
                <div class="content-box">` + content + `</div>
            </div>
            `
}

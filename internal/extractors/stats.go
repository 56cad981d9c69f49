package extractors

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/render"
)

const unknown = "Unknown"

// Classes renders "Name Level" for each class, joined by " / "
func Classes(classes []dnd5e.Class) string {
	parts := make([]string, 0, len(classes))
	for _, cls := range classes {
		parts = append(parts, orDefault(cls.Name, unknown)+" "+strconv.Itoa(cls.Level))
	}
	return orDefault(strings.Join(parts, " / "), unknown)
}

// AbilityStats renders the six ability boxes in sheet order
func AbilityStats(stats *engine.CalculateCharacterStatsOutput) string {
	var b strings.Builder
	for _, a := range stats.Abilities {
		b.WriteString(render.AbilityStat(a.ShortName(), a.Score, engine.FormatModifier(a.Modifier)))
	}
	return b.String()
}

// AbilitiesSkillsGrouped renders each ability box beside its skills
func AbilitiesSkillsGrouped(stats *engine.CalculateCharacterStatsOutput) string {
	var b strings.Builder
	for _, a := range stats.Abilities {
		var skills strings.Builder
		for _, sk := range a.Skills {
			skills.WriteString(render.SkillItem(sk.Name, sk.Rank, engine.FormatModifier(sk.Bonus)))
		}
		stat := render.AbilityStat(a.ShortName(), a.Score, engine.FormatModifier(a.Modifier))
		b.WriteString(render.AbilityGroup(stat, skills.String()))
	}
	return b.String()
}

// HitDice renders one die expression per class, e.g. "5d10, 3d8"
func HitDice(classes []dnd5e.Class) string {
	dice := make([]string, 0, len(classes))
	for _, cls := range classes {
		die := orDefault(cls.HitPointDie, "d10")
		level := strconv.Itoa(cls.Level)
		if strings.HasPrefix(die, "1d") {
			dice = append(dice, level+die[1:])
		} else {
			dice = append(dice, level+die)
		}
	}
	return orDefault(strings.Join(dice, ", "), "1d10")
}

// Languages joins the known languages, defaulting to Common
func Languages(languages []string) string {
	return orDefault(strings.Join(languages, ", "), "Common")
}

// Proficiencies lists weapon proficiencies, then the distinct sorted armor
// training across classes, then tool proficiencies
func Proficiencies(c *dnd5e.Character) string {
	var profs []string
	profs = append(profs, c.WeaponProficiencies...)

	armor := map[string]bool{}
	for _, cls := range c.Classes {
		for _, a := range strings.Split(cls.ArmorTraining, ",") {
			if a = strings.TrimSpace(a); a != "" {
				armor[a] = true
			}
		}
	}
	sorted := make([]string, 0, len(armor))
	for a := range armor {
		sorted = append(sorted, a)
	}
	sort.Strings(sorted)
	profs = append(profs, sorted...)

	profs = append(profs, c.ToolProficiencies...)
	return orDefault(strings.Join(profs, ", "), "None")
}

// SpellcastingSections renders a casting panel for every class with a
// spellcasting ability and at least one slot at its current level
func SpellcastingSections(c *dnd5e.Character, eng engine.Engine) string {
	var b strings.Builder
	for _, cls := range c.Classes {
		if cls.SpellAbility == "" {
			continue
		}
		slots := SpellSlots(cls, c.Features)
		if slots == render.NoSpellSlots {
			continue
		}

		casting := eng.CalculateSpellcasting(&engine.CalculateSpellcastingInput{
			AbilityScore:     c.Abilities.Score(cls.SpellAbility),
			ProficiencyBonus: c.ProficiencyBonus,
		})
		b.WriteString(render.SpellcastingSection(render.SpellcastingCard{
			ClassName:   orDefault(cls.Name, unknown),
			SpellAttack: engine.FormatModifier(casting.AttackBonus),
			SaveDC:      casting.SaveDC,
			Ability:     cls.SpellAbility,
			Slots:       slots,
		}))
	}
	return b.String()
}

// SpellsSection wraps the short list of every spell. It is empty when the
// character has no spells.
func SpellsSection(spells []dnd5e.Spell) string {
	if len(spells) == 0 {
		return ""
	}
	short, _ := Spells(spells, "")
	return render.ContentSection("Spells", short)
}

// SpellDetailsSection wraps the detailed list of every spell
func SpellDetailsSection(spells []dnd5e.Spell) string {
	_, detailed := Spells(spells, "")
	return render.ContentSection("Spell Details", detailed)
}

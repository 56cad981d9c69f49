package extractors

import (
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/textscan"
	"github.com/KirkDiggler/rpg-sheet/internal/render"
)

// Spells renders the short and detailed spell lists. A non-empty className
// keeps only spells whose preparing class contains it; Warlock classes also
// keep every invocation.
func Spells(spells []dnd5e.Spell, className string) (short, detailed string) {
	selected := filterSpells(spells, className)
	if len(selected) == 0 {
		return render.NoSpells, render.NoSpells
	}

	var invocations []dnd5e.Spell
	byLevel := map[int][]dnd5e.Spell{}
	for _, sp := range selected {
		if sp.School == dnd5e.SchoolInvocation {
			invocations = append(invocations, sp)
			continue
		}
		byLevel[sp.Level] = append(byLevel[sp.Level], sp)
	}

	var sb, db strings.Builder

	if len(invocations) > 0 {
		sb.WriteString(render.ListHeading("Invocations"))
		db.WriteString(render.SectionHeading("Invocations"))
		for _, inv := range invocations {
			name := orDefault(inv.Title, "Unknown Invocation")
			sb.WriteString(render.NameItem(name))
			db.WriteString(render.FeatureItem(name, textscan.Describe(inv.Description)))
		}
	}

	levels := make([]int, 0, len(byLevel))
	for level := range byLevel {
		levels = append(levels, level)
	}
	sort.Ints(levels)

	for _, level := range levels {
		label := levelLabel(level)

		sb.WriteString(render.ListHeading(label))
		for _, sp := range byLevel[level] {
			sb.WriteString(render.SpellListItem(
				orDefault(sp.Title, "Unknown Spell"),
				orDefault(sp.PreparingClass, "Known"),
			))
		}

		db.WriteString(render.SectionHeading(label + " Spells"))
		for _, sp := range byLevel[level] {
			db.WriteString(render.SpellItem(render.SpellCard{
				Name:        orDefault(sp.Title, "Unknown Spell"),
				School:      sp.School,
				CastingTime: sp.CastingTime,
				Range:       sp.Range,
				Duration:    sp.Duration,
				Description: textscan.Describe(sp.Description),
			}))
		}
	}

	return orDefault(sb.String(), render.NoSpells), orDefault(db.String(), render.NoSpells)
}

func filterSpells(spells []dnd5e.Spell, className string) []dnd5e.Spell {
	if className == "" {
		return spells
	}

	warlock := strings.Contains(className, dnd5e.ClassWarlock)
	var out []dnd5e.Spell
	for _, sp := range spells {
		if strings.Contains(sp.PreparingClass, className) ||
			(warlock && sp.School == dnd5e.SchoolInvocation) {
			out = append(out, sp)
		}
	}
	return out
}

func levelLabel(level int) string {
	if level == 0 {
		return "Cantrips"
	}
	return "Level " + strconv.Itoa(level)
}

// SpellSlots renders the slot rows for one class. The slot table comes from
// the first feature whose type names the class and that has a row for the
// class's current level; other classes' tables are never used.
func SpellSlots(cls dnd5e.Class, features []dnd5e.Feature) string {
	stripped := strings.ReplaceAll(cls.Name, dnd5e.EditionSuffix, "")
	level := strconv.Itoa(cls.Level)

	var slots []int
	for _, f := range features {
		if f.SpellSlots == nil {
			continue
		}
		if !strings.Contains(f.Type, stripped) && !strings.Contains(f.Type, cls.Name) {
			continue
		}
		if row, ok := f.SpellSlots[level]; ok {
			slots = row
			break
		}
	}

	var b strings.Builder
	for i, n := range slots {
		if n > 0 {
			b.WriteString(render.SlotRow(i+1, n))
		}
	}
	return orDefault(b.String(), render.NoSpellSlots)
}

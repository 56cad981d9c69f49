package extractors

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/textscan"
	"github.com/KirkDiggler/rpg-sheet/internal/render"
)

var attackWord = regexp.MustCompile(`\battack\b`)

// actionKeywords mark a class feature as something used in combat
var actionKeywords = []string{"action", "bonus action", "reaction"}

// Actions renders the combat action list: the basic Attack entry, then
// species traits that act, then class features that act.
func Actions(c *dnd5e.Character) string {
	var b strings.Builder
	b.WriteString(attackAction(c.Equipment))

	for _, trait := range c.Species.Traits {
		if trait.Kind != dnd5e.FeatureNamed || !isSpeciesAction(trait) {
			continue
		}
		b.WriteString(usesAction(trait, c))
	}

	for _, f := range c.Features {
		if f.Kind != dnd5e.FeatureNamed || !isClassAction(f) {
			continue
		}
		b.WriteString(usesAction(f, c))
	}

	return b.String()
}

func attackAction(items []dnd5e.Item) string {
	var weapons []string
	for _, item := range items {
		if item.Equipped && strings.Contains(item.Type, dnd5e.ItemTypeWeaponMarker) {
			weapons = append(weapons, orDefault(item.Title, "Weapon"))
		}
	}
	if len(weapons) == 0 {
		return render.NameItem("Attack")
	}
	return render.FeatureItem("Attack", strings.Join(weapons, ", "))
}

func isSpeciesAction(f dnd5e.Feature) bool {
	return strings.Contains(strings.ToLower(f.Name), "breath") ||
		strings.Contains(strings.ToLower(f.Description), "action")
}

func isClassAction(f dnd5e.Feature) bool {
	desc := strings.ToLower(f.Description)
	for _, kw := range actionKeywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return attackWord.MatchString(desc)
}

func usesAction(f dnd5e.Feature, c *dnd5e.Character) string {
	return render.UsesItem(f.Name, textscan.Recharge(f.Description), ResolveUses(f, c))
}

// ResolveUses finds how many times a feature can be used. The sources are
// tried in a fixed order, each only when everything before it gave zero:
//  1. scaling rules, where the last recognised rule wins
//  2. a flat customResource count
//  3. a "use this feature once|twice|thrice|N times" phrase
//
// A result of zero means the feature renders without a tally. A negative
// scaled result is kept, and also renders without one.
func ResolveUses(f dnd5e.Feature, c *dnd5e.Character) int {
	uses := 0
	for _, rule := range f.Scaling {
		switch rule.Type {
		case dnd5e.ScalingProficiency:
			uses = c.ProficiencyBonus + rule.BaseValue
		case dnd5e.ScalingAttribute:
			mod := engine.AbilityModifier(c.Abilities.Score(rule.Attribute))
			uses = max(1, mod+rule.BaseValue)
		case dnd5e.ScalingLevel:
			uses = c.TotalLevel() + rule.BaseValue
		}
	}

	if uses == 0 {
		uses = f.CustomResource
	}

	if uses == 0 {
		if n, ok := textscan.UsesPhrase(f.Description); ok {
			uses = n
		}
	}

	return uses
}

package document

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
)

// richTextMarker prefixes note content that encodes text-run operations
const richTextMarker = `[{"insert"`

func decodeCharacter(root gjson.Result) *dnd5e.Character {
	c := &dnd5e.Character{
		Name:             text(child(root, "name")),
		Abilities:        decodeAbilities(root),
		ProficiencyBonus: integer(child(root, "proficiencyBonus"), dnd5e.DefaultProficiencyBonus),
		Classes:          decodeClasses(child(root, "class")),
		Species:          decodeSpecies(child(root, "species"), child(root, "speed")),
		Background:       decodeBackground(child(root, "background")),
		Alignment:        text(child(root, "alignment")),
		ArmorClass:       text(child(root, "armorClass")),
		Speed:            text(child(root, "speed")),

		Equipment: decodeItems(child(root, "equipment")),
		Spells:    decodeSpells(child(root, "spells")),
		Features:  decodeFeatures(child(root, "featuresAndTraits")),
		Feats:     decodeFeatures(child(root, "feats")),
		Notes:     decodeNotes(child(root, "notes")),

		SkillProficiencies: decodeFlags(child(root, "skillProficiencies")),
		SkillExpertise:     decodeFlags(child(root, "skillExpertise")),

		Languages:           stringList(child(root, "languages")),
		WeaponProficiencies: stringList(child(root, "weaponProficiencies")),
		ToolProficiencies:   stringList(child(root, "toolProficiencies")),

		Bio: dnd5e.Bio{
			Bio:    truthyText(child(root, "bio")),
			Age:    truthyText(child(root, "age")),
			Height: truthyText(child(root, "height")),
			Weight: truthyText(child(root, "weight")),
			Eyes:   truthyText(child(root, "eyes")),
			Hair:   truthyText(child(root, "hair")),
			Skin:   truthyText(child(root, "skin")),
		},
	}

	if has(root, "maxHP") {
		c.MaxHP = text(child(root, "maxHP"))
	} else {
		c.MaxHP = text(child(root, "currentHP"))
	}

	return c
}

// decodeAbilities reads abilityScores, falling back to attributes only when
// abilityScores is absent
func decodeAbilities(root gjson.Result) dnd5e.AbilityScores {
	src := child(root, "abilityScores")
	if !src.Exists() {
		src = child(root, "attributes")
	}

	scores := make(dnd5e.AbilityScores, len(dnd5e.Abilities))
	for _, ability := range dnd5e.Abilities {
		scores[ability] = dnd5e.DefaultAbilityScore
	}
	if !src.IsObject() {
		return scores
	}

	src.ForEach(func(k, v gjson.Result) bool {
		scores[k.Str] = integer(v, dnd5e.DefaultAbilityScore)
		return true
	})
	return scores
}

// decodeClasses accepts a list of class objects or a single class object
func decodeClasses(r gjson.Result) []dnd5e.Class {
	var entries []gjson.Result
	switch {
	case r.IsArray():
		entries = r.Array()
	case r.IsObject():
		entries = []gjson.Result{r}
	default:
		return nil
	}

	classes := make([]dnd5e.Class, 0, len(entries))
	for _, e := range entries {
		if !e.IsObject() {
			continue
		}
		cls := dnd5e.Class{
			Name:          text(child(e, "name")),
			Level:         integer(child(e, "level"), 1),
			SpellAbility:  truthyText(child(e, "spellAbility")),
			HitPointDie:   text(child(e, "hitPointDie")),
			ArmorTraining: truthyText(child(e, "armorTraining")),
		}
		if table := child(e, "features"); table.IsObject() {
			table.ForEach(func(k, v gjson.Result) bool {
				cls.Features = append(cls.Features, dnd5e.LevelFeatures{
					Key:      k.Str,
					Features: decodeFeatures(v),
				})
				return true
			})
		}
		classes = append(classes, cls)
	}
	return classes
}

func decodeSpecies(r gjson.Result, docSpeed gjson.Result) dnd5e.Species {
	var sp dnd5e.Species
	if r.IsObject() {
		sp.Name = text(child(r, "name"))
		sp.Description = text(child(r, "description"))
		sp.Size = text(child(r, "size"))
		sp.Traits = decodeFeatures(child(r, "traits"))
	}

	if speed := child(r, "speed"); speed.Exists() {
		sp.Speed = text(speed)
	} else {
		sp.Speed = text(docSpeed)
	}
	return sp
}

// decodeBackground takes the name of a background object. A bare string is
// taken as the name itself.
func decodeBackground(r gjson.Result) string {
	switch {
	case r.IsObject():
		return text(child(r, "name"))
	case r.Type == gjson.String:
		return r.Str
	}
	return ""
}

// decodeFeatures reads a list of feature objects or plain strings. Any other
// shape yields no features.
func decodeFeatures(r gjson.Result) []dnd5e.Feature {
	if !r.IsArray() {
		return nil
	}

	var features []dnd5e.Feature
	for _, v := range r.Array() {
		switch {
		case v.IsObject():
			features = append(features, decodeFeature(v))
		case v.Type == gjson.String:
			features = append(features, dnd5e.Feature{
				Kind:           dnd5e.FeaturePlain,
				Description:    v.Str,
				HasDescription: true,
			})
		}
	}
	return features
}

func decodeFeature(v gjson.Result) dnd5e.Feature {
	desc := child(v, "description")
	f := dnd5e.Feature{
		Kind:           dnd5e.FeatureNamed,
		Name:           text(child(v, "name")),
		Description:    text(desc),
		HasDescription: desc.Exists(),
		Text:           text(child(v, "text")),
		Type:           text(child(v, "type")),
	}

	if fields := child(v, "customFields"); fields.IsObject() {
		fields.ForEach(func(_, field gjson.Result) bool {
			scaling := child(field, "scaling")
			if !scaling.IsObject() {
				return true
			}
			f.Scaling = append(f.Scaling, dnd5e.ScalingRule{
				Type:      text(child(scaling, "type")),
				Attribute: text(child(scaling, "attribute")),
				BaseValue: integer(child(scaling, "baseValue"), 0),
			})
			return true
		})
	}

	if res := child(v, "customResource"); truthy(res) {
		f.CustomResource = integer(res, 0)
	}

	if has(v, "spellSlotsPerLevel") {
		f.SpellSlots = dnd5e.SpellSlotTable{}
		table := child(v, "spellSlotsPerLevel")
		table.ForEach(func(level, counts gjson.Result) bool {
			if !table.IsObject() || !counts.IsArray() {
				return table.IsObject()
			}
			row := make([]int, 0, len(counts.Array()))
			for _, n := range counts.Array() {
				row = append(row, integer(n, 0))
			}
			f.SpellSlots[level.Str] = row
			return true
		})
	}

	return f
}

func decodeItems(r gjson.Result) []dnd5e.Item {
	if !r.IsArray() {
		return nil
	}

	var items []dnd5e.Item
	for _, v := range r.Array() {
		if !v.IsObject() {
			continue
		}
		item := dnd5e.Item{
			Title:      text(child(v, "title")),
			Type:       text(child(v, "type")),
			Quantity:   text(child(v, "quantity")),
			Weight:     text(child(v, "weight")),
			Equipped:   truthy(child(v, "equipped")),
			HitBonus:   text(child(v, "hitBonus")),
			Properties: text(child(v, "properties")),
		}
		if damages := child(v, "damages"); damages.IsObject() {
			damages.ForEach(func(k, formula gjson.Result) bool {
				item.Damages = append(item.Damages, dnd5e.Damage{Type: k.Str, Formula: text(formula)})
				return true
			})
		}
		items = append(items, item)
	}
	return items
}

func decodeSpells(r gjson.Result) []dnd5e.Spell {
	if !r.IsArray() {
		return nil
	}

	var spells []dnd5e.Spell
	for _, v := range r.Array() {
		if !v.IsObject() {
			continue
		}
		spells = append(spells, dnd5e.Spell{
			Title:          text(child(v, "title")),
			Level:          integer(child(v, "level"), 0),
			School:         text(child(v, "school")),
			PreparingClass: text(child(v, "preparingClass")),
			CastingTime:    text(child(v, "castingTime")),
			Range:          text(child(v, "range")),
			Duration:       text(child(v, "duration")),
			Description:    text(child(v, "description")),
		})
	}
	return spells
}

// decodeNotes resolves the note shape once: a list of strings or title and
// content objects, a single object, or a bare string
func decodeNotes(r gjson.Result) []dnd5e.Note {
	if !truthy(r) {
		return nil
	}

	switch {
	case r.Type == gjson.String:
		return []dnd5e.Note{{Kind: dnd5e.NotePlain, Content: r.Str}}
	case r.IsObject():
		return []dnd5e.Note{decodeNote(r)}
	case r.IsArray():
		var notes []dnd5e.Note
		for _, v := range r.Array() {
			switch {
			case v.IsObject():
				notes = append(notes, decodeNote(v))
			case v.Type == gjson.String:
				notes = append(notes, dnd5e.Note{Kind: dnd5e.NotePlain, Content: v.Str})
			}
		}
		return notes
	}
	return nil
}

func decodeNote(v gjson.Result) dnd5e.Note {
	n := dnd5e.Note{
		Kind:  dnd5e.NoteTitled,
		Title: text(child(v, "title")),
	}
	if !has(v, "title") {
		n.Title = "Note"
	}

	content := child(v, "content")
	switch {
	case content.Type == gjson.String && strings.HasPrefix(content.Str, richTextMarker):
		n.Kind = dnd5e.NoteRichText
		n.Content = content.Str
	case content.IsArray():
		n.Kind = dnd5e.NoteRichText
		n.Runs = []string{}
		for _, op := range content.Array() {
			if insert := child(op, "insert"); insert.Type == gjson.String {
				n.Runs = append(n.Runs, insert.Str)
			}
		}
	default:
		n.Content = text(content)
	}
	return n
}

// decodeFlags keeps the keys whose values are truthy
func decodeFlags(r gjson.Result) map[string]bool {
	flags := map[string]bool{}
	if !r.IsObject() {
		return flags
	}
	r.ForEach(func(k, v gjson.Result) bool {
		if truthy(v) {
			flags[k.Str] = true
		}
		return true
	})
	return flags
}

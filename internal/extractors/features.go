// Package extractors turns each facet of a character into sheet markup.
//
// Every extractor is a pure function of its slice of the character and
// never fails: an absent or empty facet renders as its fallback text.
package extractors

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/textscan"
	"github.com/KirkDiggler/rpg-sheet/internal/render"
)

const unknownFeature = "Unknown Feature"

// orDefault substitutes def for an empty value
func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Features renders species traits, class features or feats. Named entries
// get a colon-suffixed title; plain strings render with an empty title.
func Features(features []dnd5e.Feature) string {
	var b strings.Builder
	for _, f := range features {
		switch f.Kind {
		case dnd5e.FeatureNamed:
			b.WriteString(render.FeatureItem(
				orDefault(f.Name, unknownFeature)+":",
				textscan.Describe(f.Body()),
			))
		case dnd5e.FeaturePlain:
			b.WriteString(render.FeatureItem("", f.Body()))
		}
	}
	if b.Len() == 0 {
		return render.NoFeatures
	}
	return b.String()
}

// ClassFeatures renders a level-keyed feature table up to and including
// level. Keys that are not integers are skipped.
func ClassFeatures(table []dnd5e.LevelFeatures, level int) string {
	var b strings.Builder
	writeClassFeatures(&b, table, level)
	if b.Len() == 0 {
		return render.NoFeatures
	}
	return b.String()
}

// LeveledClassFeatures renders the feature tables of every class, each
// against its own class level
func LeveledClassFeatures(classes []dnd5e.Class) string {
	var b strings.Builder
	for _, cls := range classes {
		writeClassFeatures(&b, cls.Features, cls.Level)
	}
	if b.Len() == 0 {
		return render.NoFeatures
	}
	return b.String()
}

func writeClassFeatures(b *strings.Builder, table []dnd5e.LevelFeatures, level int) {
	for _, entry := range table {
		n, err := strconv.Atoi(strings.TrimSpace(entry.Key))
		if err != nil || n > level {
			continue
		}
		for _, f := range entry.Features {
			if f.Kind != dnd5e.FeatureNamed {
				continue
			}
			b.WriteString(render.FeatureItem(
				orDefault(f.Name, unknownFeature)+":",
				textscan.Describe(f.Description),
			))
		}
	}
}

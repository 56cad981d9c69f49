package extractors

import (
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/textscan"
	"github.com/KirkDiggler/rpg-sheet/internal/render"
)

// Notes renders freeform notes as titled or untitled blocks
func Notes(notes []dnd5e.Note) string {
	var b strings.Builder
	for _, n := range notes {
		switch n.Kind {
		case dnd5e.NotePlain:
			b.WriteString(render.TextItem(textscan.Newlines(n.Content)))
		case dnd5e.NoteTitled:
			b.WriteString(render.FeatureItem(n.Title, textscan.Newlines(n.Content)))
		case dnd5e.NoteRichText:
			b.WriteString(render.FeatureItem(n.Title, richText(n)))
		}
	}
	return orDefault(b.String(), render.NoNotes)
}

func richText(n dnd5e.Note) string {
	if n.Runs != nil {
		return textscan.JoinRuns(n.Runs)
	}
	return textscan.RichText(n.Content)
}

// Bio renders the biography fields that are set, in a fixed order
func Bio(bio dnd5e.Bio) string {
	fields := []struct {
		label string
		value string
	}{
		{"Bio", textscan.Newlines(bio.Bio)},
		{"Age", bio.Age},
		{"Height", bio.Height},
		{"Weight", bio.Weight},
		{"Eyes", bio.Eyes},
		{"Hair", bio.Hair},
		{"Skin", bio.Skin},
	}

	var b strings.Builder
	for _, f := range fields {
		if f.value != "" {
			b.WriteString(render.FeatureItem(f.label, f.value))
		}
	}
	return orDefault(b.String(), render.NoBio)
}

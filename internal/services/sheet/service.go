// Package sheet defines the interface for character sheet generation
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/rpg-sheet/internal/services/sheet Service

import (
	"context"
)

// Service turns character documents into filled sheets
type Service interface {
	// Render fills the template from the document and returns the markup
	Render(ctx context.Context, input *RenderInput) (*RenderOutput, error)

	// Generate renders and writes the result to OutputPath
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// RenderInput defines the request for rendering a sheet
type RenderInput struct {
	DocumentPath string
	TemplatePath string
}

// RenderOutput defines the response for rendering a sheet
type RenderOutput struct {
	HTML          string
	CharacterName string
	// Unresolved lists placeholders left verbatim in HTML
	Unresolved []string
}

// GenerateInput defines the request for generating a sheet file
type GenerateInput struct {
	DocumentPath string
	TemplatePath string
	OutputPath   string
}

// GenerateOutput defines the response for generating a sheet file
type GenerateOutput struct {
	OutputPath    string
	CharacterName string
	Unresolved    []string
}

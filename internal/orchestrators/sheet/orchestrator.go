// Package sheet implements the sheet orchestrator: load a character
// document, derive its stats, run every extractor and fill the template.
package sheet

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/KirkDiggler/rpg-sheet/internal/document"
	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/render"
	sheetsvc "github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

const outputFileMode = 0o644

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	Engine engine.Engine
	// Mode controls placeholders without a value. Tolerant by default.
	Mode render.Mode
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Mode != render.Tolerant && c.Mode != render.Strict {
		vb.Fieldf("Mode", "unknown render mode %d", int(c.Mode))
	}

	return vb.Build()
}

type orchestrator struct {
	engine engine.Engine
	mode   render.Mode
}

// NewOrchestrator creates a new sheet orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (sheetsvc.Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine: cfg.Engine,
		mode:   cfg.Mode,
	}, nil
}

func (o *orchestrator) Render(ctx context.Context, input *sheetsvc.RenderInput) (*sheetsvc.RenderOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("DocumentPath", input.DocumentPath, vb)
	errors.ValidateRequired("TemplatePath", input.TemplatePath, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "loading character document", "path", input.DocumentPath)
	doc, err := document.LoadFile(input.DocumentPath)
	if err != nil {
		return nil, err
	}

	tmpl, err := render.LoadTemplate(input.TemplatePath)
	if err != nil {
		return nil, err
	}
	if unknown := tmpl.UnknownPlaceholders(); len(unknown) > 0 {
		slog.WarnContext(ctx, "template uses placeholders outside the sheet vocabulary",
			"template", input.TemplatePath,
			"placeholders", unknown)
	}

	fields, err := o.assemble(ctx, doc.Character())
	if err != nil {
		return nil, err
	}

	html, err := tmpl.Execute(fields, o.mode)
	if err != nil {
		return nil, err
	}

	return &sheetsvc.RenderOutput{
		HTML:          html,
		CharacterName: fields[render.FieldCharacterName],
		Unresolved:    tmpl.Unresolved(fields),
	}, nil
}

func (o *orchestrator) Generate(ctx context.Context, input *sheetsvc.GenerateInput) (*sheetsvc.GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OutputPath == "" {
		return nil, errors.InvalidArgument("OutputPath is required")
	}

	out, err := o.Render(ctx, &sheetsvc.RenderInput{
		DocumentPath: input.DocumentPath,
		TemplatePath: input.TemplatePath,
	})
	if err != nil {
		return nil, err
	}

	if err := writeOutput(input.OutputPath, out.HTML); err != nil {
		slog.ErrorContext(ctx, "failed to write sheet", "path", input.OutputPath, "error", err)
		return nil, err
	}
	slog.InfoContext(ctx, "sheet generated",
		"document", input.DocumentPath,
		"output", input.OutputPath,
		"character", out.CharacterName)

	return &sheetsvc.GenerateOutput{
		OutputPath:    input.OutputPath,
		CharacterName: out.CharacterName,
		Unresolved:    out.Unresolved,
	}, nil
}

// writeOutput replaces path atomically via a temp file in the same directory
func writeOutput(path, content string) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".sheet-*")
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeRender, "Error writing output file: %v", err)
	}
	tmp := f.Name()

	_, werr := f.WriteString(content)
	cerr := f.Close()
	if werr == nil {
		werr = cerr
	}
	if werr == nil {
		werr = os.Chmod(tmp, outputFileMode)
	}
	if werr == nil {
		werr = os.Rename(tmp, path)
	}
	if werr != nil {
		_ = os.Remove(tmp)
		return errors.WrapWithCodef(werr, errors.CodeRender, "Error writing output file: %v", werr)
	}
	return nil
}

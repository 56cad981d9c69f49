// Package web handles the HTTP interface for uploading character documents
// and fetching the rendered sheets
package web

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/filename"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/sheets"
	sheetsvc "github.com/KirkDiggler/rpg-sheet/internal/services/sheet"
)

const (
	uploadField      = "file"
	outputSuffix     = "_sheet.html"
	fallbackBaseName = "character"
	htmlContentType  = "text/html; charset=utf-8"
)

var allowedExtensions = map[string]bool{
	".json": true,
	".yaml": true,
	".yml":  true,
}

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	SheetService sheetsvc.Service
	Repository   sheets.Repository
	IDGenerator  idgen.Generator

	UploadDir      string
	TemplatePath   string
	MaxUploadBytes int64
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SheetService == nil {
		vb.RequiredField("SheetService")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	errors.ValidateRequired("UploadDir", c.UploadDir, vb)
	errors.ValidateRequired("TemplatePath", c.TemplatePath, vb)
	errors.ValidatePositive("MaxUploadBytes", c.MaxUploadBytes, vb)

	return vb.Build()
}

// Handler serves the upload form endpoints
type Handler struct {
	sheetService sheetsvc.Service
	repository   sheets.Repository
	idGenerator  idgen.Generator

	uploadDir      string
	templatePath   string
	maxUploadBytes int64
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create upload dir %s", cfg.UploadDir)
	}

	return &Handler{
		sheetService:   cfg.SheetService,
		repository:     cfg.Repository,
		idGenerator:    cfg.IDGenerator,
		uploadDir:      cfg.UploadDir,
		templatePath:   cfg.TemplatePath,
		maxUploadBytes: cfg.MaxUploadBytes,
	}, nil
}

// UploadResponse is the success envelope for POST /upload
type UploadResponse struct {
	Success       bool   `json:"success"`
	OutputFile    string `json:"output_file"`
	CharacterName string `json:"character_name"`
}

// Upload stages the posted document, renders it and stores the sheet
func (h *Handler) Upload(c *gin.Context) {
	ctx := c.Request.Context()
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	file, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "File too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	if file.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file selected"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be a JSON file"})
		return
	}

	// the uploaded name only contributes its extension
	staged := filepath.Join(h.uploadDir, h.idGenerator.Generate()+ext)
	if err := c.SaveUploadedFile(file, staged); err != nil {
		slog.ErrorContext(ctx, "failed to stage upload", "path", staged, "error", err)
		writeError(c, errors.Internalf("failed to stage upload: %v", err))
		return
	}
	defer func() {
		if err := os.Remove(staged); err != nil {
			slog.WarnContext(ctx, "failed to remove staged upload", "path", staged, "error", err)
		}
	}()

	rendered, err := h.sheetService.Render(ctx, &sheetsvc.RenderInput{
		DocumentPath: staged,
		TemplatePath: h.templatePath,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	output := OutputFilename(rendered.CharacterName)
	if _, err := h.repository.Save(ctx, &sheets.SaveInput{
		Filename: output,
		Content:  []byte(rendered.HTML),
	}); err != nil {
		writeError(c, err)
		return
	}

	slog.InfoContext(ctx, "sheet rendered from upload",
		"upload", file.Filename,
		"output", output,
		"character", rendered.CharacterName)

	c.JSON(http.StatusOK, &UploadResponse{
		Success:       true,
		OutputFile:    output,
		CharacterName: rendered.CharacterName,
	})
}

// Download serves a stored sheet as an attachment
func (h *Handler) Download(c *gin.Context) {
	name, sheet, ok := h.lookup(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, htmlContentType, sheet.Content)
}

// View serves a stored sheet inline
func (h *Handler) View(c *gin.Context) {
	_, sheet, ok := h.lookup(c)
	if !ok {
		return
	}
	c.Data(http.StatusOK, htmlContentType, sheet.Content)
}

// Healthz reports liveness
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) lookup(c *gin.Context) (string, *sheets.Sheet, bool) {
	name := filename.Secure(c.Param("filename"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})
		return "", nil, false
	}

	out, err := h.repository.Get(c.Request.Context(), &sheets.GetInput{Filename: name})
	if err != nil {
		writeError(c, err)
		return "", nil, false
	}
	return name, out.Sheet, true
}

// OutputFilename names the stored sheet for a character
func OutputFilename(characterName string) string {
	base := filename.Secure(characterName)
	if base == "" {
		base = fallbackBaseName
	}
	return base + outputSuffix
}

func writeError(c *gin.Context, err error) {
	status := errors.GetCode(err).HTTPStatus()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			"path", c.Request.URL.Path,
			"code", errors.GetCode(err),
			"error", err)
	}
	c.JSON(status, gin.H{"error": errors.GetMessage(err)})
}

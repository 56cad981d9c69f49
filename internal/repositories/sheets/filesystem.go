package sheets

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

const outputFileMode = 0o644

// FilesystemConfig holds the configuration for the filesystem repository
type FilesystemConfig struct {
	Dir   string
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *FilesystemConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Dir", c.Dir, vb)
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type filesystemRepository struct {
	dir   string
	clock clock.Clock
}

// NewFilesystem creates a repository that keeps sheets as files under Dir.
// The directory is created when missing.
func NewFilesystem(cfg *FilesystemConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve output directory %s", cfg.Dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create output directory %s", dir)
	}
	if dir, err = filepath.EvalSymlinks(dir); err != nil {
		return nil, errors.Wrapf(err, "failed to resolve output directory %s", cfg.Dir)
	}

	return &filesystemRepository{dir: dir, clock: cfg.Clock}, nil
}

var _ Repository = (*filesystemRepository)(nil)

func (r *filesystemRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	path, err := r.resolve(input.Filename)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, input.Content, outputFileMode); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeRender, "Error writing output file: %v", err)
	}
	slog.DebugContext(ctx, "sheet saved", "path", path, "bytes", len(input.Content))

	return &SaveOutput{Sheet: &Sheet{
		Filename: input.Filename,
		Content:  input.Content,
		SavedAt:  r.clock.Now(),
	}}, nil
}

func (r *filesystemRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	path, err := r.resolve(input.Filename)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFoundf("File not found: %s", input.Filename)
		}
		return nil, errors.Wrapf(err, "failed to stat %s", input.Filename)
	}
	if info.IsDir() {
		return nil, errors.NotFoundf("File not found: %s", input.Filename)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", input.Filename)
	}
	slog.DebugContext(ctx, "sheet loaded", "path", path)

	return &GetOutput{Sheet: &Sheet{
		Filename: input.Filename,
		Content:  content,
		SavedAt:  info.ModTime().UTC(),
	}}, nil
}

// resolve joins name onto the output directory and rejects anything that
// lands outside it, following symlinks for paths that exist. A dangling
// symlink is rejected since writing through it would create its target.
func (r *filesystemRepository) resolve(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", errors.InvalidArgument("Invalid filename")
	}

	denied := errors.PermissionDeniedf("Invalid file path: %s", name).WithMeta("filename", name)

	path := filepath.Join(r.dir, name)
	if !r.contains(path) {
		return "", denied
	}

	resolved, err := filepath.EvalSymlinks(path)
	switch {
	case err == nil:
		if !r.contains(resolved) {
			return "", denied
		}
	case errors.Is(err, fs.ErrNotExist):
		if _, lerr := os.Lstat(path); lerr == nil {
			return "", denied
		}
	default:
		return "", errors.Wrapf(err, "failed to resolve %s", name)
	}
	return path, nil
}

// contains reports whether path sits strictly below the output directory
func (r *filesystemRepository) contains(path string) bool {
	rel, err := filepath.Rel(r.dir, path)
	return err == nil && rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

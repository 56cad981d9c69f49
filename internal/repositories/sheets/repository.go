// Package sheets stores rendered character sheets so the web boundary can
// serve them back for download or viewing
package sheets

//go:generate mockgen -destination=mock/mock_repository.go -package=sheetsmock github.com/KirkDiggler/rpg-sheet/internal/repositories/sheets Repository

import (
	"context"
	"time"
)

// Sheet is one rendered HTML document
type Sheet struct {
	Filename string
	Content  []byte
	SavedAt  time.Time
}

// SaveInput contains parameters for storing a sheet
type SaveInput struct {
	Filename string
	Content  []byte
}

// SaveOutput contains the stored sheet
type SaveOutput struct {
	Sheet *Sheet
}

// GetInput contains parameters for retrieving a sheet
type GetInput struct {
	Filename string
}

// GetOutput contains the retrieved sheet
type GetOutput struct {
	Sheet *Sheet
}

// Repository defines storage for rendered sheets keyed by filename
type Repository interface {
	// Save stores or replaces a sheet
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get returns a stored sheet or a NotFound error
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)
}

package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/pdm/internal/application/port"
	"github.com/bnema/pdm/internal/domain/conffile"
	"github.com/bnema/pdm/internal/domain/entity"
	"github.com/bnema/pdm/internal/logging"
)

// SaveConfigInput holds the input for saving the edited sections.
type SaveConfigInput struct {
	Path     string
	Sections []entity.ConfigSection
}

// SaveConfigOutput describes what was written.
type SaveConfigOutput struct {
	Path string
	// Written is the number of key=value lines in the file.
	Written int
	Bytes   int
}

// SaveConfigUseCase serializes sections and replaces the file atomically.
type SaveConfigUseCase struct {
	fs port.FileSystem
}

// NewSaveConfigUseCase creates a new SaveConfigUseCase.
func NewSaveConfigUseCase(fs port.FileSystem) *SaveConfigUseCase {
	return &SaveConfigUseCase{fs: fs}
}

// Execute writes the enabled entries of input.Sections to input.Path.
// On failure the previous file content is left untouched.
func (uc *SaveConfigUseCase) Execute(ctx context.Context, input SaveConfigInput) (*SaveConfigOutput, error) {
	log := logging.FromContext(ctx)

	if input.Path == "" {
		return nil, ErrEmptyPath
	}

	content := conffile.Serialize(input.Sections)

	if err := uc.fs.WriteFileAtomic(ctx, input.Path, []byte(content)); err != nil {
		log.Error().Err(err).Str("path", input.Path).Msg("failed to save config file")
		return nil, fmt.Errorf("save config file: %w", err)
	}

	written := 0
	for _, section := range input.Sections {
		written += section.EnabledCount()
	}

	log.Debug().
		Str("path", input.Path).
		Int("entries", written).
		Int("bytes", len(content)).
		Msg("config saved")

	return &SaveConfigOutput{
		Path:    input.Path,
		Written: written,
		Bytes:   len(content),
	}, nil
}

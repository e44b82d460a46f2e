package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/bnema/pdm/internal/application/port"
	"github.com/bnema/pdm/internal/domain/conffile"
	"github.com/bnema/pdm/internal/domain/entity"
	"github.com/bnema/pdm/internal/domain/grouping"
	"github.com/bnema/pdm/internal/logging"
)

// ErrEmptyPath is returned when a use case needs a file path and got none.
var ErrEmptyPath = errors.New("config path is empty")

// LoadConfigInput holds the input for loading a daemon configuration file.
type LoadConfigInput struct {
	Path string
	Role entity.DaemonRole
}

// LoadConfigOutput holds the parsed file.
type LoadConfigOutput struct {
	Path string
	// Existed is false when the file was missing and only defaults were produced.
	Existed bool
	// Entries in parse order followed by the disabled schema defaults.
	Entries []*entity.ConfigEntry
	// Sections is Entries grouped for the editor.
	Sections []entity.ConfigSection
}

// LoadConfigUseCase reads a configuration file and merges it with the role's schema.
type LoadConfigUseCase struct {
	fs      port.FileSystem
	schemas port.ConfigSchemaProvider
}

// NewLoadConfigUseCase creates a new LoadConfigUseCase.
func NewLoadConfigUseCase(fs port.FileSystem, schemas port.ConfigSchemaProvider) *LoadConfigUseCase {
	return &LoadConfigUseCase{
		fs:      fs,
		schemas: schemas,
	}
}

// Execute loads the file at input.Path. A missing file is not an error: every
// schema key comes back disabled with its default value.
func (uc *LoadConfigUseCase) Execute(ctx context.Context, input LoadConfigInput) (*LoadConfigOutput, error) {
	log := logging.FromContext(ctx)

	if input.Path == "" {
		return nil, ErrEmptyPath
	}

	schema := uc.schemas.GetSchema(input.Role)

	exists, err := uc.fs.Exists(ctx, input.Path)
	if err != nil {
		log.Error().Err(err).Str("path", input.Path).Msg("failed to stat config file")
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	var entries []*entity.ConfigEntry
	if !exists {
		log.Debug().Str("path", input.Path).Msg("config file missing, using schema defaults")
		entries = conffile.Defaults(schema)
	} else {
		data, err := uc.fs.ReadFile(ctx, input.Path)
		if err != nil {
			log.Error().Err(err).Str("path", input.Path).Msg("failed to read config file")
			return nil, fmt.Errorf("read config file: %w", err)
		}

		entries, err = conffile.Parse(bytes.NewReader(data), schema)
		if err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	sections := grouping.Group(entries, grouping.ClassifierFor(input.Role))

	log.Debug().
		Str("path", input.Path).
		Str("role", input.Role.String()).
		Int("entries", len(entries)).
		Int("sections", len(sections)).
		Msg("config loaded")

	return &LoadConfigOutput{
		Path:     input.Path,
		Existed:  exists,
		Entries:  entries,
		Sections: sections,
	}, nil
}

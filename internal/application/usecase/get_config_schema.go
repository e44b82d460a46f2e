package usecase

import (
	"context"

	"github.com/bnema/pdm/internal/application/port"
	"github.com/bnema/pdm/internal/domain/entity"
)

// GetConfigSchemaUseCase retrieves the known keys of a daemon configuration file.
type GetConfigSchemaUseCase struct {
	provider port.ConfigSchemaProvider
}

// NewGetConfigSchemaUseCase creates a new GetConfigSchemaUseCase.
func NewGetConfigSchemaUseCase(provider port.ConfigSchemaProvider) *GetConfigSchemaUseCase {
	return &GetConfigSchemaUseCase{
		provider: provider,
	}
}

// GetConfigSchemaInput contains input parameters for schema retrieval.
type GetConfigSchemaInput struct {
	Role entity.DaemonRole
	// Section keeps only keys of this section when non-empty.
	Section string
}

// GetConfigSchemaOutput contains the schema information.
type GetConfigSchemaOutput struct {
	Role entity.DaemonRole
	Keys []entity.ConfigSchema
	// Sections lists section names in first-seen order.
	Sections []string
}

// Execute retrieves all configuration keys with their metadata.
func (uc *GetConfigSchemaUseCase) Execute(_ context.Context, input GetConfigSchemaInput) (*GetConfigSchemaOutput, error) {
	all := uc.provider.GetSchema(input.Role)

	keys := make([]entity.ConfigSchema, 0, len(all))
	var sections []string
	seen := make(map[string]bool)

	for _, k := range all {
		if input.Section != "" && k.Section != input.Section {
			continue
		}
		keys = append(keys, k)
		if !seen[k.Section] {
			seen[k.Section] = true
			sections = append(sections, k.Section)
		}
	}

	return &GetConfigSchemaOutput{
		Role:     input.Role,
		Keys:     keys,
		Sections: sections,
	}, nil
}

package port

import "github.com/bnema/pdm/internal/domain/entity"

// ConfigSchemaProvider provides the known keys of a daemon configuration file.
type ConfigSchemaProvider interface {
	// GetSchema returns all known keys for the role, in display order.
	GetSchema(role entity.DaemonRole) []entity.ConfigSchema
}

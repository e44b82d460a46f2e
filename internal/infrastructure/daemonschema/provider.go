// Package daemonschema holds the static tables of known daemon configuration keys.
package daemonschema

import (
	"slices"

	"github.com/bnema/pdm/internal/application/port"
	"github.com/bnema/pdm/internal/domain/entity"
)

// p2poolSchema is empty: p2pool keys are grouped by naming convention instead.
var p2poolSchema = []entity.ConfigSchema{}

// Provider implements port.ConfigSchemaProvider.
type Provider struct{}

// NewProvider creates a new Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// GetSchema returns a copy of the role's schema table.
func (p *Provider) GetSchema(role entity.DaemonRole) []entity.ConfigSchema {
	switch role {
	case entity.DaemonRoleBitcoin:
		return slices.Clone(bitcoinSchema)
	case entity.DaemonRoleP2Pool:
		return slices.Clone(p2poolSchema)
	default:
		return nil
	}
}

// Lookup returns the schema row for key, if the role knows it.
func (p *Provider) Lookup(role entity.DaemonRole, key string) (entity.ConfigSchema, bool) {
	for _, s := range p.GetSchema(role) {
		if s.Key == key {
			return s, true
		}
	}
	return entity.ConfigSchema{}, false
}

var _ port.ConfigSchemaProvider = (*Provider)(nil)

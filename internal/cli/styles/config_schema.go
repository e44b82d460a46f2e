package styles

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/bnema/pdm/internal/domain/entity"
)

// ConfigSchemaRenderer renders daemon configuration schema tables.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders the schema in styled format, one box per section.
// sections gives the display order.
func (r *ConfigSchemaRenderer) Render(role entity.DaemonRole, keys []entity.ConfigSchema, sections []string) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render(fmt.Sprintf("No known keys for %s", role.FileName()))
	}

	bySection := groupBySection(keys)

	parts := []string{r.renderHeader(role), ""}
	for _, section := range sections {
		if sectionKeys, ok := bySection[section]; ok {
			parts = append(parts, r.renderSection(section, sectionKeys), "")
		}
	}

	return strings.Join(parts, "\n")
}

// RenderJSON renders the schema as JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigSchema) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

// RenderYAML renders the schema as YAML.
func (*ConfigSchemaRenderer) RenderYAML(keys []entity.ConfigSchema) (string, error) {
	var sb strings.Builder
	enc := yaml.NewEncoder(&sb)
	enc.SetIndent(2)
	if err := enc.Encode(keys); err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return sb.String(), nil
}

func (r *ConfigSchemaRenderer) renderHeader(role entity.DaemonRole) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	return fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render(role.FileName()+" reference"))
}

func groupBySection(keys []entity.ConfigSchema) map[string][]entity.ConfigSchema {
	sections := make(map[string][]entity.ConfigSchema)
	for _, key := range keys {
		sections[key.Section] = append(sections[key.Section], key)
	}
	return sections
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigSchema) string {
	lines := make([]string, 0, len(keys))
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}

	boxContent := r.theme.Highlight.Render(name) + "\n" + strings.Join(lines, "\n")
	return r.theme.Box.Padding(0, 2).Render(boxContent)
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigSchema) string {
	keyStyle := r.theme.Normal.Bold(true)
	defaultStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	line := fmt.Sprintf("%s  %s", keyStyle.Render(key.Key), r.theme.Subtle.Render(key.ValueType.String()))
	if key.Default != "" {
		line += "  " + defaultStyle.Render(key.Default)
	}
	return line + "\n  " + r.theme.Subtle.Render(key.Description)
}

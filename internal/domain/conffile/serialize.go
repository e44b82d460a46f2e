package conffile

import (
	"strings"

	"github.com/bnema/pdm/internal/domain/entity"
)

// Serialize renders sections back to the key=value format.
//
// Each section with at least one enabled entry becomes a "# Name" header, one
// line per enabled entry and a blank line. Disabled entries are dropped.
func Serialize(sections []entity.ConfigSection) string {
	var b strings.Builder

	for _, section := range sections {
		if section.EnabledCount() == 0 {
			continue
		}

		b.WriteString(commentPrefix)
		b.WriteString(" ")
		b.WriteString(section.Name)
		b.WriteString("\n")

		for _, item := range section.Items {
			if !item.Enabled {
				continue
			}
			b.WriteString(item.Key)
			b.WriteString("=")
			b.WriteString(item.Value)
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	return b.String()
}

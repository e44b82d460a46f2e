package config

import (
	"fmt"
	"slices"
	"strings"

	domainvalidation "github.com/bnema/pdm/internal/domain/validation"
)

var (
	validLogLevels  = []string{"trace", "debug", "info", "warn", "error"}
	validLogFormats = []string{"console", "json"}
)

// validateConfig collects every problem into a single error.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validatePaths(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if !slices.Contains(validLogLevels, config.Logging.Level) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of %s", strings.Join(validLogLevels, ", ")))
	}
	if !slices.Contains(validLogFormats, config.Logging.Format) {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of %s", strings.Join(validLogFormats, ", ")))
	}
	if config.Logging.EnableFileLog && config.Logging.LogDir == "" {
		validationErrors = append(validationErrors, "logging.log_dir is required when logging.enable_file_log is true")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	p := config.Appearance.DarkPalette
	return domainvalidation.ValidatePaletteHex("appearance.dark_palette",
		domainvalidation.NamedColor{Name: "background", Value: p.Background},
		domainvalidation.NamedColor{Name: "surface", Value: p.Surface},
		domainvalidation.NamedColor{Name: "surface_variant", Value: p.SurfaceVariant},
		domainvalidation.NamedColor{Name: "text", Value: p.Text},
		domainvalidation.NamedColor{Name: "muted", Value: p.Muted},
		domainvalidation.NamedColor{Name: "accent", Value: p.Accent},
		domainvalidation.NamedColor{Name: "border", Value: p.Border},
	)
}

func validatePaths(config *Config) []string {
	var validationErrors []string
	validationErrors = append(validationErrors, domainvalidation.ValidateOptionalPath("explorer.start_dir", config.Explorer.StartDir)...)
	validationErrors = append(validationErrors, domainvalidation.ValidateOptionalPath("paths.bitcoin_conf", config.Paths.BitcoinConf)...)
	validationErrors = append(validationErrors, domainvalidation.ValidateOptionalPath("paths.p2pool_conf", config.Paths.P2PoolConf)...)
	return validationErrors
}

package validation

import "strings"

// ValidateOptionalPath checks a user supplied path. Empty means "not set".
func ValidateOptionalPath(field, value string) []string {
	if value == "" {
		return nil
	}

	var errs []string
	if strings.TrimSpace(value) == "" {
		errs = append(errs, field+" cannot be blank")
	}
	if strings.ContainsAny(value, "\x00\r\n") {
		errs = append(errs, field+" must not contain control characters")
	}
	if len(value) > 4096 {
		errs = append(errs, field+" is too long")
	}
	return errs
}

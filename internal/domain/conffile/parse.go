// Package conffile reads and writes flat key=value daemon configuration files
// such as bitcoin.conf and p2pool.conf.
package conffile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/pdm/internal/domain/entity"
)

const (
	commentPrefix = "#"
	flagValue     = "1"
	byteOrderMark = "\ufeff"
)

// Line is a single key/value pair read from a file.
type Line struct {
	Key   string
	Value string
}

// ScanLines reads r and returns the key/value pairs in file order.
// Blank lines, comments and malformed lines are skipped. A line without '='
// is a flag and gets the value "1". Lines have no length limit and a leading
// UTF-8 byte order mark is ignored.
func ScanLines(r io.Reader) ([]Line, error) {
	var lines []Line
	reader := bufio.NewReader(r)
	for first := true; ; first = false {
		raw, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read config lines: %w", err)
		}
		if first {
			raw = strings.TrimPrefix(raw, byteOrderMark)
		}
		if line, ok := parseLine(raw); ok {
			lines = append(lines, line)
		}
		if err != nil {
			return lines, nil
		}
	}
}

func parseLine(raw string) (Line, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, commentPrefix) {
		return Line{}, false
	}

	// INI-style network headers ([main], [test], ...) are not part of the flat model.
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		return Line{}, false
	}

	key, value, found := strings.Cut(trimmed, "=")
	if !found {
		return Line{Key: trimmed, Value: flagValue}, true
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return Line{}, false
	}
	return Line{Key: key, Value: strings.TrimSpace(value)}, true
}

// Merge combines parsed lines with a schema table.
//
// Lines are returned in file order: known keys carry their schema and are
// enabled, unknown keys have no schema. Every schema row that never appeared
// is appended as a disabled entry holding its default.
func Merge(lines []Line, schema []entity.ConfigSchema) []*entity.ConfigEntry {
	index := make(map[string]*entity.ConfigSchema, len(schema))
	for i := range schema {
		index[schema[i].Key] = &schema[i]
	}

	found := make(map[string]bool, len(lines))
	entries := make([]*entity.ConfigEntry, 0, len(lines)+len(schema))

	for _, line := range lines {
		if s, ok := index[line.Key]; ok {
			entries = append(entries, entity.NewKnownEntry(s, line.Value, true))
			found[line.Key] = true
			continue
		}
		entries = append(entries, entity.NewUnknownEntry(line.Key, line.Value))
	}

	for i := range schema {
		if !found[schema[i].Key] {
			entries = append(entries, entity.NewDefaultEntry(&schema[i]))
		}
	}

	return entries
}

// Parse reads a configuration file from r and merges it with schema.
func Parse(r io.Reader, schema []entity.ConfigSchema) ([]*entity.ConfigEntry, error) {
	lines, err := ScanLines(r)
	if err != nil {
		return nil, err
	}
	return Merge(lines, schema), nil
}

// Defaults returns one disabled entry per schema row, used when the file does not exist.
func Defaults(schema []entity.ConfigSchema) []*entity.ConfigEntry {
	return Merge(nil, schema)
}

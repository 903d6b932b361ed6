// Package respfile loads MSBuild-style response files: plain-text files
// holding one glob specification per line, which editors frequently save
// with a UTF-8 or UTF-16 byte-order mark.
//
// Grounded on IgorBayerl-ReportGenerator's internal/filereader.ReadLinesInFile,
// which sniffs an unknown encoding and decodes through a transform.Reader
// before scanning lines; here the sniff is narrowed to the BOM-driven
// unicode.BOMOverride case since response files are always UTF-8/UTF-16,
// never the arbitrary charset ReadLinesInFile's fuller detection handles.
package respfile

import (
	"bufio"
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/globkit/fileglob/internal/filesystem"
)

// Load reads path through fsys, decodes a leading UTF-8/UTF-16 BOM if
// present (defaulting to UTF-8 otherwise), and returns the non-empty,
// non-comment lines in order. A line whose first non-whitespace character
// is '#' is a comment and is skipped, as is a blank line.
func Load(fsys filesystem.Filesystem, path string) ([]string, error) {
	raw, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("respfile: reading %s: %w", path, err)
	}

	decoded, err := decode(raw)
	if err != nil {
		return nil, fmt.Errorf("respfile: decoding %s: %w", path, err)
	}

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(decoded))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("respfile: scanning %s: %w", path, err)
	}
	return lines, nil
}

// decode strips a UTF-8/UTF-16LE/UTF-16BE BOM if present and transforms the
// remainder to UTF-8; bytes without a recognized BOM pass through as UTF-8
// unchanged (unicode.BOMOverride's fallback).
func decode(raw []byte) (string, error) {
	bomAware := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(bomAware, raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Join concatenates lines into a single ';'-separated specification list
// suitable for globspec.Split.
func Join(lines []string) string {
	return strings.Join(lines, ";")
}

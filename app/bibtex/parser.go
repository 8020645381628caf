package bibtex

import (
	"log/slog"
	"regexp"
	"strings"
)

// Parser scans BibTeX source for entries of the form
// @type{key, field = {value}, ...}. The grammar is deliberately small:
// field values are single-level brace content (no nested braces) and
// quoted-string fields are out of grammar. An entry body runs until a
// line consisting solely of "}". Malformed entries are skipped, never
// surfaced as errors.
type Parser struct {
	entryRe *regexp.Regexp
	fieldRe *regexp.Regexp
}

func NewParser() *Parser {
	return &Parser{
		entryRe: regexp.MustCompile(`(?s)@(\w+)\{([^,]+),\s*(.+?)\n\}`),
		fieldRe: regexp.MustCompile(`(\w+)\s*=\s*\{([^}]+)\}`),
	}
}

// Run returns entries in source order. An empty or unparsable source
// yields an empty slice.
func (p *Parser) Run(src string) []Entry {
	matches := p.entryRe.FindAllStringSubmatch(src, -1)

	entries := make([]Entry, 0, len(matches))
	for _, match := range matches {
		entry := Entry{
			Type:   match[1],
			Key:    strings.TrimSpace(match[2]),
			Fields: make(map[string]string),
		}

		for _, field := range p.fieldRe.FindAllStringSubmatch(match[3], -1) {
			entry.Fields[field[1]] = field[2]
		}

		entries = append(entries, entry)
	}

	if len(entries) == 0 && strings.Contains(src, "@") {
		slog.Debug("No well-formed bibliography entries found", "sourceLength", len(src))
	}

	return entries
}

package tui

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/csfix/csfix/internal/domain"
)

// helpWidth is the total column budget for a catalog entry: padded name plus
// wrapped description. Fixed so the rendered help is byte-identical across
// environments and can be diffed between releases.
const helpWidth = 72

// FormatFixerCatalog renders the fixer descriptors as aligned, wrapped text
// for embedding in command help. Entries keep catalog order and are
// separated by exactly one blank line.
func FormatFixerCatalog(cat *domain.Catalog) string {
	fixers := cat.Fixers()
	entries := make([]helpEntry, 0, len(fixers))
	for _, f := range fixers {
		entries = append(entries, helpEntry{
			name: f.Name,
			text: fmt.Sprintf("[%s] %s", f.Level, f.Description),
		})
	}
	return formatEntries(entries)
}

// FormatProfileCatalog renders the configuration-profile descriptors in the
// same layout, without level tags.
func FormatProfileCatalog(cat *domain.Catalog) string {
	profiles := cat.Profiles()
	entries := make([]helpEntry, 0, len(profiles))
	for _, p := range profiles {
		entries = append(entries, helpEntry{name: p.Name, text: p.Description})
	}
	return formatEntries(entries)
}

type helpEntry struct {
	name string
	text string
}

func formatEntries(entries []helpEntry) string {
	maxLen := 0
	for _, e := range entries {
		if len(e.name) > maxLen {
			maxLen = len(e.name)
		}
	}

	indent := strings.Repeat(" ", maxLen+4)
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n")
		}
		wrapped := wordwrap.WrapString(e.text, uint(helpWidth-maxLen))
		for j, line := range strings.Split(wrapped, "\n") {
			if j == 0 {
				fmt.Fprintf(&b, "%-*s    %s\n", maxLen, e.name, line)
				continue
			}
			b.WriteString(indent + line + "\n")
		}
	}
	return b.String()
}

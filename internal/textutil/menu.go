package textutil

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"zizutil/internal/jsonconfig"
)

// MenuOptions controls Menu output. The zero value numbers options from 1
// with Arabic numerals and ends each line with a dot.
type MenuOptions struct {
	Prefix        string
	Suffix        string
	// Start is the number of the first option; nil means 1.
	Start         *int
	NoTrailingDot bool
	Roman         bool
	TitleCase     bool
}

// Menu renders one numbered line per option, joined by newlines with no
// trailing newline:
//
//	1. <prefix> option <suffix>.
//
// Prefix and suffix are trimmed and omitted entirely when blank. Whitespace
// inside an option is preserved.
func Menu(options []string, opts MenuOptions) string {
	start := 1
	if opts.Start != nil {
		start = *opts.Start
	}
	prefix := strings.TrimSpace(opts.Prefix)
	if prefix != "" {
		prefix += " "
	}
	suffix := strings.TrimSpace(opts.Suffix)
	if suffix != "" {
		suffix = " " + suffix
	}

	var caser cases.Caser
	if opts.TitleCase {
		caser = cases.Title(language.Und)
	}

	lines := make([]string, 0, len(options))
	for i, option := range options {
		n := start + i
		label := strconv.Itoa(n)
		// Numbers below 1 have no Roman form and keep their Arabic label.
		if opts.Roman && n > 0 {
			label = ToRoman(n)
		}
		if opts.TitleCase {
			option = caser.String(option)
		}

		var b strings.Builder
		b.WriteString(label)
		b.WriteString(". ")
		b.WriteString(prefix)
		b.WriteString(option)
		b.WriteString(suffix)
		if !opts.NoTrailingDot {
			b.WriteByte('.')
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// MenuFromKeys renders a menu whose options are the document's keys in
// insertion order, followed by any extra options.
func MenuFromKeys(doc *jsonconfig.Document, opts MenuOptions, extra ...string) string {
	return Menu(append(doc.Keys(), extra...), opts)
}

// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user-facing messages for the user's locale.
package translate

import (
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is the language used when the host reports no usable locale.
var Fallback = language.AmericanEnglish

var (
	printerOnce sync.Once
	printer     *message.Printer
)

// tags converts host locale names into language tags, dropping any
// that do not parse.
func tags(locales []string) (out []language.Tag) {
	for _, name := range locales {
		tag, err := language.Parse(name)
		if err != nil {
			continue
		}
		out = append(out, tag)
	}

	return
}

// Printer returns the process-wide message printer, selected once from
// the host locales.
func Printer() *message.Printer {
	printerOnce.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Warn("locale unavailable", "err", err)
		}

		found := tags(locales)
		if len(found) == 0 {
			found = []language.Tag{Fallback}
		}

		matcher := language.NewMatcher(append([]language.Tag{Fallback}, found...))
		tag, _, _ := matcher.Match(found...)
		printer = message.NewPrinter(tag)
	})

	return printer
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return Printer().Sprintf(key, args...)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package i18n resolves the console's message keys (see package app) into
// English or Korean text using golang.org/x/text.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the languages that have a translation table. The first
// entry is the fallback.
var Supported = []language.Tag{language.English, language.Korean}

var (
	messages = newCatalog()
	matcher  = language.NewMatcher(Supported)
)

// Translator formats message keys for one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Translator for the supported language closest to locale.
// Empty or unknown locales fall back to English.
func New(locale string) *Translator {
	tag := language.English
	if parsed, err := language.Parse(locale); err == nil {
		_, idx, conf := matcher.Match(parsed)
		if conf != language.No {
			tag = Supported[idx]
		}
	}

	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(messages)),
	}
}

// T formats the message registered under key with args. Unknown keys are
// returned as is.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

// Language returns the language t formats for.
func (t *Translator) Language() language.Tag {
	return t.tag
}

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, table := range translations {
		for key, msg := range table {
			// SetString only fails on malformed tags, the tags are constants
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}

// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package i18n translates user-facing strings. Translations live in the
// embedded locales directory, one YAML file per language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// Init loads every embedded locale and selects lang.
func Init(lang string) {
	mu.Lock()
	defer mu.Unlock()

	bundle = i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		_, _ = bundle.ParseMessageFileBytes(data, f.Name())
	}

	if lang == "" {
		lang = "en"
	}
	current = lang
	localizer = i18n.NewLocalizer(bundle, lang)
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language tag.
func GetLang() string {
	ensure()
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// GetAvailableLocales maps each embedded language tag to its name in that
// language.
func GetAvailableLocales() map[string]string {
	ensure()
	out := map[string]string{}
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		tag := strings.TrimSuffix(f.Name(), ".yaml")
		parsed, err := language.Parse(tag)
		if err != nil {
			continue
		}
		out[tag] = display.Self.Name(parsed)
	}
	return out
}

// Locales returns the embedded language tags in sorted order.
func Locales() []string {
	av := GetAvailableLocales()
	tags := make([]string, 0, len(av))
	for tag := range av {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// T translates messageID. A single map argument is passed as template data;
// other arguments are applied with fmt.Sprintf. Unknown ids are returned
// unchanged.
func T(messageID string, args ...any) string {
	ensure()
	mu.RLock()
	l := localizer
	mu.RUnlock()

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(args) == 1 {
		if data, ok := args[0].(map[string]any); ok {
			cfg.TemplateData = data
			args = nil
		}
	}

	msg, err := l.Localize(cfg)
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

func ensure() {
	mu.RLock()
	ready := localizer != nil
	mu.RUnlock()
	if !ready {
		Init("en")
	}
}

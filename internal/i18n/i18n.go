// ABOUTME: English/Assamese UI translations with durable language preference
// ABOUTME: Unknown keys fall back to the key itself, never an empty string

package i18n

import (
	"fmt"
	"sync"

	"github.com/EnderMRG/ChaiTea/internal/prefs"
)

// Language identifies one of the two supported UI languages.
type Language string

const (
	English  Language = "en"
	Assamese Language = "as"
)

// Valid reports whether l is a supported language code.
func (l Language) Valid() bool {
	return l == English || l == Assamese
}

// Translator resolves UI strings for the current language. The language
// choice is persisted under the shared preference store, so it survives
// restarts the same way demo mode does.
type Translator struct {
	prefs *prefs.Store

	mu       sync.RWMutex
	language Language
}

// New creates a translator rehydrated from the stored preference.
// Missing or unrecognized stored values fall back to English.
func New(store *prefs.Store) *Translator {
	language := English
	if saved, ok := store.Get(prefs.KeyLanguage); ok && Language(saved).Valid() {
		language = Language(saved)
	}
	return &Translator{prefs: store, language: language}
}

// Language returns the current language.
func (t *Translator) Language() Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.language
}

// Toggle flips between English and Assamese and persists the choice.
func (t *Translator) Toggle() error {
	t.mu.Lock()
	next := English
	if t.language == English {
		next = Assamese
	}
	t.language = next
	t.mu.Unlock()

	if err := t.prefs.Set(prefs.KeyLanguage, string(next)); err != nil {
		return fmt.Errorf("persisting language: %w", err)
	}
	return nil
}

// T resolves key in the current language. Unknown keys return the key
// itself so a missing translation shows up as a readable label instead
// of a blank spot in the UI.
func (t *Translator) T(key string) string {
	t.mu.RLock()
	language := t.language
	t.mu.RUnlock()

	if s, ok := tables[language][key]; ok {
		return s
	}
	// A key missing from the active language still resolves in English
	// before falling back to the raw key.
	if language != English {
		if s, ok := tables[English][key]; ok {
			return s
		}
	}
	return key
}

// Func returns T as a plain function, handy for template FuncMaps.
func (t *Translator) Func() func(string) string {
	return t.T
}

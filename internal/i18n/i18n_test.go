// ABOUTME: Tests for translation lookup, key fallback, and toggle persistence
// ABOUTME: Also checks the two tables carry identical key sets

package i18n

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EnderMRG/ChaiTea/internal/prefs"
)

func newTestPrefs(t *testing.T) *prefs.Store {
	t.Helper()
	store, err := prefs.Open(filepath.Join(t.TempDir(), "prefs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestTranslator_DefaultsToEnglish(t *testing.T) {
	tr := New(newTestPrefs(t))

	assert.Equal(t, English, tr.Language())
	assert.Equal(t, "Dashboard", tr.T("dashboard"))
	assert.Equal(t, "No data available", tr.T("noDataAvailable"))
}

func TestTranslator_UnknownKeyFallsBackToKey(t *testing.T) {
	tr := New(newTestPrefs(t))

	assert.Equal(t, "someNewKey", tr.T("someNewKey"))
}

func TestTranslator_Toggle(t *testing.T) {
	tr := New(newTestPrefs(t))

	require.NoError(t, tr.Toggle())
	assert.Equal(t, Assamese, tr.Language())
	assert.Equal(t, "ড্যাশবোৰ্ড", tr.T("dashboard"))

	require.NoError(t, tr.Toggle())
	assert.Equal(t, English, tr.Language())
	assert.Equal(t, "Dashboard", tr.T("dashboard"))
}

func TestTranslator_PreferencePersistsAcrossRestart(t *testing.T) {
	store := newTestPrefs(t)

	tr := New(store)
	require.NoError(t, tr.Toggle())
	require.Equal(t, Assamese, tr.Language())

	reopened := New(store)
	assert.Equal(t, Assamese, reopened.Language())
}

func TestTranslator_GarbageStoredValueFallsBackToEnglish(t *testing.T) {
	store := newTestPrefs(t)
	require.NoError(t, store.Set(prefs.KeyLanguage, "fr"))

	tr := New(store)
	assert.Equal(t, English, tr.Language())
}

func TestTables_KeySetsMatch(t *testing.T) {
	en := tables[English]
	as := tables[Assamese]
	require.Equal(t, len(en), len(as))

	for key := range en {
		_, ok := as[key]
		assert.True(t, ok, "key %q missing from Assamese table", key)
	}
}

package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestTranslate(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "en.json", `{"user_created": "User created", "forbidden": "Forbidden"}`)
	writeCatalog(t, dir, "ru.json", `{"user_created": "Пользователь создан"}`)

	catalog, err := Load(dir, "en")
	require.NoError(t, err)

	assert.Equal(t, "User created", catalog.T("user_created"))
	assert.Equal(t, "Пользователь создан", catalog.Translate("user_created", "ru"))
}

func TestTranslateMissingKeyEchoesID(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "en.json", `{"known": "Known"}`)

	catalog, err := Load(dir, "en")
	require.NoError(t, err)

	assert.Equal(t, "unknown_message", catalog.T("unknown_message"))
}

func TestTranslateAcceptLanguageHeader(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "en.json", `{"user_created": "User created", "forbidden": "Forbidden"}`)
	writeCatalog(t, dir, "ru.json", `{"user_created": "Пользователь создан"}`)

	catalog, err := Load(dir, "en")
	require.NoError(t, err)

	// Browsers send region-qualified, weighted headers.
	assert.Equal(t, "Пользователь создан", catalog.Translate("user_created", "ru-RU,ru;q=0.9,en;q=0.8"))
	// A message missing from the preferred catalog falls back to the default.
	assert.Equal(t, "Forbidden", catalog.Translate("forbidden", "ru-RU,ru;q=0.9"))
}

func TestTranslateUnknownLanguageFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "en.json", `{"greeting": "Hello"}`)

	catalog, err := Load(dir, "en")
	require.NoError(t, err)

	assert.Equal(t, "Hello", catalog.Translate("greeting", "de"))
}

func TestLoadYAMLCatalog(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "en.yaml", "greeting: Hello\n")

	catalog, err := Load(dir, "en")
	require.NoError(t, err)

	assert.Equal(t, "Hello", catalog.T("greeting"))
}

func TestLoadMissingDirectory(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing"), "en")
	assert.Error(t, err)
}

func TestLoadSkipsBrokenCatalog(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "en.json", `{"greeting": "Hello"}`)
	writeCatalog(t, dir, "broken.json", `{not json`)

	catalog, err := Load(dir, "en")
	require.NoError(t, err)

	assert.Equal(t, "Hello", catalog.T("greeting"))
	assert.NotContains(t, catalog.Languages(), "broken")
}

func TestReloadPicksUpChanges(t *testing.T) {
	dir := t.TempDir()
	writeCatalog(t, dir, "en.json", `{"greeting": "Hello"}`)

	catalog, err := Load(dir, "en")
	require.NoError(t, err)
	assert.Equal(t, "Hello", catalog.T("greeting"))

	writeCatalog(t, dir, "en.json", `{"greeting": "Hi"}`)
	require.NoError(t, catalog.Reload())
	assert.Equal(t, "Hi", catalog.T("greeting"))
}

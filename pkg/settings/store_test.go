package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "settings.json"))
}

func TestMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	s := testStore(t)

	assert.Equal(t, "light", s.String(KeyTheme))
	assert.True(t, s.Bool(KeyIs24Hour))
	assert.Equal(t, 42, s.Int(KeyFontSize))
	assert.InDelta(t, 0.9, s.Float(KeyVoiceVolume), 0.001)
}

func TestSetPersistsWhenAutoSaveOn(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	s := NewStore(path)

	s.Set(KeyTheme, "dark")
	s.Set(KeyFontSize, 64)

	reloaded := NewStore(path)
	assert.Equal(t, "dark", reloaded.String(KeyTheme))
	assert.Equal(t, 64, reloaded.Int(KeyFontSize))
}

func TestSetDoesNotPersistWhenAutoSaveOff(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	s := NewStore(path)
	s.Set(KeyAutoSave, false)
	s.Set(KeyTheme, "dark")

	_, err := os.Stat(path)
	require.NoError(t, err, "turning auto save off is itself persisted")

	reloaded := NewStore(path)
	assert.Equal(t, "light", reloaded.String(KeyTheme))

	// An explicit Save flushes the pending change
	require.NoError(t, s.Save())
	reloaded = NewStore(path)
	assert.Equal(t, "dark", reloaded.String(KeyTheme))
}

func TestCorruptFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewStore(path)
	assert.Equal(t, "light", s.String(KeyTheme))
	assert.Equal(t, 42, s.Int(KeyFontSize))
}

func TestUnknownKeysAreDropped(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"dark","bogus_key":123}`), 0o644))

	s := NewStore(path)
	assert.Equal(t, "dark", s.String(KeyTheme))
	assert.Nil(t, s.Get("bogus_key"))

	s.Set("bogus_key", "x")
	assert.Nil(t, s.Get("bogus_key"))
}

func TestWrongTypedValueKeepsDefault(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"font_size":"huge","is_24_hour":"yes"}`), 0o644))

	s := NewStore(path)
	assert.Equal(t, 42, s.Int(KeyFontSize))
	assert.True(t, s.Bool(KeyIs24Hour))
}

func TestLoadCoercesJSONNumbersToInt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"font_size":64,"companion_port":9999}`), 0o644))

	s := NewStore(path)
	assert.Equal(t, 64, s.Int(KeyFontSize))
	assert.Equal(t, 9999, s.Int(KeyCompanionPort))
	assert.IsType(t, 0, s.Get(KeyFontSize))
}

func TestUpdateAppliesMultipleKeys(t *testing.T) {
	t.Parallel()

	s := testStore(t)
	s.Update(map[string]any{
		KeyTheme:      "dark",
		KeyShowDate:   false,
		"unknown_key": "dropped",
		KeyFontSize:   float64(48),
	})

	assert.Equal(t, "dark", s.String(KeyTheme))
	assert.False(t, s.Bool(KeyShowDate))
	assert.Equal(t, 48, s.Int(KeyFontSize))
	assert.Nil(t, s.Get("unknown_key"))
}

func TestResetToDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.json")
	s := NewStore(path)
	s.Set(KeyTheme, "dark")

	s.ResetToDefaults()
	assert.Equal(t, "light", s.String(KeyTheme))

	reloaded := NewStore(path)
	assert.Equal(t, "light", reloaded.String(KeyTheme))
}

func TestJSONListRoundTrip(t *testing.T) {
	t.Parallel()

	type entry struct {
		Name string `json:"name"`
		ID   int    `json:"id"`
	}

	path := filepath.Join(t.TempDir(), "settings.json")
	s := NewStore(path)
	s.SetJSON(KeySchedules, []entry{{Name: "lunch", ID: 1}, {Name: "standup", ID: 2}})

	var out []entry
	NewStore(path).GetJSON(KeySchedules, &out)
	require.Len(t, out, 2)
	assert.Equal(t, "lunch", out[0].Name)
	assert.Equal(t, 2, out[1].ID)
}

func TestSavedFileIsValidJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.json")
	s := NewStore(path)
	require.NoError(t, s.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, KeyTheme)
}

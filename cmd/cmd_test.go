package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawDataset = `[
  {"id": "1", "name": "Test Wolf", "type": "Creature", "race": "Wolf", "rarity": "Legendary",
   "isunique": true, "cost": 2, "attack": 3, "health": 3, "set": "Core",
   "attributes": ["Strength"], "keywords": [], "text": ""},
  {"id": "2", "name": "Firebolt", "type": "Action", "rarity": "Common", "set": "core",
   "cost": 1, "attributes": ["Intelligence"], "keywords": [], "text": "Line one\nLine two\n\n"},
  {"id": "3", "name": "Flip Card", "type": "Double", "rarity": "??", "set": "??"},
  {"id": "4", "name": "Templated Hero", "type": "Creature", "race": "Nord", "rarity": "Epic",
   "set": "Core", "attributes": ["Willpower"]}
]`

func writeFixtures(t *testing.T) (dir, input, genders string) {
	t.Helper()
	dir = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))

	input = filepath.Join(dir, "cards.json")
	require.NoError(t, os.WriteFile(input, []byte(rawDataset), 0644))

	genders = filepath.Join(dir, "genders.yaml")
	require.NoError(t, os.WriteFile(genders, []byte("- name: Test Wolf\n  gender: Unknown\n"), 0644))
	return dir, input, genders
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestNormalizeCommand(t *testing.T) {
	dir, input, genders := writeFixtures(t)
	output := filepath.Join(dir, "out", "cards.json")

	_, err := execute(t, "normalize", "--log-level", "error",
		"-i", input, "-g", genders, "-o", output, "-x", "Templated Hero")
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var cards []map[string]any
	require.NoError(t, json.Unmarshal(data, &cards))
	require.Len(t, cards, 2)

	wolf := cards[0]
	assert.Equal(t, "Test Wolf", wolf["name"])
	assert.Equal(t, "Unique Legendary", wolf["rarity"])
	assert.Equal(t, []any{"Wolf"}, wolf["race"])
	assert.Equal(t, "Unknown", wolf["gender"])
	assert.NotContains(t, wolf, "text")

	bolt := cards[1]
	assert.Equal(t, "Core", bolt["set"])
	assert.Equal(t, []any{"Line one", "Line two"}, bolt["text"])
	assert.Equal(t, true, bolt["collectible"])
}

func TestValidateCommandReportsErrors(t *testing.T) {
	_, input, genders := writeFixtures(t)

	out, err := execute(t, "validate", "--log-level", "error", "-i", input, "-g", genders)
	require.Error(t, err)
	assert.Contains(t, out, "validation errors")
	assert.Contains(t, out, `creature "Templated Hero" has no assigned gender`)
	assert.Contains(t, out, "1 retired Double cards will be dropped: Flip Card")
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "completed", cfg.Vocabulary.CompletedStatus)
}

func TestLoad_ParsesVocabularyAndExclusions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clientdesk.yaml")
	data := `
vocabulary:
  not_started_status: novo
  completed_status: concluido
  types:
    - name: website
      statuses: [novo, producao, concluido]
dashboard:
  exclusions:
    monthly_value: ["Internal Sandbox", "Acme Test"]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	vocab := cfg.ToVocabulary()
	assert.Equal(t, "novo", vocab.NotStartedStatus)
	assert.Equal(t, "producao", vocab.Types[0].Statuses[1])
	assert.Equal(t, "novo", vocab.InitialStatus("website"))

	assert.True(t, cfg.Dashboard.Excluded("monthly_value", "acme test"))
	assert.False(t, cfg.Dashboard.Excluded("monthly_value", "Acme Corp"))
	assert.False(t, cfg.Dashboard.Excluded("top_clients", "Acme Test"))
}

func TestLoad_RejectsBrokenVocabulary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clientdesk.yaml")
	data := `
vocabulary:
  not_started_status: novo
  completed_status: concluido
  types:
    - name: website
      statuses: []
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "website")
}

func TestValidate_DuplicateType(t *testing.T) {
	cfg := Default()
	cfg.Vocabulary.Types = append(cfg.Vocabulary.Types, cfg.Vocabulary.Types[0])
	assert.Error(t, cfg.Validate())
}

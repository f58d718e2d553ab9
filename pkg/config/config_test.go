package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "replicate", cfg.OCR.Provider)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxFileSize)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  host: 127.0.0.1
  port: 9000
ocr:
  provider: clarifai
  gdocai:
    project_id: my-project
    location: eu
    processor_id: abc123
llm:
  provider: anthropic
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr())
	assert.Equal(t, "clarifai", cfg.OCR.Provider)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "my-project", cfg.OCR.GDocAI.ProjectID)
	// Untouched values keep their defaults.
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: ["), 0o600))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OCR_PROVIDER", "mock")
	t.Setenv("LLM_PROVIDER", "anthropic")
	t.Setenv("LLM_MODEL", "gpt-4o")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("BACKEND_PORT", "8080")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.OCR.Provider)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAIAPIKey)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestDispatcherConfigMapping(t *testing.T) {
	cfg := Default()
	cfg.OCR.ReplicateAPIToken = "r8-token"
	cfg.OCR.ClarifaiPAT = "pat"
	cfg.LLM.AnthropicAPIKey = "ak"

	oc := cfg.OCRConfig()
	assert.Equal(t, "replicate", oc.DefaultProvider)
	assert.Equal(t, "r8-token", oc.Replicate.APIToken)
	assert.Equal(t, "pat", oc.Clarifai.PAT)

	pc := cfg.ParaphraseConfig()
	assert.Equal(t, "openai", pc.DefaultProvider)
	assert.Equal(t, "ak", pc.AnthropicAPIKey)
}

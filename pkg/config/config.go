// Package config loads pipeline settings from an optional YAML file with
// environment-variable overrides. Credentials are normally supplied through
// the environment; the file covers everything else.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hdnguyen/ocrpipe/pkg/ocr"
	"github.com/hdnguyen/ocrpipe/pkg/paraphrase"
)

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// OCRSettings selects the default OCR provider and its credentials.
type OCRSettings struct {
	Provider          string `yaml:"provider"`
	ReplicateAPIToken string `yaml:"replicate_api_token"`
	ClarifaiPAT       string `yaml:"clarifai_pat"`
	ClarifaiBaseURL   string `yaml:"clarifai_base_url"`
	TesseractLanguage string `yaml:"tesseract_language"`

	GDocAI GDocAISettings `yaml:"gdocai"`
}

// GDocAISettings identifies a Google Document AI processor.
type GDocAISettings struct {
	ProjectID   string `yaml:"project_id"`
	Location    string `yaml:"location"`
	ProcessorID string `yaml:"processor_id"`
}

// LLMSettings selects the default paraphrase provider and its credentials.
type LLMSettings struct {
	Provider        string `yaml:"provider"`
	Model           string `yaml:"model"`
	OpenAIAPIKey    string `yaml:"openai_api_key"`
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
}

// UploadConfig bounds incoming files.
type UploadConfig struct {
	// MaxFileSize is the largest accepted upload in bytes.
	MaxFileSize int64 `yaml:"max_file_size"`
}

// Config is the full pipeline configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	OCR    OCRSettings  `yaml:"ocr"`
	LLM    LLMSettings  `yaml:"llm"`
	Upload UploadConfig `yaml:"upload"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Host: "0.0.0.0", Port: 8000},
		OCR: OCRSettings{
			Provider:          "replicate",
			TesseractLanguage: ocr.DefaultTesseractLanguage,
		},
		LLM: LLMSettings{
			Provider: "openai",
			Model:    "gpt-4o-mini",
		},
		Upload: UploadConfig{MaxFileSize: 10 * 1024 * 1024},
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (skipped when path is empty), then environment variables, later sources
// winning.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	setEnvString(&c.OCR.Provider, "OCR_PROVIDER")
	setEnvString(&c.OCR.ReplicateAPIToken, "REPLICATE_API_TOKEN")
	setEnvString(&c.OCR.ClarifaiPAT, "CLARIFAI_PAT")
	setEnvString(&c.LLM.Provider, "LLM_PROVIDER")
	setEnvString(&c.LLM.Model, "LLM_MODEL")
	setEnvString(&c.LLM.OpenAIAPIKey, "OPENAI_API_KEY")
	setEnvString(&c.LLM.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	setEnvString(&c.Server.Host, "BACKEND_HOST")
	setEnvInt(&c.Server.Port, "BACKEND_PORT")
}

func setEnvString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setEnvInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// OCRConfig maps the settings into the OCR dispatcher's config.
func (c *Config) OCRConfig() ocr.Config {
	return ocr.Config{
		DefaultProvider: c.OCR.Provider,
		Replicate: ocr.ReplicateConfig{
			APIToken: c.OCR.ReplicateAPIToken,
		},
		Clarifai: ocr.ClarifaiConfig{
			PAT:     c.OCR.ClarifaiPAT,
			BaseURL: c.OCR.ClarifaiBaseURL,
		},
		GDocAI: ocr.GDocAIConfig{
			ProjectID:   c.OCR.GDocAI.ProjectID,
			Location:    c.OCR.GDocAI.Location,
			ProcessorID: c.OCR.GDocAI.ProcessorID,
		},
		Tesseract: ocr.TesseractConfig{
			Language: c.OCR.TesseractLanguage,
		},
	}
}

// ParaphraseConfig maps the settings into the paraphrase dispatcher's config.
func (c *Config) ParaphraseConfig() paraphrase.Config {
	return paraphrase.Config{
		DefaultProvider: c.LLM.Provider,
		Model:           c.LLM.Model,
		OpenAIAPIKey:    c.LLM.OpenAIAPIKey,
		AnthropicAPIKey: c.LLM.AnthropicAPIKey,
	}
}

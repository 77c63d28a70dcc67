package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"antigravity/internal/common/fsutil"
)

// Default values mirror the layout the backend expects on first run.
const (
	DefaultModelPath       = "G:/Jan/llamacpp/models/lmstudio-community/Qwen3-8B-GGUF/Qwen3-8B-Q4_K_M.gguf"
	DefaultMinPython       = "3.9"
	DefaultRequirements    = "backend/requirements.txt"
	DefaultLlamaCppPackage = "llama-cpp-python==0.2.90"
	DefaultExtraIndexURL   = "https://abetlen.github.io/llama-cpp-python/whl/cpu"
	DefaultVerifyImport    = "llama_cpp"
	DefaultServerURL       = "http://localhost:8000"
)

// DefaultDirectories are created under the project root.
var DefaultDirectories = []string{"backend", "frontend", "prompts"}

// Config holds the parameters of a setup run.
// Zero values mean "unspecified" and are replaced by WithDefaults.
// Unknown keys are ignored so the application's own config.yaml can be reused.
type Config struct {
	ModelPath       string   `json:"model_path" yaml:"model_path" toml:"model_path"`
	Python          string   `json:"python" yaml:"python" toml:"python"`
	MinPython       string   `json:"min_python" yaml:"min_python" toml:"min_python"`
	Venv            string   `json:"venv" yaml:"venv" toml:"venv"`
	Directories     []string `json:"directories" yaml:"directories" toml:"directories"`
	Requirements    string   `json:"requirements" yaml:"requirements" toml:"requirements"`
	LlamaCppPackage string   `json:"llama_cpp_package" yaml:"llama_cpp_package" toml:"llama_cpp_package"`
	ExtraIndexURL   string   `json:"extra_index_url" yaml:"extra_index_url" toml:"extra_index_url"`
	VerifyImport    string   `json:"verify_import" yaml:"verify_import" toml:"verify_import"`
	ServerURL       string   `json:"server_url" yaml:"server_url" toml:"server_url"`
}

// Default returns a fully populated configuration.
func Default() Config {
	return Config{
		ModelPath:       DefaultModelPath,
		MinPython:       DefaultMinPython,
		Directories:     append([]string(nil), DefaultDirectories...),
		Requirements:    DefaultRequirements,
		LlamaCppPackage: DefaultLlamaCppPackage,
		ExtraIndexURL:   DefaultExtraIndexURL,
		VerifyImport:    DefaultVerifyImport,
		ServerURL:       DefaultServerURL,
	}
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}

// WithDefaults fills unspecified fields. Python and Venv stay empty, meaning
// auto-detect and no virtualenv.
func (c Config) WithDefaults() Config {
	def := Default()
	if c.ModelPath == "" {
		c.ModelPath = def.ModelPath
	}
	if c.MinPython == "" {
		c.MinPython = def.MinPython
	}
	if len(c.Directories) == 0 {
		c.Directories = def.Directories
	}
	if c.Requirements == "" {
		c.Requirements = def.Requirements
	}
	if c.LlamaCppPackage == "" {
		c.LlamaCppPackage = def.LlamaCppPackage
	}
	if c.ExtraIndexURL == "" {
		c.ExtraIndexURL = def.ExtraIndexURL
	}
	if c.VerifyImport == "" {
		c.VerifyImport = def.VerifyImport
	}
	if c.ServerURL == "" {
		c.ServerURL = def.ServerURL
	}
	return c
}

// ApplyEnv overrides fields from AGSETUP_* environment variables.
func (c Config) ApplyEnv() Config {
	if v := os.Getenv("AGSETUP_MODEL_PATH"); v != "" {
		c.ModelPath = v
	}
	if v := os.Getenv("AGSETUP_PYTHON"); v != "" {
		c.Python = v
	}
	if v := os.Getenv("AGSETUP_VENV"); v != "" {
		c.Venv = v
	}
	return c
}

// Resolve expands '~' everywhere and anchors relative project paths
// (directories, requirements, venv) at root. The model path is left relative
// to the working directory.
func (c Config) Resolve(root string) (Config, error) {
	anchor := func(p string) (string, error) {
		if p == "" {
			return p, nil
		}
		exp, err := fsutil.ExpandHome(p)
		if err != nil {
			return "", err
		}
		if filepath.IsAbs(exp) {
			return filepath.Clean(exp), nil
		}
		return filepath.Join(root, exp), nil
	}
	var err error
	if c.ModelPath, err = fsutil.ExpandHome(c.ModelPath); err != nil {
		return c, err
	}
	dirs := make([]string, 0, len(c.Directories))
	for _, d := range c.Directories {
		p, err := anchor(d)
		if err != nil {
			return c, err
		}
		dirs = append(dirs, p)
	}
	c.Directories = dirs
	if c.Requirements, err = anchor(c.Requirements); err != nil {
		return c, err
	}
	if c.Venv, err = anchor(c.Venv); err != nil {
		return c, err
	}
	return c, nil
}

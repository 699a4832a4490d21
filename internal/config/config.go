package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	ServerPort string `yaml:"-"`
	AIAPIKey   string `yaml:"-"`
	AIAPIURL   string `yaml:"-"`
	AIModel    string `yaml:"-"`

	// ClampCorrectOnTypeChange makes the editor truncate a question's
	// correct set when it switches to single choice.
	ClampCorrectOnTypeChange bool `yaml:"-"`
}

type fileConfig struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	AI struct {
		APIKey string `yaml:"api_key"`
		APIURL string `yaml:"api_url"`
		Model  string `yaml:"model"`
	} `yaml:"ai"`
	Editor struct {
		ClampCorrectOnTypeChange bool `yaml:"clamp_correct_on_type_change"`
	} `yaml:"editor"`
}

// Load builds the config from an optional YAML file with environment
// variables taking precedence. A .env file is honored when present.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort: "8080",
		AIAPIURL:   "https://dashscope-intl.aliyuncs.com/compatible-mode/v1",
		AIModel:    "qwen-plus",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, err
			}
		} else {
			var fc fileConfig
			if err := yaml.Unmarshal(data, &fc); err != nil {
				return nil, err
			}
			if fc.Server.Port != "" {
				cfg.ServerPort = fc.Server.Port
			}
			if fc.AI.APIKey != "" {
				cfg.AIAPIKey = fc.AI.APIKey
			}
			if fc.AI.APIURL != "" {
				cfg.AIAPIURL = fc.AI.APIURL
			}
			if fc.AI.Model != "" {
				cfg.AIModel = fc.AI.Model
			}
			cfg.ClampCorrectOnTypeChange = fc.Editor.ClampCorrectOnTypeChange
		}
	}

	cfg.ServerPort = getEnv("SERVER_PORT", cfg.ServerPort)
	cfg.AIAPIKey = getEnv("AI_API_KEY", cfg.AIAPIKey)
	cfg.AIAPIURL = getEnv("AI_API_URL", cfg.AIAPIURL)
	cfg.AIModel = getEnv("AI_MODEL", cfg.AIModel)
	if v := os.Getenv("EDITOR_CLAMP_CORRECT"); v == "1" || v == "true" {
		cfg.ClampCorrectOnTypeChange = true
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

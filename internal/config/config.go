package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the service settings. File values come from an optional YAML
// config; environment variables (and .env) take precedence over the file.
type Config struct {
	Port      string `yaml:"port"`
	PostsDir  string `yaml:"posts_dir"`
	StaticDir string `yaml:"static_dir"`
	Watch     bool   `yaml:"watch"`
}

func defaults() Config {
	return Config{
		Port:      "8991",
		PostsDir:  "posts",
		StaticDir: "static",
	}
}

// Load reads path (if non-empty and present) and then applies environment
// overrides. A missing config file is fine; a malformed one is an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BLOG_SEARCH_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("BLOG_SEARCH_POSTS_DIR"); v != "" {
		cfg.PostsDir = v
	}
	if v := os.Getenv("BLOG_SEARCH_STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
	if v := os.Getenv("BLOG_SEARCH_WATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Watch = b
		}
	}
}

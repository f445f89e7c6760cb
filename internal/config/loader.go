package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/unalkalkan/txt2epub/pkg/types"
	"gopkg.in/yaml.v3"
)

// Load reads and parses the configuration file
// It also supports environment variable overrides with T2E_ prefix
func Load(configPath string) (*types.Config, error) {
	// Read config file
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var cfg types.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Apply environment variable overrides
	applyEnvOverrides(&cfg)

	// Validate configuration
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks if the configuration is valid and fills in defaults
func Validate(cfg *types.Config) error {
	// Validate storage adapter
	if cfg.Storage.Adapter != "local" && cfg.Storage.Adapter != "s3" {
		return fmt.Errorf("invalid storage adapter: %s (must be 'local' or 's3')", cfg.Storage.Adapter)
	}

	if cfg.Storage.Adapter == "local" {
		if cfg.Storage.Local.BasePath == "" {
			return fmt.Errorf("local storage base_path is required")
		}
		// Ensure base path is absolute
		if !filepath.IsAbs(cfg.Storage.Local.BasePath) {
			return fmt.Errorf("local storage base_path must be absolute: %s", cfg.Storage.Local.BasePath)
		}
	}

	if cfg.Storage.Adapter == "s3" {
		if cfg.Storage.S3.Bucket == "" {
			return fmt.Errorf("s3 bucket is required")
		}
		if cfg.Storage.S3.Region == "" {
			return fmt.Errorf("s3 region is required")
		}
	}

	// Path defaults
	if cfg.Paths.Input == "" {
		cfg.Paths.Input = "input"
	}
	if cfg.Paths.Output == "" {
		cfg.Paths.Output = "output"
	}
	if cfg.Paths.Fonts == "" {
		cfg.Paths.Fonts = "fonts"
	}

	// Book defaults
	if cfg.Book.Language == "" {
		cfg.Book.Language = "zh-CN"
	}
	if cfg.Book.DefaultAuthor == "" {
		cfg.Book.DefaultAuthor = "Unknown"
	}

	// Segmenter defaults
	if len(cfg.Segmenter.HeadingPatterns) == 0 {
		cfg.Segmenter.HeadingPatterns = DefaultHeadingPatterns()
	}
	if cfg.Segmenter.MaxTitleLength <= 0 {
		cfg.Segmenter.MaxTitleLength = 50
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides
// Environment variables should be prefixed with T2E_ (txt2epub)
func applyEnvOverrides(cfg *types.Config) {
	// Storage overrides
	if val := os.Getenv("T2E_STORAGE_ADAPTER"); val != "" {
		cfg.Storage.Adapter = val
	}
	if val := os.Getenv("T2E_STORAGE_LOCAL_BASE_PATH"); val != "" {
		cfg.Storage.Local.BasePath = val
	}
	if val := os.Getenv("T2E_STORAGE_S3_BUCKET"); val != "" {
		cfg.Storage.S3.Bucket = val
	}
	if val := os.Getenv("T2E_STORAGE_S3_REGION"); val != "" {
		cfg.Storage.S3.Region = val
	}
	if val := os.Getenv("T2E_STORAGE_S3_ENDPOINT"); val != "" {
		cfg.Storage.S3.Endpoint = val
	}
	if val := os.Getenv("T2E_STORAGE_S3_ACCESS_KEY_ID"); val != "" {
		cfg.Storage.S3.AccessKeyID = val
	}
	if val := os.Getenv("T2E_STORAGE_S3_SECRET_ACCESS_KEY"); val != "" {
		cfg.Storage.S3.SecretAccessKey = val
	}

	// Book overrides
	if val := os.Getenv("T2E_BOOK_LANGUAGE"); val != "" {
		cfg.Book.Language = val
	}
	if val := os.Getenv("T2E_BOOK_DEFAULT_AUTHOR"); val != "" {
		cfg.Book.DefaultAuthor = val
	}
}

// DefaultHeadingPatterns returns the built-in chapter-heading grammar.
// It recognizes the common Chinese web-fiction conventions (ordinal in
// Chinese numerals or digits followed by a volume/chapter/section noun)
// and the English "Chapter N" form. The set is a heuristic; callers can
// replace it wholesale via the segmenter config.
func DefaultHeadingPatterns() []string {
	return []string{
		`^第[0-9零一二三四五六七八九十百千万两]{1,12}[章节回卷部集]`,
		`^(?i:chapter)\s*[0-9]{1,4}`,
	}
}

// GetDefault returns a default configuration
func GetDefault() *types.Config {
	return &types.Config{
		Storage: types.StorageConfig{
			Adapter: "local",
			Local: types.LocalStorageOpts{
				BasePath: "/var/lib/txt2epub",
			},
		},
		Paths: types.PathsConfig{
			Input:  "input",
			Output: "output",
			Fonts:  "fonts",
		},
		Book: types.BookConfig{
			Language:      "zh-CN",
			DefaultAuthor: "Unknown",
		},
		Segmenter: types.SegmenterConfig{
			HeadingPatterns: DefaultHeadingPatterns(),
			MaxTitleLength:  50,
		},
	}
}

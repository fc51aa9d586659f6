package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-blogcheck/internal/posts"
)

var ErrPostsDirRequired = errors.New("blogcheck config: posts directory is required")
var ErrReferenceFileRequired = errors.New("blogcheck config: reference data file is required")
var ErrImagesDirRequired = errors.New("blogcheck config: images directory is required")
var ErrDescriptionLimitInvalid = errors.New("blogcheck config: description limit must be positive")
var ErrImageLimitInvalid = errors.New("blogcheck config: image limits must be positive")
var ErrPostFormatUnknown = errors.New("blogcheck config: default post format is invalid")
var ErrLoggingProviderUnknown = errors.New("blogcheck config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("blogcheck config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("blogcheck config: logging format is invalid")

// Config is the runtime configuration for every blogcheck command. The
// defaults point at the site's fixed layout, so the CLI works with no flags.
type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Description DescriptionConfig `yaml:"description"`
	Images      ImagesConfig      `yaml:"images"`
	Posts       PostsConfig       `yaml:"posts"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// PathsConfig locates the site sources relative to the working directory.
type PathsConfig struct {
	PostsDir      string `yaml:"posts_dir"`
	ReferenceFile string `yaml:"reference_file"`
	ImagesDir     string `yaml:"images_dir"`
	BlogImagesDir string `yaml:"blog_images_dir"`
}

// DescriptionConfig bounds the front matter description.
type DescriptionConfig struct {
	MaxLength     int `yaml:"max_length"`
	ExcerptLength int `yaml:"excerpt_length"`
}

// ImagesConfig mirrors the limits enforced on blog assets.
type ImagesConfig struct {
	MaxFileSize    int64 `yaml:"max_file_size"`
	GIFMaxFileSize int64 `yaml:"gif_max_file_size"`
	MaxWidth       int   `yaml:"max_width"`
}

// PostsConfig drives post scaffolding.
type PostsConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `yaml:"provider"`
	Level     string   `yaml:"level"`
	Format    string   `yaml:"format"`
	AddSource bool     `yaml:"add_source"`
	Focus     []string `yaml:"focus"`
}

// DefaultConfig returns the hard-coded site layout.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			PostsDir:      "_source/_posts",
			ReferenceFile: "_source/_data/reference.json",
			ImagesDir:     "_source/_assets/img",
			BlogImagesDir: "_source/_assets/img/blog",
		},
		Description: DescriptionConfig{
			MaxLength:     120,
			ExcerptLength: 120,
		},
		Images: ImagesConfig{
			MaxFileSize:    250_000,
			GIFMaxFileSize: 1_000_000,
			MaxWidth:       1200,
		},
		Posts: PostsConfig{
			DefaultFormat: "md",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "warn",
		},
	}
}

// LoadFile overlays the YAML document at path onto the defaults. A blank path
// returns the defaults unchanged.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("blogcheck config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("blogcheck config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Paths.PostsDir) == "" {
		return ErrPostsDirRequired
	}
	if strings.TrimSpace(cfg.Paths.ReferenceFile) == "" {
		return ErrReferenceFileRequired
	}
	if strings.TrimSpace(cfg.Paths.ImagesDir) == "" {
		return ErrImagesDirRequired
	}
	if cfg.Description.MaxLength <= 0 {
		return ErrDescriptionLimitInvalid
	}
	if cfg.Images.MaxFileSize <= 0 {
		return fmt.Errorf("%w: max_file_size", ErrImageLimitInvalid)
	}
	if cfg.Images.GIFMaxFileSize <= 0 {
		return fmt.Errorf("%w: gif_max_file_size", ErrImageLimitInvalid)
	}
	if cfg.Images.MaxWidth <= 0 {
		return fmt.Errorf("%w: max_width", ErrImageLimitInvalid)
	}
	if format := strings.TrimSpace(cfg.Posts.DefaultFormat); format != "" && !isSupportedPostFormat(format) {
		return fmt.Errorf("%w: %s", ErrPostFormatUnknown, format)
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if provider != "" && !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}

func isSupportedPostFormat(format string) bool {
	return slices.Contains(posts.Formats(), strings.ToLower(format))
}

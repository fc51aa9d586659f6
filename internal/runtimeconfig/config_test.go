package runtimeconfig_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-blogcheck/internal/posts"
	"github.com/goliatone/go-blogcheck/internal/runtimeconfig"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
	if cfg.Paths.PostsDir != "_source/_posts" {
		t.Fatalf("expected hard-coded posts dir, got %q", cfg.Paths.PostsDir)
	}
	if cfg.Description.MaxLength != 120 {
		t.Fatalf("expected description limit 120, got %d", cfg.Description.MaxLength)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*runtimeconfig.Config)
		want   error
	}{
		{"posts dir", func(c *runtimeconfig.Config) { c.Paths.PostsDir = " " }, runtimeconfig.ErrPostsDirRequired},
		{"reference file", func(c *runtimeconfig.Config) { c.Paths.ReferenceFile = "" }, runtimeconfig.ErrReferenceFileRequired},
		{"images dir", func(c *runtimeconfig.Config) { c.Paths.ImagesDir = "" }, runtimeconfig.ErrImagesDirRequired},
		{"description limit", func(c *runtimeconfig.Config) { c.Description.MaxLength = 0 }, runtimeconfig.ErrDescriptionLimitInvalid},
		{"image width", func(c *runtimeconfig.Config) { c.Images.MaxWidth = -1 }, runtimeconfig.ErrImageLimitInvalid},
		{"post format", func(c *runtimeconfig.Config) { c.Posts.DefaultFormat = "html" }, runtimeconfig.ErrPostFormatUnknown},
		{"logging provider", func(c *runtimeconfig.Config) { c.Logging.Provider = "syslog" }, runtimeconfig.ErrLoggingProviderUnknown},
		{"logging level", func(c *runtimeconfig.Config) { c.Logging.Level = "loud" }, runtimeconfig.ErrLoggingLevelInvalid},
		{"logging format", func(c *runtimeconfig.Config) {
			c.Logging.Provider = "gologger"
			c.Logging.Format = "xml"
		}, runtimeconfig.ErrLoggingFormatInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runtimeconfig.DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestConfigValidateAcceptsEveryPostFormat(t *testing.T) {
	for _, format := range append(posts.Formats(), "ADOC") {
		cfg := runtimeconfig.DefaultConfig()
		cfg.Posts.DefaultFormat = format
		if err := cfg.Validate(); err != nil {
			t.Fatalf("format %q: unexpected error %v", format, err)
		}
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blogcheck.yaml")
	data := []byte("paths:\n  posts_dir: content/posts\ndescription:\n  max_length: 160\nlogging:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := runtimeconfig.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Paths.PostsDir != "content/posts" {
		t.Fatalf("expected overridden posts dir, got %q", cfg.Paths.PostsDir)
	}
	if cfg.Paths.ReferenceFile != "_source/_data/reference.json" {
		t.Fatalf("expected default reference file to survive, got %q", cfg.Paths.ReferenceFile)
	}
	if cfg.Description.MaxLength != 160 || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected overlay result: %+v", cfg)
	}
}

func TestLoadFileBlankPathReturnsDefaults(t *testing.T) {
	cfg, err := runtimeconfig.LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Paths.PostsDir != runtimeconfig.DefaultConfig().Paths.PostsDir {
		t.Fatalf("expected defaults, got %+v", cfg.Paths)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := runtimeconfig.LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("description:\n  max_length: 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := runtimeconfig.LoadFile(path); !errors.Is(err, runtimeconfig.ErrDescriptionLimitInvalid) {
		t.Fatalf("expected ErrDescriptionLimitInvalid, got %v", err)
	}
}

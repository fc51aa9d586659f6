package blogcheck

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-blogcheck/internal/commands"
	frontmattercmd "github.com/goliatone/go-blogcheck/internal/commands/frontmatter"
	imagescmd "github.com/goliatone/go-blogcheck/internal/commands/images"
	postscmd "github.com/goliatone/go-blogcheck/internal/commands/posts"
	"github.com/goliatone/go-blogcheck/internal/frontmatter"
	"github.com/goliatone/go-blogcheck/internal/images"
	"github.com/goliatone/go-blogcheck/internal/logging"
	"github.com/goliatone/go-blogcheck/internal/logging/console"
	"github.com/goliatone/go-blogcheck/internal/logging/gologger"
	"github.com/goliatone/go-blogcheck/internal/posts"
	"github.com/goliatone/go-blogcheck/pkg/interfaces"
	"github.com/google/uuid"
)

// FrontMatterHooks exports the callbacks fired during front matter validation.
type FrontMatterHooks = frontmattercmd.Hooks

// FrontMatterReport exports the summary of a passing front matter run.
type FrontMatterReport = frontmatter.Report

// FrontMatterWarning exports a non-fatal description finding.
type FrontMatterWarning = frontmatter.Warning

// Violation exports the fatal allow-list or tag format failure.
type Violation = frontmatter.Violation

// ImageHooks exports the callbacks fired during image validation.
type ImageHooks = imagescmd.Hooks

// ImageFinding exports a single image problem.
type ImageFinding = images.Finding

// ImageSeverityIssue marks image findings that fail the run.
const ImageSeverityIssue = images.SeverityIssue

// ImageReport exports the summary of an image run.
type ImageReport = images.Report

// CreatePostResult exports the outcome of CreatePost.
type CreatePostResult = posts.CreateResult

// StampPostResult exports the outcome of StampPost.
type StampPostResult = posts.StampResult

// Option customises a Module.
type Option func(*Module)

// WithLoggerProvider overrides the provider built from Config.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.provider = provider
	}
}

// WithLogWriter redirects console provider output. Ignored for gologger.
func WithLogWriter(w io.Writer) Option {
	return func(m *Module) {
		m.logWriter = w
	}
}

// Module is the top level blogcheck runtime facade.
type Module struct {
	cfg       Config
	provider  interfaces.LoggerProvider
	logWriter io.Writer
}

// New validates cfg and builds the logger provider it names.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &Module{cfg: cfg}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	if m.provider == nil {
		provider, err := newLoggerProvider(cfg.Logging, m.logWriter)
		if err != nil {
			return nil, err
		}
		m.provider = provider
	}
	return m, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// LoggerProvider exposes the provider used by every command.
func (m *Module) LoggerProvider() interfaces.LoggerProvider {
	return m.provider
}

// WithRunID tags ctx with a fresh run identifier unless it already has one.
func WithRunID(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if logging.RunID(ctx) != "" {
		return ctx
	}
	return logging.ContextWithFields(ctx, map[string]any{logging.FieldRunID: uuid.NewString()})
}

// ValidateFrontMatter checks every post against the reference allow-lists.
// The first fatal problem aborts the run; warnings are delivered through hooks.
func (m *Module) ValidateFrontMatter(ctx context.Context, hooks FrontMatterHooks) error {
	handler := frontmattercmd.NewValidateDirectoryHandler(logging.FrontMatterLogger(m.provider), hooks)
	return handler.Execute(WithRunID(ctx), frontmattercmd.ValidateDirectoryCommand{
		Directory:        m.cfg.Paths.PostsDir,
		ReferenceFile:    m.cfg.Paths.ReferenceFile,
		DescriptionLimit: m.cfg.Description.MaxLength,
		ExcerptLength:    m.cfg.Description.ExcerptLength,
	})
}

// ValidateImages checks every image below the configured images directory.
func (m *Module) ValidateImages(ctx context.Context, hooks ImageHooks) error {
	handler := imagescmd.NewValidateImagesHandler(logging.ImagesLogger(m.provider), hooks)
	return handler.Execute(WithRunID(ctx), imagescmd.ValidateImagesCommand{
		Directory:      m.cfg.Paths.ImagesDir,
		MaxFileSize:    m.cfg.Images.MaxFileSize,
		GIFMaxFileSize: m.cfg.Images.GIFMaxFileSize,
		MaxWidth:       m.cfg.Images.MaxWidth,
	})
}

// CreatePost scaffolds a new post. Blank format uses Posts.DefaultFormat and
// blank date means today.
func (m *Module) CreatePost(ctx context.Context, name, format, date string) (*CreatePostResult, error) {
	if strings.TrimSpace(format) == "" {
		format = m.cfg.Posts.DefaultFormat
	}
	var result *CreatePostResult
	handler := postscmd.NewCreatePostHandler(m.scaffolder(), commands.CommandLogger(m.provider, "posts"), func(r *posts.CreateResult) {
		result = r
	})
	if err := handler.Execute(WithRunID(ctx), postscmd.CreatePostCommand{
		Name:   name,
		Format: strings.ToLower(strings.TrimSpace(format)),
		Date:   strings.TrimSpace(date),
	}); err != nil {
		return nil, err
	}
	return result, nil
}

// StampPost re-dates the most recent post. Blank date means today.
func (m *Module) StampPost(ctx context.Context, date string) (*StampPostResult, error) {
	var result *StampPostResult
	handler := postscmd.NewStampPostHandler(m.scaffolder(), commands.CommandLogger(m.provider, "posts"), func(r *posts.StampResult) {
		result = r
	})
	if err := handler.Execute(WithRunID(ctx), postscmd.StampPostCommand{Date: strings.TrimSpace(date)}); err != nil {
		return nil, err
	}
	return result, nil
}

func (m *Module) scaffolder() *posts.Scaffolder {
	return posts.NewScaffolder(posts.Config{
		PostsDir:      m.cfg.Paths.PostsDir,
		BlogImagesDir: m.cfg.Paths.BlogImagesDir,
		Logger:        logging.PostsLogger(m.provider),
	})
}

func newLoggerProvider(cfg LoggingConfig, w io.Writer) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
		if err != nil {
			return nil, fmt.Errorf("blogcheck: build gologger provider: %w", err)
		}
		return provider, nil
	case "", "console":
		opts := console.Options{Writer: w}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}
}

package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-blogcheck/pkg/interfaces"
)

const (
	rootModule        = "blogcheck"
	frontMatterModule = "blogcheck.frontmatter"
	imagesModule      = "blogcheck.images"
	postsModule       = "blogcheck.posts"
)

// Field names shared across modules.
const (
	FieldRunID = "run_id"
	FieldPath  = "path"
	FieldField = "field"
)

// ModuleLogger returns a logger scoped to module, falling back to NoOp when
// provider is nil. The module name is attached as a structured field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// FrontMatterLogger returns the logger namespace used by front matter validation.
func FrontMatterLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, frontMatterModule)
}

// ImagesLogger returns the logger namespace used by image validation.
func ImagesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, imagesModule)
}

// PostsLogger returns the logger namespace used by post scaffolding.
func PostsLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, postsModule)
}

// WithDocument enriches logger with the document path. Blank paths are ignored.
func WithDocument(logger interfaces.Logger, path string) interfaces.Logger {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return logger
	}
	return WithFields(logger, map[string]any{FieldPath: trimmed})
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}

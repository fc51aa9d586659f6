package frontmatter

import (
	"context"
	"errors"

	"github.com/goliatone/go-blogcheck/internal/logging"
	"github.com/goliatone/go-blogcheck/internal/reference"
	"github.com/goliatone/go-blogcheck/pkg/interfaces"
)

// Options tunes a Validator.
type Options struct {
	// DescriptionLimit is the longest description that passes without warning.
	DescriptionLimit int
	// ExcerptLength bounds the description suggested for documents without one.
	ExcerptLength int
	// OnWarning receives each warning as soon as it is found.
	OnWarning func(Warning)
	Logger    interfaces.Logger
}

// Report summarises a successful run.
type Report struct {
	Documents  []string
	Warnings   []Warning
	Categories []string
}

// Validator applies the front matter rules to the documents of a directory.
type Validator struct {
	ref    *reference.Data
	opts   Options
	logger interfaces.Logger
}

// NewValidator binds a validator to reference data loaded once by the caller.
func NewValidator(ref *reference.Data, opts Options) *Validator {
	if opts.DescriptionLimit <= 0 {
		opts.DescriptionLimit = DefaultDescriptionLimit
	}
	if opts.ExcerptLength <= 0 {
		opts.ExcerptLength = opts.DescriptionLimit
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Validator{ref: ref, opts: opts, logger: logger}
}

// Run validates every document in dir. See RunLoader.
func (v *Validator) Run(ctx context.Context, dir string) (*Report, error) {
	return v.RunLoader(ctx, DirLoader(dir))
}

// RunLoader validates the documents listed by loader in order and returns the
// first fatal error. Warnings are collected and never fail the run.
func (v *Validator) RunLoader(ctx context.Context, loader *Loader) (*Report, error) {
	logger := v.logger.WithContext(ctx)

	names, err := loader.List()
	if err != nil {
		return nil, err
	}

	report := &Report{Documents: make([]string, 0, len(names))}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		path := loader.Path(name)
		source, err := loader.Read(name)
		if err != nil {
			return nil, err
		}
		doc, err := ParseDocument(path, source)
		if err != nil {
			logging.WithDocument(logger, path).Debug("frontmatter.document.parse_failed", "error", err)
			return nil, err
		}

		warning, err := v.ValidateDocument(doc)
		if err != nil {
			args := []any{"error", err}
			var violation *Violation
			if errors.As(err, &violation) {
				args = append(args, logging.FieldField, violation.Field)
			}
			logging.WithDocument(logger, path).Debug("frontmatter.document.invalid", args...)
			return nil, err
		}
		if warning != nil {
			report.Warnings = append(report.Warnings, *warning)
			if v.opts.OnWarning != nil {
				v.opts.OnWarning(*warning)
			}
		}
		report.Documents = append(report.Documents, path)
		logging.WithDocument(logger, path).Debug("frontmatter.document.validated")
	}

	report.Categories = append([]string(nil), Categories...)
	logger.Info("frontmatter.run.completed",
		"documents", len(report.Documents),
		"warnings", len(report.Warnings),
	)
	return report, nil
}

// ValidateDocument applies the communities, type, by and tags checks in that
// order and returns the first violation. When all pass, the description check
// runs and its warning, if any, is returned.
func (v *Validator) ValidateDocument(doc *Document) (*Warning, error) {
	if err := ValidateCommunities(doc, v.ref); err != nil {
		return nil, err
	}
	if err := ValidateType(doc, v.ref); err != nil {
		return nil, err
	}
	if err := ValidateBy(doc, v.ref); err != nil {
		return nil, err
	}
	if err := ValidateTags(doc); err != nil {
		return nil, err
	}

	warning := CheckDescription(doc, v.opts.DescriptionLimit)
	if warning != nil && warning.Kind == WarningMissingDescription {
		warning.Suggestion = doc.Excerpt(v.opts.ExcerptLength)
	}
	return warning, nil
}

// Run loads the reference data at referencePath once and validates dir.
func Run(ctx context.Context, referencePath, dir string, opts Options) (*Report, error) {
	ref, err := reference.Load(referencePath)
	if err != nil {
		return nil, err
	}
	return NewValidator(ref, opts).Run(ctx, dir)
}

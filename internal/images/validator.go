// Package images checks blog image assets for file size, width and format.
package images

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-blogcheck/internal/logging"
	"github.com/goliatone/go-blogcheck/pkg/interfaces"
)

// ErrDirectoryRead matches failures to walk the images directory.
var ErrDirectoryRead = errors.New("images: directory read failed")

// Limits bounds image assets. Sizes are in bytes, width in pixels.
type Limits struct {
	MaxFileSize    int64
	GIFMaxFileSize int64
	MaxWidth       int
}

// DefaultLimits matches the blog layout: 250kB stills, 1MB GIFs, 1200px wide.
func DefaultLimits() Limits {
	return Limits{
		MaxFileSize:    250_000,
		GIFMaxFileSize: 1_000_000,
		MaxWidth:       1200,
	}
}

// Severity separates findings that fail the run from advisory ones.
type Severity string

const (
	SeverityIssue   Severity = "issue"
	SeverityWarning Severity = "warning"
)

// Finding is a single problem with one image.
type Finding struct {
	Path     string
	Severity Severity
	Message  string
}

func (f Finding) String() string { return f.Message }

// Report collects every finding of a run. Unlike front matter validation,
// every file is checked before the outcome is decided.
type Report struct {
	Checked  int
	Issues   []Finding
	Warnings []Finding
}

// Valid reports whether the run found no issues.
func (r *Report) Valid() bool {
	return r != nil && len(r.Issues) == 0
}

// Options tunes a Validator.
type Options struct {
	Limits    Limits
	OnFinding func(Finding)
	Logger    interfaces.Logger
}

// Validator walks an image directory recursively.
type Validator struct {
	limits    Limits
	onFinding func(Finding)
	logger    interfaces.Logger
}

// NewValidator constructs a Validator. Zero limits fall back to DefaultLimits.
func NewValidator(opts Options) *Validator {
	limits := opts.Limits
	defaults := DefaultLimits()
	if limits.MaxFileSize <= 0 {
		limits.MaxFileSize = defaults.MaxFileSize
	}
	if limits.GIFMaxFileSize <= 0 {
		limits.GIFMaxFileSize = defaults.GIFMaxFileSize
	}
	if limits.MaxWidth <= 0 {
		limits.MaxWidth = defaults.MaxWidth
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Validator{limits: limits, onFinding: opts.OnFinding, logger: logger}
}

// Run validates every image below dir.
func (v *Validator) Run(ctx context.Context, dir string) (*Report, error) {
	return v.RunFS(ctx, os.DirFS(dir), dir)
}

// RunFS validates every image in filesystem. label prefixes reported paths.
func (v *Validator) RunFS(ctx context.Context, filesystem fs.FS, label string) (*Report, error) {
	logger := v.logger.WithContext(ctx)
	report := &Report{}

	err := fs.WalkDir(filesystem, ".", func(name string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		display := filepath.Join(label, filepath.FromSlash(name))
		switch strings.ToLower(path.Ext(name)) {
		case ".jpg", ".jpeg", ".png":
			report.Checked++
			v.checkStill(filesystem, name, display, d, report)
		case ".gif":
			report.Checked++
			if size := fileSize(d); size > v.limits.GIFMaxFileSize {
				v.record(report, Finding{Path: display, Severity: SeverityWarning, Message: tooLarge(display, size)})
			}
		}
		return nil
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrDirectoryRead, label, err)
	}

	logger.Info("images.run.completed",
		"checked", report.Checked,
		"issues", len(report.Issues),
		"warnings", len(report.Warnings),
	)
	return report, nil
}

func (v *Validator) checkStill(filesystem fs.FS, name, display string, d fs.DirEntry, report *Report) {
	if size := fileSize(d); size > v.limits.MaxFileSize {
		v.record(report, Finding{Path: display, Severity: SeverityIssue, Message: tooLarge(display, size)})
	}

	cfg, format, err := decodeConfig(filesystem, name)
	if err != nil {
		v.record(report, Finding{Path: display, Severity: SeverityWarning, Message: fmt.Sprintf("%s: Error %v", display, err)})
		return
	}
	if format == "png" {
		v.record(report, Finding{Path: display, Severity: SeverityWarning,
			Message: fmt.Sprintf("%s is of PNG format. Consider using JPEG or WebP for optimal performance", display)})
	}
	if cfg.Width > v.limits.MaxWidth {
		v.record(report, Finding{Path: display, Severity: SeverityWarning,
			Message: fmt.Sprintf("%s is wider than blog contents maxWidth (%dpx)", display, cfg.Width)})
	}
}

func (v *Validator) record(report *Report, finding Finding) {
	if finding.Severity == SeverityIssue {
		report.Issues = append(report.Issues, finding)
	} else {
		report.Warnings = append(report.Warnings, finding)
	}
	logging.WithDocument(v.logger, finding.Path).Debug("images.finding", "severity", string(finding.Severity))
	if v.onFinding != nil {
		v.onFinding(finding)
	}
}

func decodeConfig(filesystem fs.FS, name string) (image.Config, string, error) {
	f, err := filesystem.Open(name)
	if err != nil {
		return image.Config{}, "", err
	}
	defer f.Close()
	return image.DecodeConfig(f)
}

func fileSize(d fs.DirEntry) int64 {
	info, err := d.Info()
	if err != nil {
		return 0
	}
	return info.Size()
}

func tooLarge(display string, size int64) string {
	return fmt.Sprintf("%s is too large (%.2fMB)", display, float64(size)/1_000_000)
}

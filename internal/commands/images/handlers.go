package imagescmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-blogcheck/internal/commands"
	"github.com/goliatone/go-blogcheck/internal/images"
	"github.com/goliatone/go-blogcheck/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	validateOperation = "images.validate_directory"
	imageIssuesCode   = "IMAGES_INVALID"
)

// ErrImageIssues is returned when at least one image breaks a hard limit.
var ErrImageIssues = errors.New("images: validation found issues")

var _ command.Commander[ValidateImagesCommand] = (*ValidateImagesHandler)(nil)

// Hooks receive run output as it happens.
type Hooks struct {
	OnFinding func(images.Finding)
	OnReport  func(*images.Report)
}

// ValidateImagesHandler runs image validation through the shared command handler.
type ValidateImagesHandler struct {
	inner *commands.Handler[ValidateImagesCommand]
}

// NewValidateImagesHandler creates the handler.
func NewValidateImagesHandler(logger interfaces.Logger, hooks Hooks, opts ...commands.HandlerOption[ValidateImagesCommand]) *ValidateImagesHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ValidateImagesCommand) error {
		validator := images.NewValidator(images.Options{
			Limits: images.Limits{
				MaxFileSize:    msg.MaxFileSize,
				GIFMaxFileSize: msg.GIFMaxFileSize,
				MaxWidth:       msg.MaxWidth,
			},
			OnFinding: hooks.OnFinding,
			Logger:    baseLogger,
		})
		report, err := validator.Run(ctx, msg.Directory)
		if err != nil {
			return err
		}
		if hooks.OnReport != nil {
			hooks.OnReport(report)
		}
		if !report.Valid() {
			return commands.RejectInput(
				fmt.Errorf("%w: %d of %d images", ErrImageIssues, len(report.Issues), report.Checked),
				"image validation failed", imageIssuesCode,
			)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ValidateImagesCommand]{
		commands.WithLogger[ValidateImagesCommand](baseLogger),
		commands.WithOperation[ValidateImagesCommand](validateOperation),
		commands.WithMessageFields(func(msg ValidateImagesCommand) map[string]any {
			return map[string]any{"directory": msg.Directory}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ValidateImagesCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ValidateImagesHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ValidateImagesCommand].
func (h *ValidateImagesHandler) Execute(ctx context.Context, msg ValidateImagesCommand) error {
	return h.inner.Execute(ctx, msg)
}

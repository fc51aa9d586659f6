package frontmattercmd

import (
	"context"
	"errors"

	"github.com/goliatone/go-blogcheck/internal/commands"
	"github.com/goliatone/go-blogcheck/internal/frontmatter"
	"github.com/goliatone/go-blogcheck/internal/reference"
	"github.com/goliatone/go-blogcheck/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	validateOperation = "frontmatter.validate_directory"

	violationCode  = "FRONTMATTER_VIOLATION"
	parseErrorCode = "FRONTMATTER_PARSE_FAILED"
)

var _ command.Commander[ValidateDirectoryCommand] = (*ValidateDirectoryHandler)(nil)

// Hooks receive run output as it happens. All fields are optional.
type Hooks struct {
	// OnWarning is called for each description warning, before the run ends.
	OnWarning func(frontmatter.Warning)
	// OnReport is called once the whole directory passed.
	OnReport func(*frontmatter.Report)
	// OnFailure receives the unwrapped error that aborted the run.
	OnFailure func(error)
}

// ValidateDirectoryHandler runs front matter validation through the shared command handler.
type ValidateDirectoryHandler struct {
	inner *commands.Handler[ValidateDirectoryCommand]
}

// NewValidateDirectoryHandler creates the handler. Reference data is loaded
// once per execution.
func NewValidateDirectoryHandler(logger interfaces.Logger, hooks Hooks, opts ...commands.HandlerOption[ValidateDirectoryCommand]) *ValidateDirectoryHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg ValidateDirectoryCommand) error {
		report, err := run(ctx, msg, hooks.OnWarning, baseLogger)
		if err != nil {
			if hooks.OnFailure != nil {
				hooks.OnFailure(err)
			}
			return classify(err)
		}
		if hooks.OnReport != nil {
			hooks.OnReport(report)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ValidateDirectoryCommand]{
		commands.WithLogger[ValidateDirectoryCommand](baseLogger),
		commands.WithOperation[ValidateDirectoryCommand](validateOperation),
		commands.WithMessageFields(func(msg ValidateDirectoryCommand) map[string]any {
			return map[string]any{
				"directory":      msg.Directory,
				"reference_file": msg.ReferenceFile,
			}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ValidateDirectoryCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ValidateDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ValidateDirectoryCommand].
func (h *ValidateDirectoryHandler) Execute(ctx context.Context, msg ValidateDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}

func run(ctx context.Context, msg ValidateDirectoryCommand, onWarning func(frontmatter.Warning), logger interfaces.Logger) (*frontmatter.Report, error) {
	ref, err := reference.Load(msg.ReferenceFile)
	if err != nil {
		return nil, err
	}
	validator := frontmatter.NewValidator(ref, frontmatter.Options{
		DescriptionLimit: msg.DescriptionLimit,
		ExcerptLength:    msg.ExcerptLength,
		OnWarning:        onWarning,
		Logger:           logger,
	})
	return validator.Run(ctx, msg.Directory)
}

func classify(err error) error {
	switch {
	case errors.Is(err, frontmatter.ErrViolation):
		return commands.RejectInput(err, "front matter validation failed", violationCode)
	case errors.Is(err, frontmatter.ErrParse):
		return commands.RejectInput(err, "front matter could not be parsed", parseErrorCode)
	default:
		return err
	}
}

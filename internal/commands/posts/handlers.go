package postscmd

import (
	"context"

	"github.com/goliatone/go-blogcheck/internal/commands"
	"github.com/goliatone/go-blogcheck/internal/posts"
	"github.com/goliatone/go-blogcheck/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	createOperation = "posts.create"
	stampOperation  = "posts.stamp"
)

var (
	_ command.Commander[CreatePostCommand] = (*CreatePostHandler)(nil)
	_ command.Commander[StampPostCommand]  = (*StampPostHandler)(nil)
)

// Scaffolder is the subset of posts.Scaffolder the handlers need.
type Scaffolder interface {
	Create(ctx context.Context, name, format, date string) (*posts.CreateResult, error)
	Stamp(ctx context.Context, date string) (*posts.StampResult, error)
}

// CreatePostHandler scaffolds posts via the shared command handler.
type CreatePostHandler struct {
	inner *commands.Handler[CreatePostCommand]
}

// NewCreatePostHandler creates the handler. onResult may be nil.
func NewCreatePostHandler(scaffolder Scaffolder, logger interfaces.Logger, onResult func(*posts.CreateResult), opts ...commands.HandlerOption[CreatePostCommand]) *CreatePostHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg CreatePostCommand) error {
		result, err := scaffolder.Create(ctx, msg.Name, msg.Format, msg.Date)
		if err != nil {
			return err
		}
		if onResult != nil {
			onResult(result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[CreatePostCommand]{
		commands.WithLogger[CreatePostCommand](baseLogger),
		commands.WithOperation[CreatePostCommand](createOperation),
		commands.WithMessageFields(func(msg CreatePostCommand) map[string]any {
			return map[string]any{"name": msg.Name, "format": msg.Format}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[CreatePostCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CreatePostHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[CreatePostCommand].
func (h *CreatePostHandler) Execute(ctx context.Context, msg CreatePostCommand) error {
	return h.inner.Execute(ctx, msg)
}

// StampPostHandler re-dates the latest post via the shared command handler.
type StampPostHandler struct {
	inner *commands.Handler[StampPostCommand]
}

// NewStampPostHandler creates the handler. onResult may be nil.
func NewStampPostHandler(scaffolder Scaffolder, logger interfaces.Logger, onResult func(*posts.StampResult), opts ...commands.HandlerOption[StampPostCommand]) *StampPostHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg StampPostCommand) error {
		result, err := scaffolder.Stamp(ctx, msg.Date)
		if err != nil {
			return err
		}
		if onResult != nil {
			onResult(result)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[StampPostCommand]{
		commands.WithLogger[StampPostCommand](baseLogger),
		commands.WithOperation[StampPostCommand](stampOperation),
		commands.WithTelemetry(commands.DefaultTelemetry[StampPostCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &StampPostHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[StampPostCommand].
func (h *StampPostHandler) Execute(ctx context.Context, msg StampPostCommand) error {
	return h.inner.Execute(ctx, msg)
}

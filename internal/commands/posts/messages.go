package postscmd

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blogcheck/internal/posts"
)

const (
	createPostMessageType = "blogcheck.posts.create"
	stampPostMessageType  = "blogcheck.posts.stamp"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

func formatRule() validation.Rule {
	formats := posts.Formats()
	allowed := make([]any, len(formats))
	for i, format := range formats {
		allowed[i] = format
	}
	return validation.In(allowed...).ErrorObject(validation.NewError(
		"blogcheck.posts.create.format_invalid",
		"format must be one of "+strings.Join(formats, ", "),
	))
}

// CreatePostCommand scaffolds a new post from the default template.
type CreatePostCommand struct {
	Name string `json:"name"`
	// Format is one of posts.Formats(). Blank means md.
	Format string `json:"format,omitempty"`
	// Date is YYYY-MM-DD. Blank means today.
	Date string `json:"date,omitempty"`
}

// Type implements command.Message.
func (CreatePostCommand) Type() string { return createPostMessageType }

// Validate checks the name is present and the optional fields are well formed.
func (cmd CreatePostCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Name, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blogcheck.posts.create.name_required", "post name is required")
			}
			return nil
		})),
		validation.Field(&cmd.Format, formatRule()),
		validation.Field(&cmd.Date, validation.Match(datePattern).
			ErrorObject(validation.NewError("blogcheck.posts.create.date_invalid", "date must be YYYY-MM-DD"))),
	)
}

// StampPostCommand re-dates the most recent post.
type StampPostCommand struct {
	// Date is YYYY-MM-DD. Blank means today.
	Date string `json:"date,omitempty"`
}

// Type implements command.Message.
func (StampPostCommand) Type() string { return stampPostMessageType }

// Validate checks the optional date.
func (cmd StampPostCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Date, validation.Match(datePattern).
			ErrorObject(validation.NewError("blogcheck.posts.stamp.date_invalid", "date must be YYYY-MM-DD"))),
	)
}

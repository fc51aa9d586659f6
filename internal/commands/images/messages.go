package imagescmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const validateImagesMessageType = "blogcheck.images.validate_directory"

// ValidateImagesCommand checks every image below Directory. Zero limits use
// the images package defaults.
type ValidateImagesCommand struct {
	Directory      string `json:"directory"`
	MaxFileSize    int64  `json:"max_file_size,omitempty"`
	GIFMaxFileSize int64  `json:"gif_max_file_size,omitempty"`
	MaxWidth       int    `json:"max_width,omitempty"`
}

// Type implements command.Message.
func (ValidateImagesCommand) Type() string { return validateImagesMessageType }

// Validate ensures the directory is present and limits are not negative.
func (cmd ValidateImagesCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("blogcheck.images.validate_directory.directory_required", "directory is required")
			}
			return nil
		})),
		validation.Field(&cmd.MaxFileSize, validation.Min(int64(0))),
		validation.Field(&cmd.GIFMaxFileSize, validation.Min(int64(0))),
		validation.Field(&cmd.MaxWidth, validation.Min(0)),
	)
}

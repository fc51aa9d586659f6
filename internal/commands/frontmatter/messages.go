package frontmattercmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const validateDirectoryMessageType = "blogcheck.frontmatter.validate_directory"

// ValidateDirectoryCommand validates the front matter of every post in
// Directory against the allow-lists stored in ReferenceFile.
type ValidateDirectoryCommand struct {
	// Directory holds the posts, read non-recursively.
	Directory string `json:"directory"`
	// ReferenceFile is the JSON document with the communities, types and bys allow-lists.
	ReferenceFile string `json:"reference_file"`
	// DescriptionLimit overrides the description length warning threshold.
	DescriptionLimit int `json:"description_limit,omitempty"`
	// ExcerptLength bounds suggested descriptions for posts missing one.
	ExcerptLength int `json:"excerpt_length,omitempty"`
}

// Type implements command.Message.
func (ValidateDirectoryCommand) Type() string { return validateDirectoryMessageType }

// Validate ensures both paths are present before handlers execute.
func (cmd ValidateDirectoryCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(notBlank(
			"blogcheck.frontmatter.validate_directory.directory_required", "directory is required",
		))),
		validation.Field(&cmd.ReferenceFile, validation.Required, validation.By(notBlank(
			"blogcheck.frontmatter.validate_directory.reference_required", "reference file is required",
		))),
		validation.Field(&cmd.DescriptionLimit, validation.Min(0)),
		validation.Field(&cmd.ExcerptLength, validation.Min(0)),
	)
}

func notBlank(code, message string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}

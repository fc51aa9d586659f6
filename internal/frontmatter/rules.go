package frontmatter

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-blogcheck/internal/reference"
)

// Checked fields, in the order a run applies them.
const (
	FieldCommunities = "communities"
	FieldType        = "type"
	FieldBy          = "by"
	FieldTags        = "tags"
)

// Categories lists the checked fields in run order.
var Categories = []string{FieldCommunities, FieldType, FieldBy, FieldTags}

// DefaultDescriptionLimit is the longest description, in characters, that
// does not raise a warning.
const DefaultDescriptionLimit = 120

// TagPattern is the shape every tag must match in full.
var TagPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// ErrViolation matches every allow-list or tag violation.
var ErrViolation = errors.New("frontmatter: invalid value")

// Violation reports a field whose value is outside its allow-list, or tags
// that do not match TagPattern. Supplied carries the full value as written and
// Unsupported the entries that failed.
type Violation struct {
	Path        string
	Field       string
	Allowed     []string
	Supplied    []string
	Unsupported []string
}

func (v *Violation) Error() string {
	return v.Format(nil, nil)
}

func (v *Violation) Unwrap() error {
	return ErrViolation
}

// Format renders the violation, passing the allowed and supplied lists
// through the optional decorators (used for terminal colour).
func (v *Violation) Format(allowed, supplied func(string) string) string {
	if allowed == nil {
		allowed = identity
	}
	if supplied == nil {
		supplied = identity
	}
	given := supplied(displayList(v.Supplied))

	switch v.Field {
	case FieldTags:
		return fmt.Sprintf("%s contains invalid tags in the YAML front matter. Tags must match %s and must not contain %q. You supplied: %s.",
			v.Path, allowed(TagPattern.String()), "--", given)
	default:
		return fmt.Sprintf("%s contains an invalid %s in the YAML front matter. Valid %s are: %s. You supplied: %s (unsupported: %s).",
			v.Path, singular(v.Field), plural(v.Field), allowed(strings.Join(v.Allowed, ", ")), given, displayList(v.Unsupported))
	}
}

func identity(s string) string { return s }

// displayList joins values, showing empty or null entries as "".
func displayList(values []string) string {
	shown := make([]string, len(values))
	for i, value := range values {
		if value == "" {
			value = `""`
		}
		shown[i] = value
	}
	return strings.Join(shown, ", ")
}

func singular(field string) string {
	if field == FieldCommunities {
		return "community"
	}
	return field
}

func plural(field string) string {
	switch field {
	case FieldCommunities:
		return "communities"
	case FieldBy:
		return "bys"
	default:
		return field + "s"
	}
}

// ValidateCommunities checks that every community is in the reference list.
// A single string and a one-element sequence are treated identically.
func ValidateCommunities(doc *Document, ref *reference.Data) error {
	communities := doc.Communities()
	if len(communities) == 0 {
		return nil
	}
	var unsupported []string
	for _, community := range communities {
		if !ref.HasCommunity(community) {
			unsupported = append(unsupported, community)
		}
	}
	if len(unsupported) == 0 {
		return nil
	}
	return &Violation{
		Path:        doc.Path,
		Field:       FieldCommunities,
		Allowed:     ref.Communities(),
		Supplied:    communities,
		Unsupported: unsupported,
	}
}

// ValidateType checks a non-empty type against the reference types.
func ValidateType(doc *Document, ref *reference.Data) error {
	return validateScalar(doc, FieldType, doc.Type(), ref.HasType, ref.Types)
}

// ValidateBy checks a non-empty by against the reference bys.
func ValidateBy(doc *Document, ref *reference.Data) error {
	return validateScalar(doc, FieldBy, doc.By(), ref.HasBy, ref.Bys)
}

func validateScalar(doc *Document, field, value string, has func(string) bool, allowed func() []string) error {
	if value == "" || has(value) {
		return nil
	}
	return &Violation{
		Path:        doc.Path,
		Field:       field,
		Allowed:     allowed(),
		Supplied:    []string{value},
		Unsupported: []string{value},
	}
}

// ValidTag reports whether tag matches TagPattern and has no "--".
func ValidTag(tag string) bool {
	return TagPattern.MatchString(tag) && !strings.Contains(tag, "--")
}

// ValidateTags checks every tag and lists all offending tags in document order.
func ValidateTags(doc *Document) error {
	var invalid []string
	for _, tag := range doc.Tags() {
		if !ValidTag(tag) {
			invalid = append(invalid, tag)
		}
	}
	if len(invalid) == 0 {
		return nil
	}
	return &Violation{
		Path:        doc.Path,
		Field:       FieldTags,
		Supplied:    invalid,
		Unsupported: invalid,
	}
}

// WarningKind classifies description warnings.
type WarningKind string

const (
	WarningMissingDescription WarningKind = "missing"
	WarningLongDescription    WarningKind = "too_long"
)

// Warning is a non-fatal description problem.
type Warning struct {
	Path       string
	Kind       WarningKind
	Length     int
	Limit      int
	Suggestion string
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningMissingDescription:
		if w.Suggestion != "" {
			return fmt.Sprintf("%s: missing description (suggested from excerpt: %q)", w.Path, w.Suggestion)
		}
		return fmt.Sprintf("%s: missing description", w.Path)
	default:
		return fmt.Sprintf("%s: description is too long (%d characters, limit %d)", w.Path, w.Length, w.Limit)
	}
}

// CheckDescription returns a warning when the description is missing or
// longer than limit characters. limit <= 0 uses DefaultDescriptionLimit.
// Blank descriptions count as missing; the length is measured on the value as
// written, surrounding whitespace included.
func CheckDescription(doc *Document, limit int) *Warning {
	if limit <= 0 {
		limit = DefaultDescriptionLimit
	}
	if doc.Description() == "" {
		return &Warning{Path: doc.Path, Kind: WarningMissingDescription, Limit: limit}
	}
	if length := utf8.RuneCountInString(doc.scalar("description")); length > limit {
		return &Warning{Path: doc.Path, Kind: WarningLongDescription, Length: length, Limit: limit}
	}
	return nil
}

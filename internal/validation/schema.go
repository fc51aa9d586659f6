package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	ErrSchemaInvalid    = errors.New("schema invalid")
	ErrSchemaValidation = errors.New("schema validation failed")
	ErrDocumentInvalid  = errors.New("document is not valid JSON")
)

// Issue captures a single validation failure.
type Issue struct {
	Location string
	Message  string
}

// DocumentError lists every schema violation found in a JSON document.
type DocumentError struct {
	Name   string
	Issues []Issue
	Cause  error
}

func (e *DocumentError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := strings.TrimSpace(issue.Location)
		if location == "" {
			location = "#"
		} else if !strings.HasPrefix(location, "#") {
			location = "#" + location
		}
		if issue.Message == "" {
			parts = append(parts, location)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	if len(parts) == 0 && e.Cause != nil {
		parts = append(parts, e.Cause.Error())
	}
	if e.Name == "" {
		return strings.Join(parts, "; ")
	}
	return e.Name + ": " + strings.Join(parts, "; ")
}

func (e *DocumentError) Unwrap() error {
	return ErrSchemaValidation
}

// Issues extracts validation issues from an error.
func Issues(err error) []Issue {
	if err == nil {
		return nil
	}
	var docErr *DocumentError
	if errors.As(err, &docErr) && docErr != nil {
		return docErr.Issues
	}
	var validationErr *jsonschema.ValidationError
	if errors.As(err, &validationErr) && validationErr != nil {
		return collectIssues(validationErr)
	}
	return []Issue{{Message: err.Error()}}
}

// Schema is a compiled JSON schema used to check raw JSON documents.
type Schema struct {
	compiled *jsonschema.Schema
}

// Compile parses and compiles a draft 2020-12 schema.
func Compile(name string, source []byte) (*Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(name, bytes.NewReader(source)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return &Schema{compiled: compiled}, nil
}

// MustCompile is Compile for schemas embedded at build time.
func MustCompile(name string, source []byte) *Schema {
	schema, err := Compile(name, source)
	if err != nil {
		panic(err)
	}
	return schema
}

// ValidateJSON decodes data and checks it against the schema. name labels the
// document in error messages.
func (s *Schema) ValidateJSON(name string, data []byte) error {
	var payload any
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDocumentInvalid, name, err)
	}
	if err := s.compiled.Validate(payload); err != nil {
		return &DocumentError{
			Name:   name,
			Issues: Issues(err),
			Cause:  err,
		}
	}
	return nil
}

func collectIssues(err *jsonschema.ValidationError) []Issue {
	var issues []Issue
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}

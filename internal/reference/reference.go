// Package reference loads the allow-lists that front matter is checked
// against. The data is read once per run and is immutable afterwards.
package reference

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/goliatone/go-blogcheck/internal/validation"
)

//go:embed schema.json
var schemaSource []byte

var schema = validation.MustCompile("reference.schema.json", schemaSource)

// ErrLoad matches every failure to read or decode reference data.
var ErrLoad = errors.New("reference data: load failed")

// LoadError reports a missing or malformed reference data file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("reference data %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{ErrLoad, e.Err}
}

// Data holds the community, type and by allow-lists.
type Data struct {
	communities allowList
	types       allowList
	bys         allowList
}

type allowList struct {
	values []string
	set    map[string]struct{}
}

func newAllowList(values []string) allowList {
	list := allowList{
		values: append([]string(nil), values...),
		set:    make(map[string]struct{}, len(values)),
	}
	for _, v := range values {
		list.set[v] = struct{}{}
	}
	return list
}

func (l allowList) has(value string) bool {
	_, ok := l.set[value]
	return ok
}

// New builds reference data from explicit lists. The slices are copied.
func New(communities, types, bys []string) *Data {
	return &Data{
		communities: newAllowList(communities),
		types:       newAllowList(types),
		bys:         newAllowList(bys),
	}
}

type document struct {
	Communities []string `json:"communities"`
	Types       []string `json:"types"`
	Bys         []string `json:"bys"`
}

// Load reads and validates the reference data file at path.
func Load(path string) (*Data, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return Parse(path, data)
}

// Parse validates raw JSON against the reference schema and decodes it.
func Parse(name string, data []byte) (*Data, error) {
	if err := schema.ValidateJSON(name, data); err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}
	return New(doc.Communities, doc.Types, doc.Bys), nil
}

// Communities returns the permitted communities in file order.
func (d *Data) Communities() []string { return append([]string(nil), d.communities.values...) }

// Types returns the permitted post types in file order.
func (d *Data) Types() []string { return append([]string(nil), d.types.values...) }

// Bys returns the permitted authorship kinds in file order.
func (d *Data) Bys() []string { return append([]string(nil), d.bys.values...) }

func (d *Data) HasCommunity(value string) bool { return d.communities.has(value) }
func (d *Data) HasType(value string) bool      { return d.types.has(value) }
func (d *Data) HasBy(value string) bool        { return d.bys.has(value) }

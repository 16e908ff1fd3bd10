package schema

import (
	"bytes"
	"encoding/json"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FieldError is one validation failure located by its dot-joined field path.
// Path is empty for document-level failures.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Line renders the error as "path: message".
func (e FieldError) Line() string {
	if e.Path == "" {
		return e.Message
	}
	return e.Path + ": " + e.Message
}

// Result collects the outcome of validating one document's frontmatter.
type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// Validate checks frontmatter fields against the compiled schema. A nil map
// validates like an empty document, so missing-field errors still surface.
func (s *CollectionSchema) Validate(fields map[string]any) *Result {
	if fields == nil {
		fields = map[string]any{}
	}

	raw, err := json.Marshal(fields)
	if err != nil {
		return &Result{Errors: []FieldError{{Message: "frontmatter is not representable as JSON: " + err.Error()}}}
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &Result{Errors: []FieldError{{Message: "decoding frontmatter: " + err.Error()}}}
	}

	err = s.compiled.Validate(inst)
	if err == nil {
		return &Result{Valid: true}
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return &Result{Errors: []FieldError{{Message: err.Error()}}}
	}

	seen := make(map[string]bool)
	var errs []FieldError
	flatten(ve, &errs, seen)
	if len(errs) == 0 {
		errs = append(errs, FieldError{Message: strings.TrimSpace(err.Error())})
	}
	sort.Slice(errs, func(i, j int) bool {
		if errs[i].Path != errs[j].Path {
			return errs[i].Path < errs[j].Path
		}
		return errs[i].Message < errs[j].Message
	})
	return &Result{Errors: errs}
}

// flatten walks the cause tree collecting leaf failures. Required-property
// failures expand to one error per missing field so each gets its own path.
func flatten(ve *jsonschema.ValidationError, out *[]FieldError, seen map[string]bool) {
	if k, ok := ve.ErrorKind.(*kind.Required); ok {
		for _, missing := range k.Missing {
			record(out, seen, childPath(ve.InstanceLocation, missing), "required field is missing")
		}
		return
	}

	if len(ve.Causes) == 0 {
		keyword := ""
		if ve.ErrorKind != nil {
			if kwPath := ve.ErrorKind.KeywordPath(); len(kwPath) > 0 {
				keyword = kwPath[len(kwPath)-1]
			}
		}
		// Container keywords carry no field-level information.
		if keyword == "" || keyword == "oneOf" || keyword == "anyOf" || keyword == "allOf" || keyword == "$ref" {
			return
		}
		record(out, seen, strings.Join(ve.InstanceLocation, "."), ve.ErrorKind.LocalizedString(printer))
		return
	}
	for _, cause := range ve.Causes {
		flatten(cause, out, seen)
	}
}

func record(out *[]FieldError, seen map[string]bool, path, msg string) {
	key := path + "\x00" + msg
	if seen[key] {
		return
	}
	seen[key] = true
	*out = append(*out, FieldError{Path: path, Message: msg})
}

func childPath(loc []string, leaf string) string {
	parts := make([]string, 0, len(loc)+1)
	parts = append(parts, loc...)
	parts = append(parts, leaf)
	return strings.Join(parts, ".")
}

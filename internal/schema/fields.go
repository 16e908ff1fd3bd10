// Package schema synthesizes the per-collection validation schemas.
//
// Each collection schema is layered from three sources with fixed
// precedence: hardcoded base fields (names reserved), fields extracted from
// the user's content-type definition file, and schema extensions declared in
// the project configuration. The result is compiled to a JSON Schema
// validator; building never fails and validation reports per-field
// path/message pairs.
package schema

import (
	"github.com/lord007tn/BlogForge-sub000/internal/config"
)

// FieldType enumerates the field kinds recognized in user content-type
// definitions.
type FieldType int

const (
	TypeString FieldType = iota
	TypeNumber
	TypeBoolean
	TypeDate
	TypeJSON
	TypeList
	TypeMarkdown
	TypeNested
	TypeReference
	TypeEnum
)

// String returns the marker name for the field type.
func (t FieldType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeNumber:
		return "number"
	case TypeBoolean:
		return "boolean"
	case TypeDate:
		return "date"
	case TypeJSON:
		return "json"
	case TypeList:
		return "list"
	case TypeMarkdown:
		return "markdown"
	case TypeNested:
		return "nested"
	case TypeReference:
		return "reference"
	case TypeEnum:
		return "enum"
	default:
		return "string"
	}
}

// fieldTypeMarkers lists the type markers searched for in field descriptors.
// Container types come before primitives so a list of strings classifies as
// a list; string is last since it is also the default.
var fieldTypeMarkers = []struct {
	marker string
	t      FieldType
}{
	{"markdown", TypeMarkdown},
	{"nested", TypeNested},
	{"list", TypeList},
	{"json", TypeJSON},
	{"reference", TypeReference},
	{"enum", TypeEnum},
	{"boolean", TypeBoolean},
	{"number", TypeNumber},
	{"date", TypeDate},
	{"string", TypeString},
}

// UserField is one field extracted from the user's content-type file.
type UserField struct {
	Name         string
	Type         FieldType
	Required     bool
	Multilingual bool
}

// UserSchema is the extracted field set of one declared document type.
type UserSchema struct {
	Fields map[string]UserField
}

// baseField declares one built-in field of a collection schema.
// Multilingual fields derive their fragment from the configuration; all
// others carry a fixed JSON Schema fragment.
type baseField struct {
	name         string
	required     bool
	multilingual bool
	fragment     map[string]any
}

func stringFragment() map[string]any  { return map[string]any{"type": "string"} }
func numberFragment() map[string]any  { return map[string]any{"type": "number"} }
func booleanFragment() map[string]any { return map[string]any{"type": "boolean"} }

func stringArrayFragment() map[string]any {
	return map[string]any{"type": "array", "items": map[string]any{"type": "string"}}
}

func stringMapFragment() map[string]any {
	return map[string]any{"type": "object", "additionalProperties": map[string]any{"type": "string"}}
}

// baseFields returns the built-in field set for a collection. The slice
// order is the canonical display order.
func baseFields(collection string) []baseField {
	switch collection {
	case config.CollectionArticle:
		return []baseField{
			{name: "title", required: true, multilingual: true},
			{name: "description", required: true, multilingual: true},
			{name: "author", required: true, fragment: stringFragment()},
			{name: "tags", required: true, fragment: stringArrayFragment()},
			{name: "locale", required: true, fragment: stringFragment()},
			{name: "isDraft", required: true, fragment: booleanFragment()},
			{name: "slug", required: true, fragment: stringFragment()},
			{name: "category", fragment: stringFragment()},
			{name: "image", fragment: stringFragment()},
			{name: "readingTime", fragment: numberFragment()},
			{name: "isFeatured", fragment: booleanFragment()},
			{name: "publishedAt", fragment: stringFragment()},
			{name: "updatedAt", fragment: stringFragment()},
			{name: "canonicalUrl", fragment: stringFragment()},
			{name: "keywords", fragment: stringArrayFragment()},
		}
	case config.CollectionAuthor:
		return []baseField{
			{name: "slug", required: true, fragment: stringFragment()},
			{name: "name", required: true, multilingual: true},
			{name: "bio", required: true, multilingual: true},
			{name: "avatar", fragment: stringFragment()},
			{name: "socialLinks", fragment: stringMapFragment()},
			{name: "role", multilingual: true},
		}
	case config.CollectionCategory:
		return []baseField{
			{name: "title", required: true, multilingual: true},
			{name: "description", required: true, multilingual: true},
			{name: "slug", required: true, fragment: stringFragment()},
			{name: "image", fragment: stringFragment()},
			{name: "icon", fragment: stringFragment()},
		}
	default:
		return nil
	}
}

// BaseFieldNames returns the reserved field names of a collection in
// canonical order. User-extracted fields can never override these.
func BaseFieldNames(collection string) []string {
	fields := baseFields(collection)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.name
	}
	return names
}

// MultilingualFieldNames returns the built-in fields of a collection that
// hold human-readable text and follow the project's multilingual shape.
func MultilingualFieldNames(collection string) []string {
	var names []string
	for _, f := range baseFields(collection) {
		if f.multilingual {
			names = append(names, f.name)
		}
	}
	return names
}

// collectionAliases maps each collection to the declaration names it is
// recognized under in user content-type files. Matching is case-insensitive.
var collectionAliases = map[string][]string{
	config.CollectionArticle:  {"article", "articles", "post", "posts", "blogpost", "blogposts", "blog"},
	config.CollectionAuthor:   {"author", "authors", "writer", "writers"},
	config.CollectionCategory: {"category", "categories", "tag", "tags", "topic", "topics"},
}

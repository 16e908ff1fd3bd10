package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/lord007tn/BlogForge-sub000/internal/config"
	"github.com/lord007tn/BlogForge-sub000/internal/i18n"
)

// Field origins, in layering order.
const (
	OriginBase      = "base"
	OriginUser      = "user"
	OriginExtension = "extension"
)

// FieldDoc describes one field of a synthesized schema for display.
type FieldDoc struct {
	Name     string
	Type     string
	Required bool
	Origin   string
}

// CollectionSchema is a compiled, immutable validator for one collection.
type CollectionSchema struct {
	Collection string

	doc      map[string]any
	fields   []FieldDoc
	compiled *jsonschema.Schema
}

// Doc returns the underlying JSON Schema document.
func (s *CollectionSchema) Doc() map[string]any { return s.doc }

// Fields returns the field documentation in layering order: base fields in
// canonical order, then user fields, then extensions, each alphabetical
// within its layer.
func (s *CollectionSchema) Fields() []FieldDoc { return s.fields }

// ArticleSchema builds the article validator from configuration and
// extracted user schemas.
func ArticleSchema(cfg *config.Config, user map[string]UserSchema) (*CollectionSchema, error) {
	return build(config.CollectionArticle, cfg, user)
}

// AuthorSchema builds the author validator.
func AuthorSchema(cfg *config.Config, user map[string]UserSchema) (*CollectionSchema, error) {
	return build(config.CollectionAuthor, cfg, user)
}

// CategorySchema builds the category validator.
func CategorySchema(cfg *config.Config, user map[string]UserSchema) (*CollectionSchema, error) {
	return build(config.CollectionCategory, cfg, user)
}

// ForCollection builds the validator for the named collection.
func ForCollection(collection string, cfg *config.Config, user map[string]UserSchema) (*CollectionSchema, error) {
	switch collection {
	case config.CollectionArticle, config.CollectionAuthor, config.CollectionCategory:
		return build(collection, cfg, user)
	default:
		return nil, fmt.Errorf("unknown collection %q", collection)
	}
}

// Synthesize builds all three collection validators.
func Synthesize(cfg *config.Config, user map[string]UserSchema) (map[string]*CollectionSchema, error) {
	out := make(map[string]*CollectionSchema, len(config.Collections))
	for _, coll := range config.Collections {
		s, err := build(coll, cfg, user)
		if err != nil {
			return nil, err
		}
		out[coll] = s
	}
	return out, nil
}

// build layers base, user, and extension fields into a compiled schema.
// Layer precedence: base names are reserved and filter colliding user
// fields; extensions apply last and may shadow user fields.
func build(collection string, cfg *config.Config, user map[string]UserSchema) (*CollectionSchema, error) {
	props := make(map[string]any)
	required := make([]string, 0, 8)
	var docs []FieldDoc

	reserved := make(map[string]bool)
	for _, f := range baseFields(collection) {
		frag := f.fragment
		if f.multilingual {
			frag = i18n.SchemaFragment(cfg)
		}
		props[f.name] = frag
		reserved[f.name] = true
		if f.required {
			required = append(required, f.name)
		}
		docs = append(docs, FieldDoc{
			Name:     f.name,
			Type:     describeFragment(frag),
			Required: f.required,
			Origin:   OriginBase,
		})
	}

	if us, ok := lookupUserSchema(user, collection); ok {
		for _, name := range sortedFieldNames(us.Fields) {
			if reserved[name] {
				continue // base names can never be overridden
			}
			uf := us.Fields[name]
			frag := userFieldFragment(uf, cfg)
			props[name] = frag
			if uf.Required {
				required = append(required, name)
			}
			docs = append(docs, FieldDoc{
				Name:     name,
				Type:     describeFragment(frag),
				Required: uf.Required,
				Origin:   OriginUser,
			})
		}
	}

	extensions := cfg.ExtensionsFor(collection)
	for _, name := range sortedKeys(extensions) {
		frag := inferFragment(extensions[name])
		props[name] = frag
		// Extensions are always optional, so a shadowed user field loses
		// its required status along with its type.
		required = dropName(required, name)
		docs = append(docs, FieldDoc{
			Name:   name,
			Type:   describeFragment(frag),
			Origin: OriginExtension,
		})
	}

	doc := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		doc["required"] = required
	}

	compiled, err := compile(collection, doc)
	if err != nil {
		return nil, fmt.Errorf("compiling %s schema: %w", collection, err)
	}

	return &CollectionSchema{
		Collection: collection,
		doc:        doc,
		fields:     dedupeFieldDocs(docs),
		compiled:   compiled,
	}, nil
}

// userFieldFragment maps an extracted field descriptor to a schema fragment.
// Dates travel as strings in frontmatter; json and list map to permissive
// containers; markdown and nested honor the field's multilingual flag;
// references and enums are plain strings.
func userFieldFragment(uf UserField, cfg *config.Config) map[string]any {
	switch uf.Type {
	case TypeNumber:
		return numberFragment()
	case TypeBoolean:
		return booleanFragment()
	case TypeDate, TypeReference, TypeEnum, TypeString:
		return stringFragment()
	case TypeJSON:
		return map[string]any{"type": "object"}
	case TypeList:
		return map[string]any{"type": "array"}
	case TypeMarkdown:
		if uf.Multilingual {
			return i18n.SchemaFragment(cfg)
		}
		return stringFragment()
	case TypeNested:
		if uf.Multilingual {
			return i18n.SchemaFragment(cfg)
		}
		return map[string]any{"type": "object"}
	default:
		return stringFragment()
	}
}

// inferFragment infers a fragment from the runtime type of an extension's
// example value. Null and unrecognized types stay permissive.
func inferFragment(example any) map[string]any {
	switch example.(type) {
	case string:
		return stringFragment()
	case bool:
		return booleanFragment()
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return numberFragment()
	case []any:
		return map[string]any{"type": "array"}
	case nil:
		return map[string]any{}
	default:
		return map[string]any{}
	}
}

// describeFragment renders a fragment as a short display type.
func describeFragment(frag map[string]any) string {
	if len(frag) == 0 {
		return "any"
	}
	if _, ok := frag["oneOf"]; ok {
		return "string | map[lang]string"
	}
	switch frag["type"] {
	case "array":
		return "array"
	case "object":
		return "object"
	case "number":
		return "number"
	case "boolean":
		return "boolean"
	case "string":
		return "string"
	default:
		return "any"
	}
}

// compile turns a schema document into a jsonschema validator.
func compile(collection string, doc map[string]any) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	parsed, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}

	name := collection + ".schema.json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, parsed); err != nil {
		return nil, err
	}
	return c.Compile(name)
}

// dropName removes name from names, preserving order.
func dropName(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

func sortedFieldNames(fields map[string]UserField) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// dedupeFieldDocs drops earlier entries shadowed by a later layer so the
// display reflects the effective schema.
func dedupeFieldDocs(docs []FieldDoc) []FieldDoc {
	last := make(map[string]int, len(docs))
	for i, d := range docs {
		last[d.Name] = i
	}
	out := make([]FieldDoc, 0, len(docs))
	for i, d := range docs {
		if last[d.Name] == i {
			out = append(out, d)
		}
	}
	return out
}

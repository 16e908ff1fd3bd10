package config

import (
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"
)

// fileConfig mirrors the user-facing configuration shape with presence
// information: every top-level field is optional, and a nil pointer means
// the candidate file did not mention it.
type fileConfig struct {
	Root             *string                   `koanf:"root"`
	Directories      map[string]string         `koanf:"directories"`
	Multilingual     *bool                     `koanf:"multilingual"`
	Languages        *[]string                 `koanf:"languages"`
	DefaultLanguage  *string                   `koanf:"defaultLanguage"`
	SchemaExtensions map[string]map[string]any `koanf:"schemaExtensions"`
	DefaultValues    map[string]map[string]any `koanf:"defaultValues"`
	MinVersion       *string                   `koanf:"minVersion"`
}

// decodeFileConfig decodes a raw candidate map into the expected shape.
// A decode error means the config is structurally unusable and the caller
// must fall back to defaults.
func decodeFileConfig(raw map[string]any) (*fileConfig, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(raw, "."), nil); err != nil {
		return nil, err
	}
	var fc fileConfig
	if err := k.Unmarshal("", &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

// mergeConfig layers a user configuration over base. Scalars and the
// languages list overwrite when present; directories, schemaExtensions and
// defaultValues merge per named sub-key (two-level merge: each sub-object's
// own keys land in the matching base sub-object instead of replacing it
// wholesale). base is never mutated.
func mergeConfig(base *Config, user *fileConfig) *Config {
	out := cloneConfig(base)
	if user == nil {
		return out
	}

	if user.Root != nil {
		out.Root = *user.Root
	}
	if user.Multilingual != nil {
		out.Multilingual = *user.Multilingual
	}
	if user.Languages != nil {
		out.Languages = append([]string(nil), (*user.Languages)...)
	}
	if user.DefaultLanguage != nil {
		out.DefaultLanguage = *user.DefaultLanguage
	}
	if user.MinVersion != nil {
		out.MinVersion = *user.MinVersion
	}

	for name, dir := range user.Directories {
		switch name {
		case "articles":
			out.Directories.Articles = dir
		case "authors":
			out.Directories.Authors = dir
		case "categories":
			out.Directories.Categories = dir
		case "images":
			out.Directories.Images = dir
		}
	}

	out.SchemaExtensions = mergeSections(out.SchemaExtensions, user.SchemaExtensions)
	out.DefaultValues = mergeSections(out.DefaultValues, user.DefaultValues)
	return out
}

// mergeSections merges per-collection field maps key by key.
func mergeSections(base, user map[string]map[string]any) map[string]map[string]any {
	if base == nil {
		base = make(map[string]map[string]any)
	}
	for coll, fields := range user {
		dst := base[coll]
		if dst == nil {
			dst = make(map[string]any, len(fields))
			base[coll] = dst
		}
		for name, value := range fields {
			dst[name] = value
		}
	}
	return base
}

func cloneConfig(c *Config) *Config {
	out := *c
	out.Languages = append([]string(nil), c.Languages...)
	out.SchemaExtensions = cloneSections(c.SchemaExtensions)
	out.DefaultValues = cloneSections(c.DefaultValues)
	return &out
}

func cloneSections(src map[string]map[string]any) map[string]map[string]any {
	if src == nil {
		return nil
	}
	out := make(map[string]map[string]any, len(src))
	for coll, fields := range src {
		dst := make(map[string]any, len(fields))
		for name, value := range fields {
			dst[name] = value
		}
		out[coll] = dst
	}
	return out
}

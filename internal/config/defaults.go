package config

// DefaultConfig returns the built-in configuration for a project root.
// Each call builds a fresh value so callers can never mutate shared state.
func DefaultConfig(root string) *Config {
	return &Config{
		Root: root,
		Directories: Directories{
			Articles:   "articles",
			Authors:    "authors",
			Categories: "categories",
			Images:     "images",
		},
		Multilingual:    false,
		Languages:       []string{"en"},
		DefaultLanguage: "en",
		SchemaExtensions: map[string]map[string]any{
			CollectionArticle:  {},
			CollectionAuthor:   {},
			CollectionCategory: {},
		},
		DefaultValues: map[string]map[string]any{
			CollectionArticle: {
				"isDraft": true,
			},
			CollectionAuthor:   {},
			CollectionCategory: {},
		},
	}
}

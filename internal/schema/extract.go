package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// UserSchemaFile is the content-type definition file searched for at the
// project root.
const UserSchemaFile = "content.config.ts"

var (
	declRe = regexp.MustCompile(`defineDocumentType\s*\(`)
	nameRe = regexp.MustCompile("name\\s*:\\s*[\"'`]([A-Za-z][A-Za-z0-9_-]*)[\"'`]")
	wsRe   = regexp.MustCompile(`\s+`)
)

// ExtractUserSchemas scans the project's content-type definition file for
// document type declarations and returns the field sets keyed by declared
// name. The scan is a textual heuristic, not a parser: declarations are
// located by pattern, field descriptors by brace matching, and field traits
// by substring markers. A missing file yields an empty map and no error;
// any other failure yields an empty map and a warning-level error so
// callers can fall back to base schemas.
func ExtractUserSchemas(projectRoot string) (map[string]UserSchema, error) {
	path := filepath.Join(projectRoot, UserSchemaFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]UserSchema{}, nil
		}
		return map[string]UserSchema{}, fmt.Errorf("could not read %s: %w", path, err)
	}
	return scanUserSchemas(string(data)), nil
}

// scanUserSchemas extracts all document type declarations from source text.
func scanUserSchemas(src string) map[string]UserSchema {
	out := make(map[string]UserSchema)

	starts := declRe.FindAllStringIndex(src, -1)
	for i, loc := range starts {
		end := len(src)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		window := src[loc[0]:end]

		nameMatch := nameRe.FindStringSubmatch(window)
		if nameMatch == nil {
			continue
		}
		body, ok := fieldsBody(window)
		if !ok {
			continue
		}
		fields := scanFields(body)
		if len(fields) == 0 {
			continue
		}
		out[nameMatch[1]] = UserSchema{Fields: fields}
	}
	return out
}

// fieldsKeyRe matches a "fields:" key without also matching identifiers
// that merely end in "fields" (computedFields and friends).
var fieldsKeyRe = regexp.MustCompile(`(^|[^A-Za-z0-9_])fields\s*:\s*\{`)

// fieldsBody returns the brace-delimited body of the declaration's
// "fields" object.
func fieldsBody(window string) (string, bool) {
	loc := fieldsKeyRe.FindStringIndex(window)
	if loc == nil {
		return "", false
	}
	open := loc[1] - 1 // the '{' at the end of the match

	depth := 0
	for i := open; i < len(window); i++ {
		switch window[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return window[open+1 : i], true
			}
		}
	}
	return "", false
}

// fieldStartRe matches "identifier:" at the head of a field entry.
var fieldStartRe = regexp.MustCompile(`^([A-Za-z_][A-Za-z0-9_]*)\s*:\s*`)

// scanFields walks the fields body and collects one UserField per
// top-level "name: { descriptor }" entry. Nested braces inside a
// descriptor belong to that descriptor; entries without an object
// descriptor are skipped.
func scanFields(body string) map[string]UserField {
	fields := make(map[string]UserField)

	i := 0
	for i < len(body) {
		m := fieldStartRe.FindStringSubmatch(body[i:])
		if m == nil {
			i++
			continue
		}
		name := m[1]
		j := i + len(m[0])
		if j >= len(body) || body[j] != '{' {
			// Not an object descriptor; skip past this token.
			i = j
			continue
		}

		depth := 0
		k := j
		for ; k < len(body); k++ {
			switch body[k] {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth == 0 {
				break
			}
		}
		if depth != 0 {
			break // unbalanced, stop scanning
		}

		descriptor := body[j+1 : k]
		fields[name] = fieldFromDescriptor(name, descriptor)
		i = k + 1
	}
	return fields
}

// fieldFromDescriptor derives a field's traits from its descriptor text.
func fieldFromDescriptor(name, descriptor string) UserField {
	desc := wsRe.ReplaceAllString(descriptor, " ")

	t := TypeString
	for _, m := range fieldTypeMarkers {
		if containsMarker(desc, m.marker) {
			t = m.t
			break
		}
	}

	required := strings.Contains(desc, "required: true")
	multilingual := t == TypeMarkdown || strings.Contains(desc, "localized: true")

	return UserField{
		Name:         name,
		Type:         t,
		Required:     required,
		Multilingual: multilingual,
	}
}

// containsMarker reports whether the descriptor mentions a type marker in
// any of the quoting styles seen in content-type files.
func containsMarker(desc, marker string) bool {
	return strings.Contains(desc, "'"+marker+"'") ||
		strings.Contains(desc, `"`+marker+`"`) ||
		strings.Contains(desc, "`"+marker+"`")
}

// lookupUserSchema finds the user schema matching a collection under any of
// its conventional aliases, case-insensitively.
func lookupUserSchema(user map[string]UserSchema, collection string) (UserSchema, bool) {
	aliases := collectionAliases[collection]
	for declared, us := range user {
		for _, alias := range aliases {
			if strings.EqualFold(declared, alias) {
				return us, true
			}
		}
	}
	return UserSchema{}, false
}

// Package frontmatter splits and rebuilds the metadata block of Markdown
// documents. YAML blocks are delimited by ---, TOML blocks by +++.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies the frontmatter encoding of a document.
type Format int

const (
	FormatNone Format = iota
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	default:
		return "none"
	}
}

const (
	yamlDelimiter = "---"
	tomlDelimiter = "+++"
)

// ErrUnterminated is returned when a document opens a frontmatter block
// that never closes.
var ErrUnterminated = errors.New("unterminated frontmatter block")

// Parsed is a Markdown document split into metadata and body. Body keeps
// the exact text following the closing delimiter line.
type Parsed struct {
	Fields map[string]any
	Body   string
	Format Format
}

// Extract splits content into frontmatter fields and body. A document
// without an opening delimiter parses as all body with empty fields; an
// opening delimiter without a closing one is an error, as is a block the
// codec cannot decode.
func Extract(content []byte) (*Parsed, error) {
	text := normalizeNewlines(string(content))

	delim, format := detect(text)
	if format == FormatNone {
		return &Parsed{Fields: map[string]any{}, Body: text, Format: FormatNone}, nil
	}

	block, body, ok := splitDelimited(text, delim)
	if !ok {
		return nil, ErrUnterminated
	}
	fields, err := decode(block, format)
	if err != nil {
		return nil, fmt.Errorf("parsing %s frontmatter: %w", format, err)
	}
	return &Parsed{Fields: fields, Body: body, Format: format}, nil
}

// Build renders fields and body as a YAML-frontmatter document with keys
// in yaml.v3's canonical sort order.
func Build(fields map[string]any, body string) ([]byte, error) {
	clean := Sanitize(fields)

	var buf bytes.Buffer
	buf.WriteString(yamlDelimiter + "\n")
	if len(clean) > 0 {
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(clean); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	}
	buf.WriteString(yamlDelimiter + "\n")
	writeBody(&buf, body)
	return buf.Bytes(), nil
}

// BuildOrdered renders fields as YAML frontmatter with keys laid out in
// the given order; fields not named in order follow alphabetically.
func BuildOrdered(order []string, fields map[string]any, body string) ([]byte, error) {
	clean := Sanitize(fields)

	mapping := &yaml.Node{Kind: yaml.MappingNode}
	placed := make(map[string]bool, len(clean))
	for _, key := range order {
		v, ok := clean[key]
		if !ok || placed[key] {
			continue
		}
		if err := appendPair(mapping, key, v); err != nil {
			return nil, err
		}
		placed[key] = true
	}
	for _, key := range sortedKeys(clean) {
		if placed[key] {
			continue
		}
		if err := appendPair(mapping, key, clean[key]); err != nil {
			return nil, err
		}
	}

	block, err := encodeMapping(mapping)
	if err != nil {
		return nil, err
	}
	return joinDocument(yamlDelimiter, block, bodyBlock(body)), nil
}

// Update replaces the frontmatter of content with fields. YAML documents
// keep their existing key order, with removed keys dropped and new keys
// appended alphabetically; TOML documents are re-encoded wholesale. A
// document without frontmatter gains a YAML block.
func Update(content []byte, fields map[string]any) ([]byte, error) {
	text := normalizeNewlines(string(content))
	clean := Sanitize(fields)

	delim, format := detect(text)
	switch format {
	case FormatYAML:
		block, body, ok := splitDelimited(text, delim)
		if !ok {
			return nil, ErrUnterminated
		}
		updated, err := updateYAMLBlock(block, clean)
		if err != nil {
			return nil, err
		}
		return joinDocument(yamlDelimiter, updated, body), nil
	case FormatTOML:
		_, body, ok := splitDelimited(text, delim)
		if !ok {
			return nil, ErrUnterminated
		}
		raw, err := toml.Marshal(clean)
		if err != nil {
			return nil, fmt.Errorf("encoding toml frontmatter: %w", err)
		}
		return joinDocument(tomlDelimiter, string(raw), body), nil
	default:
		return Build(clean, text)
	}
}

// Replace renders fields and body as one document, keeping the key order
// and delimiter style of the previous content. Body spacing is canonical:
// one blank line after the block, one trailing newline.
func Replace(previous []byte, fields map[string]any, body string) ([]byte, error) {
	text := normalizeNewlines(string(previous))
	clean := Sanitize(fields)

	delim, format := detect(text)
	switch format {
	case FormatYAML:
		block, _, ok := splitDelimited(text, delim)
		if !ok {
			return nil, ErrUnterminated
		}
		updated, err := updateYAMLBlock(block, clean)
		if err != nil {
			return nil, err
		}
		return joinDocument(yamlDelimiter, updated, bodyBlock(body)), nil
	case FormatTOML:
		raw, err := toml.Marshal(clean)
		if err != nil {
			return nil, fmt.Errorf("encoding toml frontmatter: %w", err)
		}
		return joinDocument(tomlDelimiter, string(raw), bodyBlock(body)), nil
	default:
		return Build(clean, body)
	}
}

// updateYAMLBlock rewrites a YAML mapping in place: existing keys keep
// their position, keys absent from fields are dropped, and unseen fields
// are appended alphabetically.
func updateYAMLBlock(block string, fields map[string]any) (string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(block), &root); err != nil {
		return "", fmt.Errorf("parsing frontmatter: %w", err)
	}

	mapping := documentMapping(&root)
	if mapping == nil {
		mapping = &yaml.Node{Kind: yaml.MappingNode}
	}

	var content []*yaml.Node
	present := make(map[string]bool)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valueNode := mapping.Content[i], mapping.Content[i+1]
		present[keyNode.Value] = true
		v, keep := fields[keyNode.Value]
		if !keep {
			continue
		}
		if !nodeEquals(valueNode, v) {
			if err := valueNode.Encode(v); err != nil {
				return "", fmt.Errorf("encoding field %q: %w", keyNode.Value, err)
			}
		}
		content = append(content, keyNode, valueNode)
	}
	for _, key := range sortedKeys(fields) {
		if present[key] {
			continue
		}
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(fields[key]); err != nil {
			return "", fmt.Errorf("encoding field %q: %w", key, err)
		}
		content = append(content, keyNode, valueNode)
	}
	mapping.Content = content

	return encodeMapping(mapping)
}

// nodeEquals reports whether the node already decodes to v, so unchanged
// values keep their original formatting and comments.
func nodeEquals(node *yaml.Node, v any) bool {
	var current any
	if err := node.Decode(&current); err != nil {
		return false
	}
	return equalValues(current, v)
}

func equalValues(a, b any) bool {
	ab, errA := yaml.Marshal(a)
	bb, errB := yaml.Marshal(b)
	return errA == nil && errB == nil && bytes.Equal(ab, bb)
}

// documentMapping unwraps a parsed document down to its top-level mapping.
func documentMapping(root *yaml.Node) *yaml.Node {
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 && root.Content[0].Kind == yaml.MappingNode {
		return root.Content[0]
	}
	if root.Kind == yaml.MappingNode {
		return root
	}
	return nil
}

func appendPair(mapping *yaml.Node, key string, v any) error {
	keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
	valueNode := &yaml.Node{}
	if err := valueNode.Encode(v); err != nil {
		return fmt.Errorf("encoding field %q: %w", key, err)
	}
	mapping.Content = append(mapping.Content, keyNode, valueNode)
	return nil
}

func encodeMapping(mapping *yaml.Node) (string, error) {
	if len(mapping.Content) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(mapping); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// detect inspects the first line for a known delimiter.
func detect(text string) (string, Format) {
	line := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		line = text[:i]
	}
	switch strings.TrimRight(line, " \t") {
	case yamlDelimiter:
		return yamlDelimiter, FormatYAML
	case tomlDelimiter:
		return tomlDelimiter, FormatTOML
	}
	return "", FormatNone
}

// splitDelimited returns the text between the opening delimiter line and
// the next delimiter line, plus everything after it.
func splitDelimited(text, delim string) (block, body string, ok bool) {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], " \t") != delim {
		return "", "", false
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimRight(lines[i], " \t") == delim {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n"), true
		}
	}
	return "", "", false
}

func decode(block string, format Format) (map[string]any, error) {
	fields := map[string]any{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal([]byte(block), &fields); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal([]byte(block), &fields); err != nil {
			return nil, err
		}
	}
	return Sanitize(fields), nil
}

func joinDocument(delim, block, body string) []byte {
	var buf bytes.Buffer
	buf.WriteString(delim + "\n")
	if block != "" {
		buf.WriteString(strings.TrimRight(block, "\n") + "\n")
	}
	buf.WriteString(delim + "\n")
	buf.WriteString(body)
	return buf.Bytes()
}

// bodyBlock shapes a bare body the way joinDocument expects it: one blank
// line after the closing delimiter and a trailing newline.
func bodyBlock(body string) string {
	var buf bytes.Buffer
	writeBody(&buf, body)
	return buf.String()
}

func writeBody(buf *bytes.Buffer, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	buf.WriteString("\n")
	buf.WriteString(strings.Trim(normalizeNewlines(body), "\n"))
	buf.WriteString("\n")
}

// Sanitize normalizes decoded frontmatter so nested maps always use
// string keys, matching what the codecs and the schema validator expect.
func Sanitize(fields map[string]any) map[string]any {
	if fields == nil {
		return map[string]any{}
	}
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = sanitizeValue(v)
	}
	return out
}

func sanitizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return Sanitize(v)
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[fmt.Sprint(key)] = sanitizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i := range v {
			out[i] = sanitizeValue(v[i])
		}
		return out
	default:
		return v
	}
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

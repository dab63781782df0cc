package workflow

import (
	"gopkg.in/yaml.v3"
)

// Kind names reported for YAML values.
const (
	KindMapping   = "mapping"
	KindSequence  = "sequence"
	KindNull      = "null"
	KindBool      = "bool"
	KindInt       = "int"
	KindFloat     = "float"
	KindString    = "string"
	KindTimestamp = "timestamp"
	KindBinary    = "binary"
	KindUnknown   = "unknown"
)

// KeyStyle describes how a mapping key was written in the source.
type KeyStyle string

const (
	KeyPlain        KeyStyle = "plain"
	KeySingleQuoted KeyStyle = "single-quoted"
	KeyDoubleQuoted KeyStyle = "double-quoted"
	KeyTagged       KeyStyle = "tagged"
)

// Quoted reports whether the key is protected from implicit type resolution.
func (s KeyStyle) Quoted() bool { return s != KeyPlain }

// Entry is one key/value pair of a mapping, in source order.
type Entry struct {
	Key   string
	Tag   string
	Style KeyStyle
	Line  int
	Value *yaml.Node
}

// IsString reports whether the key resolved to a string.
func (e Entry) IsString() bool { return e.Tag == "!!str" }

// Document is a parsed top-level mapping. It keeps the yaml.Node so that key
// order and key quoting survive parsing.
type Document struct {
	node    *yaml.Node
	entries []Entry
}

func newDocument(n *yaml.Node) *Document {
	return &Document{node: n, entries: mappingEntries(n)}
}

// Node returns the underlying mapping node.
func (d *Document) Node() *yaml.Node { return d.node }

// Entries returns every top-level entry in source order.
func (d *Document) Entries() []Entry { return d.entries }

// Keys returns the top-level keys in source order.
func (d *Document) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Lookup finds a string-tagged key. A key like `true:` that resolved to a
// boolean never matches, even when its text equals key. Duplicate keys
// resolve to the last occurrence.
func (d *Document) Lookup(key string) (Entry, bool) {
	var (
		found Entry
		ok    bool
	)
	for _, e := range d.entries {
		if e.IsString() && e.Key == key {
			found, ok = e, true
		}
	}
	return found, ok
}

// BoolKeys returns entries whose key resolved to a boolean.
func (d *Document) BoolKeys() []Entry {
	var out []Entry
	for _, e := range d.entries {
		if e.Tag == "!!bool" {
			out = append(out, e)
		}
	}
	return out
}

func mappingEntries(n *yaml.Node) []Entry {
	entries := make([]Entry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := resolveAlias(n.Content[i])
		entries = append(entries, Entry{
			Key:   k.Value,
			Tag:   k.ShortTag(),
			Style: keyStyle(n.Content[i]),
			Line:  n.Content[i].Line,
			Value: resolveAlias(n.Content[i+1]),
		})
	}
	return entries
}

func keyStyle(k *yaml.Node) KeyStyle {
	switch {
	case k.Style&yaml.SingleQuotedStyle != 0:
		return KeySingleQuoted
	case k.Style&yaml.DoubleQuotedStyle != 0:
		return KeyDoubleQuoted
	case k.Style&yaml.TaggedStyle != 0 && k.ShortTag() == "!!str":
		return KeyTagged
	default:
		return KeyPlain
	}
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

// KindName returns the human-readable kind of a YAML node.
func KindName(n *yaml.Node) string {
	n = resolveAlias(n)
	if n == nil {
		return KindNull
	}
	switch n.Kind {
	case yaml.MappingNode:
		return KindMapping
	case yaml.SequenceNode:
		return KindSequence
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return KindNull
		}
		return KindName(n.Content[0])
	case yaml.ScalarNode:
		switch n.ShortTag() {
		case "!!null":
			return KindNull
		case "!!bool":
			return KindBool
		case "!!int":
			return KindInt
		case "!!float":
			return KindFloat
		case "!!str":
			return KindString
		case "!!timestamp":
			return KindTimestamp
		case "!!binary":
			return KindBinary
		}
	}
	return KindUnknown
}

// Package workflow loads CI workflow definition files and classifies each one
// into a tagged Outcome that checkers can inspect without re-reading the file.
package workflow

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Status tags the result of loading a single workflow file.
type Status string

const (
	// StatusOK means the file parsed to a top-level mapping.
	StatusOK Status = "ok"
	// StatusNotFound means the file does not exist.
	StatusNotFound Status = "not_found"
	// StatusReadError means the file exists but could not be read.
	StatusReadError Status = "read_error"
	// StatusParseError means the content is not well-formed YAML.
	StatusParseError Status = "parse_error"
	// StatusShapeError means the YAML is well-formed but the top level is not a mapping.
	StatusShapeError Status = "shape_error"
)

// Outcome is the result of loading one workflow file.
type Outcome struct {
	// Path is the path the file was loaded from.
	Path string
	// Name is the base name of Path, used in report lines.
	Name string
	// Status tags which of the fields below are meaningful.
	Status Status
	// Err holds the underlying error for every non-OK status.
	Err error
	// Kind is the kind name of the top-level value. Set for StatusOK and StatusShapeError.
	Kind string
	// Doc is the parsed top-level mapping. Only set for StatusOK.
	Doc *Document
}

// OK reports whether the file parsed to a mapping.
func (o *Outcome) OK() bool { return o != nil && o.Status == StatusOK }

// ErrNotMapping is wrapped by Outcome.Err for StatusShapeError.
var ErrNotMapping = errors.New("top-level value is not a mapping")

// ErrMultipleDocuments is wrapped by Outcome.Err when a file holds more than
// one YAML document.
var ErrMultipleDocuments = errors.New("expected a single document in the stream")

// Load reads and parses the file at path. It never returns nil; every failure
// is folded into the returned Outcome.
func Load(path string) *Outcome {
	out := &Outcome{Path: path, Name: filepath.Base(path)}

	data, err := readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			out.Status = StatusNotFound
		} else {
			out.Status = StatusReadError
		}
		out.Err = err
		slog.Debug("workflow load failed", "path", path, "status", out.Status, "error", err)
		return out
	}

	out.Status, out.Kind, out.Doc, out.Err = Parse(data)
	slog.Debug("workflow loaded", "path", path, "status", out.Status, "kind", out.Kind)
	return out
}

// LoadAll loads each path in order.
func LoadAll(paths []string) []*Outcome {
	outcomes := make([]*Outcome, 0, len(paths))
	for _, p := range paths {
		outcomes = append(outcomes, Load(p))
	}
	return outcomes
}

// Parse classifies raw YAML bytes. The stream must hold at most one document;
// a second document is a parse error even when it is well formed.
func Parse(data []byte) (Status, string, *Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var root yaml.Node
	if err := dec.Decode(&root); err != nil {
		// An empty stream has no document; treat it like an explicit null.
		if errors.Is(err, io.EOF) {
			return StatusShapeError, KindNull, nil, fmt.Errorf("%w: got %s", ErrNotMapping, KindNull)
		}
		return StatusParseError, "", nil, err
	}

	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		if err == nil {
			err = fmt.Errorf("%w (second document on line %d)", ErrMultipleDocuments, extra.Line)
		}
		return StatusParseError, "", nil, err
	}

	if root.Kind == 0 || len(root.Content) == 0 {
		return StatusShapeError, KindNull, nil, fmt.Errorf("%w: got %s", ErrNotMapping, KindNull)
	}

	top := resolveAlias(root.Content[0])
	kind := KindName(top)
	if top.Kind != yaml.MappingNode {
		return StatusShapeError, kind, nil, fmt.Errorf("%w: got %s", ErrNotMapping, kind)
	}
	return StatusOK, kind, newDocument(top), nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

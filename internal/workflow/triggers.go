package workflow

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// DefaultTriggerKey is the top-level key that lists workflow triggers.
const DefaultTriggerKey = "on"

// TriggerConfig holds the filter settings most workflow triggers accept.
// Fields a trigger does not use stay empty.
type TriggerConfig struct {
	Branches       []string `mapstructure:"branches" json:"branches,omitempty"`
	BranchesIgnore []string `mapstructure:"branches-ignore" json:"branchesIgnore,omitempty"`
	Tags           []string `mapstructure:"tags" json:"tags,omitempty"`
	TagsIgnore     []string `mapstructure:"tags-ignore" json:"tagsIgnore,omitempty"`
	Paths          []string `mapstructure:"paths" json:"paths,omitempty"`
	PathsIgnore    []string `mapstructure:"paths-ignore" json:"pathsIgnore,omitempty"`
	Types          []string `mapstructure:"types" json:"types,omitempty"`
	Workflows      []string `mapstructure:"workflows" json:"workflows,omitempty"`

	// Crons is filled from a schedule trigger's list of {cron: ...} entries.
	Crons []string `mapstructure:"-" json:"crons,omitempty"`
	// Inputs lists workflow_dispatch / workflow_call input names in source order.
	Inputs []string `mapstructure:"-" json:"inputs,omitempty"`
}

// Empty reports whether no filter was set.
func (c *TriggerConfig) Empty() bool {
	return c == nil || (len(c.Branches) == 0 && len(c.BranchesIgnore) == 0 &&
		len(c.Tags) == 0 && len(c.TagsIgnore) == 0 &&
		len(c.Paths) == 0 && len(c.PathsIgnore) == 0 &&
		len(c.Types) == 0 && len(c.Workflows) == 0 &&
		len(c.Crons) == 0 && len(c.Inputs) == 0)
}

// Trigger is one event listed under the trigger key.
type Trigger struct {
	Name string `json:"name"`
	// Kind is the kind of the trigger's value; a bare `push:` is null.
	Kind   string         `json:"kind"`
	Config *TriggerConfig `json:"config,omitempty"`
}

// TriggerSet is the ordered list of triggers under the trigger key.
type TriggerSet struct {
	Triggers []Trigger `json:"triggers"`
}

// Names returns trigger names in source order.
func (s *TriggerSet) Names() []string {
	names := make([]string, 0, len(s.Triggers))
	for _, t := range s.Triggers {
		names = append(names, t.Name)
	}
	return names
}

// String joins trigger names the way reports print them.
func (s *TriggerSet) String() string { return strings.Join(s.Names(), ", ") }

// DecodeTriggers reads the triggers under a mapping value. A trigger whose
// configuration cannot be decoded is still listed, with a nil Config.
func DecodeTriggers(value *yaml.Node) (*TriggerSet, error) {
	value = resolveAlias(value)
	if value == nil || value.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, KindName(value))
	}

	set := &TriggerSet{}
	for _, e := range mappingEntries(value) {
		t := Trigger{Name: e.Key, Kind: KindName(e.Value)}
		cfg, err := decodeTriggerConfig(e.Key, e.Value)
		if err != nil {
			slog.Debug("trigger config not decoded", "trigger", e.Key, "error", err)
		} else if !cfg.Empty() {
			t.Config = cfg
		}
		set.Triggers = append(set.Triggers, t)
	}
	return set, nil
}

func decodeTriggerConfig(name string, n *yaml.Node) (*TriggerConfig, error) {
	cfg := &TriggerConfig{}
	switch n.Kind {
	case yaml.MappingNode:
		var raw map[string]any
		if err := n.Decode(&raw); err != nil {
			return nil, err
		}
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			WeaklyTypedInput: true,
			Result:           cfg,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(raw); err != nil {
			return nil, fmt.Errorf("decoding %s config: %w", name, err)
		}
		for _, e := range mappingEntries(n) {
			if e.Key == "inputs" && e.Value.Kind == yaml.MappingNode {
				for _, in := range mappingEntries(e.Value) {
					cfg.Inputs = append(cfg.Inputs, in.Key)
				}
			}
		}
	case yaml.SequenceNode:
		var entries []struct {
			Cron string `mapstructure:"cron"`
		}
		var raw []any
		if err := n.Decode(&raw); err != nil {
			return nil, err
		}
		if err := mapstructure.Decode(raw, &entries); err != nil {
			return nil, fmt.Errorf("decoding %s entries: %w", name, err)
		}
		for _, e := range entries {
			if e.Cron != "" {
				cfg.Crons = append(cfg.Crons, e.Cron)
			}
		}
	}
	return cfg, nil
}

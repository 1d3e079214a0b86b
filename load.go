package fsm

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// document is the on-disk shape of a configuration. States is kept as a raw node so the
// declaration order of states and events survives decoding.
type document struct {
	Initial string    `yaml:"initial"`
	States  yaml.Node `yaml:"states"`
}

type stateDocument struct {
	Transitions yaml.Node `yaml:"transitions"`
}

// ParseConfig builds a validated Config from a YAML or JSON document:
//
//	initial: idle
//	states:
//	  idle:
//	    transitions:
//	      start: running
//	  running:
//	    transitions: {stop: idle}
func ParseConfig(data []byte) (*Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fsm: parse config: %w", err)
	}

	if doc.States.Kind != yaml.MappingNode {
		return nil, &ErrConfiguration{Reason: "states must be a mapping of state names"}
	}

	cfg := NewConfig(State(doc.Initial))

	for i := 0; i+1 < len(doc.States.Content); i += 2 {
		key, value := doc.States.Content[i], doc.States.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, &ErrConfiguration{Reason: fmt.Sprintf("line %d: state name must be a scalar", key.Line)}
		}

		from := State(key.Value)
		cfg.State(from)

		var sd stateDocument
		if err := value.Decode(&sd); err != nil {
			return nil, fmt.Errorf("fsm: parse state %q: %w", from, err)
		}

		table := sd.Transitions
		if table.Kind == 0 || table.Tag == "!!null" {
			continue
		}

		if table.Kind != yaml.MappingNode {
			return nil, &ErrConfiguration{
				Reason: fmt.Sprintf("line %d: transitions of state %q must be a mapping", table.Line, from),
			}
		}

		for j := 0; j+1 < len(table.Content); j += 2 {
			event, to := table.Content[j], table.Content[j+1]
			if event.Kind != yaml.ScalarNode || to.Kind != yaml.ScalarNode {
				return nil, &ErrConfiguration{
					Reason: fmt.Sprintf("line %d: transition of state %q must map an event name to a state name",
						event.Line, from),
				}
			}

			cfg.Transition(from, Event(event.Value), State(to.Value))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadConfig reads a YAML or JSON configuration document from r.
func LoadConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("fsm: read config: %w", err)
	}

	return ParseConfig(data)
}

// LoadConfigFile reads a YAML or JSON configuration file.
func LoadConfigFile(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fsm: open config: %w", err)
	}
	defer file.Close()

	return LoadConfig(file)
}

// ConfigFromMap builds a validated Config from a generic map with the same shape as a
// configuration document. Maps carry no order, so states and events are declared in
// lexical order.
func ConfigFromMap(m map[string]any) (*Config, error) {
	if m == nil {
		return nil, &ErrConfiguration{Reason: "no configuration supplied"}
	}

	var raw struct {
		Initial string `mapstructure:"initial"`
		States  map[string]struct {
			Transitions map[string]string `mapstructure:"transitions"`
		} `mapstructure:"states"`
	}

	if err := mapstructure.Decode(m, &raw); err != nil {
		return nil, fmt.Errorf("fsm: decode config: %w", err)
	}

	cfg := NewConfig(State(raw.Initial))

	for _, name := range slices.Sorted(maps.Keys(raw.States)) {
		cfg.State(State(name))

		table := raw.States[name].Transitions
		for _, event := range slices.Sorted(maps.Keys(table)) {
			cfg.Transition(State(name), Event(event), State(table[event]))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

package fsm

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON implements the json.Marshaler interface.
// States and events are written in declaration order.
func (c *Config) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	writeString := func(s string) error {
		b, err := json.Marshal(s)
		if err != nil {
			return err
		}

		buf.Write(b)
		return nil
	}

	buf.WriteString(`{"initial":`)
	if err := writeString(string(c.initial)); err != nil {
		return nil, err
	}

	buf.WriteString(`,"states":{`)

	for i, state := range c.states {
		if i > 0 {
			buf.WriteByte(',')
		}

		if err := writeString(string(state)); err != nil {
			return nil, err
		}

		buf.WriteString(`:{"transitions":{`)

		for j, t := range c.transitions[state] {
			if j > 0 {
				buf.WriteByte(',')
			}

			if err := writeString(string(t.Event)); err != nil {
				return nil, err
			}

			buf.WriteByte(':')

			if err := writeString(string(t.To)); err != nil {
				return nil, err
			}
		}

		buf.WriteString(`}}`)
	}

	buf.WriteString(`}}`)

	return buf.Bytes(), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The decoded configuration is validated like ParseConfig does.
func (c *Config) UnmarshalJSON(data []byte) error {
	parsed, err := ParseConfig(data)
	if err != nil {
		return err
	}

	*c = *parsed

	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
// States and events are written in declaration order.
func (c *Config) MarshalYAML() (any, error) {
	str := func(s string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	}

	states := &yaml.Node{Kind: yaml.MappingNode}

	for _, state := range c.states {
		table := &yaml.Node{Kind: yaml.MappingNode, Style: yaml.FlowStyle}
		for _, t := range c.transitions[state] {
			table.Content = append(table.Content, str(string(t.Event)), str(string(t.To)))
		}

		body := &yaml.Node{Kind: yaml.MappingNode}
		body.Content = append(body.Content, str("transitions"), table)

		states.Content = append(states.Content, str(string(state)), body)
	}

	root := &yaml.Node{Kind: yaml.MappingNode}
	root.Content = append(root.Content, str("initial"), str(string(c.initial)), str("states"), states)

	return root, nil
}

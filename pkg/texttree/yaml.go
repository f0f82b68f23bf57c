package texttree

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/drawset/pkg/errors"
)

func marshalYAML(n *Node) ([]byte, error) {
	doc := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{yamlKey(n.Name), toYAML(n)},
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yamlKey(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}

// yamlScalar forces a string tag on values that would otherwise read back
// as null.
func yamlScalar(s string) *yaml.Node {
	y := &yaml.Node{Kind: yaml.ScalarNode, Value: s}
	switch s {
	case "", "~", "null", "Null", "NULL":
		y.Tag = "!!str"
	}
	return y
}

func toYAML(n *Node) *yaml.Node {
	if n.Leaf() {
		return yamlScalar(n.Value)
	}
	if n.uniqueNames() {
		m := &yaml.Node{Kind: yaml.MappingNode}
		for _, c := range n.Children {
			m.Content = append(m.Content, yamlKey(c.Name), toYAML(c))
		}
		return m
	}
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, c := range n.Children {
		seq.Content = append(seq.Content, &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: []*yaml.Node{yamlKey(c.Name), toYAML(c)},
		})
	}
	return seq
}

func unmarshalYAML(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode yaml")
	}
	top := &doc
	if top.Kind == 0 {
		return NewNode(""), nil
	}
	if top.Kind == yaml.DocumentNode {
		if len(top.Content) == 0 {
			return NewNode(""), nil
		}
		top = top.Content[0]
	}
	if top.Kind == yaml.MappingNode && len(top.Content) == 2 {
		return fromYAML(top.Content[0].Value, top.Content[1])
	}
	return fromYAML("", top)
}

func fromYAML(name string, y *yaml.Node) (*Node, error) {
	n := NewNode(name)
	switch y.Kind {
	case yaml.AliasNode:
		return fromYAML(name, y.Alias)
	case yaml.ScalarNode:
		if y.Tag != "!!null" {
			n.Value = y.Value
		}
	case yaml.MappingNode:
		if err := addYAMLPairs(n, y); err != nil {
			return nil, err
		}
	case yaml.SequenceNode:
		for _, item := range y.Content {
			if item.Kind != yaml.MappingNode {
				return nil, errors.New(errors.ErrCodeInvalidFormat,
					"line %d: sequence items under %q must be mappings", item.Line, name)
			}
			if err := addYAMLPairs(n, item); err != nil {
				return nil, err
			}
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "line %d: unexpected yaml node under %q", y.Line, name)
	}
	return n, nil
}

func addYAMLPairs(n *Node, m *yaml.Node) error {
	for i := 0; i+1 < len(m.Content); i += 2 {
		c, err := fromYAML(m.Content[i].Value, m.Content[i+1])
		if err != nil {
			return err
		}
		n.Children = append(n.Children, c)
	}
	return nil
}

package texttree

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/drawset/pkg/errors"
)

func marshalTOML(n *Node) ([]byte, error) {
	tbl, err := toTOMLTable(n)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(map[string]any{n.Name: tbl}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toTOMLTable encodes n as a table. A leaf becomes an empty table, which
// only round-trips when its value is empty.
func toTOMLTable(n *Node) (map[string]any, error) {
	if n.Leaf() && n.Value != "" {
		return nil, errors.New(errors.ErrCodeUnsupported, "toml: %q holds a value and must be a table", n.Name)
	}
	tbl := make(map[string]any, len(n.Children))
	names, byName := n.groups()
	for _, name := range names {
		group := byName[name]
		if len(group) == 1 {
			if group[0].Leaf() {
				tbl[name] = group[0].Value
				continue
			}
			sub, err := toTOMLTable(group[0])
			if err != nil {
				return nil, err
			}
			tbl[name] = sub
			continue
		}
		if allLeaves(group) {
			values := make([]string, len(group))
			for i, c := range group {
				values[i] = c.Value
			}
			tbl[name] = values
			continue
		}
		tables := make([]map[string]any, len(group))
		for i, c := range group {
			sub, err := toTOMLTable(c)
			if err != nil {
				return nil, err
			}
			tables[i] = sub
		}
		tbl[name] = tables
	}
	return tbl, nil
}

func allLeaves(nodes []*Node) bool {
	for _, c := range nodes {
		if !c.Leaf() {
			return false
		}
	}
	return true
}

func unmarshalTOML(data []byte) (*Node, error) {
	var top map[string]any
	if _, err := toml.Decode(string(data), &top); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	if len(top) != 1 {
		return fromTOML("", top)
	}
	var name string
	for k := range top {
		name = k
	}
	return fromTOML(name, top[name])
}

func fromTOML(name string, v any) (*Node, error) {
	n := NewNode(name)
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := addTOML(n, k, val[k]); err != nil {
				return nil, err
			}
		}
	default:
		s, err := tomlScalar(val)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "toml key %q", name)
		}
		n.Value = s
	}
	return n, nil
}

// addTOML appends the children for key k, expanding arrays into repeated
// siblings.
func addTOML(n *Node, k string, v any) error {
	var items []any
	switch val := v.(type) {
	case []map[string]any:
		for _, m := range val {
			items = append(items, m)
		}
	case []any:
		items = val
	default:
		items = []any{v}
	}
	for _, item := range items {
		c, err := fromTOML(k, item)
		if err != nil {
			return err
		}
		n.Children = append(n.Children, c)
	}
	return nil
}

func tomlScalar(v any) (string, error) {
	switch val := v.(type) {
	case string:
		return val, nil
	case int64:
		return strconv.FormatInt(val, 10), nil
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil
	case bool:
		return strconv.FormatBool(val), nil
	case time.Time:
		return val.Format(time.RFC3339), nil
	}
	return "", fmt.Errorf("unsupported value of type %T", v)
}

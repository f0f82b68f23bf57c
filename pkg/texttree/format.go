package texttree

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/matzehuels/drawset/pkg/errors"
)

// Format selects a codec.
type Format string

// Supported formats.
const (
	FormatYAML    Format = "yaml"
	FormatJSON    Format = "json"
	FormatTOML    Format = "toml"
	FormatMsgpack Format = "msgpack"
)

var extensions = map[string]Format{
	".yaml":    FormatYAML,
	".yml":     FormatYAML,
	".json":    FormatJSON,
	".toml":    FormatTOML,
	".msgpack": FormatMsgpack,
	".mpk":     FormatMsgpack,
}

// Formats returns every supported format.
func Formats() []Format {
	return []Format{FormatYAML, FormatJSON, FormatTOML, FormatMsgpack}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	switch f {
	case FormatYAML, FormatJSON, FormatTOML, FormatMsgpack:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "unknown format %q (must be yaml, json, toml or msgpack)", s)
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extensions[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidInput, "cannot infer format from %q", path)
}

// Marshal encodes the tree rooted at n.
func Marshal(n *Node, f Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case FormatYAML:
		data, err = marshalYAML(n)
	case FormatTOML:
		data, err = marshalTOML(n)
	case FormatJSON:
		data, err = json.MarshalIndent(n, "", "  ")
		data = append(data, '\n')
	case FormatMsgpack:
		data, err = msgpack.Marshal(n)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", f)
	}
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode %s", f)
	}
	return data, nil
}

// Unmarshal decodes a tree.
func Unmarshal(data []byte, f Format) (*Node, error) {
	var (
		n   *Node
		err error
	)
	switch f {
	case FormatYAML:
		n, err = unmarshalYAML(data)
	case FormatTOML:
		n, err = unmarshalTOML(data)
	case FormatJSON:
		n = new(Node)
		err = json.Unmarshal(data, n)
	case FormatMsgpack:
		n = new(Node)
		err = msgpack.Unmarshal(data, n)
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format %q", f)
	}
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", f)
	}
	return n, nil
}

// Encode writes the tree rooted at n to w.
func Encode(w io.Writer, n *Node, f Format) error {
	data, err := Marshal(n, f)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Decode reads a whole tree from r.
func Decode(r io.Reader, f Format) (*Node, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", f)
	}
	return Unmarshal(buf.Bytes(), f)
}

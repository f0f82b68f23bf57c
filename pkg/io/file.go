package io

import (
	"io"
	"os"

	"github.com/matzehuels/drawset/pkg/errors"
	"github.com/matzehuels/drawset/pkg/object"
	"github.com/matzehuels/drawset/pkg/texttree"
)

// Read decodes a document from r and loads its objects.
//
// A decode failure returns no objects. A load failure returns the objects
// together with the joined parse errors, which callers may treat as
// warnings.
func Read(r io.Reader, f texttree.Format) ([]object.Object, error) {
	root, err := texttree.Decode(r, f)
	if err != nil {
		return nil, err
	}
	var objects []object.Object
	err = Load(root, &objects)
	return objects, err
}

// Write stores objects and encodes the document to w.
func Write(w io.Writer, f texttree.Format, objects []object.Object) error {
	return texttree.Encode(w, Document(objects), f)
}

// ReadFile reads the document at path, choosing the codec by extension.
func ReadFile(path string) ([]object.Object, error) {
	f, err := texttree.FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer file.Close()
	return Read(file, f)
}

// WriteFile writes objects to path, choosing the codec by extension.
func WriteFile(path string, objects []object.Object) error {
	f, err := texttree.FormatFromPath(path)
	if err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if err := Write(file, f, objects); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

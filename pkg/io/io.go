package io

import (
	"github.com/matzehuels/drawset/pkg/attr"
	"github.com/matzehuels/drawset/pkg/errors"
	"github.com/matzehuels/drawset/pkg/object"
	"github.com/matzehuels/drawset/pkg/texttree"
)

// Node names used by the document shape.
const (
	RootName   = "drawing"
	ObjectName = "object"
	LabelName  = "label"
)

// Load appends one object per child of node to out.
//
// Every child is treated as an object regardless of its name. Values that
// fail to parse leave the slot unset and are joined into the returned
// error (InvalidFormat); the objects are appended either way.
func Load(node *texttree.Node, out *[]object.Object) error {
	if node == nil {
		return errors.New(errors.ErrCodeInvalidInput, "nil document")
	}
	var errs []error
	for i, child := range node.Children {
		o := object.New()
		for _, field := range child.Children {
			if field.Name == LabelName {
				o.Label = field.Value
				continue
			}
			k, ok := attr.Lookup(field.Name)
			if !ok {
				continue
			}
			if err := o.SetText(k, field.Value); err != nil {
				errs = append(errs, errors.Wrap(errors.ErrCodeInvalidFormat, err, "object %d: %s", i, field.Name))
			}
		}
		*out = append(*out, o)
	}
	return errors.Join(errs...)
}

// Store writes one child per object to node, in sequence order. Only set
// slots are written.
func Store(objects []object.Object, node *texttree.Node) {
	for i := range objects {
		o := &objects[i]
		child := node.Add(ObjectName)
		if o.Label != "" {
			child.AddValue(LabelName, o.Label)
		}
		values := o.Values()
		for _, k := range attr.Kinds() {
			if v := values[k]; v.IsSet() {
				child.AddValue(k.Name(), v.String())
			}
		}
	}
}

// Document returns a new root node holding objects.
func Document(objects []object.Object) *texttree.Node {
	root := texttree.NewNode(RootName)
	Store(objects, root)
	return root
}

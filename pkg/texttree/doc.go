// Package texttree provides a generic named tree and codecs for it.
//
// A [Node] has a name, an optional text value and ordered children. Names
// may repeat among siblings. The tree carries no schema; the io package
// maps drawing documents onto it.
//
// # Formats
//
// Four codecs are available, chosen by [Format]:
//
//   - YAML: children with unique names become a mapping; siblings with
//     repeated names become a sequence of single-key mappings. Order is kept.
//   - TOML: siblings are grouped by name, repeated names become arrays.
//     Keys come back sorted, so order is kept only among same-named siblings.
//   - JSON and MessagePack: the canonical {name, value, children} form,
//     lossless in both directions.
//
// In YAML and TOML a node's value is only written for leaves.
//
// For YAML and TOML the document's single top-level key names the root
// node. Documents with several top-level keys decode into an unnamed root.
package texttree

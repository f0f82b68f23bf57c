package object

// Flags is a set of object state bits.
type Flags uint32

// Flag bits.
const (
	// FlagSelected marks an object as part of the editor selection.
	FlagSelected Flags = 1 << iota

	// FlagsNone is the empty set.
	FlagsNone Flags = 0

	// FlagsInitialDefaults is the flag set of a new object.
	FlagsInitialDefaults = FlagSelected
)

// Has reports whether every bit of f is set.
func (fs Flags) Has(f Flags) bool { return fs&f == f }

// With returns fs with f set or cleared.
func (fs Flags) With(f Flags, on bool) Flags {
	if on {
		return fs | f
	}
	return fs &^ f
}

// String implements fmt.Stringer.
func (fs Flags) String() string {
	if fs.Has(FlagSelected) {
		return "selected"
	}
	return "none"
}

package errors

// ValidateIndices checks an index selection against a sequence of length n.
//
// The validation rules match what the batch editing helpers expect:
//   - The selection cannot be empty
//   - Every index must satisfy 0 <= i < n
//
// Duplicate indices are allowed; batch helpers apply them in order.
func ValidateIndices(indices []int, n int) error {
	if len(indices) == 0 {
		return New(ErrCodeInvalidArgument, "index selection cannot be empty")
	}
	for _, i := range indices {
		if i < 0 || i >= n {
			return New(ErrCodeInvalidArgument, "index %d out of range [0, %d)", i, n)
		}
	}
	return nil
}

// InRange reports whether i addresses an element of a sequence of length n.
func InRange(i, n int) bool {
	return i >= 0 && i < n
}

package geom

// TransformInputs are the values a world-to-canvas transform is built from.
type TransformInputs struct {
	Scale    float32
	Rotation float32 // degrees
	Offset   Point   // canvas-space translation applied last
}

// Matrix builds the transform: scale, then rotate, then translate.
func (in TransformInputs) Matrix() Matrix {
	return Scale(in.Scale, in.Scale).Mul(Rotate(in.Rotation)).Mul(Translate(in.Offset.X, in.Offset.Y))
}

// CachedTransform memoizes a transform against its inputs.
// The zero value is an invalid cache whose Matrix is the identity.
type CachedTransform struct {
	inputs  TransformInputs
	matrix  Matrix
	valid   bool
	rebuilt int
}

// Update rebuilds the matrix if in differs from the inputs of the last build,
// or if the cache was invalidated. It reports whether a rebuild happened.
func (c *CachedTransform) Update(in TransformInputs) bool {
	if c.valid && c.inputs == in {
		return false
	}
	c.inputs = in
	c.matrix = in.Matrix()
	c.valid = true
	c.rebuilt++
	return true
}

// Matrix returns the cached transform, or the identity when none was built.
func (c *CachedTransform) Matrix() Matrix {
	if !c.valid {
		return Identity()
	}
	return c.matrix
}

// Valid reports whether a transform has been built since the last Invalidate.
func (c *CachedTransform) Valid() bool { return c.valid }

// Inputs returns the inputs of the last build.
func (c *CachedTransform) Inputs() TransformInputs { return c.inputs }

// Rebuilds returns how many times the matrix has been rebuilt.
func (c *CachedTransform) Rebuilds() int { return c.rebuilt }

// Invalidate forces the next Update to rebuild.
func (c *CachedTransform) Invalidate() {
	c.valid = false
	c.matrix = Matrix{}
}

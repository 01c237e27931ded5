// Package sink provides instance collections that placements are written to.
package sink

import (
	"github.com/Faultbox/pathway/pkg/math"
)

// Batch is an in-memory instance collection. It keeps transforms in insertion
// order alongside their model matrices, ready for a GPU upload.
type Batch struct {
	transforms []math.Transform
	matrices   []float32
	version    uint64
}

// NewBatch creates an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// AddInstance appends one instance and returns its index.
func (b *Batch) AddInstance(t math.Transform) int {
	m := t.ToMat4()
	b.transforms = append(b.transforms, t)
	b.matrices = append(b.matrices, m[:]...)
	b.version++
	return len(b.transforms) - 1
}

// ClearInstances removes every instance.
func (b *Batch) ClearInstances() {
	b.transforms = b.transforms[:0]
	b.matrices = b.matrices[:0]
	b.version++
}

// InstanceCount returns the number of instances.
func (b *Batch) InstanceCount() int {
	return len(b.transforms)
}

// Instance returns the transform at index i.
func (b *Batch) Instance(i int) math.Transform {
	return b.transforms[i]
}

// Transforms returns the instances in insertion order. The slice is shared
// with the batch.
func (b *Batch) Transforms() []math.Transform {
	return b.transforms
}

// Matrices returns 16 floats per instance, column-major.
func (b *Batch) Matrices() []float32 {
	return b.matrices
}

// Version changes every time the contents change.
func (b *Batch) Version() uint64 {
	return b.version
}

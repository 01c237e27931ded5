// Package instancing draws placed instances and debug lines with OpenGL.
package instancing

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/pathway/internal/engine/debug"
	"github.com/Faultbox/pathway/internal/engine/shader"
	"github.com/Faultbox/pathway/internal/sink"
	"github.com/Faultbox/pathway/pkg/math"
)

// minBoxExtent keeps flat or unresolved meshes visible as boxes.
const minBoxExtent = 2

const mat4Size = 16 * 4

// Buffer is an instance sink backed by a GPU buffer. Instances are kept in a
// sink.Batch and uploaded lazily on the next Draw after they change.
type Buffer struct {
	*sink.Batch

	program *shader.Program

	vao         uint32
	shapeVBO    uint32
	instanceVBO uint32
	shapeCount  int32

	capacity int // instances the GPU buffer can hold
	uploaded uint64
	drawn    int32

	Color debug.Color
}

// NewBuffer creates the GPU resources. A GL context must be current.
func NewBuffer() (*Buffer, error) {
	program, err := shader.New(instanceVertexShader, instanceFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("instance shader: %w", err)
	}

	b := &Buffer{
		Batch:   sink.NewBatch(),
		program: program,
		Color:   debug.Yellow,
	}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.shapeVBO)
	gl.GenBuffers(1, &b.instanceVBO)

	// The instance matrix occupies attribute slots 1-4, one column each.
	gl.BindBuffer(gl.ARRAY_BUFFER, b.instanceVBO)
	for col := uint32(0); col < 4; col++ {
		loc := 1 + col
		gl.VertexAttribPointerWithOffset(loc, 4, gl.FLOAT, false, mat4Size, uintptr(col*16))
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribDivisor(loc, 1)
	}

	gl.BindVertexArray(0)
	b.SetExtent(math.Vec3{})
	return b, nil
}

// SetExtent replaces the per-instance wireframe with a box of the given
// half-extents.
func (b *Buffer) SetExtent(extent math.Vec3) {
	vertices := debug.FootprintBoxVertices(extent, minBoxExtent)
	b.shapeCount = int32(len(vertices) / 3)

	gl.BindVertexArray(b.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.shapeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindVertexArray(0)
}

// upload copies the batch to the GPU when it changed since the last call.
func (b *Buffer) upload() {
	if b.uploaded == b.Version() {
		return
	}
	b.uploaded = b.Version()
	b.drawn = int32(b.InstanceCount())
	if b.drawn == 0 {
		return
	}

	data := b.Matrices()
	gl.BindBuffer(gl.ARRAY_BUFFER, b.instanceVBO)
	if b.InstanceCount() > b.capacity {
		b.capacity = b.InstanceCount() * 2
		gl.BufferData(gl.ARRAY_BUFFER, b.capacity*mat4Size, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*4, unsafe.Pointer(&data[0]))
}

// Draw renders one wireframe box per instance.
func (b *Buffer) Draw(viewProj math.Mat4) {
	b.upload()
	if b.drawn == 0 {
		return
	}

	b.program.Use()
	b.program.SetMat4("uViewProj", viewProj)
	b.program.SetVec4("uColor", b.Color)

	gl.BindVertexArray(b.vao)
	gl.DrawArraysInstanced(gl.LINES, 0, b.shapeCount, b.drawn)
	gl.BindVertexArray(0)
}

// Delete frees the GPU resources.
func (b *Buffer) Delete() {
	gl.DeleteBuffers(1, &b.instanceVBO)
	gl.DeleteBuffers(1, &b.shapeVBO)
	gl.DeleteVertexArrays(1, &b.vao)
	b.program.Delete()
}

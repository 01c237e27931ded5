package instancing

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/pathway/internal/engine/debug"
	"github.com/Faultbox/pathway/internal/engine/shader"
	"github.com/Faultbox/pathway/pkg/math"
)

// lineStride is position plus RGBA, in bytes.
const lineStride = 7 * 4

// Lines draws colored debug line segments.
type Lines struct {
	program *shader.Program
	vao     uint32
	vbo     uint32
	count   int32
}

// NewLines creates an empty line set. A GL context must be current.
func NewLines() (*Lines, error) {
	program, err := shader.New(lineVertexShader, lineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}

	l := &Lines{program: program}
	gl.GenVertexArrays(1, &l.vao)
	gl.GenBuffers(1, &l.vbo)

	gl.BindVertexArray(l.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, lineStride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, lineStride, 3*4)
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	return l, nil
}

// Set replaces the drawn lines.
func (l *Lines) Set(lines []debug.Line) {
	vertices := debug.LineVertices(lines)
	l.count = int32(len(vertices) / 7)
	if l.count == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
}

// Draw renders the current lines.
func (l *Lines) Draw(viewProj math.Mat4) {
	if l.count == 0 {
		return
	}
	l.program.Use()
	l.program.SetMat4("uViewProj", viewProj)

	gl.BindVertexArray(l.vao)
	gl.DrawArrays(gl.LINES, 0, l.count)
	gl.BindVertexArray(0)
}

// Delete frees the GPU resources.
func (l *Lines) Delete() {
	gl.DeleteBuffers(1, &l.vbo)
	gl.DeleteVertexArrays(1, &l.vao)
	l.program.Delete()
}

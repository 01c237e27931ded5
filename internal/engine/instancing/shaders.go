package instancing

import _ "embed"

//go:embed shaders/instance.vert
var instanceVertexShader string

//go:embed shaders/instance.frag
var instanceFragmentShader string

//go:embed shaders/line.vert
var lineVertexShader string

//go:embed shaders/line.frag
var lineFragmentShader string

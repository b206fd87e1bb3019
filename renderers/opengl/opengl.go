//go:build cgo

package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/tdewolff/shapes2d"
)

var vertexShaderSource = `
	#version 330 core
	uniform mat4 projection;
	layout(location = 0) in vec3 position;
	layout(location = 1) in vec4 vertColor;

	out vec4 fragColor;

	void main() {
		gl_Position = projection * vec4(position, 1.0);
		fragColor = vertColor;
	}
` + "\x00"

var fragmentShaderSource = `
	#version 330 core
	in vec4 fragColor;

	out vec4 color;

	void main() {
		color = fragColor;
	}
` + "\x00"

const vertexSize = int32(unsafe.Sizeof(shapes2d.Vertex{}))

// OpenGL is an OpenGL renderer that uploads the buffers of a batch and draws them with one glDrawElements call each. Compile must be called with a current OpenGL 3.3 context before drawing.
type OpenGL struct {
	width, height float64
	LineWidth     float32

	program    uint32
	projection int32
	vao        uint32
	vbo, ebo   uint32
}

// New returns an OpenGL renderer for a viewport of width by height pixels.
func New(width, height float64) *OpenGL {
	return &OpenGL{
		width:     width,
		height:    height,
		LineWidth: 1.0,
	}
}

// Size returns the size of the viewport in pixels.
func (r *OpenGL) Size() (float64, float64) {
	return r.width, r.height
}

// SetSize sets the size of the viewport in pixels.
func (r *OpenGL) SetSize(width, height float64) {
	r.width, r.height = width, height
}

// Compile compiles the shaders and allocates the buffers.
func (r *OpenGL) Compile() error {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(vertexShader)
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(fragmentShader)

	r.program = gl.CreateProgram()
	gl.AttachShader(r.program, vertexShader)
	gl.AttachShader(r.program, fragmentShader)
	gl.LinkProgram(r.program)

	var status int32
	gl.GetProgramiv(r.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return fmt.Errorf("link program: %v", programLog(r.program))
	}
	r.projection = gl.GetUniformLocation(r.program, gl.Str("projection\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexSize, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.UNSIGNED_BYTE, true, vertexSize, uintptr(unsafe.Offsetof(shapes2d.Vertex{}.Color)))
	gl.BindVertexArray(0)
	shapes2d.Logger().Debug("shaders compiled", "program", r.program)
	return nil
}

// Delete frees the program and buffers.
func (r *OpenGL) Delete() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}

// SetBlending enables blending of alpha premultiplied colors.
func SetBlending() {
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
}

// DrawIndexedTriangles implements shapes2d.Rasterizer.
func (r *OpenGL) DrawIndexedTriangles(vertices []shapes2d.Vertex, indices []uint32) {
	r.draw(gl.TRIANGLES, vertices, indices)
}

// DrawIndexedLines implements shapes2d.Rasterizer.
func (r *OpenGL) DrawIndexedLines(vertices []shapes2d.Vertex, indices []uint32) {
	gl.LineWidth(r.LineWidth)
	r.draw(gl.LINES, vertices, indices)
}

func (r *OpenGL) draw(mode uint32, vertices []shapes2d.Vertex, indices []uint32) {
	if len(vertices) == 0 || len(indices) == 0 {
		return
	}

	projection := Orthographic(r.width, r.height)
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.projection, 1, false, &projection[0])

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*int(vertexSize), gl.Ptr(vertices), gl.STREAM_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STREAM_DRAW)
	gl.DrawElements(mode, int32(len(indices)), gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile shader: %v", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func programLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

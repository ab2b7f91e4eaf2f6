// Command view is a live GLFW/OpenGL host for the engine: it drives the
// same refine/read_ldr loop the batch CLI uses, but re-uploads the result as
// a texture on a fullscreen quad every pass instead of writing a file. This
// is the "driver loops refine+read_ldr to update a live display" collaborator
// spec.md places at the external-interface boundary, outside the core.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/timo-eberl/tracy/pkg/core"
	"github.com/timo-eberl/tracy/pkg/render"
)

func init() {
	// GLFW and the GL context it creates must be driven from a single OS
	// thread, same constraint the teacher's core.Window documents.
	runtime.LockOSThread()
}

const vertSrc = `
#version 410 core
layout(location = 0) in vec2 inPosition;
layout(location = 1) in vec2 inUV;

out vec2 fragUV;

void main() {
    gl_Position = vec4(inPosition, 0.0, 1.0);
    fragUV = inUV;
}
` + "\x00"

const fragSrc = `
#version 410 core
in vec2 fragUV;
out vec4 outColor;

uniform sampler2D image;

void main() {
    outColor = texture(image, fragUV);
}
` + "\x00"

// quad is a fullscreen NDC quad (two triangles) with a V-flipped UV, since
// the film's pixel row 0 is the top of the image but texture row 0 is
// conventionally the bottom.
var quadVertices = []float32{
	// x, y, u, v
	-1, -1, 0, 1,
	1, -1, 1, 1,
	1, 1, 1, 0,
	-1, -1, 0, 1,
	1, 1, 1, 0,
	-1, 1, 0, 0,
}

func main() {
	width := flag.Int("width", 320, "image width in pixels")
	height := flag.Int("height", 240, "image height in pixels")
	filterName := flag.String("filter", "gaussian", "reconstruction filter: box, gaussian, mitchell")
	angleX := flag.Float64("angle-x", 0.04258603374866164, "camera orbit angle around X, radians")
	angleY := flag.Float64("angle-y", 0, "camera orbit angle around Y, radians")
	dist := flag.Float64("dist", 5.5, "camera distance from the focus point")
	samplesPerFrame := flag.Int("samples-per-frame", 1, "refine() samples run between each displayed frame")
	workers := flag.Int("workers", 0, "parallel worker count (0 = runtime.NumCPU())")
	flag.Parse()

	filterKind, err := parseFilter(*filterName)
	if err != nil {
		log.Fatalf("view: %v", err)
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("view: glfw init: %v", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(*width, *height, "tracy", nil, nil)
	if err != nil {
		log.Fatalf("view: create window: %v", err)
	}
	window.MakeContextCurrent()
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	if err := gl.Init(); err != nil {
		log.Fatalf("view: gl init: %v", err)
	}

	program, err := newProgram(vertSrc, fragSrc)
	if err != nil {
		log.Fatalf("view: shader program: %v", err)
	}
	gl.UseProgram(program)
	gl.Uniform1i(gl.GetUniformLocation(program, gl.Str("image\x00")), 0)

	vao, _ := newQuad()

	tex := newTexture(*width, *height)

	engine := render.NewEngine(render.DefaultLogger{}, *workers)
	focus := core.NewVec3(0, 1.25, 0)
	if err := engine.Init(*width, *height, filterKind, *angleX, *angleY, *dist, focus); err != nil {
		log.Fatalf("view: init: %v", err)
	}

	gl.Viewport(0, 0, int32(*width), int32(*height))

	for !window.ShouldClose() {
		if err := engine.Refine(*samplesPerFrame); err != nil {
			log.Fatalf("view: refine: %v", err)
		}
		pixels := engine.ReadLDR()

		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, tex)
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(*width), int32(*height),
			gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))

		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.BindVertexArray(vao)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)

		window.SwapBuffers()
		glfw.PollEvents()
	}
}

func parseFilter(name string) (render.FilterKind, error) {
	switch name {
	case "box":
		return render.Box, nil
	case "gaussian":
		return render.Gaussian, nil
	case "mitchell":
		return render.Mitchell, nil
	default:
		return 0, fmt.Errorf("unknown filter %q (want box, gaussian, or mitchell)", name)
	}
}

// newProgram compiles and links a vertex+fragment shader pair, grounded in
// the same compile-check-link shape as the teacher's opengl renderer.
func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vs, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("link program: %s", log)
	}

	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return program, nil
}

func compileShader(src string, kind uint32) (uint32, error) {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		return 0, fmt.Errorf("compile shader: %s", log)
	}
	return shader, nil
}

// newQuad uploads the fullscreen quad's vertex data and returns its VAO.
func newQuad() (vao, vbo uint32) {
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)

	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	const stride = 4 * 4
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(2*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return vao, vbo
}

// newTexture allocates an empty RGBA texture of the engine's dimensions,
// re-filled every frame via TexSubImage2D rather than reallocated.
func newTexture(width, height int) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

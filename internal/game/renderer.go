package game

import (
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws the world snapshot: particles as point sprites in two
// passes (alpha debris, additive water/glow), rocks and jellies either as
// procedural sprites or as provider bitmaps once those arrive.
type Renderer struct {
	pointProg uint32
	pointVAO  uint32
	pointVBO  uint32
	ptURes    int32

	quadProg uint32
	quadVAO  uint32
	quadVBO  uint32
	qURes    int32
	qUCenter int32
	qUSize   int32
	qURot    int32
	qUTint   int32
	qUTex    int32

	fbW, fbH int
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{}

	var err error
	if r.pointProg, err = linkProgram(pointVertSrc, pointFragSrc); err != nil {
		return nil, err
	}
	gl.GenVertexArrays(1, &r.pointVAO)
	gl.GenBuffers(1, &r.pointVBO)
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	// Layout: x, y, size, r, g, b, a.
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 28, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, 28, glOffset(8))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, 28, glOffset(12))
	r.ptURes = gl.GetUniformLocation(r.pointProg, gl.Str("uResolution\x00"))

	if r.quadProg, err = linkProgram(quadVertSrc, quadFragSrc); err != nil {
		return nil, err
	}
	gl.GenVertexArrays(1, &r.quadVAO)
	gl.GenBuffers(1, &r.quadVBO)
	gl.BindVertexArray(r.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.quadVBO)
	quad := []float32{0, 0, 1, 0, 0, 1, 1, 0, 1, 1, 0, 1}
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 8, glOffset(0))
	r.qURes = gl.GetUniformLocation(r.quadProg, gl.Str("uResolution\x00"))
	r.qUCenter = gl.GetUniformLocation(r.quadProg, gl.Str("uCenter\x00"))
	r.qUSize = gl.GetUniformLocation(r.quadProg, gl.Str("uSize\x00"))
	r.qURot = gl.GetUniformLocation(r.quadProg, gl.Str("uRotation\x00"))
	r.qUTint = gl.GetUniformLocation(r.quadProg, gl.Str("uTint\x00"))
	r.qUTex = gl.GetUniformLocation(r.quadProg, gl.Str("uTex\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	gl.DeleteProgram(r.pointProg)
	gl.DeleteProgram(r.quadProg)
	gl.DeleteVertexArrays(1, &r.pointVAO)
	gl.DeleteVertexArrays(1, &r.quadVAO)
	gl.DeleteBuffers(1, &r.pointVBO)
	gl.DeleteBuffers(1, &r.quadVBO)
}

func (r *Renderer) BeginFrame(fbW, fbH int) {
	r.fbW, r.fbH = fbW, fbH
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.ClearColor(0.02, 0.05, 0.10, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Enable(gl.BLEND)
}

// DrawPoints streams a [x, y, size, r, g, b, a] buffer as point sprites.
func (r *Renderer) DrawPoints(buf []float32, additive bool) {
	if len(buf) == 0 {
		return
	}
	if additive {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
	gl.UseProgram(r.pointProg)
	gl.Uniform2f(r.ptURes, float32(r.fbW), float32(r.fbH))
	gl.BindVertexArray(r.pointVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.pointVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(buf)*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(len(buf)/7))
	gl.BindVertexArray(0)
}

// DrawQuad draws one textured, rotated quad centred at (x, y).
func (r *Renderer) DrawQuad(tex uint32, x, y, w, h, rot float64, tint [4]float32) {
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.UseProgram(r.quadProg)
	gl.Uniform2f(r.qURes, float32(r.fbW), float32(r.fbH))
	gl.Uniform2f(r.qUCenter, float32(x), float32(y))
	gl.Uniform2f(r.qUSize, float32(w), float32(h))
	gl.Uniform1f(r.qURot, float32(rot))
	gl.Uniform4f(r.qUTint, tint[0], tint[1], tint[2], tint[3])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.Uniform1i(r.qUTex, 0)
	gl.BindVertexArray(r.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// UploadTexture creates a GL texture from a provider bitmap.
func (r *Renderer) UploadTexture(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	b := img.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return tex
}

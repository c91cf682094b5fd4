// pkg/render/point_renderer.go
package render

import (
	"image"
	"image/color"

	"particle-backdrop/internal/config"
	"particle-backdrop/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

// uint16 indices cap a batch at 65536 vertices, four per point.
const maxBatchPoints = 16000

// PointRenderer draws the scene's point clouds into an offscreen frame, one
// screen-aligned quad per point, sized by distance like perspective sprites.
type PointRenderer struct {
	frame   *ebiten.Image
	fillImg *ebiten.Image
	vp      scene.Viewport
	vs      []ebiten.Vertex
	is      []uint16
}

func NewPointRenderer() *PointRenderer {
	fillImg := ebiten.NewImage(3, 3)
	fillImg.Fill(color.White)
	return &PointRenderer{
		fillImg: fillImg.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vs:      make([]ebiten.Vertex, 0, maxBatchPoints*4),
		is:      make([]uint16, 0, maxBatchPoints*6),
	}
}

// Resize reallocates the frame for the new surface size.
func (r *PointRenderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if r.frame != nil {
		b := r.frame.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		r.frame.Deallocate()
	}
	r.frame = ebiten.NewImage(width, height)
	r.vp = scene.Viewport{Width: float64(width), Height: float64(height)}
}

// Frame returns the last rendered frame, or nil before the first Resize.
func (r *PointRenderer) Frame() *ebiten.Image {
	return r.frame
}

func (r *PointRenderer) Render(sc *scene.Scene, cam *scene.Camera) {
	if r.frame == nil {
		return
	}
	r.frame.Clear()
	for _, p := range sc.Objects() {
		if p.Disposed() || p.Opacity <= 0 {
			continue
		}
		r.drawPoints(p, cam)
	}
}

func (r *PointRenderer) drawPoints(p *scene.Points, cam *scene.Camera) {
	m := p.Matrix()
	cr, cg, cb, ca := VertexColor(p.Color, p.Opacity)
	scale := p.Size * cam.PointScale(r.vp)

	op := &ebiten.DrawTrianglesOptions{}
	if p.Blend == scene.BlendAdditive {
		op.Blend = ebiten.BlendLighter
	}

	r.vs, r.is = r.vs[:0], r.is[:0]
	for _, local := range p.Positions {
		sx, sy, depth, ok := cam.Project(m.MulVec(local), r.vp)
		if !ok {
			continue
		}
		half := float32(max(scale/depth, config.MinPointPixels) / 2)
		r.appendQuad(float32(sx), float32(sy), half, cr, cg, cb, ca)
		if len(r.vs) >= maxBatchPoints*4 {
			r.frame.DrawTriangles(r.vs, r.is, r.fillImg, op)
			r.vs, r.is = r.vs[:0], r.is[:0]
		}
	}
	if len(r.vs) > 0 {
		r.frame.DrawTriangles(r.vs, r.is, r.fillImg, op)
	}
}

func (r *PointRenderer) appendQuad(x, y, half, cr, cg, cb, ca float32) {
	base := uint16(len(r.vs))
	corners := [4][2]float32{{-half, -half}, {half, -half}, {-half, half}, {half, half}}
	for _, c := range corners {
		r.vs = append(r.vs, ebiten.Vertex{
			DstX:   x + c[0],
			DstY:   y + c[1],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	r.is = append(r.is, base, base+1, base+2, base+1, base+3, base+2)
}

package raster

import (
	"runtime"
	"sync"
)

// Boxes with fewer candidate pixels than this are scanned on the calling
// goroutine.
const parallelMinPixels = 4096

// Vertex is a projected screen-space vertex. Z is the depth sample, expected
// in [0,255].
type Vertex struct {
	X, Y, Z int
}

// Triangle is an ordered vertex triple A, B, C. The order is the winding.
type Triangle [3]Vertex

// BBox is an axis-aligned pixel rectangle, inclusive on both corners.
type BBox struct {
	MinX, MinY, MaxX, MaxY int
}

// Contains reports whether (x, y) lies inside the box.
func (b BBox) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// Weights are the barycentric coordinates of a pixel.
type Weights struct {
	Alpha, Beta, Gamma float64
}

// Covered reports whether the pixel lies inside the triangle or on its edge.
func (w Weights) Covered() bool {
	return w.Alpha >= 0 && w.Beta >= 0 && w.Gamma >= 0
}

// Interpolate blends one per-vertex attribute.
func (w Weights) Interpolate(a, b, c float64) float64 {
	return w.Alpha*a + w.Beta*b + w.Gamma*c
}

// SignedArea returns the signed area of the triangle (a, b, c) with the
// trapezoid formula. Counter-clockwise winding is positive.
func SignedArea(ax, ay, bx, by, cx, cy int) float64 {
	return .5 * float64((by-ay)*(bx+ax)+(cy-by)*(cx+bx)+(ay-cy)*(ax+cx))
}

// BBox returns the bounding box of the three vertices.
func (t Triangle) BBox() BBox {
	a, b, c := t[0], t[1], t[2]
	return BBox{
		MinX: min(a.X, b.X, c.X),
		MinY: min(a.Y, b.Y, c.Y),
		MaxX: max(a.X, b.X, c.X),
		MaxY: max(a.Y, b.Y, c.Y),
	}
}

// Area returns the signed area of the triangle in its given order.
func (t Triangle) Area() float64 {
	return SignedArea(t[0].X, t[0].Y, t[1].X, t[1].Y, t[2].X, t[2].Y)
}

// Discarded reports whether the triangle produces no pixels at all: back
// facing, degenerate, or smaller than one pixel. All three cases are the
// single test area < 1.
func (t Triangle) Discarded() bool {
	return t.Area() < 1
}

// Weights returns the barycentric coordinates of (x, y). total must be
// t.Area().
func (t Triangle) Weights(x, y int, total float64) Weights {
	a, b, c := t[0], t[1], t[2]
	return Weights{
		Alpha: SignedArea(x, y, b.X, b.Y, c.X, c.Y) / total,
		Beta:  SignedArea(x, y, c.X, c.Y, a.X, a.Y) / total,
		Gamma: SignedArea(x, y, a.X, a.Y, b.X, b.Y) / total,
	}
}

// Rasterizer fills triangles into pixel buffers. Columns of a triangle's
// bounding box are split across Workers goroutines; each pixel is owned by
// exactly one of them. Calls must not overlap when they write the same
// buffers.
type Rasterizer struct {
	Workers int
}

// NewRasterizer returns a rasterizer using the given number of workers.
// workers <= 0 means runtime.NumCPU().
func NewRasterizer(workers int) *Rasterizer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Rasterizer{Workers: workers}
}

// scan calls fn for every covered pixel of t. It returns once all pixels have
// been visited.
func (r *Rasterizer) scan(t Triangle, fn func(x, y int, w Weights)) {
	box := t.BBox()
	total := t.Area()
	if total < 1 {
		return
	}

	columns := func(x0, x1 int) {
		for x := x0; x <= x1; x++ {
			for y := box.MinY; y <= box.MaxY; y++ {
				w := t.Weights(x, y, total)
				if !w.Covered() {
					continue
				}
				fn(x, y, w)
			}
		}
	}

	cols := box.MaxX - box.MinX + 1
	rows := box.MaxY - box.MinY + 1
	workers := r.Workers
	if workers > cols {
		workers = cols
	}
	if workers <= 1 || cols*rows < parallelMinPixels {
		columns(box.MinX, box.MaxX)
		return
	}

	chunk := (cols + workers - 1) / workers
	var wg sync.WaitGroup
	for x0 := box.MinX; x0 <= box.MaxX; x0 += chunk {
		x1 := min(x0+chunk-1, box.MaxX)
		wg.Add(1)
		go func() {
			defer wg.Done()
			columns(x0, x1)
		}()
	}
	wg.Wait()
}

// Fill writes c to every covered pixel of t.
func (r *Rasterizer) Fill(fb *Image, t Triangle, c Color) {
	c[Alpha] = 255
	r.scan(t, func(x, y int, _ Weights) {
		fb.Set(x, y, c)
	})
}

// Gouraud writes every covered pixel of t with the vertex colors blended
// channel by channel.
func (r *Rasterizer) Gouraud(fb *Image, t Triangle, colors [3]Color) {
	r.scan(t, func(x, y int, w Weights) {
		fb.Set(x, y, blend(w, colors))
	})
}

// FillDepth writes c to the covered pixels of t whose interpolated depth is
// strictly greater than the value already in zbuf. zbuf stores depth in its
// blue channel and is updated alongside fb.
func (r *Rasterizer) FillDepth(zbuf, fb *Image, t Triangle, c Color) {
	c[Alpha] = 255
	r.scan(t, func(x, y int, w Weights) {
		z := depth(w, t)
		if z <= zbuf.Get(x, y)[Blue] {
			return
		}
		zbuf.Set(x, y, Gray(z))
		fb.Set(x, y, c)
	})
}

// GouraudDepth is FillDepth with per-vertex colors.
func (r *Rasterizer) GouraudDepth(zbuf, fb *Image, t Triangle, colors [3]Color) {
	r.scan(t, func(x, y int, w Weights) {
		z := depth(w, t)
		if z <= zbuf.Get(x, y)[Blue] {
			return
		}
		zbuf.Set(x, y, Gray(z))
		fb.Set(x, y, blend(w, colors))
	})
}

func depth(w Weights, t Triangle) uint8 {
	return trunc8(w.Interpolate(float64(t[0].Z), float64(t[1].Z), float64(t[2].Z)))
}

func blend(w Weights, colors [3]Color) Color {
	var out Color
	for ch := Blue; ch <= Red; ch++ {
		out[ch] = trunc8(w.Interpolate(float64(colors[0][ch]), float64(colors[1][ch]), float64(colors[2][ch])))
	}
	out[Alpha] = 255
	return out
}

// trunc8 truncates toward zero after saturating to [0,255].
func trunc8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

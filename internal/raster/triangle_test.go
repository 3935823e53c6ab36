package raster

import (
	"math"
	"testing"
)

func TestSignedArea(t *testing.T) {
	tests := []struct {
		name                   string
		ax, ay, bx, by, cx, cy int
		want                   float64
	}{
		{"ccw unit square half", 0, 0, 10, 0, 0, 10, 50},
		{"cw", 0, 0, 0, 10, 10, 0, -50},
		{"collinear", 0, 0, 5, 5, 10, 10, 0},
		{"half pixel", 0, 0, 1, 0, 0, 1, 0.5},
		{"offset", 17, 4, 620, 20, 90, 559, 166748.5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SignedArea(tc.ax, tc.ay, tc.bx, tc.by, tc.cx, tc.cy)
			if got != tc.want {
				t.Errorf("SignedArea = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBBox(t *testing.T) {
	tri := Triangle{{X: 5, Y: 9}, {X: -2, Y: 3}, {X: 7, Y: 1}}
	want := BBox{MinX: -2, MinY: 1, MaxX: 7, MaxY: 9}
	if got := tri.BBox(); got != want {
		t.Errorf("BBox = %+v, want %+v", got, want)
	}
	if !want.Contains(7, 9) || !want.Contains(-2, 1) {
		t.Error("box corners must be inclusive")
	}
	if want.Contains(8, 5) {
		t.Error("Contains(8, 5) = true")
	}
}

func TestDiscarded(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
		want bool
	}{
		{"front facing", Triangle{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}, false},
		{"back facing", Triangle{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 0}}, true},
		{"collinear", Triangle{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 10}}, true},
		{"area one half", Triangle{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}, true},
		{"area exactly one", Triangle{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}}, false},
		{"tiny back facing", Triangle{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tri.Discarded(); got != tc.want {
				t.Errorf("Discarded() = %v, want %v (area %v)", got, tc.want, tc.tri.Area())
			}
		})
	}
}

func TestWeightsPartitionOfUnity(t *testing.T) {
	tris := []Triangle{
		{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}},
		{{X: 17, Y: 4}, {X: 620, Y: 20}, {X: 90, Y: 559}},
		{{X: -30, Y: 12}, {X: 41, Y: -7}, {X: 3, Y: 88}},
	}
	for _, tri := range tris {
		total := tri.Area()
		box := tri.BBox()
		for x := box.MinX; x <= box.MaxX; x += 3 {
			for y := box.MinY; y <= box.MaxY; y += 3 {
				w := tri.Weights(x, y, total)
				if sum := w.Alpha + w.Beta + w.Gamma; math.Abs(sum-1) > 1e-9 {
					t.Fatalf("%v: weights at (%d,%d) sum to %v", tri, x, y, sum)
				}
			}
		}
	}
}

func TestWeightsCoverage(t *testing.T) {
	tri := Triangle{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	total := tri.Area()

	inside := [][2]int{{1, 1}, {2, 2}, {4, 4}, {1, 7}, {7, 1}}
	for _, p := range inside {
		if w := tri.Weights(p[0], p[1], total); !w.Covered() {
			t.Errorf("(%d,%d) should be covered, weights %+v", p[0], p[1], w)
		}
	}
	outside := [][2]int{{8, 8}, {6, 5}, {10, 10}, {-1, 3}, {3, -1}}
	for _, p := range outside {
		if w := tri.Weights(p[0], p[1], total); w.Covered() {
			t.Errorf("(%d,%d) should not be covered, weights %+v", p[0], p[1], w)
		}
	}
}

func TestWeightsAtVertices(t *testing.T) {
	tri := Triangle{{X: 17, Y: 4}, {X: 620, Y: 20}, {X: 90, Y: 559}}
	total := tri.Area()
	want := []Weights{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i, v := range tri {
		if got := tri.Weights(v.X, v.Y, total); got != want[i] {
			t.Errorf("Weights at vertex %d = %+v, want %+v", i, got, want[i])
		}
	}
}

func TestGouraudVertexColors(t *testing.T) {
	tri := Triangle{{X: 2, Y: 2}, {X: 60, Y: 5}, {X: 10, Y: 50}}
	colors := [3]Color{RGB(255, 0, 0), RGB(0, 255, 0), RGB(0, 0, 255)}
	fb := NewImage(64, 64)
	NewRasterizer(1).Gouraud(fb, tri, colors)

	for i, v := range tri {
		if got := fb.Get(v.X, v.Y); got != colors[i] {
			t.Errorf("pixel at vertex %d = %v, want %v", i, got, colors[i])
		}
	}
}

func TestDiscardedWritesNothing(t *testing.T) {
	bg := RGB(1, 2, 3)
	tris := []Triangle{
		{{X: 0, Y: 0}, {X: 5, Y: 5, Z: 100}, {X: 10, Y: 10}},
		{{X: 0, Y: 0}, {X: 0, Y: 10, Z: 100}, {X: 10, Y: 0}},
		{{X: 3, Y: 3, Z: 200}, {X: 4, Y: 3, Z: 200}, {X: 3, Y: 4, Z: 200}},
	}
	r := NewRasterizer(4)
	for _, tri := range tris {
		fb := NewImage(16, 16)
		fb.Fill(bg)
		zbuf := NewImage(16, 16)
		r.Fill(fb, tri, RGB(255, 255, 255))
		r.Gouraud(fb, tri, [3]Color{RGB(9, 9, 9), RGB(9, 9, 9), RGB(9, 9, 9)})
		r.FillDepth(zbuf, fb, tri, RGB(255, 255, 255))
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				if fb.Get(x, y) != bg || zbuf.Get(x, y) != (Color{}) {
					t.Fatalf("%v: pixel (%d,%d) was written", tri, x, y)
				}
			}
		}
	}
}

func TestWritesStayInBBox(t *testing.T) {
	bg := RGB(10, 20, 30)
	tri := Triangle{{X: 5, Y: 7}, {X: 90, Y: 20}, {X: 30, Y: 80}}
	box := tri.BBox()
	fb := NewImage(100, 100)
	fb.Fill(bg)
	NewRasterizer(3).Fill(fb, tri, RGB(200, 0, 0))

	written := 0
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if fb.Get(x, y) == bg {
				continue
			}
			written++
			if !box.Contains(x, y) {
				t.Fatalf("pixel (%d,%d) written outside %+v", x, y, box)
			}
		}
	}
	if written == 0 {
		t.Fatal("no pixels written")
	}
}

func TestFillDepthOcclusion(t *testing.T) {
	verts := func(z int) Triangle {
		return Triangle{{X: 4, Y: 4, Z: z}, {X: 60, Y: 8, Z: z}, {X: 10, Y: 58, Z: z}}
	}
	near, far, nearer := RGB(255, 0, 0), RGB(0, 0, 255), RGB(0, 255, 0)

	fb := NewImage(64, 64)
	zbuf := NewImage(64, 64)
	r := NewRasterizer(2)
	r.FillDepth(zbuf, fb, verts(200), near)

	snapshot := NewImage(64, 64)
	copy(snapshot.pix, fb.pix)
	zsnap := NewImage(64, 64)
	copy(zsnap.pix, zbuf.pix)

	r.FillDepth(zbuf, fb, verts(100), far)
	r.FillDepth(zbuf, fb, verts(200), far)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if fb.Get(x, y) != snapshot.Get(x, y) || zbuf.Get(x, y) != zsnap.Get(x, y) {
				t.Fatalf("pixel (%d,%d) changed by a triangle that is not nearer", x, y)
			}
		}
	}

	r.FillDepth(zbuf, fb, verts(250), nearer)
	covered := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if snapshot.Get(x, y) != near {
				continue
			}
			covered++
			if got := fb.Get(x, y); got != nearer {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, nearer)
			}
			// A constant depth may truncate one step down.
			if got := zbuf.Get(x, y)[Blue]; got != 250 && got != 249 {
				t.Fatalf("depth (%d,%d) = %d, want 250", x, y, got)
			}
		}
	}
	if covered == 0 {
		t.Fatal("first triangle drew nothing")
	}
}

func TestFillDepthInterpolatesDepth(t *testing.T) {
	tri := Triangle{{X: 0, Y: 0, Z: 0}, {X: 100, Y: 0, Z: 200}, {X: 0, Y: 100, Z: 0}}
	fb := NewImage(101, 101)
	zbuf := NewImage(101, 101)
	NewRasterizer(1).FillDepth(zbuf, fb, tri, RGB(1, 1, 1))

	// z grows with x: 2 per column, truncated.
	for _, x := range []int{1, 10, 50, 99} {
		if got, want := zbuf.Get(x, 0)[Blue], uint8(2*x); got != want {
			t.Errorf("depth at x=%d is %d, want %d", x, got, want)
		}
	}
	// z == 0 never beats an empty depth buffer.
	if got := fb.Get(0, 50); got != (Color{}) {
		t.Errorf("zero-depth pixel written: %v", got)
	}
}

func TestFillForcesOpaque(t *testing.T) {
	tri := Triangle{{X: 0, Y: 0, Z: 50}, {X: 20, Y: 0, Z: 50}, {X: 0, Y: 20, Z: 50}}
	fb := NewImage(21, 21)
	zbuf := NewImage(21, 21)
	r := NewRasterizer(1)
	r.Fill(fb, tri, Color{1, 2, 3, 0})
	if got := fb.Get(2, 2); got != (Color{1, 2, 3, 255}) {
		t.Errorf("Fill pixel = %v", got)
	}
	r.FillDepth(zbuf, fb, tri, Color{4, 5, 6, 7})
	if got := fb.Get(2, 2); got != (Color{4, 5, 6, 255}) {
		t.Errorf("FillDepth pixel = %v", got)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	tris := []Triangle{
		{{X: 17, Y: 4, Z: 13}, {X: 620, Y: 20, Z: 128}, {X: 90, Y: 559, Z: 255}},
		{{X: 0, Y: 600, Z: 255}, {X: 300, Y: 10, Z: 40}, {X: 630, Y: 630, Z: 90}},
	}
	colors := [3]Color{RGB(255, 0, 0), RGB(0, 255, 0), RGB(0, 0, 255)}

	render := func(workers int) (*Image, *Image) {
		r := NewRasterizer(workers)
		fb, zbuf := NewImage(640, 640), NewImage(640, 640)
		for _, tri := range tris {
			r.GouraudDepth(zbuf, fb, tri, colors)
		}
		return fb, zbuf
	}

	fb1, z1 := render(1)
	for _, workers := range []int{2, 7, 16} {
		fbN, zN := render(workers)
		if string(fb1.pix) != string(fbN.pix) || string(z1.pix) != string(zN.pix) {
			t.Errorf("%d workers differ from serial result", workers)
		}
	}
}

func TestGouraudPrimaries(t *testing.T) {
	fb := NewImage(640, 640)
	black := RGB(0, 0, 0)
	fb.Fill(black)

	tri := Triangle{{X: 17, Y: 4}, {X: 620, Y: 20}, {X: 90, Y: 559}}
	NewRasterizer(0).Gouraud(fb, tri, [3]Color{RGB(255, 0, 0), RGB(0, 255, 0), RGB(0, 0, 255)})

	// (90,20) has weights ≈ (0.857, 0.118, 0.025).
	c := fb.Get(90, 20)
	if c[Red] != 218 || c[Green] != 30 || c[Blue] != 6 {
		t.Errorf("pixel (90,20) = %v", c)
	}

	c = fb.Get(200, 200)
	if c[Red] == 0 || c[Green] == 0 || c[Blue] == 0 {
		t.Errorf("interior pixel (200,200) = %v, want all channels set", c)
	}

	// Just right of edge BC.
	if got := fb.Get(350, 300); got != black {
		t.Errorf("pixel (350,300) outside the triangle = %v", got)
	}
	if got := fb.Get(0, 0); got != black {
		t.Errorf("pixel (0,0) = %v, want background", got)
	}
}

func BenchmarkFillDepth(b *testing.B) {
	tri := Triangle{{X: 17, Y: 4, Z: 13}, {X: 620, Y: 20, Z: 128}, {X: 90, Y: 559, Z: 255}}
	fb, zbuf := NewImage(640, 640), NewImage(640, 640)
	r := NewRasterizer(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		zbuf.Fill(Color{})
		r.FillDepth(zbuf, fb, tri, RGB(200, 100, 50))
	}
}

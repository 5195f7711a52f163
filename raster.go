// seehuhn.de/go/coverage - 2D geometry and coverage rasterization
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package coverage

import (
	"cmp"
	"image"
	"log/slog"
	"math"
	"slices"
	"sync"

	"github.com/chewxy/math32"

	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/bezier"
	"seehuhn.de/go/coverage/geomerr"
	"seehuhn.de/go/coverage/outline"
)

// edge represents a line segment in device coordinates.
type edge struct {
	x0, y0 float64 // upper end point
	x1, y1 float64 // lower end point, y1 > y0
	dxdy   float64 // (x1-x0)/(y1-y0), precomputed for x-intercept calculation
	dir    float32 // +1 if the segment pointed downwards, -1 otherwise
}

// Rasterizer converts paths to pixel coverage values, the fraction of each
// pixel's area covered by the filled path. Create one instance and reuse
// it for multiple paths. Internal buffers grow as needed but never shrink.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// Logger receives diagnostic messages. If nil, nothing is logged.
	Logger *slog.Logger

	// Workers is the number of goroutines used by Rasterize. Values
	// below 2 mean that all rows are processed on the calling goroutine.
	// The result does not depend on the number of workers.
	Workers int

	edges  []edge         // edge list for the current call (device coordinates)
	pts    []affine.Point // scratch space for curve flattening
	bands  []*band        // per-worker sweep state
	capped int            // number of curves which hit the subdivision limit
	steep  int            // number of edges whose slope is not representable

	// Edge collection state (used by collectEdges/addEdge)
	clip          image.Rectangle
	edgeBBoxFirst bool // true if no edges added yet
	edgeDevXMin   float64
	edgeDevXMax   float64
	edgeDevYMin   float64
	edgeDevYMax   float64
}

// band holds the sweep state for one range of rows.
type band struct {
	cover  []float32 // cover change per pixel; reused as output
	area   []float32 // area within pixel
	active []int     // indices of active edges, in increasing order
}

// NewRasterizer returns a Rasterizer which uses a single goroutine.
func NewRasterizer() *Rasterizer {
	return &Rasterizer{Workers: 1}
}

func (r *Rasterizer) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return r.Logger
}

// Rasterize fills paths into buf, using the given fill rule.
//
// The paths are first mapped to device space using m. Curves are then
// approximated by polylines which deviate from the transformed curves by at
// most tol pixels. All paths together form a single fill region, and open
// subpaths are closed implicitly.
//
// Each row which is crossed by the fill region is overwritten between the
// first and last pixel of non-zero coverage. All other pixels keep their
// value. If an error is returned, buf is unchanged.
func (r *Rasterizer) Rasterize(paths []*outline.Path, m affine.Matrix, rule FillRule, tol float64, buf *Buffer) error {
	const op = "coverage.Rasterize"
	if err := rule.check(op); err != nil {
		return err
	}
	if err := buf.check(op); err != nil {
		return err
	}
	if err := checkMatrix(op, m); err != nil {
		return err
	}
	if err := bezier.CheckTolerance(op, tol); err != nil {
		return err
	}

	xMin, xMax, yMin, yMax, ok, err := r.collectEdges(op, paths, m, tol, buf.Bounds())
	if err != nil || !ok {
		return err
	}
	r.sortEdges()

	width := buf.Width
	write := func(y, x int, coverage []float32) {
		copy(buf.Pix[y*width+x:], coverage)
	}

	rows := yMax - yMin
	n := max(min(r.Workers, rows), 1)
	r.logger().Debug("rasterize",
		"edges", len(r.edges),
		"rows", rows,
		"cols", xMax-xMin,
		"bands", n)

	if n == 1 {
		r.band(0).sweep(r.edges, rule, xMin, xMax, yMin, yMax, write)
		return nil
	}

	var wg sync.WaitGroup
	wg.Add(n)
	for i := range n {
		b := r.band(i)
		y0 := yMin + rows*i/n
		y1 := yMin + rows*(i+1)/n
		go func() {
			defer wg.Done()
			b.sweep(r.edges, rule, xMin, xMax, y0, y1, write)
		}()
	}
	wg.Wait()
	return nil
}

// Fill computes the coverage of the given paths within the clip rectangle
// and delivers it row by row. The emit callback receives only the
// non-zero portion of each row; its slice argument is valid only during
// the call. Rows are emitted in increasing order, on the calling goroutine.
//
// The parameters have the same meaning as for [Rasterizer.Rasterize].
func (r *Rasterizer) Fill(paths []*outline.Path, m affine.Matrix, rule FillRule, tol float64, clip image.Rectangle, emit func(y, xMin int, coverage []float32)) error {
	const op = "coverage.Rasterizer.Fill"
	if err := rule.check(op); err != nil {
		return err
	}
	if err := checkMatrix(op, m); err != nil {
		return err
	}
	if err := bezier.CheckTolerance(op, tol); err != nil {
		return err
	}

	xMin, xMax, yMin, yMax, ok, err := r.collectEdges(op, paths, m, tol, clip)
	if err != nil || !ok {
		return err
	}
	r.sortEdges()

	r.logger().Debug("fill",
		"edges", len(r.edges),
		"rows", yMax-yMin,
		"cols", xMax-xMin)

	r.band(0).sweep(r.edges, rule, xMin, xMax, yMin, yMax, emit)
	return nil
}

func checkMatrix(op string, m affine.Matrix) error {
	if !m.IsFinite() {
		return geomerr.New(op, geomerr.InvalidGeometry,
			"non-finite transformation %v", [6]float64(m))
	}
	if !m.IsInvertible() {
		return geomerr.New(op, geomerr.DegenerateMatrix,
			"determinant %g", m.Det())
	}
	return nil
}

func (r *Rasterizer) band(i int) *band {
	for len(r.bands) <= i {
		r.bands = append(r.bands, &band{})
	}
	return r.bands[i]
}

// collectEdges walks the paths, transforms them to device space, and builds
// the edge list. Returns the bounding box of all edges in device coordinates
// (clamped to clip). ok is false if no pixel can be covered.
func (r *Rasterizer) collectEdges(op string, paths []*outline.Path, m affine.Matrix, tol float64, clip image.Rectangle) (xMin, xMax, yMin, yMax int, ok bool, err error) {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
	r.capped = 0
	r.steep = 0
	r.clip = clip

	for i, p := range paths {
		// Path state (device space)
		var current, start affine.Point
		open := false

		for s := range p.Segments() {
			var pts [3]affine.Point
			for j := range s.Op.NumPoints() {
				pts[j] = m.Apply(s.Pts[j])
				if !pts[j].IsFinite() {
					return 0, 0, 0, 0, false, geomerr.New(op, geomerr.InvalidGeometry,
						"path %d: non-finite coordinate in %s segment", i, s.Op)
				}
			}

			switch s.Op {
			case outline.MoveTo:
				if open {
					r.addEdge(current, start)
				}
				start = pts[0]
				current = start
				open = true

			case outline.LineTo:
				r.addEdge(current, pts[0])
				current = pts[0]

			case outline.QuadTo:
				r.addQuadratic(bezier.Quadratic{P0: current, P1: pts[0], P2: pts[1]}, tol)
				current = pts[1]

			case outline.CubicTo:
				r.addCubic(bezier.Cubic{P0: current, P1: pts[0], P2: pts[1], P3: pts[2]}, tol)
				current = pts[2]

			case outline.Close:
				r.addEdge(current, start)
				current = start
				open = false
			}
		}
		if open {
			r.addEdge(current, start)
		}
	}

	if r.steep > 0 {
		return 0, 0, 0, 0, false, geomerr.New(op, geomerr.InvalidGeometry,
			"%d edges with overflowing slope", r.steep)
	}

	if r.capped > 0 {
		r.logger().Warn("curve flattening reached the subdivision limit",
			"curves", r.capped,
			"maxDepth", bezier.MaxDepth,
			"tolerance", tol)
	}

	if len(r.edges) == 0 || clip.Empty() {
		return 0, 0, 0, 0, false, nil
	}

	// Clamp to clip bounds and convert to integers
	xMin = clampFloor(r.edgeDevXMin, clip.Min.X, clip.Max.X)
	xMax = clampFloor(r.edgeDevXMax+1, clip.Min.X, clip.Max.X)
	yMin = clampFloor(r.edgeDevYMin, clip.Min.Y, clip.Max.Y)
	yMax = clampFloor(r.edgeDevYMax+1, clip.Min.Y, clip.Max.Y)

	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false, nil
	}
	return xMin, xMax, yMin, yMax, true, nil
}

// clampFloor returns floor(v), limited to the range [lo, hi].
// Clamping happens before the conversion, so that huge coordinates
// cannot overflow. NaN maps to lo.
func clampFloor(v float64, lo, hi int) int {
	if !(v > float64(lo)) {
		return lo
	}
	if v >= float64(hi) {
		return hi
	}
	return int(math.Floor(v))
}

// visible reports whether a curve with the given control point hull can
// affect the coverage inside the clip rectangle in any way other than
// through its end points.
//
// A curve entirely to the left of the clip rectangle contributes the same
// winding to every pixel as its chord, and a curve above, below or to
// the right of it contributes nothing.
func (r *Rasterizer) visible(hull affine.Rect) bool {
	return hull.URy > float64(r.clip.Min.Y) &&
		hull.LLy < float64(r.clip.Max.Y) &&
		hull.LLx < float64(r.clip.Max.X) &&
		hull.URx > float64(r.clip.Min.X)
}

func (r *Rasterizer) addQuadratic(q bezier.Quadratic, tol float64) {
	if !r.visible(q.ControlBounds()) {
		r.addEdge(q.P0, q.P2)
		return
	}
	pts, capped := q.AppendFlatten(r.pts[:0], tol)
	if capped {
		r.capped++
	}
	r.addPolyline(q.P0, pts)
	r.pts = pts
}

func (r *Rasterizer) addCubic(c bezier.Cubic, tol float64) {
	if !r.visible(c.ControlBounds()) {
		r.addEdge(c.P0, c.P3)
		return
	}
	pts, capped := c.AppendFlatten(r.pts[:0], tol)
	if capped {
		r.capped++
	}
	r.addPolyline(c.P0, pts)
	r.pts = pts
}

func (r *Rasterizer) addPolyline(from affine.Point, pts []affine.Point) {
	for _, to := range pts {
		r.addEdge(from, to)
		from = to
	}
}

// addEdge adds an edge in device coordinates.
// Edges whose extent or slope overflows are counted in r.steep and
// dropped; collectEdges turns them into an error.
func (r *Rasterizer) addEdge(p0, p1 affine.Point) {
	// Skip horizontal edges
	dy := p1.Y - p0.Y
	if dy > -horizontalEdgeThreshold && dy < horizontalEdgeThreshold {
		return
	}

	dir := float32(1)
	if dy < 0 {
		p0, p1 = p1, p0
		dy = -dy
		dir = -1
	}

	dxdy := (p1.X - p0.X) / dy
	if math.IsInf(dy, 0) || math.IsInf(dxdy, 0) || math.IsNaN(dxdy) {
		r.steep++
		return
	}

	r.edges = append(r.edges, edge{
		x0: p0.X, y0: p0.Y,
		x1: p1.X, y1: p1.Y,
		dxdy: dxdy,
		dir:  dir,
	})

	// Update bounding box
	if r.edgeBBoxFirst {
		r.edgeDevXMin = min(p0.X, p1.X)
		r.edgeDevXMax = max(p0.X, p1.X)
		r.edgeDevYMin = p0.Y
		r.edgeDevYMax = p1.Y
		r.edgeBBoxFirst = false
	} else {
		r.edgeDevXMin = min(r.edgeDevXMin, p0.X, p1.X)
		r.edgeDevXMax = max(r.edgeDevXMax, p0.X, p1.X)
		r.edgeDevYMin = min(r.edgeDevYMin, p0.Y)
		r.edgeDevYMax = max(r.edgeDevYMax, p1.Y)
	}
}

// sortEdges sorts the edge list by y_min. Edges with equal y_min keep
// their path order.
func (r *Rasterizer) sortEdges() {
	slices.SortStableFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})
}

// sweep rasterizes the rows yMin, ..., yMax-1 using an active edge list.
// xMin and xMax define the horizontal extent of the accumulation buffers.
//
// For every row, the active edges are visited in the order of the sorted
// edge list. This makes the result of each row independent of the rows
// before it.
func (b *band) sweep(edges []edge, rule FillRule, xMin, xMax, yMin, yMax int, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin

	// Ensure 1D buffers are large enough
	b.cover = slices.Grow(b.cover[:0], width)[:width]
	b.area = slices.Grow(b.area[:0], width)[:width]

	b.active = b.active[:0]
	nextEdge := 0

	for y := yMin; y < yMax; y++ {
		yf := float64(y)
		yfNext := float64(y + 1)

		// Add edges that start before the end of this scanline
		for nextEdge < len(edges) && edges[nextEdge].y0 < yfNext {
			b.active = append(b.active, nextEdge)
			nextEdge++
		}

		// Remove edges which end above this scanline, keeping the order
		k := 0
		for _, idx := range b.active {
			if edges[idx].y1 > yf {
				b.active[k] = idx
				k++
			}
		}
		b.active = b.active[:k]
		if k == 0 {
			continue
		}

		// Clear buffers for this scanline
		clear(b.cover)
		clear(b.area)

		for _, idx := range b.active {
			accumulateEdge(&edges[idx], y, b.cover, b.area, xMin, xMax)
		}

		if rule == EvenOdd {
			integrateScanlineEvenOdd(b.cover, b.area)
		} else {
			integrateScanlineNonZero(b.cover, b.area)
		}

		// Emit only the non-zero portion
		if trimmed, offset := trimZeros(b.cover); trimmed != nil {
			emit(y, xMin+offset, trimmed)
		}
	}
}

// Coverage accumulation model:
//
// For each pixel, we track two values:
//   cover: signed vertical extent of edges crossing this pixel column
//   area:  horizontal position weighting (how far right the crossing is)
//
// An edge crossing a pixel contributes:
//   cover = dir * dy   (where dir is +1 for downward, -1 for upward)
//   area  = cover * (1 - xFrac)   (where xFrac is the horizontal position within the pixel)
//
// Final coverage is computed by the integrateScanline functions:
//   pixel_coverage = accumulated_cover + area[i]
//   accumulated_cover += cover[i]   (carry forward for next pixel)
//
// This computes the signed area of the path within each pixel, which gives
// anti-aliased coverage values when clamped to [0,1] (nonzero) or folded (even-odd).
// Since edges are straight, xFrac at the vertical midpoint of a piece is
// its mean position, and the area is exact.

// accumulateEdge adds a single edge's contribution to the cover and area buffers.
// The buffers are indexed by (x - bboxXMin), where bboxXMin/bboxXMax define the buffer range.
// For edges spanning multiple pixels horizontally, this function splits the edge at pixel
// boundaries and computes separate contributions for each pixel crossed.
// Parts of the edge left of the buffer range are folded into the first column.
func accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	// Compute the portion of the edge within this scanline [y, y+1)
	yTop := max(float64(y), e.y0)
	yBot := min(float64(y+1), e.y1)
	if yBot <= yTop {
		return
	}

	// Compute x at the y boundaries of the edge segment within this scanline
	xAtYTop := e.x0 + e.dxdy*(yTop-e.y0)
	xAtYBot := e.x0 + e.dxdy*(yBot-e.y0)

	xLeft, xRight := xAtYTop, xAtYBot
	if xLeft > xRight {
		xLeft, xRight = xRight, xLeft
	}

	// Handle edge entirely to the left of bbox
	if xRight < float64(bboxXMin) {
		coverVal := e.dir * float32(yBot-yTop)
		cover[0] += coverVal
		area[0] += coverVal
		return
	}

	// Handle edge entirely to the right of bbox
	if xLeft >= float64(bboxXMax) {
		return
	}

	pixLeft := clampFloor(xLeft, bboxXMin-1, bboxXMax)
	pixRight := clampFloor(xRight, bboxXMin-1, bboxXMax)

	// For vertical edges or edges within a single pixel column
	if pixLeft == pixRight {
		coverVal := e.dir * float32(yBot-yTop)
		yMid := (yTop + yBot) / 2
		xMid := e.x0 + e.dxdy*(yMid-e.y0)
		xFrac := xMid - float64(pixLeft)

		idx := pixLeft - bboxXMin
		cover[idx] += coverVal
		area[idx] += coverVal * float32(1-xFrac)
		return
	}

	// Edge spans multiple pixels - process each pixel column in x-order.
	// The column bboxXMin-1 stands for everything left of the buffer.
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= min(pixRight, bboxXMax-1); pix++ {
		xa := float64(pix)
		if pix < bboxXMin {
			xa = math.Inf(-1)
		}
		yAtPixLeft := e.y0 + dydx*(xa-e.x0)
		yAtPixRight := e.y0 + dydx*(float64(pix+1)-e.x0)

		// Clamp to edge's y-extent within scanline
		segYMin := max(min(yAtPixLeft, yAtPixRight), yTop)
		segYMax := min(max(yAtPixLeft, yAtPixRight), yBot)

		segDy := segYMax - segYMin
		if !(segDy > 0) {
			continue
		}
		coverVal := e.dir * float32(segDy)

		if pix < bboxXMin {
			cover[0] += coverVal
			area[0] += coverVal
			continue
		}

		// Compute average x within this pixel column
		yMid := (segYMin + segYMax) / 2
		xMid := e.x0 + e.dxdy*(yMid-e.y0)
		xFrac := xMid - float64(pix)

		idx := pix - bboxXMin
		cover[idx] += coverVal
		area[idx] += coverVal * float32(1-xFrac)
	}
}

// integrateScanlineNonZero converts accumulated cover/area to final coverage
// values using the nonzero winding rule. The cover slice is modified in place.
func integrateScanlineNonZero(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]

		// clamp(abs(raw), 0, 1)
		cover[i] = snap(min(math32.Abs(raw), 1))
	}
}

// integrateScanlineEvenOdd converts accumulated cover/area to final coverage
// values using the even-odd fill rule. The cover slice is modified in place.
func integrateScanlineEvenOdd(cover, area []float32) {
	var accum float32
	for i := range cover {
		raw := accum + area[i]
		accum += cover[i]

		// 1 - abs(1 - mod(abs(raw), 2))
		mod := math32.Mod(math32.Abs(raw), 2)
		cover[i] = snap(1 - math32.Abs(1-mod))
	}
}

// snap removes rounding noise near 0 and 1, so that uncovered and fully
// covered pixels get exact values.
func snap(v float32) float32 {
	switch {
	case v < coverageEpsilon:
		return 0
	case v > 1-coverageEpsilon:
		return 1
	}
	return v
}

// trimZeros returns the non-zero portion of coverage and its starting offset.
// Returns nil, 0 if coverage is entirely zero.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	n := len(coverage)
	lo := 0
	for lo < n && coverage[lo] == 0 {
		lo++
	}
	if lo == n {
		return nil, 0
	}
	hi := n - 1
	for hi > lo && coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}

// Numerical tolerances for the rasterizer.
const (
	// horizontalEdgeThreshold is the minimum vertical extent for an edge
	// to contribute to coverage. Edges with |y1 - y0| below this threshold
	// are skipped as horizontal.
	horizontalEdgeThreshold = 1e-10

	// coverageEpsilon is the distance from 0 and 1 below which coverage
	// values are rounded to exactly 0 or 1.
	coverageEpsilon = 1e-6
)

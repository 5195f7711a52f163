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

// Package crossing finds the points where the edges of a flattened path
// cross each other.
//
// [Find] implements the Bentley-Ottmann sweep: a horizontal line moves
// down through the plane, and only segments which are neighbours along
// the sweep line are tested against each other. For n segments with k
// crossings this takes O((n+k) log n) comparisons, plus linear work per
// event to locate segments in the sweep line.
package crossing

import (
	"cmp"
	"container/heap"
	"slices"

	"seehuhn.de/go/coverage/affine"
	"seehuhn.de/go/coverage/outline"
)

// Crossing records that segments I and J cross at Point.
// I is always smaller than J.
type Crossing struct {
	Point affine.Point
	I, J  int
}

// Find returns all crossings between the segments in segs, as defined by
// [affine.Segment.Crossing]: segments which only touch at end points, or
// which overlap along a common line, are not reported.
//
// The result is sorted by y, then by x, then by segment indices.
func Find(segs []affine.Segment) []Crossing {
	s := &sweep{
		segs: segs,
		top:  make([]affine.Point, len(segs)),
		bot:  make([]affine.Point, len(segs)),
		dxdy: make([]float64, len(segs)),
		seen: make(map[[2]int]bool),
	}
	for i, seg := range segs {
		if seg.A == seg.B {
			continue
		}
		a, b := seg.A, seg.B
		if b.Y < a.Y || (b.Y == a.Y && b.X < a.X) {
			a, b = b, a
		}
		s.top[i], s.bot[i] = a, b
		if a.Y == b.Y {
			s.queue = append(s.queue, event{at: a, kind: horizontal, i: i})
			continue
		}
		s.dxdy[i] = (b.X - a.X) / (b.Y - a.Y)
		s.queue = append(s.queue, event{at: a, kind: start, i: i}, event{at: b, kind: stop, i: i})
	}
	heap.Init(&s.queue)

	for s.queue.Len() > 0 {
		ev := heap.Pop(&s.queue).(event)
		s.y = ev.at.Y
		switch ev.kind {
		case stop:
			s.remove(ev.i)
		case cross:
			s.res = append(s.res, Crossing{Point: ev.p, I: ev.i, J: ev.j})
			s.swap(ev.i, ev.j)
		case start:
			s.insert(ev.i)
		case horizontal:
			for _, a := range s.active {
				s.check(a, ev.i, false)
			}
		}
	}

	slices.SortFunc(s.res, func(a, b Crossing) int {
		return cmp.Or(
			cmp.Compare(a.Point.Y, b.Point.Y),
			cmp.Compare(a.Point.X, b.Point.X),
			cmp.Compare(a.I, b.I),
			cmp.Compare(a.J, b.J),
		)
	})
	return s.res
}

// Path flattens p with tolerance tol and returns the points where its
// edges cross. All subpaths are treated as closed, as they are when the
// path is filled.
func Path(p *outline.Path, tol float64) ([]affine.Point, error) {
	subpaths, err := p.Subpaths(tol)
	if err != nil {
		return nil, err
	}
	var segs []affine.Segment
	for sp := range subpaths {
		sp.Closed = true
		for e := range sp.Edges() {
			segs = append(segs, e)
		}
	}

	found := Find(segs)
	res := make([]affine.Point, len(found))
	for i, c := range found {
		res[i] = c.Point
	}
	return res, nil
}

type sweep struct {
	segs     []affine.Segment
	top, bot []affine.Point // end points, ordered by y then x
	dxdy     []float64

	y      float64 // height of the sweep line
	active []int   // segments crossing the sweep line, ordered by x
	queue  eventQueue
	seen   map[[2]int]bool
	res    []Crossing
}

// xAt returns the x coordinate of segment i at height y.
func (s *sweep) xAt(i int, y float64) float64 {
	switch {
	case y <= s.top[i].Y:
		return s.top[i].X
	case y >= s.bot[i].Y:
		return s.bot[i].X
	}
	return s.top[i].X + (y-s.top[i].Y)*s.dxdy[i]
}

// compare orders segments along the sweep line, just below its
// current height.
func (s *sweep) compare(i, j int) int {
	return cmp.Or(
		cmp.Compare(s.xAt(i, s.y), s.xAt(j, s.y)),
		cmp.Compare(s.dxdy[i], s.dxdy[j]),
		cmp.Compare(i, j),
	)
}

func (s *sweep) insert(i int) {
	k, _ := slices.BinarySearchFunc(s.active, i, s.compare)
	s.active = slices.Insert(s.active, k, i)
	if k > 0 {
		s.check(s.active[k-1], i, true)
	}
	if k+1 < len(s.active) {
		s.check(i, s.active[k+1], true)
	}
}

func (s *sweep) remove(i int) {
	k := slices.Index(s.active, i)
	if k < 0 {
		return
	}
	s.active = slices.Delete(s.active, k, k+1)
	if k > 0 && k < len(s.active) {
		s.check(s.active[k-1], s.active[k], true)
	}
}

// swap exchanges two segments which have just crossed.
func (s *sweep) swap(i, j int) {
	ki := slices.Index(s.active, i)
	kj := slices.Index(s.active, j)
	if ki < 0 || kj < 0 {
		return
	}
	s.active[ki], s.active[kj] = s.active[kj], s.active[ki]
	lo, hi := min(ki, kj), max(ki, kj)
	if lo > 0 {
		s.check(s.active[lo-1], s.active[lo], true)
	}
	if hi+1 < len(s.active) {
		s.check(s.active[hi], s.active[hi+1], true)
	}
}

// check tests segments i and j for a crossing. Each pair is reported at
// most once. If schedule is true, the crossing is queued as an event so
// that the two segments swap places in the sweep line; otherwise it is
// recorded directly.
func (s *sweep) check(i, j int, schedule bool) {
	if i > j {
		i, j = j, i
	}
	key := [2]int{i, j}
	if s.seen[key] {
		return
	}
	p, ok := s.segs[i].Crossing(s.segs[j])
	if !ok {
		return
	}
	s.seen[key] = true
	if !schedule {
		s.res = append(s.res, Crossing{Point: p, I: i, J: j})
		return
	}

	// rounding can place the crossing slightly above the sweep line
	at := p
	if at.Y < s.y {
		at.Y = s.y
	}
	heap.Push(&s.queue, event{at: at, p: p, kind: cross, i: i, j: j})
}

type eventKind int

// Events at the same point are processed in this order.
const (
	stop eventKind = iota
	cross
	start
	horizontal
)

type event struct {
	at   affine.Point // position of the event
	p    affine.Point // crossing point, for cross events
	kind eventKind
	i, j int
}

// eventQueue is a min-heap of events, ordered by y, then x.
type eventQueue []event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(a, b int) bool {
	ea, eb := &q[a], &q[b]
	return cmp.Or(
		cmp.Compare(ea.at.Y, eb.at.Y),
		cmp.Compare(ea.at.X, eb.at.X),
		cmp.Compare(ea.kind, eb.kind),
		cmp.Compare(ea.i, eb.i),
		cmp.Compare(ea.j, eb.j),
	) < 0
}

func (q eventQueue) Swap(a, b int) { q[a], q[b] = q[b], q[a] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(event)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	ev := old[n-1]
	*q = old[:n-1]
	return ev
}

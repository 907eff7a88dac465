// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dfn

import (
	"math"
	"testing"

	"github.com/cpmech/gofrac/geom"
	"github.com/cpmech/gofrac/global"
	"github.com/cpmech/gofrac/local"
	"github.com/cpmech/gosl/chk"
)

func buildMicrofracture(o *DFN, gb *fakeGridblock, radius float64) *global.Microfracture {
	loc := local.NewMicrofractureIJK(gb, 0, geom.NewPointIJK(0, 0, 0), local.JPlus, 0, 0)
	loc.SetRadius(radius)
	gb.AddLocalMicrofracture(loc)
	return o.CreateLinkedGlobalMicrofracture(loc)
}

// buildStraightMacro registers a single straight IPlus segment of the given
// length (plus a zero-length IMinus mirror), so SizeMetric() equals length.
func buildStraightMacro(o *DFN, gb *fakeGridblock, length float64) *global.Macrofracture {
	seedP := local.NewMacrofractureSegment(gb, 0, geom.NewPointIJK(0, 0, 0), geom.NewPointIJK(length, 0, 0),
		local.NucleationPoint, local.Propagating, local.IPlus, local.IPlus, local.JPlus, local.NoBoundary, 0, 0)
	gb.AddLocalMacrofractureSegment(local.IPlus, seedP)
	seedM := seedP.CreateMirrorSegment()
	return o.CreateLinkedGlobalMacrofracture(seedP, seedM)
}

func Test_dfn01_update_evicts_nucleated(tst *testing.T) {

	chk.PrintTitle("dfn01_update_evicts_nucleated")

	o := New()
	gb := newFakeGridblock(math.Pi / 4)
	m1 := buildMicrofracture(o, gb, 1)
	buildMicrofracture(o, gb, 2)

	m1.Local.SetNucleatedMacrofracture(true)
	o.UpdateDFN(10)

	if len(o.Microfractures) != 1 {
		tst.Fatalf("expected 1 surviving microfracture, got %d", len(o.Microfractures))
	}
	if o.Microfractures[0].Radius() != 2 {
		tst.Errorf("the nucleated microfracture (radius 1) must be the one evicted")
	}
	if len(gb.LocalMicrofractures()) != 1 {
		tst.Errorf("UpdateDFN must unlink the evicted microfracture from its gridblock")
	}
	if o.CurrentTime != 10 {
		tst.Errorf("UpdateDFN must record CurrentTime")
	}
}

// Test_dfn02_cull exercises the culling scenario: microfractures of radii
// {0.1, 0.2, 0.3} and macrofractures of strike length {5, 15, 25}.
func Test_dfn02_cull(tst *testing.T) {

	chk.PrintTitle("dfn02_cull")

	o := New()
	gb := newFakeGridblock(math.Pi / 4)
	for _, r := range []float64{0.1, 0.2, 0.3} {
		buildMicrofracture(o, gb, r)
	}
	for _, l := range []float64{5, 15, 25} {
		buildStraightMacro(o, gb, l)
	}

	o.RemoveShortestFractures(0.2, 10.0, -1)

	if len(o.Microfractures) != 1 || o.Microfractures[0].Radius() != 0.3 {
		tst.Fatalf("expected surviving radius {0.3}, got %d microfractures", len(o.Microfractures))
	}
	if len(o.Macrofractures) != 2 {
		tst.Fatalf("expected 2 surviving macrofractures, got %d", len(o.Macrofractures))
	}
	gotLengths := map[float64]bool{}
	for _, f := range o.Macrofractures {
		gotLengths[f.SizeMetric()] = true
	}
	if !gotLengths[15] || !gotLengths[25] {
		tst.Errorf("expected surviving strike lengths {15, 25}, got %v", gotLengths)
	}

	o.RemoveShortestFractures(-1, -1, 1)

	if len(o.Microfractures) != 0 {
		tst.Errorf("maxCount=1 must drop microfractures before macrofractures, got %d left", len(o.Microfractures))
	}
	if len(o.Macrofractures) != 1 || o.Macrofractures[0].SizeMetric() != 25 {
		tst.Fatalf("expected a single surviving macrofracture of strike length 25")
	}
}

func Test_dfn03_sort(tst *testing.T) {

	chk.PrintTitle("dfn03_sort")

	o := New()
	gb := newFakeGridblock(math.Pi / 4)
	buildMicrofracture(o, gb, 3)
	buildMicrofracture(o, gb, 1)
	buildMicrofracture(o, gb, 2)

	o.SortFractures(global.SizeSmallestFirst)
	if o.Microfractures[0].Radius() != 1 || o.Microfractures[2].Radius() != 3 {
		tst.Errorf("SortFractures(SizeSmallestFirst) did not order microfractures ascending")
	}

	o.SortFractures(global.SizeLargestFirst)
	if o.Microfractures[0].Radius() != 3 || o.Microfractures[2].Radius() != 1 {
		tst.Errorf("SortFractures(SizeLargestFirst) did not order microfractures descending")
	}
}

func Test_dfn04_copy(tst *testing.T) {

	chk.PrintTitle("dfn04_copy")

	o := New()
	gb := newFakeGridblock(math.Pi / 4)
	buildMicrofracture(o, gb, 1)
	buildStraightMacro(o, gb, 5)

	snap := o.Copy()
	if len(snap.Microfractures) != 1 || len(snap.Macrofractures) != 1 {
		tst.Fatalf("Copy must carry over both collections")
	}
	if snap.Microfractures[0] == o.Microfractures[0] {
		tst.Errorf("Copy must clone each global microfracture, not share the same object")
	}
	if snap.Macrofractures[0] == o.Macrofractures[0] {
		tst.Errorf("Copy must clone each global macrofracture, not share the same object")
	}
	snapCentre := snap.Macrofractures[0].CentreLine()
	liveCentre := o.Macrofractures[0].CentreLine()
	if len(snapCentre) != len(liveCentre) {
		tst.Fatalf("clone must start with the same centre-line length")
	}
	for i := range snapCentre {
		if snapCentre[i] == liveCentre[i] {
			tst.Errorf("clone must not alias the live macrofracture's centre-line points")
		}
	}

	buildMicrofracture(o, gb, 9)
	if len(snap.Microfractures) != 1 {
		tst.Errorf("mutating the original's slice must not affect the snapshot's slice header")
	}

	// a later update on the live DFN mutates its macrofracture's
	// cornerpoint arena in place; the snapshot's arena must be unaffected.
	extra := newStraightSegmentXYZ(gb, local.IPlus, 5, 15)
	o.Macrofractures[0].AddSegment(local.IPlus, extra)
	o.UpdateDFN(1)
	if len(o.Macrofractures[0].CentreLine()) == len(snapCentre) {
		tst.Errorf("expected the live macrofracture's centre line to change after adding a segment and updating")
	}
	if len(snap.Macrofractures[0].CentreLine()) != len(snapCentre) {
		tst.Errorf("snapshot's centre line must be frozen at the time Copy was called")
	}
}

// newStraightSegmentXYZ builds a collinear IPlus segment continuing from I
// to append onto an existing straight macrofracture's outer tip.
func newStraightSegmentXYZ(gb *fakeGridblock, dir local.PropagationDirection, innerI, outerI float64) *local.MacrofractureSegment {
	a := geom.NewPointIJK(innerI, 0, 0)
	b := geom.NewPointIJK(outerI, 0, 0)
	seg := local.NewMacrofractureSegment(gb, 0, a, b, local.Propagating, local.Propagating, dir, dir, local.JPlus, local.NoBoundary, 0, 0)
	gb.AddLocalMacrofractureSegment(dir, seg)
	return seg
}

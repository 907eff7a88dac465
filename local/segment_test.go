// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package local

import (
	"math"
	"testing"

	"github.com/cpmech/gofrac/geom"
	"github.com/cpmech/gosl/chk"
)

func Test_segment01(tst *testing.T) {

	chk.PrintTitle("segment01")

	gb := newFakeGridblock(math.Pi / 4)
	nonProp := geom.NewPointIJK(0, 0, 0)
	prop := geom.NewPointIJK(10, 0, 0)
	seg := NewMacrofractureSegment(gb, 0, nonProp, prop, NucleationPoint, Propagating,
		IPlus, IPlus, JPlus, NoBoundary, 0, 0)

	chk.Scalar(tst, "StrikeLength", 1e-14, seg.StrikeLength(), 10)
	chk.Scalar(tst, "TotalLength", 1e-14, seg.TotalLength(), 10)
	if seg.InnerNodeType() != NucleationPoint {
		tst.Errorf("inner node type should be NucleationPoint before any swap")
	}
	if seg.OuterNodeType() != Propagating {
		tst.Errorf("outer node type should be Propagating before any swap")
	}
	if !seg.Active() {
		tst.Errorf("segment with a Propagating prop node must be Active")
	}

	seg.SwapNodes()
	if seg.InnerNodeType() != Propagating || seg.OuterNodeType() != NucleationPoint {
		tst.Errorf("SwapNodes must flip inner/outer role assignment")
	}
	if seg.LocalOrientation() != IMinus {
		tst.Errorf("LocalOrientation must flip to IMinus after SwapNodes")
	}
}

func Test_segment02(tst *testing.T) {

	chk.PrintTitle("segment02")

	gb := newFakeGridblock(math.Pi / 6) // dip set's own dip is irrelevant for a relay segment
	nonProp := geom.NewPointIJK(5, 0, 0)
	prop := geom.NewPointIJK(5, 3, 0)
	seg := NewMacrofractureSegment(gb, 0, nonProp, prop, Relay, Relay,
		IPlus, IPlus, JPlus, NoBoundary, 0, 0)

	if !seg.IsRelay() {
		tst.Errorf("segment with both node types Relay must report IsRelay()")
	}
	chk.Scalar(tst, "relay dip", 1e-14, seg.Dip(), math.Pi/2)
}

func Test_segment03(tst *testing.T) {

	chk.PrintTitle("segment03")

	gb := newFakeGridblock(0) // horizontal dip set: tan(dip)=0, horizontal offset degenerates to 0
	nonProp := geom.NewPointIJK(0, 0, 0)
	prop := geom.NewPointIJK(10, 0, 0)
	seg := NewMacrofractureSegment(gb, 0, nonProp, prop, NucleationPoint, Propagating,
		IPlus, IPlus, JPlus, NoBoundary, 0, 0)

	up := seg.GetUpperOuterCornerInXYZ(false)
	lo := seg.GetLowerOuterCornerInXYZ(false)
	chk.Scalar(tst, "upper Z = +halfT", 1e-14, up.Z, gb.thickness/2)
	chk.Scalar(tst, "lower Z = -halfT", 1e-14, lo.Z, -gb.thickness/2)
}

func Test_segment04(tst *testing.T) {

	chk.PrintTitle("segment04")

	gb := newFakeGridblock(math.Pi / 4)
	nonProp := geom.NewPointIJK(0, 0, 0)
	seed := NewNucleationSegment(gb, 0, nonProp, IPlus, JPlus, 0, 0)
	gb.AddLocalMacrofractureSegment(IPlus, seed)

	mirror := seed.CreateMirrorSegment()
	if mirror.LocalOrientation() != IMinus {
		tst.Errorf("mirror segment must propagate in the opposite direction")
	}
	if seed.InnerNodeType() != NucleationPoint {
		tst.Errorf("seed's non-prop node must become NucleationPoint once mirrored")
	}
	if len(gb.segs[IMinus]) != 1 {
		tst.Errorf("mirror must be registered with the gridblock's IMinus collection")
	}
}

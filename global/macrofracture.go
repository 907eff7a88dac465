// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package global

import (
	"github.com/cpmech/gofrac/geom"
	"github.com/cpmech/gofrac/local"
	"github.com/cpmech/gosl/chk"
)

const numDirs = 2

func dirIndex(dir local.PropagationDirection) int { return int(dir) }

// Macrofracture is a through-layer fracture represented as two chains of
// local segments (one per propagation direction), reconstructed into a
// continuous, bevelled quadrilateral mesh by PopulateData (spec.md §3.1,
// §4.3 — the hardest subsystem in the core).
type Macrofracture struct {
	ID                 int
	SetIndex           int
	dip                float64
	nucleationRealTime float64

	// ModifyFracWidth selects the MODIFY_FRAC_WIDTH rendering variant
	// (stress-shadow half-width instead of layer-thickness-derived offset
	// for cornerpoint construction), a configuration field per spec.md §9.
	ModifyFracWidth bool
	ExtensionRatio  float64
	AngleTolerance  float64

	segments [numDirs][]*local.MacrofractureSegment

	upperJoints [numDirs][]*geom.PointXYZ
	lowerJoints [numDirs][]*geom.PointXYZ

	strikeHalfLength [numDirs]float64
	totalHalfLength  [numDirs]float64
	zeroLength       [numDirs][]bool
	segMeanAperture  [numDirs][]float64
	segCompress      [numDirs][]float64

	tipType               [numDirs]FractureTipType
	tipActive             [numDirs]bool
	terminatingFractureID [numDirs]int

	centreLine []*geom.PointXYZ
}

// NewMacrofracture creates a global macrofracture from a seed local segment
// and its mirror (spawned in the opposite local direction at the same
// nucleation point), links both into the new global, and populates its
// geometry (spec.md §4.3.1).
func NewMacrofracture(id int, seed, mirror *local.MacrofractureSegment) *Macrofracture {
	o := &Macrofracture{
		ID:                 id,
		SetIndex:           seed.DipSetIndex,
		dip:                seed.Dip(),
		nucleationRealTime: seed.NucleationRealTime(),
		ExtensionRatio:     geom.DefaultExtensionRatio,
		AngleTolerance:     geom.DefaultAngleTolerance,
	}
	seed.GlobalID = id
	mirror.GlobalID = id
	o.segments[dirIndex(seed.LocalOrientation())] = []*local.MacrofractureSegment{seed}
	o.segments[dirIndex(mirror.LocalOrientation())] = []*local.MacrofractureSegment{mirror}
	o.PopulateData()
	return o
}

// AddSegment appends a newly linked segment to the outer end of the given
// direction's chain (spec.md §3.3)
func (o *Macrofracture) AddSegment(dir local.PropagationDirection, seg *local.MacrofractureSegment) {
	if seg == nil {
		chk.Panic("AddSegment: segment is nil")
	}
	seg.GlobalID = o.ID
	o.segments[dirIndex(dir)] = append(o.segments[dirIndex(dir)], seg)
}

// Segments returns the segment chain (innermost to outermost) for dir
func (o *Macrofracture) Segments(dir local.PropagationDirection) []*local.MacrofractureSegment {
	return o.segments[dirIndex(dir)]
}

// IsEmpty reports whether this macrofracture has zero segments in both
// directions (the state left behind by CombineMacrofractures on the donor)
func (o *Macrofracture) IsEmpty() bool {
	return len(o.segments[0]) == 0 && len(o.segments[1]) == 0
}

// CombineMacrofractures splices other's tip otherTip onto this macrofracture
// at tipToAddOnto, re-orienting donor segments as needed, leaving other
// empty (spec.md §4.3.1). Combining a fracture with itself is a no-op.
func (o *Macrofracture) CombineMacrofractures(tipToAddOnto local.PropagationDirection, other *Macrofracture, otherTip local.PropagationDirection) {
	if other == o {
		return
	}

	// splice the otherTip side onto tipToAddOnto: donor's own outermost to
	// innermost order becomes the new outer tail of o's chain, so the
	// spliced chain continues outward from o's current tip; any segment
	// whose orientation disagrees with its new position is swap-inverted
	// first.
	donorSide := reversedSegments(other.segments[dirIndex(otherTip)])
	for _, seg := range donorSide {
		if otherTip != tipToAddOnto {
			seg.SwapNodes()
		}
		seg.GlobalID = o.ID
	}
	o.segments[dirIndex(tipToAddOnto)] = append(o.segments[dirIndex(tipToAddOnto)], donorSide...)

	// splice the opposite side onto the opposite receiving direction: this
	// chain is walked inner-to-outer, the donor's own storage order, since
	// it is simply extending o's chain outward past its own current tip
	donorOther := otherTip.Opposite()
	recvOther := tipToAddOnto.Opposite()
	otherSide := append([]*local.MacrofractureSegment(nil), other.segments[dirIndex(donorOther)]...)
	for _, seg := range otherSide {
		if donorOther != recvOther {
			seg.SwapNodes()
		}
		seg.GlobalID = o.ID
	}
	o.segments[dirIndex(recvOther)] = append(o.segments[dirIndex(recvOther)], otherSide...)

	other.segments[0] = nil
	other.segments[1] = nil

	o.PopulateData()
}

// reversedSegments returns a new slice holding s in reverse order; the
// donor side of a combine is walked outer-to-inner so the spliced chain
// continues outward from the receiving macrofracture's current tip.
func reversedSegments(s []*local.MacrofractureSegment) []*local.MacrofractureSegment {
	out := make([]*local.MacrofractureSegment, len(s))
	for i, seg := range s {
		out[len(s)-1-i] = seg
	}
	return out
}

// weightedPoint linearly interpolates between a (weight wa) and b (weight
// wb); wa+wb need not be 1, the result is normalised by their sum.
func weightedPoint(a *geom.PointXYZ, wa float64, b *geom.PointXYZ, wb float64) *geom.PointXYZ {
	total := wa + wb
	if total < 1e-12 {
		return b.Copy()
	}
	return &geom.PointXYZ{
		X: (a.X*wa + b.X*wb) / total,
		Y: (a.Y*wa + b.Y*wb) / total,
		Z: (a.Z*wa + b.Z*wb) / total,
	}
}

// bevelInterior computes the bevelled joint cornerpoint between segment
// cur (inner side) and next (outer side) for either the upper or lower
// edge (spec.md §4.3.2 step 2). Relay segments reverse the crossover
// argument order so the crossover is taken from the non-relay side.
func (o *Macrofracture) bevelInterior(cur, next *local.MacrofractureSegment, upper bool, curOuter, nextInner *geom.PointXYZ) *geom.PointXYZ {
	curInner, nextOuter := cur.GetUpperInnerCornerInXYZ, next.GetUpperOuterCornerInXYZ
	if !upper {
		curInner, nextOuter = cur.GetLowerInnerCornerInXYZ, next.GetLowerOuterCornerInXYZ
	}
	lineCur := geom.Line{A: curInner(o.ModifyFracWidth), B: curOuter}
	lineNext := geom.Line{A: nextInner, B: nextOuter(o.ModifyFracWidth)}
	if cur.IsRelay() && !next.IsRelay() {
		if cp, ok := geom.Crossover2D(lineNext, lineCur, geom.Trim, o.ExtensionRatio, o.AngleTolerance); ok {
			return cp
		}
		return curOuter.Copy()
	}
	if cp, ok := geom.Crossover2D(lineCur, lineNext, geom.Trim, o.ExtensionRatio, o.AngleTolerance); ok {
		return cp
	}
	return curOuter.Copy()
}

// bevelOuterTip computes the outermost segment's outer-edge cornerpoint,
// applying terminating-fracture or gridblock-boundary bevelling depending
// on the outer node's type (spec.md §4.3.2 step 3).
func (o *Macrofracture) bevelOuterTip(seg *local.MacrofractureSegment, upper bool) *geom.PointXYZ {
	ownUpper, ownLower := seg.GetUpperOuterCornerInXYZ(o.ModifyFracWidth), seg.GetLowerOuterCornerInXYZ(o.ModifyFracWidth)
	own := ownUpper
	if !upper {
		own = ownLower
	}
	outerType := seg.OuterNodeType()
	switch outerType {
	case local.Intersection, local.Convergence, local.Relay:
		term := seg.TerminatingSegment
		if term == nil {
			return own
		}
		ownInner := seg.GetUpperInnerCornerInXYZ
		termUpper, termLower := term.GetUpperInnerCornerInXYZ, term.GetUpperOuterCornerInXYZ
		if !upper {
			ownInner = seg.GetLowerInnerCornerInXYZ
			termUpper, termLower = term.GetLowerInnerCornerInXYZ, term.GetLowerOuterCornerInXYZ
		}
		lineOwn := geom.Line{A: ownInner(o.ModifyFracWidth), B: own}
		lineTerm := geom.Line{A: termUpper(o.ModifyFracWidth), B: termLower(o.ModifyFracWidth)}
		if cp, ok := geom.Crossover2D(lineOwn, lineTerm, geom.Trim, geom.DefaultExtensionRatio, geom.DefaultAngleTolerance); ok {
			return cp
		}
		return own
	case local.NonconnectedGridblockBound:
		face := seg.PropNodeBoundaryFace()
		corners := seg.BoundaryCornersFor(face)
		ownInner := seg.GetUpperInnerCornerInXYZ
		if !upper {
			ownInner = seg.GetLowerInnerCornerInXYZ
		}
		lineOwn := geom.Line{A: ownInner(o.ModifyFracWidth), B: own}
		attempts := boundaryBevelLines(corners, upper)
		for _, ln := range attempts {
			if ln == nil {
				continue
			}
			if cp, ok := geom.Crossover2D(lineOwn, *ln, geom.Restrict, 0, geom.DefaultAngleTolerance); ok {
				return cp
			}
		}
		return own
	default:
		return own
	}
}

// boundaryBevelLines builds the three candidate boundary edges tried in
// order for NonconnectedGridblockBound tip bevelling: the full
// upper/lower boundary edge, then its left half, then its right half
// (spec.md §4.3.2 step 3).
func boundaryBevelLines(corners [4]*geom.PointXYZ, upper bool) []*geom.Line {
	// corners convention: [0]=upper-left, [1]=upper-right, [2]=lower-right, [3]=lower-left
	var a, b *geom.PointXYZ
	if upper {
		a, b = corners[0], corners[1]
	} else {
		a, b = corners[3], corners[2]
	}
	if a == nil || b == nil {
		return nil
	}
	mid := &geom.PointXYZ{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2, Z: (a.Z + b.Z) / 2}
	return []*geom.Line{
		{A: a, B: b},
		{A: a, B: mid},
		{A: mid, B: b},
	}
}

// PopulateData is the single most intricate routine in the core: it walks
// each direction's segment chain and reconstructs a continuous, bevelled,
// inversion-corrected quadrilateral mesh, then derives tip classification,
// per-segment sizes/apertures, and the macrofracture centre-line (spec.md
// §4.3.2).
func (o *Macrofracture) PopulateData() {
	var adjustUpper, adjustLower [numDirs][]bool

	for d := 0; d < numDirs; d++ {
		segs := o.segments[d]
		n := len(segs)
		upper := make([]*geom.PointXYZ, n+1)
		lower := make([]*geom.PointXYZ, n+1)
		if n > 0 {
			upper[0] = segs[0].GetUpperInnerCornerInXYZ(o.ModifyFracWidth)
			lower[0] = segs[0].GetLowerInnerCornerInXYZ(o.ModifyFracWidth)
		}
		for k := 0; k < n; k++ {
			seg := segs[k]
			if k < n-1 {
				next := segs[k+1]
				upper[k+1] = o.bevelInterior(seg, next, true, seg.GetUpperOuterCornerInXYZ(o.ModifyFracWidth), next.GetUpperInnerCornerInXYZ(o.ModifyFracWidth))
				lower[k+1] = o.bevelInterior(seg, next, false, seg.GetLowerOuterCornerInXYZ(o.ModifyFracWidth), next.GetLowerInnerCornerInXYZ(o.ModifyFracWidth))
			} else {
				upper[k+1] = o.bevelOuterTip(seg, true)
				lower[k+1] = o.bevelOuterTip(seg, false)
			}
		}
		o.upperJoints[d] = upper
		o.lowerJoints[d] = lower

		// step 5: inverted-join detection, per segment
		adjU := make([]bool, n)
		adjL := make([]bool, n)
		for k := 0; k < n; k++ {
			seg := segs[k]
			if seg.OuterNodeType() == local.Relay {
				continue
			}
			orientation := seg.LocalOrientation()
			innerI := seg.IOf(upper[k])
			outerI := seg.IOf(upper[k+1])
			var inverted bool
			if orientation == local.IPlus {
				inverted = outerI <= innerI
			} else {
				inverted = outerI >= innerI
			}
			adjU[k] = inverted

			innerIl := seg.IOf(lower[k])
			outerIl := seg.IOf(lower[k+1])
			var invertedL bool
			if orientation == local.IPlus {
				invertedL = outerIl <= innerIl
			} else {
				invertedL = outerIl >= innerIl
			}
			adjL[k] = invertedL
		}
		adjustUpper[d] = adjU
		adjustLower[d] = adjL

		// second pass: replace flagged interior inner joints (k=1..n-1)
		for k := 1; k < n; k++ {
			if adjU[k] {
				lk := segs[k].TotalLength()
				lkm1 := segs[k-1].TotalLength()
				upper[k] = weightedPoint(upper[k-1], lk, upper[k+1], lkm1)
			}
			if adjL[k] {
				lk := segs[k].TotalLength()
				lkm1 := segs[k-1].TotalLength()
				lower[k] = weightedPoint(lower[k-1], lk, lower[k+1], lkm1)
			}
		}

		// step 6: inverted relay segments - swap stored LowerOuter/LowerInner
		for k := 0; k < n; k++ {
			if !segs[k].IsRelay() {
				continue
			}
			dJUpper := segs[k].JOf(upper[k+1]) - segs[k].JOf(upper[k])
			dJLower := segs[k].JOf(lower[k+1]) - segs[k].JOf(lower[k])
			if dJUpper == 0 || dJLower == 0 {
				continue
			}
			if sign(dJUpper) != sign(dJLower) {
				lower[k], lower[k+1] = lower[k+1], lower[k]
			}
		}
	}

	// step 7: nucleation-point adjustment
	segsP := o.segments[dirIndex(local.IPlus)]
	segsM := o.segments[dirIndex(local.IMinus)]
	if len(segsP) > 0 && len(segsM) > 0 {
		upP, upM := o.upperJoints[dirIndex(local.IPlus)], o.upperJoints[dirIndex(local.IMinus)]
		loP, loM := o.lowerJoints[dirIndex(local.IPlus)], o.lowerJoints[dirIndex(local.IMinus)]

		iP := segsP[0].IOf(upP[1])
		iM := segsM[0].IOf(upM[1])
		if iP < iM {
			lineP := geom.Line{A: upP[0], B: upP[1]}
			lineM := geom.Line{A: upM[0], B: upM[1]}
			if cp, ok := geom.Crossover3D(lineP, lineM, geom.Trim, o.ExtensionRatio, o.AngleTolerance); ok {
				upP[1] = cp
				upM[1] = cp.Copy()
			} else {
				upP[1] = upP[0].Copy()
				upM[1] = upM[0].Copy()
			}
			lineLP := geom.Line{A: loP[0], B: loP[1]}
			lineLM := geom.Line{A: loM[0], B: loM[1]}
			if cp, ok := geom.Crossover3D(lineLP, lineLM, geom.Trim, o.ExtensionRatio, o.AngleTolerance); ok {
				loP[1] = cp
				loM[1] = cp.Copy()
			} else {
				loP[1] = loP[0].Copy()
				loM[1] = loM[0].Copy()
			}
		}

		if adjustUpper[dirIndex(local.IPlus)][0] || adjustUpper[dirIndex(local.IMinus)][0] {
			lp, lm := segsP[0].TotalLength(), segsM[0].TotalLength()
			shared := weightedPoint(upP[1], lm, upM[1], lp)
			upP[0] = shared
			upM[0] = shared
		}
		if adjustLower[dirIndex(local.IPlus)][0] || adjustLower[dirIndex(local.IMinus)][0] {
			lp, lm := segsP[0].TotalLength(), segsM[0].TotalLength()
			shared := weightedPoint(loP[1], lm, loM[1], lp)
			loP[0] = shared
			loM[0] = shared
		}
	}

	// step 8: per-direction derived data
	for d := 0; d < numDirs; d++ {
		dir := local.PropagationDirection(d)
		segs := o.segments[d]
		n := len(segs)
		var strikeSum, totalSum float64
		zl := make([]bool, n)
		aper := make([]float64, n)
		comp := make([]float64, n)
		for k, seg := range segs {
			strikeSum += seg.StrikeLength()
			totalSum += seg.TotalLength()
			zl[k] = geom.ComparePoints(o.upperJoints[d][k], o.upperJoints[d][k+1]) &&
				geom.ComparePoints(o.lowerJoints[d][k], o.lowerJoints[d][k+1])
			aper[k] = seg.MeanAperture()
			comp[k] = seg.Compressibility()
		}
		o.strikeHalfLength[d] = strikeSum
		o.totalHalfLength[d] = totalSum
		o.zeroLength[d] = zl
		o.segMeanAperture[d] = aper
		o.segCompress[d] = comp

		o.terminatingFractureID[d] = 0
		if n == 0 {
			o.tipType[d] = TipOutOfBounds
			o.tipActive[d] = false
			continue
		}
		outer := segs[n-1]
		tip, hasTerm := ClassifyTip(outer.OuterNodeType())
		o.tipType[d] = tip
		o.tipActive[d] = outer.Active()
		if hasTerm && outer.TerminatingSegment != nil {
			o.terminatingFractureID[d] = outer.TerminatingSegment.GlobalID
		}
		_ = dir
	}

	o.rebuildCentreLine()
}

func sign(v float64) float64 {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}

// rebuildCentreLine reconstructs the centre-line polyline: outermost IMinus tip
// -> nucleation -> outermost IPlus tip, suppressing consecutive duplicates
// (spec.md §4.3.2 step 9).
func (o *Macrofracture) rebuildCentreLine() {
	segsM := o.segments[dirIndex(local.IMinus)]
	segsP := o.segments[dirIndex(local.IPlus)]
	var pts []*geom.PointXYZ
	for k := len(segsM) - 1; k >= 0; k-- {
		pts = appendNoDup(pts, segsM[k].OuterCentrepointInXYZ())
	}
	switch {
	case len(segsM) > 0:
		pts = appendNoDup(pts, segsM[0].InnerCentrepointInXYZ())
	case len(segsP) > 0:
		pts = appendNoDup(pts, segsP[0].InnerCentrepointInXYZ())
	}
	for k := 0; k < len(segsP); k++ {
		pts = appendNoDup(pts, segsP[k].OuterCentrepointInXYZ())
	}
	o.centreLine = pts
}

func appendNoDup(pts []*geom.PointXYZ, p *geom.PointXYZ) []*geom.PointXYZ {
	if len(pts) > 0 && geom.ComparePoints(pts[len(pts)-1], p) {
		return pts
	}
	return append(pts, p)
}

// StrikeHalfLength returns the along-strike length of the given direction's
// chain
func (o *Macrofracture) StrikeHalfLength(dir local.PropagationDirection) float64 {
	return o.strikeHalfLength[dirIndex(dir)]
}

// TotalHalfLength returns the full planform length of the given direction's
// chain
func (o *Macrofracture) TotalHalfLength(dir local.PropagationDirection) float64 {
	return o.totalHalfLength[dirIndex(dir)]
}

// SizeMetric returns the size used for sorting/culling: total strike length
// across both directions
func (o *Macrofracture) SizeMetric() float64 {
	return o.strikeHalfLength[0] + o.strikeHalfLength[1]
}

// NucleationRealTime returns the real time this macrofracture nucleated
func (o *Macrofracture) NucleationRealTime() float64 { return o.nucleationRealTime }

// ZeroLengthFlags returns the per-segment zero-length flags for dir
func (o *Macrofracture) ZeroLengthFlags(dir local.PropagationDirection) []bool {
	return o.zeroLength[dirIndex(dir)]
}

// SegmentMeanApertures returns the per-segment mean apertures for dir
func (o *Macrofracture) SegmentMeanApertures(dir local.PropagationDirection) []float64 {
	return o.segMeanAperture[dirIndex(dir)]
}

// SegmentCompressibilities returns the per-segment compressibilities for dir
func (o *Macrofracture) SegmentCompressibilities(dir local.PropagationDirection) []float64 {
	return o.segCompress[dirIndex(dir)]
}

// TipType returns the classified tip type for dir
func (o *Macrofracture) TipType(dir local.PropagationDirection) FractureTipType {
	return o.tipType[dirIndex(dir)]
}

// TipActive reports whether the outermost segment of dir is still active
func (o *Macrofracture) TipActive(dir local.PropagationDirection) bool {
	return o.tipActive[dirIndex(dir)]
}

// TerminatingFracture returns the ID of the macrofracture this tip
// terminated against, or 0 when there is none
func (o *Macrofracture) TerminatingFracture(dir local.PropagationDirection) int {
	return o.terminatingFractureID[dirIndex(dir)]
}

// quad is a 4-cornerpoint fracture segment panel, ordered
// [UpperInner, UpperOuter, LowerOuter, LowerInner]
type quad [4]*geom.PointXYZ

// segmentQuads returns the deep-copied quads for dir in innermost to
// outermost order
func (o *Macrofracture) segmentQuads(dir local.PropagationDirection) []quad {
	d := dirIndex(dir)
	segs := o.segments[d]
	quads := make([]quad, len(segs))
	for k := range segs {
		quads[k] = quad{
			o.upperJoints[d][k].Copy(),
			o.upperJoints[d][k+1].Copy(),
			o.lowerJoints[d][k+1].Copy(),
			o.lowerJoints[d][k].Copy(),
		}
	}
	return quads
}

// GetFractureSegmentsInXYZ returns the deep-copied, non-zero-length
// quadrilateral panels ordered outer-IMinus -> nucleation -> outer-IPlus
// (spec.md §4.3.3)
func (o *Macrofracture) GetFractureSegmentsInXYZ() [][4]*geom.PointXYZ {
	var out [][4]*geom.PointXYZ
	qm := o.segmentQuads(local.IMinus)
	zm := o.zeroLength[dirIndex(local.IMinus)]
	for k := len(qm) - 1; k >= 0; k-- {
		if !zm[k] {
			out = append(out, [4]*geom.PointXYZ(qm[k]))
		}
	}
	qp := o.segmentQuads(local.IPlus)
	zp := o.zeroLength[dirIndex(local.IPlus)]
	for k := range qp {
		if !zp[k] {
			out = append(out, [4]*geom.PointXYZ(qp[k]))
		}
	}
	return out
}

// GetTriangularFractureSegmentsInXYZ splits each quad of
// GetFractureSegmentsInXYZ into two triangles, (0,1,2) and (2,3,0)
func (o *Macrofracture) GetTriangularFractureSegmentsInXYZ() [][3]*geom.PointXYZ {
	quads := o.GetFractureSegmentsInXYZ()
	tris := make([][3]*geom.PointXYZ, 0, 2*len(quads))
	for _, q := range quads {
		tris = append(tris, [3]*geom.PointXYZ{q[0], q[1], q[2]})
		tris = append(tris, [3]*geom.PointXYZ{q[2], q[3], q[0]})
	}
	return tris
}

// GetCornerpoints traces a single boundary polyline of the whole
// macrofracture: IPlus-top -> IPlus-bottom -> IMinus-bottom -> IMinus-top,
// with consecutive duplicate points suppressed (spec.md §4.3.3)
func (o *Macrofracture) GetCornerpoints() []*geom.PointXYZ {
	var pts []*geom.PointXYZ
	up, lp := o.upperJoints[dirIndex(local.IPlus)], o.lowerJoints[dirIndex(local.IPlus)]
	um, lm := o.upperJoints[dirIndex(local.IMinus)], o.lowerJoints[dirIndex(local.IMinus)]
	for _, p := range up {
		pts = appendNoDup(pts, p)
	}
	for k := len(lp) - 1; k >= 0; k-- {
		pts = appendNoDup(pts, lp[k])
	}
	for _, p := range lm {
		pts = appendNoDup(pts, p)
	}
	for k := len(um) - 1; k >= 0; k-- {
		pts = appendNoDup(pts, um[k])
	}
	return pts
}

// GetSegmentNormalVectors returns the per-segment plane normal, in the same
// outer-IMinus -> nucleation -> outer-IPlus order as
// GetFractureSegmentsInXYZ
func (o *Macrofracture) GetSegmentNormalVectors() []*geom.VectorXYZ {
	var out []*geom.VectorXYZ
	segsM := o.segments[dirIndex(local.IMinus)]
	for k := len(segsM) - 1; k >= 0; k-- {
		if !o.zeroLength[dirIndex(local.IMinus)][k] {
			out = append(out, geom.GetNormalToPlane(segsM[k].Azimuth(), segsM[k].Dip()))
		}
	}
	segsP := o.segments[dirIndex(local.IPlus)]
	for k := range segsP {
		if !o.zeroLength[dirIndex(local.IPlus)][k] {
			out = append(out, geom.GetNormalToPlane(segsP[k].Azimuth(), segsP[k].Dip()))
		}
	}
	return out
}

// CentreLine returns the reconstructed macrofracture centre-line polyline
func (o *Macrofracture) CentreLine() []*geom.PointXYZ { return o.centreLine }

// Dip returns the macrofracture's nominal (nucleation) dip set dip angle
func (o *Macrofracture) Dip() float64 { return o.dip }

// copyPoints returns a deep copy of a cornerpoint arena slice (nil-safe)
func copyPoints(pts []*geom.PointXYZ) []*geom.PointXYZ {
	if pts == nil {
		return nil
	}
	out := make([]*geom.PointXYZ, len(pts))
	for i, p := range pts {
		if p != nil {
			out[i] = p.Copy()
		}
	}
	return out
}

// Clone deep-copies o's reconstructed geometry (the bevelled cornerpoint
// arena, per-segment derived arrays, and centre-line) so a later
// PopulateData on the live macrofracture cannot mutate a snapshot taken
// for intermediate-time export (spec.md §4.5). The segment chains
// themselves keep their non-owning back-references to the local layer,
// per spec.md §5, but are copied into fresh slice headers so a later
// AddSegment/CombineMacrofractures on the live object cannot grow the
// snapshot's view of either chain.
func (o *Macrofracture) Clone() *Macrofracture {
	cp := *o
	for d := 0; d < numDirs; d++ {
		cp.segments[d] = append([]*local.MacrofractureSegment(nil), o.segments[d]...)
		cp.upperJoints[d] = copyPoints(o.upperJoints[d])
		cp.lowerJoints[d] = copyPoints(o.lowerJoints[d])
		cp.zeroLength[d] = append([]bool(nil), o.zeroLength[d]...)
		cp.segMeanAperture[d] = append([]float64(nil), o.segMeanAperture[d]...)
		cp.segCompress[d] = append([]float64(nil), o.segCompress[d]...)
	}
	cp.centreLine = copyPoints(o.centreLine)
	return &cp
}

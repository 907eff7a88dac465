// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package local

import (
	"math"

	"github.com/cpmech/gofrac/geom"
	"github.com/cpmech/gosl/chk"
)

// MacrofractureSegment is a quadrilateral slab of a macrofracture confined
// to one gridblock and one dip set, between two in-plane nodes: the
// non-propagating (nearer-to-nucleation) node and the propagating
// (farther) node. Node semantics (inner/outer) are swapped when
// reverseNodes is set (spec.md §3.2, §4.2).
type MacrofractureSegment struct {
	owner  GridblockFractureSet
	dipSet FractureDipSet

	DipSetIndex int

	nonPropNode *geom.PointIJK
	propNode    *geom.PointIJK

	nonPropNodeType SegmentNodeType
	propNodeType    SegmentNodeType

	reverseNodes bool

	dipDirection DipDirection

	// localPropDir is this segment's direction of propagation in its own
	// gridblock's IJK system; originalPropDir is the propagation direction
	// in the nucleating gridblock's IJK system (unchanged as a fracture
	// crosses gridblock boundaries).
	localPropDir    PropagationDirection
	originalPropDir PropagationDirection

	nonPropNodeBoundary BoundaryFace
	propNodeBoundary    BoundaryFace
	trackingBoundary    BoundaryFace

	strike float64 // owning gridblock's strike, captured at construction

	nucleationLTime    float64
	nucleationTimestep int

	// TerminatingSegment is the non-owning reference to the segment this
	// one's outer tip terminated against (intersection/convergence/relay);
	// nil when there is none.
	TerminatingSegment *MacrofractureSegment

	// GlobalID is the non-owning link to the owning global macrofracture;
	// -1 means unlinked. Set by package global when the segment joins a
	// global macrofracture (NewMacrofracture, AddSegment,
	// CombineMacrofractures).
	GlobalID int
}

// NewMacrofractureSegment creates a local macrofracture segment. nonPropNode
// and propNode are copied (value semantics). nonPropType/propType set the
// initial node classification of each end.
func NewMacrofractureSegment(owner GridblockFractureSet, dipSetIndex int,
	nonPropNode, propNode *geom.PointIJK, nonPropType, propType SegmentNodeType,
	localPropDir, originalPropDir PropagationDirection, dipDir DipDirection,
	nonPropBoundary BoundaryFace, lTime float64, timestep int) *MacrofractureSegment {

	dipSets := owner.DipSets()
	if dipSetIndex < 0 || dipSetIndex >= len(dipSets) {
		chk.Panic("invalid dip set index %d", dipSetIndex)
	}
	return &MacrofractureSegment{
		owner:               owner,
		dipSet:              dipSets[dipSetIndex],
		DipSetIndex:         dipSetIndex,
		nonPropNode:         nonPropNode.Copy(),
		propNode:            propNode.Copy(),
		nonPropNodeType:     nonPropType,
		propNodeType:        propType,
		dipDirection:        dipDir,
		localPropDir:        localPropDir,
		originalPropDir:     originalPropDir,
		nonPropNodeBoundary: nonPropBoundary,
		propNodeBoundary:    NoBoundary,
		trackingBoundary:    NoBoundary,
		strike:              owner.Strike(),
		nucleationLTime:     lTime,
		nucleationTimestep:  timestep,
		GlobalID:            -1,
	}
}

// NewNucleationSegment creates the seed segment for a new macrofracture:
// non-prop node is the nucleation point, prop node starts coincident (zero
// length) and propagating.
func NewNucleationSegment(owner GridblockFractureSet, dipSetIndex int, nucleationPoint *geom.PointIJK,
	localPropDir PropagationDirection, dipDir DipDirection, lTime float64, timestep int) *MacrofractureSegment {
	return NewMacrofractureSegment(owner, dipSetIndex, nucleationPoint, nucleationPoint,
		NucleationPoint, Propagating, localPropDir, localPropDir, dipDir, NoBoundary, lTime, timestep)
}

// SwapNodes toggles the inner/outer role assignment of the two stored nodes
func (o *MacrofractureSegment) SwapNodes() {
	o.reverseNodes = !o.reverseNodes
}

// Reversed reports whether node roles are currently swapped
func (o *MacrofractureSegment) Reversed() bool { return o.reverseNodes }

// InnerNode returns the node nearer the macrofracture's nucleation point
func (o *MacrofractureSegment) InnerNode() *geom.PointIJK {
	if o.reverseNodes {
		return o.propNode
	}
	return o.nonPropNode
}

// OuterNode returns the node farther from the macrofracture's nucleation
// point
func (o *MacrofractureSegment) OuterNode() *geom.PointIJK {
	if o.reverseNodes {
		return o.nonPropNode
	}
	return o.propNode
}

// InnerNodeType returns the segment-node type of the inner node
func (o *MacrofractureSegment) InnerNodeType() SegmentNodeType {
	if o.reverseNodes {
		return o.propNodeType
	}
	return o.nonPropNodeType
}

// OuterNodeType returns the segment-node type of the outer node
func (o *MacrofractureSegment) OuterNodeType() SegmentNodeType {
	if o.reverseNodes {
		return o.nonPropNodeType
	}
	return o.propNodeType
}

// SetInnerNodeType mutates the inner node's type, writing through to
// whichever underlying (non-prop/prop) node currently plays that role
func (o *MacrofractureSegment) SetInnerNodeType(t SegmentNodeType) {
	if o.reverseNodes {
		o.propNodeType = t
	} else {
		o.nonPropNodeType = t
	}
}

// SetOuterNodeType mutates the outer node's type
func (o *MacrofractureSegment) SetOuterNodeType(t SegmentNodeType) {
	if o.reverseNodes {
		o.nonPropNodeType = t
	} else {
		o.propNodeType = t
	}
}

// LocalOrientation returns this segment's propagation direction as seen
// from its current inner->outer orientation, which flips when reversed
func (o *MacrofractureSegment) LocalOrientation() PropagationDirection {
	if o.reverseNodes {
		return o.localPropDir.Opposite()
	}
	return o.localPropDir
}

// SideOfFracture returns which side of the macrofracture (relative to the
// original nucleating gridblock) this segment belongs to
func (o *MacrofractureSegment) SideOfFracture() PropagationDirection {
	if o.reverseNodes {
		return o.originalPropDir.Opposite()
	}
	return o.originalPropDir
}

// Active reports whether the propagating node is still of type Propagating
func (o *MacrofractureSegment) Active() bool {
	return o.propNodeType == Propagating
}

// DipDirection returns the dip direction of this segment
func (o *MacrofractureSegment) DipDirection() DipDirection { return o.dipDirection }

// StrikeLength returns the along-strike (I) length of the segment
func (o *MacrofractureSegment) StrikeLength() float64 {
	return math.Abs(o.propNode.I - o.nonPropNode.I)
}

// TotalLength returns the full planform length of the segment
func (o *MacrofractureSegment) TotalLength() float64 {
	di := o.propNode.I - o.nonPropNode.I
	dj := o.propNode.J - o.nonPropNode.J
	return math.Hypot(di, dj)
}

// Dip returns this segment's dip angle: the dip set's dip, except that a
// relay segment (both nodes of type Relay) is vertical
func (o *MacrofractureSegment) Dip() float64 {
	if o.nonPropNodeType == Relay && o.propNodeType == Relay {
		return math.Pi / 2
	}
	return o.dipSet.Dip()
}

// Azimuth computes this segment's strike-relative azimuth per spec.md §4.2:
// a normal (non-dipping-reversal) segment is set-strike +- pi/2 by dip
// direction; a zero-strike-length relay segment is set-strike; any other
// jogged segment adds the along-strike deflection angle before the +-pi/2
// term. Always wrapped to [0, 2*pi).
func (o *MacrofractureSegment) Azimuth() float64 {
	di := o.propNode.I - o.nonPropNode.I
	dj := o.propNode.J - o.nonPropNode.J
	perp := math.Pi / 2
	if o.dipDirection == JMinus {
		perp = -perp
	}
	switch {
	case dj == 0:
		return geom.WrapAzimuth(o.strike + perp)
	case di == 0:
		return geom.WrapAzimuth(o.strike)
	default:
		return geom.WrapAzimuth(o.strike + math.Atan2(dj, di) + perp)
	}
}

// NonPropNodeBoundary returns the boundary face the non-propagating node
// sits on, or NoBoundary
func (o *MacrofractureSegment) NonPropNodeBoundary() BoundaryFace { return o.nonPropNodeBoundary }

// PropNodeBoundary returns the boundary face the propagating node is
// currently associated with, or NoBoundary
func (o *MacrofractureSegment) PropNodeBoundary() BoundaryFace { return o.propNodeBoundary }

// TrackingBoundary returns the boundary face this segment's propagating
// tip is locked to tracking, or NoBoundary
func (o *MacrofractureSegment) TrackingBoundary() BoundaryFace { return o.trackingBoundary }

// SetPropNodeBoundary mutates PropNodeBoundary, but is silently ignored
// (returns false) while TrackingBoundary is set: once a segment tracks a
// boundary, its propagating node is locked to it (spec.md §3.2, §7).
func (o *MacrofractureSegment) SetPropNodeBoundary(face BoundaryFace) bool {
	if o.trackingBoundary != NoBoundary {
		return false
	}
	o.propNodeBoundary = face
	return true
}

// DeclareTrackingBoundary locks this segment's propagating node to the
// boundary face its non-propagating node already sits on: TrackingBoundary
// is assigned the same value as NonPropNodeBoundary, and PropNodeBoundary
// is brought into agreement (spec.md §3.2).
func (o *MacrofractureSegment) DeclareTrackingBoundary() {
	o.trackingBoundary = o.nonPropNodeBoundary
	o.propNodeBoundary = o.nonPropNodeBoundary
}

// InnerCentrepointInXYZ returns the real-world position of the inner node
func (o *MacrofractureSegment) InnerCentrepointInXYZ() *geom.PointXYZ {
	return o.owner.IJKToXYZ(o.InnerNode())
}

// OuterCentrepointInXYZ returns the real-world position of the outer node
func (o *MacrofractureSegment) OuterCentrepointInXYZ() *geom.PointXYZ {
	return o.owner.IJKToXYZ(o.OuterNode())
}

// cornerOffset returns the plan-view (horizontal) half-offset applied to a
// node's XYZ centre to build its upper/lower cornerpoints, and the
// half-thickness (vertical offset). When useStressShadowWidth is true (the
// MODIFY_FRAC_WIDTH rendering variant, spec.md §9) the horizontal offset is
// the dip set's stress-shadow half-width instead of the thickness-derived
// offset.
func (o *MacrofractureSegment) cornerOffset(nodeXYZ *geom.PointXYZ, useStressShadowWidth bool) (horiz, halfT float64) {
	t := o.owner.TVTAtPoint(nodeXYZ)
	halfT = t / 2
	if useStressShadowWidth {
		horiz = o.dipSet.MeanStressShadowWidth(o.TotalLength())
		return
	}
	dip := o.Dip()
	tanDip := math.Tan(dip)
	if math.Abs(tanDip) < 1e-12 {
		horiz = 0
		return
	}
	horiz = halfT / tanDip
	return
}

func (o *MacrofractureSegment) cornerPoint(nodeXYZ *geom.PointXYZ, azimuth float64, upper, useStressShadowWidth bool) *geom.PointXYZ {
	horiz, halfT := o.cornerOffset(nodeXYZ, useStressShadowWidth)
	sign := -1.0
	if upper {
		sign = 1.0
	}
	dx := sign * horiz * geom.CosTrim(azimuth)
	dy := sign * horiz * geom.SinTrim(azimuth)
	dz := sign * halfT
	return &geom.PointXYZ{X: nodeXYZ.X + dx, Y: nodeXYZ.Y + dy, Z: nodeXYZ.Z + dz}
}

// GetUpperInnerCornerInXYZ returns the upper cornerpoint at the inner node
func (o *MacrofractureSegment) GetUpperInnerCornerInXYZ(useStressShadowWidth bool) *geom.PointXYZ {
	return o.cornerPoint(o.InnerCentrepointInXYZ(), o.Azimuth(), true, useStressShadowWidth)
}

// GetLowerInnerCornerInXYZ returns the lower cornerpoint at the inner node
func (o *MacrofractureSegment) GetLowerInnerCornerInXYZ(useStressShadowWidth bool) *geom.PointXYZ {
	return o.cornerPoint(o.InnerCentrepointInXYZ(), o.Azimuth(), false, useStressShadowWidth)
}

// GetUpperOuterCornerInXYZ returns the upper cornerpoint at the outer node
func (o *MacrofractureSegment) GetUpperOuterCornerInXYZ(useStressShadowWidth bool) *geom.PointXYZ {
	return o.cornerPoint(o.OuterCentrepointInXYZ(), o.Azimuth(), true, useStressShadowWidth)
}

// GetLowerOuterCornerInXYZ returns the lower cornerpoint at the outer node
func (o *MacrofractureSegment) GetLowerOuterCornerInXYZ(useStressShadowWidth bool) *geom.PointXYZ {
	return o.cornerPoint(o.OuterCentrepointInXYZ(), o.Azimuth(), false, useStressShadowWidth)
}

// MeanAperture returns the dip set's mean macrofracture aperture
func (o *MacrofractureSegment) MeanAperture() float64 { return o.dipSet.MeanMacrofractureAperture() }

// Compressibility returns the dip set's macrofracture compressibility
func (o *MacrofractureSegment) Compressibility() float64 { return o.dipSet.MacrofractureCompressibility() }

// NucleationLTime returns the L-time coordinate at nucleation
func (o *MacrofractureSegment) NucleationLTime() float64 { return o.nucleationLTime }

// NucleationTimestep returns the timestep index at nucleation
func (o *MacrofractureSegment) NucleationTimestep() int { return o.nucleationTimestep }

// NucleationRealTime converts the nucleation L-time to real time
func (o *MacrofractureSegment) NucleationRealTime() float64 {
	return o.dipSet.ConvertLengthToTime(o.nucleationLTime, o.nucleationTimestep)
}

// CreateMirrorSegment produces the zero-length twin spawned at first
// creation of a macrofracture: same nucleation point, opposite local
// propagation direction, this segment's non-prop node forced to
// NucleationPoint, and the mirror registered with the gridblock's
// per-direction collection (spec.md §3.3, §4.2).
func (o *MacrofractureSegment) CreateMirrorSegment() *MacrofractureSegment {
	o.nonPropNodeType = NucleationPoint
	mirrorDir := o.localPropDir.Opposite()
	mirror := NewMacrofractureSegment(o.owner, o.DipSetIndex, o.nonPropNode, o.nonPropNode,
		NucleationPoint, Propagating, mirrorDir, mirrorDir, o.dipDirection, o.nonPropNodeBoundary,
		o.nucleationLTime, o.nucleationTimestep)
	o.owner.AddLocalMacrofractureSegment(mirrorDir, mirror)
	return mirror
}

// RemoveFromGridblock asks the owning gridblock to drop this segment from
// its per-direction collection (size-culling)
func (o *MacrofractureSegment) RemoveFromGridblock() {
	o.owner.RemoveLocalMacrofractureSegment(o.localPropDir, o)
}

// MutatePropNode overwrites the propagating node's coordinates in place
// (propagation step)
func (o *MacrofractureSegment) MutatePropNode(p *geom.PointIJK) {
	o.propNode.Set(p.I, p.J, p.K)
}

// IOf returns the owning gridblock's I-coordinate (along-strike scalar
// projection) of an arbitrary XYZ point, used by the global macrofracture
// reconstruction to detect inverted joints.
func (o *MacrofractureSegment) IOf(p *geom.PointXYZ) float64 { return o.owner.ICoordinate(p) }

// JOf returns the owning gridblock's J-coordinate (across-strike scalar
// projection) of an arbitrary XYZ point, used to detect fully-inverted
// relay segments.
func (o *MacrofractureSegment) JOf(p *geom.PointXYZ) float64 { return o.owner.JCoordinate(p) }

// IsRelay reports whether both nodes of this segment are of type Relay,
// the vertical cross-strike connector case (spec.md §4.2)
func (o *MacrofractureSegment) IsRelay() bool {
	return o.nonPropNodeType == Relay && o.propNodeType == Relay
}

// BoundaryCornersFor returns the four corner points of the given boundary
// face from the owning gridblock
func (o *MacrofractureSegment) BoundaryCornersFor(face BoundaryFace) [4]*geom.PointXYZ {
	return o.owner.BoundaryCorners(face)
}

// PropNodeBoundaryFace exposes the boundary face associated with the prop
// node for output-layer bevelling against a gridblock face
func (o *MacrofractureSegment) PropNodeBoundaryFace() BoundaryFace { return o.propNodeBoundary }

// PropNode/NonPropNode give raw access to the two stored nodes regardless
// of current orientation, for callers (e.g. the propagation engine) that
// need to address a physical node rather than a semantic inner/outer role.
func (o *MacrofractureSegment) PropNode() *geom.PointIJK    { return o.propNode }
func (o *MacrofractureSegment) NonPropNode() *geom.PointIJK { return o.nonPropNode }

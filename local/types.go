// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package local implements the per-gridblock ("local") fracture
// primitives: microfractures and macrofracture segments, owned by the
// external Gridblock_FractureSet collaborator, and the interfaces that
// collaborator and the fracture dip sets must satisfy.
package local

// PropagationDirection is the direction a macrofracture segment or its
// chain extends in, relative to the nucleation point.
type PropagationDirection int

const (
	IPlus PropagationDirection = iota
	IMinus
)

// Opposite returns the other propagation direction
func (d PropagationDirection) Opposite() PropagationDirection {
	if d == IPlus {
		return IMinus
	}
	return IPlus
}

func (d PropagationDirection) String() string {
	if d == IPlus {
		return "IPlus"
	}
	return "IMinus"
}

// DipDirection is the across-strike direction a dipping segment dips
// towards.
type DipDirection int

const (
	JPlus DipDirection = iota
	JMinus
)

func (d DipDirection) String() string {
	if d == JPlus {
		return "JPlus"
	}
	return "JMinus"
}

// BoundaryFace names a face of the gridblock a segment node may be pinned
// to or crossing. NoBoundary means the node is not associated with any
// gridblock face.
type BoundaryFace int

const (
	NoBoundary BoundaryFace = iota
	IPlusBoundary
	IMinusBoundary
	JPlusBoundary
	JMinusBoundary
)

// SegmentNodeType classifies the state of one end (node) of a macrofracture
// segment: why it stopped propagating, or that it is still propagating.
type SegmentNodeType int

const (
	NucleationPoint SegmentNodeType = iota
	Propagating
	ConnectedStressShadow
	NonconnectedStressShadow
	Intersection
	Convergence
	ConnectedGridblockBound
	NonconnectedGridblockBound
	Relay
	Pinchout
)

func (t SegmentNodeType) String() string {
	switch t {
	case NucleationPoint:
		return "NucleationPoint"
	case Propagating:
		return "Propagating"
	case ConnectedStressShadow:
		return "ConnectedStressShadow"
	case NonconnectedStressShadow:
		return "NonconnectedStressShadow"
	case Intersection:
		return "Intersection"
	case Convergence:
		return "Convergence"
	case ConnectedGridblockBound:
		return "ConnectedGridblockBound"
	case NonconnectedGridblockBound:
		return "NonconnectedGridblockBound"
	case Relay:
		return "Relay"
	case Pinchout:
		return "Pinchout"
	}
	return "Unknown"
}

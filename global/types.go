// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package global implements the grid-level ("global") fracture aggregates:
// XYZ snapshots of microfractures, and macrofractures reconstructed as a
// chain of local segments with bevelled, inverted and nucleation-adjusted
// geometry (spec.md §4.3–4.4).
package global

import "github.com/cpmech/gofrac/local"

// FractureTipType classifies why a macrofracture's outer tip stopped
// propagating, derived purely from the outer node's SegmentNodeType
// (spec.md §4.3.2 step 4).
type FractureTipType int

const (
	TipPropagating FractureTipType = iota
	TipStressShadow
	TipIntersection
	TipConvergence
	TipOutOfBounds
	TipPinchout
)

func (t FractureTipType) String() string {
	switch t {
	case TipPropagating:
		return "Propagating"
	case TipStressShadow:
		return "StressShadow"
	case TipIntersection:
		return "Intersection"
	case TipConvergence:
		return "Convergence"
	case TipOutOfBounds:
		return "OutOfBounds"
	case TipPinchout:
		return "Pinchout"
	}
	return "Unknown"
}

// ClassifyTip maps an outer-node SegmentNodeType to a FractureTipType per
// the table in spec.md §4.3.2 step 4. The boolean result reports whether
// the back-reference to a terminating fracture should be set from the
// segment's TerminatingSegment.
func ClassifyTip(outer local.SegmentNodeType) (tip FractureTipType, hasTerminatingRef bool) {
	switch outer {
	case local.Propagating:
		return TipPropagating, false
	case local.ConnectedStressShadow:
		return TipStressShadow, true
	case local.NonconnectedStressShadow:
		return TipStressShadow, false
	case local.Intersection:
		return TipIntersection, true
	case local.Convergence:
		return TipConvergence, true
	case local.NonconnectedGridblockBound:
		return TipOutOfBounds, false
	case local.Relay:
		return TipStressShadow, true
	case local.Pinchout:
		return TipPinchout, false
	default:
		// NucleationPoint/ConnectedGridblockBound as an outer node type is
		// illegal per spec.md §4.3.2 step 4; fall back to OutOfBounds
		// rather than panicking, since classification must stay pure.
		return TipOutOfBounds, false
	}
}

// SortProperty selects the total ordering used by dfn.DFN.SortFractures.
// StrikeLength is the size metric for macrofractures, Radius for
// microfractures (spec.md §4.3.4).
type SortProperty int

const (
	SizeSmallestFirst SortProperty = iota
	SizeLargestFirst
	NucleationTime
)

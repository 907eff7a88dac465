// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package local

import "github.com/cpmech/gofrac/geom"

// FractureDipSet is the external collaborator that supplies the mechanical
// and geometric properties shared by every fracture nucleated into one dip
// set of a gridblock (spec.md §6).
type FractureDipSet interface {
	// Dip returns the dip angle (radians) of fractures in this set
	Dip() float64

	// MeanMicrofractureAperture returns the mean aperture of a
	// microfracture of the given radius
	MeanMicrofractureAperture(radius float64) float64

	// MicrofractureCompressibility returns the compressibility of a
	// microfracture of the given radius
	MicrofractureCompressibility(radius float64) float64

	// MeanMacrofractureAperture returns the mean aperture of a
	// macrofracture segment in this set
	MeanMacrofractureAperture() float64

	// MacrofractureCompressibility returns the compressibility of a
	// macrofracture segment in this set
	MacrofractureCompressibility() float64

	// MeanStressShadowWidth returns the half-width of the stress shadow
	// around a fracture, given an implementation-defined sizing argument
	// (e.g. fracture length or aperture)
	MeanStressShadowWidth(arg float64) float64

	// ConvertLengthToTime maps a per-timestep propagation-length (L-time)
	// coordinate to real time, given the timestep in which it nucleated
	ConvertLengthToTime(lTime float64, nucleationTimestep int) float64
}

// GridblockFractureSet is the external collaborator owning the per-layer
// volume a fracture network grows within: it supplies geometry conversions
// and owns the local microfracture and macrofracture-segment collections
// (spec.md §6).
type GridblockFractureSet interface {
	// Strike returns the strike azimuth of the gridblock (radians)
	Strike() float64

	// IJKToXYZ converts a local in-layer coordinate to the grid's
	// real-world coordinate system
	IJKToXYZ(p *geom.PointIJK) *geom.PointXYZ

	// XYZToIJK converts a real-world coordinate to this gridblock's local
	// in-layer coordinate system
	XYZToIJK(p *geom.PointXYZ) *geom.PointIJK

	// ICoordinate returns the scalar projection of p onto the strike axis
	ICoordinate(p *geom.PointXYZ) float64

	// JCoordinate returns the scalar projection of p onto the dip-direction
	// axis
	JCoordinate(p *geom.PointXYZ) float64

	// TVTAtPoint returns the true vertical thickness of the layer at p
	TVTAtPoint(p *geom.PointXYZ) float64

	// BoundaryCorners returns the four corner points of the named
	// boundary face; any entry may be nil if that corner is undefined
	BoundaryCorners(face BoundaryFace) [4]*geom.PointXYZ

	// DipSets returns the ordered list of dip sets defined for this
	// gridblock
	DipSets() []FractureDipSet

	// LocalMicrofractures returns the microfractures currently owned by
	// this gridblock
	LocalMicrofractures() []*Microfracture

	// AddLocalMicrofracture registers a newly nucleated microfracture
	AddLocalMicrofracture(m *Microfracture)

	// RemoveLocalMicrofracture unregisters a microfracture (destroyed or
	// culled)
	RemoveLocalMicrofracture(m *Microfracture)

	// LocalMacrofractureSegments returns the macrofracture segments
	// currently owned by this gridblock for the given propagation
	// direction
	LocalMacrofractureSegments(dir PropagationDirection) []*MacrofractureSegment

	// AddLocalMacrofractureSegment registers a newly created segment
	AddLocalMacrofractureSegment(dir PropagationDirection, seg *MacrofractureSegment)

	// RemoveLocalMacrofractureSegment unregisters a segment (destroyed or
	// culled)
	RemoveLocalMacrofractureSegment(dir PropagationDirection, seg *MacrofractureSegment)
}

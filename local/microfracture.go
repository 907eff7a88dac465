// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package local

import (
	"math"

	"github.com/cpmech/gofrac/geom"
	"github.com/cpmech/gosl/chk"
)

// Microfracture is a penny-shaped, layer-bound fracture confined to a
// single gridblock, referenced in the gridblock's local IJK system.
type Microfracture struct {
	owner  GridblockFractureSet
	dipSet FractureDipSet

	DipSetIndex int
	dipDir      DipDirection
	strike      float64 // the owning gridblock's strike, captured at construction

	centre *geom.PointIJK
	radius float64

	active                 bool
	nucleatedMacrofracture bool

	nucleationLTime    float64
	nucleationTimestep int

	// GlobalID is the non-owning link to the mirroring global
	// microfracture; -1 means unlinked. Set by the linking factory
	// functions in package dfn.
	GlobalID int
}

// NewMicrofractureIJK creates a local microfracture nucleated at an IJK
// point; K must be 0 (the layer mid-plane), matching the invariant that
// fractures always nucleate at K=0.
func NewMicrofractureIJK(owner GridblockFractureSet, dipSetIndex int, centre *geom.PointIJK, dipDir DipDirection, lTime float64, timestep int) *Microfracture {
	if centre.K != 0 {
		chk.Panic("microfracture must nucleate at K=0, got K=%g", centre.K)
	}
	dipSets := owner.DipSets()
	if dipSetIndex < 0 || dipSetIndex >= len(dipSets) {
		chk.Panic("invalid dip set index %d", dipSetIndex)
	}
	return &Microfracture{
		owner:              owner,
		dipSet:             dipSets[dipSetIndex],
		DipSetIndex:        dipSetIndex,
		dipDir:             dipDir,
		strike:             owner.Strike(),
		centre:             centre.Copy(),
		radius:             0,
		active:             true,
		nucleationLTime:    lTime,
		nucleationTimestep: timestep,
		GlobalID:           -1,
	}
}

// NewMicrofractureXYZ creates a local microfracture nucleated at a
// real-world point, converted through the owning fracture set
func NewMicrofractureXYZ(owner GridblockFractureSet, dipSetIndex int, centre *geom.PointXYZ, dipDir DipDirection, lTime float64, timestep int) *Microfracture {
	return NewMicrofractureIJK(owner, dipSetIndex, owner.XYZToIJK(centre), dipDir, lTime, timestep)
}

// Centre returns the mutable IJK centre point
func (o *Microfracture) Centre() *geom.PointIJK { return o.centre }

// Radius returns the current radius
func (o *Microfracture) Radius() float64 { return o.radius }

// SetRadius mutates the radius (propagation)
func (o *Microfracture) SetRadius(r float64) { o.radius = r }

// Dip returns the immutable dip angle of this fracture's dip set
func (o *Microfracture) Dip() float64 { return o.dipSet.Dip() }

// DipDirection returns the dip direction
func (o *Microfracture) DipDirection() DipDirection { return o.dipDir }

// Azimuth derives the strike-perpendicular azimuth from the gridblock
// strike, offset by +-pi/2 depending on dip direction, wrapped to [0,2pi)
func (o *Microfracture) Azimuth() float64 {
	if o.dipDir == JPlus {
		return geom.WrapAzimuth(o.strike + math.Pi/2)
	}
	return geom.WrapAzimuth(o.strike - math.Pi/2)
}

// Active reports whether this microfracture is still able to propagate
func (o *Microfracture) Active() bool { return o.active }

// SetActive mutates the active flag
func (o *Microfracture) SetActive(v bool) { o.active = v }

// NucleatedMacrofracture reports whether this microfracture has seeded a
// macrofracture and should be evicted from the DFN on next update
func (o *Microfracture) NucleatedMacrofracture() bool { return o.nucleatedMacrofracture }

// SetNucleatedMacrofracture mutates the nucleated-macrofracture flag
func (o *Microfracture) SetNucleatedMacrofracture(v bool) { o.nucleatedMacrofracture = v }

// NucleationLTime returns the L-time coordinate at nucleation
func (o *Microfracture) NucleationLTime() float64 { return o.nucleationLTime }

// NucleationTimestep returns the timestep index at nucleation
func (o *Microfracture) NucleationTimestep() int { return o.nucleationTimestep }

// NucleationRealTime converts the nucleation L-time to real time via the
// dip set's time-unit conversion
func (o *Microfracture) NucleationRealTime() float64 {
	return o.dipSet.ConvertLengthToTime(o.nucleationLTime, o.nucleationTimestep)
}

// CentreInXYZ returns the real-world position of the centre point
func (o *Microfracture) CentreInXYZ() *geom.PointXYZ {
	return o.owner.IJKToXYZ(o.centre)
}

// MeanAperture returns the mean aperture of this microfracture at its
// current radius
func (o *Microfracture) MeanAperture() float64 {
	return o.dipSet.MeanMicrofractureAperture(o.radius)
}

// Compressibility returns the compressibility of this microfracture at its
// current radius
func (o *Microfracture) Compressibility() float64 {
	return o.dipSet.MicrofractureCompressibility(o.radius)
}

// RequestRemoval asks the owning gridblock to drop this microfracture from
// its collection (destruction on nucleation or size-culling)
func (o *Microfracture) RequestRemoval() {
	o.owner.RemoveLocalMicrofracture(o)
}

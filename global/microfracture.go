// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package global

import (
	"math"

	"github.com/cpmech/gofrac/geom"
	"github.com/cpmech/gofrac/local"
	"github.com/cpmech/gosl/utl"
)

// Microfracture is the XYZ snapshot of one local microfracture (spec.md
// §3.1, §4.4). ID, SetIndex, Azimuth, Dip and NucleationRealTime are fixed
// at construction; the rest is re-populated from the linked local on
// demand.
type Microfracture struct {
	ID                 int
	SetIndex           int
	Local              *local.Microfracture // non-owning
	azimuth            float64
	dip                float64
	nucleationRealTime float64

	centre                 *geom.PointXYZ
	radius                 float64
	active                 bool
	nucleatedMacrofracture bool
	aperture               float64
	compressibility        float64
}

// NewMicrofracture creates a global microfracture mirroring loc, with the
// given process-wide unique ID, and immediately populates its mutable data.
func NewMicrofracture(id int, loc *local.Microfracture) *Microfracture {
	o := &Microfracture{
		ID:                 id,
		SetIndex:           loc.DipSetIndex,
		Local:              loc,
		azimuth:            loc.Azimuth(),
		dip:                loc.Dip(),
		nucleationRealTime: loc.NucleationRealTime(),
	}
	o.PopulateData()
	return o
}

// PopulateData refreshes centre, radius, mean aperture, compressibility,
// active and nucleated-macrofracture flags from the linked local
// microfracture (spec.md §4.4).
func (o *Microfracture) PopulateData() {
	o.centre = o.Local.CentreInXYZ()
	o.radius = o.Local.Radius()
	o.active = o.Local.Active()
	o.nucleatedMacrofracture = o.Local.NucleatedMacrofracture()
	o.aperture = o.Local.MeanAperture()
	o.compressibility = o.Local.Compressibility()
}

func (o *Microfracture) Azimuth() float64               { return o.azimuth }
func (o *Microfracture) Dip() float64                   { return o.dip }
func (o *Microfracture) NucleationRealTime() float64    { return o.nucleationRealTime }
func (o *Microfracture) Centre() *geom.PointXYZ         { return o.centre }
func (o *Microfracture) Radius() float64                { return o.radius }
func (o *Microfracture) Active() bool                   { return o.active }
func (o *Microfracture) NucleatedMacrofracture() bool   { return o.nucleatedMacrofracture }
func (o *Microfracture) Aperture() float64              { return o.aperture }
func (o *Microfracture) Compressibility() float64       { return o.compressibility }

// SizeMetric returns the size used for sorting/culling: radius
func (o *Microfracture) SizeMetric() float64 { return o.radius }

// Clone deep-copies o's reconstructed geometry (the centre point) so a
// later PopulateData on the live microfracture cannot mutate a snapshot
// taken for intermediate-time export (spec.md §4.5); Local keeps its
// non-owning back-reference to the local layer, per spec.md §5.
func (o *Microfracture) Clone() *Microfracture {
	cp := *o
	if o.centre != nil {
		cp.centre = o.centre.Copy()
	}
	return &cp
}

// GetFractureCornerpointsInXYZ returns n equally-spaced perimeter points of
// the tilted disc representing this microfracture, for polygon output: I
// runs along strike, J along the dip direction projected by cos(dip), Z by
// sin(dip) (spec.md §4.4).
func (o *Microfracture) GetFractureCornerpointsInXYZ(n int) []*geom.PointXYZ {
	n = utl.Imax(n, 3)
	_, strikeDir, downDip := geom.DipAzimuthBasis(o.azimuth, o.dip)
	pts := make([]*geom.PointXYZ, n)
	for k := 0; k < n; k++ {
		theta := 2 * math.Pi * float64(k) / float64(n)
		cu, cv := o.radius*math.Cos(theta), o.radius*math.Sin(theta)
		pts[k] = &geom.PointXYZ{
			X: o.centre.X + cu*strikeDir.X + cv*downDip.X,
			Y: o.centre.Y + cu*strikeDir.Y + cv*downDip.Y,
			Z: o.centre.Z + cu*strikeDir.Z + cv*downDip.Z,
		}
	}
	return pts
}

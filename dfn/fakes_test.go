// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dfn

import (
	"github.com/cpmech/gofrac/geom"
	"github.com/cpmech/gofrac/local"
)

type fakeDipSet struct{ dip float64 }

func (o *fakeDipSet) Dip() float64                                        { return o.dip }
func (o *fakeDipSet) MeanMicrofractureAperture(radius float64) float64    { return 1e-4 }
func (o *fakeDipSet) MicrofractureCompressibility(radius float64) float64 { return 1e-9 }
func (o *fakeDipSet) MeanMacrofractureAperture() float64                  { return 2e-4 }
func (o *fakeDipSet) MacrofractureCompressibility() float64               { return 2e-9 }
func (o *fakeDipSet) MeanStressShadowWidth(arg float64) float64           { return 0.5 }
func (o *fakeDipSet) ConvertLengthToTime(lTime float64, timestep int) float64 {
	return lTime
}

// fakeGridblock is aligned with XYZ: strike along X, dip direction along Y.
type fakeGridblock struct {
	dipSets    []local.FractureDipSet
	thickness  float64
	micros     []*local.Microfracture
	segs       [2][]*local.MacrofractureSegment
	boundaries map[local.BoundaryFace][4]*geom.PointXYZ
}

func newFakeGridblock(dip float64) *fakeGridblock {
	return &fakeGridblock{
		dipSets:   []local.FractureDipSet{&fakeDipSet{dip: dip}},
		thickness: 10,
	}
}

func (o *fakeGridblock) Strike() float64 { return 0 }

func (o *fakeGridblock) IJKToXYZ(p *geom.PointIJK) *geom.PointXYZ {
	return geom.NewPointXYZ(p.I, p.J, p.K)
}
func (o *fakeGridblock) XYZToIJK(p *geom.PointXYZ) *geom.PointIJK {
	return geom.NewPointIJK(p.X, p.Y, p.Z)
}
func (o *fakeGridblock) ICoordinate(p *geom.PointXYZ) float64 { return p.X }
func (o *fakeGridblock) JCoordinate(p *geom.PointXYZ) float64 { return p.Y }
func (o *fakeGridblock) TVTAtPoint(p *geom.PointXYZ) float64  { return o.thickness }

func (o *fakeGridblock) BoundaryCorners(face local.BoundaryFace) [4]*geom.PointXYZ {
	return o.boundaries[face]
}

func (o *fakeGridblock) DipSets() []local.FractureDipSet { return o.dipSets }

func (o *fakeGridblock) LocalMicrofractures() []*local.Microfracture { return o.micros }
func (o *fakeGridblock) AddLocalMicrofracture(m *local.Microfracture) {
	o.micros = append(o.micros, m)
}
func (o *fakeGridblock) RemoveLocalMicrofracture(m *local.Microfracture) {
	for i, x := range o.micros {
		if x == m {
			o.micros = append(o.micros[:i], o.micros[i+1:]...)
			return
		}
	}
}

func (o *fakeGridblock) LocalMacrofractureSegments(dir local.PropagationDirection) []*local.MacrofractureSegment {
	return o.segs[dir]
}
func (o *fakeGridblock) AddLocalMacrofractureSegment(dir local.PropagationDirection, seg *local.MacrofractureSegment) {
	o.segs[dir] = append(o.segs[dir], seg)
}
func (o *fakeGridblock) RemoveLocalMacrofractureSegment(dir local.PropagationDirection, seg *local.MacrofractureSegment) {
	list := o.segs[dir]
	for i, x := range list {
		if x == seg {
			o.segs[dir] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package local

import "github.com/cpmech/gofrac/geom"

// fakeDipSet is a minimal FractureDipSet test double with a fixed dip and
// constant mechanical properties.
type fakeDipSet struct {
	dip float64
}

func (o *fakeDipSet) Dip() float64                                     { return o.dip }
func (o *fakeDipSet) MeanMicrofractureAperture(radius float64) float64 { return 1e-4 }
func (o *fakeDipSet) MicrofractureCompressibility(radius float64) float64 { return 1e-9 }
func (o *fakeDipSet) MeanMacrofractureAperture() float64                { return 2e-4 }
func (o *fakeDipSet) MacrofractureCompressibility() float64             { return 2e-9 }
func (o *fakeDipSet) MeanStressShadowWidth(arg float64) float64         { return 0.5 }
func (o *fakeDipSet) ConvertLengthToTime(lTime float64, timestep int) float64 {
	return lTime
}

// fakeGridblock is a minimal GridblockFractureSet test double: its IJK
// system is aligned with XYZ (strike along X, dip direction along Y), and
// the layer has a constant thickness.
type fakeGridblock struct {
	dipSets    []FractureDipSet
	thickness  float64
	micros     []*Microfracture
	segs       [2][]*MacrofractureSegment
	boundaries map[BoundaryFace][4]*geom.PointXYZ
}

func newFakeGridblock(dip float64) *fakeGridblock {
	return &fakeGridblock{
		dipSets:   []FractureDipSet{&fakeDipSet{dip: dip}},
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

func (o *fakeGridblock) BoundaryCorners(face BoundaryFace) [4]*geom.PointXYZ {
	return o.boundaries[face]
}

func (o *fakeGridblock) DipSets() []FractureDipSet { return o.dipSets }

func (o *fakeGridblock) LocalMicrofractures() []*Microfracture { return o.micros }
func (o *fakeGridblock) AddLocalMicrofracture(m *Microfracture) {
	o.micros = append(o.micros, m)
}
func (o *fakeGridblock) RemoveLocalMicrofracture(m *Microfracture) {
	for i, x := range o.micros {
		if x == m {
			o.micros = append(o.micros[:i], o.micros[i+1:]...)
			return
		}
	}
}

func (o *fakeGridblock) LocalMacrofractureSegments(dir PropagationDirection) []*MacrofractureSegment {
	return o.segs[dir]
}
func (o *fakeGridblock) AddLocalMacrofractureSegment(dir PropagationDirection, seg *MacrofractureSegment) {
	o.segs[dir] = append(o.segs[dir], seg)
}
func (o *fakeGridblock) RemoveLocalMacrofractureSegment(dir PropagationDirection, seg *MacrofractureSegment) {
	list := o.segs[dir]
	for i, x := range list {
		if x == seg {
			o.segs[dir] = append(list[:i], list[i+1:]...)
			return
		}
	}
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"

	"github.com/cpmech/gosl/la"
)

// trimEps is the angular/argument magnitude below which the trimmed
// trigonometric helpers snap their result to exactly zero. Matches the
// corotational-axis clamp that ele/solid/rjoint.go applies to avoid noise
// from values that should be exact zeros propagating through bevelling.
const trimEps = 1e-9

// VectorXYZ is a 3-component vector in the grid's real-world coordinate
// system, used for azimuth/dip unit directions and cornerpoint offsets.
type VectorXYZ struct {
	X, Y, Z float64
}

// NewVectorXYZ allocates a new vector
func NewVectorXYZ(x, y, z float64) *VectorXYZ {
	return &VectorXYZ{X: x, Y: y, Z: z}
}

// Slice returns o as a []float64, compatible with gosl/la dense-vector ops
func (o *VectorXYZ) Slice() []float64 {
	return []float64{o.X, o.Y, o.Z}
}

// Norm returns the Euclidean length of o, via gosl/la.VecNorm
func (o *VectorXYZ) Norm() float64 {
	return la.VecNorm(o.Slice())
}

// Dot returns the dot product of o and b
func (o *VectorXYZ) Dot(b *VectorXYZ) float64 {
	return o.X*b.X + o.Y*b.Y + o.Z*b.Z
}

// Cross returns the cross product o x b
func (o *VectorXYZ) Cross(b *VectorXYZ) *VectorXYZ {
	return &VectorXYZ{
		X: o.Y*b.Z - o.Z*b.Y,
		Y: o.Z*b.X - o.X*b.Z,
		Z: o.X*b.Y - o.Y*b.X,
	}
}

// Normalize scales o in place to unit length, via gosl/la.VecScale (the
// same res:=0+s*v in-place idiom ele/solid/rjoint.go uses to normalise a
// corotational axis); a zero vector is left unchanged (there is no
// meaningful direction to normalise to)
func (o *VectorXYZ) Normalize() {
	n := o.Norm()
	if n < trimEps {
		return
	}
	s := o.Slice()
	la.VecScale(s, 0, 1/n, s)
	o.X, o.Y, o.Z = s[0], s[1], s[2]
}

// SinTrim returns sin(arg), clamped to exactly 0 when |arg| < trimEps so
// that downstream azimuth-wrapping and bevelling comparisons see a true
// zero instead of floating noise.
func SinTrim(arg float64) float64 {
	if math.Abs(arg) < trimEps {
		return 0
	}
	return math.Sin(arg)
}

// CosTrim returns cos(arg); unlike SinTrim this is never snapped to zero
// at small |arg| (cos(0)==1, not 0) but values that would otherwise sit at
// ±1e-17 due to argument noise near π/2 are clamped to 0.
func CosTrim(arg float64) float64 {
	c := math.Cos(arg)
	if math.Abs(c) < trimEps {
		return 0
	}
	return c
}

// WrapAzimuth reduces an azimuth angle (radians) into [0, 2*pi)
func WrapAzimuth(az float64) float64 {
	const twoPi = 2 * math.Pi
	az = math.Mod(az, twoPi)
	if az < 0 {
		az += twoPi
	}
	return az
}

// GetNormalToPlane returns the unit normal of a plane given its dip-
// direction azimuth (the compass direction it dips towards) and its dip,
// both in radians. Strike runs perpendicular to azimuth in the horizontal
// plane; the down-dip direction tilts from azimuth by dip below horizontal.
// The normal is their cross product.
func GetNormalToPlane(azimuth, dip float64) *VectorXYZ {
	strike := &VectorXYZ{X: -SinTrim(azimuth), Y: CosTrim(azimuth), Z: 0}
	downdip := &VectorXYZ{
		X: CosTrim(dip) * CosTrim(azimuth),
		Y: CosTrim(dip) * SinTrim(azimuth),
		Z: -SinTrim(dip),
	}
	n := strike.Cross(downdip)
	n.Normalize()
	return n
}

// DipAzimuthBasis returns the horizontal dip-direction unit vector, the
// strike unit vector (perpendicular, horizontal), and the full down-dip
// unit vector (tilted below horizontal by dip) for the given dip-direction
// azimuth and dip, both in radians.
func DipAzimuthBasis(azimuth, dip float64) (dipDirHoriz, strikeDir, downDip *VectorXYZ) {
	dipDirHoriz = &VectorXYZ{X: CosTrim(azimuth), Y: SinTrim(azimuth), Z: 0}
	strikeDir = &VectorXYZ{X: -SinTrim(azimuth), Y: CosTrim(azimuth), Z: 0}
	downDip = &VectorXYZ{X: CosTrim(dip) * CosTrim(azimuth), Y: CosTrim(dip) * SinTrim(azimuth), Z: -SinTrim(dip)}
	return
}

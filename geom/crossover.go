// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "math"

// CrossoverMode selects how far a line may be extended beyond its own
// endpoints before being accepted as a crossover partner.
type CrossoverMode int

const (
	// Trim allows each line to be extended beyond its own segment by up
	// to ExtensionRatio times its own length; used for interior-joint and
	// tip bevelling against a neighbouring or terminating edge.
	Trim CrossoverMode = iota

	// Restrict requires the crossover to fall strictly within both input
	// segments; used when bevelling against a bounded gridblock face.
	Restrict
)

// DefaultExtensionRatio is the Trim-mode extension allowance used for
// interior-joint bevelling (spec: extension ratio 1.0).
const DefaultExtensionRatio = 1.0

// DefaultAngleTolerance is the minimum angle (radians, ~1 degree) below
// which two lines are treated as parallel and no crossover is returned.
const DefaultAngleTolerance = 0.02

// Line is a pair of endpoints defining an (infinite, trimmed, or
// restricted) line for crossover purposes.
type Line struct {
	A, B *PointXYZ
}

// Crossover2D finds the crossover of two lines projected onto the XY
// (map-view) plane. The returned point's Z is interpolated along line l1 at
// the crossover parameter. Returns (nil, false) when the lines are
// parallel, below the angular tolerance, either line has zero planform
// length, or (depending on mode) the crossover falls outside the allowed
// range.
func Crossover2D(l1, l2 Line, mode CrossoverMode, extensionRatio, angleTol float64) (*PointXYZ, bool) {
	d1x, d1y := l1.B.X-l1.A.X, l1.B.Y-l1.A.Y
	d2x, d2y := l2.B.X-l2.A.X, l2.B.Y-l2.A.Y
	len1 := math.Hypot(d1x, d1y)
	len2 := math.Hypot(d2x, d2y)
	if len1 < 1e-12 || len2 < 1e-12 {
		return nil, false
	}
	denom := d1x*d2y - d1y*d2x
	// angle between the two directions, folded into [0, pi/2]
	cosang := (d1x*d2x + d1y*d2y) / (len1 * len2)
	if cosang > 1 {
		cosang = 1
	}
	if cosang < -1 {
		cosang = -1
	}
	angle := math.Acos(math.Abs(cosang))
	if math.Abs(denom) < 1e-12 || angle < angleTol {
		return nil, false
	}
	ex, ey := l2.A.X-l1.A.X, l2.A.Y-l1.A.Y
	t := (ex*d2y - ey*d2x) / denom
	s := (ex*d1y - ey*d1x) / denom
	if !withinRange(t, mode, extensionRatio) || !withinRange(s, mode, extensionRatio) {
		return nil, false
	}
	z := l1.A.Z + t*(l1.B.Z-l1.A.Z)
	return &PointXYZ{X: l1.A.X + t*d1x, Y: l1.A.Y + t*d1y, Z: z}, true
}

// Crossover3D finds the crossover of two lines in full 3D. For skew lines
// (the general case) this is the midpoint of the pair of closest points on
// each line, which degenerates to the true intersection when the lines are
// coplanar and not parallel. Returns (nil, false) under the same
// degeneracies as Crossover2D, evaluated in 3D.
func Crossover3D(l1, l2 Line, mode CrossoverMode, extensionRatio, angleTol float64) (*PointXYZ, bool) {
	d1 := &VectorXYZ{X: l1.B.X - l1.A.X, Y: l1.B.Y - l1.A.Y, Z: l1.B.Z - l1.A.Z}
	d2 := &VectorXYZ{X: l2.B.X - l2.A.X, Y: l2.B.Y - l2.A.Y, Z: l2.B.Z - l2.A.Z}
	len1, len2 := d1.Norm(), d2.Norm()
	if len1 < 1e-12 || len2 < 1e-12 {
		return nil, false
	}
	cosang := d1.Dot(d2) / (len1 * len2)
	if cosang > 1 {
		cosang = 1
	}
	if cosang < -1 {
		cosang = -1
	}
	angle := math.Acos(math.Abs(cosang))
	if angle < angleTol {
		return nil, false
	}
	// standard closest-point-between-two-lines solution
	r := &VectorXYZ{X: l1.A.X - l2.A.X, Y: l1.A.Y - l2.A.Y, Z: l1.A.Z - l2.A.Z}
	a := d1.Dot(d1)
	b := d1.Dot(d2)
	c := d2.Dot(d2)
	d := d1.Dot(r)
	e := d2.Dot(r)
	denom := a*c - b*b
	if math.Abs(denom) < 1e-12 {
		return nil, false
	}
	t := (b*e - c*d) / denom
	s := (a*e - b*d) / denom
	if !withinRange(t, mode, extensionRatio) || !withinRange(s, mode, extensionRatio) {
		return nil, false
	}
	p1 := &PointXYZ{X: l1.A.X + t*d1.X, Y: l1.A.Y + t*d1.Y, Z: l1.A.Z + t*d1.Z}
	p2 := &PointXYZ{X: l2.A.X + s*d2.X, Y: l2.A.Y + s*d2.Y, Z: l2.A.Z + s*d2.Z}
	return &PointXYZ{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2, Z: (p1.Z + p2.Z) / 2}, true
}

// withinRange reports whether parameter t (0 at line.A, 1 at line.B) is
// acceptable for the given mode: Restrict confines t to [0,1]; Trim allows
// extension by extensionRatio beyond either end.
func withinRange(t float64, mode CrossoverMode, extensionRatio float64) bool {
	if mode == Restrict {
		return t >= 0 && t <= 1
	}
	return t >= -extensionRatio && t <= 1+extensionRatio
}

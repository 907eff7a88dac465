// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the geometry primitives shared by the local and
// global fracture packages: points in XYZ and in-layer IJK coordinates,
// vectors with trimmed trigonometric helpers, and line-crossover routines.
package geom

// PointXYZ holds a mutable point in the grid's real-world coordinate system.
type PointXYZ struct {
	X, Y, Z float64
}

// NewPointXYZ allocates a new point
func NewPointXYZ(x, y, z float64) *PointXYZ {
	return &PointXYZ{X: x, Y: y, Z: z}
}

// Copy returns a new point with the same coordinates; value semantics are
// always explicit in this package, so aliasing a *PointXYZ never happens
// by accident when a copy is intended.
func (o *PointXYZ) Copy() *PointXYZ {
	return &PointXYZ{X: o.X, Y: o.Y, Z: o.Z}
}

// Set overwrites the coordinates of o in place
func (o *PointXYZ) Set(x, y, z float64) {
	o.X, o.Y, o.Z = x, y, z
}

// Add translates o in place by (dx,dy,dz)
func (o *PointXYZ) Add(dx, dy, dz float64) {
	o.X += dx
	o.Y += dy
	o.Z += dz
}

// ComparePoints tests equality of two points after rounding both to
// single-precision, matching the source tool's float32 comparison so that
// accumulated double-precision drift from repeated bevelling does not
// spuriously break duplicate-point suppression.
func ComparePoints(a, b *PointXYZ) bool {
	if a == nil || b == nil {
		return a == b
	}
	return float32(a.X) == float32(b.X) &&
		float32(a.Y) == float32(b.Y) &&
		float32(a.Z) == float32(b.Z)
}

// PointIJK holds a local, in-layer coordinate: I runs along strike, J runs
// across strike (dip direction), K is vertical within the layer. K=0 is the
// layer mid-plane; every fracture nucleates at K=0.
type PointIJK struct {
	I, J, K float64
}

// NewPointIJK allocates a new local point
func NewPointIJK(i, j, k float64) *PointIJK {
	return &PointIJK{I: i, J: j, K: k}
}

// Copy returns a new point with the same coordinates
func (o *PointIJK) Copy() *PointIJK {
	return &PointIJK{I: o.I, J: o.J, K: o.K}
}

// Set overwrites the coordinates of o in place
func (o *PointIJK) Set(i, j, k float64) {
	o.I, o.J, o.K = i, j, k
}

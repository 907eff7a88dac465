// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vector01(tst *testing.T) {

	chk.PrintTitle("vector01")

	// a flat-lying fracture (dip = 0) has a vertical normal, regardless of
	// azimuth
	n := GetNormalToPlane(0, 0)
	chk.Scalar(tst, "n.X", 1e-15, n.X, 0)
	chk.Scalar(tst, "n.Y", 1e-15, n.Y, 0)
	chk.Scalar(tst, "|n|", 1e-14, n.Norm(), 1)

	// a vertical fracture (dip = pi/2) has a horizontal normal
	n2 := GetNormalToPlane(0, math.Pi/2)
	chk.Scalar(tst, "n2.Z", 1e-14, n2.Z, 0)
	chk.Scalar(tst, "|n2|", 1e-14, n2.Norm(), 1)
}

func Test_vector02(tst *testing.T) {

	chk.PrintTitle("vector02")

	dipDir, strike, downDip := DipAzimuthBasis(math.Pi/2, math.Pi/4)
	chk.Scalar(tst, "dipDir.Y", 1e-14, dipDir.Y, 1)
	chk.Scalar(tst, "strike.X", 1e-14, strike.X, -1)
	chk.Scalar(tst, "downDip norm", 1e-14, downDip.Norm(), 1)
	if dipDir.Dot(strike) > 1e-12 {
		tst.Errorf("dip direction and strike must be orthogonal")
	}
}

func Test_vector03(tst *testing.T) {

	chk.PrintTitle("vector03")

	chk.Scalar(tst, "WrapAzimuth(-pi/4)", 1e-14, WrapAzimuth(-math.Pi/4), 2*math.Pi-math.Pi/4)
	chk.Scalar(tst, "WrapAzimuth(3*pi)", 1e-14, WrapAzimuth(3*math.Pi), math.Pi)
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"

	"github.com/cpmech/gofrac/geom"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/tsr"
)

// TimeUnit selects the unit a DeformationEpisode's rate fields are
// specified in before being normalised to SI (per second) on load.
type TimeUnit int

const (
	Second TimeUnit = iota
	Year
	MillionYears
)

// secondsPer converts one unit of u into seconds, matching the
// second/year/ma multipliers spec.md §4.6 prescribes.
func secondsPer(u TimeUnit) float64 {
	const daysPerYear = 365.25
	const secPerDay = 86400.0
	switch u {
	case Second:
		return 1
	case Year:
		return daysPerYear * secPerDay
	case MillionYears:
		return 1e6 * daysPerYear * secPerDay
	}
	chk.Panic("invalid TimeUnit %d", int(u))
	return 0
}

// InitialStress carries either a full initial stress tensor or just the
// absolute vertical stress, together with the initial fluid pressure
// (spec.md §4.6).
type InitialStress struct {
	HasFullTensor bool      `json:"hasfulltensor"`
	Sigma         []float64 `json:"sigma"`  // full tensor, Mandel components, used when HasFullTensor
	SigmaV        float64   `json:"sigmav"` // absolute vertical stress, used otherwise
	FluidPressure float64   `json:"pl0"`
}

// DeformationEpisode is one stage of a propagation-control schedule: an
// applied strain-rate (or, if present, an absolute stress-rate that
// overrides strain control), overpressure/temperature/uplift rates, a
// stress-arching factor, and a duration (spec.md §4.6). A negative
// Duration means "terminate automatically when fractures stop growing".
type DeformationEpisode struct {
	Index int `json:"index"` // 1-based episode number, rewritten on insertion into a PropagationControl

	TimeUnit TimeUnit `json:"timeunit"`

	StrainRate []float64 `json:"strainrate"` // Mandel components, per TimeUnit
	StressRate []float64 `json:"stressrate"` // nil/empty means strain-controlled; non-nil overrides strain control

	OverpressureRate   float64 `json:"overpressurerate"`
	TemperatureRate    float64 `json:"temperaturerate"`
	UpliftRate         float64 `json:"upliftrate"`
	StressArchingRatio float64 `json:"stressarchingratio"`

	Duration float64 `json:"duration"` // per TimeUnit; negative means automatic termination

	InitialStress *InitialStress `json:"initialstress"` // optional
}

// StrainRateSI returns the strain-rate tensor converted to SI (per-second)
// rates
func (o *DeformationEpisode) StrainRateSI() []float64 {
	return scaleTensor(o.StrainRate, 1/secondsPer(o.TimeUnit))
}

// StressRateSI returns the stress-rate tensor converted to SI (per-second)
// rates, or nil when this episode is strain-controlled
func (o *DeformationEpisode) StressRateSI() []float64 {
	if len(o.StressRate) == 0 {
		return nil
	}
	return scaleTensor(o.StressRate, 1/secondsPer(o.TimeUnit))
}

// DurationSI returns the duration in SI seconds; a negative input duration
// (automatic termination) is passed through unchanged as a sentinel
func (o *DeformationEpisode) DurationSI() float64 {
	if o.Duration < 0 {
		return o.Duration
	}
	return o.Duration * secondsPer(o.TimeUnit)
}

func scaleTensor(t []float64, f float64) []float64 {
	if len(t) == 0 {
		return nil
	}
	out := make([]float64, len(t))
	for i, v := range t {
		out[i] = v * f
	}
	return out
}

// isAnisotropic reports whether the in-plane (horizontal) part of t has a
// non-trivial principal direction: Exx != Eyy or Exy != 0
func isAnisotropic(t []float64) bool {
	if len(t) == 0 {
		return false
	}
	xx, yy, xy := tsr.M2T(t, 0, 0), tsr.M2T(t, 1, 1), tsr.M2T(t, 0, 1)
	return math.Abs(xx-yy) > 1e-15 || math.Abs(xy) > 1e-15
}

// minHorizontalAzimuth returns the azimuth (radians, from the x axis) of
// the minimum in-plane principal direction of the horizontal 2x2 block of
// t, via the closed-form 2x2 eigenvector angle
func minHorizontalAzimuth(t []float64) float64 {
	xx, yy, xy := tsr.M2T(t, 0, 0), tsr.M2T(t, 1, 1), tsr.M2T(t, 0, 1)
	theta := 0.5 * math.Atan2(2*xy, xx-yy)
	// theta is the direction of the maximum principal value (xx+yy)/2 + R;
	// the minimum-value direction is perpendicular to it.
	theta += math.Pi / 2
	return geom.WrapAzimuth(theta)
}

// MinHorizontalStrainAzimuth returns the minimum-horizontal-strain azimuth
// (radians): derived from the stress tensor whenever StressRate is present,
// else from the strain tensor; NaN when the tensor used is isotropic
// (spec.md §4.6).
func (o *DeformationEpisode) MinHorizontalStrainAzimuth() float64 {
	if len(o.StressRate) > 0 {
		if isAnisotropic(o.StressRate) {
			return minHorizontalAzimuth(o.StressRate)
		}
		return math.NaN()
	}
	if isAnisotropic(o.StrainRate) {
		return minHorizontalAzimuth(o.StrainRate)
	}
	return math.NaN()
}

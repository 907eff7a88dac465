// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// StressDistribution selects how the propagation engine distributes
// stress around an active fracture.
type StressDistribution int

const (
	EvenlyDistributedStress StressDistribution = iota
	StressShadow
	DuctileBoundary
)

// FractureApertureType selects the aperture model a propagation engine
// assigns to new fracture segments.
type FractureApertureType int

const (
	ConstantAperture FractureApertureType = iota
	LengthScaledAperture
	StressDependentAperture
)

// randomNucleationPosition is the sentinel NucleationPosition value
// meaning "draw uniformly at random" (spec.md §4.6)
const randomNucleationPosition = -1.0

// PropagationControl carries the ordered schedule of deformation
// episodes, the accuracy/termination controls, and the nucleation and
// stress-distribution settings for one DFN generation run (spec.md §4.6).
type PropagationControl struct {
	Episodes []*DeformationEpisode `json:"episodes"`

	MaxTsMFP33Increase                  float64 `json:"maxtsmfp33increase"`
	HistoricAMFP33TerminationRatio      float64 `json:"historicamfp33terminationratio"`
	ActiveTotalMFP30TerminationRatio    float64 `json:"activetotalmfp30terminationratio"`
	MinimumClearZoneVolume              float64 `json:"minimumclearzonevolume"`

	MaxTimestep float64 `json:"maxtimestep"`
	MinTimestep float64 `json:"mintimestep"`

	MicrofractureRadiusBinCount int `json:"microfractureradiusbincount"`

	// NucleationPosition in [0,1] selects a fixed fractional position along
	// a candidate nucleation segment; randomNucleationPosition (-1), or any
	// negative value, selects random-draw mode. This type only reports the
	// mode (IsRandomNucleationPosition); it does not draw a position.
	NucleationPosition float64 `json:"nucleationposition"`

	StressDistribution    StressDistribution   `json:"stressdistribution"`
	FracturePorosity      bool                 `json:"fractureporosity"`
	FractureApertureType  FractureApertureType `json:"fractureaperturetype"`

	// DefaultHMinAzimuth is used when no episode carries an anisotropic
	// strain or stress load (spec.md §4.6).
	DefaultHMinAzimuth float64 `json:"defaulthminazimuth"`
}

// AddEpisode appends e to the schedule and rewrites e.Index to the new
// 1-based episode number (spec.md §4.6).
func (o *PropagationControl) AddEpisode(e *DeformationEpisode) {
	if e == nil {
		chk.Panic("AddEpisode: episode is nil")
	}
	o.Episodes = append(o.Episodes, e)
	e.Index = len(o.Episodes)
}

// InsertEpisode inserts e at position pos (0-based) and rewrites every
// episode's Index to its new 1-based position.
func (o *PropagationControl) InsertEpisode(pos int, e *DeformationEpisode) {
	if e == nil {
		chk.Panic("InsertEpisode: episode is nil")
	}
	if pos < 0 || pos > len(o.Episodes) {
		chk.Panic("InsertEpisode: position %d out of range [0,%d]", pos, len(o.Episodes))
	}
	o.Episodes = append(o.Episodes, nil)
	copy(o.Episodes[pos+1:], o.Episodes[pos:])
	o.Episodes[pos] = e
	for i, ep := range o.Episodes {
		ep.Index = i + 1
	}
}

// InitialHMinAzimuth returns the minimum-horizontal-strain azimuth derived
// from the first episode carrying an anisotropic strain or stress load,
// falling back to DefaultHMinAzimuth when none do (spec.md §4.6).
func (o *PropagationControl) InitialHMinAzimuth() float64 {
	for _, e := range o.Episodes {
		az := e.MinHorizontalStrainAzimuth()
		if !math.IsNaN(az) {
			return az
		}
	}
	return o.DefaultHMinAzimuth
}

// IsRandomNucleationPosition reports whether NucleationPosition selects
// the random-draw mode
func (o *PropagationControl) IsRandomNucleationPosition() bool {
	return o.NucleationPosition < 0
}

// ClampedNucleationPosition returns NucleationPosition clamped into [0,1]
// via gosl/utl.Min/utl.Max (the same pattern fem/i_porous.go uses to keep a
// running bounding-box extent), or randomNucleationPosition unchanged when
// in random-draw mode.
func (o *PropagationControl) ClampedNucleationPosition() float64 {
	if o.IsRandomNucleationPosition() {
		return randomNucleationPosition
	}
	return utl.Max(0, utl.Min(1, o.NucleationPosition))
}

// LoadPropagationControl reads a JSON-encoded PropagationControl from path
func LoadPropagationControl(path string) *PropagationControl {
	var o PropagationControl
	b, err := io.ReadFile(path)
	if err != nil {
		chk.Panic("LoadPropagationControl: cannot read file %q", path)
	}
	if err := json.Unmarshal(b, &o); err != nil {
		chk.Panic("LoadPropagationControl: cannot unmarshal file %q", path)
	}
	return &o
}

// Save writes o as indented JSON into dir/fn via io.WriteFileSD
func (o *PropagationControl) Save(dir, fn string) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		chk.Panic("PropagationControl.Save: cannot marshal: %v", err)
	}
	io.WriteFileSD(dir, fn, string(b))
}

// GetPrms exposes the accuracy/termination controls as a gosl/fun.Prms
// parameter list, mirroring msolid.Model.GetPrms (spec.md §3.2).
func (o *PropagationControl) GetPrms() fun.Prms {
	return []*fun.Prm{
		{N: "maxTS_MFP33_increase", V: o.MaxTsMFP33Increase},
		{N: "historic_a_MFP33_termination_ratio", V: o.HistoricAMFP33TerminationRatio},
		{N: "active_total_MFP30_termination_ratio", V: o.ActiveTotalMFP30TerminationRatio},
		{N: "minimum_ClearZone_Volume", V: o.MinimumClearZoneVolume},
	}
}

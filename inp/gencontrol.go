// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/rnd"
)

// DFNFileType selects the on-disk format an external exporter writes the
// DFN out as.
type DFNFileType int

const (
	ASCII DFNFileType = iota
	FAB
)

// IntermediateOutputInterval selects how DFNGenerationControl's
// intermediate-output schedule is spaced.
type IntermediateOutputInterval int

const (
	SpecifiedTime IntermediateOutputInterval = iota
	EqualTime
	EqualArea
)

// AutomaticFlag selects how aggressively the propagation engine searches
// neighbour gridblocks when a segment's tip crosses a gridblock boundary.
type AutomaticFlag int

const (
	AutomaticNone AutomaticFlag = iota
	AutomaticAll
	Automatic
)

// undefinedSentinel is the "undefined" marker for fracture permeability,
// compressibility and aperture defaults: the maximum single-precision
// float value (spec.md §4.6).
const undefinedSentinel = math.MaxFloat32

// DFNGenerationControl carries the minimum-size cutoffs, limits, and
// intermediate-output schedule that govern one DFN generation run
// (spec.md §4.6).
type DFNGenerationControl struct {
	MinMicrofractureRadius     float64 `json:"minmicrofractureradius"`
	MinMacrofractureLength     float64 `json:"minmacrofracturelength"`
	MaxFractureCount           int     `json:"maxfracturecount"`
	MaxNewFracturesPerTimestep int     `json:"maxnewfracturesperttimestep"`
	LayerThicknessCutoff       float64 `json:"layerthicknesscutoff"`
	MaxPropagationAzimuthJog   float64 `json:"maxpropagationazimuthjog"`

	CropToGrid          bool `json:"croptogrid"`
	LinkInStressShadow  bool `json:"linkinstressshadow"`
	MicrofracturePolySides int `json:"microfracturepolysides"` // >=3 means polygon, else circle

	NumIntermediateOutputs     int                        `json:"numintermediateoutputs"`
	IntermediateOutputInterval IntermediateOutputInterval `json:"intermediateoutputinterval"`
	intermediateOutputTimes    []float64

	ProbabilisticNucleationLimit     float64       `json:"probabilisticnucleationlimit"`
	ProbabilisticNucleationDistName  string        `json:"probabilisticnucleationdistname"` // distribution name for gosl/rnd.GetDistribution; empty means deterministic cutoff
	NeighbourSearch                  AutomaticFlag `json:"neighboursearch"`
	PropagateInNucleationOrder       bool          `json:"propagateinnucleationorder"`

	WriteToFile        bool        `json:"writetofile"`
	OutputFileType      DFNFileType `json:"outputfiletype"`
	OutputCentrepoints  bool        `json:"outputcentrepoints"`
	FolderPath          string      `json:"folderpath"`
	TimeUnit            TimeUnit    `json:"timeunit"`

	DefaultPermeability     float64 `json:"defaultpermeability"`
	DefaultCompressibility  float64 `json:"defaultcompressibility"`
	DefaultAperture         float64 `json:"defaultaperture"`
}

// NewDFNGenerationControl returns a DFNGenerationControl with the
// undefined-sentinel defaults applied to the permeability, compressibility
// and aperture fields (spec.md §4.6).
func NewDFNGenerationControl() *DFNGenerationControl {
	return &DFNGenerationControl{
		DefaultPermeability:    undefinedSentinel,
		DefaultCompressibility: undefinedSentinel,
		DefaultAperture:        undefinedSentinel,
	}
}

// IntermediateOutputTimes returns the current normalised list of
// intermediate output times (strictly increasing, positive SI seconds)
func (o *DFNGenerationControl) IntermediateOutputTimes() []float64 {
	return o.intermediateOutputTimes
}

// SetIntermediateOutputTimes normalises times into SI seconds using
// o.TimeUnit, drops non-positive entries, then drops any entry that is
// not strictly greater than the previous surviving entry (spec.md §4.6).
func (o *DFNGenerationControl) SetIntermediateOutputTimes(times []float64) {
	factor := secondsPer(o.TimeUnit)
	var kept []float64
	last := math.Inf(-1)
	for _, t := range times {
		ts := t * factor
		if ts <= 0 {
			continue
		}
		if ts <= last {
			continue
		}
		kept = append(kept, ts)
		last = ts
	}
	o.intermediateOutputTimes = kept
}

// NucleationLimitVariable returns the probabilistic nucleation limit as a
// gosl/rnd random variable when ProbabilisticNucleationDistName is set,
// matching the rnd.VarData construction inp.Simulation uses for adjustable
// random parameters; returns nil for a deterministic cutoff.
func (o *DFNGenerationControl) NucleationLimitVariable() *rnd.VarData {
	if o.ProbabilisticNucleationDistName == "" {
		return nil
	}
	distr := rnd.GetDistribution(o.ProbabilisticNucleationDistName)
	return &rnd.VarData{
		D:   distr,
		M:   o.ProbabilisticNucleationLimit,
		Key: "probabilistic_nucleation_limit",
	}
}

// LoadDFNGenerationControl reads a JSON-encoded DFNGenerationControl from
// path, the way inp.ReadSim reads a .sim file: io.ReadFile then
// json.Unmarshal, panicking on either failure.
func LoadDFNGenerationControl(path string) *DFNGenerationControl {
	o := NewDFNGenerationControl()
	b, err := io.ReadFile(path)
	if err != nil {
		chk.Panic("LoadDFNGenerationControl: cannot read file %q", path)
	}
	if err := json.Unmarshal(b, o); err != nil {
		chk.Panic("LoadDFNGenerationControl: cannot unmarshal file %q", path)
	}
	return o
}

// Save writes o as indented JSON into dir/fn via io.WriteFileSD
func (o *DFNGenerationControl) Save(dir, fn string) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		chk.Panic("DFNGenerationControl.Save: cannot marshal: %v", err)
	}
	io.WriteFileSD(dir, fn, string(b))
}

// IntermediateOutputFileName builds the on-disk name for the idx'th
// intermediate DFN snapshot, the same "%s_%s_%s" composite-key idiom
// msolid.GetModel uses for cache keys.
func (o *DFNGenerationControl) IntermediateOutputFileName(runLabel string, idx int) string {
	ext := "dat"
	if o.OutputFileType == FAB {
		ext = "fab"
	}
	return io.Sf("%s_%04d.%s", runLabel, idx, ext)
}

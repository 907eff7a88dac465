// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_gencontrol01_defaults(tst *testing.T) {

	chk.PrintTitle("gencontrol01_defaults")

	o := NewDFNGenerationControl()
	chk.Scalar(tst, "DefaultPermeability", 1e-14, o.DefaultPermeability, undefinedSentinel)
	chk.Scalar(tst, "DefaultCompressibility", 1e-14, o.DefaultCompressibility, undefinedSentinel)
	chk.Scalar(tst, "DefaultAperture", 1e-14, o.DefaultAperture, undefinedSentinel)
	if len(o.IntermediateOutputTimes()) != 0 {
		tst.Errorf("a fresh control must have no intermediate output times")
	}
}

func Test_gencontrol02_intermediate_times(tst *testing.T) {

	chk.PrintTitle("gencontrol02_intermediate_times")

	o := NewDFNGenerationControl()
	o.TimeUnit = Second

	// out of order, non-positive and non-increasing entries must all be dropped
	o.SetIntermediateOutputTimes([]float64{5, -1, 0, 5, 10, 8, 20})
	got := o.IntermediateOutputTimes()
	want := []float64{5, 10, 20}
	if len(got) != len(want) {
		tst.Fatalf("expected %d surviving times, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		chk.Scalar(tst, "intermediate time", 1e-9, got[i], want[i])
	}
}

func Test_gencontrol03_intermediate_times_unit(tst *testing.T) {

	chk.PrintTitle("gencontrol03_intermediate_times_unit")

	o := NewDFNGenerationControl()
	o.TimeUnit = Year
	o.SetIntermediateOutputTimes([]float64{1, 2})
	got := o.IntermediateOutputTimes()
	if len(got) != 2 {
		tst.Fatalf("expected 2 surviving times, got %d", len(got))
	}
	chk.Scalar(tst, "1 year in seconds", 1, got[0], secondsPer(Year))
	chk.Scalar(tst, "2 years in seconds", 1, got[1], 2*secondsPer(Year))
}

func Test_gencontrol04_nucleation_variable(tst *testing.T) {

	chk.PrintTitle("gencontrol04_nucleation_variable")

	o := NewDFNGenerationControl()
	if o.NucleationLimitVariable() != nil {
		tst.Errorf("an empty ProbabilisticNucleationDistName must mean deterministic (nil variable)")
	}

	o.ProbabilisticNucleationDistName = "normal"
	o.ProbabilisticNucleationLimit = 0.5
	v := o.NucleationLimitVariable()
	if v == nil {
		tst.Fatalf("a non-empty ProbabilisticNucleationDistName must produce a variable")
	}
	chk.Scalar(tst, "mean", 1e-14, v.M, 0.5)
	if v.D == nil {
		tst.Errorf("NucleationLimitVariable must resolve a concrete distribution")
	}
}

func Test_gencontrol05_undefined_sentinel_is_max_float32(tst *testing.T) {

	chk.PrintTitle("gencontrol05_undefined_sentinel_is_max_float32")

	chk.Scalar(tst, "sentinel", 1, undefinedSentinel, math.MaxFloat32)
}

func Test_gencontrol06_save_and_load(tst *testing.T) {

	chk.PrintTitle("gencontrol06_save_and_load")

	dir := tst.TempDir()
	o := NewDFNGenerationControl()
	o.MinMicrofractureRadius = 0.05
	o.MaxFractureCount = 1000
	o.Save(dir, "control.json")

	loaded := LoadDFNGenerationControl(dir + "/control.json")
	chk.Scalar(tst, "MinMicrofractureRadius round-trips", 1e-14, loaded.MinMicrofractureRadius, 0.05)
	if loaded.MaxFractureCount != 1000 {
		tst.Errorf("MaxFractureCount did not round-trip, got %d", loaded.MaxFractureCount)
	}
}

func Test_gencontrol07_output_file_name(tst *testing.T) {

	chk.PrintTitle("gencontrol07_output_file_name")

	o := NewDFNGenerationControl()
	if got, want := o.IntermediateOutputFileName("run1", 3), "run1_0003.dat"; got != want {
		tst.Errorf("IntermediateOutputFileName() = %q, want %q", got, want)
	}
	o.OutputFileType = FAB
	if got, want := o.IntermediateOutputFileName("run1", 3), "run1_0003.fab"; got != want {
		tst.Errorf("IntermediateOutputFileName() = %q, want %q", got, want)
	}
}

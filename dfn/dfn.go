// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dfn implements the global Discrete Fracture Network container:
// the top-level collections of global microfractures and macrofractures,
// the process-wide ID counters, and the factory functions that link a
// newly created local fracture primitive to its global mirror (spec.md
// §4.5, §5, §9).
package dfn

import (
	"sync"

	"github.com/cpmech/gofrac/global"
	"github.com/cpmech/gofrac/local"
	"github.com/cpmech/gosl/chk"
)

// DFN owns the two top-level collections of global fractures, the
// process-wide monotone ID counters, and the real time of the last update
// (spec.md §3, §5). Not safe for concurrent mutation beyond the counters
// themselves: PopulateData/UpdateDFN/RemoveShortestFractures/
// CombineMacrofractures are single-threaded cooperative per spec.md §5.
type DFN struct {
	Microfractures []*global.Microfracture
	Macrofractures []*global.Macrofracture
	CurrentTime    float64

	mu          sync.Mutex
	nextMicroID int
	nextMacroID int
}

// New creates an empty DFN with ID counters starting at 1
func New() *DFN {
	return &DFN{nextMicroID: 1, nextMacroID: 1}
}

// nextMicrofractureID returns the next process-wide unique microfracture
// ID, safe for concurrent callers sharing one DFN (spec.md §5)
func (o *DFN) nextMicrofractureID() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextMicroID
	o.nextMicroID++
	return id
}

// nextMacrofractureID returns the next process-wide unique macrofracture ID
func (o *DFN) nextMacrofractureID() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	id := o.nextMacroID
	o.nextMacroID++
	return id
}

// CreateLinkedGlobalMicrofracture wraps a freshly nucleated local
// microfracture with a new global microfracture, assigns it the next
// process-wide ID, links both sides (loc.GlobalID), registers it in the
// DFN, and returns the global mirror (spec.md §3.3, §4.1).
func (o *DFN) CreateLinkedGlobalMicrofracture(loc *local.Microfracture) *global.Microfracture {
	if loc == nil {
		chk.Panic("CreateLinkedGlobalMicrofracture: local microfracture is nil")
	}
	id := o.nextMicrofractureID()
	g := global.NewMicrofracture(id, loc)
	loc.GlobalID = id
	o.Microfractures = append(o.Microfractures, g)
	return g
}

// CreateLinkedGlobalMacrofracture wraps a freshly nucleated pair of mirror
// local segments (one per propagation direction) with a new global
// macrofracture, assigns the next process-wide ID, links both sides, and
// registers it in the DFN (spec.md §3.3, §4.3.1).
func (o *DFN) CreateLinkedGlobalMacrofracture(seed, mirror *local.MacrofractureSegment) *global.Macrofracture {
	if seed == nil || mirror == nil {
		chk.Panic("CreateLinkedGlobalMacrofracture: seed or mirror segment is nil")
	}
	id := o.nextMacrofractureID()
	g := global.NewMacrofracture(id, seed, mirror)
	o.Macrofractures = append(o.Macrofractures, g)
	return g
}

// LinkToGlobalMacrofracture registers a newly created segment as belonging
// to an already-linked global macrofracture: the segment is appended to
// the global's chain on the given direction and stamped with the global's
// ID (spec.md §3.3).
func (o *DFN) LinkToGlobalMacrofracture(g *global.Macrofracture, dir local.PropagationDirection, seg *local.MacrofractureSegment) {
	if g == nil || seg == nil {
		chk.Panic("LinkToGlobalMacrofracture: global macrofracture or segment is nil")
	}
	g.AddSegment(dir, seg)
}

// UpdateDFN refreshes every global microfracture and macrofracture from
// their linked locals, evicts (and unlinks) any microfracture that has
// nucleated a macrofracture, then records currentTime (spec.md §4.5).
// Microfractures are scanned in reverse so in-place slice removal does not
// skip an element.
func (o *DFN) UpdateDFN(currentTime float64) {
	for _, m := range o.Microfractures {
		m.PopulateData()
	}
	for k := len(o.Microfractures) - 1; k >= 0; k-- {
		m := o.Microfractures[k]
		if m.NucleatedMacrofracture() {
			m.Local.RequestRemoval()
			o.Microfractures = append(o.Microfractures[:k], o.Microfractures[k+1:]...)
		}
	}
	for _, f := range o.Macrofractures {
		f.PopulateData()
	}
	o.CurrentTime = currentTime
}

// SortFractures sorts both the microfracture and macrofracture collections
// by the given total-ordering criterion (spec.md §4.3.4, §4.5)
func (o *DFN) SortFractures(criterion global.SortProperty) {
	sortMicrofractures(o.Microfractures, criterion)
	sortMacrofractures(o.Macrofractures, criterion)
}

func sortMicrofractures(items []*global.Microfracture, criterion global.SortProperty) {
	less := func(i, j int) bool {
		switch criterion {
		case global.SizeSmallestFirst:
			return items[i].SizeMetric() < items[j].SizeMetric()
		case global.SizeLargestFirst:
			return items[i].SizeMetric() > items[j].SizeMetric()
		default:
			return items[i].NucleationRealTime() < items[j].NucleationRealTime()
		}
	}
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

func sortMacrofractures(items []*global.Macrofracture, criterion global.SortProperty) {
	less := func(i, j int) bool {
		switch criterion {
		case global.SizeSmallestFirst:
			return items[i].SizeMetric() < items[j].SizeMetric()
		case global.SizeLargestFirst:
			return items[i].SizeMetric() > items[j].SizeMetric()
		default:
			return items[i].NucleationRealTime() < items[j].NucleationRealTime()
		}
	}
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

// RemoveShortestFractures sorts largest-first, drops microfractures with
// radius <= minRadius and macrofractures with strike length <= minLength
// (single-precision comparison), then — if maxCount >= 0 — continues
// dropping the smallest remaining fractures (microfractures first, then
// macrofractures) until the combined count is <= maxCount. Culled
// fractures unlink their local shadow (spec.md §4.5, testable property 9).
func (o *DFN) RemoveShortestFractures(minRadius, minLength float64, maxCount int) {
	o.SortFractures(global.SizeLargestFirst)

	kept := o.Microfractures[:0:0]
	for _, m := range o.Microfractures {
		if float32(m.Radius()) <= float32(minRadius) {
			m.Local.RequestRemoval()
			continue
		}
		kept = append(kept, m)
	}
	o.Microfractures = kept

	keptF := o.Macrofractures[:0:0]
	for _, f := range o.Macrofractures {
		if float32(f.SizeMetric()) <= float32(minLength) {
			unlinkMacrofracture(f)
			continue
		}
		keptF = append(keptF, f)
	}
	o.Macrofractures = keptF

	if maxCount < 0 {
		return
	}
	for len(o.Microfractures)+len(o.Macrofractures) > maxCount && len(o.Microfractures) > 0 {
		last := o.Microfractures[len(o.Microfractures)-1]
		last.Local.RequestRemoval()
		o.Microfractures = o.Microfractures[:len(o.Microfractures)-1]
	}
	for len(o.Microfractures)+len(o.Macrofractures) > maxCount && len(o.Macrofractures) > 0 {
		last := o.Macrofractures[len(o.Macrofractures)-1]
		unlinkMacrofracture(last)
		o.Macrofractures = o.Macrofractures[:len(o.Macrofractures)-1]
	}
}

// unlinkMacrofracture asks every segment of f, in both directions, to
// remove itself from its owning gridblock's local collection
func unlinkMacrofracture(f *global.Macrofracture) {
	for _, dir := range [2]local.PropagationDirection{local.IPlus, local.IMinus} {
		for _, seg := range f.Segments(dir) {
			seg.RemoveFromGridblock()
		}
	}
}

// Copy produces a deep snapshot of the DFN suitable for intermediate-time
// export: every global microfracture and macrofracture is cloned (its
// reconstructed cornerpoint/joint arena, not just the slice headers
// holding it), so a later UpdateDFN on the live DFN - which calls
// PopulateData and mutates that arena in place - cannot corrupt geometry
// already handed to an exporter (spec.md §4.5).
func (o *DFN) Copy() *DFN {
	snap := &DFN{
		CurrentTime: o.CurrentTime,
		nextMicroID: o.nextMicroID,
		nextMacroID: o.nextMacroID,
	}
	snap.Microfractures = make([]*global.Microfracture, len(o.Microfractures))
	for i, m := range o.Microfractures {
		snap.Microfractures[i] = m.Clone()
	}
	snap.Macrofractures = make([]*global.Macrofracture, len(o.Macrofractures))
	for i, f := range o.Macrofractures {
		snap.Macrofractures[i] = f.Clone()
	}
	return snap
}

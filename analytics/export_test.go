// SPDX-License-Identifier: MIT

package analytics

// Recomputations exposes the recompute counters to black-box tests.
func (s *State) Recomputations() (rate, fullScans, shortcuts, resyncs int) {
	return s.stats.rate, s.stats.fullScans, s.stats.shortcuts, s.stats.resyncs
}

// RateDirty and ConnectedDirty expose the dirty flags.
func (s *State) RateDirty() bool      { return s.rate.dirty }
func (s *State) ConnectedDirty() bool { return s.connected.dirty }

package network

import "math"

// FlowChange records the flow an arc carried at the last commit.
type FlowChange struct {
	Arc          int
	PreviousFlow int64
}

// FlowState stores the flow of every arc of a network together with a journal
// of the arcs touched since the last commit. The journal is what makes an
// augmentation all-or-nothing: pushes along a path are committed together or
// rolled back together.
type FlowState struct {
	flows []int64

	// One entry per arc touched since the last commit, in touch order.
	changes []FlowChange

	// savedAt[a] == timestamp iff arc a already has a journal entry. Bumping
	// the timestamp empties the journal without touching savedAt.
	savedAt   []uint
	timestamp uint
}

// NewFlowState returns a state with nArcs arcs, all without flow.
func NewFlowState(nArcs int) *FlowState {
	return &FlowState{
		flows:     make([]int64, nArcs),
		changes:   make([]FlowChange, 0, nArcs),
		savedAt:   make([]uint, nArcs),
		timestamp: 1, // savedAt starts at 0: no arc is journaled
	}
}

// Len returns the number of arcs tracked by the state.
func (s *FlowState) Len() int {
	return len(s.flows)
}

// Grow extends the state so that it tracks n more arcs, all with zero flow.
func (s *FlowState) Grow(n int) {
	for i := 0; i < n; i++ {
		s.flows = append(s.flows, 0)
		s.savedAt = append(s.savedAt, 0)
	}
}

// Flow returns the flow of the arc, committed or not.
func (s *FlowState) Flow(arc int) int64 {
	return s.flows[arc]
}

// AddFlow adds delta to the flow of the arc. The first change of an arc
// after a commit journals its committed flow.
func (s *FlowState) AddFlow(arc int, delta int64) {
	if s.savedAt[arc] != s.timestamp {
		s.changes = append(s.changes, FlowChange{arc, s.flows[arc]})
		s.savedAt[arc] = s.timestamp
	}
	s.flows[arc] += delta
}

// Commit accepts the journaled changes and empties the journal.
func (s *FlowState) Commit() {
	s.changes = s.changes[:0]
	s.incrTimestamp()
}

// Rollback restores the flow every journaled arc had at the last commit, in
// reverse journal order, and empties the journal. It only visits the
// journaled arcs.
func (s *FlowState) Rollback() {
	for n := len(s.changes); n > 0; n-- {
		fc := s.changes[n-1]
		s.flows[fc.Arc] = fc.PreviousFlow
	}
	s.changes = s.changes[:0]
	s.incrTimestamp()
}

// Changes returns the journal: the arcs touched since the last commit with
// their committed flow. The slice is owned by the state and must not be
// modified.
func (s *FlowState) Changes() []FlowChange {
	return s.changes
}

// Reset sets the flow of every arc to zero and drops pending changes.
func (s *FlowState) Reset() {
	for i := range s.flows {
		s.flows[i] = 0
	}
	s.Commit()
}

// incrTimestamp starts a new journal. On overflow savedAt is cleared so that
// no stale entry can match the restarted timestamp.
func (s *FlowState) incrTimestamp() {
	if s.timestamp != math.MaxUint {
		s.timestamp += 1
		return
	}
	s.timestamp = 1
	for i := range s.savedAt {
		s.savedAt[i] = 0
	}
}

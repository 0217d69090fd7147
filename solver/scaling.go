package solver

import "go.uber.org/zap"

// InitialDelta returns the first threshold of capacity scaling: the largest
// power of two not greater than maxCapacity, or 1 if maxCapacity is below 1.
func InitialDelta(maxCapacity int64) int64 {
	delta := int64(1)
	for delta <= maxCapacity/2 {
		delta *= 2
	}
	return delta
}

// scale runs the capacity scaling phases. Each phase augments along
// fewest-arc paths made of arcs with a residual capacity of at least delta
// until none remain, then halves delta. A phase needs O(E) augmentations and
// there are O(log(maxCapacity)) phases.
func (s *Solver) scale(source, sink int, res *Result) error {
	finder := NewBFSFinder(s.net)
	for delta := InitialDelta(s.net.MaxCapacity()); delta > 0; delta /= 2 {
		finder.SetThreshold(delta)
		res.Phases++
		before := res.Augmentations
		if err := s.exhaust(finder, source, sink, res); err != nil {
			return err
		}
		s.log.Debug("scaling phase done",
			zap.Int64("delta", delta),
			zap.Int("augmentations", res.Augmentations-before),
			zap.Int64("flow", res.Flow),
		)
	}
	return nil
}

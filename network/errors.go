package network

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEdge is returned when an edge cannot be added to a network.
	ErrInvalidEdge = errors.New("invalid edge")

	// ErrUnknownNode is returned when a label is not part of the network.
	ErrUnknownNode = errors.New("unknown node")

	// ErrResidualExceeded signals that a push would exceed the residual
	// capacity of an arc. It indicates a bug in the caller, never a state a
	// valid input can reach.
	ErrResidualExceeded = errors.New("residual capacity exceeded")

	// ErrPendingPushes is returned by ApplyFlow when pushes made with Push
	// have been neither committed nor rolled back.
	ErrPendingPushes = errors.New("uncommitted pushes pending")
)

// EdgeError describes an edge rejected by AddEdge or AddCostEdge.
type EdgeError struct {
	From     string
	To       string
	Capacity int64
	Reason   string
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("%s %q -> %q (capacity %d): %s", ErrInvalidEdge, e.From, e.To, e.Capacity, e.Reason)
}

func (e *EdgeError) Unwrap() error {
	return ErrInvalidEdge
}

// ResidualError describes a push that the arc could not absorb.
type ResidualError struct {
	Arc      int
	From     int
	To       int
	Amount   int64
	Residual int64
}

func (e *ResidualError) Error() string {
	return fmt.Sprintf("%s: arc %d (%d -> %d) cannot take %d, residual is %d",
		ErrResidualExceeded, e.Arc, e.From, e.To, e.Amount, e.Residual)
}

func (e *ResidualError) Unwrap() error {
	return ErrResidualExceeded
}

// UnknownNode returns an error wrapping ErrUnknownNode for the given label.
func UnknownNode(label string) error {
	return fmt.Errorf("%w: %q", ErrUnknownNode, label)
}

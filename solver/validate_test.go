package solver

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rhartert/flowcore/network"
)

func TestValidate(t *testing.T) {
	net, nodes := testNetwork(t)
	s, a, tt := nodes["S"], nodes["A"], nodes["T"]

	if err := Validate(net, s, tt); err != nil {
		t.Errorf("Validate(): want no error on zero flow, got %s", err)
	}

	if err := net.ApplyFlow(s, a, 3); err != nil {
		t.Fatalf("ApplyFlow(S, A): want no error, got %s", err)
	}
	if err := Validate(net, s, tt); !errors.Is(err, ErrInvariantViolated) {
		t.Errorf("Validate(): want ErrInvariantViolated on excess at A, got %v", err)
	}

	if err := net.ApplyFlow(a, tt, 3); err != nil {
		t.Fatalf("ApplyFlow(A, T): want no error, got %s", err)
	}
	if err := Validate(net, s, tt); err != nil {
		t.Errorf("Validate(): want no error, got %s", err)
	}
}

func TestOutFlow(t *testing.T) {
	net, nodes := testNetwork(t)
	if err := net.ApplyFlow(nodes["S"], nodes["A"], 3); err != nil {
		t.Fatalf("ApplyFlow(S, A): want no error, got %s", err)
	}
	if err := net.ApplyFlow(nodes["A"], nodes["T"], 1); err != nil {
		t.Fatalf("ApplyFlow(A, T): want no error, got %s", err)
	}

	want := map[string]int64{"S": 3, "A": -2, "B": 0, "T": -1}
	got := map[string]int64{}
	for l, n := range nodes {
		got[l] = OutFlow(net, n)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("OutFlow(): mismatch (-want +got):\n%s", diff)
	}
}

func TestPotentials_Seed_zero(t *testing.T) {
	net, _ := testNetwork(t)
	p := NewPotentials(net.NumNodes())

	if err := p.Seed(net); err != nil {
		t.Fatalf("Seed(): want no error, got %s", err)
	}

	want := make([]int64, net.NumNodes())
	if diff := cmp.Diff(want, p.Values()); diff != "" {
		t.Errorf("Values(): mismatch (-want +got):\n%s", diff)
	}
}

func TestPotentials_Seed_negativeCosts(t *testing.T) {
	net, err := network.Build([]network.EdgeSpec{
		{From: "S", To: "A", Capacity: 1, Cost: -3},
		{From: "A", To: "B", Capacity: 1, Cost: -2},
		{From: "S", To: "B", Capacity: 1, Cost: 1},
	})
	if err != nil {
		t.Fatalf("Build(): want no error, got %s", err)
	}
	p := NewPotentials(net.NumNodes())

	if err := p.Seed(net); err != nil {
		t.Fatalf("Seed(): want no error, got %s", err)
	}

	// Shortest distances from a virtual node linked to every node at cost 0.
	want := []int64{0, -3, -5} // S, A, B in insertion order
	if diff := cmp.Diff(want, p.Values()); diff != "" {
		t.Errorf("Values(): mismatch (-want +got):\n%s", diff)
	}
	if a, bad := p.Violation(net); bad {
		t.Errorf("Violation(): arc %d has a negative reduced cost", a)
	}
}

func TestPotentials_Seed_negativeCycle(t *testing.T) {
	net, err := network.Build([]network.EdgeSpec{
		{From: "A", To: "B", Capacity: 1, Cost: -2},
		{From: "B", To: "A", Capacity: 1, Cost: 1},
	})
	if err != nil {
		t.Fatalf("Build(): want no error, got %s", err)
	}

	err = NewPotentials(net.NumNodes()).Seed(net)

	if !errors.Is(err, ErrNegativeCycle) {
		t.Errorf("Seed(): want ErrNegativeCycle, got %v", err)
	}
}

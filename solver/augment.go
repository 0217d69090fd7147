package solver

import (
	"fmt"

	"github.com/rhartert/flowcore/network"
	"github.com/rhartert/flowcore/network/paths"
)

// Augment pushes the bottleneck of p along every arc of p and returns the
// cost of the pushed flow, that is the bottleneck times the sum of the raw
// costs of the arcs.
//
// The augmentation is atomic: if an arc cannot take the bottleneck, the
// pushes already done on the path are rolled back and the returned error
// wraps network.ErrResidualExceeded.
func Augment(net *network.Network, p *paths.Path) (int64, error) {
	amount := p.Bottleneck()
	if amount <= 0 || len(p.Arcs()) == 0 {
		return 0, fmt.Errorf("augmenting %s: %w: bottleneck %d", p, network.ErrResidualExceeded, amount)
	}

	unitCost := int64(0)
	for _, a := range p.Arcs() {
		if err := net.Push(a, amount); err != nil {
			net.Rollback()
			return 0, fmt.Errorf("augmenting %s: %w", p, err)
		}
		unitCost += net.Arc(a).Cost
	}
	net.Commit()

	return amount * unitCost, nil
}

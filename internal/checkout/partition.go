package checkout

import (
	"ebuney/internal/model"

	"github.com/google/uuid"
)

// SellerPartition is the subset of a cart's lines belonging to one
// seller. Each partition becomes exactly one order at checkout.
type SellerPartition struct {
	SellerID uuid.UUID
	Lines    []model.CartLine
}

// Subtotal sums price times quantity over the partition's lines.
func (p SellerPartition) Subtotal() float64 {
	var sum float64
	for _, l := range p.Lines {
		sum += l.LineTotal()
	}
	return sum
}

// PartitionBySeller groups cart lines by owning seller. Partitions are
// returned in first-seen seller order and each preserves the input's
// per-seller line order, so the result is deterministic for a given
// input. Lines whose product snapshot lacks a seller reference are
// silently excluded.
func PartitionBySeller(lines []model.CartLine) []SellerPartition {
	index := make(map[uuid.UUID]int, len(lines))
	var partitions []SellerPartition

	for _, line := range lines {
		if line.SellerID == uuid.Nil {
			continue
		}
		i, ok := index[line.SellerID]
		if !ok {
			i = len(partitions)
			index[line.SellerID] = i
			partitions = append(partitions, SellerPartition{SellerID: line.SellerID})
		}
		partitions[i].Lines = append(partitions[i].Lines, line)
	}

	return partitions
}

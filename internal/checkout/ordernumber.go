package checkout

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewOrderNumber generates a human-readable order number of the form
// ORD-20260901-1A2B3C4D. The random suffix comes from a v4 UUID and
// the orders table carries a unique constraint on order_number, so a
// collision across concurrent checkouts fails the insert instead of
// silently sharing a number.
func NewOrderNumber(now time.Time) string {
	id := uuid.New()
	suffix := binary.BigEndian.Uint32(id[:4])
	return fmt.Sprintf("ORD-%s-%08X", now.UTC().Format("20060102"), suffix)
}

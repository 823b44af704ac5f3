package checkout

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderNumber_Format(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	number := NewOrderNumber(now)

	assert.Regexp(t, regexp.MustCompile(`^ORD-20260901-[0-9A-F]{8}$`), number)
}

func TestNewOrderNumber_Varies(t *testing.T) {
	now := time.Now()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number := NewOrderNumber(now)
		assert.False(t, seen[number], "order number repeated: %s", number)
		seen[number] = true
	}
}

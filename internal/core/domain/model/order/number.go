package order

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// NewOrderNumber returns "ORD-<unix millis>-<4 hex>". The millisecond prefix keeps
// numbers sortable by creation; the suffix separates orders created in the same
// millisecond.
func NewOrderNumber(now time.Time) string {
	suffix := make([]byte, 2)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("ORD-%d-%s", now.UnixMilli(), hex.EncodeToString(suffix))
}

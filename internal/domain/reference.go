package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const referenceTimeLayout = "200601021504"

// NewReference builds a human-readable booking reference BK-<yyyyMMddHHmm>-<8 chars>.
// Uniqueness relies on the random suffix and is not checked.
func NewReference(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return "BK-" + now.Format(referenceTimeLayout) + "-" + suffix
}

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewID generates an entry id of the form <prefix>_<unix-millis>_<suffix>.
// The wall-clock component keeps ids roughly ordered; the random suffix makes
// collisions within the same millisecond negligible.
func NewID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), suffix)
}

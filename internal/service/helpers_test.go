package service

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-daily-diary/internal/utils"
)

// ─────────────────────────────────────────────
// shared fixtures
// ─────────────────────────────────────────────

// sequenceIDs yields id-1, id-2, ...
type sequenceIDs struct {
	n int
}

func (s *sequenceIDs) Generate() string {
	s.n++
	return fmt.Sprintf("id-%d", s.n)
}

var fixedNow = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() *utils.Clock {
	return utils.FixedClock(fixedNow)
}

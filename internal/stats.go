package internal

import (
	"sync/atomic"
	"time"
)

// AppStats atomic counters for totals
type AppStats struct {
	start         time.Time
	FilesIncluded atomic.Int64
	BinarySkipped atomic.Int64
	Unreadable    atomic.Int64
	Errors        atomic.Int64
}

func (s *AppStats) Start() {
	s.start = time.Now()
}

func (s *AppStats) Elapsed() time.Duration {
	return time.Since(s.start)
}

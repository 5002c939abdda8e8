package services

import (
	"sync"
	"time"

	"youthstream/palco/internal/access"
	"youthstream/palco/internal/models/dtos"
)

// AccessLogService keeps a bounded in-memory ring of denial events so
// admins can answer "why can't this user watch" without the end-user
// response ever distinguishing wrong-tier from not-on-allow-list.
type AccessLogService struct {
	mu      sync.Mutex
	entries []dtos.AccessLogEntry
	next    int
	full    bool
}

func NewAccessLogService(capacity int) *AccessLogService {
	if capacity <= 0 {
		capacity = 256
	}
	return &AccessLogService{entries: make([]dtos.AccessLogEntry, capacity)}
}

func (s *AccessLogService) Record(id *access.Identity, streamID string, decision access.Decision, reason access.Reason) {
	entry := dtos.AccessLogEntry{
		StreamID:  streamID,
		Decision:  decision.String(),
		Reason:    string(reason),
		Timestamp: time.Now().UTC(),
	}
	if id != nil {
		entry.UserID = id.ID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[s.next] = entry
	s.next++
	if s.next == len(s.entries) {
		s.next = 0
		s.full = true
	}
}

// Recent returns the stored events, newest first.
func (s *AccessLogService) Recent() []dtos.AccessLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	size := s.next
	if s.full {
		size = len(s.entries)
	}

	out := make([]dtos.AccessLogEntry, 0, size)
	for i := 0; i < size; i++ {
		idx := (s.next - 1 - i + len(s.entries)) % len(s.entries)
		out = append(out, s.entries[idx])
	}
	return out
}

package services

import (
	"fmt"
	"testing"

	"youthstream/palco/internal/access"
	"youthstream/palco/internal/constants"
)

func TestAccessLogService_NewestFirst(t *testing.T) {
	log := NewAccessLogService(8)

	id := &access.Identity{ID: "user-1", Role: constants.RoleUser, Active: true}
	log.Record(id, "stream-a", access.Forbidden, access.ReasonWrongTier)
	log.Record(nil, "stream-b", access.RequireLogin, access.ReasonAnonymous)

	entries := log.Recent()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].StreamID != "stream-b" || entries[1].StreamID != "stream-a" {
		t.Errorf("Expected newest first, got %s then %s", entries[0].StreamID, entries[1].StreamID)
	}
	if entries[0].UserID != "" {
		t.Errorf("Expected empty user id for anonymous entry, got %s", entries[0].UserID)
	}
	if entries[1].Reason != string(access.ReasonWrongTier) {
		t.Errorf("Expected WRONG_TIER, got %s", entries[1].Reason)
	}
}

func TestAccessLogService_RingOverwrite(t *testing.T) {
	log := NewAccessLogService(3)

	for i := 0; i < 5; i++ {
		log.Record(nil, fmt.Sprintf("stream-%d", i), access.RequireLogin, access.ReasonAnonymous)
	}

	entries := log.Recent()
	if len(entries) != 3 {
		t.Fatalf("Expected capacity-bounded log of 3, got %d", len(entries))
	}
	for i, want := range []string{"stream-4", "stream-3", "stream-2"} {
		if entries[i].StreamID != want {
			t.Errorf("Entry %d: expected %s, got %s", i, want, entries[i].StreamID)
		}
	}
}

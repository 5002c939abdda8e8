package access

import (
	"reflect"
	"testing"
	"time"

	"youthstream/palco/internal/constants"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func public(id string) StreamInfo {
	return StreamInfo{ID: id, AccessLevel: constants.AccessPublic}
}

func vip(id string) StreamInfo {
	return StreamInfo{ID: id, AccessLevel: constants.AccessVIP}
}

func identity(role constants.UserRole, allowed ...string) *Identity {
	id := &Identity{ID: "u1", Role: role, Active: true}
	if len(allowed) > 0 {
		id.AllowedStreamIDs = make(map[string]struct{}, len(allowed))
		for _, s := range allowed {
			id.AllowedStreamIDs[s] = struct{}{}
		}
	}
	return id
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name   string
		id     *Identity
		stream StreamInfo
		want   Decision
	}{
		{"anonymous public", nil, public("1"), Allow},
		{"anonymous vip", nil, vip("2"), RequireLogin},
		{"user public", identity(constants.RoleUser), public("1"), Allow},
		{"user vip", identity(constants.RoleUser), vip("2"), Forbidden},
		{"vip public", identity(constants.RoleVIP), public("1"), Allow},
		{"vip unrestricted", identity(constants.RoleVIP), vip("2"), Allow},
		{"vip on allow list", identity(constants.RoleVIP, "2"), vip("2"), Allow},
		{"vip off allow list", identity(constants.RoleVIP, "2"), vip("3"), Forbidden},
		{"vip allow list still sees public", identity(constants.RoleVIP, "2"), public("1"), Allow},
		{"admin vip", identity(constants.RoleAdmin), vip("2"), Allow},
		{"admin public", identity(constants.RoleAdmin), public("1"), Allow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.id, tt.stream, now); got != tt.want {
				t.Errorf("Decide() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestDecide_FailsClosed(t *testing.T) {
	badTier := StreamInfo{ID: "1", AccessLevel: "PREMIUM"}
	if got := Decide(identity(constants.RoleAdmin), badTier, now); got != Forbidden {
		t.Errorf("unknown tier: got %s, want FORBIDDEN", got)
	}

	badRole := identity("SUPERUSER")
	if got := Decide(badRole, vip("2"), now); got != Forbidden {
		t.Errorf("unknown role: got %s, want FORBIDDEN", got)
	}
	if got := Decide(badRole, public("1"), now); got != Allow {
		t.Errorf("unknown role on public: got %s, want ALLOW", got)
	}
}

func TestDecide_InactiveTreatedAsAnonymous(t *testing.T) {
	id := identity(constants.RoleVIP)
	id.Active = false

	if got := Decide(id, vip("2"), now); got != RequireLogin {
		t.Errorf("inactive vip on vip stream: got %s, want REQUIRE_LOGIN", got)
	}
	if got := Decide(id, public("1"), now); got != Allow {
		t.Errorf("inactive vip on public stream: got %s, want ALLOW", got)
	}
}

func TestDecide_ExpiryEnforced(t *testing.T) {
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	expired := identity(constants.RoleVIP)
	expired.ExpiresAt = &past
	if got := Decide(expired, vip("2"), now); got != Forbidden {
		t.Errorf("expired vip: got %s, want FORBIDDEN", got)
	}
	if got := Decide(expired, public("1"), now); got != Allow {
		t.Errorf("expired vip on public: got %s, want ALLOW", got)
	}

	current := identity(constants.RoleVIP)
	current.ExpiresAt = &future
	if got := Decide(current, vip("2"), now); got != Allow {
		t.Errorf("unexpired vip: got %s, want ALLOW", got)
	}

	// Admin bypass wins even with a stale expiry on the record.
	admin := identity(constants.RoleAdmin)
	admin.ExpiresAt = &past
	if got := Decide(admin, vip("2"), now); got != Allow {
		t.Errorf("admin with past expiry: got %s, want ALLOW", got)
	}
}

func TestDecideReason(t *testing.T) {
	past := now.Add(-time.Hour)
	expired := identity(constants.RoleVIP)
	expired.ExpiresAt = &past

	tests := []struct {
		name   string
		id     *Identity
		stream StreamInfo
		want   Reason
	}{
		{"anonymous vip", nil, vip("2"), ReasonAnonymous},
		{"wrong tier", identity(constants.RoleUser), vip("2"), ReasonWrongTier},
		{"off allow list", identity(constants.RoleVIP, "9"), vip("2"), ReasonNotOnList},
		{"expired", expired, vip("2"), ReasonExpired},
		{"allowed has no reason", identity(constants.RoleVIP), vip("2"), ReasonNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, got := DecideReason(tt.id, tt.stream, now); got != tt.want {
				t.Errorf("DecideReason() reason = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilter_Scenarios(t *testing.T) {
	catalog := []StreamInfo{public("1"), vip("2")}

	// Scenario A: anonymous caller sees only the public entry.
	got := Filter(nil, catalog, now)
	wantIDs(t, got, "1")

	// Scenario B: unrestricted VIP sees everything.
	got = Filter(identity(constants.RoleVIP), catalog, now)
	wantIDs(t, got, "1", "2")

	// Scenario C: allow-listed VIP sees public plus granted entries.
	wide := []StreamInfo{public("1"), vip("2"), vip("3")}
	restricted := identity(constants.RoleVIP, "2")
	got = Filter(restricted, wide, now)
	wantIDs(t, got, "1", "2")
	if d := Decide(restricted, vip("3"), now); d != Forbidden {
		t.Errorf("detail check for ungranted stream: got %s, want FORBIDDEN", d)
	}

	// Scenario D: admin sees the full catalog, order preserved.
	got = Filter(identity(constants.RoleAdmin), wide, now)
	wantIDs(t, got, "1", "2", "3")

	// Scenario E: deleting a granted stream just shrinks the result.
	afterDelete := []StreamInfo{public("1"), vip("3")}
	got = Filter(restricted, afterDelete, now)
	wantIDs(t, got, "1")
}

func TestFilter_OrderAndIdempotence(t *testing.T) {
	catalog := []StreamInfo{vip("5"), public("3"), vip("1"), public("9")}
	id := identity(constants.RoleVIP, "1")

	once := Filter(id, catalog, now)
	wantIDs(t, once, "3", "1", "9")

	twice := Filter(id, once, now)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("filter is not idempotent: %v != %v", once, twice)
	}
}

func wantIDs(t *testing.T, got []StreamInfo, ids ...string) {
	t.Helper()
	if len(got) != len(ids) {
		t.Fatalf("got %d streams, want %d (%v)", len(got), len(ids), got)
	}
	for i, id := range ids {
		if got[i].ID != id {
			t.Errorf("stream[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

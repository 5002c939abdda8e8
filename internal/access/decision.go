// Package access holds the single place where stream visibility is
// decided. Every listing, detail, and playback path goes through
// Decide; handlers never re-implement tier checks ad hoc.
package access

import (
	"time"

	"youthstream/palco/internal/constants"
)

// Decision is the closed outcome set of an access check.
type Decision int

const (
	// Forbidden is the zero value so an unhandled path fails closed.
	Forbidden Decision = iota
	RequireLogin
	Allow
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "ALLOW"
	case RequireLogin:
		return "REQUIRE_LOGIN"
	default:
		return "FORBIDDEN"
	}
}

// Reason qualifies a non-Allow decision. It is logged and exposed to
// admins only; user-facing responses deliberately conflate the denial
// reasons so the VIP catalog cannot be enumerated by response shape.
type Reason string

const (
	ReasonNone        Reason = ""
	ReasonAnonymous   Reason = "ANONYMOUS"
	ReasonInactive    Reason = "INACTIVE"
	ReasonExpired     Reason = "EXPIRED"
	ReasonWrongTier   Reason = "WRONG_TIER"
	ReasonNotOnList   Reason = "NOT_ON_ALLOW_LIST"
	ReasonUnknownTier Reason = "UNKNOWN_TIER"
	ReasonUnknownRole Reason = "UNKNOWN_ROLE"
)

// Identity is the caller as seen by the decision function. A nil
// *Identity is an anonymous caller.
type Identity struct {
	ID        string
	Role      constants.UserRole
	Active    bool
	ExpiresAt *time.Time
	// AllowedStreamIDs restricts a VIP identity to exactly these
	// streams (plus PUBLIC content). Empty means unrestricted.
	AllowedStreamIDs map[string]struct{}
}

// Expired reports whether the identity's elevated privileges have
// lapsed at the given instant.
func (id *Identity) Expired(now time.Time) bool {
	return id.ExpiresAt != nil && id.ExpiresAt.Before(now)
}

// StreamInfo is the minimal view of a stream the decision needs.
type StreamInfo struct {
	ID          string
	AccessLevel constants.StreamAccess
}

// Decide returns the access outcome for one identity/stream pair. It
// is a pure function: no I/O, no clock reads (the caller supplies
// now), no mutation.
//
// ADMIN wins unconditionally; PUBLIC content is visible to everyone
// including anonymous callers; VIP content needs an unexpired, active
// VIP identity that is either unrestricted or explicitly granted the
// stream. Unknown roles and tiers fail closed.
func Decide(id *Identity, s StreamInfo, now time.Time) Decision {
	d, _ := DecideReason(id, s, now)
	return d
}

// DecideReason is Decide plus the denial reason for admin-facing
// diagnostics.
func DecideReason(id *Identity, s StreamInfo, now time.Time) (Decision, Reason) {
	if !s.AccessLevel.Valid() {
		// Programming error upstream; never open the gate for it.
		return Forbidden, ReasonUnknownTier
	}

	// An inactive identity is an administrative soft-delete: treat it
	// exactly like an anonymous caller.
	if id != nil && !id.Active {
		if s.AccessLevel == constants.AccessPublic {
			return Allow, ReasonNone
		}
		return RequireLogin, ReasonInactive
	}

	if id == nil {
		if s.AccessLevel == constants.AccessPublic {
			return Allow, ReasonNone
		}
		return RequireLogin, ReasonAnonymous
	}

	// Admin bypass comes first so it always wins. Admin accounts carry
	// no expiry.
	if id.Role == constants.RoleAdmin {
		return Allow, ReasonNone
	}

	if s.AccessLevel == constants.AccessPublic {
		return Allow, ReasonNone
	}

	role := id.Role
	if id.Expired(now) {
		// Elevated privileges lapse at ExpiresAt; the identity keeps
		// base USER access.
		role = constants.RoleUser
	}

	switch role {
	case constants.RoleVIP:
		if len(id.AllowedStreamIDs) == 0 {
			return Allow, ReasonNone
		}
		if _, ok := id.AllowedStreamIDs[s.ID]; ok {
			return Allow, ReasonNone
		}
		return Forbidden, ReasonNotOnList
	case constants.RoleUser:
		if id.Expired(now) {
			return Forbidden, ReasonExpired
		}
		return Forbidden, ReasonWrongTier
	default:
		return Forbidden, ReasonUnknownRole
	}
}

// Filter returns the order-preserving subsequence of streams the
// identity may see. Listing-time convenience only; every detail and
// playback path re-runs Decide server-side.
func Filter(id *Identity, streams []StreamInfo, now time.Time) []StreamInfo {
	visible := make([]StreamInfo, 0, len(streams))
	for _, s := range streams {
		if Decide(id, s, now) == Allow {
			visible = append(visible, s)
		}
	}
	return visible
}

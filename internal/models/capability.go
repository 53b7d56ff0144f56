package models

import "strings"

// Capability is an opaque permission token a requester either holds or
// does not. There is no hierarchy between capabilities; every check is a
// plain membership test.
type Capability string

const (
	// CapSeeRestrictedForums allows viewing topics and posts inside
	// forums flagged as restricted.
	CapSeeRestrictedForums Capability = "see_restricted_forums"
	// CapEditOwnPosts allows editing the requester's own posts while the
	// parent topic is unlocked.
	CapEditOwnPosts Capability = "edit_own_posts"
	// CapEditAnyPost allows editing any post regardless of authorship or
	// topic lock state.
	CapEditAnyPost Capability = "edit_any_post"
	// CapDeletePosts allows deleting posts; authorship is irrelevant.
	CapDeletePosts Capability = "delete_posts"
)

// CapabilitySet is the set of capabilities attached to a requester.
type CapabilitySet map[Capability]struct{}

// NewCapabilitySet builds a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	set := make(CapabilitySet, len(caps))
	for _, c := range caps {
		set[c] = struct{}{}
	}
	return set
}

// ParseCapabilities builds a set from a comma-separated list, as stored
// on the users table and carried in token claims. Unknown tokens are
// kept as-is; membership tests simply never match them.
func ParseCapabilities(raw string) CapabilitySet {
	set := make(CapabilitySet)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		set[Capability(part)] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the given capability.
func (s CapabilitySet) Has(c Capability) bool {
	_, ok := s[c]
	return ok
}

// Strings returns the capabilities as a sorted-insensitive string slice
// suitable for JWT claims.
func (s CapabilitySet) Strings() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, string(c))
	}
	return out
}

// Requester identifies the principal a listing is produced for. An
// anonymous requester has a zero UserID and an empty capability set.
type Requester struct {
	UserID uint
	Caps   CapabilitySet
}

// IsAnonymous reports whether the requester is unauthenticated.
func (r Requester) IsAnonymous() bool {
	return r.UserID == 0 && len(r.Caps) == 0
}

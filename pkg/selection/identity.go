// Package selection provides stable selection identities for chart elements
// and a manager that tracks the confirmed selection set.
//
// # Overview
//
// Every selectable element carries an [Identity] issued from the dataset's
// category source. Identities are hierarchical: a path runs coarse to fine
// (source, category, index), and a coarser identity includes every finer one
// beneath it. Membership checks therefore use [Identity.Includes], never
// structural equality; selecting a whole category highlights each of its
// bars without enumerating them.
//
// # Stability
//
// Identity IDs are SHA-1 UUIDs derived from the path, so the same source,
// category, and index always produce the same ID, across rebuilds and across
// processes. Rebuilding a chart from the same dataset reissues identical
// identities, which keeps selections valid through re-renders.
//
// # Usage
//
//	issuer := selection.NewIssuer("defect")
//	bar := issuer.IdentityFor("Scratch", 0)
//	all := issuer.CategoryIdentity("Scratch")
//
//	set := selection.NewSet(all)
//	set.Contains(bar) // true: the category identity includes its bars
package selection

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Identity names one selectable element. Path runs coarse to fine; ID is a
// deterministic digest of the path. Two identities with equal paths are the
// same identity.
type Identity struct {
	ID   uuid.UUID `json:"id" bson:"id"`
	Path []string  `json:"path" bson:"path"`
}

// Includes reports whether id covers other: true when id's path is a prefix
// of other's path. Equal paths are included. A category identity therefore
// includes each of its per-bar identities, but not the reverse.
func (id Identity) Includes(other Identity) bool {
	if len(id.Path) > len(other.Path) {
		return false
	}
	for i, seg := range id.Path {
		if other.Path[i] != seg {
			return false
		}
	}
	return true
}

// Equal reports whether two identities name the same element.
func (id Identity) Equal(other Identity) bool {
	return id.ID == other.ID
}

// String returns the path joined with "/" for logs and data attributes.
func (id Identity) String() string {
	return strings.Join(id.Path, "/")
}

// =============================================================================
// Issuer
// =============================================================================

// Issuer mints identities scoped to one dataset source. All identities from
// the same source share a path root, so a source identity includes every
// category and bar identity issued beneath it.
type Issuer struct {
	source string
}

// NewIssuer returns an issuer for the given category source.
func NewIssuer(source string) *Issuer {
	return &Issuer{source: source}
}

// IdentityFor returns the identity of the bar at index within category.
func (is *Issuer) IdentityFor(category string, index int) Identity {
	return identity(is.source, category, strconv.Itoa(index))
}

// CategoryIdentity returns the identity covering every bar of category.
func (is *Issuer) CategoryIdentity(category string) Identity {
	return identity(is.source, category)
}

// SourceIdentity returns the identity covering the whole dataset.
func (is *Issuer) SourceIdentity() Identity {
	return identity(is.source)
}

// identity builds a path-addressed identity with a deterministic SHA-1 UUID.
func identity(path ...string) Identity {
	return Identity{
		ID:   uuid.NewSHA1(uuid.NameSpaceURL, []byte("pareto://"+strings.Join(path, "/"))),
		Path: path,
	}
}

// =============================================================================
// Set
// =============================================================================

// Set is an immutable collection of selected identities. The zero value is
// the empty set. Derived sets are produced with With and Without; the
// originals are never mutated, so sets can be handed across goroutines and
// delivered on confirmation channels safely.
type Set struct {
	members []Identity
}

// NewSet returns a set holding the given identities, deduplicated by ID.
func NewSet(ids ...Identity) Set {
	var s Set
	for _, id := range ids {
		s = s.With(id)
	}
	return s
}

// Empty reports whether nothing is selected.
func (s Set) Empty() bool { return len(s.members) == 0 }

// Len returns the number of member identities.
func (s Set) Len() int { return len(s.members) }

// Members returns a copy of the member identities.
func (s Set) Members() []Identity {
	out := make([]Identity, len(s.members))
	copy(out, s.members)
	return out
}

// Contains reports whether any member includes id. This is the membership
// predicate for highlighting: a bar is selected when a member covers it,
// directly or through a coarser identity.
func (s Set) Contains(id Identity) bool {
	for _, m := range s.members {
		if m.Includes(id) {
			return true
		}
	}
	return false
}

// Has reports whether id itself is a member (exact match, no hierarchy).
func (s Set) Has(id Identity) bool {
	for _, m := range s.members {
		if m.ID == id.ID {
			return true
		}
	}
	return false
}

// With returns a set that additionally holds id. Adding an existing member
// returns an equivalent set.
func (s Set) With(id Identity) Set {
	if s.Has(id) {
		return s
	}
	members := make([]Identity, len(s.members)+1)
	copy(members, s.members)
	members[len(s.members)] = id
	return Set{members: members}
}

// Without returns a set with id removed. Removing a non-member returns an
// equivalent set.
func (s Set) Without(id Identity) Set {
	if !s.Has(id) {
		return s
	}
	members := make([]Identity, 0, len(s.members)-1)
	for _, m := range s.members {
		if m.ID != id.ID {
			members = append(members, m)
		}
	}
	return Set{members: members}
}

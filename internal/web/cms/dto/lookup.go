package dto

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lookup is an explicit discriminated document lookup: either by the
// internal object id or by the human-readable slug. The caller decides
// which, the data layer never sniffs string shapes.
type Lookup struct {
	id   primitive.ObjectID
	slug string
}

// LookupByID builds an id lookup.
func LookupByID(id primitive.ObjectID) Lookup {
	return Lookup{id: id}
}

// LookupBySlug builds a slug lookup.
func LookupBySlug(slug string) Lookup {
	return Lookup{slug: slug}
}

// ParseIDOrSlug resolves a path segment into a lookup: a valid 24-char
// hex object id becomes an id lookup, anything else a slug lookup.
func ParseIDOrSlug(segment string) Lookup {
	if id, err := primitive.ObjectIDFromHex(segment); err == nil {
		return LookupByID(id)
	}

	return LookupBySlug(segment)
}

// ByID reports whether this is an id lookup.
func (l Lookup) ByID() bool {
	return !l.id.IsZero()
}

// ID returns the object id of an id lookup.
func (l Lookup) ID() primitive.ObjectID {
	return l.id
}

// Slug returns the slug of a slug lookup.
func (l Lookup) Slug() string {
	return l.slug
}

package dto

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseIDOrSlug(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()
	lookup := ParseIDOrSlug(id.Hex())
	require.True(t, lookup.ByID())
	require.Equal(t, id, lookup.ID())

	lookup = ParseIDOrSlug("my-first-post")
	require.False(t, lookup.ByID())
	require.Equal(t, "my-first-post", lookup.Slug())

	// hex-looking but wrong length falls through to slug
	lookup = ParseIDOrSlug("abcdef")
	require.False(t, lookup.ByID())
	require.Equal(t, "abcdef", lookup.Slug())
}

package service

import (
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/model"
)

func TestResolveSlugChange(t *testing.T) {
	t.Parallel()

	// keeping the current slug needs no uniqueness check
	slug, needsCheck, err := resolveSlugChange("my-post", "my-post")
	require.NoError(t, err)
	require.Equal(t, "my-post", slug)
	require.False(t, needsCheck)

	// case-only variants normalize to the same slug
	slug, needsCheck, err = resolveSlugChange("my-post", "My-Post")
	require.NoError(t, err)
	require.Equal(t, "my-post", slug)
	require.False(t, needsCheck)

	// a genuinely new slug must be checked
	slug, needsCheck, err = resolveSlugChange("my-post", "other-post")
	require.NoError(t, err)
	require.Equal(t, "other-post", slug)
	require.True(t, needsCheck)

	_, _, err = resolveSlugChange("my-post", "not a slug")
	require.Error(t, err)
	require.True(t, errors.Is(err, model.ErrValidation))
}

func TestSlugExistsFilter(t *testing.T) {
	t.Parallel()

	// create path: no exclusion
	filter := slugExistsFilter("my-post", primitive.NilObjectID)
	require.Equal(t, bson.D{{Key: "slug", Value: "my-post"}}, filter)

	// update path: the document itself is excluded so keeping a slug
	// equivalent never counts as a duplicate
	id := primitive.NewObjectID()
	filter = slugExistsFilter("my-post", id)
	require.Len(t, filter, 2)
	require.Equal(t, bson.E{Key: "slug", Value: "my-post"}, filter[0])
	require.Equal(t, bson.E{Key: "_id", Value: bson.M{"$ne": id}}, filter[1])
}

func TestBlogLookupFilter(t *testing.T) {
	t.Parallel()

	id := primitive.NewObjectID()

	// admin fetches are unrestricted
	filter := blogLookupFilter(dto.LookupByID(id), true)
	require.Equal(t, bson.D{{Key: "_id", Value: id}}, filter)

	// anonymous fetches only match published blogs
	filter = blogLookupFilter(dto.LookupByID(id), false)
	require.Len(t, filter, 2)
	require.Equal(t, bson.E{Key: "is_published", Value: true}, filter[1])

	// slug lookups are lowercased
	filter = blogLookupFilter(dto.LookupBySlug("My-Post"), false)
	require.Equal(t, bson.E{Key: "slug", Value: "my-post"}, filter[0])
	require.Equal(t, bson.E{Key: "is_published", Value: true}, filter[1])
}

package service

import (
	"context"
	"strings"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/model"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/db/mongo"
)

// blogSearchFields are the fields a free-text blog search matches.
var blogSearchFields = []string{
	"title.en", "title.pt",
	"description.en", "description.pt",
	"content.en", "content.pt",
	"tags",
}

// readWordsPerMinute is the reading speed used to estimate read time
// when the client does not provide one.
const readWordsPerMinute = 200

// ListBlogs loads one page of blogs. Non-admin listings only include
// published blogs.
func (s *CMS) ListBlogs(ctx context.Context,
	opts dto.ListOpts) ([]*model.Blog, dto.Pagination, error) {
	opts, err := sanitizeListOpts(opts)
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	filter := bson.D{}
	if !opts.Admin {
		filter = append(filter, visibilityFilter("is_published"))
	}
	if opts.Search != "" {
		filter = append(filter, searchFilter(opts.Search, blogSearchFields)...)
	}

	return listDocuments[model.Blog](ctx, s.dao.GetBlogsCol(), filter, createdSort, opts)
}

// blogLookupFilter maps the discriminated lookup onto a query filter.
// Non-admin fetches only match published blogs, so drafts stay
// invisible (and uncounted) for anonymous clients.
func blogLookupFilter(lookup dto.Lookup, admin bool) bson.D {
	var filter bson.D
	if lookup.ByID() {
		filter = bson.D{{Key: "_id", Value: lookup.ID()}}
	} else {
		filter = bson.D{{Key: "slug", Value: strings.ToLower(lookup.Slug())}}
	}
	if !admin {
		filter = append(filter, visibilityFilter("is_published"))
	}

	return filter
}

// GetBlog loads one blog by the discriminated lookup. When
// incrementView is set the views counter is bumped atomically in the
// same operation, so concurrent fetches never lose updates. Non-admin
// callers only see published blogs.
func (s *CMS) GetBlog(ctx context.Context,
	lookup dto.Lookup, incrementView, admin bool) (*model.Blog, error) {
	filter := blogLookupFilter(lookup, admin)

	blog := new(model.Blog)
	if incrementView {
		err := s.dao.GetBlogsCol().FindOneAndUpdate(ctx, filter,
			bson.M{"$inc": bson.M{"views": 1}},
			options.FindOneAndUpdate().SetReturnDocument(options.After),
		).Decode(blog)
		if err != nil {
			if mongo.NotFound(err) {
				return nil, errors.WithStack(model.ErrNotFound)
			}

			return nil, errors.Wrap(err, "find and bump blog views")
		}

		return blog, nil
	}

	if err := s.dao.GetBlogsCol().FindOne(ctx, filter).Decode(blog); err != nil {
		if mongo.NotFound(err) {
			return nil, errors.WithStack(model.ErrNotFound)
		}

		return nil, errors.Wrap(err, "find blog")
	}

	return blog, nil
}

// slugExistsFilter matches documents claiming slug, excluding one id
// so a blog may keep its own slug on update.
func slugExistsFilter(slug string, excludeID primitive.ObjectID) bson.D {
	filter := bson.D{{Key: "slug", Value: slug}}
	if !excludeID.IsZero() {
		filter = append(filter, bson.E{Key: "_id", Value: bson.M{"$ne": excludeID}})
	}

	return filter
}

// resolveSlugChange sanitizes a proposed slug against the current one.
// needsCheck reports whether the slug actually changes and therefore
// must be checked for uniqueness.
func resolveSlugChange(current, proposed string) (slug string, needsCheck bool, err error) {
	if slug, err = sanitizeSlug(proposed); err != nil {
		return "", false, err
	}

	return slug, slug != current, nil
}

// IsSlugExists checks whether another blog already claims slug.
// excludeID skips one document, so updating a blog to its own slug
// does not trip the check.
func (s *CMS) IsSlugExists(ctx context.Context,
	slug string, excludeID primitive.ObjectID) (bool, error) {
	n, err := s.dao.GetBlogsCol().CountDocuments(ctx, slugExistsFilter(slug, excludeID))
	if err != nil {
		return false, errors.Wrapf(err, "count blogs with slug %q", slug)
	}

	return n != 0, nil
}

// CreateBlog validates and inserts a new blog.
func (s *CMS) CreateBlog(ctx context.Context, input *dto.BlogInput) (*model.Blog, error) {
	title, err := requireBilingual(input.Title, maxTextFieldLength, "title")
	if err != nil {
		return nil, err
	}
	description, err := requireBilingual(input.Description, maxTextFieldLength, "description")
	if err != nil {
		return nil, err
	}
	content, err := requireBilingual(input.Content, maxContentLength, "content")
	if err != nil {
		return nil, err
	}
	if input.Slug == nil {
		return nil, validationErrorf("slug is required")
	}
	slug, err := sanitizeSlug(*input.Slug)
	if err != nil {
		return nil, err
	}
	if input.Image == nil || strings.TrimSpace(*input.Image) == "" {
		return nil, validationErrorf("image is required")
	}

	if exists, err := s.IsSlugExists(ctx, slug, primitive.NilObjectID); err != nil {
		return nil, errors.Wrapf(err, "check slug %q", slug)
	} else if exists {
		return nil, validationErrorf("blog with slug %q already exists", slug)
	}

	now := gutils.Clock.GetUTCNow()
	blog := &model.Blog{
		ID:          primitive.NewObjectID(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Title:       title,
		Description: description,
		Content:     content,
		Slug:        slug,
		Image:       strings.TrimSpace(*input.Image),
		Tags:        input.Tags,
		IsPublished: true,
		ReadTime:    estimateReadTime(content.En),
	}
	if input.IsPublished != nil {
		blog.IsPublished = *input.IsPublished
	}
	if input.Author != nil {
		blog.Author = strings.TrimSpace(*input.Author)
	}
	if input.ReadTime != nil && *input.ReadTime > 0 {
		blog.ReadTime = *input.ReadTime
	}

	if _, err := s.dao.GetBlogsCol().InsertOne(ctx, blog); err != nil {
		// the unique index is the backstop for racing creates
		if mongo.IsDup(err) {
			return nil, validationErrorf("blog with slug %q already exists", slug)
		}

		return nil, errors.Wrap(err, "insert blog")
	}

	s.logger.Info("created blog", zap.String("slug", slug))
	return blog, nil
}

// UpdateBlog applies a partial update to an existing blog. Only
// provided fields change; the slug uniqueness check runs only when the
// slug itself changes.
func (s *CMS) UpdateBlog(ctx context.Context,
	id primitive.ObjectID, input *dto.BlogInput) (*model.Blog, error) {
	existing, err := s.GetBlog(ctx, dto.LookupByID(id), false, true)
	if err != nil {
		return nil, errors.Wrapf(err, "load blog `%s`", id.Hex())
	}

	set := bson.M{"updated_at": gutils.Clock.GetUTCNow()}

	if input.Title != nil {
		title, err := requireBilingual(input.Title, maxTextFieldLength, "title")
		if err != nil {
			return nil, err
		}
		set["title"] = title
	}
	if input.Description != nil {
		description, err := requireBilingual(input.Description, maxTextFieldLength, "description")
		if err != nil {
			return nil, err
		}
		set["description"] = description
	}
	if input.Content != nil {
		content, err := requireBilingual(input.Content, maxContentLength, "content")
		if err != nil {
			return nil, err
		}
		set["content"] = content
	}
	if input.Slug != nil {
		slug, needsCheck, err := resolveSlugChange(existing.Slug, *input.Slug)
		if err != nil {
			return nil, err
		}
		if needsCheck {
			if exists, err := s.IsSlugExists(ctx, slug, id); err != nil {
				return nil, errors.Wrapf(err, "check slug %q", slug)
			} else if exists {
				return nil, validationErrorf("blog with slug %q already exists", slug)
			}
		}
		set["slug"] = slug
	}
	if input.Image != nil {
		image, err := requireText(*input.Image, maxTextFieldLength, "image")
		if err != nil {
			return nil, err
		}
		set["image"] = image
	}
	if input.Tags != nil {
		set["tags"] = input.Tags
	}
	if input.IsPublished != nil {
		set["is_published"] = *input.IsPublished
	}
	if input.Author != nil {
		set["author"] = strings.TrimSpace(*input.Author)
	}
	if input.ReadTime != nil {
		if *input.ReadTime <= 0 {
			return nil, validationErrorf("readTime must be positive")
		}
		set["read_time"] = *input.ReadTime
	}

	if _, err := s.dao.GetBlogsCol().UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		if mongo.IsDup(err) {
			return nil, validationErrorf("blog slug already exists")
		}

		return nil, errors.Wrap(err, "update blog")
	}

	return s.GetBlog(ctx, dto.LookupByID(id), false, true)
}

// DeleteBlog removes a blog and, best-effort, its hosted cover image.
func (s *CMS) DeleteBlog(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.GetBlog(ctx, dto.LookupByID(id), false, true)
	if err != nil {
		return errors.Wrapf(err, "load blog `%s`", id.Hex())
	}

	if _, err := s.dao.GetBlogsCol().
		DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return errors.Wrap(err, "delete blog")
	}

	s.removeImageBestEffort(ctx, existing.Image)
	s.logger.Info("deleted blog", zap.String("slug", existing.Slug))
	return nil
}

// estimateReadTime estimates reading minutes from word count.
func estimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + readWordsPerMinute - 1) / readWordsPerMinute
	if minutes < 1 {
		minutes = 1
	}

	return minutes
}

package service

import (
	"context"
	"strings"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/model"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/db/mongo"
)

// portfolioSearchFields are the fields a free-text portfolio search matches.
var portfolioSearchFields = []string{
	"title.en", "title.pt",
	"description.en", "description.pt",
	"category.en", "category.pt",
	"technologies",
	"client",
}

// ListPortfolios loads one page of portfolio items. Non-admin listings
// only include active items.
func (s *CMS) ListPortfolios(ctx context.Context,
	opts dto.ListOpts) ([]*model.Portfolio, dto.Pagination, error) {
	opts, err := sanitizeListOpts(opts)
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	filter := bson.D{}
	if !opts.Admin {
		filter = append(filter, visibilityFilter("is_active"))
	}
	if opts.Search != "" {
		filter = append(filter, searchFilter(opts.Search, portfolioSearchFields)...)
	}

	return listDocuments[model.Portfolio](ctx, s.dao.GetPortfoliosCol(), filter, orderedSort, opts)
}

// GetPortfolio loads one portfolio item by id.
func (s *CMS) GetPortfolio(ctx context.Context,
	id primitive.ObjectID) (*model.Portfolio, error) {
	item := new(model.Portfolio)
	if err := s.dao.GetPortfoliosCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(item); err != nil {
		if mongo.NotFound(err) {
			return nil, errors.WithStack(model.ErrNotFound)
		}

		return nil, errors.Wrap(err, "find portfolio")
	}

	return item, nil
}

// CreatePortfolio validates and inserts a new portfolio item.
func (s *CMS) CreatePortfolio(ctx context.Context,
	input *dto.PortfolioInput) (*model.Portfolio, error) {
	title, err := requireBilingual(input.Title, maxTextFieldLength, "title")
	if err != nil {
		return nil, err
	}
	description, err := requireBilingual(input.Description, maxTextFieldLength, "description")
	if err != nil {
		return nil, err
	}
	category, err := requireBilingual(input.Category, maxTextFieldLength, "category")
	if err != nil {
		return nil, err
	}
	if input.Image == nil || strings.TrimSpace(*input.Image) == "" {
		return nil, validationErrorf("image is required")
	}

	now := gutils.Clock.GetUTCNow()
	item := &model.Portfolio{
		ID:           primitive.NewObjectID(),
		CreatedAt:    now,
		UpdatedAt:    now,
		Title:        title,
		Description:  description,
		Category:     category,
		Image:        strings.TrimSpace(*input.Image),
		Technologies: input.Technologies,
		ProjectDate:  now,
		IsActive:     true,
	}
	if input.Link != nil {
		item.Link = strings.TrimSpace(*input.Link)
	}
	if input.Client != nil {
		item.Client = strings.TrimSpace(*input.Client)
	}
	if input.ProjectDate != nil {
		item.ProjectDate = *input.ProjectDate
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}
	if input.Order != nil {
		item.Order = *input.Order
	}

	if _, err := s.dao.GetPortfoliosCol().InsertOne(ctx, item); err != nil {
		return nil, errors.Wrap(err, "insert portfolio")
	}

	s.logger.Info("created portfolio", zap.String("id", item.ID.Hex()))
	return item, nil
}

// UpdatePortfolio applies a partial update to an existing portfolio item.
func (s *CMS) UpdatePortfolio(ctx context.Context,
	id primitive.ObjectID, input *dto.PortfolioInput) (*model.Portfolio, error) {
	if _, err := s.GetPortfolio(ctx, id); err != nil {
		return nil, errors.Wrapf(err, "load portfolio `%s`", id.Hex())
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
	if input.Category != nil {
		category, err := requireBilingual(input.Category, maxTextFieldLength, "category")
		if err != nil {
			return nil, err
		}
		set["category"] = category
	}
	if input.Image != nil {
		image, err := requireText(*input.Image, maxTextFieldLength, "image")
		if err != nil {
			return nil, err
		}
		set["image"] = image
	}
	if input.Link != nil {
		set["link"] = strings.TrimSpace(*input.Link)
	}
	if input.Technologies != nil {
		set["technologies"] = input.Technologies
	}
	if input.Client != nil {
		set["client"] = strings.TrimSpace(*input.Client)
	}
	if input.ProjectDate != nil {
		set["project_date"] = *input.ProjectDate
	}
	if input.IsActive != nil {
		set["is_active"] = *input.IsActive
	}
	if input.Order != nil {
		set["order"] = *input.Order
	}

	if _, err := s.dao.GetPortfoliosCol().UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		return nil, errors.Wrap(err, "update portfolio")
	}

	return s.GetPortfolio(ctx, id)
}

// DeletePortfolio removes a portfolio item and, best-effort, its hosted image.
func (s *CMS) DeletePortfolio(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.GetPortfolio(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "load portfolio `%s`", id.Hex())
	}

	if _, err := s.dao.GetPortfoliosCol().
		DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return errors.Wrap(err, "delete portfolio")
	}

	s.removeImageBestEffort(ctx, existing.Image)
	s.logger.Info("deleted portfolio", zap.String("id", id.Hex()))
	return nil
}

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

// serviceSearchFields are the fields a free-text service search matches.
var serviceSearchFields = []string{
	"title.en", "title.pt",
	"description.en", "description.pt",
}

// ListServices loads one page of offered services. Non-admin listings
// only include active ones.
func (s *CMS) ListServices(ctx context.Context,
	opts dto.ListOpts) ([]*model.Service, dto.Pagination, error) {
	opts, err := sanitizeListOpts(opts)
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	filter := bson.D{}
	if !opts.Admin {
		filter = append(filter, visibilityFilter("is_active"))
	}
	if opts.Search != "" {
		filter = append(filter, searchFilter(opts.Search, serviceSearchFields)...)
	}

	return listDocuments[model.Service](ctx, s.dao.GetServicesCol(), filter, orderedSort, opts)
}

// GetService loads one service by id.
func (s *CMS) GetService(ctx context.Context,
	id primitive.ObjectID) (*model.Service, error) {
	svc := new(model.Service)
	if err := s.dao.GetServicesCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(svc); err != nil {
		if mongo.NotFound(err) {
			return nil, errors.WithStack(model.ErrNotFound)
		}

		return nil, errors.Wrap(err, "find service")
	}

	return svc, nil
}

// CreateService validates and inserts a new service.
func (s *CMS) CreateService(ctx context.Context,
	input *dto.ServiceInput) (*model.Service, error) {
	title, err := requireBilingual(input.Title, maxTextFieldLength, "title")
	if err != nil {
		return nil, err
	}
	description, err := requireBilingual(input.Description, maxTextFieldLength, "description")
	if err != nil {
		return nil, err
	}
	if input.Image == nil || strings.TrimSpace(*input.Image) == "" {
		return nil, validationErrorf("image is required")
	}

	now := gutils.Clock.GetUTCNow()
	svc := &model.Service{
		ID:          primitive.NewObjectID(),
		CreatedAt:   now,
		UpdatedAt:   now,
		Title:       title,
		Description: description,
		Image:       strings.TrimSpace(*input.Image),
		IsActive:    true,
	}
	if input.Features != nil {
		// the two feature lists are independently sized
		svc.Features = *input.Features
	}
	if input.Price != nil {
		svc.Price = strings.TrimSpace(*input.Price)
	}
	if input.IsActive != nil {
		svc.IsActive = *input.IsActive
	}
	if input.Order != nil {
		svc.Order = *input.Order
	}

	if _, err := s.dao.GetServicesCol().InsertOne(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "insert service")
	}

	s.logger.Info("created service", zap.String("id", svc.ID.Hex()))
	return svc, nil
}

// UpdateService applies a partial update to an existing service.
func (s *CMS) UpdateService(ctx context.Context,
	id primitive.ObjectID, input *dto.ServiceInput) (*model.Service, error) {
	if _, err := s.GetService(ctx, id); err != nil {
		return nil, errors.Wrapf(err, "load service `%s`", id.Hex())
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
	if input.Image != nil {
		image, err := requireText(*input.Image, maxTextFieldLength, "image")
		if err != nil {
			return nil, err
		}
		set["image"] = image
	}
	if input.Features != nil {
		set["features"] = *input.Features
	}
	if input.Price != nil {
		set["price"] = strings.TrimSpace(*input.Price)
	}
	if input.IsActive != nil {
		set["is_active"] = *input.IsActive
	}
	if input.Order != nil {
		set["order"] = *input.Order
	}

	if _, err := s.dao.GetServicesCol().UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		return nil, errors.Wrap(err, "update service")
	}

	return s.GetService(ctx, id)
}

// DeleteService removes a service and, best-effort, its hosted image.
func (s *CMS) DeleteService(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.GetService(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "load service `%s`", id.Hex())
	}

	if _, err := s.dao.GetServicesCol().
		DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return errors.Wrap(err, "delete service")
	}

	s.removeImageBestEffort(ctx, existing.Image)
	s.logger.Info("deleted service", zap.String("id", id.Hex()))
	return nil
}

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

// teamSearchFields are the fields a free-text team search matches.
var teamSearchFields = []string{
	"name.en", "name.pt",
	"role.en", "role.pt",
}

// ListTeamMembers loads one page of team members. Non-admin listings
// only include active ones.
func (s *CMS) ListTeamMembers(ctx context.Context,
	opts dto.ListOpts) ([]*model.TeamMember, dto.Pagination, error) {
	opts, err := sanitizeListOpts(opts)
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	filter := bson.D{}
	if !opts.Admin {
		filter = append(filter, visibilityFilter("is_active"))
	}
	if opts.Search != "" {
		filter = append(filter, searchFilter(opts.Search, teamSearchFields)...)
	}

	return listDocuments[model.TeamMember](ctx, s.dao.GetTeamMembersCol(), filter, orderedSort, opts)
}

// GetTeamMember loads one team member by id.
func (s *CMS) GetTeamMember(ctx context.Context,
	id primitive.ObjectID) (*model.TeamMember, error) {
	member := new(model.TeamMember)
	if err := s.dao.GetTeamMembersCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(member); err != nil {
		if mongo.NotFound(err) {
			return nil, errors.WithStack(model.ErrNotFound)
		}

		return nil, errors.Wrap(err, "find team member")
	}

	return member, nil
}

// CreateTeamMember validates and inserts a new team member.
func (s *CMS) CreateTeamMember(ctx context.Context,
	input *dto.TeamMemberInput) (*model.TeamMember, error) {
	name, err := requireBilingual(input.Name, maxTextFieldLength, "name")
	if err != nil {
		return nil, err
	}
	role, err := requireBilingual(input.Role, maxTextFieldLength, "role")
	if err != nil {
		return nil, err
	}
	if input.Image == nil || strings.TrimSpace(*input.Image) == "" {
		return nil, validationErrorf("image is required")
	}

	now := gutils.Clock.GetUTCNow()
	member := &model.TeamMember{
		ID:        primitive.NewObjectID(),
		CreatedAt: now,
		UpdatedAt: now,
		Name:      name,
		Role:      role,
		Image:     strings.TrimSpace(*input.Image),
		IsActive:  true,
	}
	if input.IsActive != nil {
		member.IsActive = *input.IsActive
	}
	if input.Order != nil {
		member.Order = *input.Order
	}

	if _, err := s.dao.GetTeamMembersCol().InsertOne(ctx, member); err != nil {
		return nil, errors.Wrap(err, "insert team member")
	}

	s.logger.Info("created team member", zap.String("id", member.ID.Hex()))
	return member, nil
}

// UpdateTeamMember applies a partial update to an existing team member.
func (s *CMS) UpdateTeamMember(ctx context.Context,
	id primitive.ObjectID, input *dto.TeamMemberInput) (*model.TeamMember, error) {
	if _, err := s.GetTeamMember(ctx, id); err != nil {
		return nil, errors.Wrapf(err, "load team member `%s`", id.Hex())
	}

	set := bson.M{"updated_at": gutils.Clock.GetUTCNow()}

	if input.Name != nil {
		name, err := requireBilingual(input.Name, maxTextFieldLength, "name")
		if err != nil {
			return nil, err
		}
		set["name"] = name
	}
	if input.Role != nil {
		role, err := requireBilingual(input.Role, maxTextFieldLength, "role")
		if err != nil {
			return nil, err
		}
		set["role"] = role
	}
	if input.Image != nil {
		image, err := requireText(*input.Image, maxTextFieldLength, "image")
		if err != nil {
			return nil, err
		}
		set["image"] = image
	}
	if input.IsActive != nil {
		set["is_active"] = *input.IsActive
	}
	if input.Order != nil {
		set["order"] = *input.Order
	}

	if _, err := s.dao.GetTeamMembersCol().UpdateByID(ctx, id, bson.M{"$set": set}); err != nil {
		return nil, errors.Wrap(err, "update team member")
	}

	return s.GetTeamMember(ctx, id)
}

// DeleteTeamMember removes a team member and, best-effort, their hosted photo.
func (s *CMS) DeleteTeamMember(ctx context.Context, id primitive.ObjectID) error {
	existing, err := s.GetTeamMember(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "load team member `%s`", id.Hex())
	}

	if _, err := s.dao.GetTeamMembersCol().
		DeleteOne(ctx, bson.D{{Key: "_id", Value: id}}); err != nil {
		return errors.Wrap(err, "delete team member")
	}

	s.removeImageBestEffort(ctx, existing.Image)
	s.logger.Info("deleted team member", zap.String("id", id.Hex()))
	return nil
}

package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/model"
)

// contactSearchFields are the fields a free-text contact search matches.
var contactSearchFields = []string{"name", "company", "email", "message"}

// maxMessageLength caps the contact message body.
const maxMessageLength = 10_000

// CreateContact records a public contact form submission.
func (s *CMS) CreateContact(ctx context.Context,
	input *dto.ContactInput) (*model.Contact, error) {
	name, err := requireText(input.Name, maxTextFieldLength, "name")
	if err != nil {
		return nil, err
	}
	email, err := sanitizeEmail(input.Email)
	if err != nil {
		return nil, err
	}
	message, err := requireText(input.Message, maxMessageLength, "message")
	if err != nil {
		return nil, err
	}
	company, err := sanitizeText(input.Company, maxTextFieldLength, "company")
	if err != nil {
		return nil, err
	}
	phone, err := requireText(input.Phone, maxTextFieldLength, "phone")
	if err != nil {
		return nil, err
	}

	contact := &model.Contact{
		ID:        primitive.NewObjectID(),
		CreatedAt: gutils.Clock.GetUTCNow(),
		Name:      name,
		Company:   company,
		Email:     email,
		Phone:     phone,
		Message:   message,
	}

	if _, err := s.dao.GetContactsCol().InsertOne(ctx, contact); err != nil {
		return nil, errors.Wrap(err, "insert contact")
	}

	s.logger.Info("received contact submission", zap.String("email", email))
	return contact, nil
}

// ListContacts loads one page of contact submissions. There is no
// public listing; the controller guards this behind the admin gate.
func (s *CMS) ListContacts(ctx context.Context,
	opts dto.ListOpts) ([]*model.Contact, dto.Pagination, error) {
	opts, err := sanitizeListOpts(opts)
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	filter := bson.D{}
	if opts.Search != "" {
		filter = append(filter, searchFilter(opts.Search, contactSearchFields)...)
	}

	return listDocuments[model.Contact](ctx, s.dao.GetContactsCol(), filter, createdSort, opts)
}

// DeleteContact removes a contact submission.
func (s *CMS) DeleteContact(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.dao.GetContactsCol().
		DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return errors.Wrap(err, "delete contact")
	}
	if res.DeletedCount == 0 {
		return errors.WithStack(model.ErrNotFound)
	}

	return nil
}

// Subscribe adds an email to the newsletter. Subscribing an address
// that already exists reactivates it instead of tripping the unique
// index.
func (s *CMS) Subscribe(ctx context.Context, email string) (*model.Newsletter, error) {
	email, err := sanitizeEmail(email)
	if err != nil {
		return nil, err
	}

	now := gutils.Clock.GetUTCNow()
	sub := new(model.Newsletter)
	if err := s.dao.GetNewslettersCol().FindOneAndUpdate(ctx,
		bson.M{"email": email},
		bson.M{
			"$set": bson.M{
				"is_active":  true,
				"updated_at": now,
			},
			"$setOnInsert": bson.M{
				"email":      email,
				"created_at": now,
			},
		},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(sub); err != nil {
		return nil, errors.Wrapf(err, "subscribe %q", email)
	}

	s.logger.Info("newsletter subscribe", zap.String("email", email))
	return sub, nil
}

// Unsubscribe deactivates a newsletter subscription.
func (s *CMS) Unsubscribe(ctx context.Context, email string) error {
	email, err := sanitizeEmail(email)
	if err != nil {
		return err
	}

	res, err := s.dao.GetNewslettersCol().UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"is_active":  false,
			"updated_at": gutils.Clock.GetUTCNow(),
		}},
	)
	if err != nil {
		return errors.Wrapf(err, "unsubscribe %q", email)
	}
	if res.MatchedCount == 0 {
		return errors.WithStack(model.ErrNotFound)
	}

	return nil
}

// ListNewsletters loads one page of newsletter subscribers; admin only.
func (s *CMS) ListNewsletters(ctx context.Context,
	opts dto.ListOpts) ([]*model.Newsletter, dto.Pagination, error) {
	opts, err := sanitizeListOpts(opts)
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	filter := bson.D{}
	if opts.Search != "" {
		filter = append(filter, searchFilter(opts.Search, []string{"email"})...)
	}

	return listDocuments[model.Newsletter](ctx, s.dao.GetNewslettersCol(), filter, createdSort, opts)
}

// DeleteNewsletter removes a subscriber document entirely.
func (s *CMS) DeleteNewsletter(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.dao.GetNewslettersCol().
		DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return errors.Wrap(err, "delete newsletter subscriber")
	}
	if res.DeletedCount == 0 {
		return errors.WithStack(model.ErrNotFound)
	}

	return nil
}

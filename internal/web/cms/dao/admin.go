package dao

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/model"
)

// GetAdminByEmail loads an admin by its lowercased email.
func (d *CMS) GetAdminByEmail(ctx context.Context, email string) (*model.Admin, error) {
	admin := new(model.Admin)
	if err := d.GetAdminsCol().
		FindOne(ctx, bson.D{{Key: "email", Value: email}}).
		Decode(admin); err != nil {
		return nil, errors.Wrapf(err, "find admin %q", email)
	}

	return admin, nil
}

// GetAdminByID loads an admin by object id.
func (d *CMS) GetAdminByID(ctx context.Context, id primitive.ObjectID) (*model.Admin, error) {
	admin := new(model.Admin)
	if err := d.GetAdminsCol().
		FindOne(ctx, bson.D{{Key: "_id", Value: id}}).
		Decode(admin); err != nil {
		return nil, errors.Wrapf(err, "find admin `%s`", id.Hex())
	}

	return admin, nil
}

// CountAdmins returns the number of admin documents.
func (d *CMS) CountAdmins(ctx context.Context) (int64, error) {
	n, err := d.GetAdminsCol().CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, errors.Wrap(err, "count admins")
	}

	return n, nil
}

// TouchLastLogin records a successful login time.
func (d *CMS) TouchLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	if _, err := d.GetAdminsCol().UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"last_login": at},
	}); err != nil {
		return errors.Wrapf(err, "touch last_login for `%s`", id.Hex())
	}

	d.logger.Debug("touched last_login", zap.String("admin", id.Hex()))
	return nil
}

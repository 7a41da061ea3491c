// Package dao contains the data access objects of the CMS.
package dao

import (
	"context"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v6/log"
	"go.mongodb.org/mongo-driver/bson"
	mongoLib "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/db/mongo"
)

const (
	colAdmins      = "admins"
	colBlogs       = "blogs"
	colPortfolios  = "portfolios"
	colServices    = "services"
	colTeamMembers = "team_members"
	colContacts    = "contacts"
	colNewsletters = "newsletters"
)

// CMS dao type
type CMS struct {
	logger glog.Logger
	db     mongo.DB
}

// New create new dao
func New(logger glog.Logger, db mongo.DB) *CMS {
	return &CMS{
		logger: logger,
		db:     db,
	}
}

// GetAdminsCol get admins collection
func (d *CMS) GetAdminsCol() *mongoLib.Collection {
	return d.db.GetCol(colAdmins)
}

// GetBlogsCol get blogs collection
func (d *CMS) GetBlogsCol() *mongoLib.Collection {
	return d.db.GetCol(colBlogs)
}

// GetPortfoliosCol get portfolios collection
func (d *CMS) GetPortfoliosCol() *mongoLib.Collection {
	return d.db.GetCol(colPortfolios)
}

// GetServicesCol get services collection
func (d *CMS) GetServicesCol() *mongoLib.Collection {
	return d.db.GetCol(colServices)
}

// GetTeamMembersCol get team members collection
func (d *CMS) GetTeamMembersCol() *mongoLib.Collection {
	return d.db.GetCol(colTeamMembers)
}

// GetContactsCol get contacts collection
func (d *CMS) GetContactsCol() *mongoLib.Collection {
	return d.db.GetCol(colContacts)
}

// GetNewslettersCol get newsletters collection
func (d *CMS) GetNewslettersCol() *mongoLib.Collection {
	return d.db.GetCol(colNewsletters)
}

// SetupIndexes creates the unique indexes the write paths rely on.
func (d *CMS) SetupIndexes(ctx context.Context) error {
	for _, idx := range []struct {
		col  *mongoLib.Collection
		keys bson.M
	}{
		{d.GetAdminsCol(), bson.M{"email": 1}},
		{d.GetBlogsCol(), bson.M{"slug": 1}},
		{d.GetNewslettersCol(), bson.M{"email": 1}},
	} {
		if _, err := idx.col.Indexes().CreateOne(ctx, mongoLib.IndexModel{
			Keys:    idx.keys,
			Options: options.Index().SetUnique(true),
		}); err != nil {
			return errors.Wrapf(err, "create unique index on %s", idx.col.Name())
		}
	}

	return nil
}

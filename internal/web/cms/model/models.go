// Package model contains all the content models used in the application.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Bilingual is a user-facing text pair, one value per supported locale.
// Both values are mandatory at create time.
type Bilingual struct {
	En string `bson:"en" json:"en"`
	Pt string `bson:"pt" json:"pt"`
}

// Empty reports whether either language is missing.
func (b Bilingual) Empty() bool {
	return b.En == "" || b.Pt == ""
}

// BilingualList is a list of strings per locale. The two sides are
// independently sized.
type BilingualList struct {
	En []string `bson:"en" json:"en"`
	Pt []string `bson:"pt" json:"pt"`
}

// Blog is a published article.
type Blog struct {
	// ID unique identifier for the blog
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// CreatedAt time when the blog was created
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	// UpdatedAt time when the blog was last modified
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
	// Title bilingual title
	Title Bilingual `bson:"title" json:"title"`
	// Description bilingual summary
	Description Bilingual `bson:"description" json:"description"`
	// Content bilingual body, stored as markdown
	Content Bilingual `bson:"content" json:"content"`
	// Slug unique lowercase URL identifier
	Slug string `bson:"slug" json:"slug"`
	// Image cover image URL
	Image string `bson:"image" json:"image"`
	// Tags free-form tags
	Tags []string `bson:"tags" json:"tags"`
	// IsPublished whether the blog is publicly visible
	IsPublished bool `bson:"is_published" json:"is_published"`
	// Author display name
	Author string `bson:"author" json:"author"`
	// ReadTime estimated reading time in minutes
	ReadTime int `bson:"read_time" json:"read_time"`
	// Views public detail fetch counter
	Views int64 `bson:"views" json:"views"`
}

// Portfolio is a showcased project.
type Portfolio struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
	Title        Bilingual          `bson:"title" json:"title"`
	Description  Bilingual          `bson:"description" json:"description"`
	Category     Bilingual          `bson:"category" json:"category"`
	Image        string             `bson:"image" json:"image"`
	Link         string             `bson:"link" json:"link"`
	Technologies []string           `bson:"technologies" json:"technologies"`
	Client       string             `bson:"client" json:"client"`
	ProjectDate  time.Time          `bson:"project_date" json:"project_date"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	// Order ascending sort key; ties broken by CreatedAt descending.
	Order int `bson:"order" json:"order"`
}

// Service is an offered service.
type Service struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	Title       Bilingual          `bson:"title" json:"title"`
	Description Bilingual          `bson:"description" json:"description"`
	Image       string             `bson:"image" json:"image"`
	Features    BilingualList      `bson:"features" json:"features"`
	// Price free-text price label
	Price    string `bson:"price" json:"price"`
	IsActive bool   `bson:"is_active" json:"is_active"`
	Order    int    `bson:"order" json:"order"`
}

// TeamMember is a person shown on the team page.
type TeamMember struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	Name      Bilingual          `bson:"name" json:"name"`
	Role      Bilingual          `bson:"role" json:"role"`
	Image     string             `bson:"image" json:"image"`
	IsActive  bool               `bson:"is_active" json:"is_active"`
	Order     int                `bson:"order" json:"order"`
}

// Contact is a message submitted through the public contact form.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	Name      string             `bson:"name" json:"name"`
	Company   string             `bson:"company,omitempty" json:"company,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	Message   string             `bson:"message" json:"message"`
}

// Newsletter is a newsletter subscription.
type Newsletter struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	// Email unique subscriber address
	Email    string `bson:"email" json:"email"`
	IsActive bool   `bson:"is_active" json:"is_active"`
}

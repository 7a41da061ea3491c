package dto

import (
	"time"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/model"
)

// LoginRequest is the admin login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// BlogInput carries blog fields for create and update. Nil pointers
// mean "not provided"; create requires every field except the
// optional ones noted on the model.
type BlogInput struct {
	Title       *model.Bilingual `json:"title"`
	Description *model.Bilingual `json:"description"`
	Content     *model.Bilingual `json:"content"`
	Slug        *string          `json:"slug"`
	Image       *string          `json:"image"`
	Tags        []string         `json:"tags"`
	IsPublished *bool            `json:"isPublished"`
	Author      *string          `json:"author"`
	ReadTime    *int             `json:"readTime"`
}

// PortfolioInput carries portfolio fields for create and update.
type PortfolioInput struct {
	Title        *model.Bilingual `json:"title"`
	Description  *model.Bilingual `json:"description"`
	Category     *model.Bilingual `json:"category"`
	Image        *string          `json:"image"`
	Link         *string          `json:"link"`
	Technologies []string         `json:"technologies"`
	Client       *string          `json:"client"`
	ProjectDate  *time.Time       `json:"projectDate"`
	IsActive     *bool            `json:"isActive"`
	Order        *int             `json:"order"`
}

// ServiceInput carries service fields for create and update.
type ServiceInput struct {
	Title       *model.Bilingual     `json:"title"`
	Description *model.Bilingual     `json:"description"`
	Image       *string              `json:"image"`
	Features    *model.BilingualList `json:"features"`
	Price       *string              `json:"price"`
	IsActive    *bool                `json:"isActive"`
	Order       *int                 `json:"order"`
}

// TeamMemberInput carries team member fields for create and update.
type TeamMemberInput struct {
	Name     *model.Bilingual `json:"name"`
	Role     *model.Bilingual `json:"role"`
	Image    *string          `json:"image"`
	IsActive *bool            `json:"isActive"`
	Order    *int             `json:"order"`
}

// ContactInput is the public contact form payload.
type ContactInput struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SubscribeRequest is the public newsletter payload.
type SubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

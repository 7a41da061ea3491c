// Package controller exposes the CMS as a JSON REST surface.
package controller

import (
	glog "github.com/Laisky/go-utils/v6/log"
	"github.com/gin-gonic/gin"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/service"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/auth"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/media"
)

// Controller routes HTTP requests into the CMS service.
type Controller struct {
	logger glog.Logger
	svc    *service.CMS
	auth   *auth.Auth
	// media is nil when no object store is configured; the media
	// endpoints then respond 503.
	media *media.Store
}

// New creates the controller.
func New(logger glog.Logger,
	svc *service.CMS,
	authGate *auth.Auth,
	mediaStore *media.Store) *Controller {
	return &Controller{
		logger: logger,
		svc:    svc,
		auth:   authGate,
		media:  mediaStore,
	}
}

// RegisterRoutes mounts the REST surface on the gin engine.
func (c *Controller) RegisterRoutes(r gin.IRouter) {
	api := r.Group("/api")

	// public collaborator endpoints
	api.POST("/contact", c.SubmitContact)
	api.POST("/newsletter/subscribe", c.Subscribe)
	api.POST("/newsletter/unsubscribe", c.Unsubscribe)

	admin := api.Group("/admin")

	admin.POST("/auth/login", c.Login)
	admin.POST("/auth/auto-init", c.AutoInit)
	admin.POST("/auth/logout", c.Logout)
	admin.GET("/auth/verify", c.RequireAdmin, c.Verify)

	admin.GET("/blogs", c.ListBlogs)
	admin.GET("/blogs/:idOrSlug", c.GetBlog)
	admin.POST("/blogs", c.RequireAdmin, c.CreateBlog)
	admin.PUT("/blogs/:idOrSlug", c.RequireAdmin, c.UpdateBlog)
	admin.DELETE("/blogs/:idOrSlug", c.RequireAdmin, c.DeleteBlog)

	admin.GET("/portfolios", c.ListPortfolios)
	admin.GET("/portfolios/:id", c.GetPortfolio)
	admin.POST("/portfolios", c.RequireAdmin, c.CreatePortfolio)
	admin.PUT("/portfolios/:id", c.RequireAdmin, c.UpdatePortfolio)
	admin.DELETE("/portfolios/:id", c.RequireAdmin, c.DeletePortfolio)

	admin.GET("/services", c.ListServices)
	admin.GET("/services/:id", c.GetService)
	admin.POST("/services", c.RequireAdmin, c.CreateService)
	admin.PUT("/services/:id", c.RequireAdmin, c.UpdateService)
	admin.DELETE("/services/:id", c.RequireAdmin, c.DeleteService)

	admin.GET("/team-members", c.ListTeamMembers)
	admin.GET("/team-members/:id", c.GetTeamMember)
	admin.POST("/team-members", c.RequireAdmin, c.CreateTeamMember)
	admin.PUT("/team-members/:id", c.RequireAdmin, c.UpdateTeamMember)
	admin.DELETE("/team-members/:id", c.RequireAdmin, c.DeleteTeamMember)

	admin.GET("/contacts", c.RequireAdmin, c.ListContacts)
	admin.DELETE("/contacts/:id", c.RequireAdmin, c.DeleteContact)

	admin.GET("/newsletters", c.RequireAdmin, c.ListNewsletters)
	admin.DELETE("/newsletters/:id", c.RequireAdmin, c.DeleteNewsletter)

	admin.POST("/media", c.RequireAdmin, c.UploadMedia)
	admin.DELETE("/media", c.RequireAdmin, c.DeleteMedia)
}

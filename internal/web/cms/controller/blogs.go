package controller

import (
	"net/http"

	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/service"
)

// requireAdminFlag authorizes the unrestricted listing: the admin=true
// query flag only takes effect behind the auth gate.
func (c *Controller) requireAdminFlag(ctx *gin.Context, opts dto.ListOpts) bool {
	if !opts.Admin {
		return true
	}

	if _, err := c.adminFromRequest(ctx); err != nil {
		c.logger.Debug("reject admin listing", zap.Error(err))
		ctx.JSON(http.StatusUnauthorized, dto.Fail(msgUnauthorized))
		return false
	}

	return true
}

// ListBlogs lists blogs with pagination and free-text search.
func (c *Controller) ListBlogs(ctx *gin.Context) {
	opts := listOptsFromQuery(ctx)
	if !c.requireAdminFlag(ctx, opts) {
		return
	}

	blogs, pagination, err := c.svc.ListBlogs(ctx.Request.Context(), opts)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKList(blogs, pagination))
}

// GetBlog fetches one blog by object id or slug. The view=true flag
// bumps the views counter atomically; format=html renders the stored
// markdown content. Unpublished blogs are only served to an
// authenticated admin.
func (c *Controller) GetBlog(ctx *gin.Context) {
	lookup := dto.ParseIDOrSlug(ctx.Param("idOrSlug"))
	incrementView := ctx.Query("view") == "true"

	_, authErr := c.adminFromRequest(ctx)
	admin := authErr == nil

	blog, err := c.svc.GetBlog(ctx.Request.Context(), lookup, incrementView, admin)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	if ctx.Query("format") == "html" {
		blog = service.RenderBlogHTML(blog)
	}

	ctx.JSON(http.StatusOK, dto.OK(blog))
}

// CreateBlog inserts a new blog; admin only.
func (c *Controller) CreateBlog(ctx *gin.Context) {
	input := new(dto.BlogInput)
	if err := ctx.ShouldBindJSON(input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	blog, err := c.svc.CreateBlog(ctx.Request.Context(), input)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(blog))
}

// UpdateBlog applies a partial update; admin only.
func (c *Controller) UpdateBlog(ctx *gin.Context) {
	id, err := pathObjectID(ctx, "idOrSlug")
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	input := new(dto.BlogInput)
	if err := ctx.ShouldBindJSON(input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	blog, err := c.svc.UpdateBlog(ctx.Request.Context(), id, input)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(blog))
}

// DeleteBlog removes a blog; admin only.
func (c *Controller) DeleteBlog(ctx *gin.Context) {
	id, err := pathObjectID(ctx, "idOrSlug")
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	if err := c.svc.DeleteBlog(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(nil))
}

package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
)

// ListPortfolios lists portfolio items with pagination and search.
func (c *Controller) ListPortfolios(ctx *gin.Context) {
	opts := listOptsFromQuery(ctx)
	if !c.requireAdminFlag(ctx, opts) {
		return
	}

	items, pagination, err := c.svc.ListPortfolios(ctx.Request.Context(), opts)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKList(items, pagination))
}

// GetPortfolio fetches one portfolio item by object id.
func (c *Controller) GetPortfolio(ctx *gin.Context) {
	id, err := pathObjectID(ctx, "id")
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	item, err := c.svc.GetPortfolio(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(item))
}

// CreatePortfolio inserts a new portfolio item; admin only.
func (c *Controller) CreatePortfolio(ctx *gin.Context) {
	input := new(dto.PortfolioInput)
	if err := ctx.ShouldBindJSON(input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	item, err := c.svc.CreatePortfolio(ctx.Request.Context(), input)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(item))
}

// UpdatePortfolio applies a partial update; admin only.
func (c *Controller) UpdatePortfolio(ctx *gin.Context) {
	id, err := pathObjectID(ctx, "id")
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	input := new(dto.PortfolioInput)
	if err := ctx.ShouldBindJSON(input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	item, err := c.svc.UpdatePortfolio(ctx.Request.Context(), id, input)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(item))
}

// DeletePortfolio removes a portfolio item; admin only.
func (c *Controller) DeletePortfolio(ctx *gin.Context) {
	id, err := pathObjectID(ctx, "id")
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	if err := c.svc.DeletePortfolio(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(nil))
}

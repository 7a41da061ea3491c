package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
)

// ListServices lists offered services with pagination and search.
func (c *Controller) ListServices(ctx *gin.Context) {
	opts := listOptsFromQuery(ctx)
	if !c.requireAdminFlag(ctx, opts) {
		return
	}

	services, pagination, err := c.svc.ListServices(ctx.Request.Context(), opts)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKList(services, pagination))
}

// GetService fetches one service by object id.
func (c *Controller) GetService(ctx *gin.Context) {
	id, err := pathObjectID(ctx, "id")
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	svc, err := c.svc.GetService(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(svc))
}

// CreateService inserts a new service; admin only.
func (c *Controller) CreateService(ctx *gin.Context) {
	input := new(dto.ServiceInput)
	if err := ctx.ShouldBindJSON(input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	svc, err := c.svc.CreateService(ctx.Request.Context(), input)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(svc))
}

// UpdateService applies a partial update; admin only.
func (c *Controller) UpdateService(ctx *gin.Context) {
	id, err := pathObjectID(ctx, "id")
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	input := new(dto.ServiceInput)
	if err := ctx.ShouldBindJSON(input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	svc, err := c.svc.UpdateService(ctx.Request.Context(), id, input)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(svc))
}

// DeleteService removes a service; admin only.
func (c *Controller) DeleteService(ctx *gin.Context) {
	id, err := pathObjectID(ctx, "id")
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	if err := c.svc.DeleteService(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(nil))
}

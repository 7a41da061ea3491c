package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
)

// ListTeamMembers lists team members with pagination and search.
func (c *Controller) ListTeamMembers(ctx *gin.Context) {
	opts := listOptsFromQuery(ctx)
	if !c.requireAdminFlag(ctx, opts) {
		return
	}

	members, pagination, err := c.svc.ListTeamMembers(ctx.Request.Context(), opts)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKList(members, pagination))
}

// GetTeamMember fetches one team member by object id.
func (c *Controller) GetTeamMember(ctx *gin.Context) {
	id, err := pathObjectID(ctx, "id")
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	member, err := c.svc.GetTeamMember(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(member))
}

// CreateTeamMember inserts a new team member; admin only.
func (c *Controller) CreateTeamMember(ctx *gin.Context) {
	input := new(dto.TeamMemberInput)
	if err := ctx.ShouldBindJSON(input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	member, err := c.svc.CreateTeamMember(ctx.Request.Context(), input)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(member))
}

// UpdateTeamMember applies a partial update; admin only.
func (c *Controller) UpdateTeamMember(ctx *gin.Context) {
	id, err := pathObjectID(ctx, "id")
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	input := new(dto.TeamMemberInput)
	if err := ctx.ShouldBindJSON(input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	member, err := c.svc.UpdateTeamMember(ctx.Request.Context(), id, input)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(member))
}

// DeleteTeamMember removes a team member; admin only.
func (c *Controller) DeleteTeamMember(ctx *gin.Context) {
	id, err := pathObjectID(ctx, "id")
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	if err := c.svc.DeleteTeamMember(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(nil))
}

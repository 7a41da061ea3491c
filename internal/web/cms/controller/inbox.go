package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
)

// SubmitContact records a public contact form submission.
func (c *Controller) SubmitContact(ctx *gin.Context) {
	input := new(dto.ContactInput)
	if err := ctx.ShouldBindJSON(input); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	contact, err := c.svc.CreateContact(ctx.Request.Context(), input)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(contact))
}

// ListContacts lists contact submissions; admin only.
func (c *Controller) ListContacts(ctx *gin.Context) {
	contacts, pagination, err := c.svc.ListContacts(
		ctx.Request.Context(), listOptsFromQuery(ctx))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKList(contacts, pagination))
}

// DeleteContact removes a contact submission; admin only.
func (c *Controller) DeleteContact(ctx *gin.Context) {
	id, err := pathObjectID(ctx, "id")
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	if err := c.svc.DeleteContact(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(nil))
}

// Subscribe adds an email to the newsletter list. Re-subscribing an
// existing address reactivates it.
func (c *Controller) Subscribe(ctx *gin.Context) {
	req := new(dto.SubscribeRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	sub, err := c.svc.Subscribe(ctx.Request.Context(), req.Email)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(sub))
}

// Unsubscribe deactivates a newsletter subscription.
func (c *Controller) Unsubscribe(ctx *gin.Context) {
	req := new(dto.SubscribeRequest)
	if err := ctx.ShouldBindJSON(req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("invalid request body"))
		return
	}

	if err := c.svc.Unsubscribe(ctx.Request.Context(), req.Email); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(nil))
}

// ListNewsletters lists newsletter subscribers; admin only.
func (c *Controller) ListNewsletters(ctx *gin.Context) {
	subs, pagination, err := c.svc.ListNewsletters(
		ctx.Request.Context(), listOptsFromQuery(ctx))
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OKList(subs, pagination))
}

// DeleteNewsletter removes a subscriber document; admin only.
func (c *Controller) DeleteNewsletter(ctx *gin.Context) {
	id, err := pathObjectID(ctx, "id")
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	if err := c.svc.DeleteNewsletter(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(nil))
}

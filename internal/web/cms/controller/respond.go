package controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/model"
)

const (
	msgUnauthorized  = "Unauthorized"
	msgNotFound      = "Not found"
	msgInternalError = "Internal server error"
)

// respondError maps a service error onto the HTTP taxonomy: validation
// failures keep their descriptive message (400), missing documents are
// 404, everything unexpected is a generic 500 with the detail logged
// server-side only.
func (c *Controller) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		ctx.JSON(http.StatusBadRequest, dto.Fail(validationMessage(err)))
	case errors.Is(err, model.ErrNotFound):
		ctx.JSON(http.StatusNotFound, dto.Fail(msgNotFound))
	default:
		c.logger.Error("request failed",
			zap.Error(err),
			zap.String("path", ctx.FullPath()))
		ctx.JSON(http.StatusInternalServerError, dto.Fail(msgInternalError))
	}
}

// validationMessage strips the sentinel suffix that wrapping appends,
// leaving only the descriptive part for the client.
func validationMessage(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "+model.ErrValidation.Error()); idx > 0 {
		msg = msg[:idx]
	}

	return msg
}

// listOptsFromQuery parses the common list query parameters.
func listOptsFromQuery(ctx *gin.Context) dto.ListOpts {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", strconv.Itoa(dto.DefaultPageSize)))

	return dto.ListOpts{
		Page:   page,
		Limit:  limit,
		Search: ctx.Query("search"),
		Admin:  ctx.Query("admin") == "true",
	}
}

// pathObjectID parses the object id path parameter named key; a
// malformed id is reported as NotFound since no document can match it.
func pathObjectID(ctx *gin.Context, key string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(ctx.Param(key))
	if err != nil {
		return primitive.NilObjectID, errors.WithStack(model.ErrNotFound)
	}

	return id, nil
}

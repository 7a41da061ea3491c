package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
)

// maxUploadBytes caps a single media upload.
const maxUploadBytes = 10 << 20

// UploadMedia accepts a multipart image upload and returns the public
// URL the object is served from; admin only.
func (c *Controller) UploadMedia(ctx *gin.Context) {
	if c.media == nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.Fail("media store is not configured"))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("missing file field"))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		ctx.JSON(http.StatusBadRequest, dto.Fail("file too large"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("cannot read uploaded file"))
		return
	}
	defer file.Close()

	url, err := c.media.Upload(ctx.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
		fileHeader.Size,
	)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(gin.H{"url": url}))
}

// DeleteMedia removes the object behind the given public URL; admin
// only. Refuses URLs the store does not own.
func (c *Controller) DeleteMedia(ctx *gin.Context) {
	if c.media == nil {
		ctx.JSON(http.StatusServiceUnavailable, dto.Fail("media store is not configured"))
		return
	}

	url := ctx.Query("url")
	if url == "" {
		ctx.JSON(http.StatusBadRequest, dto.Fail("missing url parameter"))
		return
	}
	if !c.media.Owns(url) {
		ctx.JSON(http.StatusBadRequest, dto.Fail("url does not belong to the media store"))
		return
	}

	if err := c.media.Delete(ctx.Request.Context(), url); err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(nil))
}

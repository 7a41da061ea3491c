package controller

import (
	"net/http"

	"github.com/Laisky/errors/v2"
	gconfig "github.com/Laisky/go-config/v2"
	"github.com/Laisky/zap"
	"github.com/gin-gonic/gin"
	jwtSDK "github.com/golang-jwt/jwt/v5"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/dto"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/model"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/jwt"
)

// ctxKeyAdmin is the gin context key the gate stores the authenticated
// admin under.
const ctxKeyAdmin = "cms/admin"

// adminFromRequest verifies the session token and re-checks the admin
// account. Deactivating an admin therefore revokes live sessions
// immediately, not only at token expiry.
func (c *Controller) adminFromRequest(ctx *gin.Context) (*model.Admin, error) {
	claims, err := c.auth.ClaimsFromRequest(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "read session token")
	}

	admin, err := c.svc.AdminByID(ctx.Request.Context(), claims.AdminID())
	if err != nil {
		return nil, errors.Wrap(err, "load session admin")
	}
	if !admin.IsActive {
		return nil, errors.Errorf("admin %q is deactivated", admin.Email)
	}

	return admin, nil
}

// RequireAdmin is the single auth gate every admin-scoped handler sits
// behind. It aborts with 401 on any token or account failure.
func (c *Controller) RequireAdmin(ctx *gin.Context) {
	admin, err := c.adminFromRequest(ctx)
	if err != nil {
		c.logger.Debug("reject unauthorized request",
			zap.Error(err), zap.String("path", ctx.FullPath()))
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(msgUnauthorized))
		return
	}

	ctx.Set(ctxKeyAdmin, admin)
	ctx.Next()
}

// currentAdmin returns the admin stored by RequireAdmin.
func currentAdmin(ctx *gin.Context) *model.Admin {
	if v, ok := ctx.Get(ctxKeyAdmin); ok {
		if admin, ok := v.(*model.Admin); ok {
			return admin
		}
	}

	return nil
}

// Login authenticates an admin and sets the session cookie.
func (c *Controller) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("email and password are required"))
		return
	}

	admin, err := c.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if isCredentialError(err) {
			c.logger.Debug("login rejected", zap.Error(err))
			ctx.JSON(http.StatusUnauthorized, dto.Fail(maskLoginError(err).Error()))
			return
		}

		// infrastructure failures are not the client's fault
		c.respondError(ctx, err)
		return
	}

	claims := &jwt.AdminClaims{
		RegisteredClaims: jwtSDK.RegisteredClaims{
			Subject: admin.GetID(),
		},
		Email: admin.Email,
		Role:  string(admin.Role),
	}

	token, err := c.auth.SetLoginCookie(ctx, claims)
	if err != nil {
		c.respondError(ctx, errors.Wrap(err, "set login cookie"))
		return
	}

	ctx.JSON(http.StatusOK, dto.OK(gin.H{
		"admin": admin,
		"token": token,
	}))
}

// Logout clears the session cookie. The token itself stays valid until
// its natural expiry; there is no server-side session store.
func (c *Controller) Logout(ctx *gin.Context) {
	c.auth.ClearLoginCookie(ctx)
	ctx.JSON(http.StatusOK, dto.OK(nil))
}

// Verify returns the authenticated admin for the panel UI context.
func (c *Controller) Verify(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.OK(currentAdmin(ctx)))
}

// AutoInit bootstraps the first admin account from configuration when
// none exists yet. Credentials are never echoed back in the response.
func (c *Controller) AutoInit(ctx *gin.Context) {
	admin, err := c.svc.BootstrapAdmin(ctx.Request.Context(),
		gconfig.Shared.GetString("settings.bootstrap.email"),
		gconfig.Shared.GetString("settings.bootstrap.name"),
		gconfig.Shared.GetString("settings.bootstrap.password"),
	)
	if err != nil {
		c.respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.OK(gin.H{
		"email": admin.Email,
		"name":  admin.Name,
		"role":  admin.Role,
	}))
}

package service

import (
	"context"

	"github.com/Laisky/errors/v2"
	gutils "github.com/Laisky/go-utils/v6"
	"github.com/Laisky/zap"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Piyush-Singh-Chauhan/zuinder-api/internal/web/cms/model"
	"github.com/Piyush-Singh-Chauhan/zuinder-api/library/db/mongo"
)

// Login validates admin credentials and records the login time.
//
// Unknown accounts and wrong passwords both surface as
// model.ErrInvalidCredentials; a deactivated account is the one
// distinguished failure.
func (s *CMS) Login(ctx context.Context, email, password string) (*model.Admin, error) {
	email, err := sanitizeEmail(email)
	if err != nil {
		return nil, errors.WithStack(model.ErrInvalidCredentials)
	}

	if !s.loginThrottle.Allow(email) {
		s.logger.Warn("login throttled", zap.String("email", email))
		return nil, errors.WithStack(model.ErrInvalidCredentials)
	}

	admin, err := s.dao.GetAdminByEmail(ctx, email)
	if err != nil {
		if mongo.NotFound(err) {
			return nil, errors.WithStack(model.ErrInvalidCredentials)
		}

		return nil, errors.Wrapf(err, "load admin %q", email)
	}

	if !admin.IsActive {
		return nil, errors.WithStack(model.ErrAccountDeactivated)
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(admin.Password), []byte(password)); err != nil {
		return nil, errors.WithStack(model.ErrInvalidCredentials)
	}

	now := gutils.Clock.GetUTCNow()
	if err := s.dao.TouchLastLogin(ctx, admin.ID, now); err != nil {
		// login still succeeds; the timestamp is informational
		s.logger.Error("touch last login", zap.Error(err), zap.String("email", email))
	}
	admin.LastLogin = &now

	s.logger.Info("admin logged in", zap.String("email", email))
	return admin, nil
}

// AdminByID loads an admin document; used by the auth gate to re-check
// IsActive on every protected request so deactivation revokes live
// sessions.
func (s *CMS) AdminByID(ctx context.Context, hexID string) (*model.Admin, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, errors.Wrapf(err, "parse admin id %q", hexID)
	}

	admin, err := s.dao.GetAdminByID(ctx, id)
	if err != nil {
		if mongo.NotFound(err) {
			return nil, errors.WithStack(model.ErrNotFound)
		}

		return nil, errors.Wrap(err, "load admin")
	}

	return admin, nil
}

// BootstrapAdmin creates the first admin account when none exists.
// The password comes from configuration; when unset a random one is
// generated and written to the server log only, never to a response.
func (s *CMS) BootstrapAdmin(ctx context.Context,
	email, name, password string) (*model.Admin, error) {
	n, err := s.dao.CountAdmins(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "count admins")
	}
	if n > 0 {
		return nil, validationErrorf("admin account already initialized")
	}

	email, err = sanitizeEmail(email)
	if err != nil {
		return nil, err
	}
	name, err = requireText(name, maxTextFieldLength, "name")
	if err != nil {
		return nil, err
	}

	generated := false
	if password == "" {
		password = uuid.NewString()
		generated = true
	}
	if len(password) < minPasswordLength {
		return nil, validationErrorf("password must be at least %d characters", minPasswordLength)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash bootstrap password")
	}

	admin := model.NewAdmin()
	admin.Email = email
	admin.Name = name
	admin.Password = string(hashed)
	admin.Role = model.AdminRoleSuperAdmin

	if _, err := s.dao.GetAdminsCol().InsertOne(ctx, admin); err != nil {
		return nil, errors.Wrapf(err, "insert bootstrap admin %q", email)
	}

	if generated {
		s.logger.Info("created bootstrap admin with generated password",
			zap.String("email", email),
			zap.String("password", password))
	} else {
		s.logger.Info("created bootstrap admin", zap.String("email", email))
	}

	return admin, nil
}

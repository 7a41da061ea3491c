package model

import (
	"time"

	gutils "github.com/Laisky/go-utils/v6"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminRole admin role
type AdminRole string

const (
	// AdminRoleAdmin regular admin
	AdminRoleAdmin AdminRole = "admin"
	// AdminRoleSuperAdmin super admin
	AdminRoleSuperAdmin AdminRole = "super_admin"
)

// Admin is a panel operator account.
type Admin struct {
	// ID unique identifier for the admin
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	// CreatedAt time when the admin was created
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	// Email login account, unique, stored lowercase
	Email string `bson:"email" json:"email"`
	// Password bcrypt hash
	Password string `bson:"password" json:"-"`
	// Name display name
	Name string `bson:"name" json:"name"`
	// Role admin role
	Role AdminRole `bson:"role" json:"role"`
	// IsActive deactivated admins cannot log in
	IsActive bool `bson:"is_active" json:"is_active"`
	// LastLogin last successful login, nil before the first one
	LastLogin *time.Time `bson:"last_login,omitempty" json:"last_login,omitempty"`
}

// GetID get id
func (a *Admin) GetID() string {
	return a.ID.Hex()
}

// NewAdmin creates an admin with defaults applied.
func NewAdmin() *Admin {
	return &Admin{
		ID:        primitive.NewObjectID(),
		CreatedAt: gutils.Clock.GetUTCNow(),
		Role:      AdminRoleAdmin,
		IsActive:  true,
	}
}

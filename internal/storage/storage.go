package storage

import (
	"context"
	"errors"

	"github.com/weiminglau/family-tree-be/internal/models"
)

// ErrNotFound indicates a record does not exist or is not visible to the caller.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// UserStore captures the persistence operations the auth handlers need.
type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (int64, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// MemberStore captures ownership-scoped persistence of family members.
// Every read, update, and delete filters by both record id and owner id.
type MemberStore interface {
	CreateMember(ctx context.Context, member models.FamilyMember) (models.FamilyMember, error)
	ListMembers(ctx context.Context, ownerID int64) ([]models.FamilyMember, error)
	GetMember(ctx context.Context, ownerID, memberID int64) (models.FamilyMember, error)
	UpdateMember(ctx context.Context, ownerID, memberID int64, patch models.MemberPatch) (models.FamilyMember, error)
	DeleteMember(ctx context.Context, ownerID, memberID int64) error
}

// Store combines the persistence surfaces backed by a single database.
type Store interface {
	UserStore
	MemberStore
}

package handlers_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/weiminglau/family-tree-be/internal/models"
	"github.com/weiminglau/family-tree-be/internal/storage"
)

// fakeStore is an in-memory storage.Store mirroring the Postgres store's
// semantics: unique username/email, ownership-scoped member access, and
// clear-to-null partial updates.
type fakeStore struct {
	mu           sync.Mutex
	users        map[int64]models.User
	members      map[int64]models.FamilyMember
	nextUserID   int64
	nextMemberID int64
}

var _ storage.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   map[int64]models.User{},
		members: map[int64]models.FamilyMember{},
	}
}

func (f *fakeStore) CreateUser(_ context.Context, user models.User) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return 0, storage.ErrAlreadyExists
		}
	}
	f.nextUserID++
	user.ID = f.nextUserID
	f.users[user.ID] = user
	return user.ID, nil
}

func (f *fakeStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (f *fakeStore) CreateMember(_ context.Context, member models.FamilyMember) (models.FamilyMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextMemberID++
	member.ID = f.nextMemberID
	f.members[member.ID] = member
	return member, nil
}

func (f *fakeStore) ListMembers(_ context.Context, ownerID int64) ([]models.FamilyMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	members := []models.FamilyMember{}
	for _, member := range f.members {
		if member.UserID == ownerID {
			members = append(members, member)
		}
	}
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members, nil
}

func (f *fakeStore) GetMember(_ context.Context, ownerID, memberID int64) (models.FamilyMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	member, ok := f.members[memberID]
	if !ok || member.UserID != ownerID {
		return models.FamilyMember{}, storage.ErrNotFound
	}
	return member, nil
}

func (f *fakeStore) UpdateMember(_ context.Context, ownerID, memberID int64, patch models.MemberPatch) (models.FamilyMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	member, ok := f.members[memberID]
	if !ok || member.UserID != ownerID {
		return models.FamilyMember{}, storage.ErrNotFound
	}
	if patch.Name != nil {
		member.Name = *patch.Name
	}
	if patch.DateOfBirth != nil {
		if patch.DateOfBirth.IsZero() {
			member.DateOfBirth = nil
		} else {
			date := *patch.DateOfBirth
			member.DateOfBirth = &date
		}
	}
	if patch.Gender != nil {
		member.Gender = clearable(*patch.Gender)
	}
	if patch.PhotoURL != nil {
		member.PhotoURL = clearable(*patch.PhotoURL)
	}
	if patch.Bio != nil {
		member.Bio = clearable(*patch.Bio)
	}
	f.members[memberID] = member
	return member, nil
}

func (f *fakeStore) DeleteMember(_ context.Context, ownerID, memberID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	member, ok := f.members[memberID]
	if !ok || member.UserID != ownerID {
		return storage.ErrNotFound
	}
	delete(f.members, memberID)
	return nil
}

func clearable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

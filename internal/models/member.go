package models

import "time"

// FamilyMember is a record owned by exactly one user. Optional fields are
// pointers so that a missing value serializes as JSON null, mirroring the
// nullable columns in storage.
type FamilyMember struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	DateOfBirth *Date     `json:"date_of_birth"`
	Gender      *string   `json:"gender"`
	PhotoURL    *string   `json:"photo_url"`
	Bio         *string   `json:"bio"`
	CreatedAt   time.Time `json:"created_at"`
}

// MemberPatch carries a partial update. A nil pointer means the field was
// omitted and must be left untouched; a non-nil pointer to an empty value
// clears the column to null (name excepted, it may never be blank).
type MemberPatch struct {
	Name        *string
	DateOfBirth *Date
	Gender      *string
	PhotoURL    *string
	Bio         *string
}

// Empty reports whether the patch carries no fields at all.
func (p MemberPatch) Empty() bool {
	return p.Name == nil && p.DateOfBirth == nil && p.Gender == nil &&
		p.PhotoURL == nil && p.Bio == nil
}

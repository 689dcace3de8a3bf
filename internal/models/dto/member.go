package dto

import "github.com/weiminglau/family-tree-be/internal/models"

// CreateMemberRequest is the JSON body for POST /api/members. Optional
// fields left empty are stored as null.
type CreateMemberRequest struct {
	Name        string `json:"name"`
	DateOfBirth string `json:"date_of_birth"`
	Gender      string `json:"gender"`
	PhotoURL    string `json:"photo_url"`
	Bio         string `json:"bio"`
}

// UpdateMemberRequest is the JSON body for PUT /api/members/{id}. Each
// pointer distinguishes "omitted" (nil, leave unchanged) from "provided"
// (non-nil); a provided empty value clears the optional column to null.
type UpdateMemberRequest struct {
	Name        *string `json:"name"`
	DateOfBirth *string `json:"date_of_birth"`
	Gender      *string `json:"gender"`
	PhotoURL    *string `json:"photo_url"`
	Bio         *string `json:"bio"`
}

// Empty reports whether no updatable field was provided at all.
func (r UpdateMemberRequest) Empty() bool {
	return r.Name == nil && r.DateOfBirth == nil && r.Gender == nil &&
		r.PhotoURL == nil && r.Bio == nil
}

// MemberResponse wraps a single member with a human-readable message.
type MemberResponse struct {
	Message string              `json:"message"`
	Member  models.FamilyMember `json:"member"`
}

// MessageResponse is a bare confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

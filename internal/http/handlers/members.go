package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/weiminglau/family-tree-be/internal/auth"
	"github.com/weiminglau/family-tree-be/internal/http/respond"
	"github.com/weiminglau/family-tree-be/internal/models"
	"github.com/weiminglau/family-tree-be/internal/models/dto"
	"github.com/weiminglau/family-tree-be/internal/storage"
)

const memberNotFoundMsg = "Family member not found or not authorized."

// MemberHandler owns the ownership-scoped family-member CRUD endpoints.
type MemberHandler struct {
	store  storage.MemberStore
	logger *logrus.Logger
}

// NewMemberHandler constructs the handler.
func NewMemberHandler(store storage.MemberStore, logger *logrus.Logger) *MemberHandler {
	return &MemberHandler{store: store, logger: logger}
}

// Routes attaches the member endpoints to a router group. The group is
// expected to sit behind the auth middleware.
func (h *MemberHandler) Routes(r chi.Router) {
	r.Post("/", h.handleCreate)
	r.Get("/", h.handleList)
	r.Get("/{id}", h.handleGet)
	r.Put("/{id}", h.handleUpdate)
	r.Delete("/{id}", h.handleDelete)
}

// ownerID pulls the verified identity out of the request context. The auth
// middleware guarantees it on these routes; the check stays as a fallback.
func (h *MemberHandler) ownerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "User not authenticated.")
		return 0, false
	}
	return claims.UserID, true
}

func memberID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil && id > 0
}

func (h *MemberHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	var req dto.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload.")
		return
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		respond.Error(w, http.StatusBadRequest, "Name is a required field.")
		return
	}

	member := models.FamilyMember{
		UserID:   ownerID,
		Name:     name,
		Gender:   optionalText(req.Gender),
		PhotoURL: optionalText(req.PhotoURL),
		Bio:      optionalText(req.Bio),
	}
	if dob := strings.TrimSpace(req.DateOfBirth); dob != "" {
		parsed, err := models.ParseDate(dob)
		if err != nil {
			respond.Error(w, http.StatusBadRequest, "Invalid date_of_birth, expected YYYY-MM-DD.")
			return
		}
		member.DateOfBirth = &parsed
	}

	created, err := h.store.CreateMember(r.Context(), member)
	if err != nil {
		h.logger.WithError(err).Error("create family member")
		respond.ServerError(w, "Server error while creating family member.", err)
		return
	}

	respond.JSON(w, http.StatusCreated, dto.MemberResponse{
		Message: "Family member created successfully.",
		Member:  created,
	})
}

func (h *MemberHandler) handleList(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}

	members, err := h.store.ListMembers(r.Context(), ownerID)
	if err != nil {
		h.logger.WithError(err).Error("list family members")
		respond.ServerError(w, "Server error while fetching family members.", err)
		return
	}

	respond.JSON(w, http.StatusOK, members)
}

func (h *MemberHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}
	id, ok := memberID(r)
	if !ok {
		respond.Error(w, http.StatusNotFound, memberNotFoundMsg)
		return
	}

	member, err := h.store.GetMember(r.Context(), ownerID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, memberNotFoundMsg)
			return
		}
		h.logger.WithError(err).Error("fetch family member")
		respond.ServerError(w, "Server error while fetching family member.", err)
		return
	}

	respond.JSON(w, http.StatusOK, member)
}

func (h *MemberHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}
	id, ok := memberID(r)
	if !ok {
		respond.Error(w, http.StatusNotFound, memberNotFoundMsg)
		return
	}

	var req dto.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid JSON payload.")
		return
	}
	if req.Empty() {
		respond.Error(w, http.StatusBadRequest, "No update data provided.")
		return
	}

	patch, err := buildPatch(req)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.store.UpdateMember(r.Context(), ownerID, id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, memberNotFoundMsg)
			return
		}
		h.logger.WithError(err).Error("update family member")
		respond.ServerError(w, "Server error while updating family member.", err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.MemberResponse{
		Message: "Family member updated successfully.",
		Member:  updated,
	})
}

func (h *MemberHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.ownerID(w, r)
	if !ok {
		return
	}
	id, ok := memberID(r)
	if !ok {
		respond.Error(w, http.StatusNotFound, memberNotFoundMsg)
		return
	}

	if err := h.store.DeleteMember(r.Context(), ownerID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, memberNotFoundMsg)
			return
		}
		h.logger.WithError(err).Error("delete family member")
		respond.ServerError(w, "Server error while deleting family member.", err)
		return
	}

	respond.JSON(w, http.StatusOK, dto.MessageResponse{
		Message: "Family member deleted successfully.",
	})
}

// buildPatch converts the wire-level partial update into a storage patch.
// Provided-but-empty optional values become explicit clears; name must stay
// non-empty whenever it is present.
func buildPatch(req dto.UpdateMemberRequest) (models.MemberPatch, error) {
	var patch models.MemberPatch

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return models.MemberPatch{}, errors.New("Name cannot be empty if provided for update.")
		}
		patch.Name = &name
	}
	if req.DateOfBirth != nil {
		if dob := strings.TrimSpace(*req.DateOfBirth); dob == "" {
			patch.DateOfBirth = &models.Date{}
		} else {
			parsed, err := models.ParseDate(dob)
			if err != nil {
				return models.MemberPatch{}, errors.New("Invalid date_of_birth, expected YYYY-MM-DD.")
			}
			patch.DateOfBirth = &parsed
		}
	}
	patch.Gender = req.Gender
	patch.PhotoURL = req.PhotoURL
	patch.Bio = req.Bio

	return patch, nil
}

func optionalText(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

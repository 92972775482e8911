package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alexh7799/coderr/internal/domain/model"
	"github.com/alexh7799/coderr/internal/domain/repository"
	"github.com/alexh7799/coderr/internal/server/http/dto"
)

// ProfileHandler serves user profile endpoints.
type ProfileHandler struct {
	facade ProfileFacade
}

// NewProfileHandler constructs ProfileHandler.
func NewProfileHandler(facade ProfileFacade) *ProfileHandler {
	return &ProfileHandler{facade: facade}
}

// Get handles GET /api/profile/:pk/.
func (h *ProfileHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "pk")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid profile id"})
		return
	}

	user, err := h.facade.Profile(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(*user))
}

// Update handles PATCH /api/profile/:pk/. Only the owner may patch, and
// only the whitelisted keys are accepted.
func (h *ProfileHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "pk")
	if !ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid profile id"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := bindPatch(c, &req,
		"first_name", "last_name", "email", "location", "tel", "description", "working_hours", "file",
	); err != nil {
		writeError(c, err)
		return
	}

	user, err := h.facade.UpdateProfile(c.Request.Context(), CurrentUserID(c), id, repository.ProfilePatch{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Location:     req.Location,
		Tel:          req.Tel,
		Description:  req.Description,
		WorkingHours: req.WorkingHours,
		File:         req.File,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProfileResponse(*user))
}

// ListBusiness handles GET /api/profiles/business/.
func (h *ProfileHandler) ListBusiness(c *gin.Context) {
	h.list(c, model.RoleBusiness)
}

// ListCustomer handles GET /api/profiles/customer/.
func (h *ProfileHandler) ListCustomer(c *gin.Context) {
	h.list(c, model.RoleCustomer)
}

func (h *ProfileHandler) list(c *gin.Context, role model.Role) {
	users, err := h.facade.Profiles(c.Request.Context(), role)
	if err != nil {
		writeError(c, err)
		return
	}
	response := make([]dto.ProfileResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toProfileResponse(u))
	}
	c.JSON(http.StatusOK, response)
}

func toProfileResponse(user model.User) dto.ProfileResponse {
	return dto.ProfileResponse{
		User:         user.ID,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		File:         user.File,
		Location:     user.Location,
		Tel:          user.Tel,
		Description:  user.Description,
		WorkingHours: user.WorkingHours,
		Type:         string(user.Role),
		Email:        user.Email,
		CreatedAt:    user.CreatedAt,
	}
}

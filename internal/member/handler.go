package member

import (
	"net/http"
	"strconv"

	"membertrack/internal/api"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// @Summary      List members
// @Description  Returns all members ordered by name, with last due date and payment count
// @Tags         members
// @Produce      json
// @Success      200 {array} member.MemberWithStats
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	ctx := c.Request.Context()
	members, err := h.service.GetMembers(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch members"})
		return
	}

	c.JSON(http.StatusOK, members)
}

// @Summary      Add a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        request body member.CreateMemberRequest true "Member payload"
// @Success      201 {object} member.Member
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/members [post]
func (h *Handler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	created, err := h.service.AddMember(ctx, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create member"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary      Update a member
// @Description  Overwrites all mutable fields of the member
// @Tags         members
// @Accept       json
// @Produce      json
// @Param        memberID path int true "Member ID"
// @Param        request body member.UpdateMemberRequest true "Member payload"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/members/{memberID} [put]
func (h *Handler) UpdateMember(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid member ID"})
		return
	}

	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	if err := h.service.UpdateMember(ctx, id, req); err != nil {
		switch err {
		case ErrMemberNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to update member"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Member updated"})
}

// @Summary      Delete a member
// @Description  Deletes the member and all of its payments
// @Tags         members
// @Produce      json
// @Param        memberID path int true "Member ID"
// @Success      200 {object} api.MessageResponse
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/members/{memberID} [delete]
func (h *Handler) DeleteMember(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("memberID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid member ID"})
		return
	}

	ctx := c.Request.Context()
	if err := h.service.DeleteMember(ctx, id); err != nil {
		switch err {
		case ErrMemberNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to delete member"})
		}
		return
	}

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Member deleted"})
}

package payment

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

// @Summary      List payments
// @Description  All payments ordered by payment date descending, or one member's payments when member_id is given
// @Tags         payments
// @Produce      json
// @Param        member_id query int false "Member ID"
// @Success      200 {array} payment.PaymentWithMember
// @Failure      400 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	var memberID *int
	if raw := c.Query("member_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid member ID"})
			return
		}
		memberID = &id
	}

	ctx := c.Request.Context()
	payments, err := h.service.GetPayments(ctx, memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, payments)
}

// @Summary      Record a payment
// @Description  Payment date defaults to now, next due date to one year after the payment date
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body payment.RecordPaymentRequest true "Payment payload"
// @Success      201 {object} payment.Payment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Failure      500 {object} api.ErrorResponse
// @Router       /api/payments [post]
func (h *Handler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	ctx := c.Request.Context()
	created, err := h.service.RecordPayment(ctx, req)
	if err != nil {
		switch err {
		case ErrMemberNotFound:
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Member not found"})
		case ErrInvalidDate:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Dates must be RFC3339 timestamps"})
		default:
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to record payment"})
		}
		return
	}

	c.JSON(http.StatusCreated, created)
}

package admin

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dentora-store/internal/http/response"
	"github.com/dentora-store/internal/models"
	"github.com/dentora-store/internal/repository"
	"github.com/dentora-store/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentStatusRequest carries one payment transition.
type PaymentStatusRequest struct {
	PaymentStatus string        `json:"payment_status" binding:"required"`
	PartialAmount *models.Money `json:"partial_amount"`
}

// OrderStatusRequest carries one fulfillment transition.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminListOrders lists orders for the back office.
func (h *Handler) AdminListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	createdFrom, err := parseTimeNullable(strings.TrimSpace(c.Query("created_from")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	createdTo, err := parseTimeNullable(strings.TrimSpace(c.Query("created_to")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	orders, total, err := h.OrderService.ListAdmin(repository.OrderListFilter{
		Page:          page,
		PageSize:      pageSize,
		UserID:        strings.TrimSpace(c.Query("user_id")),
		Status:        strings.TrimSpace(c.Query("status")),
		PaymentStatus: strings.TrimSpace(c.Query("payment_status")),
		OrderNo:       strings.TrimSpace(c.Query("order_no")),
		CreatedFrom:   createdFrom,
		CreatedTo:     createdTo,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	totalPage := int64(0)
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	response.SuccessWithPage(c, gin.H{"orders": orders}, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// AdminGetOrder fetches one order with its lines and payment ledger.
func (h *Handler) AdminGetOrder(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetAdmin(id)
	if err != nil {
		respondWithMappedError(c, err, paymentTransitionErrorRules, response.CodeInternal, "error.order_fetch_failed")
		return
	}
	response.Success(c, gin.H{"order": order})
}

// AdminSetPaymentStatus applies one payment transition. A partial
// transition carries the increment to record; pending and refunded
// also cancel the order.
func (h *Handler) AdminSetPaymentStatus(c *gin.Context) {
	actor, ok := adminActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req PaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.PaymentService.SetPaymentStatus(actor, service.SetPaymentStatusInput{
		OrderID:       id,
		Status:        req.PaymentStatus,
		PartialAmount: req.PartialAmount,
	})
	if err != nil {
		respondPaymentTransitionError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// AdminSetOrderStatus applies one fulfillment transition.
func (h *Handler) AdminSetOrderStatus(c *gin.Context) {
	actor, ok := adminActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.FulfillmentService.SetStatus(actor, id, req.Status)
	if err != nil {
		respondStatusTransitionError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(id), true
}

func parseTimeNullable(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("unrecognized time %q", raw)
}

package public

import (
	"strconv"
	"time"

	handlershared "github.com/dentora-store/internal/http/handlers/shared"
	"github.com/dentora-store/internal/http/response"
	"github.com/dentora-store/internal/repository"
	"github.com/dentora-store/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest carries the order metadata collected at checkout.
type CheckoutRequest struct {
	PreferredDeliveryDate string `json:"preferred_delivery_date"`
	Notes                 string `json:"notes"`
}

// Checkout turns the session cart into an order.
func (h *Handler) Checkout(c *gin.Context) {
	subject, ok := getSubject(c)
	if !ok {
		return
	}
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	var deliveryDate *time.Time
	if req.PreferredDeliveryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.PreferredDeliveryDate)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		deliveryDate = &parsed
	}

	order, err := h.OrderService.Checkout(c.Request.Context(), service.CheckoutInput{
		SessionID:             sessionID,
		UserID:                subject,
		PreferredDeliveryDate: deliveryDate,
		Notes:                 req.Notes,
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// ListMyOrders lists the authenticated customer's orders.
func (h *Handler) ListMyOrders(c *gin.Context) {
	subject, ok := getSubject(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)

	orders, total, err := h.OrderService.ListByUser(repository.OrderListFilter{
		Page:          page,
		PageSize:      pageSize,
		UserID:        subject,
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		OrderNo:       c.Query("order_no"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	response.SuccessWithPage(c, gin.H{"orders": orders}, buildPagination(page, pageSize, total))
}

// GetMyOrder fetches one of the customer's own orders.
func (h *Handler) GetMyOrder(c *gin.Context) {
	subject, ok := getSubject(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetForUser(id, subject)
	if err != nil {
		respondOrderQueryError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// GetMyOrderByOrderNo fetches one of the customer's own orders by its
// order number.
func (h *Handler) GetMyOrderByOrderNo(c *gin.Context) {
	subject, ok := getSubject(c)
	if !ok {
		return
	}
	orderNo := c.Param("order_no")
	order, err := h.OrderService.GetByOrderNoForUser(orderNo, subject)
	if err != nil {
		respondOrderQueryError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

// CancelMyOrder cancels the customer's own pending or confirmed order.
func (h *Handler) CancelMyOrder(c *gin.Context) {
	subject, ok := getSubject(c)
	if !ok {
		return
	}
	role, ok := handlershared.GetRole(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	order, err := h.FulfillmentService.CancelOwn(service.Actor{Subject: subject, Role: role}, id)
	if err != nil {
		respondOrderCancelError(c, err)
		return
	}
	response.Success(c, gin.H{"order": order})
}

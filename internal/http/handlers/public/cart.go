package public

import (
	"github.com/dentora-store/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CartAddRequest adds one product or bundle line.
type CartAddRequest struct {
	ProductID uint `json:"product_id"`
	BundleID  uint `json:"bundle_id"`
}

// CartQuantityRequest sets a line's absolute quantity.
type CartQuantityRequest struct {
	ProductID uint `json:"product_id"`
	BundleID  uint `json:"bundle_id"`
	Quantity  int  `json:"quantity"`
}

// GetCart returns the session cart with derived totals.
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	cart, err := h.CartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cart": cart})
}

// AddCartItem adds a product or bundle line, bumping its quantity by
// one when it is already in the cart.
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	var req CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if (req.ProductID == 0) == (req.BundleID == 0) {
		respondError(c, response.CodeBadRequest, "error.cart_line_invalid", nil)
		return
	}

	userID := optionalSubject(c)
	var err error
	var cart interface{}
	if req.ProductID != 0 {
		cart, err = h.CartService.AddProduct(c.Request.Context(), sessionID, userID, req.ProductID)
	} else {
		cart, err = h.CartService.AddBundle(c.Request.Context(), sessionID, userID, req.BundleID)
	}
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cart": cart})
}

// UpdateCartItem sets a line's quantity; zero or less removes the line.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if (req.ProductID == 0) == (req.BundleID == 0) {
		respondError(c, response.CodeBadRequest, "error.cart_line_invalid", nil)
		return
	}

	userID := optionalSubject(c)
	var err error
	var cart interface{}
	if req.ProductID != 0 {
		cart, err = h.CartService.UpdateProductQuantity(c.Request.Context(), sessionID, userID, req.ProductID, req.Quantity)
	} else {
		cart, err = h.CartService.UpdateBundleQuantity(c.Request.Context(), sessionID, userID, req.BundleID, req.Quantity)
	}
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cart": cart})
}

// RemoveCartItem drops one line from the cart.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	var req CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if (req.ProductID == 0) == (req.BundleID == 0) {
		respondError(c, response.CodeBadRequest, "error.cart_line_invalid", nil)
		return
	}

	userID := optionalSubject(c)
	var err error
	var cart interface{}
	if req.ProductID != 0 {
		cart, err = h.CartService.RemoveProduct(c.Request.Context(), sessionID, userID, req.ProductID)
	} else {
		cart, err = h.CartService.RemoveBundle(c.Request.Context(), sessionID, userID, req.BundleID)
	}
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cart": cart})
}

// ClearCart empties the session cart.
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, ok := cartSessionID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(c.Request.Context(), sessionID, optionalSubject(c)); err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}

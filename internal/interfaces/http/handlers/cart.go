// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/FedericoLuna01/wallbit-challenge/internal/domain/cart"
	"github.com/FedericoLuna01/wallbit-challenge/internal/domain/discount"
	"github.com/FedericoLuna01/wallbit-challenge/internal/pkg/currency"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	service   *cart.Service
	formatter *currency.Formatter
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *cart.Service, formatter *currency.Formatter) *CartHandler {
	return &CartHandler{
		service:   service,
		formatter: formatter,
	}
}

// AddToCartRequest represents the add to cart payload
type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required,min=1"`
	Quantity  int `json:"quantity" binding:"required"`
}

// UpdateQuantityRequest represents the update quantity payload
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// ApplyDiscountRequest represents the apply discount payload
type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

// TotalsResponse decorates the derived totals with display strings in the
// configured locale.
type TotalsResponse struct {
	cart.Totals
	SubtotalDisplay string `json:"subtotal_display"`
	TotalDisplay    string `json:"total_display"`
	DiscountDisplay string `json:"discount_display,omitempty"`
}

// CartResponse represents the cart snapshot returned by every endpoint
type CartResponse struct {
	Items     []cart.LineItem    `json:"items"`
	StartedAt *time.Time         `json:"started_at,omitempty"`
	Discount  *discount.Discount `json:"discount,omitempty"`
	Totals    TotalsResponse     `json:"totals"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	view := h.service.View()

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    h.toResponse(view),
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	view, err := h.service.Add(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product added to cart",
		"data":    h.toResponse(view),
	})
}

// UpdateItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil || productID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	view, err := h.service.UpdateQuantity(c.Request.Context(), productID, req.Quantity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated",
		"data":    h.toResponse(view),
	})
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil || productID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID",
		})
		return
	}

	view, err := h.service.Remove(c.Request.Context(), productID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product removed from cart",
		"data":    h.toResponse(view),
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	view, err := h.service.Clear(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"data":    h.toResponse(view),
	})
}

// ApplyDiscount handles POST /cart/discount
func (h *CartHandler) ApplyDiscount(c *gin.Context) {
	var req ApplyDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	view, err := h.service.ApplyDiscount(req.Code)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Discount of %g%% applied", view.Discount.Percentage),
		"data":    h.toResponse(view),
	})
}

// RemoveDiscount handles DELETE /cart/discount
func (h *CartHandler) RemoveDiscount(c *gin.Context) {
	view, err := h.service.RemoveDiscount()
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Discount removed",
		"data":    h.toResponse(view),
	})
}

func (h *CartHandler) toResponse(view *cart.View) CartResponse {
	totals := TotalsResponse{
		Totals:          view.Totals,
		SubtotalDisplay: h.formatter.Format(view.Totals.Subtotal),
		TotalDisplay:    h.formatter.Format(view.Totals.Total),
	}
	if view.Discount != nil {
		totals.DiscountDisplay = h.formatter.Format(view.Totals.Discount)
	}

	return CartResponse{
		Items:     view.Items,
		StartedAt: view.StartedAt,
		Discount:  view.Discount,
		Totals:    totals,
	}
}

// respondError maps domain errors to HTTP statuses and user-facing messages.
func (h *CartHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, cart.ErrAlreadyInCart):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Product already in cart, change the quantity from the cart instead",
		})
	case errors.Is(err, cart.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Product not found",
		})
	case errors.Is(err, cart.ErrQuantityTooLarge):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fmt.Sprintf("Maximum quantity per product is %d", cart.MaxQuantity-1),
		})
	case errors.Is(err, cart.ErrQuantityTooSmall):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Quantity must be at least 1",
		})
	case errors.Is(err, discount.ErrInvalidCode):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid discount code",
			"field": "code",
		})
	case errors.Is(err, cart.ErrNoActiveDiscount):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No discount is currently applied",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart",
		})
	}
}

package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"storefront-service/internal/domain"
	"storefront-service/internal/infra"
	"storefront-service/internal/services"
)

type Handler struct {
	store   *services.StoreService
	insight infra.InsightClientInterface
}

func NewHandler(store *services.StoreService, insight infra.InsightClientInterface) *Handler {
	return &Handler{store: store, insight: insight}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/categories", h.ListCategories)
	r.GET("/products", h.ListProducts)
	r.POST("/products", h.CreateProduct)
	r.GET("/products/:id", h.GetProduct)
	r.GET("/products/:id/insight", h.GetProductInsight)

	r.GET("/cart", h.GetCart)
	r.POST("/cart/items", h.AddToCart)
	r.PUT("/cart/items/:productId", h.UpdateQuantity)
	r.DELETE("/cart/items/:productId", h.RemoveFromCart)
	r.DELETE("/cart", h.ClearCart)

	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	r.GET("/auth/me", h.CurrentUser)

	r.GET("/orders", h.ListOrders)
	r.POST("/orders/checkout", h.Checkout)
	r.PUT("/orders/:id/status", h.UpdateOrderStatus)
	r.POST("/orders/:id/feedback", h.AddOrderFeedback)

	r.GET("/admin/stats", h.Stats)
}

// ListCategories returns the filter values the shop UI offers, "All" first.
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Categories)
}

func (h *Handler) ListProducts(c *gin.Context) {
	category := c.Query("category")
	sortBy := c.Query("sort")
	c.JSON(http.StatusOK, h.store.Products(category, sortBy))
}

func (h *Handler) GetProduct(c *gin.Context) {
	p, ok := h.store.ProductByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := domain.Product{
		ID:          domain.NewProductID(time.Now()),
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Rating:      req.Rating,
		Stock:       req.Stock,
		History:     req.History,
	}
	h.store.AddProduct(c.Request.Context(), product)
	c.JSON(http.StatusCreated, product)
}

func (h *Handler) GetProductInsight(c *gin.Context) {
	p, ok := h.store.ProductByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	insight := h.insight.GetCulturalInsight(c.Request.Context(), p.Name, p.History)
	c.JSON(http.StatusOK, InsightResponse{Insight: insight})
}

func (h *Handler) GetCart(c *gin.Context) {
	items := h.store.Cart()
	if items == nil {
		items = []domain.CartItem{}
	}
	c.JSON(http.StatusOK, CartResponse{
		Items:     items,
		Total:     h.store.CartTotal(),
		ItemCount: h.store.CartItemCount(),
	})
}

func (h *Handler) AddToCart(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.AddToCart(c.Request.Context(), req.ProductID); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.UpdateQuantity(c.Request.Context(), c.Param("productId"), req.Quantity)
	c.Status(http.StatusNoContent)
}

func (h *Handler) RemoveFromCart(c *gin.Context) {
	h.store.RemoveFromCart(c.Request.Context(), c.Param("productId"))
	c.Status(http.StatusNoContent)
}

func (h *Handler) ClearCart(c *gin.Context) {
	h.store.ClearCart(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := h.store.Login(c.Request.Context(), req.Email, req.Role)
	c.JSON(http.StatusOK, user)
}

func (h *Handler) Logout(c *gin.Context) {
	h.store.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

func (h *Handler) CurrentUser(c *gin.Context) {
	user := h.store.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Checkout snapshots the cart into a new pending order. The order is formed
// here, at the caller boundary: the store takes it as given.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := h.store.Cart()
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	userID := domain.GuestUserID
	if u := h.store.CurrentUser(); u != nil {
		userID = u.ID
	}

	now := time.Now()
	order := domain.Order{
		ID:            domain.NewOrderID(now),
		UserID:        userID,
		Items:         items,
		Total:         h.store.CartTotal(),
		Status:        domain.StatusPending,
		Date:          domain.OrderDate(now),
		PaymentMethod: req.PaymentMethod,
		CustomerName:  req.FirstName + " " + req.LastName,
	}
	h.store.PlaceOrder(c.Request.Context(), order)

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *Handler) ListOrders(c *gin.Context) {
	if userID := c.Query("userId"); userID != "" {
		c.JSON(http.StatusOK, toOrderResponses(h.store.OrdersForUser(userID)))
		return
	}
	c.JSON(http.StatusOK, toOrderResponses(h.store.Orders()))
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.store.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status)
	c.Status(http.StatusNoContent)
}

func (h *Handler) AddOrderFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback := domain.Feedback{
		Rating:  req.Rating,
		Comment: req.Comment,
		Date:    domain.OrderDate(time.Now()),
	}
	h.store.AddOrderFeedback(c.Request.Context(), c.Param("id"), feedback)
	c.Status(http.StatusNoContent)
}

func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsResponse{
		Revenue:      h.store.Revenue(),
		OrderCount:   len(h.store.Orders()),
		ProductCount: len(h.store.Products("", "")),
	})
}

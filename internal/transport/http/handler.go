package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mealio/takeout/internal/domain"
	"github.com/mealio/takeout/internal/ports"
	"github.com/mealio/takeout/pkg/httpx"
)

// Handler — HTTP-обработчики поверх прикладных сервисов (тонкий слой:
// парсинг запроса, маппинг ошибок, сериализация ответа).
type Handler struct {
	catalog ports.CatalogService
	shop    ports.ShopService
	log     ports.Logger
	timeout time.Duration
}

// NewHandler — конструктор. timeout > 0 ограничивает время обработки запроса.
func NewHandler(catalog ports.CatalogService, shop ports.ShopService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{catalog: catalog, shop: shop, log: log, timeout: timeout}
}

// dishRequest — тело создания/обновления блюда.
type dishRequest struct {
	ID          int64           `json:"id"`
	CategoryID  int64           `json:"category_id" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Price       float64         `json:"price" binding:"required,gt=0"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Status      int             `json:"status"`
	Flavors     []flavorRequest `json:"flavors"`
}

type flavorRequest struct {
	Name   string   `json:"name" binding:"required"`
	Values []string `json:"values"`
}

func (r *dishRequest) toDomain() (*domain.Dish, []domain.DishFlavor) {
	dish := &domain.Dish{
		ID:          r.ID,
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Price:       r.Price,
		Image:       r.Image,
		Description: r.Description,
		Status:      r.Status,
	}
	flavors := make([]domain.DishFlavor, 0, len(r.Flavors))
	for _, f := range r.Flavors {
		flavors = append(flavors, domain.DishFlavor{Name: f.Name, Values: f.Values})
	}
	return dish, flavors
}

// reqCtx — контекст запроса с таймаутом обработчика (0 = без таймаута).
func (h *Handler) reqCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

func (h *Handler) listDishesByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Query("category_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category_id"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	list, err := h.catalog.DishesByCategory(ctx, categoryID)
	if err != nil {
		h.log.Errorf(ctx, "DishesByCategory failed category=%d err=%v", categoryID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getDishByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	dish, err := h.catalog.DishByID(ctx, id)
	if err != nil {
		h.log.Errorf(ctx, "DishByID failed id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if dish == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
		return
	}
	c.JSON(http.StatusOK, dish)
}

func (h *Handler) createDish(c *gin.Context) {
	var req dishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	dish, flavors := req.toDomain()
	if err := h.catalog.Create(ctx, httpx.ActorID(c), dish, flavors); err != nil {
		h.log.Errorf(ctx, "Create dish failed name=%q err=%v", req.Name, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": dish.ID})
}

func (h *Handler) updateDish(c *gin.Context) {
	var req dishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	dish, flavors := req.toDomain()
	if err := h.catalog.Update(ctx, httpx.ActorID(c), dish, flavors); err != nil {
		h.log.Errorf(ctx, "Update dish failed id=%d err=%v", req.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) deleteDishes(c *gin.Context) {
	ids, err := httpx.ParseIDList(c.Query("ids"))
	if err != nil || len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid ids"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.catalog.Delete(ctx, ids); err != nil {
		// Бизнес-отказ: блюдо в продаже либо входит в комбо.
		if errors.Is(err, domain.ErrDishOnSale) || errors.Is(err, domain.ErrDishInCombo) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.log.Errorf(ctx, "Delete dishes failed ids=%v err=%v", ids, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) setDishStatus(c *gin.Context) {
	status, err := strconv.Atoi(c.Param("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.catalog.SetStatus(ctx, httpx.ActorID(c), id, status); err != nil {
		h.log.Errorf(ctx, "SetStatus failed id=%d status=%d err=%v", id, status, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) setShopStatus(c *gin.Context) {
	status, err := strconv.Atoi(c.Param("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.shop.SetStatus(ctx, status); err != nil {
		h.log.Errorf(ctx, "shop SetStatus failed status=%d err=%v", status, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getShopStatus(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	status, err := h.shop.Status(ctx)
	if err != nil {
		h.log.Errorf(ctx, "shop Status failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

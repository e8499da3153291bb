package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/mealio/takeout/pkg/httpx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// NewRouter — маршруты сервиса. otelServiceName != "" включает otelgin.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(200, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// Пользовательская часть: чтение каталога и статус заведения.
	api.GET("/dish/list", h.listDishesByCategory)
	api.GET("/shop/status", h.getShopStatus)

	// Административная часть: мутации каталога и статус заведения.
	admin := api.Group("/admin")
	admin.POST("/dish", h.createDish)
	admin.PUT("/dish", h.updateDish)
	admin.DELETE("/dish", h.deleteDishes)
	admin.GET("/dish/:id", h.getDishByID)
	admin.POST("/dish/status/:status", h.setDishStatus)
	admin.PUT("/shop/:status", h.setShopStatus)
	admin.GET("/shop/status", h.getShopStatus)

	return r
}

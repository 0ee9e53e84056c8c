package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/EvangelicalThreads/evangelical-threads/internal/cart"
	"github.com/EvangelicalThreads/evangelical-threads/internal/validation"
)

// registerCartRoutes exposes the cart store over HTTP, one DynamoDB-backed
// cart per cart id. Every request hydrates a fresh store from the carts
// table, applies its mutation and returns the resulting list and total.
func registerCartRoutes(r *gin.Engine, cfg HandlerConfig, v *validatorv10.Validate) {
	persister := cart.NewDynamoPersister(cfg.DynamoDBClient, cfg.CartsTable)

	load := func(c *gin.Context) *cart.Store {
		return cart.NewStore(c.Request.Context(), c.Param("cartID"), persister)
	}
	view := func(s *cart.Store) gin.H {
		return gin.H{"items": s.Items(), "total": s.Total()}
	}

	r.GET("/cart/:cartID", func(c *gin.Context) {
		c.JSON(http.StatusOK, view(load(c)))
	})

	r.POST("/cart/:cartID/items", func(c *gin.Context) {
		var req validation.AddCartItemRequest
		if err := validation.BindAndValidate(c, &req, v, "invalid cart item"); err != nil {
			return
		}
		s := load(c)
		s.Add(c.Request.Context(), cart.Item{
			ProductID: req.ID,
			Size:      req.Size,
			Name:      req.Name,
			UnitPrice: req.Price,
			Quantity:  req.Quantity,
			Image:     req.Image,
		})
		c.JSON(http.StatusOK, view(s))
	})

	r.POST("/cart/:cartID/items/increase", adjustCartLine(load, view, v, (*cart.Store).IncreaseQty))
	r.POST("/cart/:cartID/items/decrease", adjustCartLine(load, view, v, (*cart.Store).DecreaseQty))

	r.DELETE("/cart/:cartID/items", func(c *gin.Context) {
		s := load(c)
		s.Remove(c.Request.Context(), c.Query("id"), c.Query("size"))
		c.JSON(http.StatusOK, view(s))
	})

	r.DELETE("/cart/:cartID", func(c *gin.Context) {
		s := load(c)
		s.Clear(c.Request.Context())
		c.JSON(http.StatusOK, view(s))
	})
}

func adjustCartLine(load func(*gin.Context) *cart.Store, view func(*cart.Store) gin.H, v *validatorv10.Validate, adjust func(*cart.Store, context.Context, string, string)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req validation.CartLineRef
		if err := validation.BindAndValidate(c, &req, v, "invalid cart item"); err != nil {
			return
		}
		s := load(c)
		adjust(s, c.Request.Context(), req.ID, req.Size)
		c.JSON(http.StatusOK, view(s))
	}
}

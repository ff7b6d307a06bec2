package controllers

import (
	"errors"

	"github.com/dog-key/pre-order/pkg/resp"
	"github.com/dog-key/pre-order/services"
	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Svc             *services.CatalogService
	DefaultLocation string
}

func NewCatalogController(svc *services.CatalogService, defaultLocation string) *CatalogController {
	return &CatalogController{Svc: svc, DefaultLocation: defaultLocation}
}

// GET /restaurants?location=&category=
func (h *CatalogController) List(c *gin.Context) {
	location := c.DefaultQuery("location", h.DefaultLocation)
	category := c.DefaultQuery("category", "Food")

	list, err := h.Svc.Load(c.Request.Context(), location, category)
	if err != nil {
		if errors.Is(err, services.ErrBadCategory) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, list)
}

// GET /restaurants/:id — อ่านจาก cache ที่เพิ่ง fetch
func (h *CatalogController) Detail(c *gin.Context) {
	r, ok := h.Svc.Restaurant(c.Param("id"))
	if !ok {
		resp.NotFound(c, "restaurant not found")
		return
	}
	resp.OK(c, r)
}

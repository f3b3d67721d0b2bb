package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogUC domain.CatalogUsecase
}

func NewCatalogHandler(public *gin.RouterGroup, catalogUC domain.CatalogUsecase) {
	handler := &CatalogHandler{catalogUC: catalogUC}

	public.GET("/services", handler.ListServices)
	public.GET("/testimonials", handler.ListTestimonials)
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	response.Success(c, http.StatusOK, "", h.catalogUC.ListServices(c.Request.Context()))
}

func (h *CatalogHandler) ListTestimonials(c *gin.Context) {
	response.Success(c, http.StatusOK, "", h.catalogUC.ListTestimonials(c.Request.Context()))
}

package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/middleware"
	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// invalidBodyMessage is reported under the form-level key when the body is
// not a JSON object.
const invalidBodyMessage = "Request body must be a JSON object with name, email and message"

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes. limiter runs before the
// handler so throttled requests are rejected without parsing the body.
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limiter gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limiter, handler.SubmitContact)
	// Preflights are answered by the CORS middleware; this keeps the route
	// explicit when CORS is disabled.
	public.OPTIONS("/contact", handler.Preflight)
}

// SubmitContact validates the submission and notifies the site owner.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Validation(map[string][]string{
			validation.FormField: {invalidBodyMessage},
		}))
		return
	}
	req.ClientIP = middleware.ClientIdentity(c)
	req.UserAgent = c.Request.UserAgent()

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	// The acknowledgement is the success flag alone.
	c.JSON(http.StatusOK, response.Response{Success: true})
}

func (h *ContactHandler) Preflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Methods", "POST, OPTIONS")
	c.Header("Access-Control-Allow-Headers", "Content-Type")
	c.Status(http.StatusNoContent)
}

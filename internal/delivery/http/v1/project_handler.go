package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(public *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{
		projectUC: projectUC,
	}

	public.GET("/projects", handler.ListProjects)
	public.GET("/projects/:slug", handler.GetProject)
	public.GET("/tags", handler.ListTags)
}

// ListProjects returns case studies newest first. ?tag= narrows the list.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	projects, err := h.projectUC.ListProjects(c.Request.Context(), c.Query("tag"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "", projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projectUC.GetProject(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "", project)
}

func (h *ProjectHandler) ListTags(c *gin.Context) {
	tags, err := h.projectUC.ListTags(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	if tags == nil {
		tags = []string{}
	}
	response.Success(c, http.StatusOK, "", tags)
}

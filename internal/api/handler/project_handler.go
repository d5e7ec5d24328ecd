package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/projecthub/projecthub/internal/api/metrics"
	"github.com/projecthub/projecthub/internal/core/domain"
	"github.com/projecthub/projecthub/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project CRUD.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type createProjectRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type updateProjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
}

type projectResponse struct {
	Message string          `json:"message"`
	Project *domain.Project `json:"project"`
}

type projectListResponse struct {
	Message  string            `json:"message"`
	Projects []*domain.Project `json:"projects"`
}

func projectID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid project id")
	}
	return id, nil
}

// List handles GET /projects/.
//
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  projectListResponse
// @Failure      401  {object}  map[string]string
// @Router       /projects/ [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if projects == nil {
		projects = []*domain.Project{}
	}

	return c.JSON(http.StatusOK, projectListResponse{
		Message:  "Project list retrieved successfully",
		Projects: projects,
	})
}

// Get handles GET /projects/:id.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Project id"
// @Success      200  {object}  projectResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := projectID(c)
	if err != nil {
		return err
	}

	project, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, projectResponse{
		Message: "Project retrieved successfully",
		Project: project,
	})
}

// Create handles POST /projects/ (admin only).
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  projectResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /projects/ [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.ProjectOpsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, projectResponse{
		Message: "Project created successfully",
		Project: project,
	})
}

// Update handles PUT /projects/:id (admin only).
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  projectResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	id, err := projectID(c)
	if err != nil {
		return err
	}

	var req updateProjectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	project, err := h.service.Update(c.Request().Context(), id, ports.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.ProjectOpsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, projectResponse{
		Message: "Project updated successfully",
		Project: project,
	})
}

// Delete handles DELETE /projects/:id (admin only).
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Project id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	id, err := projectID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.ProjectOpsTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"kosht/internal/models/request_models"
	"kosht/internal/services"
	"kosht/pkg/utils"
)

type ProjectsController struct {
	projectService services.ProjectServiceInterface
}

func NewProjectsController(projectService services.ProjectServiceInterface) *ProjectsController {
	return &ProjectsController{projectService: projectService}
}

func (p *ProjectsController) Create(c *gin.Context) {
	var request request_models.CreateProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing or wrong project name.")
		return
	}

	projectID, err := p.projectService.Create(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"project_id": projectID}, "Project created successfully")
}

func (p *ProjectsController) Update(c *gin.Context) {
	var request request_models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing or wrong project field: "+err.Error())
		return
	}

	if err := p.projectService.Update(c.Request.Context(), request); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Project updated successfully")
}

func (p *ProjectsController) AdminList(c *gin.Context) {
	projects, err := p.projectService.AdminList(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"projects": projects}, "Fetched projects successfully")
}

func (p *ProjectsController) List(c *gin.Context) {
	projects, err := p.projectService.PublicList(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"projects": projects}, "Fetched projects successfully")
}

func (p *ProjectsController) Button(c *gin.Context) {
	projectID := c.Query("id")
	if projectID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing or wrong project ID.")
		return
	}

	button, err := p.projectService.Button(c.Request.Context(), projectID, c.Query("language"), c.Query("currency"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"button": button}, "Generated donation button successfully")
}

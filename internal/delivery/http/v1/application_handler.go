package v1

import (
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes. writes carries the
// stricter rate limit for state-changing calls.
func NewApplicationHandler(protected *gin.RouterGroup, writes gin.HandlerFunc, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := protected.Group("/applications")
	{
		applications.POST("", writes, handler.Submit)
		applications.GET("", handler.List)
		applications.GET("/mine", handler.ListMine)
		applications.GET("/:id", handler.Get)
		applications.PATCH("/:id/status", writes, handler.Transition)
		applications.DELETE("/:id", handler.Withdraw)
	}

	protected.GET("/vacancies/:id/applications", handler.ListByVacancy)
	protected.GET("/applicants", handler.ListApplicants)
}

// SubmitApplicationRequest is the request payload for applying to a vacancy
type SubmitApplicationRequest struct {
	VacancyID int64  `json:"vacancy_id" binding:"required,gt=0"`
	ResumeID  *int64 `json:"resume_id"`
}

// TransitionRequest carries the target status id (2 accepted, 3 rejected)
type TransitionRequest struct {
	Status int64 `json:"status" binding:"required"`
}

// Submit godoc
// @Summary      Apply to a vacancy
// @Description  Submit an application, optionally with one of the caller's resumes (user role only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitApplicationRequest  true  "Application data"
// @Success      201   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Submit(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.Submit(c.Request.Context(), p, domain.SubmitApplicationInput{
		VacancyID: req.VacancyID,
		ResumeID:  req.ResumeID,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// Transition godoc
// @Summary      Decide an application
// @Description  Move a submitted application to accepted or rejected (hr/admin). Decisions are final.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Application ID"
// @Param        body  body      TransitionRequest  true  "Target status"
// @Success      200   {object}  response.Response{data=domain.Application}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /applications/{id}/status [patch]
// @Security     BearerAuth
func (h *ApplicationHandler) Transition(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	app, err := h.applicationUC.Transition(c.Request.Context(), p, id, domain.ApplicationStatus(req.Status))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", app)
}

// Withdraw godoc
// @Summary      Withdraw an application
// @Description  Delete the caller's own application
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.applicationUC.Withdraw(c.Request.Context(), p, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application withdrawn", nil)
}

// Get godoc
// @Summary      Get application
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Application ID"
// @Success      200  {object}  response.Response{data=domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Get(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.applicationUC.Get(c.Request.Context(), p, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application details", app)
}

// ListMine godoc
// @Summary      List my applications
// @Description  The caller's applications, newest first
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Router       /applications/mine [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListMine(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		c.Error(err)
		return
	}

	apps, err := h.applicationUC.ListMine(c.Request.Context(), p)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My applications", apps)
}

// List godoc
// @Summary      Filter applications
// @Description  Filter by status or by vacancy category (hr/admin). HR only sees their companies.
// @Tags         applications
// @Produce      json
// @Param        status    query     int  false  "Status ID"
// @Param        category  query     int  false  "Category ID"
// @Success      200       {object}  response.Response{data=[]domain.Application}
// @Failure      400       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		c.Error(err)
		return
	}
	status, err := queryInt64(c, "status")
	if err != nil {
		c.Error(err)
		return
	}
	category, err := queryInt64(c, "category")
	if err != nil {
		c.Error(err)
		return
	}

	var apps []domain.Application
	switch {
	case status != nil && category != nil:
		c.Error(apperror.BadRequest("Filter by status or category, not both"))
		return
	case status != nil:
		apps, err = h.applicationUC.ListByStatus(c.Request.Context(), p, domain.ApplicationStatus(*status))
	case category != nil:
		apps, err = h.applicationUC.ListByCategory(c.Request.Context(), p, *category)
	default:
		c.Error(apperror.BadRequest("status or category query parameter is required"))
		return
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications", apps)
}

// ListByVacancy godoc
// @Summary      List applications for a vacancy
// @Tags         applications
// @Produce      json
// @Param        id   path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByVacancy(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		c.Error(err)
		return
	}
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	apps, err := h.applicationUC.ListByVacancy(c.Request.Context(), p, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy applications", apps)
}

// ListApplicants godoc
// @Summary      Applied users
// @Description  Applications to vacancies of the HR's companies (all for admin)
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Router       /applicants [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		c.Error(err)
		return
	}

	apps, err := h.applicationUC.ListApplicants(c.Request.Context(), p)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicants", apps)
}

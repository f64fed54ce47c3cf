package v1

import (
	"net/http"
	"strconv"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	vacancyUC domain.VacancyUsecase
}

// NewVacancyHandler registers the catalog. Public routes run with optional
// auth so listings can be personalised when a token is present.
func NewVacancyHandler(public, protected *gin.RouterGroup, vacancyUC domain.VacancyUsecase) {
	handler := &VacancyHandler{vacancyUC: vacancyUC}

	public.GET("/vacancies", handler.List)
	public.GET("/vacancies/:id", handler.Detail)
	public.GET("/categories", handler.Categories)

	vacancies := protected.Group("/vacancies")
	{
		vacancies.POST("", handler.Create)
		vacancies.PUT("/:id", handler.Update)
		vacancies.DELETE("/:id", handler.Delete)
		vacancies.PATCH("/:id/activation", handler.SetActivation)
		vacancies.POST("/:id/seen", handler.MarkSeen)
	}
}

// VacancyRequest is the payload for creating or replacing a vacancy
type VacancyRequest struct {
	CompanyID      int64    `json:"company_id" binding:"required"`
	CategoryID     *int64   `json:"job_category"`
	Title          string   `json:"title" binding:"required"`
	Description    *string  `json:"description"`
	Salary         float64  `json:"salary"`
	Qualifications *string  `json:"qualifications"`
	Skills         []string `json:"skills"`
	Experience     bool     `json:"experience"`
	Level          int      `json:"level"`
	WorkHours      *string  `json:"work_hours"`
}

func (r VacancyRequest) toDomain() *domain.Vacancy {
	return &domain.Vacancy{
		CompanyID:      r.CompanyID,
		CategoryID:     r.CategoryID,
		Title:          r.Title,
		Description:    r.Description,
		Salary:         r.Salary,
		Qualifications: r.Qualifications,
		Skills:         r.Skills,
		Experience:     r.Experience,
		Level:          r.Level,
		WorkHours:      r.WorkHours,
	}
}

// ActivationRequest toggles is_activate
type ActivationRequest struct {
	Active *bool `json:"is_activate" binding:"required"`
}

// List godoc
// @Summary      List active vacancies
// @Description  Public listing of active vacancies. is_applied / is_favorite apply only when authenticated.
// @Tags         vacancies
// @Produce      json
// @Param        page        query     int     false  "Page number"
// @Param        page_size   query     int     false  "Page size"
// @Param        category    query     []int   false  "Category IDs (repeat or comma separated)"
// @Param        salary_min  query     number  false  "Minimum salary"
// @Param        salary_max  query     number  false  "Maximum salary"
// @Param        title       query     string  false  "Title contains"
// @Param        company     query     int     false  "Company ID"
// @Param        is_applied  query     bool    false  "Only vacancies the caller applied to (or not)"
// @Param        is_favorite query     bool    false  "Only vacancies the caller favorited (or not)"
// @Param        sort        query     string  false  "applied_asc or applied_desc, newest first when omitted"
// @Success      200         {object}  response.Response
// @Failure      400         {object}  response.Response
// @Router       /vacancies [get]
func (h *VacancyHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	f, err := vacancyFilterFromQuery(c)
	if err != nil {
		c.Error(err)
		return
	}

	items, total, err := h.vacancyUC.ListPublic(c.Request.Context(), optionalPrincipal(c), f, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy list", gin.H{
		"items":     items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

func vacancyFilterFromQuery(c *gin.Context) (domain.VacancyFilter, error) {
	var f domain.VacancyFilter
	var err error

	if f.CategoryIDs, err = queryInt64List(c, "category"); err != nil {
		return f, err
	}
	if f.SalaryMin, err = queryFloat(c, "salary_min"); err != nil {
		return f, err
	}
	if f.SalaryMax, err = queryFloat(c, "salary_max"); err != nil {
		return f, err
	}
	if f.CompanyID, err = queryInt64(c, "company"); err != nil {
		return f, err
	}
	if f.IsApplied, err = queryBool(c, "is_applied"); err != nil {
		return f, err
	}
	if f.IsFavorite, err = queryBool(c, "is_favorite"); err != nil {
		return f, err
	}
	f.Title = c.Query("title")

	switch c.Query("sort") {
	case "":
	case "applied_asc":
		f.Sort = domain.SortAppliedAsc
	case "applied_desc":
		f.Sort = domain.SortAppliedDesc
	default:
		return f, apperror.BadRequest("sort must be applied_asc or applied_desc")
	}
	return f, nil
}

// Detail godoc
// @Summary      Vacancy details
// @Description  Returns the vacancy with its counters. An authenticated caller is recorded as a looker.
// @Tags         vacancies
// @Produce      json
// @Param        id   path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response{data=domain.VacancyDetail}
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id} [get]
func (h *VacancyHandler) Detail(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	detail, err := h.vacancyUC.Detail(c.Request.Context(), optionalPrincipal(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy details", detail)
}

// MarkSeen godoc
// @Summary      Mark vacancy as seen
// @Description  Adds the caller to the vacancy's viewers
// @Tags         vacancies
// @Produce      json
// @Param        id   path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response{data=domain.VacancyDetail}
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id}/seen [post]
// @Security     BearerAuth
func (h *VacancyHandler) MarkSeen(c *gin.Context) {
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

	detail, err := h.vacancyUC.MarkSeen(c.Request.Context(), p, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy marked as seen", detail)
}

// Create godoc
// @Summary      Create vacancy
// @Description  HR bound to the company, or admin
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        body  body      VacancyRequest  true  "Vacancy"
// @Success      201   {object}  response.Response{data=domain.Vacancy}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /vacancies [post]
// @Security     BearerAuth
func (h *VacancyHandler) Create(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	v := req.toDomain()
	if err := h.vacancyUC.Create(c.Request.Context(), p, v); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Vacancy created", v)
}

// Update godoc
// @Summary      Update vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Vacancy ID"
// @Param        body  body      VacancyRequest  true  "Vacancy"
// @Success      200   {object}  response.Response{data=domain.Vacancy}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /vacancies/{id} [put]
// @Security     BearerAuth
func (h *VacancyHandler) Update(c *gin.Context) {
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

	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	v := req.toDomain()
	v.ID = id
	if err := h.vacancyUC.Update(c.Request.Context(), p, v); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy updated", v)
}

// Delete godoc
// @Summary      Delete vacancy
// @Description  Cascades to applications, favorites and notifications
// @Tags         vacancies
// @Produce      json
// @Param        id   path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id} [delete]
// @Security     BearerAuth
func (h *VacancyHandler) Delete(c *gin.Context) {
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

	if err := h.vacancyUC.Delete(c.Request.Context(), p, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy deleted", nil)
}

// SetActivation godoc
// @Summary      Activate or deactivate vacancy
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        id    path      int                true  "Vacancy ID"
// @Param        body  body      ActivationRequest  true  "Activation flag"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /vacancies/{id}/activation [patch]
// @Security     BearerAuth
func (h *VacancyHandler) SetActivation(c *gin.Context) {
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

	var req ActivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.vacancyUC.SetActivation(c.Request.Context(), p, id, *req.Active); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy activation updated", gin.H{"id": id, "is_activate": *req.Active})
}

// Categories godoc
// @Summary      Vacancy categories
// @Description  Categories with vacancy and application counts
// @Tags         vacancies
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Category}
// @Router       /categories [get]
func (h *VacancyHandler) Categories(c *gin.Context) {
	categories, err := h.vacancyUC.Categories(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Categories", categories)
}

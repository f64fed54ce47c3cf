package v1

import (
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

func NewCompanyHandler(public, protected *gin.RouterGroup, writes gin.HandlerFunc, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	public.GET("/companies/:id/reviews", handler.Reviews)
	protected.POST("/companies/:id/reviews", writes, handler.AddReview)
	protected.GET("/companies/:id/members", handler.Members)
}

// ReviewRequest is the payload for reviewing a company
type ReviewRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// Members godoc
// @Summary      Company roster
// @Description  Users who applied to the company's vacancies (hr bound to the company, or admin)
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response{data=[]domain.CompanyMember}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/{id}/members [get]
// @Security     BearerAuth
func (h *CompanyHandler) Members(c *gin.Context) {
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

	members, err := h.companyUC.Members(c.Request.Context(), p, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company members", members)
}

// AddReview godoc
// @Summary      Review a company
// @Description  One review per user and company
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        id    path      int            true  "Company ID"
// @Param        body  body      ReviewRequest  true  "Review"
// @Success      201   {object}  response.Response{data=domain.CompanyReview}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /companies/{id}/reviews [post]
// @Security     BearerAuth
func (h *CompanyHandler) AddReview(c *gin.Context) {
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

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	review, err := h.companyUC.AddReview(c.Request.Context(), p, id, req.Comment)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Review added", review)
}

// Reviews godoc
// @Summary      Company reviews
// @Tags         companies
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response{data=[]domain.CompanyReview}
// @Failure      404  {object}  response.Response
// @Router       /companies/{id}/reviews [get]
func (h *CompanyHandler) Reviews(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	reviews, err := h.companyUC.Reviews(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company reviews", reviews)
}

package v1

import (
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"
	"go-jobmarket-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(protected *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resumes := protected.Group("/resumes")
	{
		resumes.GET("", handler.List)
		resumes.POST("", handler.Create)
		resumes.DELETE("/:id", handler.Delete)
	}
}

// ResumeRequest is the payload for creating a resume
type ResumeRequest struct {
	CategoryID *int64  `json:"job_tag"`
	Position   *string `json:"position"`
	Content    *string `json:"content"`
}

// Create godoc
// @Summary      Create resume
// @Description  Users may keep a limited number of resumes
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        body  body      ResumeRequest  true  "Resume"
// @Success      201   {object}  response.Response{data=domain.Resume}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /resumes [post]
// @Security     BearerAuth
func (h *ResumeHandler) Create(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	r := &domain.Resume{
		CategoryID: req.CategoryID,
		Position:   req.Position,
		Content:    req.Content,
	}
	if err := h.resumeUC.Create(c.Request.Context(), p, r); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Resume created", r)
}

// List godoc
// @Summary      My resumes
// @Tags         resumes
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Resume}
// @Router       /resumes [get]
// @Security     BearerAuth
func (h *ResumeHandler) List(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		c.Error(err)
		return
	}

	resumes, err := h.resumeUC.List(c.Request.Context(), p)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "My resumes", resumes)
}

// Delete godoc
// @Summary      Delete resume
// @Tags         resumes
// @Produce      json
// @Param        id   path      int  true  "Resume ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /resumes/{id} [delete]
// @Security     BearerAuth
func (h *ResumeHandler) Delete(c *gin.Context) {
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

	if err := h.resumeUC.Delete(c.Request.Context(), p, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume deleted", nil)
}

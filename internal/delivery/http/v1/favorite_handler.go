package v1

import (
	"net/http"

	"go-jobmarket-backend/internal/delivery/http/response"
	"go-jobmarket-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteUC domain.FavoriteUsecase
}

func NewFavoriteHandler(public, protected *gin.RouterGroup, favoriteUC domain.FavoriteUsecase) {
	handler := &FavoriteHandler{favoriteUC: favoriteUC}

	public.GET("/vacancies/:id/favorites/count", handler.Count)

	favorites := protected.Group("/favorites")
	{
		favorites.GET("", handler.List)
		favorites.POST("/:id", handler.Add)
		favorites.DELETE("/:id", handler.Remove)
	}
}

// Add godoc
// @Summary      Favorite a vacancy
// @Description  Idempotent by default. With strict=true an existing favorite is a 409.
// @Tags         favorites
// @Produce      json
// @Param        id      path      int   true   "Vacancy ID"
// @Param        strict  query     bool  false  "Reject duplicates"
// @Success      201     {object}  response.Response{data=domain.Favorite}
// @Failure      404     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /favorites/{id} [post]
// @Security     BearerAuth
func (h *FavoriteHandler) Add(c *gin.Context) {
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
	strict, err := queryBool(c, "strict")
	if err != nil {
		c.Error(err)
		return
	}

	var fav *domain.Favorite
	if strict != nil && *strict {
		fav, err = h.favoriteUC.AddStrict(c.Request.Context(), p, id)
	} else {
		fav, err = h.favoriteUC.Add(c.Request.Context(), p, id)
	}
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Vacancy added to favorites", fav)
}

// Remove godoc
// @Summary      Unfavorite a vacancy
// @Tags         favorites
// @Produce      json
// @Param        id   path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /favorites/{id} [delete]
// @Security     BearerAuth
func (h *FavoriteHandler) Remove(c *gin.Context) {
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

	if err := h.favoriteUC.Remove(c.Request.Context(), p, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy removed from favorites", nil)
}

// List godoc
// @Summary      My favorite vacancies
// @Tags         favorites
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Vacancy}
// @Router       /favorites [get]
// @Security     BearerAuth
func (h *FavoriteHandler) List(c *gin.Context) {
	p, err := principal(c)
	if err != nil {
		c.Error(err)
		return
	}

	vacancies, err := h.favoriteUC.ListFor(c.Request.Context(), p)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Favorite vacancies", vacancies)
}

// Count godoc
// @Summary      Favorite count for a vacancy
// @Tags         favorites
// @Produce      json
// @Param        id   path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id}/favorites/count [get]
func (h *FavoriteHandler) Count(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	count, err := h.favoriteUC.CountFor(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Favorite count", gin.H{"vacancy_id": id, "count": count})
}

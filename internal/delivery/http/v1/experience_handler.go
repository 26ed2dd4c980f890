package v1

import (
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	expUC domain.ExperienceUsecase
}

func NewExperienceHandler(r *gin.RouterGroup, expUC domain.ExperienceUsecase) {
	handler := &ExperienceHandler{expUC: expUC}

	r.GET("/users/:id/experiences", handler.ListByUser)
	experiences := r.Group("/experiences")
	{
		experiences.POST("", handler.Create)
		experiences.PUT("/:id", handler.Update)
		experiences.DELETE("/:id", handler.Delete)
	}
}

// Create godoc
// @Summary      Add a work experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Experience  true  "Experience data"
// @Success      201   {object}  response.Response{data=domain.Experience}
// @Failure      400   {object}  response.Response
// @Router       /experiences [post]
// @Security     BearerAuth
func (h *ExperienceHandler) Create(c *gin.Context) {
	actingID := c.GetString(string(domain.KeyUserID))

	var exp domain.Experience
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	created, err := h.expUC.Create(c.Request.Context(), actingID, &exp)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// ListByUser godoc
// @Summary      List a user's work experiences
// @Tags         experiences
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=[]domain.Experience}
// @Failure      404  {object}  response.Response
// @Router       /users/{id}/experiences [get]
// @Security     BearerAuth
func (h *ExperienceHandler) ListByUser(c *gin.Context) {
	exps, err := h.expUC.GetByUserID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, exps)
}

// Update godoc
// @Summary      Edit a work experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Experience ID"
// @Param        body  body      domain.Experience  true  "Experience data"
// @Success      200   {object}  response.Response{data=domain.Experience}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /experiences/{id} [put]
// @Security     BearerAuth
func (h *ExperienceHandler) Update(c *gin.Context) {
	actingID := c.GetString(string(domain.KeyUserID))

	var exp domain.Experience
	if err := c.ShouldBindJSON(&exp); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.expUC.Update(c.Request.Context(), actingID, c.Param("id"), &exp)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete a work experience
// @Tags         experiences
// @Produce      json
// @Param        id   path      string  true  "Experience ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /experiences/{id} [delete]
// @Security     BearerAuth
func (h *ExperienceHandler) Delete(c *gin.Context) {
	actingID := c.GetString(string(domain.KeyUserID))

	if err := h.expUC.Delete(c.Request.Context(), actingID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

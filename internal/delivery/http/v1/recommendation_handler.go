package v1

import (
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recUC domain.RecommendationUsecase
}

func NewRecommendationHandler(r *gin.RouterGroup, recUC domain.RecommendationUsecase) {
	handler := &RecommendationHandler{recUC: recUC}

	recs := r.Group("/recommendations")
	{
		recs.POST("", handler.Create)
		recs.GET("/:id", handler.GetByID)
		recs.GET("/user/:talentId", handler.GetByTalentID)
		recs.GET("/user/:talentId/status/:status", handler.GetByTalentIDAndStatus)
		recs.GET("/user/:talentId/grouped-by-status", handler.GetByTalentIDGroupedByStatus)
		recs.PATCH("/:id", handler.UpdateStatus)
		recs.DELETE("/:id", handler.Delete)
	}
}

// UpdateStatusRequest is the status-transition payload
type UpdateStatusRequest struct {
	Status domain.RecommendationStatus `json:"status" binding:"required"`
}

// Create godoc
// @Summary      Create a recommendation
// @Description  A contractor recommends a talent; new records always start PENDING
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CreateRecommendationInput  true  "Recommendation data"
// @Success      201   {object}  response.Response{data=domain.Recommendation}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /recommendations [post]
// @Security     BearerAuth
func (h *RecommendationHandler) Create(c *gin.Context) {
	var input domain.CreateRecommendationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	rec, err := h.recUC.Create(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, rec)
}

// GetByID godoc
// @Summary      Get a recommendation
// @Tags         recommendations
// @Produce      json
// @Param        id   path      string  true  "Recommendation ID"
// @Success      200  {object}  response.Response{data=domain.Recommendation}
// @Failure      404  {object}  response.Response
// @Router       /recommendations/{id} [get]
// @Security     BearerAuth
func (h *RecommendationHandler) GetByID(c *gin.Context) {
	rec, err := h.recUC.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, rec)
}

// GetByTalentID godoc
// @Summary      List recommendations for a talent
// @Description  Zero recommendations for an existing talent is an empty list, not an error
// @Tags         recommendations
// @Produce      json
// @Param        talentId  path      string  true  "Talent user ID"
// @Success      200       {object}  response.Response{data=[]domain.Recommendation}
// @Failure      404       {object}  response.Response
// @Router       /recommendations/user/{talentId} [get]
// @Security     BearerAuth
func (h *RecommendationHandler) GetByTalentID(c *gin.Context) {
	recs, err := h.recUC.GetByTalentID(c.Request.Context(), c.Param("talentId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, recs)
}

// GetByTalentIDAndStatus godoc
// @Summary      List recommendations for a talent filtered by status
// @Tags         recommendations
// @Produce      json
// @Param        talentId  path      string  true  "Talent user ID"
// @Param        status    path      string  true  "PENDING, ACCEPTED or DECLINED"
// @Success      200       {object}  response.Response{data=[]domain.Recommendation}
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /recommendations/user/{talentId}/status/{status} [get]
// @Security     BearerAuth
func (h *RecommendationHandler) GetByTalentIDAndStatus(c *gin.Context) {
	status := domain.RecommendationStatus(c.Param("status"))

	recs, err := h.recUC.GetByTalentIDAndStatus(c.Request.Context(), c.Param("talentId"), status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, recs)
}

// GetByTalentIDGroupedByStatus godoc
// @Summary      Group a talent's recommendations by status
// @Description  The grouping is total: every status appears, empty ones as empty lists
// @Tags         recommendations
// @Produce      json
// @Param        talentId  path      string  true  "Talent user ID"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /recommendations/user/{talentId}/grouped-by-status [get]
// @Security     BearerAuth
func (h *RecommendationHandler) GetByTalentIDGroupedByStatus(c *gin.Context) {
	grouped, err := h.recUC.GetByTalentIDGroupedByStatus(c.Request.Context(), c.Param("talentId"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, grouped)
}

// UpdateStatus godoc
// @Summary      Change a recommendation's status
// @Description  Only the owning talent may transition the status; transitions are free-form
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Recommendation ID"
// @Param        body  body      UpdateStatusRequest  true  "New status"
// @Success      200   {object}  response.Response{data=domain.Recommendation}
// @Failure      400   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /recommendations/{id} [patch]
// @Security     BearerAuth
func (h *RecommendationHandler) UpdateStatus(c *gin.Context) {
	actingID := c.GetString(string(domain.KeyUserID))

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	rec, err := h.recUC.EditStatusByID(c.Request.Context(), actingID, c.Param("id"), req.Status)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, rec)
}

// Delete godoc
// @Summary      Delete a recommendation
// @Description  Only the owning talent may delete; the last known state is echoed back
// @Tags         recommendations
// @Produce      json
// @Param        id   path      string  true  "Recommendation ID"
// @Success      200  {object}  response.Response{data=domain.Recommendation}
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /recommendations/{id} [delete]
// @Security     BearerAuth
func (h *RecommendationHandler) Delete(c *gin.Context) {
	actingID := c.GetString(string(domain.KeyUserID))

	rec, err := h.recUC.DeleteByID(c.Request.Context(), actingID, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, rec)
}

package v1

import (
	"net/http"

	"go-talent-backend/internal/delivery/http/response"
	"go-talent-backend/internal/domain"
	"go-talent-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CertificateHandler struct {
	certUC domain.CertificateUsecase
}

func NewCertificateHandler(r *gin.RouterGroup, certUC domain.CertificateUsecase) {
	handler := &CertificateHandler{certUC: certUC}

	r.GET("/users/:id/certificates", handler.ListByUser)
	certificates := r.Group("/certificates")
	{
		certificates.POST("", handler.Create)
		certificates.PUT("/:id", handler.Update)
		certificates.DELETE("/:id", handler.Delete)
	}
}

// Create godoc
// @Summary      Add a certificate
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Param        body  body      domain.Certificate  true  "Certificate data"
// @Success      201   {object}  response.Response{data=domain.Certificate}
// @Failure      400   {object}  response.Response
// @Router       /certificates [post]
// @Security     BearerAuth
func (h *CertificateHandler) Create(c *gin.Context) {
	actingID := c.GetString(string(domain.KeyUserID))

	var cert domain.Certificate
	if err := c.ShouldBindJSON(&cert); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	created, err := h.certUC.Create(c.Request.Context(), actingID, &cert)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, created)
}

// ListByUser godoc
// @Summary      List a user's certificates
// @Tags         certificates
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=[]domain.Certificate}
// @Failure      404  {object}  response.Response
// @Router       /users/{id}/certificates [get]
// @Security     BearerAuth
func (h *CertificateHandler) ListByUser(c *gin.Context) {
	certs, err := h.certUC.GetByUserID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, certs)
}

// Update godoc
// @Summary      Edit a certificate
// @Tags         certificates
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Certificate ID"
// @Param        body  body      domain.Certificate  true  "Certificate data"
// @Success      200   {object}  response.Response{data=domain.Certificate}
// @Failure      403   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /certificates/{id} [put]
// @Security     BearerAuth
func (h *CertificateHandler) Update(c *gin.Context) {
	actingID := c.GetString(string(domain.KeyUserID))

	var cert domain.Certificate
	if err := c.ShouldBindJSON(&cert); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	updated, err := h.certUC.Update(c.Request.Context(), actingID, c.Param("id"), &cert)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, updated)
}

// Delete godoc
// @Summary      Delete a certificate
// @Tags         certificates
// @Produce      json
// @Param        id   path      string  true  "Certificate ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /certificates/{id} [delete]
// @Security     BearerAuth
func (h *CertificateHandler) Delete(c *gin.Context) {
	actingID := c.GetString(string(domain.KeyUserID))

	if err := h.certUC.Delete(c.Request.Context(), actingID, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": c.Param("id")})
}

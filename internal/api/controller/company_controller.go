package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/leon37/StockRoom/internal/api/response"
	"github.com/leon37/StockRoom/internal/repository"
)

// CompanyController 公司目前只读，建公司走运维侧
type CompanyController struct {
	repo *repository.CompanyRepository
}

func NewCompanyController(repo *repository.CompanyRepository) *CompanyController {
	return &CompanyController{repo: repo}
}

// List 公司列表
// @Summary 公司列表
// @Tags Company
// @Produce json
// @Success 200 {object} map[string]interface{} "{"data": [...]}"
// @Router /api/company/ [get]
func (ctrl *CompanyController) List(c *gin.Context) {
	companies, err := ctrl.repo.List(c.Request.Context())
	if err != nil {
		slog.Error("list companies failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to list companies")
		return
	}
	response.Data(c, http.StatusOK, companies)
}

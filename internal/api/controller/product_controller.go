package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/leon37/StockRoom/internal/api/response"
	"github.com/leon37/StockRoom/internal/service"
)

type ProductController struct {
	service *service.ProductService
}

// NewProductController 构造函数
func NewProductController(s *service.ProductService) *ProductController {
	return &ProductController{service: s}
}

// ProductCreateRequest 创建参数，company_id 由调用方给定
type ProductCreateRequest struct {
	Name      string `json:"name" binding:"required"`
	Comment   string `json:"comment"`
	Quantity  int    `json:"quantity"`
	CompanyID uint   `json:"company_id" binding:"required"`
}

// ProductUpdateRequest 部分更新，没传的字段不动
type ProductUpdateRequest struct {
	Name      *string `json:"name"`
	Comment   *string `json:"comment"`
	Quantity  *int    `json:"quantity"`
	CompanyID *uint   `json:"company_id"`
}

// parseID 路径参数统一在这里转数字
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid product id")
		return 0, false
	}
	return uint(id), true
}

// List 产品列表
// @Summary 产品列表
// @Description 全量列表，带 company_id 查询参数时只返回该公司的产品
// @Tags Product
// @Produce json
// @Param company_id query int false "按公司过滤"
// @Success 200 {object} map[string]interface{} "{"data": [...]}"
// @Router /api/product/ [get]
func (ctrl *ProductController) List(c *gin.Context) {
	var companyID *uint
	if raw := c.Query("company_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid company_id")
			return
		}
		cid := uint(id)
		companyID = &cid
	}

	products, err := ctrl.service.List(c.Request.Context(), companyID)
	if err != nil {
		slog.Error("list products failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to list products")
		return
	}
	response.Data(c, http.StatusOK, products)
}

// Get 单个产品
// @Summary 查询单个产品
// @Description 返回产品本体，附带所属公司的公开字段
// @Tags Product
// @Produce json
// @Param id path int true "产品 id"
// @Success 200 {object} model.Product
// @Failure 404 {object} map[string]string
// @Router /api/product/{id} [get]
func (ctrl *ProductController) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := ctrl.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.Message(c, http.StatusNotFound, "Product not found")
			return
		}
		slog.Error("get product failed", "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to get product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create 新建产品
// @Summary 新建产品
// @Tags Product
// @Accept json
// @Produce json
// @Param request body ProductCreateRequest true "产品字段"
// @Success 200 {object} model.Product
// @Failure 400 {object} map[string]string
// @Router /api/product/ [post]
func (ctrl *ProductController) Create(c *gin.Context) {
	var req ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product, err := ctrl.service.Create(c.Request.Context(), service.ProductCreateInput{
		Name:      req.Name,
		Comment:   req.Comment,
		Quantity:  req.Quantity,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		slog.Error("create product failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to create product")
		return
	}

	slog.Info("product created", "id", product.ID, "companyID", product.CompanyID)
	c.JSON(http.StatusOK, product)
}

// Update 部分更新
// @Summary 更新产品
// @Description 只覆盖请求里出现的字段
// @Tags Product
// @Accept json
// @Produce json
// @Param id path int true "产品 id"
// @Param request body ProductUpdateRequest true "要更新的字段"
// @Success 200 {object} model.Product
// @Failure 404 {object} map[string]string
// @Router /api/product/{id} [put]
func (ctrl *ProductController) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	product, err := ctrl.service.Update(c.Request.Context(), id, service.ProductUpdateInput{
		Name:      req.Name,
		Comment:   req.Comment,
		Quantity:  req.Quantity,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.Message(c, http.StatusNotFound, "Product not found")
			return
		}
		slog.Error("update product failed", "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// Delete 删除产品
// @Summary 删除产品
// @Description 删除不存在的 id 返回 404，不作为无操作成功
// @Tags Product
// @Produce json
// @Param id path int true "产品 id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/product/{id} [delete]
func (ctrl *ProductController) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.Message(c, http.StatusNotFound, "Product not found")
			return
		}
		slog.Error("delete product failed", "id", id, "error", err)
		response.Error(c, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	slog.Info("product deleted", "id", id)
	response.Message(c, http.StatusOK, "Product deleted successfully")
}

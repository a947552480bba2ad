package service

import (
	"context"
	"errors"

	"github.com/leon37/StockRoom/internal/model"
	"github.com/leon37/StockRoom/internal/repository"
	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService struct {
	repo repository.ProductRepo
}

func NewProductService(repo repository.ProductRepo) *ProductService {
	return &ProductService{repo: repo}
}

// ProductCreateInput 创建时的白名单字段
type ProductCreateInput struct {
	Name      string
	Comment   string
	Quantity  int
	CompanyID uint
}

// ProductUpdateInput 部分更新，nil 字段保持原值
type ProductUpdateInput struct {
	Name      *string
	Comment   *string
	Quantity  *int
	CompanyID *uint
}

func (s *ProductService) List(ctx context.Context, companyID *uint) ([]model.Product, error) {
	return s.repo.List(ctx, companyID)
}

func (s *ProductService) Get(ctx context.Context, id uint) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

// Create 不校验 company_id 是否真实存在，和存量行为保持一致；
// 要收紧引用完整性就在这里加一次 Company 查询
func (s *ProductService) Create(ctx context.Context, in ProductCreateInput) (*model.Product, error) {
	product := &model.Product{
		Name:      in.Name,
		Comment:   in.Comment,
		Quantity:  in.Quantity,
		CompanyID: in.CompanyID,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 只覆盖请求里出现的字段，改完重新读一遍返回最新状态
func (s *ProductService) Update(ctx context.Context, id uint, in ProductUpdateInput) (*model.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Comment != nil {
		fields["comment"] = *in.Comment
	}
	if in.Quantity != nil {
		fields["quantity"] = *in.Quantity
	}
	if in.CompanyID != nil {
		fields["company_id"] = *in.CompanyID
	}
	if len(fields) > 0 {
		if err := s.repo.Updates(ctx, product, fields); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, id)
}

// Delete 删不存在的 id 要报 not found，不能当成功
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrProductNotFound
	}
	return nil
}

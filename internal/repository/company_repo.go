package repository

import (
	"context"

	"github.com/leon37/StockRoom/internal/model"
	"gorm.io/gorm"
)

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// List 注册页的公司下拉框用，顺序就按存储自然序
func (r *CompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	companies := make([]model.Company, 0)
	if err := r.db.WithContext(ctx).Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

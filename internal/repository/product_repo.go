package repository

import (
	"context"

	"github.com/leon37/StockRoom/internal/model"
	"gorm.io/gorm"
)

// ProductRepo 定义接口 (为了以后方便 Mock)
type ProductRepo interface {
	List(ctx context.Context, companyID *uint) ([]model.Product, error)
	GetByID(ctx context.Context, id uint) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Updates(ctx context.Context, product *model.Product, fields map[string]interface{}) error
	Delete(ctx context.Context, id uint) (int64, error)
}

// productRepo 实现
type productRepo struct {
	db *gorm.DB
}

// NewProductRepo 构造函数
func NewProductRepo(db *gorm.DB) ProductRepo {
	return &productRepo{db: db}
}

// List 全量或按公司过滤，不保证排序。
// 切片要先初始化，空结果序列化成 [] 而不是 null
func (r *productRepo) List(ctx context.Context, companyID *uint) ([]model.Product, error) {
	products := make([]model.Product, 0)
	q := r.db.WithContext(ctx)
	if companyID != nil {
		q = q.Where("company_id = ?", *companyID)
	}
	if err := q.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// GetByID 单条查询带出所属公司
func (r *productRepo) GetByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).Preload("Company").First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	// WithContext 确保请求超时能传递到数据库层
	return r.db.WithContext(ctx).Create(product).Error
}

// Updates 只更新 fields 里出现的列，部分更新的语义靠上层白名单保证
func (r *productRepo) Updates(ctx context.Context, product *model.Product, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(product).Updates(fields).Error
}

// Delete 返回受影响行数，0 行说明 id 不存在
func (r *productRepo) Delete(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Product{}, id)
	return res.RowsAffected, res.Error
}

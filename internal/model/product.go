package model

import "time"

// Product 是映射数据库表的结构体
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(128);not null" json:"name"`
	Comment   string    `gorm:"type:text" json:"comment"`
	Quantity  int       `json:"quantity"`
	CompanyID uint      `gorm:"index" json:"company_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// 单条查询时带出所属公司（Preload），列表不带
	Company *Company `gorm:"foreignKey:CompanyID;references:ID" json:"company,omitempty"`
}

// TableName 强制指定表名
func (Product) TableName() string {
	return "products"
}

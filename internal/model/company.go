package model

// Company 租户表，目前只有名字一个业务字段
type Company struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(128);not null" json:"name"`
}

// TableName 强制指定表名
func (Company) TableName() string {
	return "companies"
}

package model

// 商品マスタ。このAPIからは読むだけ
type Product struct {
	Code  string `gorm:"column:code;primaryKey;type:varchar(64)" json:"code"`
	Name  string `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Price int64  `gorm:"column:price;not null" json:"price"`
}

func (Product) TableName() string { return "product_master" }

package model

// 取引明細。商品名と価格は会計時点のスナップショット
type OrderLine struct {
	OrderID  int64  `gorm:"column:trd_id;primaryKey;autoIncrement:false" json:"trd_id"`
	DetailID int64  `gorm:"column:dtl_id;primaryKey;autoIncrement:false" json:"dtl_id"`
	Code     string `gorm:"column:prd_code;type:varchar(64);not null" json:"prd_code"`
	Name     string `gorm:"column:prd_name;type:varchar(255);not null" json:"prd_name"`
	Price    int64  `gorm:"column:prd_price;not null" json:"prd_price"`
}

func (OrderLine) TableName() string { return "transaction_details" }

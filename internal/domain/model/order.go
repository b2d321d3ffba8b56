package model

import "time"

// 省略時の既定値
const (
	DefaultEmpCd   = "999999999"
	DefaultStoreCd = "30"
	DefaultPosNo   = "90"
)

// 取引（1回の会計）
type Order struct {
	ID       int64     `gorm:"column:trd_id;primaryKey;autoIncrement" json:"trd_id,omitempty"`
	Datetime time.Time `gorm:"column:datetime;not null" json:"datetime"`
	EmpCd    string    `gorm:"column:emp_cd;type:varchar(64);not null" json:"emp_cd"`
	StoreCd  string    `gorm:"column:store_cd;type:varchar(64);not null" json:"store_cd"`
	PosNo    string    `gorm:"column:pos_no;type:varchar(64);not null" json:"pos_no"`
	TotalAmt int64     `gorm:"column:total_amt;not null" json:"total_amt"`

	Lines []OrderLine `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Order) TableName() string { return "transactions" }

package domain

import "time"

type Discount struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID          uint64    `gorm:"column:product_id;not null" json:"product_id"`
	DiscountPercentage float64   `gorm:"column:discount_percentage;type:numeric;not null" json:"discount_percentage"`
	StartDate          time.Time `gorm:"column:start_date;not null" json:"start_date"`
	EndDate            time.Time `gorm:"column:end_date;not null" json:"end_date"`
}

func (Discount) TableName() string {
	return "discounts"
}

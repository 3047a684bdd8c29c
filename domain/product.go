package domain

import (
	"time"
)

type Product struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;type:text;not null" json:"name"`
	CategoryID  uint64    `gorm:"column:category_id;not null" json:"category_id"`
	ImageURL    string    `gorm:"column:image_url;type:text;not null" json:"image_url"`
	Price       float64   `gorm:"column:price;type:numeric;not null" json:"price"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	SKU         string    `gorm:"column:sku;unique;not null" json:"sku"`
	Stock       int       `gorm:"column:stock;not null" json:"stock"`
	UserID      uint      `gorm:"column:user_id;not null" json:"user_id"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"-"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"-"`

	Category Category       `gorm:"foreignKey:CategoryID" json:"category"`
	Tags     []Tag          `gorm:"many2many:product_tags" json:"tags"`
	Images   []ProductImage `gorm:"foreignKey:ProductID" json:"images"`
}

func (Product) TableName() string {
	return "products"
}

type Category struct {
	ID   uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;unique;not null" json:"name"`

	Tags []Tag `gorm:"foreignKey:CategoryID" json:"tags"`
}

func (Category) TableName() string {
	return "categories"
}

type Tag struct {
	ID         uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string `gorm:"column:name;not null" json:"name"`
	CategoryID uint64 `gorm:"column:category_id;not null" json:"category_id"`
}

func (Tag) TableName() string {
	return "tags"
}

type ProductImage struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID uint64 `gorm:"column:product_id;not null" json:"product_id"`
	ImageURL  string `gorm:"column:image_url;type:text;not null" json:"image_url"`
}

func (ProductImage) TableName() string {
	return "product_images"
}

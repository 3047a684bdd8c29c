package domain

import "time"

// Interaction events are immutable once recorded. They feed the
// recommendation scorer and are never updated or expired.

type ViewingHistory struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	ProductID uint64    `gorm:"column:product_id;not null" json:"product_id"`
	ViewedAt  time.Time `gorm:"column:viewed_at" json:"viewed_at"`
}

func (ViewingHistory) TableName() string {
	return "viewing_history"
}

type SearchQuery struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"column:user_id;not null" json:"user_id"`
	SearchQuery string    `gorm:"column:search_query;size:200" json:"search_query"`
	SearchedAt  time.Time `gorm:"column:searched_at" json:"searched_at"`
}

func (SearchQuery) TableName() string {
	return "search_query"
}

type Engagement struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	ProductID uint64    `gorm:"column:product_id;not null" json:"product_id"`
	WatchTime int       `gorm:"column:watch_time;not null" json:"watch_time"`
	EngagedAt time.Time `gorm:"column:engaged_at" json:"engaged_at"`
}

func (Engagement) TableName() string {
	return "engagement"
}

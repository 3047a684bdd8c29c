package domain

type BillingDetail struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint   `gorm:"column:user_id;not null" json:"-"`
	FullName     string `gorm:"column:full_name;not null" json:"full_name"`
	AddressLine1 string `gorm:"column:address_line_1;not null" json:"address_line_1"`
	AddressLine2 string `gorm:"column:address_line_2" json:"address_line_2"`
	City         string `gorm:"column:city;not null" json:"city"`
	State        string `gorm:"column:state;not null" json:"state"`
	PostalCode   string `gorm:"column:postal_code;not null" json:"postal_code"`
	Country      string `gorm:"column:country;not null" json:"country"`
	PhoneNumber  string `gorm:"column:phone_number;not null" json:"phone_number"`
	Email        string `gorm:"column:email;not null" json:"email"`
}

func (BillingDetail) TableName() string {
	return "billing_details"
}

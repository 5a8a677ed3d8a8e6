package models

// Pizza represents a pizza on the menu
type Pizza struct {
	ID    int     `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Name  string  `json:"name" gorm:"uniqueIndex;not null"`
	Image string  `json:"image"`
	Desc  string  `json:"desc"`
	Price float64 `json:"price"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

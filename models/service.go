package models

import (
	"gorm.io/gorm"
)

type Service struct {
	gorm.Model
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	BasePrice    float64 `json:"base_price"`
	PricePerHour float64 `json:"price_per_hour"`
	ImageURL     string  `json:"image_url"`
}

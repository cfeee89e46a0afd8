package models

import (
	"gorm.io/gorm"
)

type ServiceItem struct {
	gorm.Model

	ServiceCode   string `gorm:"uniqueIndex;size:32" json:"service_code"`
	ServiceName   string `gorm:"size:64" json:"service_name"`
	ServiceIcon   string `gorm:"size:255" json:"service_icon"`
	ServiceTariff int64  `json:"service_tariff"`
}

type BannerItem struct {
	gorm.Model

	BannerName  string `gorm:"size:64" json:"banner_name"`
	BannerImage string `gorm:"size:255" json:"banner_image"`
	Description string `gorm:"size:255" json:"description"`
}

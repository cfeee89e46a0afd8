package database

import (
	"gorm.io/gorm"

	"ppob/models"
)

// Seed inserts the payable-service catalog and the promo banners once;
// reruns are no-ops.
func Seed(db *gorm.DB) error {
	services := []models.ServiceItem{
		{ServiceCode: "PAJAK", ServiceName: "Pajak PBB", ServiceIcon: "/images/services/pajak.png", ServiceTariff: 40000},
		{ServiceCode: "PLN", ServiceName: "Listrik", ServiceIcon: "/images/services/pln.png", ServiceTariff: 10000},
		{ServiceCode: "PDAM", ServiceName: "PDAM Berlangganan", ServiceIcon: "/images/services/pdam.png", ServiceTariff: 40000},
		{ServiceCode: "PULSA", ServiceName: "Pulsa", ServiceIcon: "/images/services/pulsa.png", ServiceTariff: 40000},
		{ServiceCode: "PGN", ServiceName: "PGN Berlangganan", ServiceIcon: "/images/services/pgn.png", ServiceTariff: 50000},
		{ServiceCode: "MUSIK", ServiceName: "Musik Berlangganan", ServiceIcon: "/images/services/musik.png", ServiceTariff: 50000},
		{ServiceCode: "TV", ServiceName: "TV Berlangganan", ServiceIcon: "/images/services/tv.png", ServiceTariff: 50000},
		{ServiceCode: "PAKET_DATA", ServiceName: "Paket Data", ServiceIcon: "/images/services/paket_data.png", ServiceTariff: 50000},
		{ServiceCode: "VOUCHER_GAME", ServiceName: "Voucher Game", ServiceIcon: "/images/services/voucher_game.png", ServiceTariff: 100000},
		{ServiceCode: "VOUCHER_MAKANAN", ServiceName: "Voucher Makanan", ServiceIcon: "/images/services/voucher_makanan.png", ServiceTariff: 100000},
		{ServiceCode: "QURBAN", ServiceName: "Qurban", ServiceIcon: "/images/services/qurban.png", ServiceTariff: 200000},
		{ServiceCode: "ZAKAT", ServiceName: "Zakat", ServiceIcon: "/images/services/zakat.png", ServiceTariff: 300000},
	}

	for _, svc := range services {
		if err := db.Where("service_code = ?", svc.ServiceCode).FirstOrCreate(&svc).Error; err != nil {
			return err
		}
	}

	banners := []models.BannerItem{
		{BannerName: "Banner 1", BannerImage: "/images/banners/banner-1.png", Description: "Lerem Ipsum Dolor sit amet"},
		{BannerName: "Banner 2", BannerImage: "/images/banners/banner-2.png", Description: "Lerem Ipsum Dolor sit amet"},
		{BannerName: "Banner 3", BannerImage: "/images/banners/banner-3.png", Description: "Lerem Ipsum Dolor sit amet"},
	}

	for _, banner := range banners {
		if err := db.Where("banner_name = ?", banner.BannerName).FirstOrCreate(&banner).Error; err != nil {
			return err
		}
	}

	return nil
}

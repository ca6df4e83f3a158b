package catalog

import "github.com/Vehicle-Shield/storefront/internal/cart/model"

const (
	CategoryPaintProtection int64 = 1
	CategoryCoating         int64 = 2
	CategoryTint            int64 = 3
	CategoryInterior        int64 = 4
)

func stock(n int) *int { return &n }

var Services = []model.Product{
	{
		ID:            1,
		NameEn:        "Full Body Paint Protection Film",
		NameAr:        "فيلم حماية الطلاء للسيارة كاملة",
		DescriptionEn: "Self-healing clear PPF over every painted panel, 10-year warranty",
		DescriptionAr: "فيلم حماية شفاف ذاتي الالتئام لجميع الأجزاء المطلية مع ضمان ١٠ سنوات",
		Price:         "8500.00",
		CategoryID:    CategoryPaintProtection,
		IsAvailable:   true,
		IsFeatured:    true,
	},
	{
		ID:            2,
		NameEn:        "Front End Paint Protection Film",
		NameAr:        "فيلم حماية الواجهة الأمامية",
		DescriptionEn: "PPF for bumper, hood, fenders and mirrors",
		DescriptionAr: "فيلم حماية للصدام والكبوت والرفارف والمرايا",
		Price:         "3200.00",
		CategoryID:    CategoryPaintProtection,
		IsAvailable:   true,
	},
	{
		ID:            3,
		NameEn:        "Ceramic Coating 9H",
		NameAr:        "طلاء سيراميك 9H",
		DescriptionEn: "Two-layer nano ceramic coating with gloss finish",
		DescriptionAr: "طبقتان من النانو سيراميك بلمعان عالي",
		Price:         "1850.00",
		CategoryID:    CategoryCoating,
		IsAvailable:   true,
		IsFeatured:    true,
	},
	{
		ID:            4,
		NameEn:        "Wheel Ceramic Coating",
		NameAr:        "طلاء سيراميك للجنوط",
		DescriptionEn: "Heat resistant coating for rims and calipers",
		DescriptionAr: "طلاء مقاوم للحرارة للجنوط والكاليبرات",
		Price:         "450.00",
		CategoryID:    CategoryCoating,
		IsAvailable:   true,
		Stock:         stock(12),
	},
	{
		ID:            5,
		NameEn:        "Nano Ceramic Window Tint",
		NameAr:        "تظليل نانو سيراميك",
		DescriptionEn: "Heat rejecting window film, 70% IR rejection",
		DescriptionAr: "عازل حراري للزجاج بنسبة عزل ٧٠٪",
		Price:         "1200.00",
		CategoryID:    CategoryTint,
		IsAvailable:   true,
	},
	{
		ID:            6,
		NameEn:        "Windshield Protection Film",
		NameAr:        "فيلم حماية الزجاج الأمامي",
		DescriptionEn: "Clear film against stone chips on the windshield",
		DescriptionAr: "فيلم شفاف ضد الحصى للزجاج الأمامي",
		Price:         "650.00",
		CategoryID:    CategoryTint,
		IsAvailable:   false,
	},
	{
		ID:            7,
		NameEn:        "Interior Leather Protection",
		NameAr:        "حماية الجلد الداخلي",
		DescriptionEn: "Stain and UV protection for leather seats",
		DescriptionAr: "حماية المقاعد الجلدية من البقع والأشعة فوق البنفسجية",
		Price:         "399.99",
		CategoryID:    CategoryInterior,
		IsAvailable:   true,
		Stock:         stock(3),
	},
}

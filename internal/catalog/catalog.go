// Package catalog chứa danh mục sản phẩm tĩnh của INCANTO. Danh mục
// được biên dịch vào binary và không bao giờ thay đổi lúc runtime.
package catalog

import "incanto_back_end/internal/models"

var products = []models.Product{
	{
		ID: 1, Name: "Ấm trà gốm Tử Sa Nghi Hưng", Slug: "am-tra-tu-sa-nghi-hung",
		SKU: "INC-TP-001", Price: 1850000, OriginalPrice: 2200000,
		Image: "/images/products/am-tu-sa.jpg", Rating: 4.9, Reviews: 128,
		Category: models.CategoryTeapots, Badge: models.BadgeBestSeller, InStock: true,
		Description: "Ấm trà đất Tử Sa nung thủ công, giữ nhiệt và dưỡng hương trà lâu.",
		Capacity:    "250ml", Material: "Đất Tử Sa", Origin: "Nghi Hưng, Trung Quốc",
		Dimensions: &models.ProductDimensions{TeapotDiameter: "9cm", TeapotHeight: "8.5cm"},
	},
	{
		ID: 2, Name: "Bộ trà chiều phong cách Đông Dương", Slug: "bo-tra-chieu-dong-duong",
		SKU: "INC-SET-002", Price: 3200000,
		Image: "/images/products/bo-tra-dong-duong.jpg", Rating: 4.8, Reviews: 86,
		Category: models.CategorySets, Badge: models.BadgePremium, InStock: true,
		Description: "Bộ ấm chén men rạn họa tiết Đông Dương, kèm khay gỗ óc chó.",
		Capacity:    "600ml", SetIncludes: "1 ấm, 6 chén, 1 khay gỗ",
		Material: "Gốm men rạn", Packaging: "Hộp quà sơn mài", Origin: "Bát Tràng, Việt Nam",
	},
	{
		ID: 3, Name: "Chén tống thủy tinh borosilicate", Slug: "chen-tong-thuy-tinh",
		SKU: "INC-CUP-003", Price: 380000, OriginalPrice: 450000,
		Image: "/images/products/chen-tong.jpg", Rating: 4.7, Reviews: 214,
		Category: models.CategoryCups, Badge: models.BadgeSale, InStock: true,
		Capacity: "150ml", Material: "Thủy tinh chịu nhiệt",
	},
	{
		ID: 4, Name: "Khay trà tre ép khắc chữ Phúc", Slug: "khay-tra-tre-chu-phuc",
		SKU: "INC-TRAY-004", Price: 650000,
		Image: "/images/products/khay-tre.jpg", Rating: 4.6, Reviews: 59,
		Category: models.CategoryTrays, InStock: true,
		Material: "Tre ép tự nhiên", Dimensions: &models.ProductDimensions{TotalLength: "45cm"},
	},
	{
		ID: 5, Name: "Bộ quà Tết An Khang", Slug: "bo-qua-tet-an-khang",
		SKU: "INC-GIFT-005", Price: 2500000, OriginalPrice: 2890000,
		Image: "/images/products/qua-tet-an-khang.jpg", Rating: 5.0, Reviews: 42,
		Category: models.CategoryGiftSets, Badge: models.BadgeLimited, InStock: true,
		Description: "Hộp quà Tết gồm ấm chén men lam và trà shan tuyết cổ thụ 100g.",
		SetIncludes: "1 ấm, 4 chén, 1 hộp trà", Packaging: "Hộp quà đỏ ánh kim",
		Origin: "Bát Tràng, Việt Nam",
	},
	{
		ID: 6, Name: "Chén khải sứ trắng vẽ lam", Slug: "chen-khai-su-trang-ve-lam",
		SKU: "INC-CUP-006", Price: 520000,
		Image: "/images/products/chen-khai.jpg", Rating: 4.5, Reviews: 37,
		Category: models.CategoryCups, Badge: models.BadgeNew, InStock: true,
		Capacity: "180ml", Material: "Sứ trắng ngà",
		Dimensions: &models.ProductDimensions{CupHeight: "7cm", SaucerDiameter: "11cm"},
	},
	{
		ID: 7, Name: "Thìa trà gỗ mun bộ 6 chiếc", Slug: "thia-tra-go-mun",
		SKU: "INC-ACC-007", Price: 240000,
		Image: "/images/products/thia-go-mun.jpg", Rating: 4.4, Reviews: 95,
		Category: models.CategoryAccessories, InStock: true, Material: "Gỗ mun",
	},
	{
		ID: 8, Name: "Bát đĩa men ngọc bộ ăn 4 người", Slug: "bat-dia-men-ngoc",
		SKU: "INC-DISH-008", Price: 1750000,
		Image: "/images/products/bat-dia-men-ngoc.jpg", Rating: 4.8, Reviews: 23,
		Category: models.CategoryDishes, Badge: models.BadgeExclusive, InStock: false,
		SetIncludes: "4 bát, 4 đĩa, 4 chén chấm", Material: "Sứ men ngọc",
	},
	{
		ID: 9, Name: "Dao dĩa inox mạ vàng hộp 12 món", Slug: "dao-dia-inox-ma-vang",
		SKU: "INC-CUT-009", Price: 980000, OriginalPrice: 1150000,
		Image: "/images/products/dao-dia-ma-vang.jpg", Rating: 4.3, Reviews: 18,
		Category: models.CategoryCutlery, InStock: true, Material: "Inox 304 mạ PVD",
	},
	{
		ID: 10, Name: "Ấm thủy tinh lọc trà hoa", Slug: "am-thuy-tinh-loc-tra-hoa",
		SKU: "INC-TP-010", Price: 720000,
		Image: "/images/products/am-thuy-tinh.jpg", Rating: 4.6, Reviews: 151,
		Category: models.CategoryTeapots, InStock: true,
		Capacity: "800ml", Material: "Thủy tinh chịu nhiệt",
	},
}

// All trả về toàn bộ danh mục.
func All() []models.Product {
	return products
}

// ByID tìm sản phẩm theo id.
func ByID(id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// BySlug tìm sản phẩm theo slug.
func BySlug(slug string) (models.Product, bool) {
	for _, p := range products {
		if p.Slug == slug {
			return p, true
		}
	}
	return models.Product{}, false
}

// ByCategory lọc sản phẩm theo danh mục.
func ByCategory(category models.ProductCategory) []models.Product {
	var out []models.Product
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

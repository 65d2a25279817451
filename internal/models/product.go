package models

// ProductCategory phân loại sản phẩm trong catalog.
type ProductCategory string

const (
	CategoryTeapots     ProductCategory = "teapots"     // Ấm trà
	CategorySets        ProductCategory = "sets"        // Bộ sản phẩm
	CategoryCups        ProductCategory = "cups"        // Chén/Tách
	CategoryTrays       ProductCategory = "trays"       // Khay
	CategoryAccessories ProductCategory = "accessories" // Phụ kiện
	CategoryDishes      ProductCategory = "dishes"      // Bát đĩa
	CategoryCutlery     ProductCategory = "cutlery"     // Dao dĩa
	CategoryGiftSets    ProductCategory = "gift-sets"   // Quà tặng Tết
)

// ProductBadge là nhãn khuyến mãi hiển thị trên sản phẩm.
type ProductBadge string

const (
	BadgeBestSeller ProductBadge = "Best Seller"
	BadgeLimited    ProductBadge = "Limited"
	BadgeNew        ProductBadge = "New"
	BadgePremium    ProductBadge = "Premium"
	BadgeExclusive  ProductBadge = "Exclusive"
	BadgeSale       ProductBadge = "Sale"
)

// Product là một sản phẩm trong catalog. Dữ liệu tĩnh, không thay đổi
// lúc runtime. Giá tính bằng VND.
type Product struct {
	ID            int                `json:"id"`
	Name          string             `json:"name"`
	Slug          string             `json:"slug"`
	SKU           string             `json:"sku,omitempty"`
	Price         int64              `json:"price"`
	OriginalPrice int64              `json:"originalPrice,omitempty"`
	Image         string             `json:"image"`
	Images        []string           `json:"images,omitempty"`
	Rating        float64            `json:"rating"`
	Reviews       int                `json:"reviews"`
	Category      ProductCategory    `json:"category"`
	Badge         ProductBadge       `json:"badge,omitempty"`
	InStock       bool               `json:"inStock"`
	Description   string             `json:"description,omitempty"`
	Capacity      string             `json:"capacity,omitempty"`
	SetIncludes   string             `json:"setIncludes,omitempty"`
	Dimensions    *ProductDimensions `json:"dimensions,omitempty"`
	Material      string             `json:"material,omitempty"`
	Packaging     string             `json:"packaging,omitempty"`
	Origin        string             `json:"origin,omitempty"`
}

type ProductDimensions struct {
	TotalLength    string `json:"totalLength,omitempty"`
	TeapotDiameter string `json:"teapotDiameter,omitempty"`
	SaucerDiameter string `json:"saucerDiameter,omitempty"`
	TeapotHeight   string `json:"teapotHeight,omitempty"`
	CupHeight      string `json:"cupHeight,omitempty"`
}

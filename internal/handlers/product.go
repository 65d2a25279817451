package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"incanto_back_end/internal/catalog"
	"incanto_back_end/internal/models"
)

// ListProducts trả về danh mục sản phẩm, lọc theo ?category= nếu có.
func (a *API) ListProducts(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		products := catalog.ByCategory(models.ProductCategory(category))
		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"products": products})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": catalog.All()})
}

// GetProduct tìm sản phẩm theo slug.
func (a *API) GetProduct(c *gin.Context) {
	product, ok := catalog.BySlug(c.Param("slug"))
	if !ok {
		abortJSON(c, http.StatusNotFound, "Không tìm thấy sản phẩm")
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"incanto_back_end/internal/catalog"
)

// GetCart trả về giỏ của phiên hiện tại kèm các tổng dẫn xuất.
func (a *API) GetCart(c *gin.Context) {
	store := a.cartStore(c)
	c.JSON(http.StatusOK, store.Snapshot())
}

// AddToCart thêm sản phẩm vào giỏ; sản phẩm đã có thì cộng dồn số lượng.
func (a *API) AddToCart(c *gin.Context) {
	var input struct {
		ProductID int `json:"productId"`
		Quantity  int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		abortJSON(c, http.StatusBadRequest, "Dữ liệu không hợp lệ")
		return
	}

	product, ok := catalog.ByID(input.ProductID)
	if !ok {
		abortJSON(c, http.StatusNotFound, "Không tìm thấy sản phẩm")
		return
	}

	store := a.cartStore(c)
	store.AddItem(c.Request.Context(), product, input.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"message": "Đã thêm sản phẩm vào giỏ hàng",
		"cart":    store.Snapshot(),
	})
}

// UpdateCartItem đặt lại số lượng một dòng hàng. Số lượng dưới 1 bị bỏ
// qua — xoá dòng phải gọi DELETE.
func (a *API) UpdateCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortJSON(c, http.StatusBadRequest, "ID sản phẩm không hợp lệ")
		return
	}

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		abortJSON(c, http.StatusBadRequest, "Dữ liệu không hợp lệ")
		return
	}

	store := a.cartStore(c)
	store.UpdateQuantity(c.Request.Context(), id, input.Quantity)

	c.JSON(http.StatusOK, gin.H{"cart": store.Snapshot()})
}

// RemoveFromCart xoá một dòng hàng; không có thì bỏ qua.
func (a *API) RemoveFromCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortJSON(c, http.StatusBadRequest, "ID sản phẩm không hợp lệ")
		return
	}

	store := a.cartStore(c)
	store.RemoveItem(c.Request.Context(), id)

	c.JSON(http.StatusOK, gin.H{
		"message": "Đã xoá sản phẩm khỏi giỏ hàng",
		"cart":    store.Snapshot(),
	})
}

// ClearCart xoá sạch giỏ của phiên hiện tại.
func (a *API) ClearCart(c *gin.Context) {
	store := a.cartStore(c)
	store.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "Đã xoá toàn bộ giỏ hàng"})
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"incanto_back_end/internal/models"
	"incanto_back_end/internal/orders"
)

// CreateOrder nhận bản ghi đơn hàng từ checkout và ghi nhận nó. Chuyển
// tiếp Google Sheet là best-effort — đơn vẫn thành công dù Sheet lỗi.
func (a *API) CreateOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		abortJSON(c, http.StatusBadRequest, "Dữ liệu đơn hàng không hợp lệ")
		return
	}

	if err := a.Orders.Notify(c.Request.Context(), order); err != nil {
		if errors.Is(err, orders.ErrMissingContact) {
			abortJSON(c, http.StatusBadRequest, err.Error())
			return
		}
		abortJSON(c, http.StatusInternalServerError, "Không thể xử lý đơn hàng")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Đơn hàng đã được tạo thành công",
		"orderId": order.OrderID,
	})
}

// Package handlers chứa toàn bộ HTTP handler của storefront. API được
// dựng tường minh ở main với các phụ thuộc truyền vào, không dùng
// singleton ngầm.
package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"incanto_back_end/internal/cart"
	"incanto_back_end/internal/orders"
)

const (
	sessionName = "incanto_session"
	cartIDKey   = "cart_id"
)

type API struct {
	CartStorage cart.Storage
	Orders      *orders.Service
	Sessions    *sessions.CookieStore
}

func New(cartStorage cart.Storage, orderService *orders.Service, sessionStore *sessions.CookieStore) *API {
	return &API{
		CartStorage: cartStorage,
		Orders:      orderService,
		Sessions:    sessionStore,
	}
}

// cartID lấy id giỏ hàng từ cookie phiên khách, cấp mới nếu chưa có.
// Cookie hỏng thì gorilla/sessions trả session mới — khách đó bắt đầu
// với giỏ rỗng thay vì lỗi.
func (a *API) cartID(c *gin.Context) string {
	session, _ := a.Sessions.Get(c.Request, sessionName)

	if id, ok := session.Values[cartIDKey].(string); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	session.Values[cartIDKey] = id
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("⚠️ Không lưu được session cookie: %v", err)
	}
	return id
}

// cartStore dựng Store cho giỏ của phiên hiện tại.
func (a *API) cartStore(c *gin.Context) *cart.Store {
	return cart.NewStore(c.Request.Context(), a.cartID(c), a.CartStorage)
}

func abortJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"incanto_back_end/internal/handlers"
	"incanto_back_end/internal/models"
	"incanto_back_end/internal/orders"
	"incanto_back_end/internal/routes"
)

// memStorage thay Redis trong test.
type memStorage struct {
	blobs map[string][]models.CartItem
}

func (m *memStorage) Load(_ context.Context, cartID string) []models.CartItem {
	items := m.blobs[cartID]
	if items == nil {
		return []models.CartItem{}
	}
	return items
}

func (m *memStorage) Save(_ context.Context, cartID string, items []models.CartItem) error {
	m.blobs[cartID] = items
	return nil
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	api := handlers.New(
		&memStorage{blobs: map[string][]models.CartItem{}},
		orders.NewService(""),
		sessions.NewCookieStore([]byte("test-secret")),
	)

	r := gin.New()
	routes.RegisterRoutes(r, api)
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestListProducts(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/products", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.NotEmpty(t, body["products"])

	w = doJSON(r, http.MethodGet, "/api/products?category=teapots", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetProduct(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodGet, "/api/products/am-tra-tu-sa-nghi-hung", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/products/khong-ton-tai", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartLifecycle(t *testing.T) {
	r := setupRouter(t)

	// thêm sản phẩm — lấy cookie phiên từ response đầu tiên
	w := doJSON(r, http.MethodPost, "/api/cart/add", gin.H{"productId": 1, "quantity": 2}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies, "request đầu phải cấp cookie phiên")

	// cùng sản phẩm: cộng dồn số lượng
	w = doJSON(r, http.MethodPost, "/api/cart/add", gin.H{"productId": 1, "quantity": 1}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/cart", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["itemCount"])

	items := body["items"].([]interface{})
	require.Len(t, items, 1, "cùng product id phải là một dòng")

	// cập nhật số lượng
	w = doJSON(r, http.MethodPatch, "/api/cart/items/1", gin.H{"quantity": 5}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	// số lượng 0 bị bỏ qua
	w = doJSON(r, http.MethodPatch, "/api/cart/items/1", gin.H{"quantity": 0}, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/cart", nil, cookies)
	body = decodeBody(t, w)
	assert.Equal(t, float64(5), body["itemCount"])

	// xoá dòng hàng
	w = doJSON(r, http.MethodDelete, "/api/cart/items/1", nil, cookies)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/cart", nil, cookies)
	body = decodeBody(t, w)
	assert.Equal(t, float64(0), body["itemCount"])
}

func TestAddToCartUnknownProduct(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/cart/add", gin.H{"productId": 99999, "quantity": 1}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrderValidation(t *testing.T) {
	r := setupRouter(t)

	// thiếu họ tên
	w := doJSON(r, http.MethodPost, "/api/orders", gin.H{"orderId": "INCANTO-1", "phone": "0912345678"}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Contains(t, body["error"], "Họ tên")

	// thiếu số điện thoại
	w = doJSON(r, http.MethodPost, "/api/orders", gin.H{"orderId": "INCANTO-1", "customerName": "Nguyễn Văn A"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOrderSuccess(t *testing.T) {
	r := setupRouter(t)

	order := gin.H{
		"timestamp":     "2026-01-15T10:00:00Z",
		"orderId":       "INCANTO-1700000000000",
		"customerName":  "Nguyễn Văn A",
		"phone":         "0912345678",
		"email":         "a@example.com",
		"items":         "Ấm trà Tử Sa x2",
		"total":         2000000,
		"paymentMethod": "SePay VietQR",
	}

	w := doJSON(r, http.MethodPost, "/api/orders", order, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "INCANTO-1700000000000", body["orderId"])
	assert.NotEmpty(t, body["message"])
}

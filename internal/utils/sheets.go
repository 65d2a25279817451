package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"incanto_back_end/internal/models"
)

const sheetForwardTimeout = 10 * time.Second

// ForwardOrderToSheet đẩy bản ghi đơn hàng sang webhook Google Apps
// Script. Chạy như tác vụ tách rời với context riêng — thất bại chỉ
// được log, không bao giờ chặn response trả đơn hàng.
func ForwardOrderToSheet(webhookURL string, order models.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), sheetForwardTimeout)
	defer cancel()

	body, err := json.Marshal(order)
	if err != nil {
		log.Printf("❌ Không serialize được đơn %s cho Google Sheet: %v", order.OrderID, err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		log.Printf("❌ Không tạo được request Google Sheet: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Printf("❌ Không gửi được đơn %s sang Google Sheet: %v", order.OrderID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("❌ Google Sheet trả lỗi cho đơn %s: %d %s", order.OrderID, resp.StatusCode, msg)
		return
	}

	log.Printf("📋 Đã ghi đơn %s vào Google Sheet", order.OrderID)
}

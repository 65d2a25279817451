package config

import (
	"fmt"
	"os"
	"strings"
)

// WebhookSecretPlaceholder là giá trị mẫu trong .env.example. Khi secret
// còn là placeholder thì webhook bỏ qua bước xác minh chữ ký (dev local).
const WebhookSecretPlaceholder = "your_webhook_secret_here"

type SepayConfig struct {
	Env           string // "sandbox" hoặc "production"
	MerchantID    string
	SecretKey     string
	WebhookSecret string
}

func GetSepayConfig() SepayConfig {
	return SepayConfig{
		Env:           os.Getenv("SEPAY_ENV"),
		MerchantID:    os.Getenv("SEPAY_MERCHANT_ID"),
		SecretKey:     os.Getenv("SEPAY_SECRET_KEY"),
		WebhookSecret: os.Getenv("SEPAY_WEBHOOK_SECRET"),
	}
}

// ValidateSepayConfig kiểm tra đủ biến môi trường SePay. Thiếu biến nào
// thì trả lỗi liệt kê đúng biến đó.
func ValidateSepayConfig() (SepayConfig, error) {
	cfg := GetSepayConfig()

	var missing []string
	if cfg.Env == "" {
		missing = append(missing, "SEPAY_ENV")
	}
	if cfg.MerchantID == "" {
		missing = append(missing, "SEPAY_MERCHANT_ID")
	}
	if cfg.SecretKey == "" {
		missing = append(missing, "SEPAY_SECRET_KEY")
	}
	if cfg.WebhookSecret == "" {
		missing = append(missing, "SEPAY_WEBHOOK_SECRET")
	}
	if len(missing) > 0 {
		return SepayConfig{}, fmt.Errorf("thiếu cấu hình SePay: %s", strings.Join(missing, ", "))
	}

	if cfg.Env != "sandbox" && cfg.Env != "production" {
		return SepayConfig{}, fmt.Errorf("SEPAY_ENV không hợp lệ: %q (phải là 'sandbox' hoặc 'production')", cfg.Env)
	}

	return cfg, nil
}

// IsSepayConfigured cho biết cổng thanh toán đã sẵn sàng chưa. Thiếu cấu
// hình thì gateway báo "chưa cấu hình" chứ không làm sập ứng dụng.
func IsSepayConfigured() bool {
	_, err := ValidateSepayConfig()
	return err == nil
}

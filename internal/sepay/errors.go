package sepay

// Mã lỗi ổn định của adapter. Handler dựa vào code để map sang HTTP status.
const (
	ErrInvalidCredentials        = "invalid_credentials"
	ErrPaymentFailed             = "payment_failed"
	ErrNetworkError              = "network_error"
	ErrValidationError           = "validation_error"
	ErrWebhookVerificationFailed = "webhook_verification_failed"
	ErrTransactionNotFound       = "transaction_not_found"
	ErrInsufficientBalance       = "insufficient_balance"
	ErrBankTransferFailed        = "bank_transfer_failed"
	ErrQRCodeGenerationFailed    = "qr_code_generation_failed"
)

// Error là lỗi cục bộ của adapter: message cho người dùng, code cho máy,
// StatusCode (tùy chọn) gợi ý HTTP status ở boundary.
type Error struct {
	Message    string
	Code       string
	StatusCode int
}

func (e *Error) Error() string {
	return e.Message
}

func newError(message, code string) *Error {
	return &Error{Message: message, Code: code}
}

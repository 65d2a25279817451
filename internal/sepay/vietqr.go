package sepay

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/skip2/go-qrcode"
)

// Payload VietQR theo EMVCo Merchant Presented Mode, dịch vụ chuyển
// nhanh NAPAS tới tài khoản (QRIBFTTA).
const (
	napasAID       = "A000000727"
	vietQRService  = "QRIBFTTA"
	currencyVND    = "704"
	countryVietnam = "VN"
)

func tlv(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

// BuildVietQRPayload dựng chuỗi EMVCo cho QR chuyển khoản: BIN ngân hàng,
// số tài khoản, số tiền và nội dung (mã đơn hàng). CRC-16/CCITT-FALSE
// là trường cuối.
func BuildVietQRPayload(bankBIN, accountNumber string, amount int64, memo string) string {
	beneficiary := tlv("00", bankBIN) + tlv("01", accountNumber)
	merchantInfo := tlv("00", napasAID) + tlv("01", beneficiary) + tlv("02", vietQRService)

	payload := tlv("00", "01") // phiên bản
	payload += tlv("01", "12") // QR động (một lần, có số tiền)
	payload += tlv("38", merchantInfo)
	payload += tlv("53", currencyVND)
	if amount > 0 {
		payload += tlv("54", strconv.FormatInt(amount, 10))
	}
	payload += tlv("58", countryVietnam)
	if memo != "" {
		payload += tlv("62", tlv("08", memo))
	}

	payload += "6304"
	return payload + crc16(payload)
}

// crc16 tính CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF) theo yêu cầu
// của EMVCo, trả về 4 ký tự hex viết hoa.
func crc16(s string) string {
	crc := uint16(0xFFFF)
	for _, b := range []byte(s) {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return fmt.Sprintf("%04X", crc)
}

// GenerateVietQR mã hóa payload thành PNG và trả về data URI base64
// nhúng thẳng vào thẻ <img>.
func GenerateVietQR(bankBIN, accountNumber string, amount int64, memo string) (string, error) {
	payload := BuildVietQRPayload(bankBIN, accountNumber, amount, memo)

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", newError("Không tạo được mã QR thanh toán", ErrQRCodeGenerationFailed)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

package cart

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"incanto_back_end/internal/models"
)

const (
	keyPrefix  = "cart:"
	storageTTL = 30 * 24 * time.Hour
)

// Storage lưu trữ bền vững danh sách dòng hàng theo cart id.
type Storage interface {
	Load(ctx context.Context, cartID string) []models.CartItem
	Save(ctx context.Context, cartID string, items []models.CartItem) error
}

// RedisStorage lưu giỏ hàng thành một blob JSON dưới khóa cart:<id>.
type RedisStorage struct {
	client *redis.Client
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

// Load đọc giỏ đã lưu. Khóa không tồn tại hoặc dữ liệu hỏng đều trả về
// giỏ rỗng — lỗi parse được nuốt, không nổi lên cho caller.
func (s *RedisStorage) Load(ctx context.Context, cartID string) []models.CartItem {
	data, err := s.client.Get(ctx, keyPrefix+cartID).Result()
	if err != nil {
		return []models.CartItem{}
	}
	return decodeItems(data)
}

// decodeItems parse blob giỏ hàng đã lưu; dữ liệu rỗng hoặc hỏng cho ra
// giỏ rỗng thay vì lỗi.
func decodeItems(data string) []models.CartItem {
	if data == "" {
		return []models.CartItem{}
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return []models.CartItem{}
	}
	return items
}

// Save ghi lại toàn bộ danh sách dòng hàng sau mỗi lần thay đổi.
func (s *RedisStorage) Save(ctx context.Context, cartID string, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+cartID, data, storageTTL).Err()
}

package cart

import "incanto_back_end/internal/models"

// Action là một biến thể lệnh tác động lên giỏ hàng. Mỗi action là một
// chuyển trạng thái nguyên tử — reduce nhận danh sách dòng hàng hiện tại
// và trả về danh sách mới, không sửa tại chỗ.
type Action interface{ isAction() }

type loadAction struct{ items []models.CartItem }

type addAction struct{ item models.CartItem }

type removeAction struct{ id int }

type updateQuantityAction struct {
	id       int
	quantity int
}

type clearAction struct{}

func (loadAction) isAction()           {}
func (addAction) isAction()            {}
func (removeAction) isAction()         {}
func (updateQuantityAction) isAction() {}
func (clearAction) isAction()          {}

// reduce áp dụng một action lên danh sách dòng hàng. Thuần túy, không
// side effect.
func reduce(items []models.CartItem, action Action) []models.CartItem {
	switch a := action.(type) {
	case loadAction:
		return a.items

	case addAction:
		for i := range items {
			if items[i].ID == a.item.ID {
				next := make([]models.CartItem, len(items))
				copy(next, items)
				next[i].Quantity += a.item.Quantity
				return next
			}
		}
		next := make([]models.CartItem, 0, len(items)+1)
		next = append(next, items...)
		return append(next, a.item)

	case removeAction:
		next := make([]models.CartItem, 0, len(items))
		for _, item := range items {
			if item.ID != a.id {
				next = append(next, item)
			}
		}
		return next

	case updateQuantityAction:
		// Số lượng dưới 1 bị bỏ qua: xoá dòng hàng phải đi qua removeAction.
		if a.quantity < 1 {
			return items
		}
		next := make([]models.CartItem, len(items))
		copy(next, items)
		for i := range next {
			if next[i].ID == a.id {
				next[i].Quantity = a.quantity
			}
		}
		return next

	case clearAction:
		return []models.CartItem{}
	}

	return items
}

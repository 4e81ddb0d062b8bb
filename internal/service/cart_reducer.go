package service

import (
	"github.com/wahhajahmed/KarachiSofas/internal/models"
)

// CartCommandKind 购物车命令类型
type CartCommandKind string

const (
	CartCommandAdd      CartCommandKind = "add"
	CartCommandIncrease CartCommandKind = "increase"
	CartCommandDecrease CartCommandKind = "decrease"
	CartCommandRemove   CartCommandKind = "remove"
	CartCommandClear    CartCommandKind = "clear"
	CartCommandHydrate  CartCommandKind = "hydrate"
)

// CartLine 购物车视图中的一行
type CartLine struct {
	ProductID uint         `json:"product_id"`
	Name      string       `json:"name"`
	Price     models.Money `json:"price"`
	Image     string       `json:"image"`
	Quantity  int          `json:"quantity"`
}

// Subtotal 行小计
func (l CartLine) Subtotal() models.Money {
	return l.Price.MulInt(l.Quantity)
}

// CartState 购物车投影状态（行按加入顺序排列）
type CartState struct {
	Lines []CartLine `json:"lines"`
}

// CartCommand 购物车状态变更命令
type CartCommand struct {
	Kind      CartCommandKind
	ProductID uint
	Line      CartLine
	Lines     []CartLine
}

// Reduce 纯函数：根据命令计算新的购物车状态，不修改入参
func Reduce(state CartState, cmd CartCommand) CartState {
	switch cmd.Kind {
	case CartCommandAdd:
		if cmd.Line.ProductID == 0 || state.indexOf(cmd.Line.ProductID) >= 0 {
			return state.clone()
		}
		next := state.clone()
		line := cmd.Line
		if line.Quantity < 1 {
			line.Quantity = 1
		}
		next.Lines = append(next.Lines, line)
		return next
	case CartCommandIncrease:
		next := state.clone()
		if idx := next.indexOf(cmd.ProductID); idx >= 0 {
			next.Lines[idx].Quantity++
		}
		return next
	case CartCommandDecrease:
		next := state.clone()
		idx := next.indexOf(cmd.ProductID)
		if idx < 0 {
			return next
		}
		if next.Lines[idx].Quantity-1 < 1 {
			next.Lines = append(next.Lines[:idx], next.Lines[idx+1:]...)
			return next
		}
		next.Lines[idx].Quantity--
		return next
	case CartCommandRemove:
		next := state.clone()
		if idx := next.indexOf(cmd.ProductID); idx >= 0 {
			next.Lines = append(next.Lines[:idx], next.Lines[idx+1:]...)
		}
		return next
	case CartCommandClear:
		return CartState{Lines: []CartLine{}}
	case CartCommandHydrate:
		lines := make([]CartLine, 0, len(cmd.Lines))
		for _, line := range cmd.Lines {
			if line.ProductID == 0 || line.Quantity < 1 {
				continue
			}
			lines = append(lines, line)
		}
		return CartState{Lines: lines}
	default:
		return state.clone()
	}
}

// Subtotal 购物车小计
func (s CartState) Subtotal() models.Money {
	total := models.NewMoneyFromInt(0)
	for _, line := range s.Lines {
		total = total.Plus(line.Subtotal())
	}
	return total
}

// ItemCount 商品件数总和
func (s CartState) ItemCount() int {
	count := 0
	for _, line := range s.Lines {
		count += line.Quantity
	}
	return count
}

// Line 按商品查找行
func (s CartState) Line(productID uint) (CartLine, bool) {
	idx := s.indexOf(productID)
	if idx < 0 {
		return CartLine{}, false
	}
	return s.Lines[idx], true
}

func (s CartState) indexOf(productID uint) int {
	for i, line := range s.Lines {
		if line.ProductID == productID {
			return i
		}
	}
	return -1
}

func (s CartState) clone() CartState {
	lines := make([]CartLine, len(s.Lines))
	copy(lines, s.Lines)
	return CartState{Lines: lines}
}

func cartLineFromItem(item models.CartItem) CartLine {
	line := CartLine{
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}
	if item.Product != nil {
		line.Name = item.Product.Name
		line.Price = item.Product.Price
		if len(item.Product.Images) > 0 {
			line.Image = item.Product.Images[0]
		}
	}
	return line
}

func cartLineFromProduct(product *models.Product, quantity int) CartLine {
	line := CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  quantity,
	}
	if len(product.Images) > 0 {
		line.Image = product.Images[0]
	}
	return line
}

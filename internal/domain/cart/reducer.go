// internal/domain/cart/reducer.go
package cart

// Command is a cart state transition. The set of commands is closed.
type Command interface {
	isCommand()
}

// AddItem inserts Item, or replaces the line with the same product id in place
type AddItem struct {
	Item LineItem
}

// RemoveItem deletes the line for ProductID if present
type RemoveItem struct {
	ProductID string
}

// ClearCart empties the cart
type ClearCart struct{}

func (AddItem) isCommand()    {}
func (RemoveItem) isCommand() {}
func (ClearCart) isCommand()  {}

// Reduce returns the state that results from applying cmd to state.
// The input slice is never modified.
func Reduce(state []LineItem, cmd Command) []LineItem {
	switch c := cmd.(type) {
	case AddItem:
		next := make([]LineItem, 0, len(state)+1)
		replaced := false
		for _, item := range state {
			if item.ProductID == c.Item.ProductID {
				next = append(next, c.Item)
				replaced = true
				continue
			}
			next = append(next, item)
		}
		if !replaced {
			next = append(next, c.Item)
		}
		return next

	case RemoveItem:
		next := make([]LineItem, 0, len(state))
		for _, item := range state {
			if item.ProductID != c.ProductID {
				next = append(next, item)
			}
		}
		return next

	case ClearCart:
		return []LineItem{}

	default:
		return clone(state)
	}
}

func clone(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)
	return out
}

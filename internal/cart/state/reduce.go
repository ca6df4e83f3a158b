package state

import "github.com/Vehicle-Shield/storefront/internal/cart/model"

// Reduce applies a to s and returns the resulting state. It never fails:
// unknown product ids are no-ops and non-positive quantities remove the line.
// When nothing changes the input state is returned as is.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case AddItem:
		return addItem(s, a)
	case RemoveItem:
		return removeItem(s, a.ProductID)
	case UpdateQuantity:
		return updateQuantity(s, a)
	case Clear:
		return Empty()
	case Restore:
		return restore(a.Items)
	default:
		return s
	}
}

func addItem(s State, a AddItem) State {
	i := s.indexOf(a.Product.ID)
	if i < 0 {
		if a.Quantity <= 0 {
			return s
		}
		id := a.LineID
		if id == 0 {
			id = s.maxLineID() + 1
		}
		items := make([]model.Line, 0, len(s.items)+1)
		items = append(items, s.items...)
		items = append(items, model.Line{ID: id, Product: a.Product, Quantity: a.Quantity})
		return newState(items)
	}

	if a.Quantity == 0 {
		return s
	}
	return setQuantity(s, i, s.items[i].Quantity+a.Quantity)
}

func removeItem(s State, productID int64) State {
	i := s.indexOf(productID)
	if i < 0 {
		return s
	}
	items := make([]model.Line, 0, len(s.items)-1)
	items = append(items, s.items[:i]...)
	items = append(items, s.items[i+1:]...)
	return newState(items)
}

func updateQuantity(s State, a UpdateQuantity) State {
	i := s.indexOf(a.ProductID)
	if i < 0 {
		return s
	}
	if s.items[i].Quantity == a.Quantity {
		return s
	}
	return setQuantity(s, i, a.Quantity)
}

// setQuantity replaces line i's quantity, dropping the line when it is not positive.
func setQuantity(s State, i int, quantity int) State {
	if quantity <= 0 {
		return removeItem(s, s.items[i].Product.ID)
	}
	items := s.Items()
	items[i].Quantity = quantity
	return newState(items)
}

// restore keeps the first line per product, folding later duplicates into it,
// drops non-positive lines, and re-keys missing or repeated line ids.
func restore(lines []model.Line) State {
	items := make([]model.Line, 0, len(lines))
	byProduct := make(map[int64]int, len(lines))
	for _, line := range lines {
		if i, ok := byProduct[line.Product.ID]; ok {
			items[i].Quantity += line.Quantity
			continue
		}
		byProduct[line.Product.ID] = len(items)
		items = append(items, line)
	}

	kept := items[:0]
	for _, line := range items {
		if line.Quantity > 0 {
			kept = append(kept, line)
		}
	}

	var max int64
	for _, line := range kept {
		if line.ID > max {
			max = line.ID
		}
	}
	seen := make(map[int64]bool, len(kept))
	for i := range kept {
		if kept[i].ID <= 0 || seen[kept[i].ID] {
			max++
			kept[i].ID = max
		}
		seen[kept[i].ID] = true
	}
	return newState(kept)
}

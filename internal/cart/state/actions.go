package state

import "github.com/Vehicle-Shield/storefront/internal/cart/model"

// Action is one of AddItem, RemoveItem, UpdateQuantity, Clear or Restore.
type Action interface {
	isAction()
}

// AddItem adds Quantity units of Product. LineID is used only when a new
// line has to be created; zero means "next after the largest existing id".
type AddItem struct {
	Product  model.Product
	Quantity int
	LineID   int64
}

// RemoveItem drops the line for ProductID.
type RemoveItem struct {
	ProductID int64
}

// UpdateQuantity sets an absolute quantity for ProductID.
type UpdateQuantity struct {
	ProductID int64
	Quantity  int
}

// Clear empties the cart.
type Clear struct{}

// Restore replaces the cart with lines read back from storage.
type Restore struct {
	Items []model.Line
}

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (Clear) isAction()          {}
func (Restore) isAction()        {}

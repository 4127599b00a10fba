package entity

// Intent is a structured description of a requested mutation, decoupled
// from its execution. All variants target a single product, which is also
// the serialization key for in-flight sync operations.
type Intent interface {
	Product() string
	intent()
}

type AddLine struct {
	ProductID string
	Quantity  int
	UnitPrice float64
}

type RemoveLine struct {
	ProductID string
}

type SetQuantity struct {
	ProductID string
	Quantity  int
}

type AddWishlistEntry struct {
	ProductID string
}

type RemoveWishlistEntry struct {
	ProductID string
}

func (i AddLine) Product() string             { return i.ProductID }
func (i RemoveLine) Product() string          { return i.ProductID }
func (i SetQuantity) Product() string         { return i.ProductID }
func (i AddWishlistEntry) Product() string    { return i.ProductID }
func (i RemoveWishlistEntry) Product() string { return i.ProductID }

func (AddLine) intent()             {}
func (RemoveLine) intent()          {}
func (SetQuantity) intent()         {}
func (AddWishlistEntry) intent()    {}
func (RemoveWishlistEntry) intent() {}

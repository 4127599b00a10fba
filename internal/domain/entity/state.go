package entity

// State is the believed-true cart and wishlist contents held client-side.
// Line order is stable: applying a mutation never reorders existing lines.
type State struct {
	Lines    []CartLine `json:"cart"`
	Wishlist []string   `json:"wishlist"`
}

// Snapshot is an immutable copy of State captured before an optimistic
// mutation. It is owned by the in-flight mutation and discarded once that
// mutation resolves.
type Snapshot struct {
	State State
}

// Clone deep-copies the state so callers can hold it across mutations.
func (s State) Clone() State {
	out := State{}
	if s.Lines != nil {
		out.Lines = make([]CartLine, len(s.Lines))
		copy(out.Lines, s.Lines)
	}
	if s.Wishlist != nil {
		out.Wishlist = make([]string, len(s.Wishlist))
		copy(out.Wishlist, s.Wishlist)
	}
	return out
}

// Line returns the cart line for productID, if present.
func (s State) Line(productID string) (CartLine, bool) {
	for _, line := range s.Lines {
		if line.ProductID == productID {
			return line, true
		}
	}
	return CartLine{}, false
}

// InWishlist reports wishlist membership for productID.
func (s State) InWishlist(productID string) bool {
	for _, id := range s.Wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

// Apply is a pure transformation: it returns the state resulting from the
// intent plus whether anything actually changed. Malformed intents are
// normalized to the nearest valid operation rather than rejected: a
// quantity at or below zero is a removal, a non-positive add is a no-op,
// and wishlist adds are idempotent.
func (s State) Apply(in Intent) (State, bool) {
	switch v := in.(type) {
	case AddLine:
		if v.Quantity <= 0 {
			return s, false
		}
		return s.addLine(v), true
	case RemoveLine:
		return s.removeLine(v.ProductID)
	case SetQuantity:
		if v.Quantity <= 0 {
			return s.removeLine(v.ProductID)
		}
		return s.setQuantity(v.ProductID, v.Quantity)
	case AddWishlistEntry:
		if s.InWishlist(v.ProductID) {
			return s, false
		}
		next := s.Clone()
		next.Wishlist = append(next.Wishlist, v.ProductID)
		return next, true
	case RemoveWishlistEntry:
		if !s.InWishlist(v.ProductID) {
			return s, false
		}
		next := s.Clone()
		kept := next.Wishlist[:0]
		for _, id := range next.Wishlist {
			if id != v.ProductID {
				kept = append(kept, id)
			}
		}
		next.Wishlist = kept
		return next, true
	default:
		return s, false
	}
}

// addLine merges quantities into an existing line instead of inserting a
// duplicate, keeping at most one line per product.
func (s State) addLine(in AddLine) State {
	next := s.Clone()
	for i, line := range next.Lines {
		if line.ProductID == in.ProductID {
			next.Lines[i].Quantity += in.Quantity
			if in.UnitPrice > 0 {
				next.Lines[i].UnitPrice = in.UnitPrice
			}
			return next
		}
	}
	next.Lines = append(next.Lines, CartLine{
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
	})
	return next
}

func (s State) removeLine(productID string) (State, bool) {
	if _, ok := s.Line(productID); !ok {
		return s, false
	}
	next := s.Clone()
	kept := next.Lines[:0]
	for _, line := range next.Lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	next.Lines = kept
	return next, true
}

func (s State) setQuantity(productID string, quantity int) (State, bool) {
	next := s.Clone()
	for i, line := range next.Lines {
		if line.ProductID == productID {
			if line.Quantity == quantity {
				return s, false
			}
			next.Lines[i].Quantity = quantity
			return next, true
		}
	}
	// Setting a quantity on an absent line inserts it.
	next.Lines = append(next.Lines, CartLine{ProductID: productID, Quantity: quantity})
	return next, true
}

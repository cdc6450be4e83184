package catalog

// Ownership is the derived possession status of a perfume. It is never
// stored; it is folded from the event sequence on demand.
type Ownership int

const (
	Wishlist Ownership = iota
	Owned
	PreviouslyOwned
)

// String returns the display label for the ownership state.
func (o Ownership) String() string {
	switch o {
	case Owned:
		return "Owned"
	case PreviouslyOwned:
		return "Previously Owned"
	default:
		return "Wishlist"
	}
}

// DeriveOwnership folds the ordered event list into an ownership state.
// Acquisitions increment a counter, disposals decrement it; the final sign
// selects the state. An empty sequence yields Wishlist.
func DeriveOwnership(events []Event) Ownership {
	count := 0
	for _, e := range events {
		switch e.Type {
		case EventBuy:
			count++
		case EventSell:
			count--
		}
	}
	switch {
	case count > 0:
		return Owned
	case count < 0:
		return PreviouslyOwned
	default:
		return Wishlist
	}
}

// Derived bundles every event-derived value for one perfume.
type Derived struct {
	Ownership Ownership
	Tested    bool
	OnSkin    bool
	OwnedML   float64
}

// Derive computes the full derived view of a perfume from its events.
func Derive(p *Perfume) Derived {
	d := Derived{Ownership: DeriveOwnership(p.Events)}
	for _, e := range p.Events {
		switch e.Type {
		case EventSmell:
			d.Tested = true
		case EventSkin:
			d.Tested = true
			d.OnSkin = true
		}
		if e.MLDelta != nil {
			d.OwnedML += *e.MLDelta
		}
	}
	return d
}

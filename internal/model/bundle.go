package model

// BundleComponent is one stock line inside a bundle/set.
type BundleComponent struct {
	StockCode string
	Quantity  float64
}

// Bundle is a set sold under its own stock card and built from other cards.
type Bundle struct {
	Code      string
	Barcode   string
	Name      string
	Category  string
	Unit      string
	Currency  string
	Brand     string
	SalePrice float64 // VAT-inclusive set price
	Remaining float64
	Parts     []BundleComponent
}

// PartsTotal is the sum of each component's sale price times its quantity.
// Components whose code is not in cards contribute nothing.
func (b Bundle) PartsTotal(cards []StockCard) float64 {
	byCode := make(map[string]StockCard, len(cards))
	for _, c := range cards {
		byCode[c.Code] = c
	}
	var total float64
	for _, p := range b.Parts {
		if c, ok := byCode[p.StockCode]; ok {
			total += c.SalePrice * p.Quantity
		}
	}
	return Round2(total)
}

// Saving is how much cheaper the set is than buying its parts one by one.
// Negative when the set costs more.
func (b Bundle) Saving(cards []StockCard) float64 {
	return Round2(b.PartsTotal(cards) - b.SalePrice)
}

// PartCount is the total quantity of items in the set.
func (b Bundle) PartCount() float64 {
	var n float64
	for _, p := range b.Parts {
		n += p.Quantity
	}
	return n
}

// PropertyDef is a property a stock card can carry, with its allowed values.
type PropertyDef struct {
	ID     int
	Name   string
	Values []string
}

// StockProperty is a property chosen for one card and the values picked
// for it.
type StockProperty struct {
	PropertyID int
	Name       string
	Values     []string
}

// NextProperty returns the first definition not yet chosen, in definition
// order. ok is false once every property is in use.
func NextProperty(defs []PropertyDef, chosen []StockProperty) (def PropertyDef, ok bool) {
	used := make(map[int]bool, len(chosen))
	for _, c := range chosen {
		used[c.PropertyID] = true
	}
	for _, d := range defs {
		if !used[d.ID] {
			return d, true
		}
	}
	return PropertyDef{}, false
}

// Manufacturer links a stock card to a supplier's own code for it.
type Manufacturer struct {
	Customer  string
	StockName string
	Code      string
	Barcode   string
	Brand     string
}

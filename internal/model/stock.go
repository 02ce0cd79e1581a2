package model

import (
	"strings"
	"time"
)

// StockCard is one row of the stock list.
type StockCard struct {
	Code     string
	Name     string
	Category string
	Unit     string
	Quantity float64
	// SalePrice and PurchasePrice are VAT-inclusive.
	SalePrice     float64
	PurchasePrice float64
	VATRate       float64
}

// Matches reports whether the card's code, name or category contains q,
// ignoring case. An empty query matches everything.
func (c StockCard) Matches(q string) bool {
	q = strings.TrimSpace(strings.ToLower(q))
	if q == "" {
		return true
	}
	for _, f := range []string{c.Code, c.Name, c.Category} {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// FilterStock returns the cards matching q, keeping input order.
func FilterStock(cards []StockCard, q string) []StockCard {
	out := make([]StockCard, 0, len(cards))
	for _, c := range cards {
		if c.Matches(q) {
			out = append(out, c)
		}
	}
	return out
}

// Movement is one stock movement line (invoice, waybill, count, transfer).
type Movement struct {
	ID           int
	Date         time.Time
	DocumentNo   string
	DocumentType string
	Warehouse    string
	Customer     string
	StockCode    string
	StockName    string
	Unit         string
	Quantity     float64
	UnitPrice    float64
	Currency     string
	VATRate      float64
	Branch       string
	Status       string
}

// Total is quantity times unit price, before VAT.
func (m Movement) Total() float64 {
	return Round2(m.Quantity * m.UnitPrice)
}

// TotalWithVAT is Total plus VAT at the line's rate.
func (m Movement) TotalWithVAT() float64 {
	return IncludeVAT(m.Total(), m.VATRate)
}

// FilterMovements keeps movements of the given document type. An empty
// type keeps everything.
func FilterMovements(ms []Movement, docType string) []Movement {
	if docType == "" {
		return ms
	}
	out := make([]Movement, 0, len(ms))
	for _, m := range ms {
		if m.DocumentType == docType {
			out = append(out, m)
		}
	}
	return out
}

// StockUnit is a unit conversion row with its own prices. The VAT-exclusive
// prices are derived from the inclusive ones.
type StockUnit struct {
	Group        string
	Unit         string
	Ratio        float64
	PriceType    PriceType
	Value        float64
	SaleIncl     float64
	PurchaseIncl float64
	Barcode      string
}

// SaleExcl is the VAT-exclusive sale price.
func (u StockUnit) SaleExcl(rate float64) float64 {
	return ExcludeVAT(u.SaleIncl, rate)
}

// PurchaseExcl is the VAT-exclusive purchase price.
func (u StockUnit) PurchaseExcl(rate float64) float64 {
	return ExcludeVAT(u.PurchaseIncl, rate)
}

// BranchPrice overrides a stock's sale price for one branch.
type BranchPrice struct {
	Branch    string
	PriceType PriceType
	Value     float64
}

// Price derives the branch sale price from the stock's base prices.
func (b BranchPrice) Price(sale, purchase float64) float64 {
	return DerivePrice(b.PriceType, b.Value, sale, purchase)
}

// ServiceCost is a non-stock service or cost card.
type ServiceCost struct {
	Code    string
	Name    string
	Kind    string // "Hizmet" or "Masraf"
	Unit    string
	Price   float64
	VATRate float64
}

package model

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultVATRate is the KDV percentage applied when none is configured.
const DefaultVATRate = 20.0

// PriceType selects how a derived price is computed from a base price.
type PriceType string

const (
	PriceFixed             PriceType = "fixedPrice"
	PriceAddAmountSale     PriceType = "addAmountSale"
	PriceAddRateSale       PriceType = "addRateSale"
	PriceAddAmountPurchase PriceType = "addAmountPurchase"
	PriceAddRatePurchase   PriceType = "addRatePurchase"
)

// Label returns the display name of the price type.
func (p PriceType) Label() string {
	switch p {
	case PriceFixed:
		return "Sabit Fiyat"
	case PriceAddAmountSale:
		return "Tutar Ekle (Satış)"
	case PriceAddRateSale:
		return "Oran Ekle (Satış)"
	case PriceAddAmountPurchase:
		return "Tutar Ekle (Alış)"
	case PriceAddRatePurchase:
		return "Oran Ekle (Alış)"
	default:
		return string(p)
	}
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ExcludeVAT strips a VAT percentage from a VAT-inclusive amount.
func ExcludeVAT(inclusive, rate float64) float64 {
	return Round2(inclusive / (1 + rate/100))
}

// IncludeVAT adds a VAT percentage to a VAT-exclusive amount.
func IncludeVAT(exclusive, rate float64) float64 {
	return Round2(exclusive * (1 + rate/100))
}

// VATAmount is the tax portion of a VAT-inclusive amount.
func VATAmount(inclusive, rate float64) float64 {
	return Round2(inclusive - ExcludeVAT(inclusive, rate))
}

// DerivePrice applies a price type and its value to the base sale and
// purchase prices. Unknown price types return the sale price unchanged.
func DerivePrice(pt PriceType, value, sale, purchase float64) float64 {
	switch pt {
	case PriceFixed:
		return Round2(value)
	case PriceAddAmountSale:
		return Round2(sale + value)
	case PriceAddRateSale:
		return Round2(sale * (1 + value/100))
	case PriceAddAmountPurchase:
		return Round2(purchase + value)
	case PriceAddRatePurchase:
		return Round2(purchase * (1 + value/100))
	default:
		return sale
	}
}

var trPrinter = message.NewPrinter(language.Turkish)

// FormatMoney renders an amount with Turkish grouping and two decimals.
func FormatMoney(v float64) string {
	return trPrinter.Sprintf("%.2f", v)
}

// FormatQty renders a quantity with Turkish grouping and no decimals.
func FormatQty(v float64) string {
	return trPrinter.Sprintf("%.0f", v)
}

// FormatRate renders an exchange rate with four decimals.
func FormatRate(v float64) string {
	return trPrinter.Sprintf("%.4f", v)
}

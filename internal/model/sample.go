package model

import "time"

// Sample data backs the grids until a real data source is wired in.

// DocumentTypes lists the movement document types in filter order.
var DocumentTypes = []string{
	"Satış Faturası",
	"Alış Faturası",
	"Satış İrsaliyesi",
	"Alış İrsaliyesi",
	"Sayım Fazlası",
	"Sayım Eksiği",
	"Transfer",
}

// Warehouses lists the known warehouses.
var Warehouses = []string{"Ana Depo", "Yedek Depo", "Satış Depo"}

// Branches lists the branches that can carry their own prices.
var Branches = []string{
	"HAZARDAĞLI", "ATAŞEHİR", "ÇARŞI LİSE", "ÇARŞI LGS", "ÇAYDAÇIRA",
	"MARİNA", "MERKEZ", "HLT MERKEZ", "HD ŞUBE",
}

// SampleStock returns the demo stock list.
func SampleStock() []StockCard {
	return []StockCard{
		{Code: "STK001", Name: "Ürün A", Category: "Gıda", Unit: "Adet", Quantity: 1250, SalePrice: 100, PurchasePrice: 72, VATRate: 20},
		{Code: "STK002", Name: "Ürün B", Category: "Gıda", Unit: "Koli", Quantity: 84, SalePrice: 960, PurchasePrice: 700, VATRate: 20},
		{Code: "STK003", Name: "Deterjan 5L", Category: "Temizlik", Unit: "Adet", Quantity: 310, SalePrice: 249.9, PurchasePrice: 180, VATRate: 20},
		{Code: "STK004", Name: "Kağıt Havlu", Category: "Temizlik", Unit: "Koli", Quantity: 42, SalePrice: 540, PurchasePrice: 410, VATRate: 20},
		{Code: "STK005", Name: "Un 1KG", Category: "Gıda", Unit: "KG", Quantity: 5000, SalePrice: 32.5, PurchasePrice: 24, VATRate: 1},
		{Code: "STK006", Name: "Defter A4", Category: "Kırtasiye", Unit: "Adet", Quantity: 760, SalePrice: 45, PurchasePrice: 28, VATRate: 10},
		{Code: "STK007", Name: "Kalem Seti", Category: "Kırtasiye", Unit: "Adet", Quantity: 0, SalePrice: 120, PurchasePrice: 80, VATRate: 20},
	}
}

// SampleMovements returns the demo movement lines.
func SampleMovements() []Movement {
	return []Movement{
		{ID: 1, Date: time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), DocumentNo: "FT-2024-0001", DocumentType: "Satış Faturası", Warehouse: "Ana Depo", Customer: "ABC Ltd.", StockCode: "STK001", StockName: "Ürün A", Unit: "Adet", Quantity: 100, UnitPrice: 150, Currency: "TRY", VATRate: 18, Branch: "Merkez", Status: "Tamamlandı"},
		{ID: 2, Date: time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC), DocumentNo: "AF-2024-0014", DocumentType: "Alış Faturası", Warehouse: "Ana Depo", Customer: "Tedarik A.Ş.", StockCode: "STK002", StockName: "Ürün B", Unit: "Koli", Quantity: 40, UnitPrice: 700, Currency: "TRY", VATRate: 20, Branch: "Merkez", Status: "Tamamlandı"},
		{ID: 3, Date: time.Date(2024, 3, 18, 14, 10, 0, 0, time.UTC), DocumentNo: "SI-2024-0003", DocumentType: "Satış İrsaliyesi", Warehouse: "Satış Depo", Customer: "XYZ Market", StockCode: "STK003", StockName: "Deterjan 5L", Unit: "Adet", Quantity: 24, UnitPrice: 208.25, Currency: "TRY", VATRate: 20, Branch: "Şube 1", Status: "Bekliyor"},
		{ID: 4, Date: time.Date(2024, 3, 20, 17, 45, 0, 0, time.UTC), DocumentNo: "SY-2024-0001", DocumentType: "Sayım Fazlası", Warehouse: "Yedek Depo", StockCode: "STK005", StockName: "Un 1KG", Unit: "KG", Quantity: 12, UnitPrice: 24, Currency: "TRY", VATRate: 1, Branch: "Şube 2", Status: "Tamamlandı"},
		{ID: 5, Date: time.Date(2024, 3, 22, 11, 5, 0, 0, time.UTC), DocumentNo: "TR-2024-0007", DocumentType: "Transfer", Warehouse: "Ana Depo", StockCode: "STK006", StockName: "Defter A4", Unit: "Adet", Quantity: 200, UnitPrice: 28, Currency: "TRY", VATRate: 10, Branch: "Merkez", Status: "Tamamlandı"},
		{ID: 6, Date: time.Date(2024, 3, 25, 8, 20, 0, 0, time.UTC), DocumentNo: "FT-2024-0009", DocumentType: "Satış Faturası", Warehouse: "Satış Depo", Customer: "ABC Ltd.", StockCode: "STK004", StockName: "Kağıt Havlu", Unit: "Koli", Quantity: 6, UnitPrice: 450, Currency: "EUR", VATRate: 20, Branch: "Şube 1", Status: "İptal"},
	}
}

// SampleUnits returns the demo unit conversions for a stock card.
func SampleUnits() []StockUnit {
	return []StockUnit{
		{Group: "Dış Müşteri", Unit: "Adet", Ratio: 1, PriceType: PriceFixed, Value: 100, SaleIncl: 100, PurchaseIncl: 0, Barcode: "8690000000011"},
		{Group: "TOPTAN", Unit: "Koli", Ratio: 12, PriceType: PriceAddRateSale, Value: -5, SaleIncl: 1140, PurchaseIncl: 864, Barcode: "8690000000028"},
		{Group: "Özel Fiyat", Unit: "Adet", Ratio: 1, PriceType: PriceAddAmountPurchase, Value: 15, SaleIncl: 87, PurchaseIncl: 72, Barcode: "8690000000035"},
		{Group: "Taban Fiyat", Unit: "KG", Ratio: 0.5, PriceType: PriceFixed, Value: 55, SaleIncl: 55, PurchaseIncl: 36, Barcode: "8690000000042"},
	}
}

// SampleBranchPrices returns one price override row per branch.
func SampleBranchPrices() []BranchPrice {
	out := make([]BranchPrice, 0, len(Branches))
	for _, b := range Branches {
		bp := BranchPrice{Branch: b, PriceType: PriceAddRateSale}
		if b == "HAZARDAĞLI" {
			bp.Value = 10
		}
		if b == "MARİNA" {
			bp.PriceType = PriceAddAmountSale
			bp.Value = 7.5
		}
		out = append(out, bp)
	}
	return out
}

// SampleServices returns the demo services/costs list.
func SampleServices() []ServiceCost {
	return []ServiceCost{
		{Code: "HZM001", Name: "Montaj Hizmeti", Kind: "Hizmet", Unit: "Saat", Price: 750, VATRate: 20},
		{Code: "HZM002", Name: "Nakliye", Kind: "Hizmet", Unit: "Sefer", Price: 1200, VATRate: 20},
		{Code: "MSR001", Name: "Kira Gideri", Kind: "Masraf", Unit: "Ay", Price: 45000, VATRate: 20},
		{Code: "MSR002", Name: "Elektrik", Kind: "Masraf", Unit: "Ay", Price: 8200, VATRate: 20},
	}
}

// SampleBundles returns the demo bundle/set cards. Parts refer to
// SampleStock codes.
func SampleBundles() []Bundle {
	return []Bundle{
		{Code: "SET001", Barcode: "8690000001001", Name: "Temizlik Seti", Category: "Temizlik", Unit: "Set", Currency: "TRY", Brand: "Stokdesk", SalePrice: 980, Remaining: 15,
			Parts: []BundleComponent{{StockCode: "STK003", Quantity: 2}, {StockCode: "STK004", Quantity: 1}}},
		{Code: "SET002", Barcode: "8690000001002", Name: "Kırtasiye Paketi", Category: "Kırtasiye", Unit: "Paket", Currency: "TRY", Brand: "Stokdesk", SalePrice: 240, Remaining: 40,
			Parts: []BundleComponent{{StockCode: "STK006", Quantity: 3}, {StockCode: "STK007", Quantity: 1}}},
		{Code: "SET003", Barcode: "8690000001003", Name: "Kahvaltı Kolisi", Category: "Gıda", Unit: "Koli", Currency: "TRY", Brand: "Stokdesk", SalePrice: 340, Remaining: 8,
			Parts: []BundleComponent{{StockCode: "STK001", Quantity: 2}, {StockCode: "STK005", Quantity: 5}}},
	}
}

// PropertyDefs lists the properties a stock card can be given.
var PropertyDefs = []PropertyDef{
	{ID: 1, Name: "Renk", Values: []string{"Kırmızı", "Mavi", "Yeşil", "Siyah", "Beyaz"}},
	{ID: 2, Name: "Beden", Values: []string{"S", "M", "L", "XL", "XXL"}},
	{ID: 3, Name: "Materyal", Values: []string{"Pamuk", "Polyester", "Yün", "Keten"}},
}

// SampleProperties returns the properties already chosen for the demo card.
func SampleProperties() []StockProperty {
	return []StockProperty{
		{PropertyID: 1, Name: "Renk", Values: []string{"Kırmızı", "Mavi"}},
	}
}

// SampleManufacturers returns the demo card's manufacturer codes.
func SampleManufacturers() []Manufacturer {
	return []Manufacturer{
		{Customer: "Tedarik A.Ş.", StockName: "Product A", Code: "TA-1001", Barcode: "4000000000017", Brand: "Tedarik"},
		{Customer: "ABC Ltd.", StockName: "A Ürünü", Code: "ABC-77", Barcode: "", Brand: "ABC"},
	}
}

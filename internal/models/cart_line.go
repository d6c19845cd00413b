package models

// CartProductLine is a single-product cart line. The unit price is
// captured when the line is added so the cart totals do not drift when
// the catalog changes underneath it.
type CartProductLine struct {
	ProductID uint   `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice Money  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
}

// CartBundleLine is a bundle cart line. The price is carried as the
// catalog display string and parsed only when a total is needed.
type CartBundleLine struct {
	BundleID uint   `json:"bundle_id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
}

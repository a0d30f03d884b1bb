package model

// CustomerID is an opaque customer identifier supplied at extraction time.
// It encodes as the bare integer.
type CustomerID uint64

// GroceryItem is the uniform record every stand item is normalised into.
// Field order is the document order.
type GroceryItem struct {
	Description        string       `json:"description" yaml:"description"`
	CustomerID         CustomerID   `json:"customer_id" yaml:"customer_id"`
	PriceInCents       uint64       `json:"price_in_cents" yaml:"price_in_cents"`
	Calories           float64      `json:"calories" yaml:"calories"`
	GramsProtein       float64      `json:"grams_protein" yaml:"grams_protein"`
	GramsCarbs         float64      `json:"grams_carbs" yaml:"grams_carbs"`
	GramsFat           float64      `json:"grams_fat" yaml:"grams_fat"`
	GramsAlcohol       float64      `json:"grams_alcohol" yaml:"grams_alcohol"`
	MeatStatus         MeatStatus   `json:"meat_status" yaml:"meat_status"`
	Halal              bool         `json:"halal" yaml:"halal"`
	Kosher             bool         `json:"kosher" yaml:"kosher"`
	MarketSpecificData SpecificData `json:"market_specific_data" yaml:"market_specific_data"`
}

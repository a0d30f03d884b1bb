package market

import (
	"farmers-market/internal/model"
)

// Item defines the readable surface every marketable item provides.
// D is the item kind's own vendor-specific payload type.
type Item[D any] interface {
	// ReadDescription returns the item's display text.
	ReadDescription() (string, error)

	// ReadPriceInCents returns the item's price.
	ReadPriceInCents() (uint64, error)

	ReadCalories() (float64, error)
	ReadGramsProtein() (float64, error)
	ReadGramsCarbs() (float64, error)
	ReadGramsFat() (float64, error)
	ReadGramsAlcohol() (float64, error)

	// ReadMeatStatus returns the animal-product classification.
	ReadMeatStatus() (model.MeatStatus, error)

	ReadHalal() (bool, error)
	ReadKosher() (bool, error)

	// ReadMarketSpecificData returns the vendor payload. It must be
	// encodable by encoding/json and gopkg.in/yaml.v3.
	ReadMarketSpecificData() (D, error)
}

// Stand produces items of kind I, whose payload type is D.
// A stand cannot fail; read failures surface through the item.
type Stand[I Item[D], D any] interface {
	GetItem() I
}

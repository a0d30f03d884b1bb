package stand

import (
	"farmers-market/internal/market"
	"farmers-market/internal/model"
)

// BaconData is the butcher stand's payload.
type BaconData struct {
	FarmOfOrigin     string `json:"farm_of_origin" yaml:"farm_of_origin"`
	BreakfastsServed uint32 `json:"breakfasts_served" yaml:"breakfasts_served"`
}

// BaconStand sells bacon.
type BaconStand struct{}

// BaconItem is a single pack of bacon.
type BaconItem struct{}

var (
	_ market.Stand[BaconItem, BaconData] = BaconStand{}
	_ market.Item[BaconData]             = BaconItem{}
)

func (BaconStand) GetItem() BaconItem {
	return BaconItem{}
}

func (BaconItem) ReadDescription() (string, error) { return "Bacon", nil }
func (BaconItem) ReadPriceInCents() (uint64, error) { return 3000, nil }
func (BaconItem) ReadCalories() (float64, error) { return 10.0, nil }
func (BaconItem) ReadGramsProtein() (float64, error) { return 10.0, nil }
func (BaconItem) ReadGramsCarbs() (float64, error) { return 10.0, nil }
func (BaconItem) ReadGramsFat() (float64, error) { return 10.0, nil }
func (BaconItem) ReadGramsAlcohol() (float64, error) { return 10.0, nil }
func (BaconItem) ReadMeatStatus() (model.MeatStatus, error) { return model.Meat, nil }
func (BaconItem) ReadHalal() (bool, error) { return false, nil }
func (BaconItem) ReadKosher() (bool, error) { return false, nil }

func (BaconItem) ReadMarketSpecificData() (BaconData, error) {
	return BaconData{
		FarmOfOrigin:     "Stolzfus and Sons",
		BreakfastsServed: 15,
	}, nil
}

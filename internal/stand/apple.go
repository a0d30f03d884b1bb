package stand

import (
	"farmers-market/internal/market"
	"farmers-market/internal/model"
)

// AppleData is the orchard stand's payload.
type AppleData struct {
	Variety         string `json:"variety" yaml:"variety"`
	DoctorsKeptAway uint32 `json:"doctors_kept_away" yaml:"doctors_kept_away"`
}

// AppleStand sells Gala apples.
type AppleStand struct{}

// AppleItem is a single bag of apples.
type AppleItem struct{}

var (
	_ market.Stand[AppleItem, AppleData] = AppleStand{}
	_ market.Item[AppleData]             = AppleItem{}
)

func (AppleStand) GetItem() AppleItem {
	return AppleItem{}
}

func (AppleItem) ReadDescription() (string, error) { return "Apples", nil }
func (AppleItem) ReadPriceInCents() (uint64, error) { return 3, nil }
func (AppleItem) ReadCalories() (float64, error) { return 10.0, nil }
func (AppleItem) ReadGramsProtein() (float64, error) { return 10.0, nil }
func (AppleItem) ReadGramsCarbs() (float64, error) { return 10.0, nil }
func (AppleItem) ReadGramsFat() (float64, error) { return 10.0, nil }
func (AppleItem) ReadGramsAlcohol() (float64, error) { return 10.0, nil }
func (AppleItem) ReadMeatStatus() (model.MeatStatus, error) { return model.Veg, nil }
func (AppleItem) ReadHalal() (bool, error) { return true, nil }
func (AppleItem) ReadKosher() (bool, error) { return true, nil }

func (AppleItem) ReadMarketSpecificData() (AppleData, error) {
	return AppleData{
		Variety:         "Gala",
		DoctorsKeptAway: 30,
	}, nil
}

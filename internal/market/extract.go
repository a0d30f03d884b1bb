package market

import (
	"fmt"

	"farmers-market/internal/model"
)

// ReadError reports which accessor failed during extraction.
type ReadError struct {
	Field string
	Err   error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Field, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Is lets every read failure match model.ErrReadFailed.
func (e *ReadError) Is(target error) bool {
	return target == model.ErrReadFailed
}

// Extract reads every field of item, in document order, and assembles a
// GroceryItem for customerID. The first failing read aborts extraction and
// no record is returned.
func Extract[D any](customerID model.CustomerID, item Item[D]) (*model.GroceryItem, error) {
	description, err := item.ReadDescription()
	if err != nil {
		return nil, &ReadError{Field: "description", Err: err}
	}

	price, err := item.ReadPriceInCents()
	if err != nil {
		return nil, &ReadError{Field: "price_in_cents", Err: err}
	}

	calories, err := item.ReadCalories()
	if err != nil {
		return nil, &ReadError{Field: "calories", Err: err}
	}

	protein, err := item.ReadGramsProtein()
	if err != nil {
		return nil, &ReadError{Field: "grams_protein", Err: err}
	}

	carbs, err := item.ReadGramsCarbs()
	if err != nil {
		return nil, &ReadError{Field: "grams_carbs", Err: err}
	}

	fat, err := item.ReadGramsFat()
	if err != nil {
		return nil, &ReadError{Field: "grams_fat", Err: err}
	}

	alcohol, err := item.ReadGramsAlcohol()
	if err != nil {
		return nil, &ReadError{Field: "grams_alcohol", Err: err}
	}

	meatStatus, err := item.ReadMeatStatus()
	if err != nil {
		return nil, &ReadError{Field: "meat_status", Err: err}
	}

	halal, err := item.ReadHalal()
	if err != nil {
		return nil, &ReadError{Field: "halal", Err: err}
	}

	kosher, err := item.ReadKosher()
	if err != nil {
		return nil, &ReadError{Field: "kosher", Err: err}
	}

	specific, err := item.ReadMarketSpecificData()
	if err != nil {
		return nil, &ReadError{Field: "market_specific_data", Err: err}
	}

	return &model.GroceryItem{
		Description:        description,
		CustomerID:         customerID,
		PriceInCents:       price,
		Calories:           calories,
		GramsProtein:       protein,
		GramsCarbs:         carbs,
		GramsFat:           fat,
		GramsAlcohol:       alcohol,
		MeatStatus:         meatStatus,
		Halal:              halal,
		Kosher:             kosher,
		MarketSpecificData: model.EraseSpecificData(specific),
	}, nil
}

// ExtractFromStand takes one item from stand and extracts it.
func ExtractFromStand[I Item[D], D any](customerID model.CustomerID, stand Stand[I, D]) (*model.GroceryItem, error) {
	return Extract[D](customerID, stand.GetItem())
}

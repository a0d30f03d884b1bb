package stand

import (
	"encoding/json"
	"testing"

	"farmers-market/internal/market"
	"farmers-market/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppleStand_Extract(t *testing.T) {
	item, err := market.ExtractFromStand[AppleItem, AppleData](0, AppleStand{})

	require.NoError(t, err)
	assert.Equal(t, "Apples", item.Description)
	assert.Equal(t, model.CustomerID(0), item.CustomerID)
	assert.Equal(t, uint64(3), item.PriceInCents)
	assert.Equal(t, 10.0, item.Calories)
	assert.Equal(t, model.Veg, item.MeatStatus)
	assert.True(t, item.Halal)
	assert.True(t, item.Kosher)

	data, err := json.Marshal(item.MarketSpecificData)
	require.NoError(t, err)
	assert.JSONEq(t, `{"variety":"Gala","doctors_kept_away":30}`, string(data))
}

func TestBaconStand_Extract(t *testing.T) {
	item, err := market.ExtractFromStand[BaconItem, BaconData](1, BaconStand{})

	require.NoError(t, err)
	assert.Equal(t, "Bacon", item.Description)
	assert.Equal(t, model.CustomerID(1), item.CustomerID)
	assert.Equal(t, uint64(3000), item.PriceInCents)
	assert.Equal(t, model.Meat, item.MeatStatus)
	assert.False(t, item.Halal)
	assert.False(t, item.Kosher)

	data, err := json.Marshal(item.MarketSpecificData)
	require.NoError(t, err)
	assert.JSONEq(t, `{"farm_of_origin":"Stolzfus and Sons","breakfasts_served":15}`, string(data))
}

func TestPayloads_EncodeLikeTheirConcreteType(t *testing.T) {
	tests := []struct {
		name    string
		payload any
	}{
		{name: "Apple", payload: AppleData{Variety: "Gala", DoctorsKeptAway: 30}},
		{name: "Bacon", payload: BaconData{FarmOfOrigin: "Stolzfus and Sons", BreakfastsServed: 15}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			direct, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			erased, err := json.Marshal(model.EraseSpecificData(tt.payload))
			require.NoError(t, err)

			assert.Equal(t, string(direct), string(erased))
		})
	}
}

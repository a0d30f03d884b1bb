package catalog

import (
	"fmt"

	"farmers-market/internal/market"
	"farmers-market/internal/model"

	"github.com/rs/zerolog"
)

// Catalog collects extracted grocery items in insertion order.
type Catalog struct {
	items  []model.GroceryItem
	logger zerolog.Logger
}

// New creates an empty catalog.
func New(logger zerolog.Logger) *Catalog {
	return &Catalog{
		items:  make([]model.GroceryItem, 0),
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Add appends an extracted item.
func (c *Catalog) Add(item *model.GroceryItem) {
	c.items = append(c.items, *item)
}

// Len returns the number of collected items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Items returns the collected items in insertion order.
func (c *Catalog) Items() []model.GroceryItem {
	items := make([]model.GroceryItem, len(c.items))
	copy(items, c.items)
	return items
}

// Collect takes one item from stand, extracts it for customerID and appends
// the result to c. On failure nothing is appended.
func Collect[I market.Item[D], D any](c *Catalog, customerID model.CustomerID, stand market.Stand[I, D]) error {
	item, err := market.ExtractFromStand[I, D](customerID, stand)
	if err != nil {
		c.logger.Error().
			Err(err).
			Uint64("customer_id", uint64(customerID)).
			Msg("failed to extract grocery item")
		return fmt.Errorf("failed to extract item for customer %d: %w", customerID, err)
	}

	c.Add(item)

	c.logger.Debug().
		Str("description", item.Description).
		Uint64("customer_id", uint64(customerID)).
		Int("count", c.Len()).
		Msg("grocery item collected")

	return nil
}

// Publish encodes the whole catalog and hands the document to sink.
// Nothing reaches the sink unless encoding succeeds.
func (c *Catalog) Publish(encoder Encoder, sink Sink) error {
	data, err := encoder.Encode(c.items)
	if err != nil {
		c.logger.Error().Err(err).Int("count", c.Len()).Msg("failed to encode catalog")
		return err
	}

	if err := sink.Write(data); err != nil {
		c.logger.Error().Err(err).Msg("failed to write catalog")
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	c.logger.Info().
		Int("count", c.Len()).
		Int("bytes", len(data)).
		Msg("catalog published")

	return nil
}

package catalog

import (
	"encoding/json"
	"fmt"

	"farmers-market/internal/model"

	"gopkg.in/yaml.v3"
)

// Encoder turns a sequence of grocery items into one document.
type Encoder interface {
	Encode(items []model.GroceryItem) ([]byte, error)
}

// NewEncoder returns the encoder for format ("json" or "yaml").
// indent only affects JSON.
func NewEncoder(format string, indent bool) (Encoder, error) {
	switch format {
	case "json":
		return &jsonEncoder{indent: indent}, nil
	case "yaml":
		return &yamlEncoder{}, nil
	default:
		return nil, fmt.Errorf("output format %q: %w", format, model.ErrUnsupportedFormat)
	}
}

type jsonEncoder struct {
	indent bool
}

func (e *jsonEncoder) Encode(items []model.GroceryItem) ([]byte, error) {
	if items == nil {
		items = []model.GroceryItem{}
	}

	var (
		data []byte
		err  error
	)
	if e.indent {
		data, err = json.MarshalIndent(items, "", "  ")
	} else {
		data, err = json.Marshal(items)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrEncodeFailed, err)
	}

	return append(data, '\n'), nil
}

type yamlEncoder struct{}

func (e *yamlEncoder) Encode(items []model.GroceryItem) ([]byte, error) {
	if items == nil {
		items = []model.GroceryItem{}
	}

	data, err := yaml.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrEncodeFailed, err)
	}

	return data, nil
}

package model

import (
	"encoding/json"
	"fmt"
)

// SpecificData holds a stand's vendor-specific payload behind a single
// type. The only thing a holder can do with it is serialise it; the payload
// encodes exactly as the wrapped value would on its own.
//
// The zero value encodes as null.
type SpecificData struct {
	value any
}

// EraseSpecificData takes ownership of payload and hides its concrete type.
func EraseSpecificData[D any](payload D) SpecificData {
	return SpecificData{value: payload}
}

// IsZero reports whether no payload was ever attached.
func (d SpecificData) IsZero() bool {
	return d.value == nil
}

// MarshalJSON encodes the wrapped payload.
func (d SpecificData) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(d.value)
	if err != nil {
		return nil, fmt.Errorf("failed to encode market specific data: %w", err)
	}
	return data, nil
}

// MarshalYAML hands the wrapped payload to the YAML encoder.
func (d SpecificData) MarshalYAML() (interface{}, error) {
	return d.value, nil
}

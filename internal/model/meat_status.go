package model

import "fmt"

// MeatStatus classifies the animal-product content of an item.
type MeatStatus int

const (
	Veg MeatStatus = iota
	Fish
	Meat
)

var meatStatusNames = [...]string{
	Veg:  "Veg",
	Fish: "Fish",
	Meat: "Meat",
}

// ParseMeatStatus returns the status matching the given tag.
func ParseMeatStatus(tag string) (MeatStatus, error) {
	for i, name := range meatStatusNames {
		if name == tag {
			return MeatStatus(i), nil
		}
	}
	return 0, fmt.Errorf("unknown meat status %q: %w", tag, ErrInvalidMeatStatus)
}

// Valid reports whether s is one of the declared statuses.
func (s MeatStatus) Valid() bool {
	return s >= Veg && s <= Meat
}

func (s MeatStatus) String() string {
	if !s.Valid() {
		return fmt.Sprintf("MeatStatus(%d)", int(s))
	}
	return meatStatusNames[s]
}

// MarshalText encodes the status as its tag, so both JSON and YAML
// documents carry "Veg", "Fish" or "Meat".
func (s MeatStatus) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("meat status %d: %w", int(s), ErrInvalidMeatStatus)
	}
	return []byte(meatStatusNames[s]), nil
}

// UnmarshalText decodes a status tag.
func (s *MeatStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseMeatStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

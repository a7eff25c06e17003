package attr

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/boxstyle/maybe"
)

// Bag is a set of named attribute values, the unit exchanged with the host
// editor. nil is a legal (empty) bag for reading.
//
// Bags are treated as immutable: functions of this module return new bags
// instead of modifying the ones they receive.
type Bag map[string]Value

// Clone returns a copy of a bag. Values are immutable and are shared.
func (bag Bag) Clone() Bag {
	c := make(Bag, len(bag))
	for k, v := range bag {
		c[k] = v
	}
	return c
}

// Lookup returns the value for key, if present. None values count as absent.
func (bag Bag) Lookup(key string) maybe.Maybe[Value] {
	v, ok := bag[key]
	return maybe.Of(v, ok && !v.IsNone())
}

// Has is true if the bag holds a non-None value for key.
func (bag Bag) Has(key string) bool {
	v, ok := bag[key]
	return ok && !v.IsNone()
}

// With returns a copy of the bag with key set to v.
func (bag Bag) With(key string, v Value) Bag {
	c := bag.Clone()
	c[key] = v
	return c
}

// Without returns a copy of the bag with keys removed.
func (bag Bag) Without(keys ...string) Bag {
	c := bag.Clone()
	for _, k := range keys {
		delete(c, k)
	}
	return c
}

// Keys returns the keys of a bag in sorted order.
func (bag Bag) Keys() []string {
	keys := make([]string, 0, len(bag))
	for k := range bag {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal compares two bags structurally. Keys holding None are ignored.
func (bag Bag) Equal(other Bag) bool {
	for k, v := range bag {
		if !Equal(v, other[k]) {
			return false
		}
	}
	for k, v := range other {
		if _, ok := bag[k]; !ok && !v.IsNone() {
			return false
		}
	}
	return true
}

// String renders a bag in JSON notation, for debugging.
func (bag Bag) String() string {
	data, err := json.Marshal(bag)
	if err != nil {
		return fmt.Sprintf("<bag: %v>", err)
	}
	return string(data)
}

// UnmarshalJSON is part of interface json.Unmarshaler. Keys with JSON null
// values are dropped.
func (bag *Bag) UnmarshalJSON(data []byte) error {
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("attr: cannot decode attribute bag: %w", err)
	}
	b := make(Bag, len(m))
	for k, x := range m {
		if v := FromJSON(x); !v.IsNone() {
			b[k] = v
		}
	}
	*bag = b
	return nil
}

// ReadBag decodes an attribute bag from a JSON document.
func ReadBag(r io.Reader) (Bag, error) {
	var bag Bag
	if err := json.NewDecoder(r).Decode(&bag); err != nil {
		return nil, err
	}
	if bag == nil {
		bag = Bag{}
	}
	return bag, nil
}

// WriteBag encodes an attribute bag as an indented JSON document.
func WriteBag(w io.Writer, bag Bag) error {
	if bag == nil {
		bag = Bag{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(bag)
}

package controls

import (
	"fmt"
	"strconv"
	"strings"
)

// sentinelKey is Uncategorized's key. No non-empty sort key can equal it.
const sentinelKey = ""

// Category groups controls under a header. Key orders the groups; Name is the header text.
// Controls without a category land in Uncategorized, which sorts first and has no header.
type Category struct {
	Key  string
	Name string
}

// Uncategorized is the sentinel category.
var Uncategorized = Category{Key: sentinelKey}

// ParseCategory splits a "sortKey#Name" tag. An empty tag, or a tag whose sort key is
// empty, yields Uncategorized. A tag without "#" is a key with no header.
func ParseCategory(tag string) Category {
	tag = strings.TrimSpace(tag)
	key, name, _ := strings.Cut(tag, "#")
	key = strings.TrimSpace(key)
	if key == "" {
		return Uncategorized
	}
	return Category{Key: key, Name: strings.TrimSpace(name)}
}

// Sentinel reports whether c is the uncategorized group.
func (c Category) Sentinel() bool {
	return c.Key == sentinelKey
}

// HasHeader reports whether the group renders a header.
func (c Category) HasHeader() bool {
	return !c.Sentinel() && c.Name != ""
}

func (c Category) String() string {
	return c.Key + "#" + c.Name
}

// Order selects how category keys are compared.
type Order int

const (
	// OrderNumeric compares keys as integers ("2" < "10"). Non-numeric keys sort after
	// numeric ones, lexically among themselves. This is the default.
	OrderNumeric Order = iota
	// OrderLexical compares keys as strings ("10" < "2").
	OrderLexical
)

// ParseOrder parses "numeric" or "lexical". The empty string yields OrderNumeric.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "numeric":
		return OrderNumeric, nil
	case "lexical":
		return OrderLexical, nil
	}
	return OrderNumeric, fmt.Errorf("controls: unknown category order %q", s)
}

func (o Order) String() string {
	if o == OrderLexical {
		return "lexical"
	}
	return "numeric"
}

// Compare orders two category keys. The sentinel key sorts before everything under both orders.
func (o Order) Compare(a, b string) int {
	switch {
	case a == b:
		return 0
	case a == sentinelKey:
		return -1
	case b == sentinelKey:
		return 1
	}
	if o == OrderLexical {
		return strings.Compare(a, b)
	}
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			if na < nb {
				return -1
			}
			return 1
		}
		return strings.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}

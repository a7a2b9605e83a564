package combobox

import (
	"fmt"
	"strings"
)

// VisibleFunc returns the ordered items rendered for the given input text.
// It is the single authority on the visible count and item positions.
type VisibleFunc func(input string) []Item

// AllItems ignores the input and always shows every item.
func AllItems(items []Item) VisibleFunc {
	return func(string) []Item {
		return items
	}
}

// PrefixFilter keeps items whose label starts with the input, ignoring case.
func PrefixFilter(items []Item, itemToString func(Item) string) VisibleFunc {
	return matchFilter(items, itemToString, strings.HasPrefix)
}

// ContainsFilter keeps items whose label contains the input, ignoring case.
func ContainsFilter(items []Item, itemToString func(Item) string) VisibleFunc {
	return matchFilter(items, itemToString, strings.Contains)
}

func matchFilter(items []Item, itemToString func(Item) string, match func(s, substr string) bool) VisibleFunc {
	return func(input string) []Item {
		if input == "" {
			return items
		}
		needle := strings.ToLower(input)
		var filtered []Item
		for _, item := range items {
			if match(strings.ToLower(itemToString(item)), needle) {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
}

// StringItems converts labels into items.
func StringItems(labels []string) []Item {
	items := make([]Item, len(labels))
	for i, l := range labels {
		items[i] = l
	}
	return items
}

// StringItem renders string items as themselves and anything else with fmt.Sprint.
func StringItem(item Item) string {
	if s, ok := item.(string); ok {
		return s
	}
	if item == nil {
		return ""
	}
	return fmt.Sprint(item)
}

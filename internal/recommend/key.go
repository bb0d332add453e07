package recommend

import "strings"

// noRestaurant is the sentinel key segment for records with no restaurant
// (home-cooked or unknown)
const noRestaurant = "(none)"

// ItemKey normalizes a (restaurant, dish) pair into the single key used by
// both the disabled-set lookup and candidate deduplication. Normalization is
// trim + lowercase; a missing restaurant maps to a fixed sentinel.
func ItemKey(restaurant *string, dish string) string {
	r := noRestaurant
	if restaurant != nil {
		if t := strings.ToLower(strings.TrimSpace(*restaurant)); t != "" {
			r = t
		}
	}
	return r + "|" + strings.ToLower(strings.TrimSpace(dish))
}

package booking

import "fmt"

// The service runs a single shared calendar of one-hour slots. The last
// slot starts one hour before closing.
const (
	OpeningHour = 9
	ClosingHour = 17
)

// SlotTemplate returns the daily slot start times in ascending order,
// formatted "HH:MM".
func SlotTemplate() []string {
	slots := make([]string, 0, ClosingHour-OpeningHour)
	for h := OpeningHour; h < ClosingHour; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
	}
	return slots
}

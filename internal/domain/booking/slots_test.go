package booking

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlotTemplate(t *testing.T) {
	slots := SlotTemplate()

	assert.Len(t, slots, 8)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "16:00", slots[len(slots)-1])
	assert.True(t, sort.StringsAreSorted(slots))
}

func TestSlotTemplateContents(t *testing.T) {
	expected := []string{
		"09:00", "10:00", "11:00", "12:00",
		"13:00", "14:00", "15:00", "16:00",
	}
	assert.Equal(t, expected, SlotTemplate())
}

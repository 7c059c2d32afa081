package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kessoku/models"
)

func TestNewBookedSetFlattensOrders(t *testing.T) {
	set := NewBookedSet([]models.ClassOrder{
		{Date: "2024-03-20", TimeList: []string{"14:00", "15:00"}},
		{Date: "2024-03-20", TimeList: []string{"16:00"}},
		{Date: "2024-03-21", TimeList: []string{"10:00"}},
	})

	assert.True(t, set.Contains("2024-03-20", "14:00"))
	assert.True(t, set.Contains("2024-03-20", "16:00"))
	assert.True(t, set.Contains("2024-03-21", "10:00"))
	assert.False(t, set.Contains("2024-03-21", "14:00"))
	assert.False(t, set.Contains("2024-03-22", "10:00"))
}

func TestClassify(t *testing.T) {
	booked := NewBookedSet([]models.ClassOrder{
		{Date: "2024-03-20", TimeList: []string{"14:00"}},
	})
	draft := NewDraft()
	draft.Toggle("R1", "2024-03-20", "15:00", booked)

	assert.Equal(t, SlotBooked, Classify(booked, draft, "R1", "2024-03-20", "14:00"))
	assert.Equal(t, SlotSelected, Classify(booked, draft, "R1", "2024-03-20", "15:00"))
	assert.Equal(t, SlotAvailable, Classify(booked, draft, "R1", "2024-03-20", "16:00"))

	// A different room shares no selection.
	assert.Equal(t, SlotAvailable, Classify(BookedSet{}, draft, "R2", "2024-03-20", "15:00"))
}

func TestClassifyNilSnapshot(t *testing.T) {
	// A room whose orders have not arrived yet classifies everything
	// as available or selected.
	var booked BookedSet
	draft := NewDraft()
	assert.Equal(t, SlotAvailable, Classify(booked, draft, "R1", "2024-03-20", "14:00"))
}

func TestSlotStateString(t *testing.T) {
	assert.Equal(t, "booked", SlotBooked.String())
	assert.Equal(t, "selected", SlotSelected.String())
	assert.Equal(t, "available", SlotAvailable.String())
}

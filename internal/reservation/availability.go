package reservation

import "fmt"

// Service window: seatings every 30 minutes from 17:00 up to and
// including 20:30. 21:00 is closing and not a valid start time.
const (
	openingHour = 17
	closingHour = 21

	// MaxCapacity is how many guests the room seats at once.
	MaxCapacity = 40
)

type Slot struct {
	Time        string `json:"time"`
	Available   int    `json:"available"`
	IsAvailable bool   `json:"isAvailable"`
}

// Slots maps existing bookings (time -> summed party size) onto the fixed
// slot grid. Available is not clamped at zero: a negative value signals
// overbooking rather than an error.
func Slots(booked map[string]int) []Slot {
	slots := make([]Slot, 0, 8)
	for hour := openingHour; hour < closingHour; hour++ {
		for _, min := range []int{0, 30} {
			t := fmt.Sprintf("%02d:%02d", hour, min)
			available := MaxCapacity - booked[t]
			slots = append(slots, Slot{
				Time:        t,
				Available:   available,
				IsAvailable: available > 0,
			})
		}
	}
	return slots
}

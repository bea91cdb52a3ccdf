package booking

// SlotCapacity is the maximum number of bookings accepted per slot.
const SlotCapacity = 5

const (
	gridOpening  = 9 * 60
	gridClosing  = 21 * 60
	gridInterval = 30
)

type TimeSlot struct {
	Time          TimeOfDay
	BookingsCount int
	Available     bool
}

// SlotGrid returns 09:00 through 21:00 inclusive at 30-minute steps.
func SlotGrid() []TimeOfDay {
	grid := make([]TimeOfDay, 0, (gridClosing-gridOpening)/gridInterval+1)
	for m := gridOpening; m <= gridClosing; m += gridInterval {
		grid = append(grid, TimeOfDay{minutes: m})
	}
	return grid
}

func HasCapacity(occupied int) bool {
	return occupied < SlotCapacity
}

// ComputeAvailability projects per-time counts of non-cancelled bookings onto the grid.
// Counts for times outside the grid are ignored.
func ComputeAvailability(counts map[TimeOfDay]int) []TimeSlot {
	grid := SlotGrid()
	slots := make([]TimeSlot, 0, len(grid))
	for _, t := range grid {
		n := counts[t]
		slots = append(slots, TimeSlot{
			Time:          t,
			BookingsCount: n,
			Available:     HasCapacity(n),
		})
	}
	return slots
}

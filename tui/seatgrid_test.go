package tui

import (
	"testing"

	"cinemaseat-cli/model"
	"cinemaseat-cli/service"
)

func makeSeats(count int, taken ...int) []model.Seat {
	takenSet := map[int]bool{}
	for _, n := range taken {
		takenSet[n] = true
	}
	seats := make([]model.Seat, 0, count)
	for i := 1; i <= count; i++ {
		seats = append(seats, model.Seat{Number: model.SeatNumber(i), Available: !takenSet[i]})
	}
	return seats
}

func TestSeatGridToggleCap(t *testing.T) {
	grid := newSeatGrid(makeSeats(20))

	for i := 1; i <= service.MaxSeatsPerBooking; i++ {
		if got := grid.toggle(i); got != toggleAdded {
			t.Fatalf("toggle(%d) = %v, want toggleAdded", i, got)
		}
	}
	if got := grid.toggle(7); got != toggleLimit {
		t.Fatalf("toggle beyond cap = %v, want toggleLimit", got)
	}
	if got := grid.selectedCount(); got != service.MaxSeatsPerBooking {
		t.Fatalf("selectedCount = %d, want %d", got, service.MaxSeatsPerBooking)
	}

	// deselecting reopens a slot
	if got := grid.toggle(3); got != toggleRemoved {
		t.Fatalf("re-toggle = %v, want toggleRemoved", got)
	}
	if got := grid.toggle(7); got != toggleAdded {
		t.Fatalf("toggle after free slot = %v, want toggleAdded", got)
	}
}

func TestSeatGridToggleUnavailable(t *testing.T) {
	grid := newSeatGrid(makeSeats(5, 2))

	if got := grid.toggle(2); got != toggleUnavailable {
		t.Fatalf("toggle taken seat = %v, want toggleUnavailable", got)
	}
	if got := grid.toggle(42); got != toggleUnavailable {
		t.Fatalf("toggle unknown seat = %v, want toggleUnavailable", got)
	}
	if got := grid.selectedCount(); got != 0 {
		t.Fatalf("selectedCount = %d, want 0", got)
	}
}

func TestSeatGridColumns(t *testing.T) {
	cases := []struct {
		name  string
		seats []model.Seat
		want  int
	}{
		{"empty", nil, 8},
		{"small room", makeSeats(59), 8},
		{"large room", makeSeats(60), 10},
		{"sparse numbering", []model.Seat{{Number: 3, Available: true}, {Number: 77, Available: true}}, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			grid := newSeatGrid(tc.seats)
			if got := grid.columns(); got != tc.want {
				t.Fatalf("columns() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestSeatGridSelectedNumbersSorted(t *testing.T) {
	grid := newSeatGrid(makeSeats(20))
	for _, n := range []int{12, 3, 5} {
		if got := grid.toggle(n); got != toggleAdded {
			t.Fatalf("toggle(%d) = %v", n, got)
		}
	}
	got := grid.selectedNumbers()
	want := []int{3, 5, 12}
	if len(got) != len(want) {
		t.Fatalf("selectedNumbers = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("selectedNumbers = %v, want %v", got, want)
		}
	}
}

func TestSeatGridClearSelection(t *testing.T) {
	grid := newSeatGrid(makeSeats(10))
	grid.toggle(1)
	grid.toggle(2)
	grid.clearSelection()
	if got := grid.selectedCount(); got != 0 {
		t.Fatalf("selectedCount after clear = %d, want 0", got)
	}
}

func TestSeatGridCursorClamped(t *testing.T) {
	grid := newSeatGrid(makeSeats(10))

	grid.moveCursor(-5)
	if seat, ok := grid.cursorSeat(); !ok || int(seat.Number) != 1 {
		t.Fatalf("cursor after underflow = %v, want seat 1", seat)
	}
	grid.moveCursor(100)
	if seat, ok := grid.cursorSeat(); !ok || int(seat.Number) != 10 {
		t.Fatalf("cursor after overflow = %v, want seat 10", seat)
	}
	grid.moveCursorRow(-1)
	if seat, ok := grid.cursorSeat(); !ok || int(seat.Number) != 2 {
		t.Fatalf("cursor after row move = %v, want seat 2", seat)
	}
}

func TestPayEnabled(t *testing.T) {
	cases := []struct {
		name         string
		loggedIn     bool
		selected     int
		showSelected bool
		want         bool
	}{
		{"happy path", true, 2, true, true},
		{"logged out", false, 2, true, false},
		{"nothing selected", true, 0, true, false},
		{"over the cap", true, 7, true, false},
		{"no show picked", true, 2, false, false},
		{"exactly at cap", true, 6, true, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := payEnabled(tc.loggedIn, tc.selected, tc.showSelected); got != tc.want {
				t.Fatalf("payEnabled(%v, %d, %v) = %v, want %v", tc.loggedIn, tc.selected, tc.showSelected, got, tc.want)
			}
		})
	}
}

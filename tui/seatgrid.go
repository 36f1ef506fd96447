package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"cinemaseat-cli/model"
	"cinemaseat-cli/service"
)

type toggleResult int

const (
	toggleAdded toggleResult = iota
	toggleRemoved
	toggleUnavailable
	toggleLimit
)

// seatGrid is the seat-selection engine for the current show: the
// sorted seat map, the chosen set (capped at the booking limit) and a
// keyboard cursor. It never mutates availability locally; the map is
// re-fetched whenever the server may have moved.
type seatGrid struct {
	seats  []model.Seat
	chosen map[int]bool
	cursor int
}

func newSeatGrid(seats []model.Seat) seatGrid {
	return seatGrid{
		seats:  seats,
		chosen: map[int]bool{},
	}
}

// columns is a presentation heuristic: wide halls get the wide grid.
func (g seatGrid) columns() int {
	maxNumber := 0
	for _, seat := range g.seats {
		if int(seat.Number) > maxNumber {
			maxNumber = int(seat.Number)
		}
	}
	if maxNumber >= 60 {
		return 10
	}
	return 8
}

// toggle flips the selection state of one seat. Unavailable seats are
// untouchable; a seat already chosen always deselects; adding past the
// cap is rejected without mutating anything.
func (g *seatGrid) toggle(number int) toggleResult {
	var seat *model.Seat
	for i := range g.seats {
		if int(g.seats[i].Number) == number {
			seat = &g.seats[i]
			break
		}
	}
	if seat == nil || !seat.Available {
		return toggleUnavailable
	}
	if g.chosen[number] {
		delete(g.chosen, number)
		return toggleRemoved
	}
	if len(g.chosen) >= service.MaxSeatsPerBooking {
		return toggleLimit
	}
	g.chosen[number] = true
	return toggleAdded
}

func (g *seatGrid) toggleAtCursor() toggleResult {
	seat, ok := g.cursorSeat()
	if !ok {
		return toggleUnavailable
	}
	return g.toggle(int(seat.Number))
}

func (g seatGrid) selectedCount() int {
	return len(g.chosen)
}

// selectedNumbers returns the chosen seats ascending.
func (g seatGrid) selectedNumbers() []int {
	numbers := make([]int, 0, len(g.chosen))
	for number := range g.chosen {
		numbers = append(numbers, number)
	}
	sort.Ints(numbers)
	return numbers
}

func (g *seatGrid) clearSelection() {
	g.chosen = map[int]bool{}
}

func (g seatGrid) cursorSeat() (model.Seat, bool) {
	if g.cursor < 0 || g.cursor >= len(g.seats) {
		return model.Seat{}, false
	}
	return g.seats[g.cursor], true
}

func (g *seatGrid) moveCursor(delta int) {
	if len(g.seats) == 0 {
		return
	}
	next := g.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(g.seats) {
		next = len(g.seats) - 1
	}
	g.cursor = next
}

func (g *seatGrid) moveCursorRow(delta int) {
	g.moveCursor(delta * g.columns())
}

// payEnabled is the submit-eligibility predicate; it must be
// re-evaluated after every change to any of its inputs.
func payEnabled(loggedIn bool, selected int, showSelected bool) bool {
	return loggedIn && selected > 0 && selected <= service.MaxSeatsPerBooking && showSelected
}

var (
	seatStyleAvailable = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleTaken     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	seatStyleChosen    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("205")).Bold(true)
	seatStyleCursor    = lipgloss.NewStyle().Reverse(true).Bold(true)
)

func (g seatGrid) render() string {
	if len(g.seats) == 0 {
		return "No seats for this show."
	}

	cols := g.columns()
	cellWidth := 2
	for _, seat := range g.seats {
		if l := len(fmt.Sprintf("%d", int(seat.Number))); l > cellWidth {
			cellWidth = l
		}
	}

	var b strings.Builder
	for i, seat := range g.seats {
		number := int(seat.Number)
		text := padCell(fmt.Sprintf("%d", number), cellWidth)
		switch {
		case i == g.cursor:
			text = seatStyleCursor.Render(text)
		case g.chosen[number]:
			text = seatStyleChosen.Render(text)
		case !seat.Available:
			text = seatStyleTaken.Render(text)
		default:
			text = seatStyleAvailable.Render(text)
		}
		b.WriteString(text)
		if (i+1)%cols == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	if len(g.seats)%cols != 0 {
		b.WriteString("\n")
	}

	available := 0
	for _, seat := range g.seats {
		if seat.Available {
			available++
		}
	}
	legend := "Legend: green available • gray taken • highlighted selected"
	counts := fmt.Sprintf("Available: %d • Taken: %d • Selected: %d/%d", available, len(g.seats)-available, len(g.chosen), service.MaxSeatsPerBooking)
	return b.String() + "\n" + hint(legend) + "\n" + hint(counts)
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

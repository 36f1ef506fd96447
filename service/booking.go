package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cinemaseat-cli/logger"
	"cinemaseat-cli/model"
)

// MaxSeatsPerBooking caps how many seats one submission may carry.
const MaxSeatsPerBooking = 6

type bookingRequest struct {
	ShowID     int `json:"show_id"`
	SeatNumber int `json:"seat_number"`
}

// BookingOutcome aggregates a submission attempt: how many seats were
// confirmed, how many were lost to another user (409), and how many
// failed outright, keeping the last failure detail for reporting.
type BookingOutcome struct {
	Confirmed int
	Conflicts int
	Failures  int
	LastError string
}

// Summary renders the outcome the way the booking panel reports it:
// non-zero counts only, fixed order, "No changes" when nothing moved.
func (o BookingOutcome) Summary() string {
	var parts []string
	if o.Confirmed > 0 {
		parts = append(parts, fmt.Sprintf("Confirmed: %d", o.Confirmed))
	}
	if o.Conflicts > 0 {
		parts = append(parts, fmt.Sprintf("Already taken: %d", o.Conflicts))
	}
	if o.Failures > 0 {
		failed := fmt.Sprintf("Failed: %d", o.Failures)
		if o.LastError != "" {
			failed += " (" + o.LastError + ")"
		}
		parts = append(parts, failed)
	}
	if len(parts) == 0 {
		return "No changes"
	}
	return strings.Join(parts, " • ")
}

// BookSeats submits one booking per seat, strictly sequentially: each
// request is fully awaited before the next goes out, which keeps the
// conflict accounting trivial at the cost of latency bounded by the
// seat cap. A 409 counts as a conflict, any other non-2xx or a
// transport failure counts as a failure; neither stops the loop.
// The error return covers only invalid input and context cancellation.
func (c *Client) BookSeats(ctx context.Context, showID int, numbers []int) (BookingOutcome, error) {
	if len(numbers) == 0 {
		return BookingOutcome{}, errors.New("no seats selected")
	}
	if len(numbers) > MaxSeatsPerBooking {
		return BookingOutcome{}, fmt.Errorf("at most %d seats per booking", MaxSeatsPerBooking)
	}

	var outcome BookingOutcome
	for _, number := range numbers {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}
		err := c.do(ctx, http.MethodPost, "/api/cinema/bookings/", bookingRequest{ShowID: showID, SeatNumber: number}, nil)
		switch {
		case err == nil:
			outcome.Confirmed++
		case IsConflict(err):
			outcome.Conflicts++
		default:
			outcome.Failures++
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				outcome.LastError = apiErr.Detail()
			} else {
				outcome.LastError = err.Error()
			}
			logger.Log.Warn("booking failed", "show_id", showID, "seat", number, "err", err)
		}
	}
	return outcome, nil
}

// MyBookings fetches the booking history for the current identity. An
// unauthenticated call comes back as a 401 API error, which callers
// render as "login required" rather than a fault.
func (c *Client) MyBookings(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	if err := c.do(ctx, http.MethodGet, "/api/cinema/my-bookings/", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

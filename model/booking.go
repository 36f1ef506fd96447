package model

import "time"

type Booking struct {
	ID            int        `json:"id"`
	ShowID        int        `json:"show_id"`
	SeatNumber    SeatNumber `json:"seat_number"`
	MovieTitle    string     `json:"movie_title"`
	ShowStartTime *time.Time `json:"show_start_time"`
}

package service

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"cinemaseat-cli/model"
)

// Movies fetches the movie catalog.
func (c *Client) Movies(ctx context.Context) ([]model.Movie, error) {
	var movies []model.Movie
	if err := c.do(ctx, http.MethodGet, "/api/cinema/movies/", nil, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

// Shows fetches the shows scheduled for a movie.
func (c *Client) Shows(ctx context.Context, movieID int) ([]model.Show, error) {
	var shows []model.Show
	path := fmt.Sprintf("/api/cinema/movies/%d/shows/", movieID)
	if err := c.do(ctx, http.MethodGet, path, nil, &shows); err != nil {
		return nil, err
	}
	return shows, nil
}

// Seats fetches the seat map for a show, sorted ascending by seat
// number no matter how the server ordered it.
func (c *Client) Seats(ctx context.Context, showID int) ([]model.Seat, error) {
	var seats []model.Seat
	path := fmt.Sprintf("/api/cinema/shows/%d/seats/", showID)
	if err := c.do(ctx, http.MethodGet, path, nil, &seats); err != nil {
		return nil, err
	}
	sort.Slice(seats, func(i, j int) bool {
		return seats[i].Number < seats[j].Number
	})
	return seats, nil
}

// Health pings the cinema service.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/cinema/health/", nil, nil)
}

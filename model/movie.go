package model

import "time"

type Movie struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Language    string `json:"language"`
	Certificate string `json:"certificate"`
	PosterURL   string `json:"poster_url"`
}

type Show struct {
	ID        int       `json:"id"`
	StartTime time.Time `json:"start_time"`
}

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMovies_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cinema/movies/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
  {"id": 1, "title": "Demo Movie 1", "language": "EN", "certificate": "U/A", "poster_url": ""},
  {"id": 2, "title": "Demo Movie 2", "language": "HI", "certificate": "U/A", "poster_url": ""}
]`))
	}))
	defer server.Close()

	client := newTestClient(server, &memTokens{})
	movies, err := client.Movies(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(movies) != 2 {
		t.Fatalf("expected 2 movies, got %d", len(movies))
	}
	if movies[0].Title != "Demo Movie 1" {
		t.Fatalf("unexpected title: %q", movies[0].Title)
	}
}

func TestShows_OK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cinema/movies/2/shows/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
  {"id": 101, "start_time": "2026-08-31T18:30:00Z"},
  {"id": 102, "start_time": "2026-08-31T21:30:00Z"}
]`))
	}))
	defer server.Close()

	client := newTestClient(server, &memTokens{})
	shows, err := client.Shows(context.Background(), 2)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(shows) != 2 {
		t.Fatalf("expected 2 shows, got %d", len(shows))
	}
	if shows[0].ID != 101 {
		t.Fatalf("unexpected show id: %d", shows[0].ID)
	}
}

func TestSeats_SortedAscendingByNumber(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/cinema/shows/101/seats/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		// the backend stringifies numbers; order is scrambled on purpose
		_, _ = w.Write([]byte(`[
  {"number": "12", "available": true},
  {"number": 3, "available": false},
  {"number": "5", "available": true}
]`))
	}))
	defer server.Close()

	client := newTestClient(server, &memTokens{})
	seats, err := client.Seats(context.Background(), 101)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(seats) != 3 {
		t.Fatalf("expected 3 seats, got %d", len(seats))
	}
	for i, want := range []int{3, 5, 12} {
		if int(seats[i].Number) != want {
			t.Fatalf("expected seat %d at index %d, got %d", want, i, seats[i].Number)
		}
	}
	if seats[0].Available {
		t.Fatal("expected seat 3 unavailable")
	}
	if !seats[1].Available || !seats[2].Available {
		t.Fatal("expected seats 5 and 12 available")
	}
}

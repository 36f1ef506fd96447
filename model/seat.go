package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// SeatNumber is an int on the wire most of the time, but the backend
// stringifies seat numbers in some payloads ("12" instead of 12), so
// decoding accepts both forms. null decodes to zero.
type SeatNumber int

func (n *SeatNumber) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*n = 0
		return nil
	}
	raw := strings.Trim(string(trimmed), `"`)
	if raw == "" {
		*n = 0
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return err
	}
	*n = SeatNumber(value)
	return nil
}

func (n SeatNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(n))
}

type Seat struct {
	Number    SeatNumber `json:"number"`
	Available bool       `json:"available"`
}

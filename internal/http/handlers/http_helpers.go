package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

// queryInt parses an optional integer query parameter.
func queryInt(q url.Values, name string) (*int, error) {
	s := q.Get(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s format", name)
	}
	return &v, nil
}

// queryTime parses an optional RFC3339 query parameter.
func queryTime(q url.Values, name string) (*time.Time, error) {
	s := q.Get(name)
	if s == "" {
		return nil, nil
	}

	// Query decoding turns the "+" of a positive UTC offset into a space,
	// e.g. 2025-07-03T17:44:03+02:00 arrives as 2025-07-03T17:44:03 02:00.
	if len(s) == len(time.RFC3339) && s[len(s)-6] == ' ' {
		s = s[:len(s)-6] + "+" + s[len(s)-5:]
	}

	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date format", name)
	}
	return &ts, nil
}

func pagination(q url.Values) (offset, limit *int, err error) {
	if limit, err = queryInt(q, "limit"); err != nil {
		return nil, nil, err
	}
	if limit != nil && *limit <= 0 {
		return nil, nil, errors.New("limit must be greater than zero")
	}
	if offset, err = queryInt(q, "offset"); err != nil {
		return nil, nil, err
	}
	if offset != nil && *offset < 0 {
		return nil, nil, errors.New("offset must be zero or positive")
	}
	return offset, limit, nil
}

package ui

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestImageLoaderFetchSizeLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		size := maxImageBytes
		if r.URL.Path == "/large.png" {
			size++
		}
		w.Write(make([]byte, size))
	}))
	defer srv.Close()

	il := NewImageLoader()

	res, err := il.fetch(srv.URL + "/fits.png")
	if err != nil {
		t.Fatalf("fetch at the limit failed: %v", err)
	}
	if len(res.Content()) != maxImageBytes {
		t.Errorf("Content length = %d, expected %d", len(res.Content()), maxImageBytes)
	}

	if _, err := il.fetch(srv.URL + "/large.png"); !errors.Is(err, errImageTooLarge) {
		t.Errorf("Expected errImageTooLarge, got %v", err)
	}
	if _, ok := il.cached(srv.URL + "/large.png"); ok {
		t.Error("Oversized image must not be cached")
	}
}

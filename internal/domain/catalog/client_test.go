package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestFetchDecodesProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/1" {
			t.Errorf("request path = %q, want /products/1", r.URL.Path)
		}
		fmt.Fprint(w, `{
			"id": 1,
			"title": "Fjallraven Backpack",
			"price": 109.95,
			"description": "Fits 15 inch laptops",
			"category": "men's clothing",
			"image": "https://example.com/img.jpg",
			"rating": {"rate": 3.9, "count": 120}
		}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second, testLogger())

	product, err := client.Fetch(context.Background(), 1)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if product.ID != 1 {
		t.Errorf("ID = %d, want 1", product.ID)
	}
	if product.Title != "Fjallraven Backpack" {
		t.Errorf("Title = %q", product.Title)
	}
	if product.Price != 109.95 {
		t.Errorf("Price = %v, want 109.95", product.Price)
	}
	if product.Rating.Rate != 3.9 || product.Rating.Count != 120 {
		t.Errorf("Rating = %+v, want rate 3.9 count 120", product.Rating)
	}
}

func TestFetchCollapsesFailuresToNotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "404 response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"id": "not a number"`)
			},
		},
		{
			// fakestoreapi answers some unknown IDs with 200 and no record
			name: "empty record",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `null`)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewClient(server.URL, 5*time.Second, testLogger())
			if _, err := client.Fetch(context.Background(), 7); !errors.Is(err, ErrProductNotFound) {
				t.Errorf("Fetch error = %v, want ErrProductNotFound", err)
			}
		})
	}
}

func TestFetchUnreachableCatalog(t *testing.T) {
	// A server that is already closed.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, time.Second, testLogger())
	if _, err := client.Fetch(context.Background(), 1); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("Fetch error = %v, want ErrProductNotFound", err)
	}
}

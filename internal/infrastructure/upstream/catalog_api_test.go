package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/cccc-2705/Mercado/internal/core/domain"
)

func TestListProducts(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/store/products/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"name": "Mango Crate", "slug": "mango-crate", "price": 100.0},
			{"name": "Banana Bunch", "slug": "banana-bunch", "price": 80.0, "disc_price": 60.0},
		})
	})

	products, err := client.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[1].DiscPrice != 60 {
		t.Fatalf("unexpected product: %+v", products[1])
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail":"Not found."}`))
	})

	_, err := client.GetProduct(context.Background(), "missing")
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestUpdateProfile_WrapsPayloadAndSlugRoute(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/accounts/profile/alice-profile/" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "JWT acc" {
			t.Fatalf("unexpected Authorization header: %q", got)
		}
		var body map[string]domain.ProfileUpdate
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["data"].Bio != "hello" {
			t.Fatalf("unexpected body: %+v", body)
		}
		w.Write([]byte("{}"))
	})

	err := client.UpdateProfile(context.Background(), "acc",
		domain.ProfileUpdate{Slug: "alice-profile", Bio: "hello"})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
}

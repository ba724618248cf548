package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/api"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/config"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/memory"
)

func TestProductUpdate_Success_MergesLocalFieldsIntoFullReplace(t *testing.T) {
	withDeps(t, func() {
		var got map[string]any

		now := time.Now().Format(time.RFC3339Nano)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut {
				t.Fatalf("expected PUT, got %s", r.Method)
			}
			if r.URL.Path != "/api/products/p1" {
				t.Fatalf("expected /api/products/p1, got %s", r.URL.Path)
			}
			if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
				t.Fatalf("decode request: %v", err)
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"id":"p1","name":"Болт М8","description":"DIN 933",
				"price":4.0,"quantity":120,
				"created_at":"` + now + `","updated_at":"` + now + `"
			}`))
		}))
		defer srv.Close()

		cli.NewAPIClient = func(_ string) *api.Client { return api.NewClient(srv.URL) }

		saved := false
		cli.SaveProductsToFile = func(_ string, _ *memory.ProductsStore) error {
			saved = true
			return nil
		}

		store := memory.NewProducts()
		store.Upsert(memory.Product{
			ID: "p1", Name: "Болт М8", Description: "DIN 933",
			Price: 3.5, Quantity: 120,
		})

		app := &cli.App{
			ServerURL:    srv.URL,
			ProductsPath: filepath.Join(t.TempDir(), "products.json"),
			Products:     store,
			Creds:        &config.Credentials{Token: "token-1"},
		}

		cmd := cli.ProductUpdate(app)
		// меняем только цену, остальное должно прийти из локального кэша
		cmd.SetArgs([]string{"p1", "--price", "4.0"})

		var out bytes.Buffer
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}

		// full replace: уходят ВСЕ поля, не только изменённая цена
		if got["name"] != "Болт М8" {
			t.Fatalf("expected name from local cache, got=%v", got["name"])
		}
		if got["description"] != "DIN 933" {
			t.Fatalf("expected description from local cache, got=%v", got["description"])
		}
		if got["price"] != 4.0 {
			t.Fatalf("expected price 4.0, got=%v", got["price"])
		}
		if got["quantity"] != float64(120) {
			t.Fatalf("expected quantity from local cache, got=%v", got["quantity"])
		}

		if !saved {
			t.Fatalf("expected SaveToFile called")
		}

		// кэш обновлён ответом сервера
		p, err := store.Get("p1")
		if err != nil {
			t.Fatalf("Get after update: %v", err)
		}
		if p.Price != 4.0 {
			t.Fatalf("expected cached price 4.0, got %v", p.Price)
		}

		if !strings.Contains(out.String(), "updated product p1") {
			t.Fatalf("unexpected output: %s", out.String())
		}
	})
}

func TestProductUpdate_NotCachedLocally_AsksForSync(t *testing.T) {
	app := &cli.App{
		ServerURL: "https://127.0.0.1:1",
		Products:  memory.NewProducts(),
		Creds:     &config.Credentials{Token: "token-1"},
	}

	cmd := cli.ProductUpdate(app)
	cmd.SetArgs([]string{"missing", "--price", "4.0"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "run: stockkeeper sync") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductUpdate_NoFlags_NothingToUpdate(t *testing.T) {
	store := memory.NewProducts()
	store.Upsert(memory.Product{ID: "p1", Name: "Widget", Price: 1, Quantity: 1})

	app := &cli.App{
		ServerURL: "https://127.0.0.1:1",
		Products:  store,
		Creds:     &config.Credentials{Token: "token-1"},
	}

	cmd := cli.ProductUpdate(app)
	cmd.SetArgs([]string{"p1"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "nothing to update") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProductUpdate_ValidatesMergedFields(t *testing.T) {
	store := memory.NewProducts()
	store.Upsert(memory.Product{ID: "p1", Name: "Widget", Price: 1, Quantity: 1})

	app := &cli.App{
		ServerURL: "https://127.0.0.1:1",
		Products:  store,
		Creds:     &config.Credentials{Token: "token-1"},
	}

	cmd := cli.ProductUpdate(app)
	cmd.SetArgs([]string{"p1", "--quantity", "-1"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "quantity must not be negative") {
		t.Fatalf("unexpected error: %v", err)
	}
}

package tests

import (
	"bytes"
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

func TestDashboard_PrintsCountsLowStockAndTotalValue(t *testing.T) {
	withDeps(t, func() {
		now := time.Now().Format(time.RFC3339Nano)

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/api/products" {
				t.Fatalf("expected /api/products, got %s", r.URL.Path)
			}
			w.Header().Set("Content-Type", "application/json")
			// quantity 3 и 7 — low stock (порог 10), 12 — нет
			w.Write([]byte(`{"products":[
				{"id":"p1","name":"Болт М8","price":2.0,"quantity":3,
				 "created_at":"` + now + `","updated_at":"` + now + `"},
				{"id":"p2","name":"Гайка М8","price":1.0,"quantity":12,
				 "created_at":"` + now + `","updated_at":"` + now + `"},
				{"id":"p3","name":"Шайба","price":0.5,"quantity":7,
				 "created_at":"` + now + `","updated_at":"` + now + `"}
			]}`))
		}))
		defer srv.Close()

		cli.NewAPIClient = func(_ string) *api.Client { return api.NewClient(srv.URL) }

		saved := false
		cli.SaveProductsToFile = func(_ string, _ *memory.ProductsStore) error {
			saved = true
			return nil
		}

		store := memory.NewProducts()
		app := &cli.App{
			ServerURL:    srv.URL,
			ProductsPath: filepath.Join(t.TempDir(), "products.json"),
			Products:     store,
			Creds:        &config.Credentials{Token: "token-1"},
		}

		cmd := cli.NewDashboardCmd(app)

		var out bytes.Buffer
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}

		got := out.String()
		if !strings.Contains(got, "Products: 3") {
			t.Fatalf("expected product count, got: %q", got)
		}
		if !strings.Contains(got, "Low stock (<10): 2") {
			t.Fatalf("expected 2 low-stock products, got: %q", got)
		}
		if !strings.Contains(got, "Болт М8") || !strings.Contains(got, "Шайба") {
			t.Fatalf("expected low-stock product names, got: %q", got)
		}
		// 2.0*3 + 1.0*12 + 0.5*7 = 21.50
		if !strings.Contains(got, "Total value: 21.50") {
			t.Fatalf("expected total value 21.50, got: %q", got)
		}

		if !saved {
			t.Fatalf("expected SaveToFile called")
		}
		// локальный кэш заменён свежим списком
		if len(store.List()) != 3 {
			t.Fatalf("expected 3 products in cache, got %d", len(store.List()))
		}
	})
}

func TestDashboard_NoSession_ReturnsError(t *testing.T) {
	app := &cli.App{
		Products: memory.NewProducts(),
		Creds:    &config.Credentials{},
	}

	cmd := cli.NewDashboardCmd(app)

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "no session token") {
		t.Fatalf("unexpected error: %v", err)
	}
}

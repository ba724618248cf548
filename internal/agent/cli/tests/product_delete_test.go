package tests

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/api"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/config"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/memory"
)

func TestProductDelete_Success_RemovesFromCache(t *testing.T) {
	withDeps(t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				t.Fatalf("expected DELETE, got %s", r.Method)
			}
			if r.URL.Path != "/api/products/p1" {
				t.Fatalf("expected /api/products/p1, got %s", r.URL.Path)
			}
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		cli.NewAPIClient = func(_ string) *api.Client { return api.NewClient(srv.URL) }

		saved := false
		cli.SaveProductsToFile = func(_ string, _ *memory.ProductsStore) error {
			saved = true
			return nil
		}

		store := memory.NewProducts()
		store.Upsert(memory.Product{ID: "p1", Name: "Widget"})

		app := &cli.App{
			ServerURL:    srv.URL,
			ProductsPath: filepath.Join(t.TempDir(), "products.json"),
			Products:     store,
			Creds:        &config.Credentials{Token: "token-1"},
		}

		cmd := cli.ProductDelete(app)
		cmd.SetArgs([]string{"p1"})

		var out bytes.Buffer
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("execute: %v", err)
		}

		if _, err := store.Get("p1"); err == nil {
			t.Fatalf("expected product removed from cache")
		}
		if !saved {
			t.Fatalf("expected SaveToFile called")
		}
		if !strings.Contains(out.String(), "deleted product p1") {
			t.Fatalf("unexpected output: %s", out.String())
		}
	})
}

// товара нет ни на сервере (204 всё равно), ни локально — всё равно успех
func TestProductDelete_MissingEverywhere_IsIdempotent(t *testing.T) {
	withDeps(t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer srv.Close()

		cli.NewAPIClient = func(_ string) *api.Client { return api.NewClient(srv.URL) }
		cli.SaveProductsToFile = func(_ string, _ *memory.ProductsStore) error { return nil }

		app := &cli.App{
			ServerURL:    srv.URL,
			ProductsPath: filepath.Join(t.TempDir(), "products.json"),
			Products:     memory.NewProducts(),
			Creds:        &config.Credentials{Token: "token-1"},
		}

		cmd := cli.ProductDelete(app)
		cmd.SetArgs([]string{"ghost"})

		var out bytes.Buffer
		cmd.SetOut(&out)

		if err := cmd.Execute(); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !strings.Contains(out.String(), "deleted product ghost") {
			t.Fatalf("unexpected output: %s", out.String())
		}
	})
}

func TestProductDelete_NoSession_ReturnsError(t *testing.T) {
	app := &cli.App{
		Products: memory.NewProducts(),
		Creds:    &config.Credentials{},
	}

	cmd := cli.ProductDelete(app)
	cmd.SetArgs([]string{"p1"})

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "no session token") {
		t.Fatalf("unexpected error: %v", err)
	}
}

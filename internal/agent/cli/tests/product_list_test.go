package tests

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/cli"
	"github.com/IvanChernomyrdin/go-stockkeeper/internal/agent/memory"
)

func listTestStore() *memory.ProductsStore {
	now := time.Now()
	store := memory.NewProducts()
	store.ReplaceAll([]memory.Product{
		{ID: "p1", Name: "Болт М8", Price: 3.5, Quantity: 120, CreatedAt: now.Add(-2 * time.Hour), UpdatedAt: now},
		{ID: "p2", Name: "Гайка М8", Price: 1.2, Quantity: 3, CreatedAt: now.Add(-time.Hour), UpdatedAt: now},
		{ID: "p3", Name: "Шайба", Price: 0.5, Quantity: 40, CreatedAt: now, UpdatedAt: now},
	})
	return store
}

func TestProductList_EmptyCache_PrintsHint(t *testing.T) {
	app := &cli.App{Products: memory.NewProducts()}

	cmd := cli.ProductList(app)

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "no local products (run: stockkeeper sync)") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestProductList_Default_SortsNewestFirst(t *testing.T) {
	app := &cli.App{Products: listTestStore()}

	cmd := cli.ProductList(app)

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[0], "p3") || !strings.HasPrefix(lines[2], "p1") {
		t.Fatalf("unexpected order: %q", out.String())
	}
}

func TestProductList_Search_FiltersByNameSubstring(t *testing.T) {
	app := &cli.App{Products: listTestStore()}

	cmd := cli.ProductList(app)
	cmd.SetArgs([]string{"--search", "м8"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	got := out.String()
	if strings.Contains(got, "Шайба") {
		t.Fatalf("did not expect Шайба in output: %q", got)
	}
	if !strings.Contains(got, "Болт М8") || !strings.Contains(got, "Гайка М8") {
		t.Fatalf("expected both М8 products, got: %q", got)
	}
}

func TestProductList_SortLowQuantity_MarksLowStock(t *testing.T) {
	app := &cli.App{Products: listTestStore()}

	cmd := cli.ProductList(app)
	cmd.SetArgs([]string{"--sort", "lowQuantity"})

	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	// p2 (quantity=3) первым и с пометкой LOW
	if !strings.HasPrefix(lines[0], "p2") || !strings.HasSuffix(lines[0], "LOW") {
		t.Fatalf("expected p2 first with LOW mark, got: %q", lines[0])
	}
	// остальные без пометки
	if strings.Contains(lines[1], "LOW") || strings.Contains(lines[2], "LOW") {
		t.Fatalf("unexpected LOW mark: %q", out.String())
	}
}

func TestProductList_UnknownSortMode_ReturnsError(t *testing.T) {
	app := &cli.App{Products: listTestStore()}

	cmd := cli.ProductList(app)
	cmd.SetArgs([]string{"--sort", "bogus"})
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	err := cmd.Execute()
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "unknown sort mode") {
		t.Fatalf("unexpected error: %v", err)
	}
}

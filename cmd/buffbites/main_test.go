package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jask/buffbites/internal/config"
	"github.com/jask/buffbites/internal/flow"
	"github.com/jask/buffbites/internal/i18n"
	"github.com/jask/buffbites/internal/menu"
	"github.com/jask/buffbites/internal/order"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOrderCommandSubmits(t *testing.T) {
	cfg := writeConfig(t, "[menu]\nsource = \"builtin\"\n")
	out, err := run(t, "--config", cfg, "order",
		"--restaurant", "Restaurant A", "--meal", "burger", "--time", "Mon Sep 18 7:00 PM")
	if err != nil {
		t.Fatalf("order: %v", err)
	}
	for _, want := range []string{
		"Order Summary",
		"Burger",
		"Subtotal: $8.00",
		"Order submitted: Burger from Restaurant A at Mon Sep 18 7:00 PM",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestOrderCommandCancel(t *testing.T) {
	cfg := writeConfig(t, "")
	out, err := run(t, "--config", cfg, "order",
		"--restaurant", "restaurant-b", "--meal", "Pad Thai", "--time", "Mon Sep 18 6:00 PM", "--cancel")
	if err != nil {
		t.Fatalf("order: %v", err)
	}
	if !strings.Contains(out, "Order cancelled") || strings.Contains(out, "Order submitted") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestOrderCommandSuggestsName(t *testing.T) {
	cfg := writeConfig(t, "")
	_, err := run(t, "--config", cfg, "order",
		"--restaurant", "Restaurant A", "--meal", "Burgr", "--time", "Mon Sep 18 7:00 PM")
	if !errors.Is(err, menu.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), `did you mean "Burger"`) {
		t.Fatalf("missing suggestion: %v", err)
	}
}

func TestMenuCommandFromSQLite(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, "[menu]\nsource = \"sqlite\"\n[database]\npath = \""+filepath.ToSlash(filepath.Join(dir, "data", "menu.db"))+"\"\n")
	out, err := run(t, "--config", cfg, "menu")
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	for _, want := range []string{"Restaurant A", "Burger", "$8.00", "Restaurant C", "Tiramisu"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "data", "menu.db")); err != nil {
		t.Fatalf("expected database file: %v", err)
	}
}

func TestOrderByIDWorksAgainstSQLite(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, "[menu]\nsource = \"sqlite\"\n[database]\npath = \""+filepath.ToSlash(filepath.Join(dir, "menu.db"))+"\"\n")
	out, err := run(t, "--config", cfg, "order",
		"--restaurant", "restaurant-b", "--meal", "b-padthai", "--time", "Mon Sep 18 6:00 PM")
	if err != nil {
		t.Fatalf("order: %v", err)
	}
	if !strings.Contains(out, "Order submitted: Pad Thai from Restaurant B at Mon Sep 18 6:00 PM") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestConfigInitWritesLoadableFile(t *testing.T) {
	t.Setenv("BUFFBITES_UI_LOCALE", "es")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	out, err := run(t, "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("output = %q", out)
	}
	if _, err := run(t, "--config", path, "config", "init"); err == nil {
		t.Fatalf("expected refusal to overwrite")
	}
	if _, err := run(t, "--config", path, "config", "init", "--force"); err != nil {
		t.Fatalf("config init --force: %v", err)
	}

	t.Setenv("BUFFBITES_UI_LOCALE", "")
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI.Locale != "es" || cfg.Menu.Source != config.MenuSourceBuiltin {
		t.Fatalf("saved config = %+v", cfg)
	}
}

func TestBadConfigFails(t *testing.T) {
	cfg := writeConfig(t, "[menu]\nsource = \"carrier-pigeon\"\n")
	if _, err := run(t, "--config", cfg, "menu"); err == nil {
		t.Fatalf("expected config error")
	}
}

func TestPlaceOrderLeavesFlowAtStart(t *testing.T) {
	loc, err := i18n.New("es")
	if err != nil {
		t.Fatalf("locale: %v", err)
	}
	f := flow.New(order.NewController())
	var out bytes.Buffer
	err = placeOrder(&out, f, menu.BuiltinRestaurants(), []string{"Mon Sep 18 8:00 PM"}, loc, "€", orderOptions{
		restaurant: "Restaurant C",
		meal:       "Caesar Salad",
		slot:       "mon sep 18 8:00 pm",
	})
	if err != nil {
		t.Fatalf("placeOrder: %v", err)
	}
	if f.Current() != flow.ScreenStart || !f.State().IsEmpty() {
		t.Fatalf("flow not reset: %s %+v", f.Current(), f.State())
	}
	if !strings.Contains(out.String(), "€7.75") {
		t.Fatalf("missing subtotal:\n%s", out.String())
	}
}

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/buffbites/internal/config"
	"github.com/jask/buffbites/internal/flow"
	"github.com/jask/buffbites/internal/menu"
	"github.com/jask/buffbites/internal/order"
)

type failingCatalog struct{}

func (failingCatalog) Restaurants(context.Context) ([]menu.Restaurant, error) {
	return nil, errors.New("menu offline")
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	a := New(context.Background(), flow.New(order.NewController()), Deps{
		Catalog:  menu.Builtin(),
		Slots:    config.DefaultSlots,
		Currency: "$",
	})
	msg := a.Init()()
	a.Update(msg)
	return a
}

func press(a *App, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		_, cmd = a.Update(msg)
	}
	return cmd
}

func TestKeyDrivenOrderAndSubmit(t *testing.T) {
	a := newTestApp(t)
	f := a.Flow()

	press(a, "enter") // Restaurant A
	if f.Current() != flow.ScreenMeal {
		t.Fatalf("screen = %s", f.Current())
	}
	press(a, "enter") // Burger
	if got := f.State().SubtotalCents; got != 800 {
		t.Fatalf("subtotal = %d", got)
	}
	if !strings.Contains(a.View(), "Subtotal: $8.00") {
		t.Fatalf("meal view missing subtotal:\n%s", a.View())
	}

	press(a, "n", "down", "enter") // 7:00 PM
	if f.State().DeliveryTime != "Mon Sep 18 7:00 PM" {
		t.Fatalf("delivery = %q", f.State().DeliveryTime)
	}
	press(a, "n")
	if f.Current() != flow.ScreenSummary {
		t.Fatalf("screen = %s", f.Current())
	}
	view := a.View()
	for _, want := range []string{"Order Summary", "Restaurant A", "Burger", "Mon Sep 18 7:00 PM", "$8.00"} {
		if !strings.Contains(view, want) {
			t.Fatalf("summary missing %q:\n%s", want, view)
		}
	}

	press(a, "s")
	if f.Current() != flow.ScreenStart || !f.State().IsEmpty() {
		t.Fatalf("after submit screen=%s state=%+v", f.Current(), f.State())
	}
	if !strings.Contains(a.status, "Order submitted: Burger from Restaurant A") {
		t.Fatalf("status = %q", a.status)
	}
}

func TestMealCancelResetsAndReportsStatus(t *testing.T) {
	a := newTestApp(t)
	press(a, "down", "enter") // Restaurant B
	press(a, "down", "enter") // Green Curry
	cmd := press(a, "c")
	if a.Flow().Current() != flow.ScreenStart || !a.Flow().State().IsEmpty() {
		t.Fatalf("cancel from meal did not reset")
	}
	if cmd == nil {
		t.Fatalf("expected a status command")
	}
	a.Update(cmd())
	if a.status != "Order cancelled" {
		t.Fatalf("status = %q", a.status)
	}
}

func TestDeliveryCancelReturnsToMealKeepingOrder(t *testing.T) {
	a := newTestApp(t)
	press(a, "enter", "enter", "n")
	press(a, "c")
	f := a.Flow()
	if f.Current() != flow.ScreenMeal {
		t.Fatalf("screen = %s", f.Current())
	}
	if f.State().MenuItemName() != "Burger" || f.State().RestaurantName() != "Restaurant A" {
		t.Fatalf("order changed: %+v", f.State())
	}
}

func TestBackAffordanceOnlyOffStart(t *testing.T) {
	a := newTestApp(t)
	if strings.Contains(a.renderHeader(), "Back") {
		t.Fatalf("start header should not offer back")
	}
	press(a, "enter")
	if !strings.Contains(a.renderHeader(), "Back") {
		t.Fatalf("meal header should offer back")
	}
	press(a, "esc")
	if a.Flow().Current() != flow.ScreenStart {
		t.Fatalf("esc should navigate up, screen = %s", a.Flow().Current())
	}
	if a.Flow().State().RestaurantName() != "Restaurant A" {
		t.Fatalf("back must not reset the order")
	}
}

func TestMealListFollowsSelectedRestaurant(t *testing.T) {
	a := newTestApp(t)
	press(a, "down", "down", "enter") // Restaurant C
	items := a.mealPicker.Items()
	if len(items) == 0 || items[0].Label != "Margherita Pizza" {
		t.Fatalf("meal items = %+v", items)
	}
}

func TestKeysOutsideScopeAreIgnored(t *testing.T) {
	a := newTestApp(t)
	press(a, "n", "s", "c")
	if a.Flow().Current() != flow.ScreenStart {
		t.Fatalf("screen = %s", a.Flow().Current())
	}
	if a.statusErr {
		t.Fatalf("unexpected error status %q", a.status)
	}
}

func TestMenuLoadErrorShowsOnStatusBar(t *testing.T) {
	a := New(context.Background(), flow.New(nil), Deps{Catalog: failingCatalog{}, Slots: config.DefaultSlots})
	a.Update(a.Init()())
	if !a.statusErr || !strings.Contains(a.renderStatusBar(), "menu offline") {
		t.Fatalf("status = %q err=%v", a.status, a.statusErr)
	}
	press(a, "enter")
	if a.Flow().Current() != flow.ScreenStart {
		t.Fatalf("enter with no restaurants moved to %s", a.Flow().Current())
	}
}

func TestSuccessfulIntentClearsErrorStatus(t *testing.T) {
	a := newTestApp(t)
	a.Update(errMsg{errors.New("menu refresh failed")})
	if !a.statusErr {
		t.Fatalf("expected error status")
	}
	press(a, "enter")
	if a.statusErr || a.status != "" {
		t.Fatalf("status after select = %q err=%v", a.status, a.statusErr)
	}
}

func TestPickersFollowOrderChangesOutsideKeys(t *testing.T) {
	a := newTestApp(t)
	press(a, "enter") // Restaurant A
	rs := menu.BuiltinRestaurants()
	if err := a.Flow().SelectMeal(rs[0].MenuItems[2]); err != nil {
		t.Fatalf("select meal: %v", err)
	}
	if item, ok := a.mealPicker.CurrentItem(); !ok || item.Label != "Fries" {
		t.Fatalf("meal cursor = %+v", item)
	}
	a.Flow().Order().SetRestaurant(rs[1])
	if items := a.mealPicker.Items(); len(items) == 0 || items[0].Label != "Pad Thai" {
		t.Fatalf("meal items = %+v", items)
	}
}

func TestQuit(t *testing.T) {
	a := newTestApp(t)
	cmd := press(a, "q")
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if a.View() != "Goodbye\n" {
		t.Fatalf("view = %q", a.View())
	}
}

// Package tui renders the ordering flow in the terminal. Screens read order
// snapshots from the flow and turn key presses into flow intents; all
// navigation and state rules live in the flow package.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/buffbites/internal/flow"
	"github.com/jask/buffbites/internal/i18n"
	"github.com/jask/buffbites/internal/menu"
	"github.com/jask/buffbites/internal/order"
)

// Deps are the collaborators the UI needs.
type Deps struct {
	Catalog   menu.Catalog
	Slots     []string
	Localizer *i18n.Localizer
	Currency  string
	Logger    *zap.Logger
}

// App is the bubbletea model for one ordering session.
type App struct {
	ctx    context.Context
	deps   Deps
	flow   *flow.Flow
	keys   *KeyRegistry
	logger *zap.Logger

	restaurants []menu.Restaurant
	loaded      bool

	startPicker    *Picker
	mealPicker     *Picker
	mealFor        string
	deliveryPicker *Picker

	width     int
	height    int
	status    string
	statusErr bool
	quitting  bool
}

func New(ctx context.Context, f *flow.Flow, deps Deps) *App {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Localizer == nil {
		deps.Localizer, _ = i18n.New("en")
	}
	a := &App{
		ctx:            ctx,
		deps:           deps,
		flow:           f,
		keys:           NewKeyRegistry(DefaultKeyBindings()),
		logger:         deps.Logger.Named("tui"),
		startPicker:    NewPicker(nil),
		mealPicker:     NewPicker(nil),
		deliveryPicker: NewPicker(slotItems(deps.Slots)),
		width:          80,
		height:         24,
	}
	f.Order().Subscribe(a.syncPickers)
	f.OnSubmit(func(s order.State) {
		a.setStatus(a.deps.Localizer.Tf("order_submitted", map[string]any{
			"Meal":       s.MenuItemName(),
			"Restaurant": s.RestaurantName(),
			"Time":       s.DeliveryTime,
		}))
	})
	return a
}

func (a *App) Init() tea.Cmd {
	return a.loadMenu()
}

func (a *App) loadMenu() tea.Cmd {
	return func() tea.Msg {
		rs, err := a.deps.Catalog.Restaurants(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return menuLoadedMsg{restaurants: rs}
	}
}

// Flow exposes the session flow, mainly for tests.
func (a *App) Flow() *flow.Flow {
	return a.flow
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case menuLoadedMsg:
		a.restaurants = m.restaurants
		a.loaded = true
		a.startPicker.SetItems(restaurantItems(m.restaurants))
		a.logger.Debug("menu loaded", zap.Int("restaurants", len(m.restaurants)))
		return a, nil
	case errMsg:
		a.setError(m.err)
		a.logger.Error("ui error", zap.Error(m.err))
		return a, nil
	case StatusMsg:
		a.status = m.Text
		a.statusErr = m.IsErr
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(m)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	scope := a.scope()
	if a.keys.IsAction(msg, actionQuit, scope) {
		a.quitting = true
		return a, tea.Quit
	}
	action, ok := a.keys.ActionFor(msg, scope)
	if !ok {
		return a, nil
	}

	switch action {
	case actionUp, actionDown, actionSelect:
		return a, a.handlePicker(action)
	case actionNext:
		return a, a.apply(a.flow.Next())
	case actionBack:
		return a, a.apply(a.flow.Back())
	case actionSubmit:
		return a, a.apply(a.flow.Submit())
	case actionCancel:
		resets := a.flow.Current() != flow.ScreenDelivery
		if err := a.flow.Cancel(); err != nil {
			return a, a.apply(err)
		}
		a.apply(nil)
		if resets {
			return a, StatusCmd(a.deps.Localizer.T("order_cancelled"))
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handlePicker(action string) tea.Cmd {
	var res PickerResult
	switch a.flow.Current() {
	case flow.ScreenStart:
		res = a.startPicker.HandleAction(action)
		if res.Action == PickerActionSelected {
			r, err := menu.FindRestaurant(a.restaurants, res.Item.ID)
			if err != nil {
				return a.apply(err)
			}
			return a.apply(a.flow.SelectRestaurant(r))
		}
	case flow.ScreenMeal:
		res = a.mealPicker.HandleAction(action)
		if res.Action == PickerActionSelected {
			st := a.flow.State()
			if st.Restaurant == nil {
				return a.apply(errors.New("no restaurant selected"))
			}
			item, err := menu.FindItem(st.Restaurant.MenuItems, res.Item.ID)
			if err != nil {
				return a.apply(err)
			}
			return a.apply(a.flow.SelectMeal(item))
		}
	case flow.ScreenDelivery:
		res = a.deliveryPicker.HandleAction(action)
		if res.Action == PickerActionSelected {
			return a.apply(a.flow.SelectDeliveryTime(res.Item.ID))
		}
	}
	return nil
}

// apply reports err on the status line. A successful intent clears an
// earlier error but keeps informational status.
func (a *App) apply(err error) tea.Cmd {
	if err != nil {
		a.setError(err)
		a.logger.Warn("intent failed", zap.Stringer("screen", a.flow.Current()), zap.Error(err))
		return nil
	}
	if a.statusErr {
		a.setError(nil)
	}
	return nil
}

// syncPickers follows order snapshots: the meal list tracks the chosen
// restaurant and cursors start on the chosen option.
func (a *App) syncPickers(st order.State) {
	restID := ""
	if st.Restaurant != nil {
		restID = st.Restaurant.ID
	}
	if restID != a.mealFor {
		a.mealFor = restID
		a.mealPicker = NewPicker(nil)
		if st.Restaurant != nil {
			a.mealPicker.SetItems(mealItems(st.Restaurant.MenuItems, a.deps.Currency))
		}
	}
	if st.MenuItem != nil {
		a.mealPicker.Focus(st.MenuItem.ID)
	}
	if st.IsEmpty() {
		a.deliveryPicker = NewPicker(slotItems(a.deps.Slots))
	} else if st.DeliveryTime != "" {
		a.deliveryPicker.Focus(st.DeliveryTime)
	}
}

func (a *App) scope() string {
	switch a.flow.Current() {
	case flow.ScreenMeal:
		return scopeMeal
	case flow.ScreenDelivery:
		return scopeDelivery
	case flow.ScreenSummary:
		return scopeSummary
	default:
		return scopeStart
	}
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusErr = false
}

func (a *App) setError(err error) {
	if err == nil {
		a.status = ""
		a.statusErr = false
		return
	}
	a.status = err.Error()
	a.statusErr = true
}

func restaurantItems(rs []menu.Restaurant) []PickerItem {
	out := make([]PickerItem, 0, len(rs))
	for _, r := range rs {
		out = append(out, PickerItem{ID: r.ID, Label: r.Name, Note: r.Description})
	}
	return out
}

func mealItems(items []menu.MenuItem, currency string) []PickerItem {
	out := make([]PickerItem, 0, len(items))
	for _, it := range items {
		out = append(out, PickerItem{
			ID:    it.ID,
			Label: it.Name,
			Meta:  order.FormatCents(it.PriceCents, currency),
			Note:  it.Description,
		})
	}
	return out
}

func slotItems(slots []string) []PickerItem {
	out := make([]PickerItem, 0, len(slots))
	for _, s := range slots {
		out = append(out, PickerItem{ID: s, Label: s})
	}
	return out
}

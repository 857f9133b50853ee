package flow

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/buffbites/internal/menu"
	"github.com/jask/buffbites/internal/order"
)

// ErrInvalidTransition is returned when the current screen does not accept
// an event. The flow and the order are left unchanged.
var ErrInvalidTransition = errors.New("flow: invalid transition")

type navOp int

const (
	navStay navOp = iota
	navPush
	navPop
	navResetToStart
)

type rule struct {
	to Screen
	op navOp
}

// transitions is the whole navigation graph. Back is handled separately
// because it applies to every screen but the root.
var transitions = map[Screen]map[Event]rule{
	ScreenStart: {
		EventSelectRestaurant: {to: ScreenMeal, op: navPush},
	},
	ScreenMeal: {
		EventSelectMeal: {to: ScreenMeal, op: navStay},
		EventNext:       {to: ScreenDelivery, op: navPush},
		EventCancel:     {to: ScreenStart, op: navResetToStart},
	},
	ScreenDelivery: {
		EventSelectTime: {to: ScreenDelivery, op: navStay},
		EventNext:       {to: ScreenSummary, op: navPush},
		// Cancel here only steps back to Meal and keeps the order.
		EventCancel: {to: ScreenMeal, op: navPop},
	},
	ScreenSummary: {
		EventSubmit: {to: ScreenStart, op: navResetToStart},
		EventCancel: {to: ScreenStart, op: navResetToStart},
	},
}

// Accepts reports whether screen has a rule for ev.
func Accepts(screen Screen, ev Event) bool {
	if ev == EventBack {
		return screen != ScreenStart
	}
	_, ok := transitions[screen][ev]
	return ok
}

// Flow drives one ordering session: it owns the back stack and issues
// mutations to the order controller.
type Flow struct {
	nav      *Navigator
	order    *order.Controller
	logger   *zap.Logger
	onSubmit []func(order.State)
}

type Option func(*Flow)

func WithLogger(l *zap.Logger) Option {
	return func(f *Flow) {
		if l != nil {
			f.logger = l
		}
	}
}

func New(ctrl *order.Controller, opts ...Option) *Flow {
	if ctrl == nil {
		ctrl = order.NewController()
	}
	f := &Flow{
		nav:    NewNavigator(ScreenStart),
		order:  ctrl,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Flow) Current() Screen {
	return f.nav.Current()
}

func (f *Flow) CanNavigateBack() bool {
	return f.nav.CanNavigateBack()
}

func (f *Flow) History() []Screen {
	return f.nav.History()
}

// State is the current order snapshot.
func (f *Flow) State() order.State {
	return f.order.State()
}

// Order exposes the controller for subscriptions.
func (f *Flow) Order() *order.Controller {
	return f.order
}

// OnSubmit registers fn to receive the order right before submit resets it.
func (f *Flow) OnSubmit(fn func(order.State)) {
	f.onSubmit = append(f.onSubmit, fn)
}

func (f *Flow) SelectRestaurant(r menu.Restaurant) error {
	return f.fire(EventSelectRestaurant, func() { f.order.SetRestaurant(r) })
}

func (f *Flow) SelectMeal(item menu.MenuItem) error {
	return f.fire(EventSelectMeal, func() { f.order.UpdateMeal(item) })
}

func (f *Flow) SelectDeliveryTime(slot string) error {
	return f.fire(EventSelectTime, func() { f.order.UpdateDeliveryTime(slot) })
}

func (f *Flow) Next() error {
	return f.fire(EventNext, nil)
}

func (f *Flow) Cancel() error {
	return f.fire(EventCancel, nil)
}

func (f *Flow) Submit() error {
	return f.fire(EventSubmit, func() {
		s := f.order.State()
		f.logger.Info("order submitted",
			zap.String("restaurant", s.RestaurantName()),
			zap.String("meal", s.MenuItemName()),
			zap.String("delivery_time", s.DeliveryTime),
			zap.Int64("subtotal_cents", s.SubtotalCents),
		)
		for _, fn := range f.onSubmit {
			fn(s)
		}
	})
}

// Back pops one screen without touching the order.
func (f *Flow) Back() error {
	from := f.nav.Current()
	if !f.nav.NavigateUp() {
		return f.reject(from, EventBack)
	}
	f.logger.Debug("transition",
		zap.Stringer("from", from),
		zap.Stringer("event", EventBack),
		zap.Stringer("to", f.nav.Current()),
	)
	return nil
}

func (f *Flow) fire(ev Event, effect func()) error {
	from := f.nav.Current()
	r, ok := transitions[from][ev]
	if !ok {
		return f.reject(from, ev)
	}
	if effect != nil {
		effect()
	}
	switch r.op {
	case navPush:
		f.nav.Navigate(r.to)
	case navPop:
		f.nav.NavigateUp()
	case navResetToStart:
		f.order.Reset()
		f.nav.PopBackStack(ScreenStart, false)
	}
	f.logger.Debug("transition",
		zap.Stringer("from", from),
		zap.Stringer("event", ev),
		zap.Stringer("to", f.nav.Current()),
	)
	return nil
}

func (f *Flow) reject(from Screen, ev Event) error {
	f.logger.Warn("rejected event", zap.Stringer("screen", from), zap.Stringer("event", ev))
	return fmt.Errorf("%w: %s on %s", ErrInvalidTransition, ev, from)
}

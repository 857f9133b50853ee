// Package order owns the in-progress order for one ordering session.
package order

import (
	"slices"

	"github.com/jask/buffbites/internal/menu"
)

// State is an immutable snapshot of the order. Absent selections are nil
// (restaurant, item) or empty (delivery time).
type State struct {
	Restaurant    *menu.Restaurant
	MenuItem      *menu.MenuItem
	DeliveryTime  string
	SubtotalCents int64
}

// IsEmpty reports whether nothing has been selected yet.
func (s State) IsEmpty() bool {
	return s.Restaurant == nil && s.MenuItem == nil && s.DeliveryTime == "" && s.SubtotalCents == 0
}

func (s State) RestaurantName() string {
	if s.Restaurant == nil {
		return ""
	}
	return s.Restaurant.Name
}

func (s State) MenuItemName() string {
	if s.MenuItem == nil {
		return ""
	}
	return s.MenuItem.Name
}

// Controller holds the single mutable order and is the only thing that
// changes it. It is not safe for concurrent use; the UI event loop calls
// it from one goroutine.
type Controller struct {
	restaurant   *menu.Restaurant
	menuItem     *menu.MenuItem
	deliveryTime string
	subtotal     int64

	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func(State)
}

func NewController() *Controller {
	return &Controller{}
}

// SetRestaurant records the chosen restaurant. Other fields are untouched.
func (c *Controller) SetRestaurant(r menu.Restaurant) {
	clone := r.Clone()
	c.restaurant = &clone
	c.publish()
}

// UpdateMeal records the chosen item and recomputes the subtotal.
func (c *Controller) UpdateMeal(item menu.MenuItem) {
	it := item
	c.menuItem = &it
	c.subtotal = it.PriceCents
	c.publish()
}

// UpdateDeliveryTime records the chosen slot label.
func (c *Controller) UpdateDeliveryTime(slot string) {
	c.deliveryTime = slot
	c.publish()
}

// Reset returns the order to its empty initial state.
func (c *Controller) Reset() {
	c.restaurant = nil
	c.menuItem = nil
	c.deliveryTime = ""
	c.subtotal = 0
	c.publish()
}

// State returns a snapshot; mutating it does not affect the controller.
func (c *Controller) State() State {
	s := State{
		DeliveryTime:  c.deliveryTime,
		SubtotalCents: c.subtotal,
	}
	if c.restaurant != nil {
		r := c.restaurant.Clone()
		s.Restaurant = &r
	}
	if c.menuItem != nil {
		it := *c.menuItem
		s.MenuItem = &it
	}
	return s
}

// Subscribe registers fn to receive a snapshot after every mutation.
// The returned func removes the subscription.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, observer{id: id, fn: fn})
	return func() {
		c.observers = slices.DeleteFunc(slices.Clone(c.observers), func(o observer) bool {
			return o.id == id
		})
	}
}

func (c *Controller) publish() {
	if len(c.observers) == 0 {
		return
	}
	s := c.State()
	// Observers may unsubscribe while being notified.
	for _, o := range slices.Clone(c.observers) {
		o.fn(s)
	}
}

// Package flow is the ordering navigation graph: which screen is showing,
// which events each screen accepts, and what each event does to the order.
package flow

// Screen identifies one step of the ordering flow.
type Screen int

const (
	ScreenStart Screen = iota
	ScreenMeal
	ScreenDelivery
	ScreenSummary
)

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenMeal:
		return "meal"
	case ScreenDelivery:
		return "delivery"
	case ScreenSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Event is a user intent fired at the current screen.
type Event int

const (
	EventSelectRestaurant Event = iota
	EventSelectMeal
	EventSelectTime
	EventNext
	EventCancel
	EventSubmit
	EventBack
)

func (e Event) String() string {
	switch e {
	case EventSelectRestaurant:
		return "select-restaurant"
	case EventSelectMeal:
		return "select-meal"
	case EventSelectTime:
		return "select-time"
	case EventNext:
		return "next"
	case EventCancel:
		return "cancel"
	case EventSubmit:
		return "submit"
	case EventBack:
		return "back"
	default:
		return "unknown"
	}
}

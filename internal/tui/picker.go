package tui

type PickerItem struct {
	ID    string
	Label string
	Meta  string
	Note  string
}

type PickerAction int

const (
	PickerActionNone PickerAction = iota
	PickerActionMoved
	PickerActionSelected
)

type PickerResult struct {
	Action PickerAction
	Item   PickerItem
}

// Picker is a single-choice option list. It tracks the cursor only; which
// option is chosen lives in the order.
type Picker struct {
	items  []PickerItem
	cursor int
}

func NewPicker(items []PickerItem) *Picker {
	p := &Picker{}
	p.SetItems(items)
	return p
}

func (p *Picker) Items() []PickerItem {
	if p == nil {
		return nil
	}
	return append([]PickerItem(nil), p.items...)
}

func (p *Picker) Cursor() int {
	if p == nil {
		return 0
	}
	return p.cursor
}

func (p *Picker) SetItems(items []PickerItem) {
	if p == nil {
		return
	}
	p.items = append([]PickerItem(nil), items...)
	p.clamp()
}

// Focus moves the cursor to the item with id, if present.
func (p *Picker) Focus(id string) {
	if p == nil {
		return
	}
	for i, it := range p.items {
		if it.ID == id {
			p.cursor = i
			return
		}
	}
}

func (p *Picker) CursorUp() {
	if p == nil {
		return
	}
	if p.cursor > 0 {
		p.cursor--
	}
}

func (p *Picker) CursorDown() {
	if p == nil {
		return
	}
	if p.cursor < len(p.items)-1 {
		p.cursor++
	}
}

func (p *Picker) CurrentItem() (PickerItem, bool) {
	if p == nil || len(p.items) == 0 {
		return PickerItem{}, false
	}
	return p.items[p.cursor], true
}

func (p *Picker) HandleAction(action string) PickerResult {
	if p == nil {
		return PickerResult{Action: PickerActionNone}
	}
	switch action {
	case actionUp:
		before := p.cursor
		p.CursorUp()
		if p.cursor != before {
			return PickerResult{Action: PickerActionMoved}
		}
	case actionDown:
		before := p.cursor
		p.CursorDown()
		if p.cursor != before {
			return PickerResult{Action: PickerActionMoved}
		}
	case actionSelect:
		if item, ok := p.CurrentItem(); ok {
			return PickerResult{Action: PickerActionSelected, Item: item}
		}
	}
	return PickerResult{Action: PickerActionNone}
}

func (p *Picker) clamp() {
	maxIdx := len(p.items) - 1
	if p.cursor > maxIdx {
		p.cursor = maxIdx
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/buffbites/internal/flow"
	"github.com/jask/buffbites/internal/order"
)

var screenTitles = map[flow.Screen]string{
	flow.ScreenStart:    "app_name",
	flow.ScreenMeal:     "choose_meal",
	flow.ScreenDelivery: "choose_delivery_time",
	flow.ScreenSummary:  "order_summary",
}

func (a *App) View() string {
	if a.quitting {
		return "Goodbye\n"
	}
	header := a.renderHeader()
	status := a.renderStatusBar()
	footer := a.renderFooter()
	available := a.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if available < 0 {
		available = 0
	}
	body := fitHeight(a.renderBody(), available)
	view := strings.Join([]string{header, body, status, footer}, "\n")
	view = fitHeight(view, max(1, a.height))
	return appStyle.Width(max(1, a.width)).MaxWidth(max(1, a.width)).Render(view)
}

func (a *App) renderHeader() string {
	t := a.deps.Localizer
	line := ""
	if a.flow.CanNavigateBack() {
		line = backStyle.Render("← "+t.T("back_button")) + backStyle.Render("  ")
	}
	line += titleStyle.Render(t.T(screenTitles[a.flow.Current()]))
	return renderBar(headerBarStyle, max(1, a.width), line, colorSurface0)
}

func (a *App) renderBody() string {
	t := a.deps.Localizer
	if !a.loaded {
		return mutedStyle.Render(t.T("loading_menu"))
	}
	st := a.flow.State()
	var b strings.Builder
	switch a.flow.Current() {
	case flow.ScreenStart:
		b.WriteString(headingStyle.Render(t.T("choose_restaurant")))
		b.WriteString("\n\n")
		if len(a.restaurants) == 0 {
			b.WriteString(mutedStyle.Render(t.T("no_restaurants")))
			break
		}
		b.WriteString(renderOptions(a.startPicker, "", false))
	case flow.ScreenMeal:
		chosen := ""
		if st.MenuItem != nil {
			chosen = st.MenuItem.ID
		}
		b.WriteString(headingStyle.Render(st.RestaurantName()))
		b.WriteString("\n\n")
		b.WriteString(renderOptions(a.mealPicker, chosen, true))
		b.WriteString("\n\n")
		b.WriteString(a.renderSubtotal(st))
	case flow.ScreenDelivery:
		b.WriteString(renderOptions(a.deliveryPicker, st.DeliveryTime, true))
		b.WriteString("\n\n")
		b.WriteString(a.renderSubtotal(st))
	case flow.ScreenSummary:
		rows := [][2]string{
			{t.T("restaurant"), st.RestaurantName()},
			{t.T("meal"), st.MenuItemName()},
			{t.T("delivery_time"), st.DeliveryTime},
		}
		for _, row := range rows {
			val := row[1]
			if val == "" {
				val = mutedStyle.Render(t.T("not_selected"))
			}
			b.WriteString(labelStyle.Render(row[0]) + val + "\n")
		}
		b.WriteString("\n")
		b.WriteString(a.renderSubtotal(st))
	}
	return b.String()
}

func (a *App) renderSubtotal(st order.State) string {
	amount := order.FormatCents(st.SubtotalCents, a.deps.Currency)
	return subtotalStyle.Render(a.deps.Localizer.Tf("subtotal", map[string]any{"Amount": amount}))
}

// renderOptions draws a picker. With radio set, the chosen item is marked.
func renderOptions(p *Picker, chosen string, radio bool) string {
	items := p.Items()
	lines := make([]string, 0, len(items))
	for i, it := range items {
		prefix := "  "
		if i == p.Cursor() {
			prefix = cursorStyle.Render("> ")
		}
		mark := ""
		if radio {
			mark = "( ) "
			if it.ID == chosen {
				mark = "(•) "
			}
		}
		line := prefix + mark + it.Label
		if it.Meta != "" {
			line += "  " + it.Meta
		}
		if it.Note != "" {
			line += "  " + mutedStyle.Render(it.Note)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderFooter() string {
	bindings := a.keys.Help(a.scope())
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	return renderBar(footerStyle, max(1, a.width), line, bg)
}

func (a *App) renderStatusBar() string {
	msg := strings.TrimSpace(a.status)
	if msg == "" {
		msg = fmt.Sprintf("%s · %s", a.deps.Localizer.T("app_name"), a.flow.Current())
	}
	if a.statusErr {
		return renderBar(statusErrBarStyle, max(1, a.width), msg, colorSurface0)
	}
	return renderBar(statusBarStyle, max(1, a.width), msg, colorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", width-lineW))
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// UI text
const (
	AppTitle      = "🎨 Color Generator"
	AppSubtitle   = "Random colors, one key press away"
	HistoryTitle  = "Recent colors:"
	GenerateLabel = "Generate color"
	CopyLabel     = "📋 Copy"
	FooterText    = "swatch • click a recent color to pick and copy it"
)

const (
	swatchWidth         = 24
	swatchHeight        = 6
	historySwatchWidth  = 11
	historySwatchHeight = 3
)

var (
	panelStyle = lipgloss.NewStyle().
			Background(Base).
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ActiveBorder).
			BorderBackground(Base).
			Padding(1, 3)

	titleStyle = lipgloss.NewStyle().
			Foreground(Rosewater).
			Background(Base).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(Subtext0).
			Background(Base)

	hexStyle = lipgloss.NewStyle().
			Foreground(Text).
			Background(Base).
			Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Foreground(Text).
			Background(ButtonDefault).
			Padding(0, 2)

	primaryButtonStyle = buttonStyle.
				Foreground(Crust).
				Background(ButtonPrimary).
				Bold(true)

	historyCellStyle = lipgloss.NewStyle().
				Width(historySwatchWidth).
				Height(historySwatchHeight).
				Align(lipgloss.Center, lipgloss.Center).
				Border(lipgloss.NormalBorder()).
				BorderForeground(InactiveBorder).
				BorderBackground(Base)

	infoStyle = lipgloss.NewStyle().
			Foreground(Info).
			Background(Base)

	errorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Background(Base).
			Padding(1, 2)

	gap = lipgloss.NewStyle().Background(Base)
)

// View implements tea.Model interface
func (app *App) View() string {
	if app.err != nil {
		return app.errorView()
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		app.headerView(),
		"",
		app.colorView(),
		"",
		app.buttonsView(),
		app.ackView(),
		app.historyView(),
		"",
		app.help.View(app.keys),
		subtleStyle.Render(FooterText),
	)

	return app.scan(app.fill(panelStyle.Render(body)))
}

// headerView renders the title block
func (app *App) headerView() string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render(AppTitle),
		subtleStyle.Render(AppSubtitle),
	)
}

// colorView renders the swatch box next to its hex and RGB labels
func (app *App) colorView() string {
	swatch := lipgloss.NewStyle().
		Width(swatchWidth).
		Height(swatchHeight).
		Background(lipgloss.Color(app.current)).
		Render("")

	info := lipgloss.JoinVertical(
		lipgloss.Left,
		hexStyle.Render(string(app.current)),
		subtleStyle.Render("RGB: "+app.current.RGB()),
	)

	return lipgloss.JoinHorizontal(lipgloss.Center, swatch, gap.Render("   "), info)
}

// buttonsView renders the generate and copy buttons
func (app *App) buttonsView() string {
	generate := app.mark(zoneGenerate, primaryButtonStyle.Render(GenerateLabel))
	copyButton := app.mark(zoneCopy, buttonStyle.Render(CopyLabel))
	return lipgloss.JoinHorizontal(lipgloss.Top, generate, gap.Render("  "), copyButton)
}

// ackView renders the copy acknowledgement line, blank when inactive
func (app *App) ackView() string {
	if !app.ack.Active() {
		return ""
	}
	return app.ack.View()
}

// historyView renders up to MaxHistory clickable swatches
func (app *App) historyView() string {
	if len(app.history) == 0 {
		return ""
	}

	cells := make([]string, 0, len(app.history)*2)
	for i, c := range app.history {
		style := historyCellStyle.
			Background(lipgloss.Color(c)).
			Foreground(c.Foreground())
		if c == app.current {
			style = style.BorderForeground(ActiveBorder)
		}

		label := lipgloss.JoinVertical(lipgloss.Center, strconv.Itoa(i+1), string(c))
		if i > 0 {
			cells = append(cells, gap.Render(" "))
		}
		cells = append(cells, app.mark(historyZone(i), style.Render(label)))
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		"",
		infoStyle.Render(HistoryTitle),
		lipgloss.JoinHorizontal(lipgloss.Top, cells...),
	)
}

// errorView renders a fatal error while the program shuts down
func (app *App) errorView() string {
	appErr := classifyError(app.err)
	content := fmt.Sprintf("❌ %s\n\n💡 %s", appErr.Err.Error(), appErr.Suggestion)
	return app.fill(errorStyle.Render(content))
}

// fill centers content on a window-sized background in the current color
func (app *App) fill(content string) string {
	if app.width == 0 || app.height == 0 {
		return content
	}
	return lipgloss.Place(
		app.width,
		app.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
		lipgloss.WithWhitespaceBackground(lipgloss.Color(app.current)),
	)
}

// scan resolves zone markers into positions
func (app *App) scan(view string) string {
	if app.zones == nil {
		return view
	}
	return app.zones.Scan(view)
}

package settings

import (
	"strings"

	"usdt-send-tui/config"
	"usdt-send-tui/helpers"
	"usdt-send-tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// Nav returns the navigation bar for settings view
func Nav(width int, mode string) string {
	var left string
	if mode == "add" || mode == "edit" || mode == "apikey" {
		left = strings.Join([]string{
			styles.Key("Enter") + " save",
			styles.Key("Esc") + " cancel",
		}, "   ")
	} else {
		left = strings.Join([]string{
			styles.Key("↑/↓") + " select",
			styles.Key("Enter") + " activate",
			styles.Key("a") + " add",
			styles.Key("e") + " edit",
			styles.Key("d") + " delete",
			styles.Key("t") + " TRON API key",
			styles.Key("l") + " debug log",
			styles.Key("Esc") + " back",
		}, "   ")
	}

	return styles.NavStyle.Width(width).Render(left)
}

// Render renders the endpoint settings view
func Render(endpoints []config.Endpoint, selectedIdx int, tronAPIKey string) string {
	h := styles.TitleStyle.Render("Settings")

	lines := []string{h, ""}

	if len(endpoints) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("No RPC endpoints saved."))
		lines = append(lines, "")
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("Press ")+styles.Key("a")+lipgloss.NewStyle().Foreground(styles.CMuted).Render(" to add your first endpoint."))
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("RPC endpoint presets (EVM):"))
		lines = append(lines, "")

		for i, ep := range endpoints {
			var marker string
			if ep.Active {
				marker = lipgloss.NewStyle().Foreground(styles.CAccent).Render("● ")
			} else {
				marker = lipgloss.NewStyle().Foreground(styles.CMuted).Render("○ ")
			}

			nameStyle := lipgloss.NewStyle().Foreground(styles.CText)
			urlStyle := lipgloss.NewStyle().Foreground(styles.CMuted)

			if i == selectedIdx {
				nameStyle = nameStyle.Background(styles.CPanel).Foreground(styles.CAccent2).Bold(true)
				urlStyle = urlStyle.Background(styles.CPanel)
				marker = lipgloss.NewStyle().Foreground(styles.CAccent2).Render("▶ ")
			}

			lines = append(lines, marker+nameStyle.Render(ep.Name))
			lines = append(lines, "  "+urlStyle.Render(ep.URL))
			lines = append(lines, "")
		}
	}

	lines = append(lines, "")
	keyLine := lipgloss.NewStyle().Foreground(styles.CMuted).Render("TRON API key preset: ")
	if tronAPIKey == "" {
		keyLine += lipgloss.NewStyle().Foreground(styles.CWarn).Render("not set")
	} else {
		keyLine += lipgloss.NewStyle().Foreground(styles.CText).Render(helpers.ShortenAddr(tronAPIKey))
	}
	lines = append(lines, keyLine)

	return strings.Join(lines, "\n")
}

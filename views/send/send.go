package send

import (
	"strings"

	"usdt-send-tui/styles"
	"usdt-send-tui/transfer"

	"github.com/charmbracelet/lipgloss"
)

// FormState carries everything the send page needs from the model. The
// page is a pure renderer; all bookkeeping stays in the update loop.
type FormState struct {
	Network        transfer.Network
	NetworkFocused bool
	CredentialView string // endpoint input for EVM, API key input for TRON
	RecipientView  string
	AmountView     string
	SecretView     string
	SendFocused    bool
	Sending        bool
	SpinnerView    string
}

// Render renders the send form page
func Render(s FormState) string {
	header := styles.TitleStyle.Render("Send USDT")
	subtitle := lipgloss.NewStyle().Foreground(styles.CMuted).
		Render("Simulated transfer — nothing is signed or broadcast")

	lines := []string{header, subtitle, "", networkRow(s.Network, s.NetworkFocused), ""}

	if s.Network == "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).
			Render("Choose a network to unlock the endpoint field."))
	} else {
		lines = append(lines, s.CredentialView)
	}

	lines = append(lines,
		"",
		s.RecipientView,
		"",
		s.AmountView,
		"",
		s.SecretView,
		"",
	)

	if s.Sending {
		lines = append(lines, s.SpinnerView+" Sending…")
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).
			Render("Submit is disabled until the transfer completes; fields stay editable."))
	} else if s.SendFocused {
		lines = append(lines, styles.ButtonActiveStyle.Render("Send"))
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("Press Enter to send"))
	} else {
		lines = append(lines, styles.ButtonStyle.Render("Send"))
		lines = append(lines, lipgloss.NewStyle().Foreground(styles.CMuted).Render("Tab to the button or press Ctrl+s"))
	}

	return strings.Join(lines, "\n")
}

func networkRow(n transfer.Network, focused bool) string {
	label := styles.LabelStyle.Render("Network: ")

	value := "— select —"
	if n != "" {
		value = string(n)
	}

	if focused {
		return label + lipgloss.NewStyle().Foreground(styles.CAccent2).Bold(true).
			Render("◀ "+value+" ▶")
	}
	return label + lipgloss.NewStyle().Foreground(styles.CText).Render(value)
}

// Nav returns the navigation bar for the send page
func Nav(width int, sending bool) string {
	items := []string{
		styles.Key("Tab") + " next field",
		styles.Key("Enter") + " next/send",
		styles.Key("Ctrl+s") + " send",
		styles.Key("Ctrl+p") + " preset",
		styles.Key("Ctrl+e") + " settings",
		styles.Key("Ctrl+l") + " debug log",
		styles.Key("Esc") + " quit",
	}
	if sending {
		items = append(items, lipgloss.NewStyle().Foreground(styles.CWarn).Render("sending…"))
	}

	return styles.NavStyle.Width(width).Render(strings.Join(items, "   "))
}

package main

import (
	"strings"

	"usdt-send-tui/config"
	"usdt-send-tui/helpers"
	"usdt-send-tui/notify"
	"usdt-send-tui/styles"
	logview "usdt-send-tui/views/log"
	"usdt-send-tui/views/send"
	"usdt-send-tui/views/settings"

	"github.com/charmbracelet/lipgloss"
)

// -------------------- VIEW --------------------

func (m *model) globalHeader() string {
	availableWidth := max(0, m.w-8) // Account for panel padding

	// Network choice on the left
	var netDisplay string
	if m.draft.Network != "" {
		netDisplay = lipgloss.NewStyle().
			Foreground(cAccent2).
			Bold(true).
			Render("Network: " + string(m.draft.Network))
	} else {
		netDisplay = lipgloss.NewStyle().
			Foreground(cMuted).
			Render("Network: none")
	}

	// Sending status on the right
	var statusDisplay string
	if m.sending {
		statusDisplay = lipgloss.NewStyle().
			Foreground(cWarn).
			Bold(true).
			Render(m.spin.View() + " sending")
	} else {
		statusDisplay = lipgloss.NewStyle().
			Foreground(cAccent).
			Bold(true).
			Render("● simulation")
	}

	titleText := lipgloss.NewStyle().Bold(true).
		Render(helpers.FadeString("usdt send", "#7EE787", "#82CFFD"))

	netWidth := lipgloss.Width(netDisplay)
	statusWidth := lipgloss.Width(statusDisplay)
	titleWidth := lipgloss.Width(titleText)
	totalOtherWidth := netWidth + statusWidth + titleWidth

	var headerLine string
	if totalOtherWidth+4 > availableWidth {
		// Not enough space, stack vertically
		headerLine = netDisplay + "\n" + titleText + "\n" + statusDisplay
	} else {
		// Three-column layout: Network | Title (centered) | Status
		remainingSpace := availableWidth - totalOtherWidth
		leftPadding := remainingSpace / 2
		rightPadding := remainingSpace - leftPadding

		leftSpacer := strings.Repeat(" ", max(1, leftPadding))
		rightSpacer := strings.Repeat(" ", max(1, rightPadding))

		headerLine = netDisplay + leftSpacer + titleText + rightSpacer + statusDisplay
	}

	separator := lipgloss.NewStyle().
		Foreground(cBorder).
		Render(strings.Repeat("─", max(0, availableWidth)))

	return headerLine + "\n" + separator
}

func (m *model) renderToast() string {
	if m.toast.Zero() {
		return ""
	}

	box := styles.ToastStyle
	title := styles.ToastTitleStyle
	if m.toast.Severity == notify.SeverityDestructive {
		box = styles.ToastErrorStyle
		title = styles.ToastErrorTitleStyle
	}

	body := title.Render(m.toast.Title) + "  " +
		lipgloss.NewStyle().Foreground(cText).Render(m.toast.Message)
	return box.Render(body)
}

func (m *model) renderReceiptContent() string {
	content := styles.TitleStyle.Render("Transfer Sent (simulated)") + "\n\n"

	content += m.receipt.QRCode() + "\n"
	content += lipgloss.NewStyle().Foreground(cAccent).Render("Explorer link:") + "\n"
	content += m.receipt.ExplorerURL() + "\n\n"

	label := lipgloss.NewStyle().Foreground(cMuted)
	content += label.Render("Network:  ") + string(m.receipt.Network) + "\n"
	content += label.Render("To:       ") + helpers.DisplayAddress(m.receipt.Recipient) + "\n"
	content += label.Render("Amount:   ") + helpers.FormatAmount(m.receipt.Amount) + " USDT\n"
	content += label.Render("Tx hash:  ") + helpers.ShortenAddr(m.receipt.TxHash) + "\n"
	content += label.Render("Sent at:  ") + m.receipt.SentAt.Format("15:04:05") + "\n"

	content += "\n" + label.Render("Nothing was broadcast — this transfer is a simulation.")
	content += "\n" + label.Render("Press c to copy the link • Esc or Enter to close")

	if m.receiptCopied != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(cAccent).Bold(true).Render(m.receiptCopied)
	}

	return content
}

func (m *model) renderReceiptPanel() string {
	contentWidth := max(0, m.w-8)
	centered := lipgloss.NewStyle().Width(contentWidth).Align(lipgloss.Center).Render(m.renderReceiptContent())
	content := panelStyle.Width(max(0, m.w-4)).Render(centered)
	return appStyle.Render(lipgloss.Place(
		m.w, m.h,
		lipgloss.Center, lipgloss.Center,
		content,
	))
}

func (m *model) View() string {
	headerPanel := panelStyle.Width(max(0, m.w-2)).Render(m.globalHeader())

	// Receipt overlay replaces the page until dismissed
	if m.showReceipt {
		return m.renderReceiptPanel()
	}

	var pageContent string
	var nav string

	switch m.activePage {
	case config.PageSend:
		var credView string
		if m.draft.Network.RequiresAPIKey() {
			credView = m.apiKeyInput.View()
		} else {
			credView = m.endpointInput.View()
		}

		formView := send.Render(send.FormState{
			Network:        m.draft.Network,
			NetworkFocused: m.focusedField == focusNetwork,
			CredentialView: credView,
			RecipientView:  m.recipientInput.View(),
			AmountView:     m.amountInput.View(),
			SecretView:     m.secretInput.View(),
			SendFocused:    m.focusedField == focusSend,
			Sending:        m.sending,
			SpinnerView:    m.spin.View(),
		})
		pageContent = panelStyle.Width(max(0, m.w-2)).Render(formView)
		nav = send.Nav(m.w-2, m.sending)

	case config.PageSettings:
		settingsContent := settings.Render(m.endpoints, m.selectedEndpointIdx, m.tronAPIKey)

		// Show form if in add/edit/apikey mode
		if m.settingsMode != "list" && m.form != nil {
			settingsContent = styles.TitleStyle.Render("Settings") + "\n\n" + m.form.View()
		}

		pageContent = panelStyle.Width(max(0, m.w-2)).Render(settingsContent)
		nav = settings.Nav(m.w-2, m.settingsMode)
	}

	sections := []string{headerPanel, pageContent}
	if toast := m.renderToast(); toast != "" {
		sections = append(sections, toast)
	}
	sections = append(sections, nav)

	if m.logEnabled {
		sections = append(sections, logview.Render(m.w, m.h, m.logReady, m.logSpinner.View(), m.logViewport))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

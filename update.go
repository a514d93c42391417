package main

import (
	"fmt"
	"strings"

	"usdt-send-tui/config"
	"usdt-send-tui/helpers"
	"usdt-send-tui/notify"
	"usdt-send-tui/transfer"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
)

// Form field values (global for huh forms)
var (
	tempEndpointName string
	tempEndpointURL  string
	tempAPIKeyField  string
)

func (m *model) createAddEndpointForm() {
	tempEndpointName = ""
	tempEndpointURL = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Endpoint Name").
				Description("A friendly name for this RPC endpoint").
				Value(&tempEndpointName).
				Placeholder("My Infura Node"),

			huh.NewInput().
				Title("RPC URL").
				Description("The complete RPC URL (https://...)").
				Value(&tempEndpointURL).
				Placeholder("https://mainnet.infura.io/v3/..."),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.form.Init()
}

func (m *model) createEditEndpointForm(idx int) {
	if idx < 0 || idx >= len(m.endpoints) {
		return
	}

	ep := m.endpoints[idx]
	tempEndpointName = ep.Name
	tempEndpointURL = ep.URL

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Endpoint Name").
				Value(&tempEndpointName).
				Placeholder("My Node"),

			huh.NewInput().
				Title("RPC URL").
				Value(&tempEndpointURL).
				Placeholder("https://..."),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.form.Init()
}

func (m *model) createAPIKeyForm() {
	tempAPIKeyField = m.tronAPIKey

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("TRON API Key").
				Description("TronGrid API key preset; leave empty to clear").
				Value(&tempAPIKeyField).
				Placeholder("your-trongrid-key"),
		),
	).WithTheme(huh.ThemeCatppuccin())

	m.form.Init()
}

// -------------------- UPDATE --------------------

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle settings form updates first (before message switching)
	if m.activePage == config.PageSettings && m.settingsMode != "list" && m.form != nil {
		// Intercept ESC key to cancel form
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
			m.settingsMode = "list"
			m.form = nil
			return m, nil
		}

		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f

			if m.form.State == huh.StateCompleted {
				switch m.settingsMode {
				case "add":
					if tempEndpointName != "" && tempEndpointURL != "" {
						// First endpoint becomes the active preset
						active := len(m.endpoints) == 0
						m.endpoints = append(m.endpoints, config.Endpoint{
							Name:   tempEndpointName,
							URL:    tempEndpointURL,
							Active: active,
						})
						m.saveConfig()
						m.addLog("success", fmt.Sprintf("Added RPC endpoint `%s`", tempEndpointName))
					}
				case "edit":
					if m.selectedEndpointIdx >= 0 && m.selectedEndpointIdx < len(m.endpoints) {
						m.endpoints[m.selectedEndpointIdx].Name = tempEndpointName
						m.endpoints[m.selectedEndpointIdx].URL = tempEndpointURL
						m.saveConfig()
						m.addLog("success", fmt.Sprintf("Updated RPC endpoint `%s`", tempEndpointName))
					}
				case "apikey":
					m.tronAPIKey = strings.TrimSpace(tempAPIKeyField)
					m.saveConfig()
					if m.tronAPIKey == "" {
						m.addLog("info", "Cleared saved TRON API key")
					} else {
						m.addLog("success", "Saved TRON API key preset")
					}
				}
				m.settingsMode = "list"
				m.form = nil
				return m, nil
			}

			if m.form.State == huh.StateAborted {
				m.settingsMode = "list"
				m.form = nil
				return m, nil
			}
		}
		return m, cmd
	}

	switch msg := msg.(type) {

	case logInitMsg:
		if !m.logEnabled {
			return m, nil
		}
		// Create logger that writes to our buffer
		m.logger = log.NewWithOptions(m.logBuffer, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05",
			Prefix:          "",
		})
		m.logger.SetLevel(log.DebugLevel)
		st := log.DefaultStyles()
		st.Timestamp = hotkeyStyle
		st.Prefix = titleStyle
		m.logger.SetStyles(st)
		m.logReady = true
		m.addLog("info", "Debug log enabled")
		return m, nil

	case tea.WindowSizeMsg:
		m.w, m.h = msg.Width, msg.Height
		m.logViewport.Width = helpers.Max(0, m.w-6)
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		cmds = append(cmds, cmd)
		if m.logEnabled {
			m.logSpinner, cmd = m.logSpinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case toastClearMsg:
		m.toast = notify.Toast{}
		return m, nil

	case copyClearMsg:
		m.receiptCopied = ""
		return m, nil

	case receiptCopiedMsg:
		m.receiptCopied = "Copied to clipboard"
		return m, clearCopied()

	case transferSentMsg:
		// The simulated call always succeeds; report, reset, clear loading.
		m.sending = false
		m.receipt = msg.receipt
		m.showReceipt = true
		m.toast = notify.New("Transfer sent", fmt.Sprintf("Sent %s USDT to %s via %s.",
			helpers.FormatAmount(msg.receipt.Amount),
			helpers.ShortenAddr(msg.receipt.Recipient),
			msg.receipt.Network))
		m.addLog("success", fmt.Sprintf("Simulated transfer complete: %s", helpers.ShortenAddr(msg.receipt.TxHash)))
		m.resetForm()
		return m, clearToast()

	case transferFailedMsg:
		// Unreachable from normal input; loading still must clear and the
		// draft stays intact for correction.
		m.sending = false
		m.toast = notify.Destructive("Transfer failed", "Transaction failed, check inputs.")
		if msg.err != nil {
			m.addLog("error", msg.err.Error())
		}
		return m, clearToast()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" && !m.showReceipt {
			return m, tea.Quit
		}
		switch m.activePage {
		case config.PageSend:
			return m.handleSendKeys(msg)
		case config.PageSettings:
			return m.handleSettingsKeys(msg)
		}
	}

	return m, nil
}

// -------------------- SEND PAGE --------------------

func (m *model) handleSendKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Receipt overlay swallows keys until dismissed
	if m.showReceipt {
		switch msg.String() {
		case "esc", "enter", "q":
			m.showReceipt = false
			m.receiptCopied = ""
		case "c", "ctrl+c":
			return m, copyToClipboard(m.receipt.ExplorerURL())
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "tab", "down":
		m.moveFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil

	case "enter":
		if m.focusedField == focusSend {
			return m, m.submitTransfer()
		}
		m.moveFocus(1)
		return m, nil

	case "ctrl+s":
		return m, m.submitTransfer()

	case "ctrl+p":
		return m, m.applyPreset()

	case "ctrl+e":
		m.activePage = config.PageSettings
		m.settingsMode = "list"
		return m, nil

	case "ctrl+l":
		return m, m.toggleLog()

	case "pgup", "pgdown":
		if m.logEnabled && m.logReady {
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Network toggle is not a text input
	if m.focusedField == focusNetwork {
		switch msg.String() {
		case "left":
			m.toggleNetwork(true)
		case "right", " ":
			m.toggleNetwork(false)
		}
		return m, nil
	}

	// Field edits flow even while a send is in flight; only the submit
	// control is inert.
	if in := m.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		m.syncDraft()
		return m, cmd
	}

	return m, nil
}

// submitTransfer validates the draft and, when it passes, starts the
// simulated send. On rejection the draft is left untouched so the user can
// correct and resubmit.
func (m *model) submitTransfer() tea.Cmd {
	if m.sending {
		return nil
	}

	if err := transfer.Validate(m.draft); err != nil {
		m.toast = notify.Destructive("Transfer rejected", err.Error())
		m.addLog("warning", "Validation failed: "+err.Error())
		return clearToast()
	}

	m.sending = true
	m.addLog("info", fmt.Sprintf("Sending %s USDT to %s via %s",
		helpers.FormatAmount(m.draft.Amount),
		helpers.ShortenAddr(m.draft.RecipientAddress),
		m.draft.Network))
	return tea.Batch(m.spin.Tick, sendTransfer(m.draft))
}

// toggleNetwork cycles the two-way network choice. The first toggle from
// the unset state lands on EVM going right, TRON going left.
func (m *model) toggleNetwork(reverse bool) {
	var next transfer.Network
	switch m.draft.Network {
	case transfer.NetworkEVM:
		next = transfer.NetworkTRON
	case transfer.NetworkTRON:
		next = transfer.NetworkEVM
	default:
		next = transfer.NetworkEVM
		if reverse {
			next = transfer.NetworkTRON
		}
	}
	m.draft = m.draft.WithField(transfer.FieldNetwork, string(next))
	m.applyFocus()
	m.addLog("debug", "Network set to "+string(next))
}

// applyPreset fills the credential slot from the saved settings preset.
// This is an explicit edit; the draft still starts empty on launch.
func (m *model) applyPreset() tea.Cmd {
	switch {
	case m.draft.Network == "":
		m.toast = notify.Destructive("No preset", "Choose a network first.")

	case m.draft.Network.RequiresAPIKey():
		if m.tronAPIKey == "" {
			m.toast = notify.Destructive("No preset", "No TRON API key saved in settings.")
			break
		}
		m.apiKeyInput.SetValue(m.tronAPIKey)
		m.draft = m.draft.WithField(transfer.FieldAPICredential, m.tronAPIKey)
		m.toast = notify.New("Preset applied", "Saved TRON API key filled in.")

	default:
		var active *config.Endpoint
		for i := range m.endpoints {
			if m.endpoints[i].Active {
				active = &m.endpoints[i]
				break
			}
		}
		if active == nil {
			m.toast = notify.Destructive("No preset", "No active RPC endpoint in settings.")
			break
		}
		m.endpointInput.SetValue(active.URL)
		m.draft = m.draft.WithField(transfer.FieldRPCEndpoint, active.URL)
		m.toast = notify.New("Preset applied", fmt.Sprintf("`%s` RPC URL filled in.", active.Name))
	}
	return clearToast()
}

// -------------------- SETTINGS PAGE --------------------

func (m *model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.activePage = config.PageSend
		m.applyFocus()
		return m, nil

	case "up":
		if m.selectedEndpointIdx > 0 {
			m.selectedEndpointIdx--
		}
		return m, nil

	case "down":
		if m.selectedEndpointIdx < len(m.endpoints)-1 {
			m.selectedEndpointIdx++
		}
		return m, nil

	case "enter", " ":
		if m.selectedEndpointIdx >= 0 && m.selectedEndpointIdx < len(m.endpoints) {
			for i := range m.endpoints {
				m.endpoints[i].Active = i == m.selectedEndpointIdx
			}
			m.saveConfig()
			// Keep the send form's hint in step with the preset
			m.endpointInput.Placeholder = m.endpoints[m.selectedEndpointIdx].URL
			m.addLog("info", fmt.Sprintf("Activated RPC endpoint `%s`", m.endpoints[m.selectedEndpointIdx].Name))
		}
		return m, nil

	case "a":
		m.settingsMode = "add"
		m.createAddEndpointForm()
		return m, nil

	case "e":
		if len(m.endpoints) > 0 {
			m.settingsMode = "edit"
			m.createEditEndpointForm(m.selectedEndpointIdx)
		}
		return m, nil

	case "d":
		if m.selectedEndpointIdx >= 0 && m.selectedEndpointIdx < len(m.endpoints) {
			name := m.endpoints[m.selectedEndpointIdx].Name
			m.endpoints = append(m.endpoints[:m.selectedEndpointIdx], m.endpoints[m.selectedEndpointIdx+1:]...)
			if m.selectedEndpointIdx >= len(m.endpoints) {
				m.selectedEndpointIdx = helpers.Max(0, len(m.endpoints)-1)
			}
			m.saveConfig()
			m.addLog("info", fmt.Sprintf("Deleted RPC endpoint `%s`", name))
		}
		return m, nil

	case "t":
		m.settingsMode = "apikey"
		m.createAPIKeyForm()
		return m, nil

	case "l":
		return m, m.toggleLog()

	case "pgup", "pgdown":
		if m.logEnabled && m.logReady {
			var cmd tea.Cmd
			m.logViewport, cmd = m.logViewport.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// toggleLog flips the debug log panel on or off and persists the flag
func (m *model) toggleLog() tea.Cmd {
	m.logEnabled = !m.logEnabled
	if m.logEnabled {
		if m.logBuffer == nil {
			m.logBuffer = &strings.Builder{}
		}
		if m.w > 0 {
			m.logViewport.Width = m.w - 6
		}
		m.logReady = false
		m.saveConfig()
		return tea.Batch(initLogViewport(), m.logSpinner.Tick)
	}

	// Clear logs and de-initialize when disabling
	if m.logBuffer != nil {
		m.logBuffer.Reset()
	}
	m.logger = nil
	m.logReady = false
	m.saveConfig()
	return nil
}

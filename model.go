package main

import (
	"os"
	"path/filepath"
	"strings"

	"usdt-send-tui/config"
	"usdt-send-tui/notify"
	"usdt-send-tui/styles"
	"usdt-send-tui/transfer"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// -------------------- MODEL --------------------

// Focusable fields on the send page, in tab order. The credential slot is
// the RPC URL input for EVM and the API key input for TRON; it is skipped
// while no network is chosen.
const (
	focusNetwork = iota
	focusCredential
	focusRecipient
	focusAmount
	focusSecret
	focusSend
	focusCount
)

// model represents the application state following The Elm Architecture
type model struct {
	w, h int

	activePage config.Page

	// transfer draft, replaced wholesale on every field edit
	draft transfer.Draft

	// send form inputs
	endpointInput  textinput.Model // RPC URL (EVM)
	apiKeyInput    textinput.Model // API key (TRON)
	recipientInput textinput.Model
	amountInput    textinput.Model
	secretInput    textinput.Model // private key, masked
	focusedField   int

	// sending state; while true the submit control is inert but the
	// fields stay editable
	sending bool
	spin    spinner.Model

	// receipt overlay after a simulated success
	showReceipt   bool
	receipt       transfer.Receipt
	receiptCopied string

	// toast notifier
	toast notify.Toast

	// settings state
	settingsMode        string // "list", "add", "edit", "apikey"
	endpoints           []config.Endpoint
	selectedEndpointIdx int
	tronAPIKey          string
	form                *huh.Form
	configPath          string

	// logger panel
	logEnabled  bool
	logger      *log.Logger
	logBuffer   *strings.Builder
	logViewport viewport.Model
	logReady    bool
	logSpinner  spinner.Model
}

// newModel creates and initializes a new model with configuration from disk
func newModel() model {
	homeDir, _ := os.UserHomeDir()
	configPath := filepath.Join(homeDir, ".usdt-send-config.json")

	cfg := config.LoadOrCreate(configPath)

	newInput := func(prompt, placeholder string, limit int) textinput.Model {
		in := textinput.New()
		in.Prompt = prompt
		in.Placeholder = placeholder
		in.PromptStyle = lipgloss.NewStyle().Foreground(styles.CAccent)
		in.TextStyle = lipgloss.NewStyle().Foreground(styles.CText)
		in.Cursor.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)
		in.CharLimit = limit
		in.Width = 52
		return in
	}

	endpointIn := newInput("RPC URL: ", "https://…", 200)
	if active, ok := cfg.ActiveEndpoint(); ok {
		// Preset is a hint only; the draft still starts empty and
		// Ctrl+p applies it as an explicit edit.
		endpointIn.Placeholder = active.URL
	}

	apiKeyIn := newInput("API Key: ", "TronGrid API key", 120)
	recipientIn := newInput("To: ", "Recipient address", 64)
	amountIn := newInput("Amount: ", "0.0", 32)

	secretIn := newInput("Private Key: ", "never stored, never logged", 130)
	secretIn.EchoMode = textinput.EchoPassword
	secretIn.EchoCharacter = '•'

	sp := spinner.New()
	sp.Spinner = spinner.Line
	sp.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	vp := viewport.New(0, 20) // Resized on first WindowSizeMsg
	vp.Style = lipgloss.NewStyle().
		Foreground(styles.CText).
		Background(styles.CPanel)

	logSpin := spinner.New()
	logSpin.Spinner = spinner.Dot
	logSpin.Style = lipgloss.NewStyle().Foreground(styles.CAccent2)

	m := model{
		activePage:     config.PageSend,
		endpointInput:  endpointIn,
		apiKeyInput:    apiKeyIn,
		recipientInput: recipientIn,
		amountInput:    amountIn,
		secretInput:    secretIn,
		focusedField:   focusNetwork,
		spin:           sp,
		settingsMode:   "list",
		endpoints:      cfg.Endpoints,
		tronAPIKey:     cfg.TronAPIKey,
		configPath:     configPath,
		logEnabled:     cfg.Logger,
		logViewport:    vp,
		logBuffer:      &strings.Builder{},
		logSpinner:     logSpin,
	}

	return m
}

// Init implements tea.Model interface and returns initial commands
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spin.Tick}
	if m.logEnabled {
		cmds = append(cmds, initLogViewport(), m.logSpinner.Tick)
	}
	return tea.Batch(cmds...)
}

// -------------------- MODEL HELPER METHODS --------------------

// focusedInput returns the textinput behind the current focus slot, or nil
// for the network toggle and the send button.
func (m *model) focusedInput() *textinput.Model {
	switch m.focusedField {
	case focusCredential:
		if m.draft.Network.RequiresAPIKey() {
			return &m.apiKeyInput
		}
		return &m.endpointInput
	case focusRecipient:
		return &m.recipientInput
	case focusAmount:
		return &m.amountInput
	case focusSecret:
		return &m.secretInput
	}
	return nil
}

// credentialField is the draft field behind the credential slot.
func (m *model) credentialField() transfer.Field {
	if m.draft.Network.RequiresAPIKey() {
		return transfer.FieldAPICredential
	}
	return transfer.FieldRPCEndpoint
}

// syncDraft copies the focused input's value into the draft, replacing the
// draft value wholesale. All other fields are left untouched.
func (m *model) syncDraft() {
	switch m.focusedField {
	case focusCredential:
		m.draft = m.draft.WithField(m.credentialField(), m.focusedInput().Value())
	case focusRecipient:
		m.draft = m.draft.WithField(transfer.FieldRecipientAddress, m.recipientInput.Value())
	case focusAmount:
		m.draft = m.draft.WithField(transfer.FieldAmount, m.amountInput.Value())
	case focusSecret:
		m.draft = m.draft.WithField(transfer.FieldSigningSecret, m.secretInput.Value())
	}
}

// applyFocus blurs every input and focuses the one behind the current slot
func (m *model) applyFocus() {
	m.endpointInput.Blur()
	m.apiKeyInput.Blur()
	m.recipientInput.Blur()
	m.amountInput.Blur()
	m.secretInput.Blur()
	if in := m.focusedInput(); in != nil {
		in.Focus()
	}
}

// moveFocus advances the focus by delta slots, skipping the credential slot
// while no network is chosen.
func (m *model) moveFocus(delta int) {
	for {
		m.focusedField = (m.focusedField + delta + focusCount) % focusCount
		if m.focusedField == focusCredential && m.draft.Network == "" {
			continue
		}
		break
	}
	m.applyFocus()
}

// resetForm clears the draft and every input after a successful send
func (m *model) resetForm() {
	m.draft = transfer.Draft{}
	m.endpointInput.SetValue("")
	m.apiKeyInput.SetValue("")
	m.recipientInput.SetValue("")
	m.amountInput.SetValue("")
	m.secretInput.SetValue("")
	m.focusedField = focusNetwork
	m.applyFocus()
}

// saveConfig persists the endpoint presets and flags (never the draft)
func (m *model) saveConfig() {
	config.Save(m.configPath, config.Config{
		Endpoints:  m.endpoints,
		TronAPIKey: m.tronAPIKey,
		Logger:     m.logEnabled,
	})
}

// addLog adds a log entry with timestamp and type
func (m *model) addLog(logType, message string) {
	if !m.logEnabled || !m.logReady || m.logger == nil {
		return
	}

	switch logType {
	case "info":
		m.logger.Info(message)
	case "success":
		m.logger.Info("✓", "msg", message)
	case "error":
		m.logger.Error(message)
	case "warning":
		m.logger.Warn(message)
	case "debug":
		m.logger.Debug(message)
	default:
		m.logger.Print(message)
	}

	m.updateLogViewport()
}

// updateLogViewport refreshes the viewport content with log output
func (m *model) updateLogViewport() {
	if !m.logReady || m.logBuffer == nil {
		return
	}

	m.logViewport.SetContent(m.logBuffer.String())
	m.logViewport.GotoBottom()
}

package main

import (
	"fmt"
	"time"

	"usdt-send-tui/transfer"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// -------------------- COMMAND FUNCTIONS --------------------
// Functions that return tea.Cmd for async operations

const (
	// sendDelay is how long the simulated transfer call takes. It always
	// runs to completion; there is no cancel path.
	sendDelay = 2 * time.Second

	toastTTL  = 4 * time.Second
	copiedTTL = 2 * time.Second
)

// sendTransfer simulates the transfer call: a fixed delay that then
// unconditionally succeeds. A panic anywhere in the path is recovered and
// reported as a failure message, so the update loop clears the loading
// state either way.
func sendTransfer(d transfer.Draft) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = transferFailedMsg{err: fmt.Errorf("send: %v", r)}
			}
		}()

		time.Sleep(sendDelay)
		return transferSentMsg{receipt: transfer.NewReceipt(d, time.Now())}
	}
}

// clearToast expires the current toast after its time on screen
func clearToast() tea.Cmd {
	return tea.Tick(toastTTL, func(time.Time) tea.Msg {
		return toastClearMsg{}
	})
}

// clearCopied expires the clipboard feedback on the receipt panel
func clearCopied() tea.Cmd {
	return tea.Tick(copiedTTL, func(time.Time) tea.Msg {
		return copyClearMsg{}
	})
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err == nil {
			return receiptCopiedMsg{}
		}
		return nil
	}
}

// initLogViewport initializes the log viewport
func initLogViewport() tea.Cmd {
	return func() tea.Msg {
		return logInitMsg{}
	}
}

package main

import (
	"usdt-send-tui/transfer"
)

// -------------------- TEA MESSAGES --------------------
// All custom message types for The Elm Architecture

// transferSentMsg arrives when the simulated send delay has elapsed
type transferSentMsg struct {
	receipt transfer.Receipt
}

// transferFailedMsg carries an unexpected failure from the send path.
// The simulated call itself cannot fail; this only fires on a recovered
// panic so the loading state can still be cleared.
type transferFailedMsg struct {
	err error
}

// toastClearMsg expires the current toast
type toastClearMsg struct{}

// receiptCopiedMsg indicates the explorer link was copied to clipboard
type receiptCopiedMsg struct{}

// copyClearMsg expires the clipboard feedback on the receipt panel
type copyClearMsg struct{}

// logInitMsg signals that log viewport should be initialized
type logInitMsg struct{}

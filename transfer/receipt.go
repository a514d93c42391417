package transfer

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/mdp/qrterminal/v3"
)

// Receipt describes a simulated transfer after the send delay has elapsed.
// The hash is a keccak digest of the submitted fields and the send time;
// nothing was signed or broadcast.
type Receipt struct {
	Network   Network
	Recipient string
	Amount    string
	TxHash    string
	SentAt    time.Time
}

// NewReceipt derives the receipt for a draft accepted at the given time.
// The signing secret does not enter the digest.
func NewReceipt(d Draft, at time.Time) Receipt {
	digest := crypto.Keccak256(
		[]byte(d.Network),
		[]byte(d.RecipientAddress),
		[]byte(d.Amount),
		[]byte(at.UTC().Format(time.RFC3339Nano)),
	)

	tx := common.BytesToHash(digest).Hex()
	if d.Network == NetworkTRON {
		// Tron explorers use bare hex transaction ids.
		tx = strings.TrimPrefix(tx, "0x")
	}

	return Receipt{
		Network:   d.Network,
		Recipient: d.RecipientAddress,
		Amount:    d.Amount,
		TxHash:    tx,
		SentAt:    at,
	}
}

// ExplorerURL returns the block-explorer link for the receipt's network.
func (r Receipt) ExplorerURL() string {
	if r.Network == NetworkTRON {
		return "https://tronscan.org/#/transaction/" + r.TxHash
	}
	return "https://etherscan.io/tx/" + r.TxHash
}

// QRCode renders the explorer link as a terminal QR code.
func (r Receipt) QRCode() string {
	var sb strings.Builder
	qrterminal.GenerateHalfBlock(r.ExplorerURL(), qrterminal.L, &sb)
	return sb.String()
}

package transfer

import (
	"strings"
	"testing"
	"time"
)

func TestNewReceipt(t *testing.T) {
	at := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	evm := NewReceipt(validEVMDraft(), at)
	tron := NewReceipt(validTronDraft(), at)

	t.Run("evm hash is 0x prefixed", func(t *testing.T) {
		if !strings.HasPrefix(evm.TxHash, "0x") {
			t.Fatalf("expected 0x prefix, got %s", evm.TxHash)
		}
		if len(evm.TxHash) != 66 {
			t.Errorf("expected 32-byte hex hash, got length %d", len(evm.TxHash))
		}
	})

	t.Run("tron hash is bare hex", func(t *testing.T) {
		if strings.HasPrefix(tron.TxHash, "0x") {
			t.Fatalf("tron hash must not carry a 0x prefix: %s", tron.TxHash)
		}
		if len(tron.TxHash) != 64 {
			t.Errorf("expected 32-byte hex hash, got length %d", len(tron.TxHash))
		}
	})

	t.Run("deterministic for fixed inputs", func(t *testing.T) {
		again := NewReceipt(validEVMDraft(), at)
		if again.TxHash != evm.TxHash {
			t.Errorf("same draft and time produced different hashes: %s vs %s", again.TxHash, evm.TxHash)
		}
	})

	t.Run("time enters the digest", func(t *testing.T) {
		later := NewReceipt(validEVMDraft(), at.Add(time.Nanosecond))
		if later.TxHash == evm.TxHash {
			t.Error("hash did not change with the send time")
		}
	})

	t.Run("secret does not enter the digest", func(t *testing.T) {
		d := validEVMDraft().WithField(FieldSigningSecret, "another-secret")
		if NewReceipt(d, at).TxHash != evm.TxHash {
			t.Error("signing secret leaked into the receipt hash")
		}
	})

	t.Run("fields carried over", func(t *testing.T) {
		if evm.Network != NetworkEVM || evm.Amount != "10" || evm.Recipient != "0xabc" {
			t.Errorf("receipt fields wrong: %+v", evm)
		}
		if !evm.SentAt.Equal(at) {
			t.Errorf("expected SentAt %v, got %v", at, evm.SentAt)
		}
	})
}

func TestExplorerURL(t *testing.T) {
	at := time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)

	evm := NewReceipt(validEVMDraft(), at)
	if !strings.HasPrefix(evm.ExplorerURL(), "https://etherscan.io/tx/0x") {
		t.Errorf("unexpected EVM explorer link: %s", evm.ExplorerURL())
	}
	if !strings.HasSuffix(evm.ExplorerURL(), evm.TxHash) {
		t.Errorf("explorer link missing tx hash: %s", evm.ExplorerURL())
	}

	tron := NewReceipt(validTronDraft(), at)
	if !strings.HasPrefix(tron.ExplorerURL(), "https://tronscan.org/#/transaction/") {
		t.Errorf("unexpected TRON explorer link: %s", tron.ExplorerURL())
	}
}

func TestQRCodeRenders(t *testing.T) {
	r := NewReceipt(validEVMDraft(), time.Now())
	if r.QRCode() == "" {
		t.Fatal("expected non-empty QR rendering")
	}
}

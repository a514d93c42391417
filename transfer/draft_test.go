package transfer

import "testing"

func TestWithFieldReplacesExactlyOneField(t *testing.T) {
	base := validEVMDraft()

	got := base.WithField(FieldAmount, "42")
	if got.Amount != "42" {
		t.Fatalf("expected amount 42, got %q", got.Amount)
	}

	// Every other field must be untouched
	got.Amount = base.Amount
	if got != base {
		t.Errorf("WithField changed more than one field: %+v vs %+v", got, base)
	}
}

func TestWithFieldDoesNotMutateOriginal(t *testing.T) {
	var base Draft
	_ = base.WithField(FieldRecipientAddress, "0xabc")
	if !base.IsZero() {
		t.Errorf("original draft mutated: %+v", base)
	}
}

func TestWithFieldNetwork(t *testing.T) {
	d := Draft{}.WithField(FieldNetwork, "TRON")
	if d.Network != NetworkTRON {
		t.Fatalf("expected TRON, got %q", d.Network)
	}
}

func TestWithFieldUnknownFieldIsNoop(t *testing.T) {
	base := validEVMDraft()
	if got := base.WithField(Field("bogus"), "x"); got != base {
		t.Errorf("unknown field changed the draft: %+v", got)
	}
}

func TestNetworkRequirements(t *testing.T) {
	if !NetworkEVM.RequiresRPC() || NetworkEVM.RequiresAPIKey() {
		t.Error("EVM must require an RPC endpoint only")
	}
	if !NetworkTRON.RequiresAPIKey() || NetworkTRON.RequiresRPC() {
		t.Error("TRON must require an API credential only")
	}
	if Network("").RequiresRPC() || Network("").RequiresAPIKey() {
		t.Error("unset network must require neither")
	}
}

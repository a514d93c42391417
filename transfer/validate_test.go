package transfer

import (
	"errors"
	"testing"
)

func validEVMDraft() Draft {
	return Draft{
		Network:          NetworkEVM,
		RPCEndpoint:      "https://x",
		RecipientAddress: "0xabc",
		Amount:           "10",
		SigningSecret:    "k",
	}
}

func validTronDraft() Draft {
	return Draft{
		Network:          NetworkTRON,
		APICredential:    "trongrid-key",
		RecipientAddress: "TJRabPrwbZy45sbavfcjinPJC18kjpRTv8",
		Amount:           "25",
		SigningSecret:    "k",
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		draft Draft
		want  error
	}{
		{"empty draft", Draft{}, ErrMissingFields},
		{"valid evm", validEVMDraft(), nil},
		{"valid tron", validTronDraft(), nil},
		{"missing network", validEVMDraft().WithField(FieldNetwork, ""), ErrMissingFields},
		{"missing recipient", validEVMDraft().WithField(FieldRecipientAddress, ""), ErrMissingFields},
		{"missing amount", validEVMDraft().WithField(FieldAmount, ""), ErrMissingFields},
		{"missing secret", validEVMDraft().WithField(FieldSigningSecret, ""), ErrMissingFields},
		{"evm without rpc", validEVMDraft().WithField(FieldRPCEndpoint, ""), ErrRPCRequired},
		{"tron without api key", validTronDraft().WithField(FieldAPICredential, ""), ErrAPIKeyRequired},
		{"evm ignores api credential", validEVMDraft().WithField(FieldAPICredential, "stale"), nil},
		{"tron ignores rpc endpoint", validTronDraft().WithField(FieldRPCEndpoint, "stale"), nil},
		// Deliberately unvalidated: address format, key format, amount range
		{"junk recipient accepted", validEVMDraft().WithField(FieldRecipientAddress, "not-an-address"), nil},
		{"negative amount accepted", validEVMDraft().WithField(FieldAmount, "-5"), nil},
		{"non-numeric amount accepted", validEVMDraft().WithField(FieldAmount, "ten"), nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Validate(tc.draft)
			if tc.want == nil {
				if got != nil {
					t.Fatalf("expected accept, got %v", got)
				}
				return
			}
			if !errors.Is(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestValidateOrder(t *testing.T) {
	// Rule 1 wins over the endpoint rules when both would fail
	t.Run("evm with only network set", func(t *testing.T) {
		d := Draft{Network: NetworkEVM}
		if got := Validate(d); !errors.Is(got, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields before ErrRPCRequired, got %v", got)
		}
	})

	t.Run("tron with only network set", func(t *testing.T) {
		d := Draft{Network: NetworkTRON}
		if got := Validate(d); !errors.Is(got, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields before ErrAPIKeyRequired, got %v", got)
		}
	})
}

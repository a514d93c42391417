package transfer

import "errors"

// Validation failures surfaced to the user at submit time.
var (
	ErrMissingFields  = errors.New("missing required fields")
	ErrRPCRequired    = errors.New("RPC URL required")
	ErrAPIKeyRequired = errors.New("API key required")
)

// Validate checks a draft at submission time. Rules run in a fixed order
// and the first failure wins. Address format, key format and amount range
// are deliberately not checked.
func Validate(d Draft) error {
	if d.Network == "" || d.RecipientAddress == "" || d.Amount == "" || d.SigningSecret == "" {
		return ErrMissingFields
	}
	if d.Network.RequiresRPC() && d.RPCEndpoint == "" {
		return ErrRPCRequired
	}
	if d.Network.RequiresAPIKey() && d.APICredential == "" {
		return ErrAPIKeyRequired
	}
	return nil
}

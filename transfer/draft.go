package transfer

// Network identifies the chain family a transfer targets. It is only a
// label choice here; no chain client is involved.
type Network string

const (
	NetworkEVM  Network = "EVM"
	NetworkTRON Network = "TRON"
)

// RequiresRPC reports whether the network needs an RPC endpoint.
func (n Network) RequiresRPC() bool { return n == NetworkEVM }

// RequiresAPIKey reports whether the network needs an API credential.
func (n Network) RequiresAPIKey() bool { return n == NetworkTRON }

// Field names a single draft field for WithField-style updates.
type Field string

const (
	FieldNetwork          Field = "network"
	FieldRPCEndpoint      Field = "rpcEndpoint"
	FieldAPICredential    Field = "apiCredential"
	FieldSigningSecret    Field = "signingSecret"
	FieldRecipientAddress Field = "recipientAddress"
	FieldAmount           Field = "amount"
)

// Draft is the in-progress, uncommitted transfer request. All values are
// plain strings taken straight from the form; the zero value is the empty
// draft shown on startup and after a successful send.
//
// SigningSecret is sensitive: it is never persisted and never logged.
type Draft struct {
	Network          Network
	RPCEndpoint      string
	APICredential    string
	SigningSecret    string
	RecipientAddress string
	Amount           string
}

// WithField returns a copy of the draft with exactly one field replaced.
// Drafts are value types; callers replace the whole draft on each edit
// instead of mutating shared state.
func (d Draft) WithField(f Field, value string) Draft {
	switch f {
	case FieldNetwork:
		d.Network = Network(value)
	case FieldRPCEndpoint:
		d.RPCEndpoint = value
	case FieldAPICredential:
		d.APICredential = value
	case FieldSigningSecret:
		d.SigningSecret = value
	case FieldRecipientAddress:
		d.RecipientAddress = value
	case FieldAmount:
		d.Amount = value
	}
	return d
}

// IsZero reports whether every field is empty.
func (d Draft) IsZero() bool {
	return d == Draft{}
}

package bus

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"

	"github.com/renato0307/billclock/internal/domain"
)

// envEncMode is the CBOR encoder mode for bus envelopes
var envEncMode cbor.EncMode

// envDecMode is the CBOR decoder mode for bus envelopes
var envDecMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
		Time:          cbor.TimeRFC3339Nano,
	}
	envEncMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create envelope CBOR encoder mode: %v", err))
	}

	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		IndefLength:       cbor.IndefLengthAllowed,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}
	envDecMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create envelope CBOR decoder mode: %v", err))
	}
}

// wireEnvelope is the CBOR form of domain.Envelope. The message itself keeps
// its JSON wire form so every transport validates it the same way.
type wireEnvelope struct {
	Channel string    `cbor:"1,keyasint"`
	Message []byte    `cbor:"2,keyasint"`
	Origin  string    `cbor:"3,keyasint"`
	SentAt  time.Time `cbor:"4,keyasint"`
}

// EncodeEnvelope encodes an envelope to CBOR bytes
func EncodeEnvelope(env domain.Envelope) ([]byte, error) {
	msg, err := domain.EncodeMessage(env.Message)
	if err != nil {
		return nil, err
	}
	return envEncMode.Marshal(wireEnvelope{
		Channel: env.Channel,
		Message: msg,
		Origin:  env.Origin,
		SentAt:  env.SentAt.UTC(),
	})
}

// DecodeEnvelope decodes CBOR bytes into an envelope. Envelopes whose message
// is not a valid variant are rejected with domain.ErrInvalidMessage.
func DecodeEnvelope(data []byte) (domain.Envelope, error) {
	var w wireEnvelope
	if err := envDecMode.Unmarshal(data, &w); err != nil {
		return domain.Envelope{}, fmt.Errorf("%w: %v", domain.ErrInvalidMessage, err)
	}
	msg, err := domain.DecodeMessage(w.Message)
	if err != nil {
		return domain.Envelope{}, err
	}
	return domain.Envelope{
		Channel: w.Channel,
		Message: msg,
		Origin:  w.Origin,
		SentAt:  w.SentAt,
	}, nil
}

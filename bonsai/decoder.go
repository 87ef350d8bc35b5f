package bonsai

import "fmt"

// ReceiptDecoder extracts the seal and journal from a serialized receipt.
//
// The production decoder is a prebuilt binary artifact that understands the
// bincode layout of risc0 receipts; the SDK treats it as an opaque
// collaborator behind this interface and never decodes proof internals
// itself. Attach an implementation with [WithDecoder].
type ReceiptDecoder interface {
	// Decode splits a serialized receipt into its seal (the cryptographic
	// proof payload) and journal (the public output committed by the
	// proven program).
	Decode(receipt []byte) (seal []byte, journal []byte, err error)
}

// ExtractSealAndJournal hands serialized receipt bytes to the configured
// decoder and returns its two outputs. Fails with [ErrConfiguration] when
// the client was built without a decoder.
func (c *Client) ExtractSealAndJournal(receipt []byte) (seal []byte, journal []byte, err error) {
	if c.decoder == nil {
		return nil, nil, fmt.Errorf("%w: no receipt decoder configured", ErrConfiguration)
	}
	return c.decoder.Decode(receipt)
}

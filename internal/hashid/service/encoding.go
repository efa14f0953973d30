package service

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"

	hashidDomain "github.com/allisson/selfhash/internal/hashid/domain"
)

// textEncoding renders digest bytes as ASCII text.
type textEncoding interface {
	EncodeToString(src []byte) string
	EncodedLen(n int) int
}

type hexEncoding struct{}

func (hexEncoding) EncodeToString(src []byte) string { return hex.EncodeToString(src) }

func (hexEncoding) EncodedLen(n int) int { return hex.EncodedLen(n) }

var lowerBase32 = base32.NewEncoding("abcdefghijklmnopqrstuvwxyz234567").WithPadding(base32.NoPadding)

var textEncodings = map[hashidDomain.Encoding]textEncoding{
	hashidDomain.EncodingHex:       hexEncoding{},
	hashidDomain.EncodingBase64:    base64.StdEncoding,
	hashidDomain.EncodingBase64URL: base64.RawURLEncoding,
	hashidDomain.EncodingBase32:    lowerBase32,
}

// encodingFor returns the text encoding for the given selector.
func encodingFor(encoding hashidDomain.Encoding) (textEncoding, error) {
	enc, ok := textEncodings[encoding]
	if !ok {
		return nil, hashidDomain.ErrInvalidEncoding
	}
	return enc, nil
}

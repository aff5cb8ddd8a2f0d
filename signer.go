package imgixurl

import (
	"crypto/md5"
	"encoding/hex"
)

// Signer URL signature signer
type Signer interface {
	Sign(pathAndQuery string) string
}

// NewDefaultSigner default token signer producing the service's s
// parameter: the hex MD5 digest of token + path + "?" + query
func NewDefaultSigner(token string) Signer {
	return &tokenSigner{token: token}
}

type tokenSigner struct {
	token string
}

func (s *tokenSigner) Sign(pathAndQuery string) string {
	sum := md5.Sum([]byte(s.token + pathAndQuery))
	return hex.EncodeToString(sum[:])
}

// SignedString render the transformation URL with the signature appended as
// the final s parameter; the signature covers the escaped path plus the
// assembled query
func (r ImageRef) SignedString(signer Signer) string {
	u := r.URL()
	sig := signer.Sign(u.EscapedPath() + "?" + u.RawQuery)
	u.RawQuery += "&s=" + sig
	return u.String()
}

package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jws"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// TokenValidator checks the signature algorithm and registered claims of access tokens.
type TokenValidator struct {
	Issuer    string
	Audience  string
	ClockSkew time.Duration
	Algorithm jwa.SignatureAlgorithm
}

// Parse verifies raw with key and validates it at now.
func (v TokenValidator) Parse(raw string, key []byte, now time.Time) (jwt.Token, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("auth: token is empty")
	}
	alg, err := signingAlgorithm(raw)
	if err != nil {
		return nil, err
	}
	if v.Algorithm != "" && alg != v.Algorithm {
		return nil, fmt.Errorf("auth: unexpected token algorithm %s", alg)
	}
	tok, err := jwt.ParseString(raw, jwt.WithKey(alg, key), jwt.WithValidate(false))
	if err != nil {
		return nil, err
	}
	if err := v.Validate(tok, now); err != nil {
		return nil, err
	}
	return tok, nil
}

// Validate checks issuer, audience and the time window of tok.
func (v TokenValidator) Validate(tok jwt.Token, now time.Time) error {
	if tok == nil {
		return errors.New("auth: token is nil")
	}
	options := []jwt.ValidateOption{
		jwt.WithClock(jwt.ClockFunc(func() time.Time { return now })),
	}
	if v.ClockSkew > 0 {
		options = append(options, jwt.WithAcceptableSkew(v.ClockSkew))
	}
	if v.Issuer != "" {
		options = append(options, jwt.WithIssuer(v.Issuer))
	}
	if v.Audience != "" {
		options = append(options, jwt.WithAudience(v.Audience))
	}
	return jwt.Validate(tok, options...)
}

// signingAlgorithm reads the single algorithm every signature of raw agrees on. "none" is refused.
func signingAlgorithm(raw string) (jwa.SignatureAlgorithm, error) {
	msg, err := jws.ParseString(raw)
	if err != nil {
		return "", err
	}
	var alg jwa.SignatureAlgorithm
	for _, sig := range msg.Signatures() {
		headers := sig.ProtectedHeaders()
		if headers == nil || headers.Algorithm() == "" {
			return "", errors.New("auth: token missing algorithm")
		}
		switch got := headers.Algorithm(); {
		case got == jwa.NoSignature:
			return "", errors.New("auth: token uses none algorithm")
		case alg == "":
			alg = got
		case alg != got:
			return "", errors.New("auth: mixed token algorithms")
		}
	}
	if alg == "" {
		return "", errors.New("auth: token contains no signatures")
	}
	return alg, nil
}

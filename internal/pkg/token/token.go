package token

import (
	"time"

	"ev-campus-client/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errs.New("malformed token")

// Claims is the client-side view of the credential payload. The subject is
// the account email; expiry is informational only.
type Claims struct {
	Subject   string
	ExpiresAt *time.Time
}

var parser = jwt.NewParser()

// Decode extracts the payload of a three-part credential without verifying
// its signature. Verification belongs to the server; the client only needs
// the subject for display, and the server rejects tampered tokens on the
// next call anyway.
func Decode(credential string) (Claims, error) {
	claims := jwt.RegisteredClaims{}
	_, _, err := parser.ParseUnverified(credential, &claims)
	if err != nil {
		return Claims{}, errs.Mark(err, ErrMalformedToken)
	}
	if claims.Subject == "" {
		return Claims{}, errs.Wrap(ErrMalformedToken, "missing subject")
	}

	out := Claims{Subject: claims.Subject}
	if claims.ExpiresAt != nil {
		t := claims.ExpiresAt.Time
		out.ExpiresAt = &t
	}
	return out, nil
}

// LocalPart returns the part of an email address before the '@', or the
// whole string when there is none.
func LocalPart(email string) string {
	for i := 0; i < len(email); i++ {
		if email[i] == '@' {
			return email[:i]
		}
	}
	return email
}

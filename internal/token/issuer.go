package token

import "github.com/golang-jwt/jwt/v5"

// Principal claim names. Client and admin sessions are issued through
// separate entry points and checked against separate claims; the two roles
// are deliberately not unified.
const (
	ClaimClientID = "user_id"
	ClaimAdminID  = "admin_id"
)

// Issuer produces session tokens for authenticated principals.
type Issuer struct {
	codec *Codec
}

func NewIssuer(codec *Codec) *Issuer {
	return &Issuer{codec: codec}
}

// ClientToken issues a token carrying the client's id under user_id.
func (i *Issuer) ClientToken(clientID uint) (string, error) {
	return i.codec.Encode(jwt.MapClaims{ClaimClientID: clientID})
}

// AdminToken issues a token carrying the admin's id under admin_id.
func (i *Issuer) AdminToken(adminID uint) (string, error) {
	return i.codec.Encode(jwt.MapClaims{ClaimAdminID: adminID})
}

package identity

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the durable browser key.
const CookieName = "unipick_uid"

const issuer = "unipick"

// CookieCodec signs and verifies the identity cookie so a hand-edited cookie
// is treated as absent rather than trusted.
type CookieCodec struct {
	key    []byte
	maxAge time.Duration
	secure bool
}

func NewCookieCodec(signingKey string, maxAge time.Duration, secure bool) *CookieCodec {
	return &CookieCodec{key: []byte(signingKey), maxAge: maxAge, secure: secure}
}

// Encode wraps id into a signed token.
func (c *CookieCodec) Encode(id string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:  id,
		Issuer:   issuer,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	})
	return token.SignedString(c.key)
}

// Decode verifies the token and returns the id it carries.
func (c *CookieCodec) Decode(value string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(*jwt.Token) (any, error) {
		return c.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return "", err
	}
	if !IsAnonymousID(claims.Subject) {
		return "", errors.New("cookie subject is not an anonymous id")
	}
	return claims.Subject, nil
}

// ForRequest binds the codec to one request/response pair.
func (c *CookieCodec) ForRequest(w http.ResponseWriter, r *http.Request) *CookieStorage {
	return &CookieStorage{codec: c, w: w, r: r}
}

// CookieStorage is the browser-held Storage for a single HTTP exchange.
type CookieStorage struct {
	codec   *CookieCodec
	w       http.ResponseWriter
	r       *http.Request
	pending *string
}

func (s *CookieStorage) Load(_ context.Context) (string, error) {
	if s.pending != nil {
		if *s.pending == "" {
			return "", ErrNotFound
		}
		return *s.pending, nil
	}
	cookie, err := s.r.Cookie(CookieName)
	if err != nil {
		return "", ErrNotFound
	}
	id, err := s.codec.Decode(cookie.Value)
	if err != nil {
		// Tampered or foreign cookies count as no identity.
		return "", ErrNotFound
	}
	return id, nil
}

func (s *CookieStorage) Store(_ context.Context, id string) error {
	value, err := s.codec.Encode(id)
	if err != nil {
		return err
	}
	http.SetCookie(s.w, s.cookie(value, int(s.codec.maxAge.Seconds())))
	s.pending = &id
	return nil
}

func (s *CookieStorage) Remove(_ context.Context) error {
	http.SetCookie(s.w, s.cookie("", -1))
	empty := ""
	s.pending = &empty
	return nil
}

func (s *CookieStorage) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.codec.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

var _ Storage = (*CookieStorage)(nil)

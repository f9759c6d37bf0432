package usecase

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// stateTTL bounds how long an authorization redirect stays valid
const stateTTL = 10 * time.Minute

var (
	ErrStateInvalid  = errors.New("invalid oauth state")
	ErrStateMismatch = errors.New("oauth state does not match the authenticated user")
)

// signState builds the anti-forgery state parameter: a signed short-lived
// token carrying the user id and a one-time nonce, verified on callback
// without any server-side session storage.
func signState(secret, userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"nonce":   uuid.New().String(),
		"exp":     time.Now().Add(stateTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// verifyState checks signature and expiry and returns the user id the state
// was issued for. When authUserID is non-empty it must match: a callback
// arriving under a different authenticated identity aborts before any token
// exchange.
func verifyState(secret, state, authUserID string) (string, error) {
	token, err := jwt.Parse(state, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrStateInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrStateInvalid
	}

	stateUser, ok := claims["user_id"].(string)
	if !ok || stateUser == "" {
		return "", ErrStateInvalid
	}
	if authUserID != "" && stateUser != authUserID {
		return "", ErrStateMismatch
	}

	return stateUser, nil
}

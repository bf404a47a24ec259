package hub

import (
	"fmt"
	"teamhub/types"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

const sessionTTL = 24 * time.Hour

// Clients may reship username/password on every event, but after the first
// successful authentication on a connection the hub issues a short-lived
// signed token; later events can carry the token in place of the password
// and skip the store round trip.

func (h *Hub) issueSessionToken(principal *types.Principal) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  principal.ID,
		"username": principal.Username,
		"avatar":   principal.Avatar,
		"exp":      time.Now().Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(h.jwtSecret)
}

func (h *Hub) parseSessionToken(tokenString string) (*types.Principal, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return h.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}
	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return nil, ErrInvalidCredentials
	}
	username, _ := claims["username"].(string)
	avatar, _ := claims["avatar"].(string)

	return &types.Principal{ID: int(userID), Username: username, Avatar: avatar}, nil
}

// resolvePrincipal authenticates one event. Session tokens short-circuit the
// store round trip; passwords go through the durable store and, on the first
// success for this connection, mint a session token sent back as a unicast
// session event.
func (h *Hub) resolvePrincipal(client *Client, creds credentials) (*types.Principal, error) {
	if creds.Token != "" {
		return h.parseSessionToken(creds.Token)
	}

	if creds.Username == "" || creds.Password == "" {
		return nil, ErrInvalidCredentials
	}

	principal, err := h.store.Authenticate(creds.Username, creds.Password)
	if err != nil {
		return nil, err
	}
	if principal == nil {
		return nil, ErrInvalidCredentials
	}

	client.mu.Lock()
	firstAuth := !client.authed
	client.authed = true
	client.userID = principal.ID
	client.username = principal.Username
	client.avatar = principal.Avatar
	client.mu.Unlock()

	if firstAuth {
		if token, err := h.issueSessionToken(principal); err == nil {
			safeSend(client, WSMessage{Type: "session", Data: Session{
				Token:    token,
				UserID:   principal.ID,
				Username: principal.Username,
			}})
		}
	}
	return principal, nil
}

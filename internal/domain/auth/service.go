package auth

import "context"

// AuthService defines the PIN login flow used by the POS terminal.
type AuthService interface {
	LoginWithPIN(ctx context.Context, req PINLoginRequest) (PINLoginResponse, error)
}

package model

// TokenManager issues and resolves session tokens.
type TokenManager interface {
	Generate(cfg ClientConfig) (Session, error)
	// Lookup returns the client id the token was issued to when it is valid for api.
	Lookup(token, api string) (string, bool)
}

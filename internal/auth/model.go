package auth

// Client is an API client allowed to exchange its credentials for an
// access token. The secret is stored as an argon2id hash.
type Client struct {
	ClientID   string
	Name       string
	SecretHash string
}

package auth

import "time"

type Config struct {
	SecretKey []byte
	Issuer    string
	TokenTTL  time.Duration
}

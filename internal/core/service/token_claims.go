package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// accessTokenExpiry extracts the expiry claim from a raw access token
// without verifying its signature. The client does not hold the signing
// secret; verification is the server's job, the claim only gates whether a
// refresh exchange is due.
func accessTokenExpiry(raw string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, errors.New("access token has no exp claim")
	}
	return exp.Time, nil
}

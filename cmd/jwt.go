package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campaigner/internal/api/handler/v1handler"
	"campaigner/internal/config"
	"campaigner/pkg/domain"
	"campaigner/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// issueToken signs an RS256 bearer token whose subject is userID.
func issueToken(privateKeyPEM string, userID domain.UserID, ttl time.Duration, now time.Time) (string, error) {
	if ttl <= 0 {
		return "", errors.New("ttl must be positive")
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return "", fmt.Errorf("could not parse RSA private key: %w", err)
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

// verifyToken checks token against the public key the API authenticates with
// and returns the user it resolves to.
func verifyToken(publicKeyPEM, token string) (domain.UserID, error) {
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: publicKeyPEM})
	if err != nil {
		return domain.UserID{}, fmt.Errorf("could not create sec handler: %w", err)
	}

	ctx, err := sh.HandleBearerAuth(context.Background(), token)
	if err != nil {
		return domain.UserID{}, fmt.Errorf("token is rejected by the API key: %w", err)
	}

	return v1handler.GetUserIDFromContext(ctx), nil
}

// jwtCommand issues a development bearer token for a user. When a public key
// is configured the token is also checked against it, so a mismatched key
// pair fails here instead of on the first API call.
func jwtCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Issues an API bearer token for a user",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			user, _ := cmd.Flags().GetString("user")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			id, err := uuid.Parse(user)
			if err != nil {
				logger.Fatal(ctx, "user must be a UUID", zap.String("user", user), zap.Error(err))
			}
			userID := domain.UserID(id)

			token, err := issueToken(cfg.JWT.PrivateKey, userID, ttl, time.Now())
			if err != nil {
				logger.Fatal(ctx, "could not issue token", zap.Error(err))
			}

			if cfg.JWT.PublicKey != "" {
				if _, err := verifyToken(cfg.JWT.PublicKey, token); err != nil {
					logger.Fatal(ctx, "issued token does not verify", zap.Error(err))
				}
			} else {
				logger.Warn(ctx, "no public key configured, token was not verified")
			}

			logger.Info(ctx, "token issued", zap.Stringer("userID", userID), zap.Duration("ttl", ttl))
			fmt.Println(token) //nolint: forbidigo
		},
	}

	cmd.Flags().String("user", "", "User ID (UUID) the token authenticates")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime (e.g. 15m, 1h)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

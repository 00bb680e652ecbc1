package main

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"campaigner/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testKeyPair(t *testing.T) (string, string) {
	t.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pub, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(t, err)

	return string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(priv)})),
		string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub}))
}

func TestIssueToken_VerifiesAgainstAPIKey(t *testing.T) {
	privPEM, pubPEM := testKeyPair(t)
	userID := domain.UserID(uuid.New())

	token, err := issueToken(privPEM, userID, time.Hour, time.Now())
	require.NoError(t, err)

	got, err := verifyToken(pubPEM, token)
	require.NoError(t, err)
	require.Equal(t, userID, got)
}

func TestIssueToken_MismatchedKeys(t *testing.T) {
	privPEM, _ := testKeyPair(t)
	_, otherPub := testKeyPair(t)

	token, err := issueToken(privPEM, domain.UserID(uuid.New()), time.Hour, time.Now())
	require.NoError(t, err)

	_, err = verifyToken(otherPub, token)
	require.Error(t, err)
}

func TestIssueToken_Errors(t *testing.T) {
	privPEM, pubPEM := testKeyPair(t)

	_, err := issueToken(privPEM, domain.UserID(uuid.New()), 0, time.Now())
	require.Error(t, err)

	_, err = issueToken("not a key", domain.UserID(uuid.New()), time.Hour, time.Now())
	require.Error(t, err)

	// already expired
	token, err := issueToken(privPEM, domain.UserID(uuid.New()), time.Minute, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	_, err = verifyToken(pubPEM, token)
	require.Error(t, err)
}

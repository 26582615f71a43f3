package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()

	svc, err := NewTokenService("test-signing-secret")
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService("")
	require.ErrorIs(t, err, ErrMissingSigningSecret)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), userID)
}

func TestTokenService_Verify_Malformed(t *testing.T) {
	svc := newTestTokenService(t)

	_, err := svc.Verify("not-a-token")
	require.ErrorIs(t, err, ErrTokenMalformed)
}

func TestTokenService_Verify_TamperedSignature(t *testing.T) {
	svc := newTestTokenService(t)

	token, err := svc.Issue(42)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "AAAA" + parts[2][4:]

	_, err = svc.Verify(tampered)
	require.ErrorIs(t, err, ErrTokenSignature)
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	other, err := NewTokenService("a-different-secret")
	require.NoError(t, err)

	token, err := other.Issue(42)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrTokenSignature)
}

func TestTokenService_Verify_Expiry(t *testing.T) {
	svc := newTestTokenService(t)

	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issuedAt }

	token, err := svc.Issue(7)
	require.NoError(t, err)

	// Still valid six days after issuance
	svc.now = func() time.Time { return issuedAt.Add(6 * 24 * time.Hour) }
	userID, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(7), userID)

	// Expired eight days after issuance
	svc.now = func() time.Time { return issuedAt.Add(8 * 24 * time.Hour) }
	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrTokenExpired)
}

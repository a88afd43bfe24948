package mindbody

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCreds() Credentials {
	return Credentials{Username: "owner", Password: "secret"}
}

func newIssueServer(t *testing.T, issues *int, respond func(n int) (int, string)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/usertoken/issue", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "owner", body["username"])
		require.Equal(t, "secret", body["password"])

		*issues++
		status, payload := respond(*issues)
		w.WriteHeader(status)
		w.Write([]byte(payload))
	}))
}

func newTestProvider(srv *httptest.Server, creds Credentials) *CachedTokenProvider {
	p := NewCachedTokenProvider(srv.URL, "site-99", creds, nil)
	p.HTTPClient = srv.Client()
	return p
}

func TestGetTokenMissingCredentials(t *testing.T) {
	issues := 0
	srv := newIssueServer(t, &issues, func(int) (int, string) { return 200, `{}` })
	defer srv.Close()

	provider := newTestProvider(srv, Credentials{})

	_, err := provider.GetToken(context.Background())

	var missing *MissingCredentialsError
	require.ErrorAs(t, err, &missing)
	assert.Zero(t, issues)
}

func TestGetTokenMemoizesUntilExpiry(t *testing.T) {
	issues := 0
	srv := newIssueServer(t, &issues, func(n int) (int, string) {
		expires := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
		return 200, fmt.Sprintf(`{"accessToken":"tok-%d","expires":%q}`, n, expires)
	})
	defer srv.Close()

	provider := newTestProvider(srv, testCreds())

	first, err := provider.GetToken(context.Background())
	require.NoError(t, err)
	second, err := provider.GetToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "tok-1", first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, issues)
}

func TestGetTokenReissuesWhenExpired(t *testing.T) {
	issues := 0
	srv := newIssueServer(t, &issues, func(n int) (int, string) {
		expires := time.Now().Add(-time.Minute).UTC().Format(time.RFC3339)
		return 200, fmt.Sprintf(`{"accessToken":"tok-%d","expires":%q}`, n, expires)
	})
	defer srv.Close()

	provider := newTestProvider(srv, testCreds())

	first, err := provider.GetToken(context.Background())
	require.NoError(t, err)
	second, err := provider.GetToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "tok-1", first)
	assert.Equal(t, "tok-2", second)
	assert.Equal(t, 2, issues)
}

func TestGetTokenUpstreamRefusalIsAuthError(t *testing.T) {
	issues := 0
	srv := newIssueServer(t, &issues, func(int) (int, string) { return 401, `{}` })
	defer srv.Close()

	provider := newTestProvider(srv, testCreds())

	_, err := provider.GetToken(context.Background())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}

// unsignedJWT builds a JWT-shaped token carrying only an exp claim.
func unsignedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	header, err := json.Marshal(map[string]string{"alg": "none", "typ": "JWT"})
	require.NoError(t, err)
	claims, err := json.Marshal(map[string]int64{"exp": exp.Unix()})
	require.NoError(t, err)
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(claims) + "."
}

func TestGetTokenReadsJWTExpiry(t *testing.T) {
	issues := 0
	var token string
	srv := newIssueServer(t, &issues, func(int) (int, string) {
		return 200, fmt.Sprintf(`{"accessToken":%q}`, token)
	})
	defer srv.Close()

	token = unsignedJWT(t, time.Now().Add(time.Hour))
	provider := newTestProvider(srv, testCreds())

	first, err := provider.GetToken(context.Background())
	require.NoError(t, err)
	_, err = provider.GetToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, token, first)
	// The exp claim keeps the token memoized; no re-issue.
	assert.Equal(t, 1, issues)
}

func TestGetTokenOpaqueTokenGetsDefaultTTL(t *testing.T) {
	issues := 0
	srv := newIssueServer(t, &issues, func(n int) (int, string) {
		return 200, fmt.Sprintf(`{"accessToken":"opaque-%d"}`, n)
	})
	defer srv.Close()

	provider := newTestProvider(srv, testCreds())

	_, err := provider.GetToken(context.Background())
	require.NoError(t, err)
	_, err = provider.GetToken(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, issues)
}

func TestGetTokenEmptyTokenIsAuthError(t *testing.T) {
	issues := 0
	srv := newIssueServer(t, &issues, func(int) (int, string) { return 200, `{"accessToken":""}` })
	defer srv.Close()

	provider := newTestProvider(srv, testCreds())

	_, err := provider.GetToken(context.Background())

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
}

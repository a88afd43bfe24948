package mindbody

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"slotify/utils"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

const (
	// TokenCachePrefix is the Redis key prefix for mirrored upstream tokens.
	TokenCachePrefix = "mindbody:token:"
	// defaultTokenTTL applies when the upstream response carries no expiry
	// and the token is not a parseable JWT.
	defaultTokenTTL = 30 * time.Minute
	// expirySkew refreshes tokens slightly early so in-flight requests never
	// carry one that lapses mid-call.
	expirySkew = 30 * time.Second
)

// TokenProvider hands out a valid upstream credential token.
type TokenProvider interface {
	GetToken(ctx context.Context) (string, error)
}

// Credentials are the upstream staff credentials used to issue tokens.
type Credentials struct {
	Username string
	Password string
}

// CachedTokenProvider memoizes issued tokens in-process until expiry and
// mirrors them into Redis so sibling processes can reuse them. Concurrent
// callers may race to issue; a duplicate issue is wasted work, nothing more.
type CachedTokenProvider struct {
	BaseURL     string
	SiteID      string
	Credentials Credentials
	HTTPClient  *http.Client
	Cache       *redis.Client // optional token mirror

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewCachedTokenProvider builds a provider for the given site. cache may be
// nil, in which case tokens are only memoized in-process.
func NewCachedTokenProvider(baseURL, siteID string, creds Credentials, cache *redis.Client) *CachedTokenProvider {
	return &CachedTokenProvider{
		BaseURL:     baseURL,
		SiteID:      siteID,
		Credentials: creds,
		HTTPClient:  &http.Client{Timeout: 15 * time.Second},
		Cache:       cache,
	}
}

type mirroredToken struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// GetToken returns the memoized token while it remains valid, otherwise
// issues a fresh one. An unconfigured provider fails with
// MissingCredentialsError; an upstream refusal with AuthError.
func (p *CachedTokenProvider) GetToken(ctx context.Context) (string, error) {
	if p.Credentials.Username == "" || p.Credentials.Password == "" {
		return "", NewMissingCredentialsError("upstream credentials are not configured")
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	now := time.Now()
	if p.token != "" && now.Before(p.expiresAt.Add(-expirySkew)) {
		return p.token, nil
	}

	if tok, ok := p.fromMirror(ctx, now); ok {
		return tok, nil
	}

	token, expiresAt, err := p.issue(ctx)
	if err != nil {
		return "", NewAuthError(err.Error())
	}
	p.token = token
	p.expiresAt = expiresAt
	p.mirror(ctx, token, expiresAt)
	return token, nil
}

// fromMirror adopts a still-valid token left in Redis by a sibling process.
// Mirror failures are never fatal; the cache is best effort.
func (p *CachedTokenProvider) fromMirror(ctx context.Context, now time.Time) (string, bool) {
	if p.Cache == nil {
		return "", false
	}
	data, err := p.Cache.Get(ctx, TokenCachePrefix+p.SiteID).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("token mirror read failed", zap.Error(err))
		}
		return "", false
	}
	var mt mirroredToken
	if err := json.Unmarshal([]byte(data), &mt); err != nil {
		return "", false
	}
	if mt.Token == "" || !now.Before(mt.ExpiresAt.Add(-expirySkew)) {
		return "", false
	}
	p.token = mt.Token
	p.expiresAt = mt.ExpiresAt
	return mt.Token, true
}

func (p *CachedTokenProvider) mirror(ctx context.Context, token string, expiresAt time.Time) {
	if p.Cache == nil {
		return
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return
	}
	data, err := json.Marshal(mirroredToken{Token: token, ExpiresAt: expiresAt})
	if err != nil {
		return
	}
	if err := p.Cache.Set(ctx, TokenCachePrefix+p.SiteID, data, ttl).Err(); err != nil {
		utils.GetLogger().Warn("token mirror write failed", zap.Error(err))
	}
}

type issueTokenResponse struct {
	AccessToken string    `json:"accessToken"`
	Expires     time.Time `json:"expires,omitempty"`
}

func (p *CachedTokenProvider) issue(ctx context.Context) (string, time.Time, error) {
	payload, err := json.Marshal(map[string]string{
		"username": p.Credentials.Username,
		"password": p.Credentials.Password,
	})
	if err != nil {
		return "", time.Time{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.BaseURL+"/usertoken/issue", bytes.NewReader(payload))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("SiteId", p.SiteID)

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", time.Time{}, fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var tr issueTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", time.Time{}, fmt.Errorf("token endpoint returned an empty token")
	}

	expiresAt := tr.Expires
	if expiresAt.IsZero() {
		expiresAt = jwtExpiry(tr.AccessToken)
	}
	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(defaultTokenTTL)
	}
	return tr.AccessToken, expiresAt, nil
}

// jwtExpiry reads the exp claim from a JWT-shaped token without verifying the
// signature; we consume these tokens, we do not issue them. Returns zero time
// when the token is not a JWT or carries no exp.
func jwtExpiry(token string) time.Time {
	claims := jwt.MapClaims{}
	parser := &jwt.Parser{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	if exp, ok := claims["exp"].(float64); ok && exp > 0 {
		return time.Unix(int64(exp), 0)
	}
	return time.Time{}
}

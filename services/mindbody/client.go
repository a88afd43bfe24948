package mindbody

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"slotify/models"

	"golang.org/x/time/rate"
)

// Client issues parameterized reads against the upstream scheduling API.
// It implements API.
type Client struct {
	BaseURL    string
	SiteID     string
	HTTPClient *http.Client
	Tokens     TokenProvider
	Limiter    *rate.Limiter // upstream imposes per-site request quotas
}

// NewClient builds an upstream client. requestsPerSecond <= 0 disables the
// client-side limiter.
func NewClient(baseURL, siteID string, tokens TokenProvider, requestsPerSecond int) *Client {
	var limiter *rate.Limiter
	if requestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
	return &Client{
		BaseURL:    baseURL,
		SiteID:     siteID,
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		Tokens:     tokens,
		Limiter:    limiter,
	}
}

// FetchAvailability returns the bookable appointment windows matching filter.
func (c *Client) FetchAvailability(ctx context.Context, filter AvailabilityFilter, token string) ([]models.AvailabilitySlot, error) {
	var env availabilityEnvelope
	if err := c.get(ctx, "/appointment/availabilities", filter.query(), token, &env); err != nil {
		return nil, err
	}
	return env.Availabilities, nil
}

// FetchIncrements returns the business-hour increments for the session types.
func (c *Client) FetchIncrements(ctx context.Context, sessionTypeIDs []int, token string) ([]models.BusinessHourIncrement, error) {
	q := url.Values{}
	appendInts(q, "sessionTypeIds", sessionTypeIDs)
	var env incrementsEnvelope
	if err := c.get(ctx, "/appointment/increments", q, token, &env); err != nil {
		return nil, err
	}
	return env.Increments, nil
}

// FetchOfferings returns the priced offerings sold for the session types.
func (c *Client) FetchOfferings(ctx context.Context, sessionTypeIDs []int, token string) ([]models.Offering, error) {
	q := url.Values{}
	appendInts(q, "sessionTypeIds", sessionTypeIDs)
	var env offeringsEnvelope
	if err := c.get(ctx, "/sale/offerings", q, token, &env); err != nil {
		return nil, err
	}
	return env.Offerings, nil
}

// FetchReferenceData returns the site's staff, location, session-type and
// program lookup tables in one read.
func (c *Client) FetchReferenceData(ctx context.Context, token string) (*models.ReferenceData, error) {
	var env referenceEnvelope
	if err := c.get(ctx, "/site/reference", url.Values{}, token, &env); err != nil {
		return nil, err
	}

	ref := &models.ReferenceData{
		Staff:        make(map[int]models.Staff, len(env.Staff)),
		Locations:    make(map[int]models.Location, len(env.Locations)),
		SessionTypes: make(map[int]models.SessionType, len(env.SessionTypes)),
		Programs:     make(map[int]models.Program, len(env.Programs)),
	}
	for _, s := range env.Staff {
		ref.Staff[s.ID] = s
	}
	for _, l := range env.Locations {
		ref.Locations[l.ID] = l
	}
	for _, st := range env.SessionTypes {
		ref.SessionTypes[st.ID] = st
	}
	for _, p := range env.Programs {
		ref.Programs[p.ID] = p
	}
	return ref, nil
}

// get performs one authenticated read. Transport failures (timeouts included)
// surface as UpstreamError like any other upstream failure; token acquisition
// failures pass through typed from the provider.
func (c *Client) get(ctx context.Context, path string, query url.Values, token string, out interface{}) error {
	if token == "" {
		if c.Tokens == nil {
			return NewMissingCredentialsError("no token supplied and no token provider configured")
		}
		var err error
		token, err = c.Tokens.GetToken(ctx)
		if err != nil {
			return err
		}
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return NewUpstreamError(0, "transportError", err.Error())
		}
	}

	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return NewUpstreamError(0, "transportError", err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("SiteId", c.SiteID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return NewUpstreamError(0, "transportError", err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var env upstreamErrorEnvelope
		code, msg := "upstreamError", string(body)
		if err := json.Unmarshal(body, &env); err == nil && env.Error.Code != "" {
			code, msg = env.Error.Code, env.Error.Message
		}
		return NewUpstreamError(resp.StatusCode, code, msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return NewUpstreamError(resp.StatusCode, "malformedResponse", err.Error())
	}
	return nil
}

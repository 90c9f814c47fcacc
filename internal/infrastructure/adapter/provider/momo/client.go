package momo

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/amirhossein-jamali/momo-gateway/internal/domain/entity"
	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	coreport "github.com/amirhossein-jamali/momo-gateway/internal/domain/port/core"
	"github.com/amirhossein-jamali/momo-gateway/internal/domain/port/gateway"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"golang.org/x/oauth2"
)

// statusMessages maps request-to-pay answers to what the payer is shown
var statusMessages = map[int]string{
	http.StatusAccepted:            "Accepted",
	http.StatusBadRequest:          "Bad Request",
	http.StatusConflict:            "Conflict, duplicate reference id",
	http.StatusInternalServerError: "Internal Server Error",
}

// Client talks to the MTN MoMo collection API. The bearer token is fetched
// lazily once and reused; all session fields are guarded by mu.
type Client struct {
	cfg          Config
	baseURL      string
	httpClient   *http.Client
	breaker      *gobreaker.CircuitBreaker
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	newReference func() string

	mu              sync.Mutex
	provisioned     bool
	clientID        string
	apiKey          string
	subscriptionKey string
	token           *oauth2.Token
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithReferenceGenerator replaces the UUIDv4 reference generator
func WithReferenceGenerator(gen func() string) Option {
	return func(c *Client) {
		c.newReference = gen
	}
}

// NewClient validates the configuration and creates a provider client
func NewClient(cfg Config, logger coreport.Logger, timeProvider coreport.TimeProvider, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	c := &Client{
		cfg:             cfg,
		baseURL:         cfg.baseURL(),
		httpClient:      &http.Client{},
		logger:          logger.With(map[string]any{"component": "momo", "environment": string(cfg.Environment)}),
		timeProvider:    timeProvider,
		newReference:    uuid.NewString,
		clientID:        cfg.ClientID,
		apiKey:          cfg.APIKey,
		subscriptionKey: cfg.Secret,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "momo-" + string(cfg.Environment),
		MaxRequests: 1,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerMaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Warn("Provider circuit breaker changed state", map[string]any{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	})

	return c, nil
}

// MustNewClient is like NewClient but panics on invalid configuration
func MustNewClient(cfg Config, logger coreport.Logger, timeProvider coreport.TimeProvider, opts ...Option) *Client {
	c, err := NewClient(cfg, logger, timeProvider, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// IsSandbox reports whether the client targets the provider test environment
func (c *Client) IsSandbox() bool {
	return c.cfg.Environment == EnvironmentSandbox
}

// Country returns the configured merchant country
func (c *Client) Country() string {
	return c.cfg.Country
}

// SettlementCurrency returns the currency the provider settles in
func (c *Client) SettlementCurrency(currency string) string {
	if c.IsSandbox() {
		return sandboxCurrency
	}
	return strings.ToUpper(currency)
}

// StatusMessage maps a request-to-pay HTTP status to a human message
func (c *Client) StatusMessage(statusCode int) string {
	if msg, ok := statusMessages[statusCode]; ok {
		return msg
	}
	return "Unknown"
}

// targetEnvironment returns the X-Target-Environment header value
func (c *Client) targetEnvironment() string {
	if c.IsSandbox() {
		return sandboxTarget
	}
	return TargetEnvironment(c.cfg.Country)
}

// withSandboxHeaders adds the headers the test environment insists on
func (c *Client) withSandboxHeaders(headers map[string]string) map[string]string {
	if c.IsSandbox() {
		headers["X-XSS-Protection"] = "0"
	}
	return headers
}

// provision creates a throwaway API user and key in the sandbox. Caller holds mu.
func (c *Client) provision(ctx context.Context) {
	if c.provisioned || !c.IsSandbox() {
		return
	}
	c.provisioned = true

	if c.cfg.ClientID == FakeClientID {
		return
	}

	userID := c.newReference()
	headers := map[string]string{
		"X-Reference-Id":            userID,
		"Ocp-Apim-Subscription-Key": c.subscriptionKey,
	}
	body := map[string]string{"providerCallbackHost": c.cfg.CallbackHost}
	if _, err := c.call(ctx, http.MethodPost, "v1_0/apiuser", headers, body); err != nil {
		return
	}

	headers = map[string]string{"Ocp-Apim-Subscription-Key": c.subscriptionKey}
	if _, err := c.call(ctx, http.MethodGet, "v1_0/apiuser/"+userID, headers, nil); err != nil {
		return
	}

	resp, err := c.call(ctx, http.MethodPost, "v1_0/apiuser/"+userID+"/apikey", headers, nil)
	if err != nil {
		return
	}
	key := stringField(resp.Body, "apiKey")
	if key == "" {
		c.logger.Warn("Sandbox API key provisioning returned no key", map[string]any{"status": resp.StatusCode})
		return
	}

	c.clientID = userID
	c.apiKey = key
	c.logger.Info("Sandbox API user provisioned", nil)
}

// AcquireToken returns the cached bearer token, fetching it on first use.
// Returns "" when no token could be obtained.
func (c *Client) AcquireToken(ctx context.Context) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != nil && c.token.Valid() {
		return c.token.AccessToken
	}

	c.provision(ctx)

	resp := c.requestToken(ctx, c.subscriptionKey)
	if resp != nil && resp.StatusCode == http.StatusUnauthorized && c.cfg.SecondarySecret != c.subscriptionKey {
		c.logger.Warn("Primary subscription key rejected, switching to secondary", nil)
		c.subscriptionKey = c.cfg.SecondarySecret
		resp = c.requestToken(ctx, c.subscriptionKey)
	}
	if resp == nil || resp.StatusCode != http.StatusOK {
		return ""
	}

	access := stringField(resp.Body, "access_token")
	if access == "" {
		return ""
	}

	token := &oauth2.Token{AccessToken: access, TokenType: stringField(resp.Body, "token_type")}
	if expiresIn, ok := resp.Body["expires_in"].(float64); ok && expiresIn > 0 {
		token.Expiry = c.timeProvider.Now().Add(time.Duration(expiresIn) * time.Second)
	}
	c.token = token
	return access
}

func (c *Client) requestToken(ctx context.Context, subscriptionKey string) *response {
	credentials := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.apiKey))
	headers := c.withSandboxHeaders(map[string]string{
		"Authorization":             "Basic " + credentials,
		"Ocp-Apim-Subscription-Key": subscriptionKey,
	})
	resp, err := c.call(ctx, http.MethodPost, "collection/token/", headers, nil)
	if err != nil {
		return nil
	}
	return resp
}

// currentSubscriptionKey returns the subscription key in use
func (c *Client) currentSubscriptionKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subscriptionKey
}

type party struct {
	PartyIDType string `json:"partyIdType"`
	PartyID     string `json:"partyId"`
}

type requestToPayBody struct {
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	ExternalID   string `json:"externalId"`
	Payer        party  `json:"payer"`
	PayerMessage string `json:"payerMessage"`
	PayeeNote    string `json:"payeeNote"`
}

// RequestPayment validates the payer country and submits a request-to-pay
// under a fresh reference. The reference doubles as externalId so pushed
// notifications can be matched to the stored attempt.
func (c *Client) RequestPayment(ctx context.Context, req gateway.PaymentRequest) (*gateway.PaymentResult, error) {
	country := strings.ToUpper(strings.TrimSpace(req.PayerCountry))
	if !IsSupportedCountry(country) {
		return nil, errs.NewUnsupportedCountryError(country)
	}

	token := c.AcquireToken(ctx)
	reference := c.newReference()
	currency := c.SettlementCurrency(req.Currency)
	note := req.Reference.String()

	headers := map[string]string{
		"Authorization":             "Bearer " + token,
		"X-Reference-Id":            reference,
		"X-Target-Environment":      c.targetEnvironment(),
		"Ocp-Apim-Subscription-Key": c.currentSubscriptionKey(),
	}
	body := requestToPayBody{
		Amount:       entity.FormatAmount(req.Amount, currency),
		Currency:     currency,
		ExternalID:   reference,
		Payer:        party{PartyIDType: "MSISDN", PartyID: req.PayerPhone},
		PayerMessage: note,
		PayeeNote:    note,
	}

	result := &gateway.PaymentResult{ExternalReference: reference, Token: token}
	resp, err := c.call(ctx, http.MethodPost, "collection/v1_0/requesttopay", headers, body)
	if err != nil {
		return result, nil
	}
	result.StatusCode = resp.StatusCode
	return result, nil
}

// TransactionEnquiry queries the status of a reference with the token it was created under
func (c *Client) TransactionEnquiry(ctx context.Context, reference string, token string) *gateway.StatusDocument {
	if token == "" {
		token = c.AcquireToken(ctx)
	}

	resp, err := c.enquire(ctx, reference, token)
	if err == nil && resp.StatusCode == http.StatusUnauthorized {
		// The stored token expired; retry once with a current one
		c.invalidateToken(token)
		if fresh := c.AcquireToken(ctx); fresh != "" && fresh != token {
			c.logger.Info("Enquiry token rejected, retrying with a fresh token", map[string]any{
				"reference": reference,
			})
			resp, err = c.enquire(ctx, reference, fresh)
		}
	}
	if err != nil || resp.StatusCode != http.StatusOK {
		return &gateway.StatusDocument{Status: entity.ProviderStatusUnknown, ExternalID: reference}
	}

	return &gateway.StatusDocument{
		Status:                 normalizeStatus(stringField(resp.Body, "status")),
		Amount:                 stringField(resp.Body, "amount"),
		Currency:               strings.ToUpper(stringField(resp.Body, "currency")),
		ExternalID:             stringField(resp.Body, "externalId"),
		PayeeNote:              stringField(resp.Body, "payeeNote"),
		FinancialTransactionID: stringField(resp.Body, "financialTransactionId"),
		Reason:                 reasonField(resp.Body["reason"]),
	}
}

func (c *Client) enquire(ctx context.Context, reference, token string) (*response, error) {
	headers := map[string]string{
		"Authorization":             "Bearer " + token,
		"X-Target-Environment":      c.targetEnvironment(),
		"Ocp-Apim-Subscription-Key": c.currentSubscriptionKey(),
	}
	return c.call(ctx, http.MethodGet, "collection/v1_0/requesttopay/"+url.PathEscape(reference), headers, nil)
}

// invalidateToken drops the cached token if it is the one the provider rejected
func (c *Client) invalidateToken(rejected string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.token != nil && c.token.AccessToken == rejected {
		c.token = nil
	}
}

// ValidUser reports whether the phone number belongs to an active account holder
func (c *Client) ValidUser(ctx context.Context, phone string) bool {
	token := c.AcquireToken(ctx)
	headers := c.withSandboxHeaders(map[string]string{
		"Authorization":             "Bearer " + token,
		"X-Target-Environment":      c.targetEnvironment(),
		"Ocp-Apim-Subscription-Key": c.currentSubscriptionKey(),
	})

	location := fmt.Sprintf("collection/v1_0/accountholder/msisdn/%s/basicuserinfo", url.PathEscape(phone))
	resp, err := c.call(ctx, http.MethodGet, location, headers, nil)
	return err == nil && resp.StatusCode == http.StatusOK
}

// normalizeStatus maps the provider status field onto the known values
func normalizeStatus(status string) entity.ProviderStatus {
	switch entity.ProviderStatus(strings.ToUpper(strings.TrimSpace(status))) {
	case entity.ProviderStatusPending:
		return entity.ProviderStatusPending
	case entity.ProviderStatusSuccessful:
		return entity.ProviderStatusSuccessful
	case entity.ProviderStatusFailed:
		return entity.ProviderStatusFailed
	default:
		return entity.ProviderStatusUnknown
	}
}

// stringField reads a scalar field of a decoded body as a string
func stringField(body map[string]any, key string) string {
	switch v := body[key].(type) {
	case string:
		return v
	case float64:
		return decimal.NewFromFloat(v).String()
	case bool:
		return fmt.Sprint(v)
	default:
		return ""
	}
}

// reasonField flattens the provider reason, which is either a string or {code, message}
func reasonField(v any) string {
	switch r := v.(type) {
	case string:
		return r
	case map[string]any:
		if code := stringField(r, "code"); code != "" {
			return code
		}
		return stringField(r, "message")
	default:
		return ""
	}
}

var _ gateway.ProviderClient = (*Client)(nil)

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/order-service/internal/config"
	"github.com/MKhiriev/order-service/internal/logger"
	"github.com/MKhiriev/order-service/internal/utils"
	"github.com/MKhiriev/order-service/models"
	"github.com/go-resty/resty/v2"
)

const (
	retryWaitTime    = 100 * time.Millisecond
	retryMaxWaitTime = 2 * time.Second

	traceIDHeader = "X-Trace-ID"
)

type httpUserServiceAdapter struct {
	client *utils.HTTPClient

	serviceName   string
	signKey       string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewHTTPUserServiceAdapter constructs an HTTP/REST implementation of
// [UserServiceAdapter]. It normalises and validates the base URL from
// adapterCfg.UserServiceAddress and configures the underlying HTTP client with
// the resolved base URL, request timeout and retry policy.
//
// Returns an error if the address is empty or cannot be parsed as a valid URL.
func NewHTTPUserServiceAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (UserServiceAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.UserServiceAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid user service address: %w", err)
	}

	client := utils.NewHTTPClient().WithRetries(adapterCfg.RetryCount, retryWaitTime, retryMaxWaitTime)
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	logger.Debug().Str("base_url", baseURL).Int("retries", adapterCfg.RetryCount).Msg("creating user service adapter")

	return &httpUserServiceAdapter{
		client:        client,
		serviceName:   appCfg.ServiceName,
		signKey:       adapterCfg.TokenSignKey,
		tokenDuration: adapterCfg.TokenDuration,
		logger:        logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetUserByID implements [UserServiceAdapter]. It sends
// GET /users/{id} and decodes the JSON body into [models.User].
func (h *httpUserServiceAdapter) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	log := logger.FromContextOr(ctx, h.logger)

	req, err := h.request(ctx)
	if err != nil {
		log.Err(err).Str("func", "*httpUserServiceAdapter.GetUserByID").Msg("failed to prepare request")
		return models.User{}, err
	}

	var user models.User
	resp, err := req.
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&user).
		Get("/users/{id}")
	if err != nil {
		log.Err(err).Str("func", "*httpUserServiceAdapter.GetUserByID").Int64("user_id", id).Msg("user service request failed")
		return models.User{}, fmt.Errorf("%w: get user request: %w", ErrServiceUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("func", "*httpUserServiceAdapter.GetUserByID").Int64("user_id", id).Msg("user service returned an error")
		return models.User{}, err
	}

	return user, nil
}

// request prepares a request carrying the trace id and, when a signing key is
// configured, a freshly signed service token.
func (h *httpUserServiceAdapter) request(ctx context.Context) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)

	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
		req.SetHeader(traceIDHeader, traceID)
	}

	if h.signKey == "" {
		return req, nil
	}

	token, err := utils.GenerateServiceToken(h.serviceName, h.tokenDuration, h.signKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenGeneration, err)
	}
	req.SetAuthToken(token)

	return req, nil
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/fahim1105/seu-matrimony/internal/config"
	"github.com/fahim1105/seu-matrimony/internal/logger"
	"github.com/fahim1105/seu-matrimony/internal/utils"
	"github.com/fahim1105/seu-matrimony/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. The base URL is normalized from adapterCfg.HTTPAddress
// and every request is bounded by adapterCfg.RequestTimeout.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewJSONClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Get("/health")
	if err != nil {
		return mapTransportError("ping", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) SendRequest(ctx context.Context, req models.PendingRequestInput) (models.ServerSendResponse, error) {
	return h.postSend(ctx, "/send-request", req)
}

func (h *httpServerAdapter) SendRequestByBiodata(ctx context.Context, req models.PendingRequestInput) (models.ServerSendResponse, error) {
	return h.postSend(ctx, "/send-request-by-biodata", req)
}

func (h *httpServerAdapter) SendRequestByObjectID(ctx context.Context, req models.PendingRequestInput) (models.ServerSendResponse, error) {
	return h.postSend(ctx, "/send-request-by-objectid", req)
}

func (h *httpServerAdapter) postSend(ctx context.Context, path string, req models.PendingRequestInput) (models.ServerSendResponse, error) {
	var result models.ServerSendResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post(path)
	if err != nil {
		return result, mapTransportError("send request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Str("func", "httpServerAdapter.postSend").Str("path", path).Err(err).Msg("send request rejected")
		return result, err
	}

	return result, nil
}

func (h *httpServerAdapter) CheckRequestStatus(ctx context.Context, sender, receiver string) (models.ServerStatusResponse, error) {
	var result models.ServerStatusResponse

	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"sender": sender, "receiver": receiver}).
		SetResult(&result).
		Get("/request-status/{sender}/{receiver}")
	if err != nil {
		return result, mapTransportError("check request status", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

func (h *httpServerAdapter) CancelRequest(ctx context.Context, id string) (models.ServerMessage, error) {
	var result models.ServerMessage

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&result).
		Delete("/cancel-request/{id}")
	if err != nil {
		return result, mapTransportError("cancel request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

func (h *httpServerAdapter) GetUserInfo(ctx context.Context, email string) (models.UserStatus, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("email", email).
		Get("/user/{email}")
	if err != nil {
		return models.UserStatus{}, mapTransportError("get user info", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserStatus{}, err
	}

	var user models.UserStatus
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.UserStatus{}, fmt.Errorf("decode user info response: %w", err)
	}

	return user, nil
}

func (h *httpServerAdapter) BrowseMatches(ctx context.Context, email string) ([]json.RawMessage, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("email", email).
		Get("/browse-matches/{email}")
	if err != nil {
		return nil, mapTransportError("browse matches", err)
	}

	return decodeListing(resp)
}

func (h *httpServerAdapter) BrowseMatchesLegacy(ctx context.Context, email string) ([]json.RawMessage, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("exclude", email).
		Get("/all-biodata")
	if err != nil {
		return nil, mapTransportError("browse matches legacy", err)
	}

	return decodeListing(resp)
}

func decodeListing(resp *resty.Response) ([]json.RawMessage, error) {
	if err := mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode listing response: %w", err)
	}

	return items, nil
}

func (h *httpServerAdapter) SendVerificationEmail(ctx context.Context, email string) (models.ServerMessage, error) {
	return h.postMessage(ctx, "/send-verification-email", map[string]string{"email": email})
}

func (h *httpServerAdapter) RegisterUser(ctx context.Context, user models.RegistrationInput) (models.ServerMessage, error) {
	return h.postMessage(ctx, "/register-user", user)
}

func (h *httpServerAdapter) CompleteRegistration(ctx context.Context, user models.RegistrationInput) (models.ServerMessage, error) {
	return h.postMessage(ctx, "/complete-registration", user)
}

func (h *httpServerAdapter) postMessage(ctx context.Context, path string, body any) (models.ServerMessage, error) {
	var result models.ServerMessage

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return result, mapTransportError(strings.TrimPrefix(path, "/"), err)
	}
	if err = mapHTTPError(resp); err != nil {
		return result, err
	}

	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-patient-vault/internal/config"
	"github.com/MKhiriev/go-patient-vault/internal/logger"
	"github.com/MKhiriev/go-patient-vault/internal/utils"
	"github.com/MKhiriev/go-patient-vault/models"
)

// tokenRefreshMargin is subtracted from a token's expiry so it is never
// presented in its last seconds.
const tokenRefreshMargin = 30 * time.Second

type cachedToken struct {
	value     string
	expiresAt time.Time
}

type httpFeedAdapter struct {
	client   *utils.HTTPClient
	scriptID string
	now      func() time.Time

	mu     sync.Mutex
	tokens map[string]cachedToken

	logger *logger.Logger
}

type tokenRequest struct {
	ScriptID string `json:"script_id"`
	Action   string `json:"action"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type articlesResponse struct {
	Articles []models.Article `json:"articles"`
}

type requestsResponse struct {
	Requests []models.SharingRequest `json:"requests"`
}

// NewHTTPFeedAdapter constructs the HTTP implementation of [FeedAdapter].
// It returns [ErrOffline] when no address is configured, so callers can
// fall back to cached data without a network attempt.
func NewHTTPFeedAdapter(cfg config.ClientFeed, logger *logger.Logger) (FeedAdapter, error) {
	if strings.TrimSpace(cfg.Address) == "" {
		return nil, ErrOffline
	}

	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid feed address: %w", err)
	}

	return &httpFeedAdapter{
		client:   utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		scriptID: cfg.ScriptID,
		now:      time.Now,
		tokens:   make(map[string]cachedToken),
		logger:   logger,
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

func (h *httpFeedAdapter) FetchArticles(ctx context.Context) ([]models.Article, error) {
	body, err := h.call(ctx, ActionFetchArticles, nil)
	if err != nil {
		return nil, err
	}

	// The proxy answers either with a bare list or with {"articles": [...]}.
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var articles []models.Article
		if err = json.Unmarshal(trimmed, &articles); err != nil {
			return nil, fmt.Errorf("decode articles: %w", err)
		}
		return articles, nil
	}

	var wrapped articlesResponse
	if err = json.Unmarshal(trimmed, &wrapped); err != nil {
		h.logger.Warn().Err(err).Str("func", "*httpFeedAdapter.FetchArticles").Msg("unexpected articles response")
		return []models.Article{}, nil
	}
	if wrapped.Articles == nil {
		return []models.Article{}, nil
	}
	return wrapped.Articles, nil
}

func (h *httpFeedAdapter) FetchRequests(ctx context.Context) ([]models.SharingRequest, error) {
	body, err := h.call(ctx, ActionFetchRequests, nil)
	if err != nil {
		return nil, err
	}

	var wrapped requestsResponse
	if err = json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("decode requests: %w", err)
	}
	if wrapped.Requests == nil {
		return []models.SharingRequest{}, nil
	}
	return wrapped.Requests, nil
}

func (h *httpFeedAdapter) SendRequestResponse(ctx context.Context, resp models.RequestResponse) error {
	_, err := h.call(ctx, ActionSendRequestedData, map[string]any{
		"requestId": resp.RequestID,
		"accepted":  resp.Accepted,
		"message":   resp.Message,
	})
	return err
}

// call performs the proxy request for action, merging extra into the body.
// A rejected cached token is dropped and the call is repeated once with a
// fresh one.
func (h *httpFeedAdapter) call(ctx context.Context, action string, extra map[string]any) ([]byte, error) {
	body, cached, err := h.callOnce(ctx, action, extra)
	if cached && errors.Is(err, ErrUnauthorized) {
		h.dropToken(action)
		body, _, err = h.callOnce(ctx, action, extra)
	}
	return body, err
}

func (h *httpFeedAdapter) callOnce(ctx context.Context, action string, extra map[string]any) ([]byte, bool, error) {
	token, cached, err := h.token(ctx, action)
	if err != nil {
		return nil, false, err
	}

	payload := make(map[string]any, len(extra)+3)
	for k, v := range extra {
		payload[k] = v
	}
	payload["token"] = token
	payload["action"] = action
	payload["script_id"] = h.scriptID

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/proxy")
	if err != nil {
		return nil, cached, fmt.Errorf("proxy request %s: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, cached, err
	}

	return resp.Body(), cached, nil
}

// token returns a cached, still valid token for action or requests a new
// one. Tokens without a readable expiry are used once and not cached.
func (h *httpFeedAdapter) token(ctx context.Context, action string) (string, bool, error) {
	h.mu.Lock()
	t, ok := h.tokens[action]
	h.mu.Unlock()
	if ok && h.now().Before(t.expiresAt.Add(-tokenRefreshMargin)) {
		return t.value, true, nil
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(tokenRequest{ScriptID: h.scriptID, Action: action}).
		Post("/get_token")
	if err != nil {
		return "", false, fmt.Errorf("token request %s: %w", action, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", false, err
	}

	var result tokenResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil || result.Token == "" {
		return "", false, ErrNoToken
	}

	exp, err := utils.ParseTokenExpiry(result.Token)
	if err != nil {
		h.logger.Debug().Err(err).Str("action", action).Msg("feed token expiry unknown, not caching")
		return result.Token, false, nil
	}

	h.mu.Lock()
	h.tokens[action] = cachedToken{value: result.Token, expiresAt: exp}
	h.mu.Unlock()

	return result.Token, false, nil
}

func (h *httpFeedAdapter) dropToken(action string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.tokens, action)
}

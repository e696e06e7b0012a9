package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/vetward/vetward/internal/config"
	"github.com/vetward/vetward/internal/logger"
	"github.com/vetward/vetward/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: log}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header, stored via SetToken, and the principal is
// read from the token's subject claim.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/auth/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	principal, err := parsePrincipalFromJWT(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("login parse principal: %w", err)
	}

	h.SetToken(token)
	return models.Session{Token: token, Principal: principal}, nil
}

func (h *httpServerAdapter) CreateCase(ctx context.Context, c models.SurgeryCase) (models.SurgeryCase, error) {
	var created models.SurgeryCase

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(c).
		SetResult(&created).
		Post("/api/cases/")
	if err != nil {
		return models.SurgeryCase{}, fmt.Errorf("create case request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SurgeryCase{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) GetCase(ctx context.Context, id int64) (models.SurgeryCase, error) {
	var found models.SurgeryCase

	resp, err := h.authedRequest(ctx).
		SetResult(&found).
		Get("/api/cases/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.SurgeryCase{}, fmt.Errorf("get case request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SurgeryCase{}, err
	}

	return found, nil
}

func (h *httpServerAdapter) ListCases(ctx context.Context) ([]models.SurgeryCase, error) {
	resp, err := h.authedRequest(ctx).Get("/api/cases/")
	if err != nil {
		return nil, fmt.Errorf("list cases request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var cases []models.SurgeryCase
	if err = json.Unmarshal(resp.Body(), &cases); err != nil {
		return nil, fmt.Errorf("decode list cases response: %w", err)
	}

	return cases, nil
}

func (h *httpServerAdapter) UpdateCase(ctx context.Context, c models.SurgeryCase) (models.SurgeryCase, error) {
	var updated models.SurgeryCase

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(c).
		SetResult(&updated).
		Put("/api/cases/" + strconv.FormatInt(c.ID, 10))
	if err != nil {
		return models.SurgeryCase{}, fmt.Errorf("update case request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SurgeryCase{}, err
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteCase(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/cases/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete case request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ToggleCaseField(ctx context.Context, id int64, field models.CaseField) (models.SurgeryCase, error) {
	var updated models.SurgeryCase

	resp, err := h.authedRequest(ctx).
		SetResult(&updated).
		Post("/api/cases/" + strconv.FormatInt(id, 10) + "/toggle/" + string(field))
	if err != nil {
		return models.SurgeryCase{}, fmt.Errorf("toggle case field request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SurgeryCase{}, err
	}

	return updated, nil
}

func (h *httpServerAdapter) AddTodo(ctx context.Context, caseID int64, text string) (models.TodoItem, error) {
	var created models.TodoItem

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TodoItem{Text: text}).
		SetResult(&created).
		Post("/api/cases/" + strconv.FormatInt(caseID, 10) + "/todos")
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("add todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TodoItem{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) ToggleTodo(ctx context.Context, caseID, todoID int64) (models.TodoItem, error) {
	var updated models.TodoItem

	resp, err := h.authedRequest(ctx).
		SetResult(&updated).
		Post("/api/cases/" + strconv.FormatInt(caseID, 10) + "/todos/" + strconv.FormatInt(todoID, 10) + "/toggle")
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("toggle todo request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TodoItem{}, err
	}

	return updated, nil
}

func (h *httpServerAdapter) DeleteTodo(ctx context.Context, caseID, todoID int64) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/cases/" + strconv.FormatInt(caseID, 10) + "/todos/" + strconv.FormatInt(todoID, 10))
	if err != nil {
		return fmt.Errorf("delete todo request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ExportCases(ctx context.Context, format string) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("format", format).
		Get("/api/cases/export")
	if err != nil {
		return nil, fmt.Errorf("export cases request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpServerAdapter) ImportCases(ctx context.Context, format string, data []byte) (int, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("format", format).
		SetBody(data).
		Post("/api/cases/import")
	if err != nil {
		return 0, fmt.Errorf("import cases request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	var result struct {
		Imported int `json:"imported"`
	}
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return 0, fmt.Errorf("decode import response: %w", err)
	}

	return result.Imported, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// parsePrincipalFromJWT reads the subject claim without verifying the
// signature. Verification is the server's job; the client only needs the
// principal to scope its local queue and cache.
func parsePrincipalFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("empty token subject")
	}

	return sub, nil
}

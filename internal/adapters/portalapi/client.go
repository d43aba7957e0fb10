package portalapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/medportal-cli/internal/domain"
	"github.com/bnema/medportal-cli/internal/ports"
	"github.com/bnema/medportal-cli/pkg/logging"
)

const maxResponseBytes = 1 << 20

const defaultRequestTimeout = 15 * time.Second

var (
	_ ports.PortalAPI   = (*Client)(nil)
	_ ports.ReplySource = (*Client)(nil)
)

// StatusError carries a non-2xx response from the portal API.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("status %d", e.Code)
	}
	return fmt.Sprintf("status %d: %s", e.Code, e.Message)
}

type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Clock          ports.Clock
	Logger         *logging.Logger
}

func NewClient(baseURL string, httpClient *http.Client, timeout time.Duration, logger *logging.Logger) *Client {
	return &Client{
		BaseURL:        baseURL,
		HTTPClient:     httpClient,
		RequestTimeout: timeout,
		Clock:          ports.SystemClock{},
		Logger:         logger,
	}
}

func (c *Client) Login(ctx context.Context, email, password string) (domain.User, error) {
	var payload userPayload
	if err := c.do(ctx, http.MethodPost, "/login", nil, loginRequest{Email: email, Password: password}, &payload); err != nil {
		return domain.User{}, fmt.Errorf("login: %w", err)
	}
	return payload.toDomain(), nil
}

func (c *Client) Register(ctx context.Context, registration domain.Registration) (domain.User, error) {
	request := registerRequest{
		Name:      registration.Name,
		Email:     registration.Email,
		Password:  registration.Password,
		Role:      string(registration.Role),
		Specialty: registration.Specialty,
	}

	var payload userPayload
	if err := c.do(ctx, http.MethodPost, "/register", nil, request, &payload); err != nil {
		return domain.User{}, fmt.Errorf("register: %w", err)
	}
	return payload.toDomain(), nil
}

func (c *Client) ListDoctors(ctx context.Context) ([]domain.Doctor, error) {
	var payload []doctorPayload
	if err := c.do(ctx, http.MethodGet, "/doctors", nil, nil, &payload); err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	doctors := make([]domain.Doctor, 0, len(payload))
	for _, entry := range payload {
		doctors = append(doctors, entry.toDomain())
	}
	return doctors, nil
}

func (c *Client) CreateAppointment(ctx context.Context, appointment domain.Appointment) (string, error) {
	request := appointmentRequest{
		UserID:      appointment.UserID,
		DoctorID:    appointment.DoctorID,
		DoctorName:  appointment.DoctorName,
		PatientName: appointment.PatientName,
		Date:        appointment.Date,
		Time:        appointment.Time,
		Status:      string(appointment.Status),
	}

	var payload createdPayload
	if err := c.do(ctx, http.MethodPost, "/appointments", nil, request, &payload); err != nil {
		return "", fmt.Errorf("create appointment: %w", err)
	}
	if payload.ID == "" {
		return "", fmt.Errorf("create appointment: %w: response missing id", domain.ErrRemoteUnavailable)
	}
	return string(payload.ID), nil
}

func (c *Client) ListAppointments(ctx context.Context, scope ports.Scope) ([]domain.Appointment, error) {
	query, err := scopeQuery(scope)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	var payload []appointmentPayload
	if err := c.do(ctx, http.MethodGet, "/appointments", query, nil, &payload); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	appointments := make([]domain.Appointment, 0, len(payload))
	for _, entry := range payload {
		appointments = append(appointments, entry.toDomain())
	}
	return appointments, nil
}

func (c *Client) UpdateAppointmentStatus(ctx context.Context, id string, status domain.AppointmentStatus) error {
	err := c.do(ctx, http.MethodPut, "/appointments/update/"+formatID(id), nil, statusRequest{Status: string(status)}, nil)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return fmt.Errorf("update appointment %s: %w", id, errors.Join(domain.ErrAppointmentNotFound, statusErr))
		}
		return fmt.Errorf("update appointment %s: %w", id, err)
	}
	return nil
}

func (c *Client) DeleteAppointment(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/appointments/delete/"+formatID(id), nil, nil, nil); err != nil {
		return fmt.Errorf("delete appointment %s: %w", id, err)
	}
	return nil
}

func (c *Client) ChatHistory(ctx context.Context, scope ports.Scope) ([]domain.ConversationTurn, error) {
	query, err := scopeQuery(scope)
	if err != nil {
		return nil, fmt.Errorf("chat history: %w", err)
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/chat", query, nil, &raw); err != nil {
		return nil, fmt.Errorf("chat history: %w", err)
	}

	turns := decodeHistory(raw)
	c.logger().Debug("chat history fetched", "turns", len(turns))
	return turns, nil
}

// Reply posts one message to the portal assistant. The portal does not return
// the id of the stored turn, so the reply carries none.
func (c *Client) Reply(ctx context.Context, userID, message string) (domain.ChatReply, error) {
	var payload chatReplyPayload
	if err := c.do(ctx, http.MethodPost, "/chat", nil, chatRequest{UserID: userID, Message: message}, &payload); err != nil {
		return domain.ChatReply{}, fmt.Errorf("send chat: %w", err)
	}
	if strings.TrimSpace(payload.Response) == "" {
		return domain.ChatReply{}, fmt.Errorf("send chat: %w: empty response", domain.ErrRemoteUnavailable)
	}

	timestamp := time.Time(payload.Timestamp)
	if timestamp.IsZero() {
		timestamp = c.now()
	}

	return domain.ChatReply{
		ID:        string(payload.ID),
		Response:  payload.Response,
		Timestamp: timestamp,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, path, query)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	request, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	request.Header.Set("Accept", "application/json")
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient().Do(request)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %w", domain.ErrRemoteUnavailable, err)
	}
	defer func() { _ = response.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: read response: %w", domain.ErrRemoteUnavailable, err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		statusErr := &StatusError{Code: response.StatusCode, Message: errorMessage(payload)}
		c.logger().Debug("portal api rejected request", "method", method, "path", path, "status", response.StatusCode)
		return fmt.Errorf("%w: %w", domain.ErrRemoteUnavailable, statusErr)
	}

	if out == nil || response.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(payload)) == 0 {
		return nil
	}
	if raw, ok := out.(*json.RawMessage); ok {
		*raw = append((*raw)[:0], payload...)
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("%w: decode response: %w", domain.ErrRemoteUnavailable, err)
	}
	return nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := c.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

func (c *Client) now() time.Time {
	if c.Clock == nil {
		return time.Now().UTC()
	}
	return c.Clock.Now().UTC()
}

func (c *Client) logger() *logging.Logger {
	if c.Logger == nil {
		return logging.Discard()
	}
	return c.Logger
}

func errorMessage(body []byte) string {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}

	message := payload.Error
	if message == "" {
		message = payload.Message
	}
	if payload.Details != "" {
		if message == "" {
			return payload.Details
		}
		return message + ": " + payload.Details
	}
	return message
}

func scopeQuery(scope ports.Scope) (url.Values, error) {
	query := url.Values{}
	switch {
	case scope.UserID != "" && scope.DoctorID != "":
		return nil, errors.New("scope must name either a user or a doctor")
	case scope.UserID != "":
		query.Set("userId", scope.UserID)
	case scope.DoctorID != "":
		query.Set("doctorId", scope.DoctorID)
	default:
		return nil, errors.New("scope is required")
	}
	return query, nil
}

func buildAPIURL(baseURL, path string, query url.Values) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	parsed.Path = strings.TrimRight(parsed.Path, "/") + "/" + strings.TrimLeft(path, "/")
	parsed.RawPath = ""
	if len(query) > 0 {
		parsed.RawQuery = query.Encode()
	}
	return parsed.String(), nil
}

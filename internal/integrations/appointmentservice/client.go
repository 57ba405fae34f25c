package appointmentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const target = "appointmentservice"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder интерфейс для записи метрик исходящих запросов
type MetricsRecorder interface {
	ObserveIntegrationRequest(target, operation, outcome string, duration time.Duration)
}

// Client клиент для работы с AppointmentService.
// Тонкий адаптер: доставляет нормализованный payload и переводит исход
// в успех/отказ. Разрешение конфликтов записи целиком на стороне бэкенда.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента AppointmentService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithMetrics включает запись метрик исходящих запросов
func (c *Client) WithMetrics(m MetricsRecorder) *Client {
	c.metrics = m
	return c
}

// CreateAppointment отправляет запрос на создание записи
func (c *Client) CreateAppointment(ctx context.Context, payload *CreateAppointmentRequest) (*Appointment, error) {
	start := time.Now()
	appointment, err := c.doCreate(ctx, payload)
	c.observe("CreateAppointment", start, err)
	return appointment, err
}

func (c *Client) doCreate(ctx context.Context, payload *CreateAppointmentRequest) (*Appointment, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal payload: %v", ErrInternal, err)
	}

	url := c.baseURL + "/internal/appointments"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Warn("CreateAppointment rejected with status %d: %s", resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var appointment Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appointment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &appointment, nil
}

func (c *Client) observe(operation string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	c.metrics.ObserveIntegrationRequest(target, operation, outcome, time.Since(start))
}

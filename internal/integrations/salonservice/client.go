package salonservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const target = "salonservice"

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

// Client клиент для работы с SalonService (справочники салона и расписание)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента SalonService
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

// GetSchedule получает операционное расписание салона
func (c *Client) GetSchedule(ctx context.Context) (*Schedule, error) {
	var schedule Schedule
	err := c.getJSON(ctx, "GetSchedule", c.baseURL+"/internal/salon/schedule", &schedule, ErrScheduleNotFound)
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// ListServices получает все активные услуги салона (не зависят от даты)
func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	var services []Service
	err := c.getJSON(ctx, "ListServices", c.baseURL+"/internal/services", &services, nil)
	if err != nil {
		return nil, err
	}
	return services, nil
}

// ListActiveCombos получает комбо-предложения, действующие на указанную дату.
// Дата - скрытая зависимость списка: на каждую новую дату нужен новый запрос.
func (c *Client) ListActiveCombos(ctx context.Context, date time.Time) ([]Combo, error) {
	url := fmt.Sprintf("%s/internal/combo-offers?date=%s", c.baseURL, date.Format("2006-01-02"))

	var combos []Combo
	err := c.getJSON(ctx, "ListActiveCombos", url, &combos, nil)
	if err != nil {
		return nil, err
	}
	return combos, nil
}

// ListStaff получает список мастеров салона
func (c *Client) ListStaff(ctx context.Context) ([]Staff, error) {
	var staff []Staff
	err := c.getJSON(ctx, "ListStaff", c.baseURL+"/internal/staff", &staff, nil)
	if err != nil {
		return nil, err
	}
	return staff, nil
}

// ListCustomers получает список клиентов салона
func (c *Client) ListCustomers(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	err := c.getJSON(ctx, "ListCustomers", c.baseURL+"/internal/customers", &customers, nil)
	if err != nil {
		return nil, err
	}
	return customers, nil
}

// GetCustomer получает клиента по id (для разрешения предпочитаемого мастера)
func (c *Client) GetCustomer(ctx context.Context, customerID string) (*Customer, error) {
	url := fmt.Sprintf("%s/internal/customers/%s", c.baseURL, customerID)

	var customer Customer
	err := c.getJSON(ctx, "GetCustomer", url, &customer, ErrCustomerNotFound)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ.
// notFoundErr - ошибка для статуса 404 (nil, если 404 не ожидается как бизнес-случай).
func (c *Client) getJSON(ctx context.Context, operation, url string, out interface{}, notFoundErr error) error {
	start := time.Now()
	err := c.doGetJSON(ctx, url, out, notFoundErr)
	c.observe(operation, start, err)
	return err
}

func (c *Client) doGetJSON(ctx context.Context, url string, out interface{}, notFoundErr error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		if notFoundErr != nil {
			return notFoundErr
		}
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
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

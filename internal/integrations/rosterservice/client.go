package rosterservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const dateFormat = "2006-01-02"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с RosterService (ростер смен мастеров)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента RosterService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetMaster получает мастера по ID
func (c *Client) GetMaster(ctx context.Context, masterID int64) (*Master, error) {
	url := fmt.Sprintf("%s/internal/masters/%d", c.baseURL, masterID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrMasterNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var master Master
	if err := json.NewDecoder(resp.Body).Decode(&master); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &master, nil
}

// GetWorkingHours получает расписание мастера на дату
// Отсутствие расписания (404) не ошибка: возвращается пустое расписание,
// что трактуется вызывающей стороной как «нет доступности»
func (c *Client) GetWorkingHours(ctx context.Context, masterID int64, date time.Time) (*WorkingHours, error) {
	url := fmt.Sprintf("%s/internal/masters/%d/working-hours?date=%s",
		c.baseURL, masterID, date.Format(dateFormat))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
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
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		// Ростер на дату не заведён - мастер недоступен
		return &WorkingHours{Date: date.Format(dateFormat), Intervals: []ShiftInterval{}}, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var hours WorkingHours
	if err := json.NewDecoder(resp.Body).Decode(&hours); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &hours, nil
}

// GetWorkingHoursWithGracefulDegradation получает расписание мастера с graceful degradation
// При недоступности RosterService возвращает ErrServiceDegraded: для чтения
// доступности это означает «нет свободных часов», запись при этом не выполняется вслепую
func (c *Client) GetWorkingHoursWithGracefulDegradation(ctx context.Context, masterID int64, date time.Time) (*WorkingHours, error) {
	hours, err := c.GetWorkingHours(ctx, masterID, date)
	if err != nil {
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("RosterService unavailable, applying graceful degradation for master=%d date=%s: %v",
			masterID, date.Format(dateFormat), err)
		return nil, fmt.Errorf("%w: master=%d, error=%v", ErrServiceDegraded, masterID, err)
	}

	return hours, nil
}

package staffservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-ChainBookingService/internal/domain"
)

// Client клиент для работы со StaffService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента StaffService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetStaffSchedule получает график мастера на указанную дату
func (c *Client) GetStaffSchedule(ctx context.Context, staffID, locationID int64, date time.Time) (*DaySchedule, error) {
	query := url.Values{}
	query.Set("date", date.Format(domain.DateFormat))
	endpoint := fmt.Sprintf("%s/internal/locations/%d/staff/%d/schedule?%s",
		c.baseURL, locationID, staffID, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %w", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid staff or date format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrStaffNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var schedule DaySchedule
	if err := json.NewDecoder(resp.Body).Decode(&schedule); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if err := schedule.Validate(); err != nil {
		c.log.Warn("StaffService returned inconsistent schedule for staff_id=%d, date=%s: %v",
			staffID, date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	return &schedule, nil
}

// Package client is the HTTP client for the record store API. It fails
// fast when unconfigured, translates remote failures into user-facing
// messages, caches reads per session and invalidates the affected keys on
// every successful mutation.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"jewel-shop/internal/storage"
)

// Reads keyed to a specific identifier are never retried, so a not-found
// is never masked as transient. Summary reads (stats, recent lists) retry
// a bounded number of times.
const summaryAttempts = 3

type Client struct {
	baseURL string
	http    *http.Client
	login   string
	pass    string
	cache   *queryCache
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		cache:   newQueryCache(),
	}
}

// SetCredentials attaches Basic credentials to every subsequent call.
func (c *Client) SetCredentials(login, pass string) {
	c.login = login
	c.pass = pass
}

// ClearCache drops every cached read. Called on logout.
func (c *Client) ClearCache() {
	if c != nil && c.cache != nil {
		c.cache.clear()
	}
}

func (c *Client) ready() error {
	if c == nil || c.baseURL == "" || c.http == nil {
		return ErrNotReady
	}
	return nil
}

// Orders.

func (c *Client) PlaceOrder(ctx context.Context, o storage.Order) (int64, error) {
	var resp struct {
		BillNo int64 `json:"bill_no"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/orders", o, &resp, false); err != nil {
		return 0, err
	}

	c.cache.invalidatePrefix("orders/")
	return resp.BillNo, nil
}

func (c *Client) UpdateOrder(ctx context.Context, billNo int64, o storage.Order) error {
	path := fmt.Sprintf("/api/orders/%d", billNo)
	if err := c.do(ctx, http.MethodPut, path, o, nil, false); err != nil {
		return err
	}

	c.cache.invalidatePrefix("orders/")
	return nil
}

func (c *Client) GetOrder(ctx context.Context, billNo int64) (*storage.Order, error) {
	key := fmt.Sprintf("orders/record/%d", billNo)
	if cached, ok := c.cache.get(key); ok {
		return cached.(*storage.Order), nil
	}

	var o storage.Order
	path := fmt.Sprintf("/api/orders/%d", billNo)
	if err := c.do(ctx, http.MethodGet, path, nil, &o, false); err != nil {
		return nil, err
	}

	c.cache.set(key, &o)
	return &o, nil
}

func (c *Client) GetRecentOrders(ctx context.Context, count int) ([]storage.Order, error) {
	key := fmt.Sprintf("orders/recent/%d", count)
	if cached, ok := c.cache.get(key); ok {
		return cached.([]storage.Order), nil
	}

	var orders []storage.Order
	path := fmt.Sprintf("/api/orders/recent?count=%d", count)
	if err := c.do(ctx, http.MethodGet, path, nil, &orders, true); err != nil {
		return nil, err
	}

	c.cache.set(key, orders)
	return orders, nil
}

func (c *Client) GetOrderStats(ctx context.Context) (*storage.OrderStats, error) {
	if cached, ok := c.cache.get("orders/stats"); ok {
		return cached.(*storage.OrderStats), nil
	}

	var stats storage.OrderStats
	if err := c.do(ctx, http.MethodGet, "/api/orders/stats", nil, &stats, true); err != nil {
		return nil, err
	}

	c.cache.set("orders/stats", &stats)
	return &stats, nil
}

// Repair orders.

func (c *Client) CreateRepairOrder(ctx context.Context, r storage.RepairOrder) (int64, error) {
	var resp struct {
		RepairID int64 `json:"repair_id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/repairs", r, &resp, false); err != nil {
		return 0, err
	}

	c.cache.invalidatePrefix("repairs/")
	return resp.RepairID, nil
}

func (c *Client) UpdateRepairOrder(ctx context.Context, repairID int64, r storage.RepairOrder) error {
	path := fmt.Sprintf("/api/repairs/%d", repairID)
	if err := c.do(ctx, http.MethodPut, path, r, nil, false); err != nil {
		return err
	}

	c.cache.invalidatePrefix("repairs/")
	return nil
}

func (c *Client) GetRepairOrder(ctx context.Context, repairID int64) (*storage.RepairOrder, error) {
	key := fmt.Sprintf("repairs/record/%d", repairID)
	if cached, ok := c.cache.get(key); ok {
		return cached.(*storage.RepairOrder), nil
	}

	var r storage.RepairOrder
	path := fmt.Sprintf("/api/repairs/%d", repairID)
	if err := c.do(ctx, http.MethodGet, path, nil, &r, false); err != nil {
		return nil, err
	}

	c.cache.set(key, &r)
	return &r, nil
}

func (c *Client) GetRecentRepairOrders(ctx context.Context, count int) ([]storage.RepairOrder, error) {
	key := fmt.Sprintf("repairs/recent/%d", count)
	if cached, ok := c.cache.get(key); ok {
		return cached.([]storage.RepairOrder), nil
	}

	var repairs []storage.RepairOrder
	path := fmt.Sprintf("/api/repairs/recent?count=%d", count)
	if err := c.do(ctx, http.MethodGet, path, nil, &repairs, true); err != nil {
		return nil, err
	}

	c.cache.set(key, repairs)
	return repairs, nil
}

func (c *Client) GetRepairOrderStats(ctx context.Context) (*storage.RepairOrderStats, error) {
	if cached, ok := c.cache.get("repairs/stats"); ok {
		return cached.(*storage.RepairOrderStats), nil
	}

	var stats storage.RepairOrderStats
	if err := c.do(ctx, http.MethodGet, "/api/repairs/stats", nil, &stats, true); err != nil {
		return nil, err
	}

	c.cache.set("repairs/stats", &stats)
	return &stats, nil
}

// Services (append-only).

func (c *Client) AddPiercingService(ctx context.Context, p storage.PiercingService) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/services/piercing", p, &resp, false); err != nil {
		return 0, err
	}

	c.cache.invalidatePrefix("services/piercing/")
	return resp.ID, nil
}

func (c *Client) GetRecentPiercingServices(ctx context.Context, count int) ([]storage.PiercingService, error) {
	key := fmt.Sprintf("services/piercing/recent/%d", count)
	if cached, ok := c.cache.get(key); ok {
		return cached.([]storage.PiercingService), nil
	}

	var services []storage.PiercingService
	path := fmt.Sprintf("/api/services/piercing/recent?count=%d", count)
	if err := c.do(ctx, http.MethodGet, path, nil, &services, true); err != nil {
		return nil, err
	}

	c.cache.set(key, services)
	return services, nil
}

func (c *Client) GetPiercingStats(ctx context.Context) (*storage.PiercingStats, error) {
	if cached, ok := c.cache.get("services/piercing/stats"); ok {
		return cached.(*storage.PiercingStats), nil
	}

	var stats storage.PiercingStats
	if err := c.do(ctx, http.MethodGet, "/api/services/piercing/stats", nil, &stats, true); err != nil {
		return nil, err
	}

	c.cache.set("services/piercing/stats", &stats)
	return &stats, nil
}

func (c *Client) AddOtherService(ctx context.Context, o storage.OtherService) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/services/other", o, &resp, false); err != nil {
		return 0, err
	}

	c.cache.invalidatePrefix("services/other/")
	return resp.ID, nil
}

func (c *Client) GetRecentOtherServices(ctx context.Context, count int) ([]storage.OtherService, error) {
	key := fmt.Sprintf("services/other/recent/%d", count)
	if cached, ok := c.cache.get(key); ok {
		return cached.([]storage.OtherService), nil
	}

	var services []storage.OtherService
	path := fmt.Sprintf("/api/services/other/recent?count=%d", count)
	if err := c.do(ctx, http.MethodGet, path, nil, &services, true); err != nil {
		return nil, err
	}

	c.cache.set(key, services)
	return services, nil
}

func (c *Client) GetOtherServiceStats(ctx context.Context) (*storage.OtherServiceStats, error) {
	if cached, ok := c.cache.get("services/other/stats"); ok {
		return cached.(*storage.OtherServiceStats), nil
	}

	var stats storage.OtherServiceStats
	if err := c.do(ctx, http.MethodGet, "/api/services/other/stats", nil, &stats, true); err != nil {
		return nil, err
	}

	c.cache.set("services/other/stats", &stats)
	return &stats, nil
}

// Employees.

func (c *Client) AddEmployee(ctx context.Context, name, phoneNo string) (int64, error) {
	req := map[string]string{"name": name, "phone_no": phoneNo}
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/employees", req, &resp, false); err != nil {
		return 0, err
	}

	c.cache.invalidatePrefix("employees/")
	return resp.ID, nil
}

func (c *Client) ListEmployees(ctx context.Context) ([]storage.Employee, error) {
	if cached, ok := c.cache.get("employees/list"); ok {
		return cached.([]storage.Employee), nil
	}

	var employees []storage.Employee
	if err := c.do(ctx, http.MethodGet, "/api/employees", nil, &employees, true); err != nil {
		return nil, err
	}

	c.cache.set("employees/list", employees)
	return employees, nil
}

// CallerRole asks the server which role the current credentials carry.
func (c *Client) CallerRole(ctx context.Context) (string, error) {
	var resp struct {
		Role string `json:"role"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/me/role", nil, &resp, false); err != nil {
		return "", err
	}
	return resp.Role, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any, retryable bool) error {
	if err := c.ready(); err != nil {
		return err
	}

	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	attempts := 1
	if retryable {
		attempts = summaryAttempts
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		lastErr = c.doOnce(ctx, method, path, body, out)
		if lastErr == nil {
			return nil
		}
		if !isRetryable(lastErr) || ctx.Err() != nil {
			return lastErr
		}
	}

	return lastErr
}

func (c *Client) doOnce(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindRemote, Message: msgFallback}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.login != "" {
		req.SetBasicAuth(c.login, c.pass)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindRemote, Message: msgUnreachable}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return translate(resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &Error{Kind: KindRemote, Message: msgFallback}
		}
	}

	return nil
}

// Only transport-level failures are worth retrying; translated remote
// errors are final.
func isRetryable(err error) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == KindRemote && e.Message == msgUnreachable
}

// Package woocommerce reads customer orders from a WooCommerce shop through
// its REST API. The shop is the system of record; this client never writes.
package woocommerce

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"printorders/internal/core/ports"
	"printorders/internal/pkg/errs"
	"printorders/internal/pkg/telemetry"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel/attribute"
)

const (
	serviceName = "woocommerce"
	ordersPath  = "/wp-json/wc/v3/orders"

	// DefaultPageSize is the largest page WooCommerce serves.
	DefaultPageSize = 100

	bindingMetaKey  = "binding"
	deadlineMetaKey = "deadline"
)

// Settings configures the client. All three values are required.
type Settings struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	PageSize       int
	// MaxRetries bounds retries of a page on transport errors and 5xx answers.
	MaxRetries uint64
}

func (s Settings) missing() []string {
	var missing []string
	if strings.TrimSpace(s.BaseURL) == "" {
		missing = append(missing, "WOOCOMMERCE_URL")
	}
	if s.ConsumerKey == "" {
		missing = append(missing, "WOOCOMMERCE_CONSUMER_KEY")
	}
	if s.ConsumerSecret == "" {
		missing = append(missing, "WOOCOMMERCE_CONSUMER_SECRET")
	}
	return missing
}

// Client implements ports.OrderSource.
type Client struct {
	settings Settings
	http     *http.Client
	logger   *slog.Logger
}

// NewClient creates a client. httpClient may be nil.
func NewClient(settings Settings, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if settings.PageSize <= 0 || settings.PageSize > DefaultPageSize {
		settings.PageSize = DefaultPageSize
	}
	settings.BaseURL = strings.TrimRight(settings.BaseURL, "/")

	return &Client{
		settings: settings,
		http:     httpClient,
		logger:   logger.With("component", "woocommerce-client"),
	}
}

type metaData struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

type lineItem struct {
	Name     string     `json:"name"`
	MetaData []metaData `json:"meta_data"`
}

type wcOrder struct {
	ID        int64      `json:"id"`
	LineItems []lineItem `json:"line_items"`
	MetaData  []metaData `json:"meta_data"`
}

// FetchOrders pages through every order the shop reports.
func (c *Client) FetchOrders(ctx context.Context) (_ []ports.UpstreamOrder, err error) {
	if missing := c.settings.missing(); len(missing) > 0 {
		return nil, errs.NewNotConfiguredError("upstream order source", missing...)
	}

	ctx, span := telemetry.Start(ctx, serviceName, "FetchOrders")
	defer func() { telemetry.End(span, err) }()

	orders := make([]ports.UpstreamOrder, 0)
	for page := 1; ; page++ {
		var (
			batch      []wcOrder
			totalPages int
		)
		batch, totalPages, err = c.fetchPage(ctx, page)
		if err != nil {
			return nil, err
		}
		for _, o := range batch {
			orders = append(orders, toUpstream(o))
		}

		if totalPages > 0 {
			if page >= totalPages {
				break
			}
		} else if len(batch) < c.settings.PageSize {
			break
		}
	}

	span.SetAttributes(attribute.Int("woocommerce.orders", len(orders)))
	c.logger.InfoContext(ctx, "fetched upstream orders", "count", len(orders))
	return orders, nil
}

func (c *Client) fetchPage(ctx context.Context, page int) ([]wcOrder, int, error) {
	var (
		batch      []wcOrder
		totalPages int
	)

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pageURL(page), nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.SetBasicAuth(c.settings.ConsumerKey, c.settings.ConsumerSecret)
		req.Header.Set("Accept", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			statusErr := fmt.Errorf("GET %s page %d: %s: %s", ordersPath, page, resp.Status, strings.TrimSpace(string(body)))
			if resp.StatusCode >= http.StatusInternalServerError {
				return statusErr
			}
			return backoff.Permanent(statusErr)
		}

		batch = nil
		if err := json.NewDecoder(resp.Body).Decode(&batch); err != nil {
			return backoff.Permanent(fmt.Errorf("decode page %d: %w", page, err))
		}
		totalPages, _ = strconv.Atoi(resp.Header.Get("X-WP-TotalPages"))
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.settings.MaxRetries),
		ctx,
	)
	notify := func(err error, wait time.Duration) {
		c.logger.WarnContext(ctx, "retrying upstream page", "page", page, "wait", wait, "error", err)
	}

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, 0, errs.NewUpstreamError(serviceName, err)
	}
	return batch, totalPages, nil
}

func (c *Client) pageURL(page int) string {
	return fmt.Sprintf("%s%s?per_page=%d&page=%d&orderby=id&order=asc",
		c.settings.BaseURL, ordersPath, c.settings.PageSize, page)
}

func toUpstream(o wcOrder) ports.UpstreamOrder {
	u := ports.UpstreamOrder{
		OrderID:  strconv.FormatInt(o.ID, 10),
		Deadline: metaValue(o.MetaData, deadlineMetaKey),
	}
	if len(o.LineItems) > 0 {
		u.BookTitle = strings.TrimSpace(o.LineItems[0].Name)
		u.Binding = metaValue(o.LineItems[0].MetaData, bindingMetaKey)
	}
	return u
}

func metaValue(meta []metaData, key string) string {
	for _, m := range meta {
		if !strings.EqualFold(m.Key, key) {
			continue
		}
		switch v := m.Value.(type) {
		case string:
			return strings.TrimSpace(v)
		case nil:
			return ""
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		default:
			return fmt.Sprint(v)
		}
	}
	return ""
}

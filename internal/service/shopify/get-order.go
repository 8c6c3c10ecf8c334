package shopify

import (
	"ShopBridge/entity"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type orderResponse struct {
	Order *entity.ShopifyOrder `json:"order"`
}

// GetOrder fetches a single order by id from the Shopify Admin API.
func (s *Service) GetOrder(orderId string) (*entity.ShopifyOrder, error) {

	url := fmt.Sprintf("https://%s/admin/api/%s/orders/%s.json",
		s.ShopDomain, s.ApiVersion, orderId)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", s.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	log := s.Log.With(
		slog.String("url", url),
		slog.String("order_id", orderId),
	)

	t := time.Now()

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	log = log.With(slog.Duration("duration", time.Since(t)))

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("order %s not found", orderId)
	}
	if resp.StatusCode != http.StatusOK {
		log.With(slog.Int("status", resp.StatusCode)).Error("get order")
		return nil, fmt.Errorf("request failed with status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	var result orderResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if result.Order == nil {
		return nil, fmt.Errorf("response contains no order")
	}

	log.Debug("get order")

	return result.Order, nil
}

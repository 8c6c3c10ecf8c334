package bitrix

import (
	"ShopBridge/internal/config"
	"ShopBridge/internal/lib/sl"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// bitrixTokenURL is the shared OAuth endpoint for all Bitrix24 portals.
const bitrixTokenURL = "https://oauth.bitrix.info/oauth/token/"

// Service is a client for the Bitrix24 REST API of one portal.
// Access tokens are short-lived; the oauth2 token source refreshes them
// from the stored refresh token as needed.
type Service struct {
	portalURL   string
	tokenSource oauth2.TokenSource
	log         *slog.Logger
}

func NewService(conf *config.Config, logger *slog.Logger) *Service {
	oauthConf := &oauth2.Config{
		ClientID:     conf.Bitrix.ClientID,
		ClientSecret: conf.Bitrix.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL: bitrixTokenURL,
		},
	}

	seed := &oauth2.Token{
		RefreshToken: conf.Bitrix.RefreshToken,
	}

	return &Service{
		portalURL:   conf.Bitrix.PortalURL,
		tokenSource: oauthConf.TokenSource(context.Background(), seed),
		log:         logger.With(sl.Module("bitrix service")),
	}
}

type restError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// call executes one REST method against the portal and decodes the "result"
// member of the response envelope into out.
func (s *Service) call(method string, payload any, out any) error {

	url := fmt.Sprintf("%s/rest/%s.json", s.portalURL, method)

	requestBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	token, err := s.tokenSource.Token()
	if err != nil {
		return fmt.Errorf("obtain access token: %w", err)
	}
	token.SetAuthHeader(req)
	req.Header.Set("Content-Type", "application/json")

	log := s.log.With(
		slog.String("url", url),
		slog.String("method", method),
	)

	t := time.Now()

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	log = log.With(slog.Duration("duration", time.Since(t)))

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var restErr restError
		if err := json.Unmarshal(body, &restErr); err == nil && restErr.Error != "" {
			log.With(slog.String("rest_error", restErr.Error)).Error("bitrix call")
			return fmt.Errorf("bitrix error %s: %s", restErr.Error, restErr.ErrorDescription)
		}
		log.With(slog.Int("status", resp.StatusCode)).Error("bitrix call")
		return fmt.Errorf("request failed with status: %d", resp.StatusCode)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("unmarshal result: %w", err)
		}
	}

	log.Debug("bitrix call")

	return nil
}

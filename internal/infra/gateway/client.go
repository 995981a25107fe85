package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"pos-pricing-engine/internal/domain/catalog"
	"pos-pricing-engine/internal/domain/discount"
	"pos-pricing-engine/internal/domain/session"
	"pos-pricing-engine/internal/infra"
	"pos-pricing-engine/internal/pkg/config"
	"pos-pricing-engine/internal/usecase"
)

// Client talks to the authoritative remote pricing service. It
// implements every gateway port of the usecase layer.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

func NewClient(cfg config.PricingConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		logger:  logger,
	}
}

func (c *Client) Stores(ctx context.Context) ([]usecase.StoreInfo, error) {
	var out []usecase.StoreInfo
	if err := c.doJSON(ctx, http.MethodGet, "/stores", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Search(ctx context.Context, storeID, query string) ([]catalog.Item, error) {
	path := fmt.Sprintf("/stores/%s/catalog?query=%s", url.PathEscape(storeID), url.QueryEscape(query))

	var payloads []map[string]any
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &payloads); err != nil {
		return nil, err
	}

	items := make([]catalog.Item, 0, len(payloads))
	for _, raw := range payloads {
		item, err := catalog.FromPayload(raw)
		if err != nil {
			c.logger.Warn("skipping malformed catalog entry", "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *Client) LookupBarcode(ctx context.Context, storeID, barcode string) (*catalog.Item, error) {
	path := fmt.Sprintf("/stores/%s/barcode/%s", url.PathEscape(storeID), url.PathEscape(barcode))

	var payload map[string]any
	err := c.doJSON(ctx, http.MethodGet, path, nil, &payload)
	if infra.IsKind(err, infra.KindNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// The service answers JSON null for an unmatched barcode.
	if payload == nil {
		return nil, nil
	}

	item, err := catalog.FromPayload(payload)
	if err != nil {
		return nil, infra.WrapInfraErr(c.logger, infra.KindBadResponse, "barcode payload", err)
	}
	return &item, nil
}

func (c *Client) ActiveRules(ctx context.Context, storeID string) ([]discount.Rule, error) {
	path := fmt.Sprintf("/stores/%s/discount-rules", url.PathEscape(storeID))

	var out []discount.Rule
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ValidateCoupon(ctx context.Context, code string, subtotal decimal.Decimal) (usecase.CouponResult, error) {
	body := map[string]any{"code": code, "subtotal": subtotal}

	var out usecase.CouponResult
	if err := c.doJSON(ctx, http.MethodPost, "/coupons/validate", body, &out); err != nil {
		return usecase.CouponResult{}, err
	}
	return out, nil
}

func (c *Client) FetchQuote(ctx context.Context, req usecase.QuoteRequest) (usecase.QuoteResult, error) {
	var out usecase.QuoteResult
	if err := c.doJSON(ctx, http.MethodPost, "/quotes", req, &out); err != nil {
		return usecase.QuoteResult{}, err
	}
	return out, nil
}

func (c *Client) SubmitSale(ctx context.Context, req usecase.CheckoutRequest) (usecase.CheckoutResult, error) {
	var out usecase.CheckoutResult
	if err := c.doJSON(ctx, http.MethodPost, "/sales", req, &out); err != nil {
		return usecase.CheckoutResult{}, err
	}
	return out, nil
}

func (c *Client) StockByStore(ctx context.Context, variantID string) ([]catalog.StockLevel, error) {
	path := fmt.Sprintf("/variants/%s/stock", url.PathEscape(variantID))

	var out []catalog.StockLevel
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// registerLoginResponse tolerates both explicit expiry timestamps and
// token-only responses where the expiry lives in the exp claim.
type registerLoginResponse struct {
	RegisterID  string     `json:"register_id"`
	StoreID     string     `json:"store_id"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	AccessToken string     `json:"access_token,omitempty"`
}

func (c *Client) RegisterLogin(ctx context.Context, req usecase.RegisterLoginRequest) (session.RegisterSession, error) {
	var resp registerLoginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/register-sessions", req, &resp); err != nil {
		return session.RegisterSession{}, err
	}

	sess := session.RegisterSession{
		RegisterID: resp.RegisterID,
		StoreID:    resp.StoreID,
	}
	switch {
	case resp.ExpiresAt != nil:
		sess.ExpiresAt = *resp.ExpiresAt
	case resp.AccessToken != "":
		exp, err := session.ExpiryFromToken(resp.AccessToken)
		if err != nil {
			return session.RegisterSession{}, infra.WrapInfraErr(c.logger, infra.KindBadResponse, "session token expiry", err)
		}
		sess.ExpiresAt = exp
	default:
		return session.RegisterSession{}, infra.WrapInfraErr(c.logger, infra.KindBadResponse, "login response has no expiry", nil)
	}
	return sess, nil
}

func (c *Client) EndSession(ctx context.Context, registerID string) error {
	path := fmt.Sprintf("/register-sessions/%s", url.PathEscape(registerID))
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return infra.WrapInfraErr(c.logger, infra.KindBadResponse, "encode request body", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return infra.WrapInfraErr(c.logger, infra.KindRemoteFailure, "build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return infra.WrapInfraErr(c.logger, infra.KindRemoteFailure, method+" "+path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return infra.WrapInfraErr(c.logger, infra.KindNotFound, method+" "+path, nil)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return infra.WrapInfraErr(c.logger, infra.KindRemoteFailure,
			fmt.Sprintf("%s %s returned %d", method, path, resp.StatusCode), nil)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return infra.WrapInfraErr(c.logger, infra.KindBadResponse, "decode response body", err)
	}
	return nil
}

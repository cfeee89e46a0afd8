package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) GetBalance(ctx context.Context) (Balance, error) {
	var balance Balance
	err := c.do(ctx, http.MethodGet, "/balance", nil, nil, &balance)
	return balance, err
}

func (c *Client) GetServices(ctx context.Context) ([]Service, error) {
	var services []Service
	err := c.do(ctx, http.MethodGet, "/services", nil, nil, &services)
	return services, err
}

func (c *Client) GetBanners(ctx context.Context) ([]Banner, error) {
	var banners []Banner
	err := c.do(ctx, http.MethodGet, "/banner", nil, nil, &banners)
	return banners, err
}

// CreateTransaction pays for one service at its catalog tariff.
func (c *Client) CreateTransaction(ctx context.Context, serviceCode string) (Transaction, error) {
	req := map[string]string{"service_code": serviceCode}
	var trx Transaction
	err := c.do(ctx, http.MethodPost, "/transaction", nil, req, &trx)
	return trx, err
}

// GetTransactionHistory fetches one page. The server may clamp offset and
// limit; the returned page carries the values actually applied.
func (c *Client) GetTransactionHistory(ctx context.Context, offset, limit int) (HistoryPage, error) {
	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))

	var page HistoryPage
	err := c.do(ctx, http.MethodGet, "/transaction/history", query, nil, &page)
	return page, err
}

// TopUp credits the balance and returns the new balance from the mutating
// call itself.
func (c *Client) TopUp(ctx context.Context, amount int64) (TopUpResult, error) {
	req := map[string]int64{"top_up_amount": amount}
	var result TopUpResult
	err := c.do(ctx, http.MethodPost, "/topup", nil, req, &result)
	return result, err
}

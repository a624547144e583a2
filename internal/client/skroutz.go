package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"skroutz/categorytree/internal/config"
	"skroutz/categorytree/internal/domain"
	"skroutz/categorytree/internal/proxy"

	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

type SkroutzClient interface {
	FetchChildren(ctx context.Context, id domain.CategoryID) ([]domain.Category, error)
	Close() error
}

type skroutzClient struct {
	rl            ratelimit.Limiter
	config        config.SkroutzConfig
	baseURL       string
	httpClient    *resty.Client
	proxySupplier proxy.ProxySupplier
}

func NewSkroutzClient(cfg config.SkroutzConfig, proxySupplier proxy.ProxySupplier) SkroutzClient {
	client := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(5*time.Second).
		SetHeader("Accept", cfg.Accept).
		SetHeader("User-Agent", "categorytree/1.0")

	if proxySupplier != nil {
		if proxyURL := proxySupplier.Get(); proxyURL != "" {
			client.SetProxy(proxyURL)
			log.Infof("🔗 Using initial proxy: %s", proxyURL)
		}
	}

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &skroutzClient{
		rl:            rl,
		config:        cfg,
		baseURL:       cfg.BaseURL,
		httpClient:    client,
		proxySupplier: proxySupplier,
	}
}

// FetchChildren returns the children of category id in the order the API
// lists them. A 404 is reported as domain.ErrCategoryNotFound.
func (c *skroutzClient) FetchChildren(ctx context.Context, id domain.CategoryID) ([]domain.Category, error) {
	url := fmt.Sprintf("%s/categories/%d/children", c.baseURL, id)

	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch children of category %d", id)
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		resp, err = c.retryWithNextProxy(ctx, url, resp)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fetch children of category %d", id)
		}
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, errors.Wrapf(domain.ErrCategoryNotFound, "category %d", id)
	case resp.IsError():
		return nil, errors.Newf("HTTP error for category %d: %d %s", id, resp.StatusCode(), resp.Status())
	}

	var out domain.CategoriesResponse
	if err := json.Unmarshal([]byte(resp.String()), &out); err != nil {
		return nil, errors.Wrapf(err, "failed to decode children of category %d", id)
	}

	log.Debugf("Fetched %d children for category %d", len(out.Categories), id)
	return out.Categories, nil
}

func (c *skroutzClient) Close() error {
	return c.httpClient.Close()
}

func (c *skroutzClient) get(ctx context.Context, url string) (*resty.Response, error) {
	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("oauth_token", c.config.Token).
		Get(url)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(ctx.Err(), "request cancelled")
		}
		return nil, err
	}

	return resp, nil
}

// retryWithNextProxy repeats a rate limited request once through the next
// proxy. Without proxies the rate limited response is returned unchanged.
func (c *skroutzClient) retryWithNextProxy(ctx context.Context, url string, resp *resty.Response) (*resty.Response, error) {
	log.Warnf("🚫 Rate limit exceeded for URL: %s", url)

	if c.proxySupplier == nil {
		return resp, nil
	}
	newProxy := c.proxySupplier.Get()
	if newProxy == "" {
		return resp, nil
	}

	log.Infof("🔄 Switching to new proxy: %s", newProxy)
	c.httpClient.SetProxy(newProxy)

	return c.get(ctx, url)
}

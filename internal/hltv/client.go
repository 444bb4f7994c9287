package hltv

import (
	"context"
	"fmt"
	"time"

	"hltv-scraper/internal/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const report_client_fetch = "client.fetch"

// userAgent is sent with every request, the site blocks clients that don't look like a browser.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/89.0.4389.82 Safari/537.36"

// BrowserHeaders returns the headers every page request is made with.
func BrowserHeaders() map[string]string {
	return map[string]string{
		"User-Agent": userAgent,
	}
}

// Fetcher gets the raw markup of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string, headers map[string]string) ([]byte, error)
}

// FetchFailure is any error getting a page, transport errors and error statuses alike.
type FetchFailure struct {
	Url    string
	Status int
	Err    error
}

func (e FetchFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s", e.Url, e.Err.Error())
	}
	return fmt.Sprintf("fetch %s: status %d", e.Url, e.Status)
}

func (e FetchFailure) Unwrap() error {
	return e.Err
}

type ClientOptions struct {
	// Timeout for a single request, 0 means 30 seconds.
	Timeout time.Duration
	// Output receives every http exchange when set.
	Output telemetry.InstrumentOutput
}

// Client is the Fetcher used against the real site.
type Client struct {
	http *resty.Client
	tel  telemetry.API
}

func NewClient(tel telemetry.API, opts ClientOptions) Client {
	tel = telemetry.NewScopedAPI("hltv_client", tel)

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, tel, "hltv-scraper/http", opts.Output)

	return Client{
		http: client,
		tel:  tel,
	}
}

func (c Client) Fetch(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetHeaders(headers).
		Get(url)
	if err != nil {
		c.tel.ReportBroken(report_client_fetch, err, url)
		return nil, FetchFailure{Url: url, Err: err}
	}
	if res.IsError() {
		c.tel.ReportWarning(report_client_fetch, url, res.Status())
		return nil, FetchFailure{Url: url, Status: res.StatusCode()}
	}
	return res.Body(), nil
}

// Package renderer loads pages in headless Chrome for sites that build their
// content with JavaScript.
package renderer

import (
	"context"
	"time"

	"deep-summarizer/httpclient"

	"github.com/chromedp/chromedp"
)

const defaultChromePath = "/usr/bin/chromium-browser"

type Renderer struct {
	chromePath string
	timeout    time.Duration
}

func New(chromePath string, timeout time.Duration) *Renderer {
	if chromePath == "" {
		chromePath = defaultChromePath
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Renderer{chromePath: chromePath, timeout: timeout}
}

// RenderHTML returns the outer HTML of url after the body is ready.
func (r *Renderer) RenderHTML(ctx context.Context, url string) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(r.chromePath),
		chromedp.UserAgent(httpclient.BrowserUserAgent),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-crashpad", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("no-default-browser-check", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("headless", true),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()
	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()
	browserCtx, cancel = context.WithTimeout(browserCtx, r.timeout)
	defer cancel()

	var htmlContent string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &htmlContent),
	)
	if err != nil {
		return "", err
	}
	return htmlContent, nil
}

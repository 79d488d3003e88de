package browser

import (
	"context"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/bnema/claude-agentcore-cli/internal/domain"
	"github.com/bnema/claude-agentcore-cli/internal/ports"
)

const (
	searchURL       = "https://www.google.com"
	searchUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	navigateTimeout = 30_000
)

// Agent delegates a search subtask to a headless Chromium instance and
// extracts the first result title. Any failure to reach or drive the browser
// is reported as domain.ErrBrowserUnavailable so callers can degrade to the
// plain single-agent path.
type Agent struct{}

var _ ports.BrowserAgent = (*Agent)(nil)

func NewAgent() *Agent {
	return &Agent{}
}

func (a *Agent) Search(ctx context.Context, query string) (domain.BrowserResult, error) {
	failed := func(err error) (domain.BrowserResult, error) {
		return domain.BrowserResult{
			URL:         searchURL,
			SearchQuery: query,
			Status:      domain.InvocationStatusFailed,
		}, err
	}

	if err := ctx.Err(); err != nil {
		return failed(err)
	}

	pw, err := playwright.Run()
	if err != nil {
		return failed(fmt.Errorf("%w: %v", domain.ErrBrowserUnavailable, err))
	}
	defer func() { _ = pw.Stop() }()

	chromium, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args: []string{
			"--no-sandbox",
			"--disable-blink-features=AutomationControlled",
			"--disable-dev-shm-usage",
			"--disable-gpu",
		},
	})
	if err != nil {
		return failed(fmt.Errorf("%w: launch chromium: %v", domain.ErrBrowserUnavailable, err))
	}
	defer func() { _ = chromium.Close() }()

	browserCtx, err := chromium.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(searchUserAgent),
		Viewport:  &playwright.Size{Width: 1280, Height: 720},
	})
	if err != nil {
		return failed(fmt.Errorf("%w: new browser context: %v", domain.ErrBrowserUnavailable, err))
	}

	page, err := browserCtx.NewPage()
	if err != nil {
		return failed(fmt.Errorf("%w: new page: %v", domain.ErrBrowserUnavailable, err))
	}

	if _, err := page.Goto(searchURL, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
		Timeout:   playwright.Float(navigateTimeout),
	}); err != nil {
		return failed(fmt.Errorf("%w: navigate: %v", domain.ErrBrowserUnavailable, err))
	}

	title, err := a.runSearch(page, query)
	if err != nil {
		return failed(fmt.Errorf("%w: %v", domain.ErrBrowserUnavailable, err))
	}

	return domain.BrowserResult{
		URL:              searchURL,
		SearchQuery:      query,
		FirstResultTitle: title,
		Status:           domain.InvocationStatusSuccess,
	}, nil
}

func (*Agent) runSearch(page playwright.Page, query string) (string, error) {
	searchBox := page.Locator("textarea[name=q]")
	if err := searchBox.Fill(query); err != nil {
		return "", fmt.Errorf("fill search box: %w", err)
	}
	if err := searchBox.Press("Enter"); err != nil {
		return "", fmt.Errorf("submit search: %w", err)
	}

	if err := page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateNetworkidle,
	}); err != nil {
		return "", fmt.Errorf("wait for results: %w", err)
	}

	title, err := page.Locator("h3").First().TextContent(playwright.LocatorTextContentOptions{
		Timeout: playwright.Float(navigateTimeout),
	})
	if err != nil {
		return "", fmt.Errorf("extract first result: %w", err)
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("first result title is empty")
	}

	return title, nil
}

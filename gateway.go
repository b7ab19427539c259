package aocenv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dataKind selects which puzzle document to fetch.
type dataKind string

const (
	dataInstructions dataKind = "instructions"
	dataInput        dataKind = "input"
)

// gateway is the remote puzzle provider. The submission engine only talks
// to this interface; the HTTP implementation below is the sole production
// one.
type gateway interface {
	fetch(ctx context.Context, year, day int, kind dataKind) (string, error)
	postAnswer(ctx context.Context, year, day, part int, answer string) (string, error)
	knownAnswers(ctx context.Context, year, day int) (map[int]string, error)
	yearProgress(ctx context.Context, year int) (map[int]int, error)
}

// errNoSession indicates the session cookie has not been configured.
var errNoSession = errors.New("session cookie not set: run 'aoc setup' first")

// httpError represents a non-2xx response from the puzzle site.
type httpError struct {
	StatusCode int
	Body       string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("site responded %d", e.StatusCode)
}

// siteClient talks to the Advent of Code website: plain GETs for puzzle
// pages and input, a form POST for answers. Instructions and input are
// cached on disk because they never change once published.
type siteClient struct {
	baseURL   string
	session   string
	userAgent string
	cacheDir  string
	log       *Logger
	http      *http.Client
}

func newSiteClient(cfg Config, cacheDir string, log *Logger) *siteClient {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}
	return &siteClient{
		baseURL:   base,
		session:   cfg.Session,
		userAgent: cfg.UserAgent,
		cacheDir:  cacheDir,
		log:       log,
		http:      &http.Client{Timeout: 30 * time.Second},
	}
}

// do performs a request against the site with the session cookie attached
// and returns the body as text.
func (c *siteClient) do(ctx context.Context, method, path string, form url.Values) (string, error) {
	if c.session == "" {
		return "", errNoSession
	}

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.AddCookie(&http.Cookie{Name: "session", Value: c.session})
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	const maxResponseSize = 10 * 1024 * 1024
	b, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &httpError{StatusCode: resp.StatusCode, Body: string(b)}
	}
	return string(b), nil
}

// fetch returns the instructions or input for a puzzle, hitting the cache
// first. Instructions are reduced to terminal text before caching.
func (c *siteClient) fetch(ctx context.Context, year, day int, kind dataKind) (string, error) {
	name := "input.txt"
	if kind == dataInstructions {
		name = "instructions.md"
	}
	cachePath := filepath.Join(c.cacheDir, strconv.Itoa(year), fmt.Sprintf("%02d", day), name)

	if b, err := os.ReadFile(cachePath); err == nil {
		c.log.Infof("loaded %s for %d-%02d from cache", kind, year, day)
		return string(b), nil
	}
	c.log.Infof("cache miss, fetching %s for %d-%02d", kind, year, day)

	path := fmt.Sprintf("/%d/day/%d", year, day)
	if kind == dataInput {
		path += "/input"
	}
	content, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return "", err
	}
	if kind == dataInstructions {
		content = articleText(content)
	}

	if err := os.MkdirAll(filepath.Dir(cachePath), 0o755); err != nil {
		return "", fmt.Errorf("mkdir cache dir: %w", err)
	}
	if err := os.WriteFile(cachePath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write cache: %w", err)
	}
	return content, nil
}

// postAnswer submits an answer for one part and returns the response
// article text, which carries the provider's verdict phrasing.
func (c *siteClient) postAnswer(ctx context.Context, year, day, part int, answer string) (string, error) {
	form := url.Values{
		"level":  {strconv.Itoa(part)},
		"answer": {answer},
	}
	page, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/%d/day/%d/answer", year, day), form)
	if err != nil {
		return "", err
	}
	return articleText(page), nil
}

// Patterns for scraping puzzle and calendar pages.
var (
	reKnownAnswer = regexp.MustCompile(`Your puzzle answer was <code>([^<]+)</code>`)
	reCalendarDay = regexp.MustCompile(`calendar-day(\d+)((?:\s+calendar-[a-z]+)*)"`)
)

// knownAnswers scrapes the day page for previously accepted answers. The
// page lists them in part order, so part 1 is the first match and part 2
// the second. The day page is fetched fresh, never from cache: the cached
// instructions predate the answers.
func (c *siteClient) knownAnswers(ctx context.Context, year, day int) (map[int]string, error) {
	page, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/%d/day/%d", year, day), nil)
	if err != nil {
		return nil, err
	}
	answers := map[int]string{}
	for i, m := range reKnownAnswer.FindAllStringSubmatch(page, 2) {
		answers[i+1] = strings.TrimSpace(m[1])
	}
	return answers, nil
}

// yearProgress scrapes one year's calendar page for the star count per
// day: calendar-verycomplete marks two stars, calendar-complete one.
func (c *siteClient) yearProgress(ctx context.Context, year int) (map[int]int, error) {
	page, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/%d", year), nil)
	if err != nil {
		return nil, err
	}
	stars := map[int]int{}
	for _, m := range reCalendarDay.FindAllStringSubmatch(page, -1) {
		day, err := strconv.Atoi(m[1])
		if err != nil || day < 1 || day > 25 {
			continue
		}
		switch {
		case strings.Contains(m[2], "calendar-verycomplete"):
			stars[day] = 2
		case strings.Contains(m[2], "calendar-complete"):
			stars[day] = 1
		}
	}
	return stars, nil
}

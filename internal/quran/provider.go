package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hurufapp/huruf/internal/logging"
)

// DefaultBaseURL is the public verse-text endpoint queried when no provider
// URL is configured.
const DefaultBaseURL = "https://api.alquran.cloud/v1"

// DefaultTimeout bounds a single verse fetch.
const DefaultTimeout = 10 * time.Second

// maxResponseBytes caps the response body read for a single verse.
const maxResponseBytes = 1 << 20

// AyahProvider fetches Arabic verse text for a surah/ayah reference.
// Implementations may return placeholder text on upstream failure; callers
// treat any non-empty string as usable raw text.
type AyahProvider interface {
	FetchAyahText(ctx context.Context, surahNumber, ayahNumber int) (string, error)
}

// HTTPProvider is the HTTP-backed AyahProvider.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

// NewHTTPProvider builds a provider against baseURL (DefaultBaseURL when
// empty) with the given per-request timeout (DefaultTimeout when zero).
func NewHTTPProvider(baseURL string, timeout time.Duration) *HTTPProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// ayahResponse mirrors the provider's JSON envelope.
type ayahResponse struct {
	Data struct {
		Text string `json:"text"`
	} `json:"data"`
}

// FetchAyahText retrieves the Arabic text of one verse. An invalid reference
// fails immediately; upstream failures degrade to a placeholder string so a
// calculation can still proceed on the reference metadata alone.
func (p *HTTPProvider) FetchAyahText(ctx context.Context, surahNumber, ayahNumber int) (string, error) {
	log := logging.FromContext(ctx)

	if !ValidReference(surahNumber, ayahNumber) {
		return "", fmt.Errorf("invalid verse reference %d:%d", surahNumber, ayahNumber)
	}

	endpoint := fmt.Sprintf("%s/ayah/%s", p.baseURL,
		url.PathEscape(fmt.Sprintf("%d:%d", surahNumber, ayahNumber)))

	text, err := p.fetch(ctx, endpoint)
	if err != nil {
		log.Warn().
			Str("component", "quran").
			Str("operation", "fetch_ayah").
			Int("surah", surahNumber).
			Int("ayah", ayahNumber).
			Err(err).
			Msg("verse fetch failed, using placeholder text")
		return PlaceholderText(surahNumber, ayahNumber), nil
	}

	log.Debug().
		Str("component", "quran").
		Str("operation", "fetch_ayah").
		Int("surah", surahNumber).
		Int("ayah", ayahNumber).
		Int("text_len", len(text)).
		Msg("verse fetched")

	return text, nil
}

func (p *HTTPProvider) fetch(ctx context.Context, endpoint string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("building verse request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching verse: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("verse endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("reading verse response: %w", err)
	}

	var parsed ayahResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parsing verse response: %w", err)
	}

	text := strings.TrimSpace(parsed.Data.Text)
	if text == "" {
		return "", fmt.Errorf("verse endpoint returned empty text for %s", endpoint)
	}

	return text, nil
}

// PlaceholderText is the fallback raw text for a verse that could not be
// fetched. It carries the sūra name so downstream calculation still has
// Arabic letters to work with.
func PlaceholderText(surahNumber, ayahNumber int) string {
	surah, ok := SurahByNumber(surahNumber)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s %d", surah.Name, ayahNumber)
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DanRulev/nihongo.git/internal/models"
)

const DefaultMyMemoryURL = "https://api.mymemory.translated.net"

type MyMemoryAPI struct {
	baseURL string
	http    *http.Client
}

func NewMyMemoryAPI(baseURL string, timeout time.Duration) *MyMemoryAPI {
	if baseURL == "" {
		baseURL = DefaultMyMemoryURL
	}
	return &MyMemoryAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Translate asks MyMemory for text in the source|target language pair.
func (m *MyMemoryAPI) Translate(ctx context.Context, text, source, target string) (models.TranslationResult, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", source+"|"+target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/get?"+q.Encode(), nil)
	if err != nil {
		return models.TranslationResult{}, fmt.Errorf("%w: %v", models.ErrTranslation, err)
	}
	resp, err := m.http.Do(req)
	if err != nil {
		return models.TranslationResult{}, fmt.Errorf("%w: %v", models.ErrTranslation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.TranslationResult{}, fmt.Errorf("%w: unexpected status %d", models.ErrTranslation, resp.StatusCode)
	}

	var data models.MyMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.TranslationResult{}, fmt.Errorf("%w: decode response: %v", models.ErrTranslation, err)
	}

	if data.ResponseBody.ResponseStatus != http.StatusOK {
		return models.TranslationResult{
			Source: source,
			Target: target,
			Error:  data.ResponseBody.ResponseDetails,
		}, nil
	}

	var alternatives []string
	for _, m := range data.Matches {
		if m.Translation != "" && m.Translation != data.ResponseBody.TranslatedText {
			alternatives = append(alternatives, m.Translation)
		}
	}

	return models.TranslationResult{
		Text:         data.ResponseBody.TranslatedText,
		Match:        data.ResponseBody.Match,
		Source:       source,
		Target:       target,
		Reliable:     data.ResponseBody.Match >= 0.8,
		Alternatives: alternatives,
	}, nil
}

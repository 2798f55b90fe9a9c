// Package advisory turns the current (rank, status) pair into a short
// natural-language blurb via a remote text-generation endpoint. The
// result is purely decorative: every failure path degrades to a static
// per-language string and never touches simulation state.
package advisory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"rankfield/internal/core"
)

// Client calls a text-generation endpoint. A zero endpoint means the
// client only ever serves fallback strings.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
}

// New constructs a client for the given endpoint. Pass an empty endpoint
// to run fully offline.
func New(endpoint, apiKey string) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 5 * time.Second},
	}
}

type request struct {
	Prompt string `json:"prompt"`
	Lang   string `json:"lang"`
}

type response struct {
	Text string `json:"text"`
}

// Advise returns a one-line blurb for the given rank and status in the
// requested language, falling back to the static table when the remote
// call cannot be made or returns garbage.
func (c *Client) Advise(ctx context.Context, rank int, status core.Status, lang string) string {
	if c == nil || c.endpoint == "" {
		return Fallback(status, lang)
	}

	body, err := json.Marshal(request{
		Prompt: fmt.Sprintf("rank=%d status=%s", core.ClampRank(rank), status),
		Lang:   lang,
	})
	if err != nil {
		return Fallback(status, lang)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Fallback(status, lang)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Fallback(status, lang)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Fallback(status, lang)
	}

	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Fallback(status, lang)
	}
	text := strings.TrimSpace(out.Text)
	if text == "" {
		return Fallback(status, lang)
	}
	return text
}

// Fallback returns the static blurb for a status in the given language.
// Unknown languages fall back to English.
func Fallback(status core.Status, lang string) string {
	table, ok := fallbacks[lang]
	if !ok {
		table = fallbacks["en"]
	}
	return table[status]
}

var fallbacks = map[string]map[core.Status]string{
	"en": {
		core.StatusCollapsed: "Rank collapse: representations are folding onto a low-dimensional manifold.",
		core.StatusStable:    "Healthy rank: gradients are flowing and capacity is well used.",
		core.StatusExploding: "Rank explosion: structure is breaking down and gradients are diverging.",
	},
	"fi": {
		core.StatusCollapsed: "Asteromahdus: esitykset painuvat kasaan matalaulotteiselle monistolle.",
		core.StatusStable:    "Terve aste: gradientit virtaavat ja kapasiteetti on hyvin käytössä.",
		core.StatusExploding: "Asteräjähdys: rakenne hajoaa ja gradientit karkaavat käsistä.",
	},
}

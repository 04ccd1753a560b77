package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"github.com/thesrcielos/CodingTracker/internal/platform"
	"github.com/thesrcielos/CodingTracker/internal/user"
	"golang.org/x/sync/errgroup"
)

const notSet = "Not set"

// Card is what the dashboard shows for one platform.
type Card struct {
	Platform    platform.Platform
	Username    string
	TotalSolved int
}

func defaultCard(p platform.Platform) Card {
	return Card{Platform: p, Username: notSet}
}

type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{},
	}
}

func (c *Client) Register(ctx context.Context, req user.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/register", req, nil)
}

func (c *Client) Login(ctx context.Context, identifier, password string) (*user.LoginResponse, error) {
	var resp user.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", user.LoginRequest{Identifier: identifier, Password: password}, &resp); err != nil {
		return nil, err
	}
	c.Token = resp.Token
	return &resp, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/logout", nil, nil)
}

func (c *Client) Submit(ctx context.Context, p platform.Platform, req platform.StatsRequest) (*platform.PlatformStat, error) {
	var stat platform.PlatformStat
	if err := c.do(ctx, http.MethodPost, "/"+string(p), req, &stat); err != nil {
		return nil, err
	}
	return &stat, nil
}

func (c *Client) FetchStats(ctx context.Context, p platform.Platform) (*platform.PlatformStat, error) {
	var stat platform.PlatformStat
	if err := c.do(ctx, http.MethodGet, "/"+string(p), nil, &stat); err != nil {
		return nil, err
	}
	return &stat, nil
}

// FetchAll queries every platform concurrently and returns once all requests
// have settled. A failed platform degrades to a "Not set" card instead of
// failing the whole dashboard.
func (c *Client) FetchAll(ctx context.Context) map[platform.Platform]Card {
	platforms := platform.Platforms()
	cards := make(map[platform.Platform]Card, len(platforms))
	var mu sync.Mutex

	var g errgroup.Group
	for _, p := range platforms {
		g.Go(func() error {
			card := defaultCard(p)
			stat, err := c.FetchStats(ctx, p)
			if err != nil {
				log.WithError(err).WithField("platform", p).Debug("stats fetch failed")
			} else {
				if stat.Username != "" {
					card.Username = stat.Username
				}
				card.TotalSolved = stat.TotalSolved
			}

			mu.Lock()
			cards[p] = card
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return cards
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

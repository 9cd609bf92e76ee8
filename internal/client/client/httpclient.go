package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/taskhub/taskhub/internal/client/models"
	"github.com/taskhub/taskhub/internal/common"
)

type HTTPClient struct {
	baseURL string
	http    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do sends one request and decodes the response into out (when non-nil).
// Non-2xx responses become *APIError carrying the server's error message;
// transport failures are wrapped in ErrNetwork.
func (c *HTTPClient) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return &APIError{Status: resp.StatusCode, Message: failure.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	in := map[string]string{"name": name, "email": email, "password": password}
	user := &models.User{}
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", in, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	in := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", in, &out); err != nil {
		return nil, "", err
	}
	return &models.User{ID: out.ID, Name: out.Name, Email: out.Email}, out.Token, nil
}

func (c *HTTPClient) ListTasks(ctx context.Context, token string) ([]*models.Task, error) {
	var out []*models.Task
	if err := c.do(ctx, http.MethodGet, "/tasks", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CreateTask(ctx context.Context, token string, task *models.Task) (*models.Task, error) {
	created := &models.Task{}
	if err := c.do(ctx, http.MethodPost, "/tasks", token, task, created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode}
	}
	return nil
}

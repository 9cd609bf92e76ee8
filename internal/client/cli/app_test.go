package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub/internal/client/client"
	"github.com/taskhub/taskhub/internal/client/models"
	"github.com/taskhub/taskhub/internal/client/session"
)

type memStore struct {
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (s *memStore) Get(key string) ([]byte, error) { return s.data[key], nil }

func (s *memStore) Set(key string, value []byte) error {
	s.data[key] = value
	return nil
}

func (s *memStore) Clear() error {
	s.data = make(map[string][]byte)
	return nil
}

type scriptedClient struct {
	user  *models.User
	token string
	tasks []*models.Task

	loginErr error
	listErr  error

	created []*models.Task
}

func (c *scriptedClient) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	return c.user, nil
}

func (c *scriptedClient) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if c.loginErr != nil {
		return nil, "", c.loginErr
	}
	return c.user, c.token, nil
}

func (c *scriptedClient) ListTasks(ctx context.Context, token string) ([]*models.Task, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	return c.tasks, nil
}

func (c *scriptedClient) CreateTask(ctx context.Context, token string, task *models.Task) (*models.Task, error) {
	created := *task
	created.ID = "task-1"
	c.created = append(c.created, &created)
	return &created, nil
}

func (c *scriptedClient) Ping(ctx context.Context) error { return nil }

func appToken(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	s, err := tok.SignedString([]byte("irrelevant"))
	require.NoError(t, err)
	return s
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := readPassword
	t.Cleanup(func() { readPassword = orig })
	readPassword = func(fd int) ([]byte, error) {
		return []byte(pw), nil
	}
}

// runApp feeds the script to a fresh App and returns everything it printed.
func runApp(t *testing.T, api client.Client, sess *session.Manager, script string) string {
	t.Helper()
	var out bytes.Buffer
	app := NewApp(api, sess, strings.NewReader(script), &out)
	require.NoError(t, app.Run(context.Background()))
	return out.String()
}

func TestApp_LoginWhoamiLogout(t *testing.T) {
	stubPassword(t, "123456")
	api := &scriptedClient{
		user:  &models.User{ID: "user-1", Name: "Test", Email: "t@example.com"},
		token: appToken(t),
	}
	sess := session.NewManager(api, newMemStore())

	out := runApp(t, api, sess, "login\nt@example.com\nwhoami\nlogout\nwhoami\nquit\n")

	assert.Contains(t, out, "Logged in as t@example.com.")
	assert.Contains(t, out, "Test <t@example.com>")
	assert.Contains(t, out, "Logged out.")
	assert.Contains(t, out, "Not logged in.")
	assert.False(t, sess.Authenticated())
}

func TestApp_LoginFailureShowsServerMessage(t *testing.T) {
	stubPassword(t, "wrong")
	api := &scriptedClient{
		loginErr: &client.APIError{Status: 401, Message: "Usuário ou senha inválidos."},
	}
	sess := session.NewManager(api, newMemStore())

	out := runApp(t, api, sess, "login\nt@example.com\nquit\n")

	assert.Contains(t, out, "Login failed: Usuário ou senha inválidos.")
	assert.False(t, sess.Authenticated())
}

func TestApp_RegisterOpensSession(t *testing.T) {
	stubPassword(t, "123456")
	api := &scriptedClient{
		user:  &models.User{ID: "user-1", Name: "Test", Email: "t@example.com"},
		token: appToken(t),
	}
	sess := session.NewManager(api, newMemStore())

	out := runApp(t, api, sess, "register\nTest\nt@example.com\nquit\n")

	assert.Contains(t, out, "Registered and logged in as t@example.com.")
	assert.True(t, sess.Authenticated())
}

func TestApp_TasksRequireLogin(t *testing.T) {
	api := &scriptedClient{}
	sess := session.NewManager(api, newMemStore())

	out := runApp(t, api, sess, "tasks\nadd\nquit\n")

	assert.Equal(t, 2, strings.Count(out, "Not logged in."))
}

func TestApp_ListAndAddTasks(t *testing.T) {
	stubPassword(t, "123456")
	api := &scriptedClient{
		user:  &models.User{ID: "user-1", Name: "Test", Email: "t@example.com"},
		token: appToken(t),
		tasks: []*models.Task{
			{ID: "task-1", Title: "Comprar pão", Description: "na padaria", Done: true},
			{ID: "task-2", Title: "Estudar Go", Description: "interfaces"},
		},
	}
	sess := session.NewManager(api, newMemStore())

	out := runApp(t, api, sess, "login\nt@example.com\ntasks\nadd\nNova tarefa\ndetalhes\nquit\n")

	assert.Contains(t, out, "[x] Comprar pão: na padaria")
	assert.Contains(t, out, "[ ] Estudar Go: interfaces")
	assert.Contains(t, out, "Created task task-1.")
	require.Len(t, api.created, 1)
	assert.Equal(t, "Nova tarefa", api.created[0].Title)
	assert.Equal(t, "user-1", api.created[0].UserID)
}

func TestApp_RejectedTokenDropsSession(t *testing.T) {
	stubPassword(t, "123456")
	api := &scriptedClient{
		user:    &models.User{ID: "user-1", Name: "Test", Email: "t@example.com"},
		token:   appToken(t),
		listErr: &client.APIError{Status: 401, Message: "Não autorizado."},
	}
	sess := session.NewManager(api, newMemStore())

	out := runApp(t, api, sess, "login\nt@example.com\ntasks\nquit\n")

	assert.Contains(t, out, "Session expired, please log in again.")
	assert.False(t, sess.Authenticated())
}

func TestApp_UnknownCommand(t *testing.T) {
	sess := session.NewManager(&scriptedClient{}, newMemStore())
	out := runApp(t, &scriptedClient{}, sess, "frobnicate\nquit\n")
	assert.Contains(t, out, `Unknown command "frobnicate"`)
}

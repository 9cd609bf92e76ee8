package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/taskhub/taskhub/internal/client/client"
	"github.com/taskhub/taskhub/internal/client/models"
	"github.com/taskhub/taskhub/internal/client/session"
	"github.com/taskhub/taskhub/internal/common"
)

type App struct {
	api     client.Client
	session *session.Manager
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(api client.Client, sess *session.Manager, in io.Reader, out io.Writer) *App {
	return &App{
		api:     api,
		session: sess,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run executes the command loop until quit, EOF, or context cancellation.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Task Hub client. Type 'help' for commands.")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(a.out, "taskhub> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch cmd := strings.TrimSpace(line); cmd {
		case "":
		case "help":
			a.printHelp()
		case "register":
			a.cmdRegister(ctx)
		case "login":
			a.cmdLogin(ctx)
		case "logout":
			a.session.Logout()
			fmt.Fprintln(a.out, "Logged out.")
		case "whoami":
			a.cmdWhoami()
		case "tasks":
			a.cmdTasks(ctx)
		case "add":
			a.cmdAdd(ctx)
		case "quit", "exit":
			return nil
		default:
			fmt.Fprintf(a.out, "Unknown command %q. Type 'help'.\n", cmd)
		}
	}
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, `Commands:
  register  create an account and log in
  login     open a session
  logout    close the session
  whoami    show the current user
  tasks     list tasks
  add       create a task
  quit      exit`)
}

func (a *App) cmdRegister(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Input error: %v\n", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Input error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Input error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	err = a.session.Register(ctx, session.RegisterData{
		Name:     name,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", a.session.Err())
		return
	}
	fmt.Fprintf(a.out, "Registered and logged in as %s.\n", a.session.User().Email)
}

func (a *App) cmdLogin(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Input error: %v\n", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Input error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, email, string(password)); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", a.session.Err())
		return
	}
	fmt.Fprintf(a.out, "Logged in as %s.\n", a.session.User().Email)
}

func (a *App) cmdWhoami() {
	if !a.session.Authenticated() {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	u := a.session.User()
	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
}

func (a *App) cmdTasks(ctx context.Context) {
	if !a.session.Authenticated() {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}

	tasks, err := a.api.ListTasks(ctx, a.session.Token())
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			// The backend rejected the token; drop the local session.
			a.session.Logout()
			fmt.Fprintln(a.out, "Session expired, please log in again.")
			return
		}
		fmt.Fprintf(a.out, "Could not list tasks: %v\n", err)
		return
	}

	if len(tasks) == 0 {
		fmt.Fprintln(a.out, "No tasks.")
		return
	}
	for _, t := range tasks {
		mark := " "
		if t.Done {
			mark = "x"
		}
		fmt.Fprintf(a.out, "[%s] %s: %s\n", mark, t.Title, t.Description)
	}
}

func (a *App) cmdAdd(ctx context.Context) {
	if !a.session.Authenticated() {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}

	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Input error: %v\n", err)
		return
	}
	description, err := GetSimpleText(a.reader, "Description", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Input error: %v\n", err)
		return
	}

	task := &models.Task{
		UserID:      a.session.User().ID,
		Title:       title,
		Description: description,
	}
	created, err := a.api.CreateTask(ctx, a.session.Token(), task)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.session.Logout()
			fmt.Fprintln(a.out, "Session expired, please log in again.")
			return
		}
		fmt.Fprintf(a.out, "Could not create task: %v\n", err)
		return
	}
	fmt.Fprintf(a.out, "Created task %s.\n", created.ID)
}

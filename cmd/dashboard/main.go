package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/thesrcielos/CodingTracker/internal/dashboard"
	"github.com/thesrcielos/CodingTracker/internal/platform"
	"github.com/thesrcielos/CodingTracker/internal/user"
)

const usage = `usage: dashboard [-server URL] [-state DIR] [-timeout D] <command> [flags]

commands:
  register -username U -email E -password P
  login    -identifier U|E -password P
  logout
  submit   <platform> -username U [-easy N] [-medium N] [-hard N]
  show     [-search TERM]
  done     <platform> [-undo]
`

func main() {
	if errRun := run(context.Background(), os.Args[1:]); errRun != nil {
		log.WithError(errRun).Error("command failed")
		os.Exit(1)
	}
}

type app struct {
	client    *dashboard.Client
	tokenPath string
	daily     *dashboard.DailyStore
}

func run(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	server := flags.String("server", envOr("TRACKER_URL", "http://localhost:3030"), "tracker API base URL")
	stateDir := flags.String("state", defaultStateDir(), "directory for the token and daily status")
	timeout := flags.Duration("timeout", 0, "overall request timeout, 0 for none")
	flags.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	if errParse := flags.Parse(args); errParse != nil {
		return errParse
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return errors.New("missing command")
	}

	a := &app{
		tokenPath: filepath.Join(*stateDir, "token"),
		daily:     dashboard.NewDailyStore(filepath.Join(*stateDir, "daily.json")),
	}
	token, err := a.readToken()
	if err != nil {
		return err
	}
	a.client = dashboard.NewClient(*server, token)
	a.client.HTTP.Timeout = *timeout

	cmd, rest := flags.Arg(0), flags.Args()[1:]
	switch cmd {
	case "register":
		return a.register(ctx, rest)
	case "login":
		return a.login(ctx, rest)
	case "logout":
		return a.logout(ctx)
	case "submit":
		return a.submit(ctx, rest)
	case "show":
		return a.show(ctx, rest)
	case "done":
		return a.done(rest)
	default:
		flags.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func (a *app) register(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("register", flag.ContinueOnError)
	username := flags.String("username", "", "account username")
	email := flags.String("email", "", "account email")
	password := flags.String("password", "", "account password")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if err := a.client.Register(ctx, user.RegisterRequest{Username: *username, Email: *email, Password: *password}); err != nil {
		return err
	}
	fmt.Println("Registered", *username)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("login", flag.ContinueOnError)
	identifier := flags.String("identifier", "", "username or email")
	password := flags.String("password", "", "account password")
	if err := flags.Parse(args); err != nil {
		return err
	}

	resp, err := a.client.Login(ctx, *identifier, *password)
	if err != nil {
		return err
	}
	if err := a.writeToken(resp.Token); err != nil {
		return err
	}
	fmt.Println("Logged in as", resp.Username)
	return nil
}

func (a *app) logout(ctx context.Context) error {
	if a.client.Token != "" {
		if err := a.client.Logout(ctx); err != nil {
			log.WithError(err).Warn("server logout failed, dropping local token anyway")
		}
	}
	if err := os.Remove(a.tokenPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	fmt.Println("Logged out")
	return nil
}

func (a *app) submit(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("submit: missing platform")
	}
	p, err := platform.ParsePlatform(args[0])
	if err != nil {
		return err
	}

	flags := flag.NewFlagSet("submit", flag.ContinueOnError)
	username := flags.String("username", "", "your handle on the platform")
	easy := flags.Int("easy", 0, "easy problems solved")
	medium := flags.Int("medium", 0, "medium problems solved")
	hard := flags.Int("hard", 0, "hard problems solved")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	stat, err := a.client.Submit(ctx, p, platform.StatsRequest{
		Username:     *username,
		EasySolved:   easy,
		MediumSolved: medium,
		HardSolved:   hard,
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s: %s has %d solved\n", p.Title(), stat.Username, stat.TotalSolved)
	return nil
}

func (a *app) show(ctx context.Context, args []string) error {
	flags := flag.NewFlagSet("show", flag.ContinueOnError)
	search := flags.String("search", "", "filter platforms by name")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := a.requireLogin(); err != nil {
		return err
	}

	daily, err := a.daily.Today()
	if err != nil {
		return err
	}
	return dashboard.Render(os.Stdout, dashboard.View{
		Profile: dashboard.DecodeIdentity(a.client.Token),
		Cards:   a.client.FetchAll(ctx),
		Daily:   daily,
		Search:  *search,
		Quote:   dashboard.RandomQuote(),
	})
}

func (a *app) done(args []string) error {
	if len(args) == 0 {
		return errors.New("done: missing platform")
	}
	p, err := platform.ParsePlatform(args[0])
	if err != nil {
		return err
	}
	flags := flag.NewFlagSet("done", flag.ContinueOnError)
	undo := flags.Bool("undo", false, "clear today's mark")
	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	status, err := a.daily.Mark(p, !*undo)
	if err != nil {
		return err
	}
	if status.AllDone() {
		fmt.Println("All platforms done for today")
	}
	return nil
}

func (a *app) requireLogin() error {
	if a.client.Token == "" {
		return errors.New("not logged in, run: dashboard login")
	}
	return nil
}

func (a *app) readToken() (string, error) {
	data, err := os.ReadFile(a.tokenPath)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (a *app) writeToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(a.tokenPath), 0o700); err != nil {
		return err
	}
	return os.WriteFile(a.tokenPath, []byte(token+"\n"), 0o600)
}

func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".codingtracker"
	}
	return filepath.Join(dir, "codingtracker")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/EternisAI/signup-portal/internal/form"
	"github.com/EternisAI/signup-portal/internal/registration"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var errRegistrationFailed = errors.New("registration failed")

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

var statusColors = map[string]color.Color{
	registration.StatusSuccess.Color: color.Green,
	registration.StatusFailure.Color: color.Red,
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		code := 1
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.Code
		}
		if !errors.Is(err, errRegistrationFailed) && !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(code)
	}
}

func run(outW, errW io.Writer, args []string) error {
	_ = godotenv.Load()
	v := viper.New()
	v.SetDefault("registration.endpoint_url", registration.DefaultEndpointURL)
	_ = v.BindEnv("registration.endpoint_url", "REGISTRATION_ENDPOINT_URL")
	_ = v.BindEnv("log.level", "LOG_LEVEL")

	fs := flag.NewFlagSet("signup", flag.ContinueOnError)
	fs.SetOutput(errW)
	username := fs.String("username", "", "username to register")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	endpoint := fs.String("endpoint", "", "registration endpoint URL (overrides REGISTRATION_ENDPOINT_URL)")
	strict := fs.Bool("strict", false, "fail instead of sending empty values for fields that were not given")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return &ExitError{Code: 2, Err: err}
	}

	endpointURL := v.GetString("registration.endpoint_url")
	if *endpoint != "" {
		endpointURL = *endpoint
	}

	logger := slog.New(slog.NewTextHandler(errW, &slog.HandlerOptions{Level: logLevel(v.GetString("log.level"))}))
	slog.SetDefault(logger)

	given := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { given[f.Name] = true })

	doc := form.NewDocument()
	doc.Add(registration.FormID)
	doc.Add(registration.MessageID)
	fields := []struct {
		id    string
		value string
	}{
		{registration.UsernameID, *username},
		{registration.EmailID, *email},
		{registration.PasswordID, *password},
	}
	for _, f := range fields {
		if *strict && !given[f.id] {
			continue
		}
		doc.Input(f.id, f.value)
	}

	client := registration.NewClient(endpointURL, nil)
	handler, err := registration.Bind(doc, client, logger)
	if err != nil {
		return &ExitError{Code: 2, Err: fmt.Errorf("form setup: %w", err)}
	}

	formEl, err := doc.Lookup(registration.FormID)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}
	formEl.Submit()
	handler.Wait()

	message, err := doc.Lookup(registration.MessageID)
	if err != nil {
		return &ExitError{Code: 2, Err: err}
	}
	render(outW, message)

	if message.Color() != registration.StatusSuccess.Color {
		return &ExitError{Code: 1, Err: errRegistrationFailed}
	}
	return nil
}

func render(w io.Writer, message *form.Element) {
	c, ok := statusColors[message.Color()]
	if !ok {
		fmt.Fprintln(w, message.Text())
		return
	}
	fmt.Fprintln(w, c.Sprint(message.Text()))
}

func logLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

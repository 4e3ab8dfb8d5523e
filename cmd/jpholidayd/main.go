package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	logger "log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/ardanlabs/conf"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/rabitt1ove/jpholiday"
	"github.com/rabitt1ove/jpholiday/grid"
	"github.com/rabitt1ove/jpholiday/internal/httpapi"
)

var build = "develop"

func main() {
	log := logger.New(os.Stdout, "JPHOLIDAYD : ", logger.LstdFlags|logger.Lmicroseconds|logger.Lshortfile)
	if err := run(log); err != nil {
		log.Printf("main: error: %v", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	// A .env next to the binary is optional.
	_ = godotenv.Load()

	var cfg struct {
		conf.Version
		Args conf.Args
		Web  struct {
			Host            string        `conf:"default:0.0.0.0:8080"`
			ReadTimeout     time.Duration `conf:"default:15s"`
			WriteTimeout    time.Duration `conf:"default:15s"`
			IdleTimeout     time.Duration `conf:"default:60s"`
			ShutdownTimeout time.Duration `conf:"default:5s"`
		}
		Holidays struct {
			Lang     string `conf:"default:ja"`
			Location string `conf:"default:Asia/Tokyo"`
			Custom   string `conf:"help:comma separated DATE=NAME custom holidays"`
		}
		AuthFile string `conf:"default:auth.secret"`
	}
	cfg.Version.SVN = build
	cfg.Version.Desc = "Japanese national holiday API"
	const prefix = "JPHOLIDAY"
	if err := conf.Parse(os.Args[1:], prefix, &cfg); err != nil {
		switch err {
		case conf.ErrHelpWanted:
			usage, err := conf.Usage(prefix, &cfg)
			if err != nil {
				return fmt.Errorf("generating config usage: %w", err)
			}
			fmt.Println(usage)
			return nil
		case conf.ErrVersionWanted:
			version, err := conf.VersionString(prefix, &cfg)
			if err != nil {
				return fmt.Errorf("generating config version: %w", err)
			}
			fmt.Println(version)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Args.Num(0) == "hash-password" {
		return hashPassword(cfg.Args.Num(1))
	}

	// =========================================================================
	// App Starting

	log.Printf("main : Started : Application initializing : version %s", build)
	defer log.Println("main: Completed")

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Printf("main: Config :\n%v\n", out)

	cal, err := newCalendar(cfg.Holidays.Location, cfg.Holidays.Custom)
	if err != nil {
		return err
	}

	auth, err := httpapi.LoadAuth(cfg.AuthFile)
	if err != nil {
		return err
	}
	if auth == nil {
		log.Printf("main: WARNING: no auth file at %s, entry changes are unprotected", cfg.AuthFile)
	} else {
		log.Printf("main: Basic Auth enabled for entry changes (user: %s)", auth.User)
	}

	// =========================================================================
	// Start API Service

	api := httpapi.New(log, cal, grid.NewBook(nil), httpapi.Config{Lang: cfg.Holidays.Lang, Auth: auth})
	srv := httpapi.NewHTTPServer(cfg.Web.Host, api.Router(), cfg.Web.ReadTimeout, cfg.Web.WriteTimeout, cfg.Web.IdleTimeout)

	serverErrors := make(chan error, 1)
	go func() {
		log.Printf("main: API listening on %s", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	// Make a channel to listen for an interrupt or terminate signal from the OS.
	// Use a buffered channel because the signal package requires it.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Printf("main: %v : Start shutdown", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}

// newCalendar builds the served calendar from the location name and the
// "2024-06-14=創立記念日,..." custom holiday list.
func newCalendar(location, custom string) (*jpholiday.Calendar, error) {
	loc, err := time.LoadLocation(location)
	if err != nil {
		return nil, fmt.Errorf("loading location %q: %w", location, err)
	}
	cal := jpholiday.New(jpholiday.WithLocation(loc))

	for _, item := range strings.Split(custom, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		dateStr, name, ok := strings.Cut(item, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid custom holiday %q: expected DATE=NAME", item)
		}
		d, err := jpholiday.ParseDate(dateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid custom holiday %q: %w", item, err)
		}
		cal.AddCustomHoliday(time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, loc), name)
	}
	return cal, nil
}

// hashPassword prints a "user:hash" line for the auth file. The password is
// read without echo from a terminal, or as one line from piped stdin.
func hashPassword(user string) error {
	if user == "" {
		return errors.New("usage: jpholidayd hash-password USER")
	}

	var password string
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Password: ")
		pw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		password = string(pw)
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("reading password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return errors.New("password cannot be empty")
	}

	hash, err := httpapi.HashPassword(password)
	if err != nil {
		return err
	}
	fmt.Printf("%s:%s\n", user, hash)
	return nil
}

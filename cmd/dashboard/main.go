// cmd/dashboard is the admin client: it renders the dashboard and issues
// record mutations against the record store API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/unclebandit/influencer-admin/internal/config"
	"github.com/unclebandit/influencer-admin/internal/dashboard"
	"github.com/unclebandit/influencer-admin/internal/gateway"
	"github.com/unclebandit/influencer-admin/internal/logger"
	"github.com/unclebandit/influencer-admin/internal/model"
	"github.com/unclebandit/influencer-admin/internal/notify"
	"github.com/unclebandit/influencer-admin/internal/recordstore"
	"github.com/unclebandit/influencer-admin/internal/render"
	"github.com/unclebandit/influencer-admin/internal/snapshot"
)

const usage = `usage: dashboard [-api URL] [-timeout D] <command> [args]

commands:
  show [-section NAME]...          render the dashboard (all sections by default)
  create <entity> field=value...   create a record
  update <entity> <id> field=value...
                                   change fields; the rest keep their values
  delete <entity> <id>             delete a record
  reset                            restore the sample dataset
  activity [-limit N]              list recent changes
`

var errUsage = errors.New("invalid usage")

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	zl, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg.Client, os.Args[1:], os.Stdout, os.Stderr, zl)
	stop()
	_ = zl.Sync()
	os.Exit(code)
}

type app struct {
	client   *recordstore.Client
	cache    *snapshot.Cache
	gateway  *gateway.Gateway
	renderer *render.Renderer
	notifier notify.Notifier
	out      io.Writer
	now      func() time.Time
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, cfg config.ClientConfig, args []string, stdout, stderr io.Writer, zl *zap.Logger) int {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	apiURL := fs.String("api", cfg.APIBaseURL, "record store base URL")
	timeout := fs.Duration("timeout", cfg.Timeout, "per-request timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	notifier := &notify.Writer{Out: stderr}
	client := recordstore.New(*apiURL, *timeout, nil)
	cache := snapshot.New(client, *timeout, notifier, zl)
	a := &app{
		client:   client,
		cache:    cache,
		gateway:  gateway.New(client, cache, notifier, zl),
		renderer: render.New(),
		notifier: notifier,
		out:      stdout,
		now:      time.Now,
	}

	if err := a.dispatch(ctx, fs.Arg(0), fs.Args()[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "%v\n\n%s", err, usage)
			return 2
		}
		zl.Debug("Command failed", zap.String("command", fs.Arg(0)), zap.Error(err))
		return 1
	}
	return 0
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "show":
		return a.show(ctx, args)
	case "create":
		return a.create(ctx, args)
	case "update":
		return a.update(ctx, args)
	case "delete":
		return a.delete(ctx, args)
	case "reset":
		_, err := a.gateway.Reset(ctx)
		return err
	case "activity":
		return a.activity(ctx, args)
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

type sectionList []render.Section

func (s *sectionList) String() string { return fmt.Sprint(*s) }

func (s *sectionList) Set(v string) error {
	sec, err := render.ParseSection(v)
	if err != nil {
		return err
	}
	*s = append(*s, sec)
	return nil
}

func (a *app) show(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var sections sectionList
	fs.Var(&sections, "section", "section to render (repeatable)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	// A failed refresh leaves the empty snapshot, which still renders.
	snap, err := a.cache.Refresh(ctx)
	if rerr := a.renderer.Render(a.out, dashboard.Build(snap, a.now()), sections...); rerr != nil && err == nil {
		err = rerr
	}
	return err
}

func (a *app) create(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: create needs an entity", errUsage)
	}
	entity, form, err := parseEntityForm(args[0], args[1:])
	if err != nil {
		return err
	}
	id, _, err := a.gateway.Create(ctx, entity, form)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s %d\n", entity.IDField(), id)
	return nil
}

func (a *app) update(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: update needs an entity and an id", errUsage)
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}
	entity, changes, err := parseEntityForm(args[0], args[2:])
	if err != nil {
		return err
	}

	// Unchanged fields are resent with their current values.
	snap, err := a.cache.Refresh(ctx)
	if err != nil {
		return err
	}
	form, err := gateway.RecordForm(snap, entity, id)
	if err != nil {
		a.notifier.Notify(notify.Notification{Level: notify.Error, Title: "Error", Message: err.Error()})
		return err
	}
	for k, v := range changes {
		form[k] = v
	}
	_, err = a.gateway.Update(ctx, entity, id, form)
	return err
}

func (a *app) delete(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: delete needs an entity and an id", errUsage)
	}
	entity, err := model.ParseEntity(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	id, err := parseID(args[1])
	if err != nil {
		return err
	}
	_, err = a.gateway.Delete(ctx, entity, id)
	return err
}

func (a *app) activity(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("activity", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	limit := fs.Int("limit", 20, "number of entries")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	items, err := a.client.Activity(ctx, *limit)
	if err != nil {
		a.notifier.Notify(notify.Notification{Level: notify.Error, Title: "Error", Message: err.Error()})
		return err
	}
	return a.renderer.Activity(a.out, items)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid id %q", errUsage, s)
	}
	return id, nil
}

// parseEntityForm reads field=value pairs into a form for entity.
func parseEntityForm(name string, pairs []string) (model.Entity, gateway.Form, error) {
	entity, err := model.ParseEntity(name)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	form := gateway.Form{}
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return "", nil, fmt.Errorf("%w: expected field=value, got %q", errUsage, p)
		}
		form[k] = v
	}
	return entity, form, nil
}

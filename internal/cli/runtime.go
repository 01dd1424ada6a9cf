package cli

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/ArturMukhamedjanov/is-lab1-front/internal/apiclient"
	"github.com/ArturMukhamedjanov/is-lab1-front/internal/listmanager"
	"github.com/ArturMukhamedjanov/is-lab1-front/internal/logging"
	"github.com/ArturMukhamedjanov/is-lab1-front/internal/paths"
	"github.com/ArturMukhamedjanov/is-lab1-front/internal/schema"
	"github.com/ArturMukhamedjanov/is-lab1-front/internal/session"
	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/sqlite"
	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

// runtime is everything a command needs to talk to the server: config,
// logger, the attached local storage, the session and the API client.
// The caller must call close.
type runtime struct {
	cfg     types.Config
	dataDir string
	logger  *slog.Logger
	store   types.Store
	session *session.Context
	client  *apiclient.Client
}

// open loads configuration, attaches local storage and restores the
// session.
func (a *app) open() (*runtime, error) {
	cfg, _, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, sysErr("log level: %w", err)
	}
	if a.flags.verbose {
		level = slog.LevelDebug
	}
	logger, err := logging.New(a.stderr, level, cfg.LogFormat)
	if err != nil {
		return nil, sysErr("logger: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, cfg.DataDir)
	if err != nil {
		return nil, sysErr("resolve data dir: %w", err)
	}
	store := sqlite.NewBackend()
	if err := store.Attach(dataDir); err != nil {
		return nil, sysErr("attach local storage: %w", err)
	}

	sess, err := session.Load(store, logger)
	if err != nil {
		_ = store.Detach()
		return nil, sysErr("%w", err)
	}
	if id := sess.ID(); id != "" {
		logger = logger.With(logging.SessionID(id))
	}

	client, err := apiclient.New(cfg.ServerURL,
		apiclient.WithTokenSource(sess),
		apiclient.WithLogger(logger),
		apiclient.WithTimeout(cfg.RequestTimeout),
	)
	if err != nil {
		_ = store.Detach()
		return nil, sysErr("%w", err)
	}

	return &runtime{cfg: cfg, dataDir: dataDir, logger: logger, store: store, session: sess, client: client}, nil
}

func (rt *runtime) close() error {
	if err := rt.store.Detach(); err != nil {
		return sysErr("detach local storage: %w", err)
	}
	return nil
}

// withRuntime runs fn with an open runtime and closes it afterwards.
func (a *app) withRuntime(fn func(rt *runtime) error) error {
	rt, err := a.open()
	if err != nil {
		return err
	}
	err = fn(rt)
	if cerr := rt.close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// manager builds the list manager for entity. Its collection verifies the
// session with the server before the first remote call, so input that
// fails local validation never reaches the network.
func (a *app) manager(rt *runtime, entity string) (*listmanager.Manager, error) {
	s, err := schema.For(entity)
	if err != nil {
		return nil, err
	}
	if err := rt.session.Require(); err != nil {
		return nil, err
	}
	coll := &verifiedCollection{
		Collection: rt.client.Collection(s),
		verify: func(ctx context.Context) error {
			return rt.session.Verify(ctx, rt.client)
		},
	}
	return listmanager.New(s, coll,
		listmanager.WithPageSize(rt.cfg.PageSize),
		listmanager.WithReporter(a.reporter),
		listmanager.WithLogger(rt.logger),
	), nil
}

// verifiedCollection checks the session once before its first call.
type verifiedCollection struct {
	types.Collection
	verify func(ctx context.Context) error

	once sync.Once
	err  error
}

func (v *verifiedCollection) check(ctx context.Context) error {
	v.once.Do(func() { v.err = v.verify(ctx) })
	return v.err
}

func (v *verifiedCollection) List(ctx context.Context) ([]types.Record, error) {
	if err := v.check(ctx); err != nil {
		return nil, err
	}
	return v.Collection.List(ctx)
}

func (v *verifiedCollection) Create(ctx context.Context, rec types.Record) error {
	if err := v.check(ctx); err != nil {
		return err
	}
	return v.Collection.Create(ctx, rec)
}

func (v *verifiedCollection) Update(ctx context.Context, id int64, rec types.Record) error {
	if err := v.check(ctx); err != nil {
		return err
	}
	return v.Collection.Update(ctx, id, rec)
}

func (v *verifiedCollection) Delete(ctx context.Context, id int64) error {
	if err := v.check(ctx); err != nil {
		return err
	}
	return v.Collection.Delete(ctx, id)
}

// sessionExpired reports whether err means the user must log in again.
func sessionExpired(err error) bool {
	return errors.Is(err, types.ErrSessionExpired) || errors.Is(err, types.ErrNotAuthenticated)
}

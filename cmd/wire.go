package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/medportal-cli/internal/adapters/mirror/chain"
	filemirror "github.com/bnema/medportal-cli/internal/adapters/mirror/file"
	redismirror "github.com/bnema/medportal-cli/internal/adapters/mirror/redis"
	sqlitemirror "github.com/bnema/medportal-cli/internal/adapters/mirror/sqlite"
	tomlmirror "github.com/bnema/medportal-cli/internal/adapters/mirror/toml"
	"github.com/bnema/medportal-cli/internal/adapters/portalapi"
	portalrender "github.com/bnema/medportal-cli/internal/adapters/render/portal"
	catalogreply "github.com/bnema/medportal-cli/internal/adapters/reply/catalog"
	llmreply "github.com/bnema/medportal-cli/internal/adapters/reply/llm"
	"github.com/bnema/medportal-cli/internal/application"
	"github.com/bnema/medportal-cli/internal/config"
	"github.com/bnema/medportal-cli/internal/domain"
	"github.com/bnema/medportal-cli/internal/ports"
	"github.com/bnema/medportal-cli/pkg/logging"
)

type app struct {
	config              config.Config
	logger              *logging.Logger
	state               *application.State
	portal              *application.PortalService
	conversation        *application.ConversationService
	offlineConversation *application.ConversationService
	renderers           renderers
	now                 func() time.Time
	closers             []io.Closer
}

type renderers struct {
	doctors      func(application.DoctorList) (string, error)
	appointments func(application.AppointmentList, domain.User) (string, error)
	dashboard    func(application.Dashboard, portalrender.RenderOptions) (string, error)
	transcript   func(string, []domain.ConversationTurn, portalrender.RenderOptions) (string, error)
}

func wireApp(ctx context.Context) (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := config.Load(viper.New(), homeDir)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	logger := logging.NewWithOptions(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	clock := ports.SystemClock{}

	store, closers, err := openMirrorStore(ctx, cfg.Mirror, logger)
	if err != nil {
		return nil, fmt.Errorf("wire mirror store: %w", err)
	}

	state := application.NewState(store, application.WithStateLogger(logger))
	if err := state.Restore(ctx); err != nil {
		logger.Warn("mirror restore incomplete", "backend", cfg.Mirror.Backend, "error", err)
	}

	client := portalapi.NewClient(cfg.API.BaseURL, http.DefaultClient, cfg.API.Timeout, logger)
	offline := catalogreply.NewSource(domain.DefaultCatalog(), clock, logger)

	replies, err := replySource(cfg.Assistant, client, offline, clock, logger)
	if err != nil {
		_ = closeAll(closers)
		return nil, fmt.Errorf("wire reply source: %w", err)
	}

	return &app{
		config:              cfg,
		logger:              logger,
		state:               state,
		portal:              application.NewPortalService(client, state, clock, logger),
		conversation:        application.NewConversationService(replies, client, state, clock, logger),
		offlineConversation: application.NewConversationService(offline, client, state, clock, logger),
		renderers: renderers{
			doctors:      portalrender.RenderDoctors,
			appointments: portalrender.RenderAppointments,
			dashboard:    portalrender.RenderDashboard,
			transcript:   portalrender.RenderTranscript,
		},
		now:     time.Now,
		closers: closers,
	}, nil
}

func (a *app) close() error {
	if a == nil {
		return nil
	}
	return closeAll(a.closers)
}

func closeAll(closers []io.Closer) error {
	var errs []error
	for _, closer := range closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// openMirrorStore builds the configured backend, chained in front of the
// fallback backend when one is set.
func openMirrorStore(ctx context.Context, cfg config.MirrorConfig, logger *logging.Logger) (ports.MirrorStore, []io.Closer, error) {
	var closers []io.Closer

	hasFallback := cfg.Fallback != "" && cfg.Fallback != cfg.Backend

	primary, closer, err := openMirrorBackend(ctx, cfg.Backend, cfg)
	if err != nil {
		if !hasFallback || ctx.Err() != nil {
			return nil, nil, err
		}
		logger.Warn("primary mirror backend unavailable, using fallback only", "primary", cfg.Backend, "fallback", cfg.Fallback, "error", err)
		fallback, fallbackCloser, fallbackErr := openMirrorBackend(ctx, cfg.Fallback, cfg)
		if fallbackErr != nil {
			return nil, nil, fmt.Errorf("primary backend %s failed: %w; fallback backend %s failed: %w", cfg.Backend, err, cfg.Fallback, fallbackErr)
		}
		if fallbackCloser != nil {
			closers = append(closers, fallbackCloser)
		}
		return fallback, closers, nil
	}
	if closer != nil {
		closers = append(closers, closer)
	}

	if !hasFallback {
		return primary, closers, nil
	}

	fallback, closer, err := openMirrorBackend(ctx, cfg.Fallback, cfg)
	if err != nil {
		_ = closeAll(closers)
		return nil, nil, fmt.Errorf("fallback backend %s: %w", cfg.Fallback, err)
	}
	if closer != nil {
		closers = append(closers, closer)
	}

	logger.Debug("mirror chain configured", "primary", cfg.Backend, "fallback", cfg.Fallback)

	store, err := chain.NewStoreChecked(primary, fallback)
	if err != nil {
		_ = closeAll(closers)
		return nil, nil, err
	}
	return store, closers, nil
}

func openMirrorBackend(ctx context.Context, backend string, cfg config.MirrorConfig) (ports.MirrorStore, io.Closer, error) {
	switch backend {
	case config.BackendFile:
		return filemirror.NewStore(cfg.Path), nil, nil
	case config.BackendTOML:
		store, err := tomlmirror.NewStore(filepath.Join(cfg.Path, tomlmirror.MirrorFileName))
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	case config.BackendSQLite:
		store, err := sqlitemirror.NewStore(ctx, filepath.Join(cfg.Path, sqlitemirror.DatabaseFileName))
		if err != nil {
			return nil, nil, err
		}
		return store, store, nil
	case config.BackendRedis:
		client, err := redismirror.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return redismirror.NewStore(client, cfg.Namespace, cfg.Redis.TTL), client, nil
	default:
		return nil, nil, fmt.Errorf("unknown mirror backend %q", backend)
	}
}

func replySource(cfg config.AssistantConfig, remote ports.ReplySource, local ports.ReplySource, clock ports.Clock, logger *logging.Logger) (ports.ReplySource, error) {
	switch cfg.Source {
	case config.SourceRemote, "":
		return remote, nil
	case config.SourceLocal:
		return local, nil
	case config.SourceLLM:
		source, err := llmreply.NewSource(llmreply.Config{
			BaseURL: cfg.LLM.BaseURL,
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
		}, clock, logger)
		if err != nil {
			return nil, err
		}
		return source, nil
	default:
		return nil, fmt.Errorf("unknown assistant source %q", cfg.Source)
	}
}

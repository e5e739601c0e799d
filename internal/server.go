package internal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/defff666/cryptodivebot/internal/config"
	"github.com/defff666/cryptodivebot/internal/datastore/postgres"
	redisClient "github.com/defff666/cryptodivebot/internal/datastore/redis"
	"github.com/defff666/cryptodivebot/internal/notifier"
	profileRepo "github.com/defff666/cryptodivebot/internal/repository/profile"
	questionRepo "github.com/defff666/cryptodivebot/internal/repository/question"
	routesV1 "github.com/defff666/cryptodivebot/internal/routes/v1"
	adminUseCase "github.com/defff666/cryptodivebot/internal/usecase/admin"
	chatUseCase "github.com/defff666/cryptodivebot/internal/usecase/chat"
	matchUseCase "github.com/defff666/cryptodivebot/internal/usecase/match"
	profileUseCase "github.com/defff666/cryptodivebot/internal/usecase/profile"
	quizUseCase "github.com/defff666/cryptodivebot/internal/usecase/quiz"
	"github.com/defff666/cryptodivebot/pkg/path"
	"github.com/labstack/echo"
)

type Server struct {
	writer     io.Writer
	httpServer *http.Server
}

// Run wires the whole service and serves until ctx is cancelled.
// args[1] selects the environment prefix (dev, test); defaults to dev.
func Run(ctx context.Context, w io.Writer, args []string) error {
	env := "dev"
	if len(args) > 1 {
		env = args[1]
	}

	cfg, err := config.NewConfig(env)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	server, err := NewServer(ctx, w, cfg)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.StartServer()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func NewServer(ctx context.Context, w io.Writer, cfg *config.Config) (*Server, error) {
	e := echo.New()

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	database, err := postgres.InitializeDB(
		cfg.Get("POSTGRES_USER"),
		cfg.Get("POSTGRES_PASSWORD"),
		cfg.Get("POSTGRES_DB_NAME"),
		cfg.Get("POSTGRES_HOST"),
		cfg.Get("POSTGRES_PORT"),
	)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	rdb, err := redisClient.Initialize(cfg.Get("REDIS_HOST"), cfg.Get("REDIS_PORT"))
	if err != nil {
		return nil, fmt.Errorf("initialize redis: %w", err)
	}

	questionsPath, err := resolveQuestionsPath(cfg.Get("QUESTIONS_PATH"))
	if err != nil {
		return nil, err
	}
	questions, err := questionRepo.Load(questionsPath)
	if err != nil {
		return nil, fmt.Errorf("load question bank: %w", err)
	}

	profiles := profileRepo.New(database, rdb)
	notify := notifier.NewTelegram(cfg.Get("TELEGRAM_BOT_TOKEN"))

	quizCase, err := quizUseCase.New(
		profiles,
		questions,
		quizUseCase.NewRedisSessionStore(rdb),
		notify,
		cfg.GetInt("QUIZ_LENGTH", quizUseCase.DefaultRoundLength),
	)
	if err != nil {
		return nil, err
	}

	broadcastDelay := time.Duration(cfg.GetInt("BROADCAST_DELAY_MS", 500)) * time.Millisecond

	server := &Server{
		writer: w,
		httpServer: &http.Server{
			Addr:    ":" + cfg.Get("PORT"),
			Handler: e,
		},
	}

	e.GET("/healthz", server.handleHealthCheck)

	routesV1.InitV1Routes(e, routesV1.Deps{
		TokenSecret: []byte(cfg.Get("WEB_TOKEN_SECRET")),
		AdminIDs:    cfg.AdminIDs(),
		Redis:       rdb,
		Profiles:    profiles,
		ProfileCase: profileUseCase.New(profiles),
		MatchCase:   matchUseCase.New(profiles, notify),
		QuizCase:    quizCase,
		AdminCase:   adminUseCase.New(profiles, notify, broadcastDelay),
		ChatCase:    chatUseCase.New(profiles, notify),
	})

	return server, nil
}

// resolveQuestionsPath makes a relative QUESTIONS_PATH work no matter which
// directory the process starts from, the same way migrations are located.
func resolveQuestionsPath(p string) (string, error) {
	if filepath.IsAbs(p) {
		return p, nil
	}
	basePath, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root, err := path.FindRoot(basePath, "go.mod", false)
	if err != nil {
		return "", fmt.Errorf("locate question bank: %w", err)
	}
	return filepath.Join(root, p), nil
}

func (s *Server) StartServer() error {
	fmt.Fprintf(s.writer, "Server starting on %s\n", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

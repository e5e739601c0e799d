package routesV1

import (
	"time"

	"github.com/defff666/cryptodivebot/internal/middleware"
	profileRepo "github.com/defff666/cryptodivebot/internal/repository/profile"
	routesV1Admin "github.com/defff666/cryptodivebot/internal/routes/v1/admin"
	routesV1Chat "github.com/defff666/cryptodivebot/internal/routes/v1/chat"
	routesV1Match "github.com/defff666/cryptodivebot/internal/routes/v1/match"
	routesV1Profile "github.com/defff666/cryptodivebot/internal/routes/v1/profile"
	routesV1Quiz "github.com/defff666/cryptodivebot/internal/routes/v1/quiz"
	adminUseCase "github.com/defff666/cryptodivebot/internal/usecase/admin"
	chatUseCase "github.com/defff666/cryptodivebot/internal/usecase/chat"
	matchUseCase "github.com/defff666/cryptodivebot/internal/usecase/match"
	profileUseCase "github.com/defff666/cryptodivebot/internal/usecase/profile"
	quizUseCase "github.com/defff666/cryptodivebot/internal/usecase/quiz"
	"github.com/go-redis/redis"
	"github.com/labstack/echo"
)

const (
	throttleLimit  = 20
	throttleWindow = 10 * time.Second
)

type Deps struct {
	TokenSecret []byte
	AdminIDs    []int64
	Redis       *redis.Client
	Profiles    profileRepo.IProfileRepo

	ProfileCase profileUseCase.IProfileUseCase
	MatchCase   matchUseCase.IMatchUseCase
	QuizCase    quizUseCase.IQuizUseCase
	AdminCase   adminUseCase.IAdminUseCase
	ChatCase    chatUseCase.IChatUseCase
}

func InitV1Routes(e *echo.Echo, deps Deps) {
	v1 := e.Group("/v1",
		middleware.WebTokenMiddleware(deps.TokenSecret),
		middleware.ThrottleMiddleware(deps.Redis, throttleLimit, throttleWindow),
	)

	v1.POST("/profile", func(c echo.Context) error {
		return routesV1Profile.RegisterHandler(c, deps.ProfileCase)
	})
	v1.GET("/profile/me", func(c echo.Context) error {
		return routesV1Profile.MeHandler(c, deps.ProfileCase)
	})

	guarded := v1.Group("", middleware.BlockedGuard(deps.Profiles))
	guarded.GET("/match/next", func(c echo.Context) error {
		return routesV1Match.NextCandidateHandler(c, deps.MatchCase)
	})
	guarded.POST("/match/like/:id", func(c echo.Context) error {
		return routesV1Match.LikeHandler(c, deps.MatchCase)
	})
	guarded.POST("/quiz/start", func(c echo.Context) error {
		return routesV1Quiz.StartHandler(c, deps.QuizCase)
	})
	guarded.POST("/quiz/answer", func(c echo.Context) error {
		return routesV1Quiz.AnswerHandler(c, deps.QuizCase)
	})
	guarded.POST("/chat/:id", func(c echo.Context) error {
		return routesV1Chat.SendHandler(c, deps.ChatCase)
	})

	admin := v1.Group("/admin", middleware.AdminMiddleware(deps.AdminIDs))
	admin.GET("/stats", func(c echo.Context) error {
		return routesV1Admin.StatsHandler(c, deps.AdminCase)
	})
	admin.POST("/ban/:id", func(c echo.Context) error {
		return routesV1Admin.BanHandler(c, deps.ProfileCase)
	})
	admin.POST("/broadcast", func(c echo.Context) error {
		return routesV1Admin.BroadcastHandler(c, deps.AdminCase)
	})
}

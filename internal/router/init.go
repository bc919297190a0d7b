package router

import (
	"github.com/tranquilify/tranquilify-api/internal/application"
	"github.com/tranquilify/tranquilify-api/internal/container"
	pginfra "github.com/tranquilify/tranquilify-api/internal/infrastructure/postgres"
	handlers "github.com/tranquilify/tranquilify-api/internal/interface/http"
	"github.com/tranquilify/tranquilify-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers it. Call once during startup, after the container is
// populated.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()
	jwt := container.GetJWT()
	cookies := container.GetCookies()

	userRepo := pginfra.NewUserRepository(pool)
	habitRepo := pginfra.NewHabitRepository(pool)
	moodRepo := pginfra.NewMoodRepository(pool)
	stressRepo := pginfra.NewStressRepository(pool)
	journalRepo := pginfra.NewJournalRepository(pool)
	blogRepo := pginfra.NewBlogRepository(pool)

	userSvc := application.NewUserService(
		userRepo,
		jwt,
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetRedis(),
		logger,
		container.GetRabbitPub(),
		cfg.ResetPasswordURL,
		cfg.MailSendEnabled,
	)
	habitSvc := application.NewHabitService(habitRepo, logger)
	moodSvc := application.NewMoodService(moodRepo, logger)
	stressSvc := application.NewStressService(stressRepo, logger)
	journalSvc := application.NewJournalService(journalRepo, logger)
	blogSvc := application.NewBlogService(blogRepo, container.GetGCS(), cfg.GCSBucket, container.GetES(), cfg.ESBlogsIndex, logger)
	chatSvc := application.NewChatService(container.GetGenAI(), cfg.GenAIModel, container.GetRedis(), logger)
	reportSvc := application.NewReportService(moodRepo, stressRepo, logger)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger, cookies), jwt))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(userSvc, logger)))
	r.Add(modules.NewHabitModule(handlers.NewHabitHandler(habitSvc, logger), jwt))
	r.Add(modules.NewWellnessModule(handlers.NewWellnessHandler(moodSvc, stressSvc, journalSvc, logger), jwt))
	r.Add(modules.NewBlogModule(
		handlers.NewBlogHandler(blogSvc, logger),
		handlers.NewAdminHandler(cfg.AdminEmail, cfg.AdminPassword, jwt, cookies, logger),
		jwt,
	))
	r.Add(modules.NewAIModule(handlers.NewAIHandler(chatSvc, reportSvc, logger), jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

package v1

import (
	"log"

	"career-compass/internal/config"
	"career-compass/internal/database"
	"career-compass/internal/delivery/http/handler"
	"career-compass/internal/delivery/http/middleware"
	"career-compass/internal/pkg/jwt"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, cache usecase.EngineCache, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	users := repository.NewPostgresUserRepository(db)
	profiles := repository.NewPostgresProfileRepository(db)
	userSkills := repository.NewPostgresUserSkillRepository(db)
	experiences := repository.NewPostgresExperienceRepository(db)
	market := repository.NewPostgresMarketTrendRepository(db)
	transitions := repository.NewPostgresTransitionRepository(db)
	salaries := repository.NewPostgresRoleSalaryRepository(db)

	features := usecase.NewFeaturesUsecase(users, profiles, userSkills, experiences)
	similarity := usecase.NewSimilarityUsecase(features, users, cfg.Engine.PopulationCap, logger)
	recommendations := usecase.NewSkillRecommendationUsecase(features, similarity, market, cache, usecase.SkillRecommendationConfig{
		PeerCount: cfg.Engine.RecommendationPeers,
		CacheTTL:  cfg.Engine.RecommendationTTL,
	}, logger)
	gaps := usecase.NewSkillGapUsecase(features, market, cache, cfg.Engine.SkillGapTTL, logger)
	predictions := usecase.NewCareerPredictionUsecase(features, similarity, transitions, market, salaries, cache, usecase.CareerPredictionConfig{
		PeerCount: cfg.Engine.PredictionPeers,
		CacheTTL:  cfg.Engine.PredictionTTL,
	}, logger)

	authUC := usecase.NewAuthUsecase(users, jwtSvc)
	profileUC := usecase.NewProfileUsecase(profiles, cache, logger)

	authHandler := handler.NewAuthHandler(authUC)
	profileHandler := handler.NewProfileHandler(profileUC)
	careerHandler := handler.NewCareerHandler(recommendations, gaps, predictions, similarity)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	protected := r.Group("", authMw.Middleware())
	profileHandler.RegisterRoutes(protected)
	careerHandler.RegisterRoutes(protected)
}

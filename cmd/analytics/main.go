package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"career-compass/internal/app"
	"career-compass/internal/config"
	"career-compass/internal/pipeline"
	"career-compass/internal/repository"
	"career-compass/internal/usecase"
)

func main() {
	workers := flag.Int("workers", 4, "concurrent refresh workers")
	topN := flag.Int("top", 10, "recommendations per user")
	timeout := flag.Duration("timeout", 15*time.Minute, "overall run timeout")
	flag.Parse()

	_ = godotenv.Load()

	logger := log.Default()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	users := repository.NewPostgresUserRepository(c.DB)
	profiles := repository.NewPostgresProfileRepository(c.DB)
	userSkills := repository.NewPostgresUserSkillRepository(c.DB)
	experiences := repository.NewPostgresExperienceRepository(c.DB)
	market := repository.NewPostgresMarketTrendRepository(c.DB)

	features := usecase.NewFeaturesUsecase(users, profiles, userSkills, experiences)
	similarity := usecase.NewSimilarityUsecase(features, users, cfg.Engine.PopulationCap, logger)
	recommendations := usecase.NewSkillRecommendationUsecase(features, similarity, market, c.Cache, usecase.SkillRecommendationConfig{
		PeerCount: cfg.Engine.RecommendationPeers,
		CacheTTL:  cfg.Engine.RecommendationTTL,
	}, logger)
	gaps := usecase.NewSkillGapUsecase(features, market, c.Cache, cfg.Engine.SkillGapTTL, logger)

	refresh := pipeline.NewAnalyticsRefresh(users, recommendations, gaps, logger, cfg.Engine.PopulationCap, *workers, *topN)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := refresh.Run(ctx); err != nil {
		logger.Fatalf("analytics refresh failed: %v", err)
	}
}

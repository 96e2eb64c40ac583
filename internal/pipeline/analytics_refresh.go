package pipeline

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"career-compass/internal/repository"
	"career-compass/internal/usecase"
)

// AnalyticsRefresh walks the user population and recomputes recommendations
// and skill gaps through the same usecases the API serves, so the cache is
// warm before peak traffic.
type AnalyticsRefresh struct {
	users           repository.UserRepository
	recommendations usecase.SkillRecommendationUsecase
	gaps            usecase.SkillGapUsecase
	log             *log.Logger

	populationCap int
	workers       int
	topN          int
}

func NewAnalyticsRefresh(
	users repository.UserRepository,
	recommendations usecase.SkillRecommendationUsecase,
	gaps usecase.SkillGapUsecase,
	logger *log.Logger,
	populationCap, workers, topN int,
) *AnalyticsRefresh {
	if populationCap <= 0 {
		populationCap = 200
	}
	if workers <= 0 {
		workers = 4
	}
	if topN <= 0 {
		topN = 10
	}
	return &AnalyticsRefresh{
		users:           users,
		recommendations: recommendations,
		gaps:            gaps,
		log:             logger,
		populationCap:   populationCap,
		workers:         workers,
		topN:            topN,
	}
}

func (p *AnalyticsRefresh) Run(ctx context.Context) error {
	start := time.Now()
	p.log.Printf("pipeline=analytics_refresh status=started")
	defer func() {
		p.log.Printf("pipeline=analytics_refresh status=finished duration=%s", time.Since(start))
	}()

	userIDs, err := p.users.ListUserIDs(ctx, p.populationCap)
	if err != nil {
		p.log.Printf("pipeline=analytics_refresh step=list_users status=error err=%v", err)
		return err
	}
	p.log.Printf("pipeline=analytics_refresh status=info users=%d workers=%d", len(userIDs), p.workers)
	if len(userIDs) == 0 {
		return nil
	}

	pool := NewWorkerPool(p.workers, p.workers*2)
	results := pool.Run(ctx)

	go func() {
		defer pool.Close()
		for _, id := range userIDs {
			uid := id
			select {
			case <-ctx.Done():
				return
			default:
			}
			pool.Submit(func(ctx context.Context) error {
				return p.refreshUser(ctx, uid)
			})
		}
	}()

	var total, failed int
	for res := range results {
		total++
		if res.Err != nil {
			failed++
		}
	}
	p.log.Printf("pipeline=analytics_refresh summary total=%d failed=%d", total, failed)
	return ctx.Err()
}

func (p *AnalyticsRefresh) refreshUser(ctx context.Context, uid uuid.UUID) error {
	recs, err := p.recommendations.RecommendSkills(ctx, uid, p.topN)
	if err != nil {
		p.log.Printf("pipeline=analytics_refresh step=recommendations status=error user_id=%s err=%v", uid, err)
		return err
	}
	p.log.Printf("pipeline=analytics_refresh step=recommendations status=ok user_id=%s recommended=%d", uid, len(recs))

	gaps, err := p.gaps.CalculateSkillGaps(ctx, uid, "")
	if err != nil {
		p.log.Printf("pipeline=analytics_refresh step=skill_gaps status=error user_id=%s err=%v", uid, err)
		return err
	}
	p.log.Printf("pipeline=analytics_refresh step=skill_gaps status=ok user_id=%s gaps=%d", uid, len(gaps))
	return nil
}

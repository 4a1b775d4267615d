// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"lapmatch/internal/domain/entity"
	domainerrors "lapmatch/internal/domain/errors"
	"lapmatch/internal/domain/query"
	"lapmatch/internal/domain/repository"
	"lapmatch/internal/domain/scoring"
	"lapmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Engine limits. The candidate pool is capped before scoring; the final
// ranked list is capped after.
const (
	personalizedCandidateLimit = 20
	personalizedTopN           = 8
	collaborativeUserLimit     = 5
	collaborativeItemLimit     = 10
	similarLimit               = 8

	// Importance at or above this value turns a preference into an
	// eligibility predicate / sort dimension instead of a mere ranking
	// signal.
	hardPreferenceThreshold = 7
)

// recommendationService implements the RecommendationUsecase interface.
type recommendationService struct {
	laptopRepo     repository.LaptopRepository
	preferenceRepo repository.PreferenceRepository
	userRepo       repository.UserRepository
	logger         *slog.Logger
}

// RecommendationServiceParams holds dependencies for the recommendation service, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	LaptopRepo     repository.LaptopRepository
	PreferenceRepo repository.PreferenceRepository
	UserRepo       repository.UserRepository
	Logger         *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		laptopRepo:     params.LaptopRepo,
		preferenceRepo: params.PreferenceRepo,
		userRepo:       params.UserRepo,
		logger:         params.Logger,
	}
}

// GetPersonalized loads the caller's profile, queries the catalog with the
// profile's hard constraints, drops already-viewed items and ranks the rest
// by match score.
func (srv *recommendationService) GetPersonalized(ctx context.Context, userID uuid.UUID) (*usecase.PersonalizedOutput, error) {
	profile, err := srv.preferenceRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load preference profile")
	}

	candidates, err := srv.laptopRepo.FindMany(ctx, buildPersonalizedQuery(profile))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query candidate laptops")
	}

	// Already-seen items are excluded outright, not merely deprioritized.
	unseen := make([]*entity.Laptop, 0, len(candidates))
	for _, laptop := range candidates {
		if !profile.HasViewed(laptop.ID) {
			unseen = append(unseen, laptop)
		}
	}

	results := make([]*entity.MatchResult, 0, len(unseen))
	for _, laptop := range unseen {
		score, reasons := scoring.Score(laptop, profile)
		results = append(results, &entity.MatchResult{
			Laptop:  laptop,
			Score:   score,
			Reasons: reasons,
		})
	}

	// Stable sort keeps catalog-query order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > personalizedTopN {
		results = results[:personalizedTopN]
	}

	srv.logger.Debug("Personalized recommendations computed",
		slog.Any("userID", userID),
		slog.Int("candidates", len(candidates)),
		slog.Int("returned", len(results)),
	)

	return &usecase.PersonalizedOutput{
		Recommendations: results,
		Profile:         profile,
	}, nil
}

// buildPersonalizedQuery derives the eligibility predicates and the
// composite sort from the profile. RAM and processor never filter here;
// they only influence ranking.
func buildPersonalizedQuery(profile *entity.PreferenceProfile) query.Query {
	q := query.Query{Limit: personalizedCandidateLimit}

	q.Must = append(q.Must, query.Range(query.FieldPrice,
		query.Float(profile.Budget.Min), query.Float(profile.Budget.Max)))

	if profile.Portability.Importance >= hardPreferenceThreshold {
		q.Must = append(q.Must, query.Range(query.FieldWeight, nil, query.Float(profile.Portability.MaxWeight)))
	}

	if profile.Display.Touchscreen {
		q.Must = append(q.Must, query.Equals(query.FieldTouchscreen, true))
	}

	if profile.Performance.Importance >= hardPreferenceThreshold {
		q.Sorts = append(q.Sorts,
			query.Sort{Field: query.FieldRAM, Direction: query.Descending},
			query.Sort{Field: query.FieldProcessor, Direction: query.Descending},
		)
	}

	if profile.Portability.Importance >= hardPreferenceThreshold {
		q.Sorts = append(q.Sorts, query.Sort{Field: query.FieldWeight, Direction: query.Ascending})
	}

	if profile.Battery.Importance >= hardPreferenceThreshold {
		q.Sorts = append(q.Sorts, query.Sort{Field: query.FieldBatteryLife, Direction: query.Descending})
	}

	return q
}

// GetCollaborative unions the interaction logs of up to five users sharing
// the caller's usage type into an unscored candidate pool. An empty
// usageType falls back to the caller's own stored usage type.
func (srv *recommendationService) GetCollaborative(ctx context.Context, userID uuid.UUID, usageType string) (*usecase.CollaborativeOutput, error) {
	if usageType == "" {
		user, err := srv.userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return nil, domainerrors.ErrUserNotFound
			}

			return nil, errors.Wrap(err, "failed to load user")
		}
		usageType = user.UsageType
	}

	profiles, err := srv.preferenceRepo.FindProfilesByUsageType(ctx, usageType, userID, collaborativeUserLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by usage type")
	}

	seen := make(map[uuid.UUID]struct{})
	var laptopIDs []uuid.UUID
	for _, profile := range profiles {
		for _, viewed := range profile.ViewedLaptops {
			if _, ok := seen[viewed.LaptopID]; !ok {
				seen[viewed.LaptopID] = struct{}{}
				laptopIDs = append(laptopIDs, viewed.LaptopID)
			}
		}
		for _, saved := range profile.SavedLaptops {
			if _, ok := seen[saved.LaptopID]; !ok {
				seen[saved.LaptopID] = struct{}{}
				laptopIDs = append(laptopIDs, saved.LaptopID)
			}
		}
	}

	laptops := []*entity.Laptop{}
	if len(laptopIDs) > 0 {
		laptops, err = srv.laptopRepo.FindByIDs(ctx, laptopIDs, collaborativeItemLimit)
		if err != nil {
			return nil, errors.Wrap(err, "failed to fetch collaborative laptops")
		}
	}

	return &usecase.CollaborativeOutput{
		Recommendations: laptops,
		BasedOn:         usecase.CollaborativeBasis,
	}, nil
}

// GetSimilar finds laptops close to the reference either by internals
// (same RAM, same processor family, near price) or by segment (same
// category and brand, near price). The two notions are ORed so neither
// requires a unified distance metric.
func (srv *recommendationService) GetSimilar(ctx context.Context, laptopID uuid.UUID) (*usecase.SimilarOutput, error) {
	reference, err := srv.laptopRepo.FindByID(ctx, laptopID)
	if err != nil {
		if errors.Is(err, repository.ErrLaptopNotFound) {
			return nil, domainerrors.ErrLaptopNotFound
		}

		return nil, errors.Wrap(err, "failed to load reference laptop")
	}

	similar, err := srv.laptopRepo.FindMany(ctx, buildSimilarQuery(reference))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query similar laptops")
	}

	return &usecase.SimilarOutput{
		Reference: reference,
		Similar:   similar,
	}, nil
}

func buildSimilarQuery(reference *entity.Laptop) query.Query {
	price := reference.Price.Current

	sameInternals := []query.Predicate{
		query.Equals(query.FieldRAM, reference.Specifications.RAM),
		query.ContainsAny(query.FieldProcessor, []string{processorFamily(reference.Specifications.Processor)}),
		query.Range(query.FieldPrice, query.Float(price*0.7), query.Float(price*1.3)),
	}

	sameSegment := []query.Predicate{
		query.Equals(query.FieldCategory, string(reference.Category)),
		query.Equals(query.FieldBrand, string(reference.Brand)),
		query.Range(query.FieldPrice, query.Float(price*0.8), query.Float(price*1.2)),
	}

	return query.Query{
		Any:        [][]query.Predicate{sameInternals, sameSegment},
		ExcludeIDs: []uuid.UUID{reference.ID},
		Limit:      similarLimit,
	}
}

// processorFamily is the first whitespace-delimited token of the processor
// label, matched case-insensitively ("Intel Core i7" -> "intel").
func processorFamily(processor string) string {
	fields := strings.Fields(processor)
	if len(fields) == 0 {
		return ""
	}

	return strings.ToLower(fields[0])
}

// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"lapmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// CollaborativeBasis is the fixed provenance label attached to
// collaborative recommendations.
const CollaborativeBasis = "users with similar preferences"

// PersonalizedOutput is the result of a personalized recommendation request.
type PersonalizedOutput struct {
	Recommendations []*entity.MatchResult     `json:"recommendations"`
	Profile         *entity.PreferenceProfile `json:"user_preferences"`
}

// CollaborativeOutput is the unscored candidate pool derived from similar
// users' interaction logs.
type CollaborativeOutput struct {
	Recommendations []*entity.Laptop `json:"recommendations"`
	BasedOn         string           `json:"based_on"`
}

// SimilarOutput pairs a reference laptop with the catalog items similar
// to it.
type SimilarOutput struct {
	Reference *entity.Laptop   `json:"reference"`
	Similar   []*entity.Laptop `json:"similar"`
}

// RecommendationUsecase defines the recommendation engine's operations.
type RecommendationUsecase interface {
	// GetPersonalized returns the top-ranked catalog items for the user's
	// preference profile, excluding items the user has already viewed.
	GetPersonalized(ctx context.Context, userID uuid.UUID) (*PersonalizedOutput, error)

	// GetCollaborative returns catalog items other users with the same
	// coarse usage type have viewed or saved. The pool is intentionally
	// broader and less precise than the personalized path; no scoring
	// against the caller's own profile is applied.
	GetCollaborative(ctx context.Context, userID uuid.UUID, usageType string) (*CollaborativeOutput, error)

	// GetSimilar returns catalog items similar to the given laptop, either
	// by internals and price band or by brand/segment and price band.
	GetSimilar(ctx context.Context, laptopID uuid.UUID) (*SimilarOutput, error)
}

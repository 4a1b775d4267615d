package impl

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"lapmatch/internal/domain/entity"
	domainerrors "lapmatch/internal/domain/errors"
	"lapmatch/internal/domain/repository"
	"lapmatch/internal/domain/service"
	"lapmatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const dashboardRecentLimit = 5

// userService implements the UserUsecase interface.
type userService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	preferenceRepo repository.PreferenceRepository
	laptopRepo     repository.LaptopRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	logger         *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	PreferenceRepo repository.PreferenceRepository
	LaptopRepo     repository.LaptopRepository
	Hasher         service.PasswordHasher
	TokenService   service.TokenService
	Logger         *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		preferenceRepo: params.PreferenceRepo,
		laptopRepo:     params.LaptopRepo,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		logger:         params.Logger,
	}
}

// Register creates the account and its default preference profile in one
// transaction, so no user can exist without a profile.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*entity.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	srv.logger.Info("Starting user registration", slog.String("email", email))

	if existing, err := srv.userRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := &entity.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         input.Name,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
		UsageType:    input.UsageType,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		profile := entity.NewDefaultProfile(newUser.ID)
		if err := repoFactory.NewPreferenceRepository().CreateProfile(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create default preference profile")
		}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", newUser.ID))

	return newUser, nil
}

// Login verifies credentials and issues access/refresh tokens.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Password mismatch during login", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, string(user.Role))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

// GetDashboard assembles the dashboard: recent views and saves joined with
// their catalog items, plus counters.
func (srv *userService) GetDashboard(ctx context.Context, userID uuid.UUID) (*usecase.DashboardOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user")
	}

	profile, err := srv.preferenceRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load preference profile")
	}

	recentViews := append([]entity.ViewedLaptop(nil), profile.ViewedLaptops...)
	sort.SliceStable(recentViews, func(i, j int) bool {
		return recentViews[i].ViewedAt.After(recentViews[j].ViewedAt)
	})
	if len(recentViews) > dashboardRecentLimit {
		recentViews = recentViews[:dashboardRecentLimit]
	}

	recentSaves := profile.SavedLaptops
	if len(recentSaves) > dashboardRecentLimit {
		recentSaves = recentSaves[:dashboardRecentLimit]
	}

	laptops, err := srv.lookupLaptops(ctx, recentViews, recentSaves)
	if err != nil {
		return nil, err
	}

	viewDetails := make([]usecase.ViewedLaptopDetail, 0, len(recentViews))
	for _, viewed := range recentViews {
		viewDetails = append(viewDetails, usecase.ViewedLaptopDetail{
			ViewedLaptop: viewed,
			Laptop:       laptops[viewed.LaptopID],
		})
	}

	saveDetails := make([]usecase.SavedLaptopDetail, 0, len(recentSaves))
	for _, saved := range recentSaves {
		saveDetails = append(saveDetails, usecase.SavedLaptopDetail{
			SavedLaptop: saved,
			Laptop:      laptops[saved.LaptopID],
		})
	}

	return &usecase.DashboardOutput{
		User:        user,
		Preferences: profile,
		RecentViews: viewDetails,
		RecentSaves: saveDetails,
		Stats: usecase.DashboardStats{
			ViewedLaptops: len(profile.ViewedLaptops),
			SavedLaptops:  len(profile.SavedLaptops),
		},
	}, nil
}

// lookupLaptops batches the catalog lookups for the dashboard entries.
func (srv *userService) lookupLaptops(ctx context.Context, views []entity.ViewedLaptop, saves []entity.SavedLaptop) (map[uuid.UUID]*entity.Laptop, error) {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, viewed := range views {
		if _, ok := seen[viewed.LaptopID]; !ok {
			seen[viewed.LaptopID] = struct{}{}
			ids = append(ids, viewed.LaptopID)
		}
	}
	for _, saved := range saves {
		if _, ok := seen[saved.LaptopID]; !ok {
			seen[saved.LaptopID] = struct{}{}
			ids = append(ids, saved.LaptopID)
		}
	}

	return srv.lookupLaptopsByIDs(ctx, ids)
}

// lookupLaptopsByIDs loads catalog items keyed by id. Items that have left
// the catalog simply stay absent from the map.
func (srv *userService) lookupLaptopsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Laptop, error) {
	result := make(map[uuid.UUID]*entity.Laptop, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	laptops, err := srv.laptopRepo.FindByIDs(ctx, ids, len(ids))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load interaction laptops")
	}

	for _, laptop := range laptops {
		result[laptop.ID] = laptop
	}

	return result, nil
}

// GetActivity merges the view and save logs into one history, newest first,
// and joins the requested page with its catalog items.
func (srv *userService) GetActivity(ctx context.Context, userID uuid.UUID, input usecase.ActivityInput) (*usecase.ActivityOutput, error) {
	profile, err := srv.preferenceRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load preference profile")
	}

	entries := make([]usecase.ActivityEntry, 0, len(profile.ViewedLaptops)+len(profile.SavedLaptops))
	for _, viewed := range profile.ViewedLaptops {
		entries = append(entries, usecase.ActivityEntry{
			Type:     usecase.ActivityTypeView,
			Date:     viewed.ViewedAt,
			LaptopID: viewed.LaptopID,
			Rating:   viewed.Rating,
		})
	}
	for _, saved := range profile.SavedLaptops {
		entries = append(entries, usecase.ActivityEntry{
			Type:     usecase.ActivityTypeSave,
			Date:     saved.SavedAt,
			LaptopID: saved.LaptopID,
			Note:     saved.Note,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}

	total := len(entries)
	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	pageEntries := entries[offset:end]

	ids := make([]uuid.UUID, 0, len(pageEntries))
	seen := make(map[uuid.UUID]struct{}, len(pageEntries))
	for _, entry := range pageEntries {
		if _, ok := seen[entry.LaptopID]; !ok {
			seen[entry.LaptopID] = struct{}{}
			ids = append(ids, entry.LaptopID)
		}
	}

	laptops, err := srv.lookupLaptopsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range pageEntries {
		pageEntries[i].Laptop = laptops[pageEntries[i].LaptopID]
	}

	pages := 0
	if total > 0 {
		pages = (total + limit - 1) / limit
	}

	return &usecase.ActivityOutput{
		Activities: pageEntries,
		Count:      len(pageEntries),
		Total:      total,
		Page:       page,
		Pages:      pages,
	}, nil
}

// ExportData bundles the account and its preference profile, interaction
// logs included, into one takeout document.
func (srv *userService) ExportData(ctx context.Context, userID uuid.UUID) (*usecase.ExportOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load user for export")
	}

	profile, err := srv.preferenceRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load preference profile for export")
	}

	srv.logger.Info("User data export requested", slog.Any("userID", userID))

	return &usecase.ExportOutput{
		User:        user,
		Preferences: profile,
		ExportedAt:  time.Now().UTC(),
	}, nil
}

// DeleteAccount removes the account; the preference profile and interaction
// logs cascade at the database level.
func (srv *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.logger.Info("Account deleted", slog.Any("userID", userID))

	return nil
}

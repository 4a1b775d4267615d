package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"lapmatch/internal/domain/entity"
	domainerrors "lapmatch/internal/domain/errors"
	"lapmatch/internal/domain/repository"
	"lapmatch/internal/usecase"

	mockRepo "lapmatch/internal/mocks/repository"
	mockSvc "lapmatch/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	txManager      *mockRepo.MockTransactionManager
	userRepo       *mockRepo.MockUserRepository
	preferenceRepo *mockRepo.MockPreferenceRepository
	laptopRepo     *mockRepo.MockLaptopRepository
	hasher         *mockSvc.MockPasswordHasher
	tokenService   *mockSvc.MockTokenService
	service        usecase.UserUsecase
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	preferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	laptopRepo := mockRepo.NewMockLaptopRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		PreferenceRepo: preferenceRepo,
		LaptopRepo:     laptopRepo,
		Hasher:         hasher,
		TokenService:   tokenService,
		Logger:         logger,
	})

	return userServiceFixtures{
		txManager:      txManager,
		userRepo:       userRepo,
		preferenceRepo: preferenceRepo,
		laptopRepo:     laptopRepo,
		hasher:         hasher,
		tokenService:   tokenService,
		service:        service,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	input := usecase.RegisterInput{
		Name:      "Alex",
		Email:     "  Alex@Example.COM ",
		Password:  "superSecret1",
		UsageType: "coding",
	}

	f.userRepo.EXPECT().FindByEmail(ctx, "alex@example.com").
		Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("superSecret1").Return("hashed-password", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	txPreferenceRepo := mockRepo.NewMockPreferenceRepository(t)
	txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	txPreferenceRepo.EXPECT().CreateProfile(ctx, mock.AnythingOfType("*entity.PreferenceProfile")).
		Run(func(_ context.Context, profile *entity.PreferenceProfile) {
			// The default profile ships with the standard budget band.
			assert.Equal(t, entity.DefaultBudgetMin, profile.Budget.Min)
			assert.Equal(t, entity.DefaultBudgetMax, profile.Budget.Max)
		}).
		Return(nil)

	mockFactory := mockRepo.NewMockRepositoryFactory(t)
	mockFactory.EXPECT().NewUserRepository().Return(txUserRepo)
	mockFactory.EXPECT().NewPreferenceRepository().Return(txPreferenceRepo)

	f.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(_ context.Context, fn func(repository.RepositoryFactory) error) {
			_ = fn(mockFactory)
		}).
		Return(nil)

	user, err := f.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.PasswordHash)
	assert.Equal(t, entity.RoleUser, user.Role)
	assert.Equal(t, "coding", user.UsageType)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "taken@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "taken@example.com"}, nil)

	user, err := f.service.Register(ctx, usecase.RegisterInput{
		Name:     "Sam",
		Email:    "taken@example.com",
		Password: "superSecret1",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_TransactionRollsBack(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "alex@example.com").
		Return(nil, repository.ErrUserNotFound)
	f.hasher.EXPECT().Hash("superSecret1").Return("hashed-password", nil)
	f.txManager.EXPECT().Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrTransactionFailed)

	user, err := f.service.Register(ctx, usecase.RegisterInput{
		Name:     "Alex",
		Email:    "alex@example.com",
		Password: "superSecret1",
	})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestUserService_Login_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "alex@example.com",
		PasswordHash: "hashed-password",
		Role:         entity.RoleUser,
	}

	f.userRepo.EXPECT().FindByEmail(ctx, "alex@example.com").Return(user, nil)
	f.hasher.EXPECT().Check("superSecret1", "hashed-password").Return(true)
	f.tokenService.EXPECT().GenerateTokens(user.ID, "user").Return("access", "refresh", nil)

	output, err := f.service.Login(ctx, usecase.LoginInput{
		Email:    "Alex@Example.com",
		Password: "superSecret1",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, user, output.User)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), Email: "alex@example.com", PasswordHash: "hashed-password"}

	f.userRepo.EXPECT().FindByEmail(ctx, "alex@example.com").Return(user, nil)
	f.hasher.EXPECT().Check("wrong", "hashed-password").Return(false)

	output, err := f.service.Login(ctx, usecase.LoginInput{Email: "alex@example.com", Password: "wrong"})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := f.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	assert.Nil(t, output)
	// Unknown accounts are indistinguishable from wrong passwords.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_GetDashboard_RecentViewsSortedAndCapped(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Email: "alex@example.com"}
	profile := entity.NewDefaultProfile(userID)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	laptops := make([]*entity.Laptop, 0, 7)
	for i := 0; i < 7; i++ {
		laptop := validLaptop()
		laptop.ID = uuid.New()
		laptops = append(laptops, laptop)
		profile.ViewedLaptops = append(profile.ViewedLaptops, entity.ViewedLaptop{
			LaptopID: laptop.ID,
			ViewedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	f.preferenceRepo.EXPECT().GetProfile(ctx, userID).Return(profile, nil)
	f.laptopRepo.EXPECT().FindByIDs(ctx, mock.AnythingOfType("[]uuid.UUID"), 5).
		Return(laptops[2:], nil)

	output, err := f.service.GetDashboard(ctx, userID)

	require.NoError(t, err)
	require.Len(t, output.RecentViews, 5)
	// Most recent view first; the two oldest views fall off the dashboard.
	assert.Equal(t, laptops[6].ID, output.RecentViews[0].LaptopID)
	assert.Equal(t, laptops[2].ID, output.RecentViews[4].LaptopID)
	assert.Equal(t, 7, output.Stats.ViewedLaptops)
	assert.Zero(t, output.Stats.SavedLaptops)
}

func TestUserService_GetDashboard_MissingCatalogItemStaysNil(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	gone := uuid.New()
	profile := entity.NewDefaultProfile(userID)
	profile.SavedLaptops = []entity.SavedLaptop{{LaptopID: gone, SavedAt: time.Now()}}

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	f.preferenceRepo.EXPECT().GetProfile(ctx, userID).Return(profile, nil)
	f.laptopRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{gone}, 1).Return(nil, nil)

	output, err := f.service.GetDashboard(ctx, userID)

	require.NoError(t, err)
	require.Len(t, output.RecentSaves, 1)
	assert.Nil(t, output.RecentSaves[0].Laptop)
}

func TestUserService_GetDashboard_NoInteractionsSkipsLookup(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	f.preferenceRepo.EXPECT().GetProfile(ctx, userID).Return(entity.NewDefaultProfile(userID), nil)

	output, err := f.service.GetDashboard(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, output.RecentViews)
	assert.Empty(t, output.RecentSaves)
}

func TestUserService_GetActivity_MergesAndPaginates(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	rating := 4

	viewOld := entity.ViewedLaptop{LaptopID: uuid.New(), ViewedAt: base, Rating: &rating}
	viewMid := entity.ViewedLaptop{LaptopID: uuid.New(), ViewedAt: base.Add(2 * time.Hour)}
	viewNew := entity.ViewedLaptop{LaptopID: uuid.New(), ViewedAt: base.Add(4 * time.Hour)}
	saveOld := entity.SavedLaptop{LaptopID: uuid.New(), SavedAt: base.Add(1 * time.Hour), Note: "compare later"}
	saveNew := entity.SavedLaptop{LaptopID: uuid.New(), SavedAt: base.Add(3 * time.Hour)}

	profile := entity.NewDefaultProfile(userID)
	profile.ViewedLaptops = []entity.ViewedLaptop{viewOld, viewMid, viewNew}
	profile.SavedLaptops = []entity.SavedLaptop{saveOld, saveNew}

	pageLaptop := validLaptop()
	pageLaptop.ID = viewMid.LaptopID

	f.preferenceRepo.EXPECT().GetProfile(ctx, userID).Return(profile, nil)
	// Only the requested page is joined with the catalog.
	f.laptopRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{viewMid.LaptopID, saveOld.LaptopID}, 2).
		Return([]*entity.Laptop{pageLaptop}, nil)

	output, err := f.service.GetActivity(ctx, userID, usecase.ActivityInput{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, 5, output.Total)
	assert.Equal(t, 2, output.Count)
	assert.Equal(t, 2, output.Page)
	assert.Equal(t, 3, output.Pages)

	require.Len(t, output.Activities, 2)
	assert.Equal(t, usecase.ActivityTypeView, output.Activities[0].Type)
	assert.Equal(t, viewMid.LaptopID, output.Activities[0].LaptopID)
	assert.Equal(t, pageLaptop.Name, output.Activities[0].Laptop.Name)
	assert.Equal(t, usecase.ActivityTypeSave, output.Activities[1].Type)
	assert.Equal(t, saveOld.LaptopID, output.Activities[1].LaptopID)
	assert.Equal(t, "compare later", output.Activities[1].Note)
	assert.Nil(t, output.Activities[1].Laptop)
}

func TestUserService_GetActivity_DefaultsPagination(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.preferenceRepo.EXPECT().GetProfile(ctx, userID).Return(entity.NewDefaultProfile(userID), nil)

	output, err := f.service.GetActivity(ctx, userID, usecase.ActivityInput{})

	require.NoError(t, err)
	assert.Empty(t, output.Activities)
	assert.Equal(t, 1, output.Page)
	assert.Zero(t, output.Total)
	assert.Zero(t, output.Pages)
}

func TestUserService_GetActivity_MissingProfile(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.preferenceRepo.EXPECT().GetProfile(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	output, err := f.service.GetActivity(ctx, userID, usecase.ActivityInput{})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestUserService_ExportData_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	user := &entity.User{ID: userID, Email: "alex@example.com"}
	profile := entity.NewDefaultProfile(userID)
	profile.ViewedLaptops = []entity.ViewedLaptop{{LaptopID: uuid.New(), ViewedAt: time.Now()}}

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	f.preferenceRepo.EXPECT().GetProfile(ctx, userID).Return(profile, nil)

	output, err := f.service.ExportData(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, user, output.User)
	assert.Equal(t, profile, output.Preferences)
	assert.WithinDuration(t, time.Now(), output.ExportedAt, 5*time.Second)
}

func TestUserService_ExportData_UserNotFound(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	output, err := f.service.ExportData(ctx, userID)

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_DeleteAccount_NotFound(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.userRepo.EXPECT().Delete(ctx, userID).Return(repository.ErrUserNotFound)

	err := f.service.DeleteAccount(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

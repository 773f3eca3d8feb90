package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/carousell/ct-go/pkg/logger/log_context"
	"github.com/nguyentranbao-ct/price-scout/internal/kafka"
	"github.com/nguyentranbao-ct/price-scout/internal/models"
	"github.com/nguyentranbao-ct/price-scout/internal/repo/mongodb"
	"github.com/nguyentranbao-ct/price-scout/internal/repo/providers"
	"github.com/nguyentranbao-ct/price-scout/pkg/crypto"
	"github.com/nguyentranbao-ct/price-scout/pkg/token"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// AccountUsecase composes persistence, the provider registry, password
// hashing and token issuance into the account & favorites API.
type AccountUsecase interface {
	CreateAccount(ctx context.Context, email, password, name string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Search(ctx context.Context, term string) ([]models.Product, error)
	AddFavorite(ctx context.Context, userID primitive.ObjectID, product models.Product) error
	RemoveFavorite(ctx context.Context, userID primitive.ObjectID, productID string) error
	ListFavorites(ctx context.Context, userID primitive.ObjectID) ([]models.Product, error)
}

type accountUsecase struct {
	userRepo      mongodb.UserRepository
	favoritesRepo mongodb.FavoritesRepository
	registry      providers.Registry
	hasher        crypto.Hasher
	issuer        token.Issuer
	events        kafka.Publisher
}

func NewAccountUsecase(
	userRepo mongodb.UserRepository,
	favoritesRepo mongodb.FavoritesRepository,
	registry providers.Registry,
	hasher crypto.Hasher,
	issuer token.Issuer,
	events kafka.Publisher,
) AccountUsecase {
	return &accountUsecase{
		userRepo:      userRepo,
		favoritesRepo: favoritesRepo,
		registry:      registry,
		hasher:        hasher,
		issuer:        issuer,
		events:        events,
	}
}

// CreateAccount registers a user and returns a fresh session token. Email
// uniqueness is enforced by the store's unique index, not pre-checked here.
func (uc *accountUsecase) CreateAccount(ctx context.Context, email, password, name string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", models.NewValidationError("email", "must not be empty")
	}
	if password == "" {
		return "", models.NewValidationError("password", "must not be empty")
	}
	if strings.TrimSpace(name) == "" {
		return "", models.NewValidationError("name", "must not be empty")
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			return "", models.ErrEmailTaken
		}
		return "", fmt.Errorf("create account: %w", err)
	}

	uc.publish(ctx, kafka.Event{
		Type:   kafka.EventTypeAccountCreated,
		UserID: user.ID.Hex(),
	})

	sessionToken, err := uc.issuer.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}
	return sessionToken, nil
}

// Login returns a fresh session token, or ErrInvalidCredentials for both
// unknown email and wrong password so the two are indistinguishable.
func (uc *accountUsecase) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", models.ErrInvalidCredentials
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, models.ErrNotFound) {
		return "", models.ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("load user: %w", err)
	}

	if !uc.hasher.Compare(user.PasswordHash, password) {
		return "", models.ErrInvalidCredentials
	}

	sessionToken, err := uc.issuer.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue session token: %w", err)
	}
	return sessionToken, nil
}

// Search fans the term out to every registered provider concurrently. A
// failing provider contributes zero results; successful results are
// concatenated in registration order, within-provider order preserved, no
// cross-provider dedup. The call returns once every provider has settled.
func (uc *accountUsecase) Search(ctx context.Context, term string) ([]models.Product, error) {
	if strings.TrimSpace(term) == "" {
		return []models.Product{}, nil
	}

	provs := uc.registry.Providers()
	results := make([][]models.Product, len(provs))

	group, gctx := errgroup.WithContext(ctx)
	for i, provider := range provs {
		group.Go(func() error {
			products, err := provider.Search(gctx, term)
			if err != nil {
				// absorbed: one provider down must not fail the aggregate
				log.Warnw(ctx, "search provider failed",
					"provider", provider.Name(),
					"term", term,
					"error", err,
				)
				return nil
			}
			results[i] = products
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("search fan-out: %w", err)
	}

	merged := make([]models.Product, 0)
	for _, products := range results {
		merged = append(merged, products...)
	}
	return merged, nil
}

// AddFavorite promotes a search result into the user's favorites via the
// store's atomic add-if-absent, so concurrent adds never lose an entry.
func (uc *accountUsecase) AddFavorite(ctx context.Context, userID primitive.ObjectID, product models.Product) error {
	if product.ID == "" {
		return models.NewValidationError("product.id", "must not be empty")
	}

	if err := uc.favoritesRepo.AddProduct(ctx, userID, product); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}

	uc.publish(ctx, kafka.Event{
		Type:      kafka.EventTypeFavoriteAdded,
		UserID:    userID.Hex(),
		ProductID: product.ID,
		Product:   &product,
	})
	return nil
}

// RemoveFavorite delegates to the store-level pull; removing an id that was
// never added is a no-op, not an error.
func (uc *accountUsecase) RemoveFavorite(ctx context.Context, userID primitive.ObjectID, productID string) error {
	if productID == "" {
		return models.NewValidationError("product_id", "must not be empty")
	}

	if err := uc.favoritesRepo.RemoveProduct(ctx, userID, productID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}

	uc.publish(ctx, kafka.Event{
		Type:      kafka.EventTypeFavoriteRemoved,
		UserID:    userID.Hex(),
		ProductID: productID,
	})
	return nil
}

func (uc *accountUsecase) ListFavorites(ctx context.Context, userID primitive.ObjectID) ([]models.Product, error) {
	list, err := uc.favoritesRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return list.Favorites().Products(), nil
}

func (uc *accountUsecase) publish(ctx context.Context, event kafka.Event) {
	if err := uc.events.Publish(ctx, event); err != nil {
		log.Warnw(ctx, "publish event failed", "event_type", event.Type, "error", err)
	}
}

package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/arthurhenrique02/doc-pay-manager/cache"
	"github.com/arthurhenrique02/doc-pay-manager/models"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const (
	UserCacheExpiry = 24 * time.Hour
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetCredentials(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	IDExists(ctx context.Context, id int64) (bool, error)
	DeleteUserCache(ctx context.Context, username string) error
}

type userRepository struct {
	base  *Repository[models.User]
	cache *cache.Cache
}

func NewUserRepository(db *gorm.DB, cache *cache.Cache) (UserRepository, error) {
	base, err := NewRepository[models.User](db)
	if err != nil {
		return nil, err
	}
	return &userRepository{base: base, cache: cache}, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.base.Create(ctx, user); err != nil {
		return err
	}
	return r.DeleteUserCache(ctx, user.Username)
}

// GetByUsername resolves a user through the cache. The cached projection
// never carries the password hash; credential checks must use
// GetCredentials instead.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getUserCacheKey(username)
	cachedUser, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedUser != "" {
		var user models.User
		if err := json.Unmarshal([]byte(cachedUser), &user); err == nil {
			return &user, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get user from cache: %v", err)
	}

	user, err := r.GetCredentials(ctx, username)
	if err != nil || user == nil {
		return nil, err
	}

	userJSON, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}
	if err := r.cache.Set(ctx, cacheKey, userJSON, UserCacheExpiry); err != nil {
		log.Printf("Failed to set user in cache: %v", err)
	}

	return user, nil
}

// GetCredentials loads a user straight from the database, password hash
// included. Returns nil when no such user exists.
func (r *userRepository) GetCredentials(ctx context.Context, username string) (*models.User, error) {
	users, err := r.base.Filter(ctx, Criteria{"username": username})
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

func (r *userRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.base.Exists(ctx, Criteria{"username": username})
}

func (r *userRepository) IDExists(ctx context.Context, id int64) (bool, error) {
	return r.base.Exists(ctx, Criteria{"id": id})
}

func (r *userRepository) DeleteUserCache(ctx context.Context, username string) error {
	return r.cache.Delete(ctx, r.getUserCacheKey(username))
}

func (r *userRepository) getUserCacheKey(username string) string {
	return fmt.Sprintf("user_cache:%s", username)
}

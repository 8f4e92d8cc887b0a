package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/arthurhenrique02/doc-pay-manager/database"
	"github.com/arthurhenrique02/doc-pay-manager/models"
	"github.com/arthurhenrique02/doc-pay-manager/repositories"
	"github.com/arthurhenrique02/doc-pay-manager/utils"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

type UserService interface {
	Register(ctx context.Context, user *models.User) error
}

type userService struct {
	userRepo repositories.UserRepository
	redis    *redis.Client
}

func NewUserService(userRepo repositories.UserRepository, redisClient *redis.Client) UserService {
	return &userService{userRepo: userRepo, redis: redisClient}
}

// Register validates and persists a new user. A redis lock keyed by the
// username guards the uniqueness check against concurrent registrations.
func (s *userService) Register(ctx context.Context, user *models.User) error {
	if err := utils.ValidateUserData(*user); err != nil {
		return fmt.Errorf("invalid user data: %w", err)
	}

	lockKey := fmt.Sprintf("user_lock:%s", user.Username)
	lockValue := uuid.New().String()
	locked, err := database.NewLock(ctx, s.redis, lockKey, lockValue, time.Minute)
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("registration for %q is already in progress", user.Username)
	}
	defer func() {
		if err := database.ReleaseLock(ctx, s.redis, lockKey, lockValue); err != nil {
			log.Printf("Failed to release lock: %v", err)
		}
	}()

	exists, err := s.userRepo.UsernameExists(ctx, user.Username)
	if err != nil {
		return err
	}
	if exists {
		return &ValidationError{Field: "username", Message: "username already registered"}
	}

	hashedPassword, err := utils.HashPassword(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = hashedPassword

	return s.userRepo.Create(ctx, user)
}

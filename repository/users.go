package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dcode-github/listing_storefront/models"
)

const UsersCollection = "users"

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
)

// UserRepository stores storefront accounts. Both userID and email are
// unique.
type UserRepository interface {
	Create(ctx context.Context, user models.User) error
	FindByUserID(ctx context.Context, userID string) (models.User, error)
}

type MongoUserRepository struct {
	collection *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{collection: db.Collection(UsersCollection)}
}

func (r *MongoUserRepository) Create(ctx context.Context, user models.User) error {
	filter := bson.M{"$or": bson.A{
		bson.M{"userID": user.UserID},
		bson.M{"email": user.Email},
	}}
	err := r.collection.FindOne(ctx, filter).Err()
	if err == nil {
		return fmt.Errorf("%w: %s", ErrUserExists, user.UserID)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("check existing user: %w", err)
	}

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %s", ErrUserExists, user.UserID)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *MongoUserRepository) FindByUserID(ctx context.Context, userID string) (models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"userID": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// MemoryUserRepository keeps accounts in process memory. Accounts are lost
// on restart.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]models.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.UserID == user.UserID || (user.Email != "" && u.Email == user.Email) {
			return fmt.Errorf("%w: %s", ErrUserExists, user.UserID)
		}
	}
	r.users[user.UserID] = user
	return nil
}

func (r *MemoryUserRepository) FindByUserID(_ context.Context, userID string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[userID]
	if !ok {
		return models.User{}, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	return u, nil
}

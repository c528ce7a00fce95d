package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
)

// AccountDirectory stores users and login events in MongoDB.
type AccountDirectory struct {
	db     *mongo.Database
	users  *mongo.Collection
	events *mongo.Collection
}

func NewAccountDirectory(db *mongo.Database) *AccountDirectory {
	return &AccountDirectory{
		db:     db,
		users:  db.Collection(collectionUsers),
		events: db.Collection(collectionLoginEvents),
	}
}

type userDocument struct {
	ID           int64     `bson:"_id"`
	CompanyID    *int64    `bson:"company_id,omitempty"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	PasswordSalt string    `bson:"password_salt"`
	Role         string    `bson:"role"`
	CreatedAt    time.Time `bson:"created_at"`
	ModifiedAt   time.Time `bson:"modified_at"`
}

type loginEventDocument struct {
	Username string `bson:"username"`
	Date     string `bson:"date"`
	Time     string `bson:"time"`
}

func (d *AccountDirectory) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDocument
	if err := d.users.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (d *AccountDirectory) InsertUser(ctx context.Context, nu domain.NewUser) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, d.db, collectionUsers)
	if err != nil {
		return nil, err
	}

	created := nu.CreatedAt.UTC().Truncate(time.Millisecond)
	doc := userDocument{
		ID:           id,
		Username:     nu.Username,
		Email:        nu.Email,
		PasswordHash: nu.PasswordHash,
		PasswordSalt: nu.PasswordSalt,
		Role:         nu.Role,
		CreatedAt:    created,
		ModifiedAt:   created,
	}
	if _, err := d.users.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, duplicateCredential(err)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}

func (d *AccountDirectory) InsertLoginEvent(ctx context.Context, e domain.LoginEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := loginEventDocument{Username: e.Username, Date: e.Date(), Time: e.Time()}
	if _, err := d.events.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert login event: %w", err)
	}
	return nil
}

func duplicateCredential(err error) error {
	if strings.Contains(err.Error(), indexUniqueEmail) {
		return domain.ErrDuplicateEmail
	}
	return domain.ErrDuplicateUsername
}

func (doc userDocument) toDomain() *domain.User {
	return &domain.User{
		ID:           doc.ID,
		CompanyID:    doc.CompanyID,
		Username:     doc.Username,
		Email:        doc.Email,
		PasswordHash: doc.PasswordHash,
		PasswordSalt: doc.PasswordSalt,
		Role:         doc.Role,
		CreatedAt:    doc.CreatedAt,
		ModifiedAt:   doc.ModifiedAt,
	}
}

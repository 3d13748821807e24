package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pet-adoption-api/internal/domain/users"
)

type UsersRepo struct {
	col *mongo.Collection
}

func NewUsersRepo(c *Client) *UsersRepo {
	return &UsersRepo{col: c.Database.Collection("usuarios")}
}

type userDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Email      string             `bson:"email"`
	Name       string             `bson:"nombre"`
	Surname    string             `bson:"apellido,omitempty"`
	Phone      string             `bson:"telefono"`
	Password   string             `bson:"clave"`
	Role       string             `bson:"rol"`
	Active     bool               `bson:"activo"`
	LastAccess time.Time          `bson:"ultimoAcceso"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) (users.User, error) {
	result, err := r.col.InsertOne(ctx, toUserDoc(u))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return users.User{}, users.ErrDuplicateEmail
		}
		return users.User{}, fmt.Errorf("insert user: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		u.ID = oid.Hex()
	}
	return u, nil
}

func (r *UsersRepo) GetAll(ctx context.Context) ([]users.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	out := make([]users.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromUserDoc(d))
	}
	return out, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return users.User{}, users.ErrInvalidID
	}

	var doc userDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, fmt.Errorf("find user %s: %w", id, err)
	}
	return fromUserDoc(doc), nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	var doc userDoc
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, fmt.Errorf("find user by email: %w", err)
	}
	return fromUserDoc(doc), nil
}

func (r *UsersRepo) Update(ctx context.Context, u users.User) (users.User, error) {
	oid, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return users.User{}, users.ErrInvalidID
	}

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, toUserDoc(u))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return users.User{}, users.ErrDuplicateEmail
		}
		return users.User{}, fmt.Errorf("update user %s: %w", u.ID, err)
	}
	if result.MatchedCount == 0 {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) (users.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return users.User{}, users.ErrInvalidID
	}

	var doc userDoc
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, fmt.Errorf("delete user %s: %w", id, err)
	}
	return fromUserDoc(doc), nil
}

func toUserDoc(u users.User) userDoc {
	doc := userDoc{
		Email:      u.Email,
		Name:       u.Name,
		Surname:    u.Surname,
		Phone:      u.Phone,
		Password:   u.Password,
		Role:       string(u.Role),
		Active:     u.Active,
		LastAccess: u.LastAccess,
		CreatedAt:  u.CreatedAt,
		UpdatedAt:  u.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(u.ID); err == nil {
		doc.ID = oid
	}
	return doc
}

func fromUserDoc(d userDoc) users.User {
	return users.User{
		ID:         d.ID.Hex(),
		Email:      d.Email,
		Name:       d.Name,
		Surname:    d.Surname,
		Phone:      d.Phone,
		Password:   d.Password,
		Role:       users.Role(d.Role),
		Active:     d.Active,
		LastAccess: d.LastAccess,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

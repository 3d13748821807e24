package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pet-adoption-api/internal/domain/pets"
)

type PetsRepo struct {
	col *mongo.Collection
}

func NewPetsRepo(c *Client) *PetsRepo {
	return &PetsRepo{col: c.Database.Collection("mascotas")}
}

// petDoc es el documento persistido; el _id queda fuera del modelo de
// dominio.
type petDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"nombre"`
	Kind         string             `bson:"tipo"`
	Breed        string             `bson:"raza,omitempty"`
	Age          *int               `bson:"edad,omitempty"`
	Description  string             `bson:"descripcion,omitempty"`
	Adopted      bool               `bson:"adoptado"`
	AdoptionDate *time.Time         `bson:"fechaAdopcion,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	result, err := r.col.InsertOne(ctx, toPetDoc(p))
	if err != nil {
		return pets.Pet{}, fmt.Errorf("insert pet: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid.Hex()
	}
	return p, nil
}

func (r *PetsRepo) GetAll(ctx context.Context) ([]pets.Pet, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find pets: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []petDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode pets: %w", err)
	}

	out := make([]pets.Pet, 0, len(docs))
	for _, d := range docs {
		out = append(out, fromPetDoc(d))
	}
	return out, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return pets.Pet{}, pets.ErrInvalidID
	}

	var doc petDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("find pet %s: %w", id, err)
	}
	return fromPetDoc(doc), nil
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) (pets.Pet, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return pets.Pet{}, pets.ErrInvalidID
	}

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": oid}, toPetDoc(p))
	if err != nil {
		return pets.Pet{}, fmt.Errorf("update pet %s: %w", p.ID, err)
	}
	if result.MatchedCount == 0 {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) (pets.Pet, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return pets.Pet{}, pets.ErrInvalidID
	}

	var doc petDoc
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, fmt.Errorf("delete pet %s: %w", id, err)
	}
	return fromPetDoc(doc), nil
}

func toPetDoc(p pets.Pet) petDoc {
	doc := petDoc{
		Name:         p.Name,
		Kind:         string(p.Kind),
		Breed:        p.Breed,
		Age:          p.Age,
		Description:  p.Description,
		Adopted:      p.Adopted,
		AdoptionDate: p.AdoptionDate,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(p.ID); err == nil {
		doc.ID = oid
	}
	return doc
}

func fromPetDoc(d petDoc) pets.Pet {
	return pets.Pet{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Kind:         pets.Kind(d.Kind),
		Breed:        d.Breed,
		Age:          d.Age,
		Description:  d.Description,
		Adopted:      d.Adopted,
		AdoptionDate: d.AdoptionDate,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

package pets_test

import (
	"context"
	"errors"
	"testing"

	"pet-adoption-api/internal/adapters/storage/memory"
	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/schema"
)

func newService() *pets.Service {
	return pets.NewService(memory.NewPetRepo())
}

func createPet(t *testing.T, svc *pets.Service) pets.Pet {
	t.Helper()

	age := 5
	p, err := svc.Create(context.Background(), pets.CreateInput{
		Name:        "Milo",
		Kind:        "Perro",
		Breed:       "mestizo",
		Age:         &age,
		Description: "juguetón",
	})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}
	if p.ID == "" {
		t.Fatal("create pet: missing id")
	}
	return p
}

func TestCreate_RejectsInvalid(t *testing.T) {
	svc := newService()

	_, err := svc.Create(context.Background(), pets.CreateInput{
		Name: "Milo",
		Kind: "Loro",
	})

	var ve *schema.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "tipo" {
		t.Errorf("failing field = %q, want tipo", ve.Field)
	}

	all, _ := svc.GetAll(context.Background())
	if len(all) != 0 {
		t.Errorf("nothing should be persisted, got %d records", len(all))
	}
}

func TestUpdate_PartialMerge(t *testing.T) {
	svc := newService()
	created := createPet(t, svc)

	name := "Milo Actualizado"
	updated, err := svc.Update(context.Background(), created.ID, pets.UpdateInput{
		Name: &name,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Name != name {
		t.Errorf("name = %q, want %q", updated.Name, name)
	}
	// El resto de los campos queda intacto.
	if updated.Kind != created.Kind {
		t.Errorf("kind cambió: %q -> %q", created.Kind, updated.Kind)
	}
	if updated.Age == nil || *updated.Age != *created.Age {
		t.Errorf("age cambió: %v -> %v", created.Age, updated.Age)
	}
	if updated.Breed != created.Breed {
		t.Errorf("breed cambió: %q -> %q", created.Breed, updated.Breed)
	}
}

func TestUpdate_InvalidMergeDoesNotPersist(t *testing.T) {
	svc := newService()
	created := createPet(t, svc)

	bad := "Loro"
	_, err := svc.Update(context.Background(), created.ID, pets.UpdateInput{
		Kind: &bad,
	})

	var ve *schema.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	// El registro original sigue intacto.
	current, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get after failed update: %v", err)
	}
	if current.Kind != created.Kind {
		t.Errorf("kind persistido = %q, want %q", current.Kind, created.Kind)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := newService()

	name := "Milo"
	_, err := svc.Update(context.Background(), "65b1a0000000000000000000", pets.UpdateInput{Name: &name})
	if !errors.Is(err, pets.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMalformedID_IsCastError(t *testing.T) {
	svc := newService()

	if _, err := svc.GetByID(context.Background(), "no-es-un-oid"); !errors.Is(err, pets.ErrInvalidID) {
		t.Errorf("GetByID: expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.Delete(context.Background(), "no-es-un-oid"); !errors.Is(err, pets.ErrInvalidID) {
		t.Errorf("Delete: expected ErrInvalidID, got %v", err)
	}
}

func TestDelete_ReturnsRemovedRecord(t *testing.T) {
	svc := newService()
	created := createPet(t, svc)

	removed, err := svc.Delete(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed.ID != created.ID || removed.Name != created.Name {
		t.Errorf("removed = %+v, want %+v", removed, created)
	}

	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, pets.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

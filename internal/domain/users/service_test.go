package users_test

import (
	"context"
	"errors"
	"testing"

	"pet-adoption-api/internal/adapters/auth/bcryptpw"
	"pet-adoption-api/internal/adapters/auth/jwtauth"
	"pet-adoption-api/internal/adapters/storage/memory"
	"pet-adoption-api/internal/domain/users"
	"pet-adoption-api/internal/schema"
)

func newService() (*users.Service, users.Repository) {
	repo := memory.NewUserRepo()
	svc := users.NewService(repo, bcryptpw.New(), jwtauth.New("test-secret"), users.DefaultPolicy())
	return svc, repo
}

func validInput() users.RegisterInput {
	return users.RegisterInput{
		Email:    "Ana@Example.com",
		Name:     "Ana",
		Phone:    "011 1234 5678",
		Password: "Test1234!",
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	svc, repo := newService()

	u, err := svc.Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if u.Email != "ana@example.com" {
		t.Errorf("email no normalizado: %q", u.Email)
	}
	if u.Role != users.RoleUser || !u.Active {
		t.Errorf("defaults incorrectos: role=%q active=%v", u.Role, u.Active)
	}

	stored, err := repo.GetByEmail(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("get stored user: %v", err)
	}
	if stored.Password == "Test1234!" {
		t.Fatal("la clave quedó en texto plano")
	}
	if !bcryptpw.New().Verify("Test1234!", stored.Password) {
		t.Error("el hash almacenado no verifica contra la clave original")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	// Mismo email con distinto case: el segundo registro falla siempre,
	// nunca pisa al primero.
	in := validInput()
	in.Email = "ANA@example.com"
	_, err := svc.Register(ctx, in)
	if !errors.Is(err, users.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	all, _ := svc.GetAll(ctx)
	if len(all) != 1 {
		t.Errorf("expected 1 user, got %d", len(all))
	}
}

func TestRegister_WeakPasswords(t *testing.T) {
	cases := []struct {
		name     string
		password string
	}{
		{"sin mayúscula", "test1234!"},
		{"sin minúscula", "TEST1234!"},
		{"sin dígito", "TestTest!"},
		{"sin especial", "Test1234"},
		{"muy corta", "Te1!"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newService()
			in := validInput()
			in.Password = tc.password

			_, err := svc.Register(context.Background(), in)
			var ve *schema.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != "clave" {
				t.Errorf("failing field = %q, want clave", ve.Field)
			}
		})
	}
}

func TestRegister_InvalidPhone(t *testing.T) {
	svc, _ := newService()
	in := validInput()
	in.Phone = "1234567890"

	_, err := svc.Register(context.Background(), in)
	var ve *schema.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Field != "telefono" {
		t.Errorf("failing field = %q, want telefono", ve.Field)
	}
}

func TestRegister_SurnamePolicy(t *testing.T) {
	repo := memory.NewUserRepo()
	policy := users.DefaultPolicy()
	policy.RequireSurname = true
	svc := users.NewService(repo, bcryptpw.New(), jwtauth.New("test-secret"), policy)

	_, err := svc.Register(context.Background(), validInput())
	var ve *schema.ValidationError
	if !errors.As(err, &ve) || ve.Field != "apellido" {
		t.Fatalf("expected apellido validation error, got %v", err)
	}

	in := validInput()
	in.Surname = "Pérez"
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("register with surname: %v", err)
	}
}

func TestLogin_UniformInvalidCredentials(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Usuario desconocido y clave incorrecta devuelven el mismo error.
	_, _, errUnknown := svc.Login(ctx, "nadie@example.com", "Test1234!")
	_, _, errWrongPass := svc.Login(ctx, "ana@example.com", "Otra1234!")

	if !errors.Is(errUnknown, users.ErrInvalidCredentials) {
		t.Errorf("unknown user: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPass, users.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if errUnknown.Error() != errWrongPass.Error() {
		t.Error("los dos fallos deben ser indistinguibles")
	}
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, validInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	u, token, err := svc.Login(ctx, "ana@example.com", "Test1234!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatal("missing token")
	}

	claims, err := jwtauth.New("test-secret").Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.Email != u.Email {
		t.Errorf("claim email = %q, want %q", claims.Email, u.Email)
	}
}

func TestUpdate_RevalidatesMergedRecord(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	created, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	badPhone := "011.1234.5678"
	_, err = svc.Update(ctx, created.ID, users.UpdateInput{Phone: &badPhone})
	var ve *schema.ValidationError
	if !errors.As(err, &ve) || ve.Field != "telefono" {
		t.Fatalf("expected telefono validation error, got %v", err)
	}

	current, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get after failed update: %v", err)
	}
	if current.Phone != created.Phone {
		t.Errorf("phone persistido = %q, want %q", current.Phone, created.Phone)
	}
}

func TestUpdate_NewPasswordIsRevalidatedAndHashed(t *testing.T) {
	svc, repo := newService()
	ctx := context.Background()

	created, err := svc.Register(ctx, validInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	weak := "corta"
	if _, err := svc.Update(ctx, created.ID, users.UpdateInput{Password: &weak}); err == nil {
		t.Fatal("expected validation error for weak password")
	}

	strong := "Nueva1234!"
	if _, err := svc.Update(ctx, created.ID, users.UpdateInput{Password: &strong}); err != nil {
		t.Fatalf("update password: %v", err)
	}

	stored, _ := repo.GetByID(ctx, created.ID)
	if stored.Password == strong {
		t.Fatal("la clave nueva quedó en texto plano")
	}
	if !bcryptpw.New().Verify(strong, stored.Password) {
		t.Error("el hash nuevo no verifica")
	}
}

func TestFullNameAndIsAdmin(t *testing.T) {
	u := users.User{Name: "  Ana  ", Surname: "Pérez", Role: users.RoleAdmin}
	if got := users.FullName(u); got != "Ana Pérez" {
		t.Errorf("FullName = %q", got)
	}
	if !u.IsAdmin() {
		t.Error("expected admin")
	}

	u.Role = users.RoleUser
	if u.IsAdmin() {
		t.Error("usuario común no es admin")
	}
}

package command

import (
	"errors"
	"sync"
	"testing"

	"github.com/aps-intertrade/farmsight/internal/user/domain"
	"github.com/aps-intertrade/farmsight/pkg/auth"
)

// fakeUserRepository is an in-memory UserRepository for tests
type fakeUserRepository struct {
	mu     sync.Mutex
	users  map[uint]*domain.User
	nextID uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[uint]*domain.User{}}
}

func (r *fakeUserRepository) Create(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	user.ID = r.nextID
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepository) FindByID(id uint) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.New("user not found")
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepository) FindByUsername(username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *fakeUserRepository) FindByEmail(email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.New("user not found")
}

func (r *fakeUserRepository) FindAll(limit, offset int) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []domain.User
	for _, user := range r.users {
		users = append(users, *user)
	}
	return users, nil
}

func (r *fakeUserRepository) FindByRole(role string, limit, offset int) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []domain.User
	for _, user := range r.users {
		if user.Role == role {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (r *fakeUserRepository) Update(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.New("user not found")
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepository) Delete(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return errors.New("user not found")
	}
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepository) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

func (r *fakeUserRepository) CountByRole(role string) (int64, error) {
	users, _ := r.FindByRole(role, 0, 0)
	return int64(len(users)), nil
}

func register(t *testing.T, repo domain.UserRepository, username, role string) *domain.User {
	t.Helper()
	user, err := NewRegisterUserHandler(repo).Handle(RegisterUserCommand{
		Username: username,
		Email:    username + "@apsintertrade.example",
		Password: "secret123",
		FullName: "Test User",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("register %q: %v", username, err)
	}
	return user
}

func TestRegisterUser(t *testing.T) {
	repo := newFakeUserRepository()

	user := register(t, repo, "marta", "")
	if user.Role != domain.RoleStaff {
		t.Errorf("default role = %q, want %q", user.Role, domain.RoleStaff)
	}
	if user.Password == "secret123" {
		t.Error("password stored in plain text")
	}
	if !auth.CheckPassword(user.Password, "secret123") {
		t.Error("stored hash does not verify")
	}
	if !user.IsActive {
		t.Error("new user should be active")
	}
}

func TestRegisterUser_DuplicateUsername(t *testing.T) {
	repo := newFakeUserRepository()
	register(t, repo, "marta", "")

	_, err := NewRegisterUserHandler(repo).Handle(RegisterUserCommand{
		Username: "marta",
		Email:    "other@apsintertrade.example",
		Password: "secret123",
		FullName: "Other User",
	})
	if err == nil {
		t.Fatal("expected duplicate username error")
	}
}

func TestRegisterUser_InvalidRole(t *testing.T) {
	repo := newFakeUserRepository()

	_, err := NewRegisterUserHandler(repo).Handle(RegisterUserCommand{
		Username: "marta",
		Email:    "marta@apsintertrade.example",
		Password: "secret123",
		FullName: "Marta",
		Role:     "superuser",
	})
	if err == nil {
		t.Fatal("expected invalid role error")
	}
}

func TestLoginUser(t *testing.T) {
	repo := newFakeUserRepository()
	register(t, repo, "marta", domain.RoleStorekeeper)

	response, err := NewLoginUserHandler(repo).Handle(LoginUserCommand{
		Username: "marta",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if response.Token == "" {
		t.Error("expected a token")
	}

	claims, err := auth.ValidateToken(response.Token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.Role != domain.RoleStorekeeper {
		t.Errorf("token role = %q, want %q", claims.Role, domain.RoleStorekeeper)
	}
}

func TestLoginUser_WrongPassword(t *testing.T) {
	repo := newFakeUserRepository()
	register(t, repo, "marta", "")

	_, err := NewLoginUserHandler(repo).Handle(LoginUserCommand{
		Username: "marta",
		Password: "wrong",
	})
	if err == nil {
		t.Fatal("expected invalid credentials error")
	}
}

func TestLoginUser_Deactivated(t *testing.T) {
	repo := newFakeUserRepository()
	user := register(t, repo, "marta", "")

	if _, err := NewToggleActiveHandler(repo).Handle(ToggleActiveCommand{
		UserID:   user.ID,
		IsActive: false,
	}); err != nil {
		t.Fatalf("ToggleActive error = %v", err)
	}

	_, err := NewLoginUserHandler(repo).Handle(LoginUserCommand{
		Username: "marta",
		Password: "secret123",
	})
	if err == nil {
		t.Fatal("expected deactivated account error")
	}
}

func TestChangeRole(t *testing.T) {
	repo := newFakeUserRepository()
	user := register(t, repo, "marta", "")

	updated, err := NewChangeRoleHandler(repo).Handle(ChangeRoleCommand{
		UserID: user.ID,
		Role:   domain.RoleManager,
	})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if updated.Role != domain.RoleManager {
		t.Errorf("role = %q, want %q", updated.Role, domain.RoleManager)
	}

	if _, err := NewChangeRoleHandler(repo).Handle(ChangeRoleCommand{
		UserID: user.ID,
		Role:   "root",
	}); err == nil {
		t.Fatal("expected invalid role error")
	}
}

package repository

import (
	"context"
	"encoding/json"

	"repair-app/internal/models"
)

type UserRepository struct {
	store Store
}

func NewUserRepository(store Store) *UserRepository {
	return &UserRepository{store: store}
}

// CreateUser записывает профиль и учётные данные одной транзакцией.
func (r *UserRepository) CreateUser(ctx context.Context, user *models.User, passwordHash string) error {
	taken, err := r.store.Exists(ctx, CredPrefix+user.Email)
	if err != nil {
		return err
	}
	if taken {
		return models.ErrDuplicate
	}

	cred := models.Credentials{
		UserID:       user.ID,
		PasswordHash: passwordHash,
	}
	return r.store.SetMulti(ctx, map[string]interface{}{
		UserPrefix + user.ID:    user,
		CredPrefix + user.Email: cred,
	})
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.store.Get(ctx, UserPrefix+id, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetCredentials(ctx context.Context, email string) (*models.Credentials, error) {
	var cred models.Credentials
	if err := r.store.Get(ctx, CredPrefix+email, &cred); err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	return r.store.Set(ctx, UserPrefix+user.ID, user, 0)
}

func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	raw, err := r.store.GetByPrefix(ctx, UserPrefix)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(raw))
	for _, data := range raw {
		var user models.User
		if err := json.Unmarshal(data, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

func (r *UserRepository) GetByRole(ctx context.Context, role models.Role) ([]models.User, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0)
	for _, user := range all {
		if user.Role == role {
			users = append(users, user)
		}
	}
	return users, nil
}

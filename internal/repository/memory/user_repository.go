package memory

import (
	"context"

	"mindfulme-be/internal/entity"
	"mindfulme-be/internal/repository/contract"
)

type userRepository struct {
	s *Store
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Two concurrent signups can both pass the service-level check.
	if _, taken := r.s.usernames[user.Username]; taken {
		return contract.ErrDuplicateKey
	}

	user.Id = r.s.currentUserId
	r.s.currentUserId++
	user.CreatedAt = r.s.stamp(user.CreatedAt)

	stored := *user
	r.s.users[user.Id] = &stored
	r.s.usernames[user.Username] = user.Id
	return nil
}

func (r *userRepository) FindById(ctx context.Context, id int64) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	out := *user
	return &out, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	id, ok := r.s.usernames[username]
	if !ok {
		return nil, nil
	}
	out := *r.s.users[id]
	return &out, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}

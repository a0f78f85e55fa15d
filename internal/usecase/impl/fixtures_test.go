package impl

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"taskhub/config"
	"taskhub/internal/domain/entity"
	domainerrors "taskhub/internal/domain/errors"
	"taskhub/internal/domain/repository"
	"taskhub/internal/domain/service"
	"taskhub/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- in-memory fakes ---

// memUserRepo is an in-memory UserRepository that mimics the unique email
// index: a second Create with the same email fails with the Conflict error.
type memUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[uuid.UUID]*entity.User
	order map[uuid.UUID]int

	failWith error // when set, every call returns this error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		users: make(map[uuid.UUID]*entity.User),
		order: make(map[uuid.UUID]int),
	}
}

func (m *memUserRepo) Create(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return m.failWith
	}
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return domainerrors.ErrEmailTaken.WrapMessage("email already exists")
		}
	}
	user.CreatedAt = time.Now()
	clone := *user
	m.users[user.ID] = &clone
	m.order[user.ID] = m.seq
	m.seq++

	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	user, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	for _, user := range m.users {
		if user.Email == email {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (m *memUserRepo) List(_ context.Context, offset, limit int) ([]*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	all := make([]*entity.User, 0, len(m.users))
	for id := range m.users {
		clone := *m.users[id]
		all = append(all, &clone)
	}
	sort.Slice(all, func(i, j int) bool {
		return m.order[all[i].ID] < m.order[all[j].ID]
	})
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}

	return all, nil
}

func (m *memUserRepo) delete(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.users, id)
}

// memTaskRepo is an in-memory TaskRepository.
type memTaskRepo struct {
	mu    sync.Mutex
	seq   int
	tasks map[uuid.UUID]*entity.Task
	order map[uuid.UUID]int
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{
		tasks: make(map[uuid.UUID]*entity.Task),
		order: make(map[uuid.UUID]int),
	}
}

func (m *memTaskRepo) Create(_ context.Context, task *entity.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	task.CreatedAt = time.Now()
	clone := *task
	m.tasks[task.ID] = &clone
	m.order[task.ID] = m.seq
	m.seq++

	return nil
}

func (m *memTaskRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	task, ok := m.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	clone := *task

	return &clone, nil
}

func (m *memTaskRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	owned := make([]*entity.Task, 0)
	for id := range m.tasks {
		if m.tasks[id].OwnerID == ownerID {
			clone := *m.tasks[id]
			owned = append(owned, &clone)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return m.order[owned[i].ID] < m.order[owned[j].ID]
	})

	return owned, nil
}

func (m *memTaskRepo) Update(_ context.Context, id uuid.UUID, patch entity.TaskPatch) (*entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	task, ok := m.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	patch.Apply(task)
	clone := *task

	return &clone, nil
}

func (m *memTaskRepo) Delete(_ context.Context, id uuid.UUID) (*entity.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	task, ok := m.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	delete(m.tasks, id)

	return task, nil
}

// fakeTxManager runs the callback directly against the fakes; there is no
// real transaction to roll back.
type fakeTxManager struct {
	users *memUserRepo
	tasks *memTaskRepo
}

func (f *fakeTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(f)
}

func (f *fakeTxManager) UserRepo() repository.UserRepository { return f.users }
func (f *fakeTxManager) TaskRepo() repository.TaskRepository { return f.tasks }

// --- fixture assembly ---

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTokenService(t *testing.T) service.TokenService {
	t.Helper()
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-secret"
	cfg.SecretKey.AccessTTL = 15 * time.Minute

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	return tokenService
}

func createUserService(t *testing.T) (*userService, *memUserRepo, service.TokenService) {
	t.Helper()
	users := newMemUserRepo()
	tokenService := newTestTokenService(t)

	svc := NewUserService(UserServiceParams{
		TxManager:    &fakeTxManager{users: users, tasks: newMemTaskRepo()},
		UserRepo:     users,
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return svc.(*userService), users, tokenService
}

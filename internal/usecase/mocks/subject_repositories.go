package mocks

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/mikiasgoitom/Remarks/internal/domain/contract"
	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
)

// errJoinUnsupported is returned when a scope still carries a remark filter. The in-memory
// stores need it resolved to ids first.
var errJoinUnsupported = errors.New("in-memory store cannot join remarks")

func inScope(scope entity.SubjectScope, id uint) (bool, error) {
	if scope.RemarkedBy != nil {
		return false, errJoinUnsupported
	}
	if scope.IDs == nil {
		return true, nil
	}
	want := strconv.FormatUint(uint64(id), 10)
	for _, v := range scope.IDs {
		if v == want {
			return true, nil
		}
	}
	return false, nil
}

// UserRepository is an in-memory contract.IUserRepository with soft deletion.
type UserRepository struct {
	mu     sync.Mutex
	users  map[uint]*entity.User
	nextID uint
}

var _ contract.IUserRepository = (*UserRepository)(nil)

func NewUserRepository() *UserRepository {
	return &UserRepository{users: map[uint]*entity.User{}}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email || u.Username == user.Username {
			return entity.ErrUserExists
		}
	}
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *UserRepository) find(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.DeletedAt == nil && match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, entity.ErrUserNotFound
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Username == username })
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.Email == email })
}

func (r *UserRepository) ListUsers(ctx context.Context, scope entity.SubjectScope) ([]entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.User
	for _, u := range r.users {
		if u.DeletedAt != nil {
			continue
		}
		ok, err := inScope(scope, u.ID)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id uint, permanent bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || (u.DeletedAt != nil && !permanent) {
		return entity.ErrUserNotFound
	}
	if permanent {
		delete(r.users, id)
		return nil
	}
	now := time.Now()
	u.DeletedAt = &now
	return nil
}

// PostRepository is an in-memory contract.IPostRepository with soft deletion.
type PostRepository struct {
	mu     sync.Mutex
	posts  map[uint]*entity.Post
	nextID uint
}

var _ contract.IPostRepository = (*PostRepository)(nil)

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: map[uint]*entity.Post{}}
}

func (r *PostRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	post.ID = r.nextID
	cp := *post
	r.posts[post.ID] = &cp
	return nil
}

func (r *PostRepository) GetPostByID(ctx context.Context, id uint) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok || p.DeletedAt != nil {
		return nil, entity.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *PostRepository) GetPostIncludingDeleted(ctx context.Context, id uint) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, entity.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *PostRepository) ListPosts(ctx context.Context, filter entity.PostFilter) ([]entity.Post, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []entity.Post
	for _, p := range r.posts {
		if p.DeletedAt != nil || (filter.AuthorID != 0 && p.AuthorID != filter.AuthorID) {
			continue
		}
		ok, err := inScope(filter.SubjectScope, p.ID)
		if err != nil {
			return nil, 0, err
		}
		if ok {
			all = append(all, *p)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	total := int64(len(all))
	if filter.PageSize > 0 {
		start := (filter.Page - 1) * filter.PageSize
		if start < 0 {
			start = 0
		}
		if start > len(all) {
			start = len(all)
		}
		end := start + filter.PageSize
		if end > len(all) {
			end = len(all)
		}
		all = all[start:end]
	}
	return all, total, nil
}

func (r *PostRepository) DeletePost(ctx context.Context, id uint, permanent bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok || (p.DeletedAt != nil && !permanent) {
		return entity.ErrPostNotFound
	}
	if permanent {
		delete(r.posts, id)
		return nil
	}
	now := time.Now()
	p.DeletedAt = &now
	return nil
}

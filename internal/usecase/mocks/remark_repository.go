package mocks

import (
	"context"
	"sort"
	"strconv"
	"sync"

	"github.com/mikiasgoitom/Remarks/internal/domain/contract"
	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
)

// RemarkRepository is an in-memory contract.IRemarkRepository that enforces the
// one-remark-per-pair constraint the way the real stores do.
type RemarkRepository struct {
	mu     sync.Mutex
	rows   map[string]entity.Remark
	nextID int

	// BeforeWrite runs before Create and Replace touch the rows, letting tests simulate a
	// concurrent writer.
	BeforeWrite func(r *RemarkRepository)
	// Err, when set, is returned by every call.
	Err error
}

var _ contract.IRemarkRepository = (*RemarkRepository)(nil)

func NewRemarkRepository() *RemarkRepository {
	return &RemarkRepository{rows: make(map[string]entity.Remark)}
}

// Insert stores a remark directly, bypassing BeforeWrite.
func (r *RemarkRepository) Insert(remark entity.Remark) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(&remark)
}

// All returns a snapshot of the stored remarks ordered by id.
func (r *RemarkRepository) All() []entity.Remark {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Remark, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i].ID)
		b, _ := strconv.Atoi(out[j].ID)
		return a < b
	})
	return out
}

func (r *RemarkRepository) FindOne(ctx context.Context, filter entity.RemarkFilter) (*entity.Remark, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	for _, row := range r.All() {
		if matches(row, filter) {
			row := row
			return &row, nil
		}
	}
	return nil, entity.ErrRemarkNotFound
}

func (r *RemarkRepository) Exists(ctx context.Context, filter entity.RemarkFilter) (bool, error) {
	n, err := r.Count(ctx, filter)
	return n > 0, err
}

func (r *RemarkRepository) Create(ctx context.Context, remark *entity.Remark) error {
	if r.Err != nil {
		return r.Err
	}
	if r.BeforeWrite != nil {
		r.BeforeWrite(r)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.insertLocked(remark)
}

func (r *RemarkRepository) Replace(ctx context.Context, oldID string, remark *entity.Remark) error {
	if r.Err != nil {
		return r.Err
	}
	if r.BeforeWrite != nil {
		r.BeforeWrite(r)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	old, had := r.rows[oldID]
	delete(r.rows, oldID)
	if err := r.insertLocked(remark); err != nil {
		if had {
			r.rows[oldID] = old
		}
		return err
	}
	return nil
}

func (r *RemarkRepository) DeleteMany(ctx context.Context, filter entity.RemarkFilter) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, row := range r.rows {
		if matches(row, filter) {
			delete(r.rows, id)
			n++
		}
	}
	return n, nil
}

func (r *RemarkRepository) Count(ctx context.Context, filter entity.RemarkFilter) (int64, error) {
	if r.Err != nil {
		return 0, r.Err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, row := range r.rows {
		if matches(row, filter) {
			n++
		}
	}
	return n, nil
}

// SubjectIDs lets the fake stand in for a store that cannot join subjects.
func (r *RemarkRepository) SubjectIDs(ctx context.Context, filter entity.RemarkFilter) ([]string, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	seen := map[string]bool{}
	ids := []string{}
	for _, row := range r.All() {
		if matches(row, filter) && !seen[row.Subject.ID] {
			seen[row.Subject.ID] = true
			ids = append(ids, row.Subject.ID)
		}
	}
	return ids, nil
}

func (r *RemarkRepository) insertLocked(remark *entity.Remark) error {
	for _, row := range r.rows {
		if row.Subject == remark.Subject && row.Actor == remark.Actor {
			return entity.ErrRemarkConflict
		}
	}
	r.nextID++
	remark.ID = strconv.Itoa(r.nextID)
	r.rows[remark.ID] = *remark
	return nil
}

func matches(row entity.Remark, f entity.RemarkFilter) bool {
	switch {
	case f.Subject.Type != "" && row.Subject.Type != f.Subject.Type,
		f.Subject.ID != "" && row.Subject.ID != f.Subject.ID,
		f.Actor.Type != "" && row.Actor.Type != f.Actor.Type,
		f.Actor.ID != "" && row.Actor.ID != f.Actor.ID,
		f.Kind != entity.RemarkKindAll && row.Kind != f.Kind:
		return false
	}
	return true
}

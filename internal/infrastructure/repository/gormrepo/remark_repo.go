package gormrepo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"

	"github.com/mikiasgoitom/Remarks/internal/domain/contract"
	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
)

// RemarkRepository stores remarks in a relational database through gorm.
type RemarkRepository struct {
	db *gorm.DB
}

// NewRemarkRepository creates and returns a new RemarkRepository instance.
func NewRemarkRepository(db *gorm.DB) *RemarkRepository {
	return &RemarkRepository{db: db}
}

var _ contract.IRemarkRepository = (*RemarkRepository)(nil)

func (r *RemarkRepository) FindOne(ctx context.Context, filter entity.RemarkFilter) (*entity.Remark, error) {
	var m remarkModel
	err := r.db.WithContext(ctx).Scopes(matchRemarks(filter)).Order("id").Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrRemarkNotFound
		}
		return nil, fmt.Errorf("failed to retrieve remark: %w", err)
	}
	return m.toEntity(), nil
}

func (r *RemarkRepository) Exists(ctx context.Context, filter entity.RemarkFilter) (bool, error) {
	var ids []uint
	err := r.db.WithContext(ctx).Model(&remarkModel{}).Scopes(matchRemarks(filter)).Limit(1).Pluck("id", &ids).Error
	if err != nil {
		return false, fmt.Errorf("failed to check remark: %w", err)
	}
	return len(ids) > 0, nil
}

func (r *RemarkRepository) Create(ctx context.Context, remark *entity.Remark) error {
	m := remarkFromEntity(remark)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isDuplicate(err) {
			return entity.ErrRemarkConflict
		}
		return fmt.Errorf("failed to create remark: %w", err)
	}
	remark.ID = strconv.FormatUint(uint64(m.ID), 10)
	return nil
}

// Replace swaps the stored remark for a new one inside a single transaction.
func (r *RemarkRepository) Replace(ctx context.Context, oldID string, remark *entity.Remark) error {
	m := remarkFromEntity(remark)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", oldID).Delete(&remarkModel{}).Error; err != nil {
			return err
		}
		return tx.Create(m).Error
	})
	if err != nil {
		if isDuplicate(err) {
			return entity.ErrRemarkConflict
		}
		return fmt.Errorf("failed to replace remark %s: %w", oldID, err)
	}
	remark.ID = strconv.FormatUint(uint64(m.ID), 10)
	return nil
}

func (r *RemarkRepository) DeleteMany(ctx context.Context, filter entity.RemarkFilter) (int64, error) {
	res := r.db.WithContext(ctx).Scopes(matchRemarks(filter)).Delete(&remarkModel{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete remarks: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *RemarkRepository) Count(ctx context.Context, filter entity.RemarkFilter) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&remarkModel{}).Scopes(matchRemarks(filter)).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count remarks: %w", err)
	}
	return n, nil
}

// matchRemarks restricts a remarks query to the non-zero fields of filter.
func matchRemarks(filter entity.RemarkFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Subject.Type != "" {
			db = db.Where(remarksTable+".subject_type = ?", filter.Subject.Type)
		}
		if filter.Subject.ID != "" {
			db = db.Where(remarksTable+".subject_id = ?", filter.Subject.ID)
		}
		if filter.Actor.Type != "" {
			db = db.Where(remarksTable+".actor_type = ?", filter.Actor.Type)
		}
		if filter.Actor.ID != "" {
			db = db.Where(remarksTable+".actor_id = ?", filter.Actor.ID)
		}
		if filter.Kind != entity.RemarkKindAll {
			db = db.Where(remarksTable+".kind = ?", int8(filter.Kind))
		}
		return db
	}
}

// WhereRemarkedBy returns a scope that keeps the rows of table whose key column has a remark
// matching filter. The check is an EXISTS sub-query, so it composes with any other clause.
// Subject.Type of the filter is the type tag those rows carry.
func WhereRemarkedBy(filter entity.RemarkFilter, table, key string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		filter.Subject.ID = ""
		castType := "VARCHAR(64)"
		if db.Dialector != nil && db.Dialector.Name() == "mysql" {
			castType = "CHAR(64)"
		}
		sub := db.Session(&gorm.Session{NewDB: true}).
			Table(remarksTable).
			Select("1").
			Where(fmt.Sprintf("%s.subject_id = CAST(%s.%s AS %s)", remarksTable, table, key, castType))
		sub = matchRemarks(filter)(sub)
		return db.Where("EXISTS (?)", sub)
	}
}

// withinScope applies a subject scope to a query over table keyed by an integer key column.
func withinScope(scope entity.SubjectScope, table, key string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if scope.IDs != nil {
			ids := make([]uint64, 0, len(scope.IDs))
			for _, raw := range scope.IDs {
				if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
					ids = append(ids, id)
				}
			}
			if len(ids) == 0 {
				return db.Where("1 = 0")
			}
			db = db.Where(fmt.Sprintf("%s.%s IN ?", table, key), ids)
		}
		if scope.RemarkedBy != nil {
			db = WhereRemarkedBy(*scope.RemarkedBy, table, key)(db)
		}
		return db
	}
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate")
}

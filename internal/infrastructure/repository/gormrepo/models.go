package gormrepo

import (
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/mikiasgoitom/Remarks/internal/domain/entity"
)

const (
	remarksTable = "remarks_remarks"
	postsTable   = "posts"
	usersTable   = "users"
)

// remarkModel is the remark row. One row per (subject, actor) pair.
type remarkModel struct {
	ID          uint   `gorm:"primaryKey"`
	SubjectID   string `gorm:"size:64;not null;uniqueIndex:idx_remarks_pair,priority:1;index:idx_remarks_subject,priority:2"`
	SubjectType string `gorm:"size:64;not null;uniqueIndex:idx_remarks_pair,priority:2;index:idx_remarks_subject,priority:1"`
	ActorID     string `gorm:"size:64;not null;uniqueIndex:idx_remarks_pair,priority:3;index:idx_remarks_actor,priority:2"`
	ActorType   string `gorm:"size:64;not null;uniqueIndex:idx_remarks_pair,priority:4;index:idx_remarks_actor,priority:1"`
	Kind        int8   `gorm:"not null"`
	CreatedAt   *int64 `gorm:"autoCreateTime:false"`
}

func (remarkModel) TableName() string { return remarksTable }

func (m *remarkModel) toEntity() *entity.Remark {
	return &entity.Remark{
		ID:        strconv.FormatUint(uint64(m.ID), 10),
		Subject:   entity.Ref{Type: m.SubjectType, ID: m.SubjectID},
		Actor:     entity.Ref{Type: m.ActorType, ID: m.ActorID},
		Kind:      entity.RemarkKind(m.Kind),
		CreatedAt: m.CreatedAt,
	}
}

func remarkFromEntity(r *entity.Remark) *remarkModel {
	return &remarkModel{
		SubjectType: r.Subject.Type,
		SubjectID:   r.Subject.ID,
		ActorType:   r.Actor.Type,
		ActorID:     r.Actor.ID,
		Kind:        int8(r.Kind),
		CreatedAt:   r.CreatedAt,
	}
}

type userModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:64;not null;uniqueIndex"`
	Email        string `gorm:"size:255;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:16;not null;default:user"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (userModel) TableName() string { return usersTable }

func (m *userModel) toEntity() *entity.User {
	u := &entity.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entity.UserRole(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		u.DeletedAt = &t
	}
	return u
}

type postModel struct {
	ID        uint   `gorm:"primaryKey"`
	AuthorID  uint   `gorm:"not null;index"`
	Title     string `gorm:"size:255;not null"`
	Body      string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (postModel) TableName() string { return postsTable }

func (m *postModel) toEntity() *entity.Post {
	p := &entity.Post{
		ID:        m.ID,
		AuthorID:  m.AuthorID,
		Title:     m.Title,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		p.DeletedAt = &t
	}
	return p
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&postModel{},
		&remarkModel{},
	)
}

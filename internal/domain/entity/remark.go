package entity

import (
	"fmt"
	"strings"
)

// RemarkKind classifies a remark.
type RemarkKind int

const (
	// RemarkKindAll matches any kind. It is only valid as a filter and is never stored.
	RemarkKindAll     RemarkKind = 0
	RemarkKindLike    RemarkKind = 1
	RemarkKindDislike RemarkKind = 2
)

// IsStorable reports whether k can be persisted on a remark.
func (k RemarkKind) IsStorable() bool {
	return k == RemarkKindLike || k == RemarkKindDislike
}

// IsFilter reports whether k can be used to select remarks.
func (k RemarkKind) IsFilter() bool {
	return k == RemarkKindAll || k.IsStorable()
}

func (k RemarkKind) String() string {
	switch k {
	case RemarkKindAll:
		return "all"
	case RemarkKindLike:
		return "like"
	case RemarkKindDislike:
		return "dislike"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseRemarkKind converts the text form used by the API into a RemarkKind.
func ParseRemarkKind(s string) (RemarkKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all", "":
		return RemarkKindAll, nil
	case "like", "likes":
		return RemarkKindLike, nil
	case "dislike", "dislikes":
		return RemarkKindDislike, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Ref identifies any record that takes part in a remark, on either side.
type Ref struct {
	Type string `json:"type" bson:"type"`
	ID   string `json:"id" bson:"id"`
}

// NewRef builds a Ref from a type tag and any printable key.
func NewRef(typ string, id any) Ref {
	return Ref{Type: typ, ID: fmt.Sprint(id)}
}

// Valid reports whether r points at a persisted record.
func (r Ref) Valid() bool {
	return r.Type != "" && r.ID != "" && r.ID != "0"
}

func (r Ref) String() string {
	return r.Type + ":" + r.ID
}

// Subject is implemented by records that can receive remarks.
type Subject interface {
	RemarkSubject() Ref
}

// Actor is implemented by records that can make remarks.
type Actor interface {
	RemarkActor() Ref
}

// Remark is a single (subject, actor) association.
type Remark struct {
	ID        string     `json:"id" bson:"_id,omitempty"`
	Subject   Ref        `json:"subject" bson:"subject"`
	Actor     Ref        `json:"actor" bson:"actor"`
	Kind      RemarkKind `json:"kind" bson:"kind"`
	CreatedAt *int64     `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// RemarkFilter selects remarks. Zero-valued refs and RemarkKindAll match anything.
type RemarkFilter struct {
	Subject Ref
	Actor   Ref
	Kind    RemarkKind
}

// SubjectScope restricts a listing of subjects. RemarkedBy is joined against the remark
// table by stores that hold both; IDs is the already resolved form, nil meaning no restriction.
type SubjectScope struct {
	RemarkedBy *RemarkFilter
	IDs        []string
}

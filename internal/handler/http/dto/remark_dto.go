package dto

import "github.com/mikiasgoitom/Remarks/internal/domain/entity"

// RemarkSummaryResponse reports the counts on a subject and, for an authenticated caller, the
// caller's own remark on it.
type RemarkSummaryResponse struct {
	Subject  entity.Ref `json:"subject"`
	Likes    int64      `json:"likes"`
	Dislikes int64      `json:"dislikes"`
	Liked    *bool      `json:"liked,omitempty"`
	Disliked *bool      `json:"disliked,omitempty"`
	Remarked *bool      `json:"remarked,omitempty"`
}

// ToggleRemarkResponse tells whether the toggled remark now exists.
type ToggleRemarkResponse struct {
	Subject entity.Ref `json:"subject"`
	Kind    string     `json:"kind"`
	Active  bool       `json:"active"`
}

type ClearRemarksQuery struct {
	Kind string `form:"kind" binding:"omitempty,remarkkind"`
}

type ClearRemarksResponse struct {
	Removed int64 `json:"removed"`
}

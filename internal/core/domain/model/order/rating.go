package order

import (
	"errors"

	"negcom/internal/core/domain/model/kernel"
	"negcom/internal/pkg/errs"
)

const (
	// RatingScoreMin is the lowest accepted rating score.
	RatingScoreMin = 1
	// RatingScoreMax is the highest accepted rating score.
	RatingScoreMax = 5
	// RatingCommentMaxLen is the maximum length of the optional comment.
	RatingCommentMaxLen = 500
)

// ErrRatingIsNotConstructed is returned when a Rating instance was not
// created through NewRating.
var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

// Rating is the buyer's one-time feedback on a completed purchase: an integer
// score from RatingScoreMin to RatingScoreMax and an optional comment.
//
// A rating attaches to its order exactly once and is never overwritten;
// the uniqueness is enforced both here (the order rejects a second rating)
// and by a storage-level unique constraint on the order reference.
type Rating struct {
	id      kernel.UUID
	score   int
	comment string

	isConstructed bool
}

// NewRating creates a validated rating. The score must be an integer in
// [RatingScoreMin, RatingScoreMax]; the comment is optional and limited to
// RatingCommentMaxLen characters.
func NewRating(id kernel.UUID, score int, comment string) (*Rating, error) {
	rating := &Rating{
		isConstructed: true,
	}

	if err := errors.Join(
		rating.setID(id),
		rating.setScore(score),
		rating.setComment(comment),
	); err != nil {
		return nil, err
	}

	return rating, nil
}

// Validate ensures the Rating instance was properly constructed.
func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}

	return nil
}

// ID returns the rating's unique identifier.
func (r *Rating) ID() kernel.UUID {
	return r.id
}

// Score returns the star score.
func (r *Rating) Score() int {
	return r.score
}

// Comment returns the optional comment; empty when the buyer left none.
func (r *Rating) Comment() string {
	return r.comment
}

func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setScore(score int) error {
	if score < RatingScoreMin || score > RatingScoreMax {
		return errs.NewValueIsOutOfRangeError("rating", score, RatingScoreMin, RatingScoreMax)
	}
	r.score = score
	return nil
}

func (r *Rating) setComment(comment string) error {
	if len(comment) > RatingCommentMaxLen {
		return errs.NewValueIsOutOfRangeError("comment", len(comment), 0, RatingCommentMaxLen)
	}
	r.comment = comment
	return nil
}

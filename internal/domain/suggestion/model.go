package suggestion

import "errors"

// Max length constants for visitor-editable fields.
const (
	MaxCommentLength = 2000
)

// Domain errors
var (
	ErrEmptyID        = errors.New("suggestion id cannot be empty")
	ErrEmptyProductID = errors.New("suggestion productId cannot be empty")
	ErrEmptyComment   = errors.New("suggestion comment cannot be empty")
	ErrCommentTooLong = errors.New("suggestion comment cannot exceed 2000 characters")
)

// Suggestion is a visitor-submitted note attached to a product. ProductID is
// a soft reference: it is never checked against the catalog at write time,
// and a dangling reference degrades to placeholder product data at read time.
type Suggestion struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Comment   string `json:"comment"`
}

// Validate checks if the Suggestion has valid data.
// PRE: Suggestion struct is populated
// POST: Returns nil if valid, error otherwise
func (s *Suggestion) Validate() error {
	if s.ID == "" {
		return ErrEmptyID
	}
	if s.ProductID == "" {
		return ErrEmptyProductID
	}
	if s.Comment == "" {
		return ErrEmptyComment
	}
	if len(s.Comment) > MaxCommentLength {
		return ErrCommentTooLong
	}
	return nil
}

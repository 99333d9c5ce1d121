// Package results stores the paired model responses produced by a query run.
package results

import (
	"github.com/at-ishikawa/gsmic/internal/dataset"
)

// Record is a question pair with the responses the model returned for both variants.
// A nil response means the query for that variant failed; the reason is kept in the *Error field.
type Record struct {
	ID               int     `json:"id"`
	OriginalQuestion string  `json:"original_question"`
	OriginalResponse *string `json:"original_response"`
	OriginalError    string  `json:"original_error,omitempty"`
	NewQuestion      string  `json:"new_question"`
	NewResponse      *string `json:"new_response"`
	NewError         string  `json:"new_error,omitempty"`
	dataset.Metadata
}

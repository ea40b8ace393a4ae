// README: LLM usage quota model.
package aiusage

import "errors"

// ErrQuotaExceeded is returned when the daily LLM call budget is spent.
var ErrQuotaExceeded = errors.New("llm quota exceeded")

// DefaultCalls is the number of LLM calls granted per day and key.
const DefaultCalls = 200

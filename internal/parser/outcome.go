package parser

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/landifrancesco/TradeStatEngine/internal/model"
)

// SkipSentinel marks a journal entry for a trade that never executed.
const SkipSentinel = "#"

// ErrTradeSkipped signals that the document must not be ingested at all.
var ErrTradeSkipped = errors.New("trade marked as not executed")

var nonNumericRe = regexp.MustCompile(`[^\d.\-+]`)

// ClassifyOutcome turns the raw profit/loss text into a signed value and an
// outcome. Amounts within 0.5 of zero count as break-even, so residual fees
// and rounding noise do not register as a directional result. A non-sentinel
// value that does not parse yields Unknown with no numeric value; the record
// still ingests.
func ClassifyOutcome(raw string) (*float64, model.Outcome, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == SkipSentinel {
		return nil, "", ErrTradeSkipped
	}

	cleaned := nonNumericRe.ReplaceAllString(trimmed, "")
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil, model.OutcomeUnknown, nil
	}

	switch {
	case value > 0.5:
		return &value, model.OutcomeWin, nil
	case math.Abs(value) < 0.5:
		return &value, model.OutcomeBreakEven, nil
	default:
		return &value, model.OutcomeLoss, nil
	}
}

// FirstRiskReward extracts the leading component of a possibly multi-valued
// R/R field like "2.0 -> 3.5"; only the first component feeds analytics.
func FirstRiskReward(raw string) (float64, bool) {
	first := strings.TrimSpace(strings.SplitN(raw, "->", 2)[0])
	if first == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(first, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

package parser

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"github.com/landifrancesco/TradeStatEngine/internal/model"

	"gorm.io/datatypes"
)

// RejectionError reports why a document could not become a trade record.
// Rejections are per-document diagnostics, never fatal to a batch.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}

// Assembler combines extraction, temporal derivation and outcome
// classification into one immutable trade record.
type Assembler struct {
	profile *Profile
}

func NewAssembler(profile *Profile) *Assembler {
	return &Assembler{profile: profile}
}

var filenameDateRe = regexp.MustCompile(`\d{2}-\d{2}-\d{4}`)

// Assemble builds one trade record from a document. It returns
// ErrTradeSkipped for the skip sentinel and *RejectionError when a critical
// field is missing or unparseable; optional fields pass through empty.
func (a *Assembler) Assemble(accountID uint, filename, text string) (*model.Trade, error) {
	fields := a.profile.Extract(text)

	plRaw, ok := fields[FieldProfitLoss]
	if !ok {
		return nil, &RejectionError{Reason: "missing profit/loss field"}
	}

	value, outcome, err := ClassifyOutcome(plRaw)
	if err != nil {
		return nil, err
	}

	openedRaw, okOpened := fields[FieldOpened]
	closedRaw, okClosed := fields[FieldClosed]
	if !okOpened || !okClosed {
		return nil, &RejectionError{Reason: "missing opened or closed timestamp"}
	}

	temporal, err := DeriveTemporal(openedRaw, closedRaw)
	if err != nil {
		return nil, &RejectionError{Reason: err.Error()}
	}

	// Keep the numeric text once it parsed, the raw value otherwise.
	profitLoss := plRaw
	if value != nil {
		profitLoss = nonNumericRe.ReplaceAllString(plRaw, "")
	}

	rawJSON, err := json.Marshal(fields)
	if err != nil {
		return nil, &RejectionError{Reason: fmt.Sprintf("could not encode raw fields: %v", err)}
	}

	return &model.Trade{
		AccountID:            accountID,
		Filename:             filename,
		PositionSize:         fields[FieldPositionSize],
		PipsGainedLost:       fields[FieldPips],
		RiskReward:           fields[FieldRiskReward],
		StrategyUsed:         fields[FieldStrategy],
		OpenedAt:             temporal.OpenedAt,
		ClosedAt:             temporal.ClosedAt,
		ProfitLoss:           profitLoss,
		ProfitLossValue:      value,
		OpenDay:              temporal.OpenDay,
		OpenTime:             temporal.OpenTime,
		OpenMonth:            temporal.OpenMonth,
		TradeDurationMinutes: temporal.DurationMinutes,
		Killzone:             temporal.Killzone,
		TimeWriting:          a.timeWriting(fields, filename),
		TradeOutcome:         outcome,
		RawFields:            datatypes.JSON(rawJSON),
	}, nil
}

// timeWriting resolves the optional authoring time through the profile's one
// strategy: the inline label, or a date stamp in the filename. It never
// rejects; a missing or malformed authoring time just stays absent.
func (a *Assembler) timeWriting(fields map[Field]string, filename string) *time.Time {
	if a.profile.timeWritingFromFilename {
		stamp := filenameDateRe.FindString(filename)
		if stamp == "" {
			return nil
		}
		t, err := time.Parse(FilenameDateLayout, stamp)
		if err != nil {
			return nil
		}
		return &t
	}

	raw, ok := fields[FieldTimeWriting]
	if !ok {
		return nil
	}
	t, err := time.Parse(WritingLayout, raw)
	if err != nil {
		return nil
	}
	return &t
}

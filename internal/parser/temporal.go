package parser

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/landifrancesco/TradeStatEngine/internal/model"
	"github.com/landifrancesco/TradeStatEngine/pkg/utils"
)

const (
	// TimestampLayout is the journal's fixed day/month/year hour:minute format.
	TimestampLayout = "02/01/2006 15:04"
	// WritingLayout is the format of the inline "Time writing" label.
	WritingLayout = "15:04 02/01/2006"
	// FilenameDateLayout is the date stamp some journal filenames carry.
	FilenameDateLayout = "02-01-2006"
)

// TemporalFields holds everything derived from the opened/closed timestamps.
type TemporalFields struct {
	OpenedAt        time.Time
	ClosedAt        time.Time
	DurationMinutes float64
	OpenDay         string
	OpenTime        string
	OpenMonth       string
	Killzone        model.Killzone
}

// DeriveTemporal parses both timestamps and computes the calendar fields. A
// close earlier than the open clamps the duration to zero; a parse failure of
// either timestamp fails the whole derivation.
func DeriveTemporal(openedRaw, closedRaw string) (*TemporalFields, error) {
	opened, err := time.Parse(TimestampLayout, strings.TrimSpace(openedRaw))
	if err != nil {
		return nil, fmt.Errorf("unparseable opened timestamp %q: %w", openedRaw, err)
	}
	closed, err := time.Parse(TimestampLayout, strings.TrimSpace(closedRaw))
	if err != nil {
		return nil, fmt.Errorf("unparseable closed timestamp %q: %w", closedRaw, err)
	}

	duration := math.Round(closed.Sub(opened).Minutes())
	if duration < 0 {
		duration = 0
	}

	return &TemporalFields{
		OpenedAt:        opened,
		ClosedAt:        closed,
		DurationMinutes: duration,
		OpenDay:         opened.Weekday().String(),
		OpenTime:        opened.Format("15:04"),
		OpenMonth:       opened.Month().String(),
		Killzone:        DetermineKillzone(openedRaw),
	}, nil
}

// DetermineKillzone classifies the opening hour as Europe/Rome wall-clock
// time: [2,5) London, [7,10) New York, anything else Other. Any failure maps
// to Unknown instead of propagating.
func DetermineKillzone(openedRaw string) model.Killzone {
	loc, err := utils.RomeLocation()
	if err != nil {
		return model.KillzoneUnknown
	}
	opened, err := time.ParseInLocation(TimestampLayout, strings.TrimSpace(openedRaw), loc)
	if err != nil {
		return model.KillzoneUnknown
	}

	switch hour := opened.Hour(); {
	case hour >= 2 && hour < 5:
		return model.KillzoneLondon
	case hour >= 7 && hour < 10:
		return model.KillzoneNewYork
	default:
		return model.KillzoneOther
	}
}

package parser

import (
	"fmt"
	"regexp"
)

// Field names one labeled entry of the journal template.
type Field string

const (
	FieldTimeWriting  Field = "time_writing"
	FieldPositionSize Field = "position_size"
	FieldOpened       Field = "opened"
	FieldClosed       Field = "closed"
	FieldPips         Field = "pips_gained_lost"
	FieldProfitLoss   Field = "profit_loss"
	FieldRiskReward   Field = "risk_reward"
	FieldStrategy     Field = "strategy_used"
)

const (
	ProfileJournal = "journal"
	ProfileStrict  = "strict"
)

// Profile is one named field-extraction strategy. The journal template
// drifted across the years; each variant gets a profile instead of a fork of
// the parser, and a batch runs under exactly one profile.
type Profile struct {
	Name     string
	patterns map[Field]*regexp.Regexp

	// timeWritingFromFilename switches the authoring-time source from the
	// inline "Time writing" label to a DD-MM-YYYY stamp in the filename.
	timeWritingFromFilename bool
}

// journalPatterns tolerate label spacing, the optional colon and any value
// text up to end of line; markdown emphasis is cleaned afterwards.
var journalPatterns = map[Field]*regexp.Regexp{
	FieldTimeWriting:  regexp.MustCompile(`(?i)Time\s*writing\s*:\s*(\d{2}:\d{2}\s\d{2}/\d{2}/\d{4})`),
	FieldPositionSize: regexp.MustCompile(`(?i)Position\s*Size\s*:?\s*([^\n]+)`),
	FieldOpened:       regexp.MustCompile(`(?i)Opened\s*:?\s*([^\n]+)`),
	FieldClosed:       regexp.MustCompile(`(?i)Closed\s*:?\s*([^\n]+)`),
	FieldPips:         regexp.MustCompile(`(?i)Pips\s*Gained/Lost\s*:?\s*([^\n]+)`),
	FieldProfitLoss:   regexp.MustCompile(`(?i)Profit/Loss\s*:?\s*([^\n]+)`),
	FieldRiskReward:   regexp.MustCompile(`(?i)R/R\s*:?\s*([^\n]+)`),
	FieldStrategy:     regexp.MustCompile(`(?i)Strategy\s*Used\s*:?\s*([^\n]+)`),
}

// strictPatterns anchor the value shapes themselves, rejecting anything that
// does not look like the current template.
var strictPatterns = map[Field]*regexp.Regexp{
	FieldPositionSize: regexp.MustCompile(`(?i)Position\s*Size:\s*[*_~]*([\d.]+)`),
	FieldOpened:       regexp.MustCompile(`(?i)Opened:\s*[*_~]*(\d{2}/\d{2}/\d{4} \d{2}:\d{2})`),
	FieldClosed:       regexp.MustCompile(`(?i)Closed:\s*[*_~]*(\d{2}/\d{2}/\d{4} \d{2}:\d{2})`),
	FieldPips:         regexp.MustCompile(`(?i)Pips\s*Gained/Lost:\s*[*_~]*([+-]?\d+)`),
	FieldProfitLoss:   regexp.MustCompile(`(?i)Profit/Loss:\s*[*_~]*(#|[+-]?\d+(?:\.\d+)?[€$]?)`),
	FieldRiskReward:   regexp.MustCompile(`(?i)R/R:\s*[*_~]*([\d.]+(?:\s*->\s*[\d.]+)*)`),
	FieldStrategy:     regexp.MustCompile(`(?i)Strategy\s*Used:\s*[*_~]*([^\n*_~]+)`),
}

// ProfileByName resolves a profile; the empty name means the journal default.
func ProfileByName(name string) (*Profile, error) {
	switch name {
	case ProfileJournal, "":
		return &Profile{Name: ProfileJournal, patterns: journalPatterns}, nil
	case ProfileStrict:
		return &Profile{
			Name:                    ProfileStrict,
			patterns:                strictPatterns,
			timeWritingFromFilename: true,
		}, nil
	default:
		return nil, fmt.Errorf("unknown ingestion profile %q", name)
	}
}

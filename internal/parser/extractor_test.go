package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileByName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantName string
		wantErr  bool
	}{
		{name: "journal profile", input: "journal", wantName: ProfileJournal},
		{name: "strict profile", input: "strict", wantName: ProfileStrict},
		{name: "empty name falls back to journal", input: "", wantName: ProfileJournal},
		{name: "unknown profile", input: "legacy-v3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := ProfileByName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, profile.Name)
		})
	}
}

func TestProfile_Extract_Journal(t *testing.T) {
	profile, err := ProfileByName(ProfileJournal)
	require.NoError(t, err)

	text := "# Trade\n" +
		"Time writing: 21:30 12/05/2024\n" +
		"- Position Size: *0.5*\n" +
		"- opened: **12/05/2024 10:00**\n" +
		"- Closed : 12/05/2024 11:30\n" +
		"- Pips Gained/Lost: __+12__\n" +
		"- Profit/Loss **+120.00€**\n" +
		"- R/R: 2.0 -> 3.5\n" +
		"- Strategy Used: **Box Setup**\n"

	fields := profile.Extract(text)

	assert.Equal(t, "21:30 12/05/2024", fields[FieldTimeWriting])
	assert.Equal(t, "0.5", fields[FieldPositionSize])
	assert.Equal(t, "12/05/2024 10:00", fields[FieldOpened])
	assert.Equal(t, "12/05/2024 11:30", fields[FieldClosed])
	assert.Equal(t, "+12", fields[FieldPips])
	assert.Equal(t, "+120.00€", fields[FieldProfitLoss])
	assert.Equal(t, "2.0 -> 3.5", fields[FieldRiskReward])
	assert.Equal(t, "Box Setup", fields[FieldStrategy])
}

func TestProfile_Extract_UnderscoredStrategyName(t *testing.T) {
	profile, err := ProfileByName(ProfileJournal)
	require.NoError(t, err)

	fields := profile.Extract("Strategy Used: box_set_up\n")
	assert.Equal(t, "box_set_up", fields[FieldStrategy])
}

func TestProfile_Extract_MissingFieldsAreAbsent(t *testing.T) {
	profile, err := ProfileByName(ProfileJournal)
	require.NoError(t, err)

	fields := profile.Extract("Opened: 12/05/2024 10:00\nProfit/Loss: #\n")

	assert.Contains(t, fields, FieldOpened)
	assert.Contains(t, fields, FieldProfitLoss)
	assert.NotContains(t, fields, FieldClosed)
	assert.NotContains(t, fields, FieldStrategy)
	assert.NotContains(t, fields, FieldRiskReward)
}

func TestProfile_Extract_Strict(t *testing.T) {
	profile, err := ProfileByName(ProfileStrict)
	require.NoError(t, err)

	text := "Position Size: **0.5**\n" +
		"Opened: **12/05/2024 10:00**\n" +
		"Closed: **12/05/2024 11:30**\n" +
		"Pips Gained/Lost: **+12**\n" +
		"Profit/Loss: **-45.50€**\n" +
		"R/R: **2.0 -> 3.5**\n" +
		"Strategy Used: **Breaker Block**\n"

	fields := profile.Extract(text)

	assert.Equal(t, "0.5", fields[FieldPositionSize])
	assert.Equal(t, "12/05/2024 10:00", fields[FieldOpened])
	assert.Equal(t, "-45.50€", fields[FieldProfitLoss])
	assert.Equal(t, "2.0 -> 3.5", fields[FieldRiskReward])
	assert.Equal(t, "Breaker Block", fields[FieldStrategy])
}

func TestProfile_Extract_StrictRejectsLooseValues(t *testing.T) {
	profile, err := ProfileByName(ProfileStrict)
	require.NoError(t, err)

	// The strict profile anchors the value shape, so a free-form date does
	// not extract at all.
	fields := profile.Extract("Opened: around ten in the morning\nProfit/Loss: #\n")

	assert.NotContains(t, fields, FieldOpened)
	assert.Equal(t, "#", fields[FieldProfitLoss])
}

func TestCleanMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bold", input: "**+120.00€**", want: "+120.00€"},
		{name: "italic", input: "*Box Setup*", want: "Box Setup"},
		{name: "underscore bold", input: "__12/05/2024 10:00__", want: "12/05/2024 10:00"},
		{name: "strikethrough", input: "~~skipped~~", want: "skipped"},
		{name: "stray markers", input: "*0.5", want: "0.5"},
		{name: "plain value untouched", input: "2.0 -> 3.5", want: "2.0 -> 3.5"},
		{name: "inner underscore kept", input: "box_setup", want: "box_setup"},
		{name: "inner underscore pair kept", input: "box_set_up", want: "box_set_up"},
		{name: "fully wrapped single markers", input: "_set aside_", want: "set aside"},
		{name: "sentinel untouched", input: "#", want: "#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanMarkdown(tt.input))
		})
	}
}

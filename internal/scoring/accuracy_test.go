package scoring

import (
	"testing"

	"github.com/at-ishikawa/gsmic/internal/dataset"
	"github.com/at-ishikawa/gsmic/internal/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	cleanLabels      = dataset.Labels{RoleLabel: "relevant", NumberLabel: "in_range", SentenceLabel: "on_topic"}
	irrelevantLabels = dataset.Labels{RoleLabel: "irrelevant", NumberLabel: "in_range", SentenceLabel: "in_topic"}
)

func newRecord(id int, answer string, originalResponse, newResponse *string, labels dataset.Labels) results.Record {
	return results.Record{
		ID:               id,
		OriginalResponse: originalResponse,
		NewResponse:      newResponse,
		Metadata: dataset.Metadata{
			Answer: dataset.Answer(answer),
			Labels: labels,
		},
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		records []results.Record
		want    Report
	}{
		{
			name: "three of four original answers are correct",
			records: []results.Record{
				newRecord(0, "8", strPtr("The answer is 8"), strPtr("8"), cleanLabels),
				newRecord(1, "3", strPtr("3"), strPtr("4"), cleanLabels),
				newRecord(2, "10", strPtr("It is 10."), strPtr("10"), cleanLabels),
				newRecord(3, "5", strPtr("I think 6"), strPtr("5"), cleanLabels),
			},
			want: Report{
				File:             "responses.json",
				OriginalAccuracy: 75,
				NewAccuracy:      75,
				Total:            4,
				OriginalCorrect:  3,
				NewCorrect:       3,
			},
		},
		{
			name: "two eligible records, one wrong on the new variant only",
			records: []results.Record{
				newRecord(0, "8", strPtr("8"), strPtr("8"), irrelevantLabels),
				newRecord(1, "12", strPtr("so 12"), strPtr("so 20"), irrelevantLabels),
			},
			want: Report{
				File:                       "responses.json",
				OriginalAccuracy:           100,
				NewAccuracy:                50,
				OriginalIrrelevantAccuracy: 100,
				NewIrrelevantAccuracy:      50,
				Total:                      2,
				IrrelevantTotal:            2,
				OriginalCorrect:            2,
				NewCorrect:                 1,
				OriginalIrrelevantCorrect:  2,
				NewIrrelevantCorrect:       1,
			},
		},
		{
			name: "failed queries and responses without digits are wrong",
			records: []results.Record{
				newRecord(0, "8", nil, strPtr("no idea"), irrelevantLabels),
				newRecord(1, "0", strPtr("zero"), nil, cleanLabels),
			},
			want: Report{
				File:            "responses.json",
				Total:           2,
				IrrelevantTotal: 1,
			},
		},
		{
			name: "irrelevant accuracy only counts irrelevant records",
			records: []results.Record{
				newRecord(0, "8", strPtr("8"), strPtr("8"), cleanLabels),
				newRecord(1, "8", strPtr("8"), strPtr("9"), irrelevantLabels),
				newRecord(2, "8", strPtr("7"), strPtr("8"), irrelevantLabels),
				newRecord(3, "8", strPtr("8"), strPtr("8"), irrelevantLabels),
			},
			want: Report{
				File:                       "responses.json",
				OriginalAccuracy:           75,
				NewAccuracy:                75,
				OriginalIrrelevantAccuracy: 200.0 / 3,
				NewIrrelevantAccuracy:      200.0 / 3,
				Total:                      4,
				IrrelevantTotal:            3,
				OriginalCorrect:            3,
				NewCorrect:                 3,
				OriginalIrrelevantCorrect:  2,
				NewIrrelevantCorrect:       2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate("responses.json", tt.records)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.OriginalIrrelevantAccuracy, got.OriginalIrrelevantAccuracy, 1e-9)
			assert.InDelta(t, tt.want.NewIrrelevantAccuracy, got.NewIrrelevantAccuracy, 1e-9)
			got.OriginalIrrelevantAccuracy = tt.want.OriginalIrrelevantAccuracy
			got.NewIrrelevantAccuracy = tt.want.NewIrrelevantAccuracy
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluate_NoIrrelevantRecords(t *testing.T) {
	got, err := Evaluate("responses.json", []results.Record{
		newRecord(0, "8", strPtr("8"), strPtr("8"), cleanLabels),
	})

	require.NoError(t, err)
	assert.Equal(t, 0, got.IrrelevantTotal)
	assert.Zero(t, got.OriginalIrrelevantAccuracy)
	assert.Zero(t, got.NewIrrelevantAccuracy)
	assert.Equal(t, float64(100), got.OriginalAccuracy)
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name            string
		records         []results.Record
		wantErrorString string
	}{
		{
			name:            "no records",
			records:         nil,
			wantErrorString: "no response records",
		},
		{
			name: "missing answer",
			records: []results.Record{
				newRecord(0, "8", strPtr("8"), strPtr("8"), cleanLabels),
				newRecord(1, "", strPtr("8"), strPtr("8"), cleanLabels),
			},
			wantErrorString: "record 1 (id 1): answer is required",
		},
		{
			name: "non-numeric answer",
			records: []results.Record{
				newRecord(4, "eight", strPtr("8"), strPtr("8"), cleanLabels),
			},
			wantErrorString: "is not an integer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Evaluate("responses.json", tt.records)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErrorString)
		})
	}
}

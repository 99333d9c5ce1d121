package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/at-ishikawa/gsmic/internal/dataset"
	"github.com/at-ishikawa/gsmic/internal/inference"
	"github.com/at-ishikawa/gsmic/internal/results"
	mock_inference "github.com/at-ishikawa/gsmic/internal/mocks/inference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr(s string) *string {
	return &s
}

var testQuestions = []dataset.Question{
	{
		OriginalQuestion: "Lucy has 5 pens. She buys 3 more. How many pens does she have?",
		NewQuestion:      "Lucy has 5 pens. Her brother is 12 years old. She buys 3 more. How many pens does she have?",
		Metadata: dataset.Metadata{
			Answer: "8",
			NSteps: json.RawMessage(`1`),
			Role:   json.RawMessage(`"Her brother"`),
			Number: json.RawMessage(`"12"`),
			Labels: dataset.Labels{RoleLabel: "irrelevant", NumberLabel: "in_range", SentenceLabel: "in_topic"},
		},
	},
	{
		OriginalQuestion: "A box has 12 candies. Tom eats 5. How many are left?",
		NewQuestion:      "A box has 12 candies. Tom's shoe size is 9. Tom eats 5. How many are left?",
		Metadata: dataset.Metadata{
			Answer: "7",
			Labels: dataset.Labels{RoleLabel: "relevant", NumberLabel: "out_range", SentenceLabel: "in_topic"},
		},
	},
}

type recordingSleeper struct {
	delays []time.Duration
	err    error
}

func (s *recordingSleeper) sleep(ctx context.Context, d time.Duration) error {
	s.delays = append(s.delays, d)
	return s.err
}

func TestRunner_Run(t *testing.T) {
	tests := []struct {
		name      string
		questions []dataset.Question
		setupMock func(m *mock_inference.MockClient)
		sleepErr  error

		want       []results.Record
		wantSleeps int
		wantErr    bool
		wantOutput []string
	}{
		{
			name:      "queries both variants of every question in order",
			questions: testQuestions,
			setupMock: func(m *mock_inference.MockClient) {
				gomock.InOrder(
					m.EXPECT().Complete(gomock.Any(), inference.NewQuestionRequest(testQuestions[0].OriginalQuestion)).Return("The answer is 8", nil),
					m.EXPECT().Complete(gomock.Any(), inference.NewQuestionRequest(testQuestions[0].NewQuestion)).Return("The answer is 20", nil),
					m.EXPECT().Complete(gomock.Any(), inference.NewQuestionRequest(testQuestions[1].OriginalQuestion)).Return("7", nil),
					m.EXPECT().Complete(gomock.Any(), inference.NewQuestionRequest(testQuestions[1].NewQuestion)).Return("7 candies", nil),
				)
			},
			want: []results.Record{
				{
					ID:               0,
					OriginalQuestion: testQuestions[0].OriginalQuestion,
					OriginalResponse: ptr("The answer is 8"),
					NewQuestion:      testQuestions[0].NewQuestion,
					NewResponse:      ptr("The answer is 20"),
					Metadata:         testQuestions[0].Metadata,
				},
				{
					ID:               1,
					OriginalQuestion: testQuestions[1].OriginalQuestion,
					OriginalResponse: ptr("7"),
					NewQuestion:      testQuestions[1].NewQuestion,
					NewResponse:      ptr("7 candies"),
					Metadata:         testQuestions[1].Metadata,
				},
			},
			wantSleeps: 2,
			wantOutput: []string{
				"Querying model for entry 1/2...",
				"Original Response: The answer is 8",
				"New Response: The answer is 20",
				"Querying model for entry 2/2...",
			},
		},
		{
			name:      "a failed query is recorded and the run continues",
			questions: testQuestions,
			setupMock: func(m *mock_inference.MockClient) {
				gomock.InOrder(
					m.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("response error 429: rate limited")),
					m.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("20", nil),
					m.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("7", nil),
					m.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("", errors.New("httpClient.Post > connection refused")),
				)
			},
			want: []results.Record{
				{
					ID:               0,
					OriginalQuestion: testQuestions[0].OriginalQuestion,
					OriginalResponse: nil,
					OriginalError:    "response error 429: rate limited",
					NewQuestion:      testQuestions[0].NewQuestion,
					NewResponse:      ptr("20"),
					Metadata:         testQuestions[0].Metadata,
				},
				{
					ID:               1,
					OriginalQuestion: testQuestions[1].OriginalQuestion,
					OriginalResponse: ptr("7"),
					NewQuestion:      testQuestions[1].NewQuestion,
					NewResponse:      nil,
					NewError:         "httpClient.Post > connection refused",
					Metadata:         testQuestions[1].Metadata,
				},
			},
			wantSleeps: 2,
			wantOutput: []string{
				"Original Response: <none>",
				"New Response: <none>",
			},
		},
		{
			name:       "no questions",
			questions:  nil,
			setupMock:  func(m *mock_inference.MockClient) {},
			want:       []results.Record{},
			wantSleeps: 0,
		},
		{
			name:      "cancelled while pausing",
			questions: testQuestions,
			setupMock: func(m *mock_inference.MockClient) {
				m.EXPECT().Complete(gomock.Any(), gomock.Any()).Return("8", nil).Times(2)
			},
			sleepErr:   context.Canceled,
			wantSleeps: 1,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockClient := mock_inference.NewMockClient(ctrl)
			tt.setupMock(mockClient)

			sleeper := &recordingSleeper{err: tt.sleepErr}
			var stdout bytes.Buffer
			r := New(mockClient, 3*time.Second,
				WithOutput(&stdout),
				WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
				WithSleep(sleeper.sleep),
			)

			got, err := r.Run(context.Background(), tt.questions)
			require.Len(t, sleeper.delays, tt.wantSleeps)
			for _, d := range sleeper.delays {
				assert.Equal(t, 3*time.Second, d)
			}

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, context.Canceled)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			for _, line := range tt.wantOutput {
				assert.Contains(t, stdout.String(), line)
			}
		})
	}
}

func TestSleepContext(t *testing.T) {
	require.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := sleepContext(ctx, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}

package runner

import (
	"context"
	"errors"
	"testing"

	"github.com/at-ishikawa/gsmic/internal/inference"
	mock_inference "github.com/at-ishikawa/gsmic/internal/mocks/inference"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestOutcome(t *testing.T) {
	succeeded := Outcome{Response: "8"}
	assert.True(t, succeeded.Succeeded())
	if assert.NotNil(t, succeeded.ResponsePtr()) {
		assert.Equal(t, "8", *succeeded.ResponsePtr())
	}
	assert.Empty(t, succeeded.ErrorMessage())

	emptyResponse := Outcome{Response: ""}
	assert.True(t, emptyResponse.Succeeded())
	assert.NotNil(t, emptyResponse.ResponsePtr())

	failed := Outcome{Err: errors.New("response error 429: rate limited")}
	assert.False(t, failed.Succeeded())
	assert.Nil(t, failed.ResponsePtr())
	assert.Equal(t, "response error 429: rate limited", failed.ErrorMessage())
}

func TestQuery(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m *mock_inference.MockClient)
		want      Outcome
	}{
		{
			name: "success",
			setupMock: func(m *mock_inference.MockClient) {
				m.EXPECT().
					Complete(gomock.Any(), inference.NewQuestionRequest("How many pens?")).
					Return("8 pens", nil)
			},
			want: Outcome{Response: "8 pens"},
		},
		{
			name: "failure",
			setupMock: func(m *mock_inference.MockClient) {
				m.EXPECT().
					Complete(gomock.Any(), gomock.Any()).
					Return("", assert.AnError)
			},
			want: Outcome{Err: assert.AnError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockClient := mock_inference.NewMockClient(ctrl)
			tt.setupMock(mockClient)

			got := Query(context.Background(), mockClient, "How many pens?")
			assert.Equal(t, tt.want, got)
		})
	}
}

package feedback_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	appfeedback "github.com/srisatyasai136/review/application/feedback"
	mailermocks "github.com/srisatyasai136/review/mocks/thirdparty/mailer"
	"github.com/srisatyasai136/review/thirdparty/mailer"
	"github.com/srisatyasai136/review/thirdparty/rabbitmq"
	"github.com/stretchr/testify/mock"
)

func TestTrainerNotifier(t *testing.T) {
	msg := rabbitmq.FeedbackSubmittedMessage{
		FeedbackID:   1,
		ClassID:      4,
		ClassTitle:   "Go Basics",
		TrainerName:  "Ravi",
		TrainerEmail: "ravi@example.com",
		Rating:       5,
	}
	tests := []struct {
		name     string
		msg      rabbitmq.FeedbackSubmittedMessage
		mockCall func(g *mailermocks.Gateway)
		wantErr  bool
	}{
		{
			name: "success: trainer emailed",
			msg:  msg,
			mockCall: func(g *mailermocks.Gateway) {
				g.On("Send", mock.Anything, mock.MatchedBy(func(e mailer.Email) bool {
					return reflect.DeepEqual(e.To, []string{"ravi@example.com"}) && e.Subject == "New feedback for Go Basics"
				})).Return(&mailer.DispatchResult{StatusCode: mailer.StatusOK}, nil).Once()
			},
		},
		{
			name: "success: trainer without email skipped",
			msg: func() rabbitmq.FeedbackSubmittedMessage {
				m := msg
				m.TrainerEmail = ""
				return m
			}(),
		},
		{
			name: "error: send failure is returned for requeue",
			msg:  msg,
			mockCall: func(g *mailermocks.Gateway) {
				g.On("Send", mock.Anything, mock.Anything).Return(nil, errors.New("smtp 421")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			gateway := mailermocks.NewGateway(t)
			if tt.mockCall != nil {
				tt.mockCall(gateway)
			}

			err := appfeedback.NewTrainerNotifier(gateway)(context.Background(), tt.msg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("handler error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

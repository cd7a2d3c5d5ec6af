package feedback

import (
	"context"
	"fmt"

	"github.com/srisatyasai136/review/thirdparty/mailer"
	"github.com/srisatyasai136/review/thirdparty/rabbitmq"
	"github.com/srisatyasai136/review/utils/logger"
	"go.uber.org/zap"
)

// NewTrainerNotifier returns the consumer handler that emails a trainer about
// new feedback on one of their classes. Trainers without an email are skipped.
func NewTrainerNotifier(gateway mailer.Gateway) rabbitmq.Handler {
	return func(ctx context.Context, msg rabbitmq.FeedbackSubmittedMessage) error {
		if msg.TrainerEmail == "" {
			logger.Info("[NotifyTrainer] trainer has no email, skipping",
				zap.Uint64("feedback_id", msg.FeedbackID),
				zap.Uint64("class_id", msg.ClassID))
			return nil
		}

		recommend := "no"
		if msg.WouldRecommend {
			recommend = "yes"
		}
		body := fmt.Sprintf("Hello %s,\n\nA student rated %q %d/5 (would recommend: %s).",
			msg.TrainerName, msg.ClassTitle, msg.Rating, recommend)

		_, err := gateway.Send(ctx, mailer.Email{
			To:      []string{msg.TrainerEmail},
			Subject: "New feedback for " + msg.ClassTitle,
			Body:    body,
		})
		if err != nil {
			logger.Error("[NotifyTrainer] err mailer.Send",
				zap.Uint64("feedback_id", msg.FeedbackID),
				zap.String("error", err.Error()))
			return err
		}
		return nil
	}
}

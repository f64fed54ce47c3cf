package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-jobmarket-backend/pkg/notify"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKafkaPublisher(t *testing.T) {
	msg := notify.Message{
		ID:             "msg-1",
		NotificationID: 10,
		ApplicationID:  4,
		RecipientID:    7,
		CompanyID:      2,
		Status:         "accepted",
		CreatedAt:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("sends json keyed by recipient", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(pm *sarama.ProducerMessage) error {
			key, err := pm.Key.Encode()
			if err != nil {
				return err
			}
			if string(key) != "7" {
				return errors.New("unexpected key " + string(key))
			}
			value, err := pm.Value.Encode()
			if err != nil {
				return err
			}
			var decoded notify.Message
			if err := json.Unmarshal(value, &decoded); err != nil {
				return err
			}
			if decoded.NotificationID != 10 || decoded.Status != "accepted" {
				return errors.New("unexpected payload")
			}
			return nil
		})

		pub := notify.NewKafkaPublisherWithProducer(producer, "job-notifications")
		require.NoError(t, pub.Publish(context.Background(), msg))
		require.NoError(t, pub.Close())
	})

	t.Run("broker failure is returned", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

		pub := notify.NewKafkaPublisherWithProducer(producer, "job-notifications")
		err := pub.Publish(context.Background(), msg)
		assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
		require.NoError(t, pub.Close())
	})

	t.Run("cancelled context is not sent", func(t *testing.T) {
		producer := mocks.NewSyncProducer(t, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		pub := notify.NewKafkaPublisherWithProducer(producer, "job-notifications")
		assert.ErrorIs(t, pub.Publish(ctx, msg), context.Canceled)
		require.NoError(t, pub.Close())
	})
}

func TestNoopPublisher(t *testing.T) {
	var pub notify.Publisher = notify.NoopPublisher{}
	assert.NoError(t, pub.Publish(context.Background(), notify.Message{}))
	assert.NoError(t, pub.Close())
}

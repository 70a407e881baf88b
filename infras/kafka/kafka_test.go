package kafka_test

import (
	"context"
	"testing"

	"haven/config"
	"haven/infras/kafka"
	"haven/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:   "inquiry-1",
		Value: map[string]string{"name": "Ada"},
	}

	out, err := msg.ToKafkaMessage()

	require.NoError(t, err)
	assert.Equal(t, []byte("inquiry-1"), out.Key)
	assert.JSONEq(t, `{"name":"Ada"}`, string(out.Value))
}

func TestMessage_ToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "bad", Value: make(chan int)}

	_, err := msg.ToKafkaMessage()

	assert.Error(t, err)
}

func TestNew_DisabledDropsMessages(t *testing.T) {
	cfg := &config.Config{}
	cfg.External.Kafka.Enable = false

	client := kafka.New(cfg, mocks.NewOtel())

	err := client.SendMessages(context.Background(), "topic", kafka.Message{Key: "k", Value: "v"})

	assert.NoError(t, err)
	assert.NoError(t, client.Close())
}

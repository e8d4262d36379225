package testhelpers

import (
	"context"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/rabbitmq"
)

// NewTestRabbitMQ starts RabbitMQ in a container and returns its AMQP URL.
// The container is terminated when the test ends.
func NewTestRabbitMQ(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := rabbitmq.Run(ctx,
		"rabbitmq:3.12-management-alpine",
		rabbitmq.WithAdminPassword("password"),
	)
	if err != nil {
		t.Fatalf("failed to start rabbitmq container: %s", err)
	}
	t.Cleanup(func() {
		if termErr := container.Terminate(ctx); termErr != nil {
			t.Logf("failed to terminate container: %s", termErr)
		}
	})

	amqpURL, err := container.AmqpURL(ctx)
	if err != nil {
		t.Fatalf("failed to get amqp url: %s", err)
	}
	return amqpURL
}

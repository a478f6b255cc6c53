package events

import (
	"encoding/json"

	"github.com/adjust/rmq/v5"
	"github.com/slboard/slboard/pkg/redis_client"
)

const QueueName = "slboard-events"

type Publisher struct {
	queue rmq.Queue
}

func (p *Publisher) Setup() error {
	queue, err := redis_client.QueueConnection.OpenQueue(QueueName)
	if err != nil {
		return err
	}

	p.queue = queue

	return nil
}

func (p *Publisher) Publish(event Event) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.queue.PublishBytes(eventBytes)
}

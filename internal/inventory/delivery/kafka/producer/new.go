package producer

import (
	"time"

	"inventory-srv/internal/inventory"
	pkgKafka "inventory-srv/pkg/kafka"
	"inventory-srv/pkg/log"
)

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
	now      func() time.Time
}

// New creates a new inventory event producer
func New(l log.Logger, producer pkgKafka.IProducer) inventory.Producer {
	return &implProducer{
		l:        l,
		producer: producer,
		now:      time.Now,
	}
}

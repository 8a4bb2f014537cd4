// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package event publishes the election audit trail.

The election controller hands every committed transition and vote event
to a Publisher. Log is the always-on in-process appender; KafkaPublisher
optionally mirrors events to a topic when brokers are configured. Multi
combines them:

	audit := event.NewLog()
	sink := event.Multi{audit, event.NewKafkaPublisher(brokers, topic)}

All events share one message key, so the single election's events land in
one partition in commit order.
*/
package event

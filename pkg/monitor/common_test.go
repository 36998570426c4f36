package monitor

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"
	"testing"

	"lunchbox.dev/lunchbox-monitoring-service/pkg/db"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/realtime"
)

func GetTestMonitorWithMemorySqliteDialector(t *testing.T) *Monitor {
	t.Helper()

	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	monitorInstance := &Monitor{
		Db:        *dbInstance,
		Publisher: &realtime.NopPublisher{},
		Cfg:       DefaultConfig(),
	}

	monitorInstance.WithServices(ServiceOpts{
		Ingest:    monitorInstance.GetIIngest(),
		Alert:     monitorInstance.GetIAlert(),
		Device:    monitorInstance.GetIDevice(),
		Threshold: monitorInstance.GetIThreshold(),
	})

	return monitorInstance
}

// CapturePublisher records published events in order for assertions.
type CapturePublisher struct {
	mu     sync.Mutex
	Events []CapturedEvent
}

type CapturedEvent struct {
	LunchboxID uint
	Event      realtime.Event
}

func (p *CapturePublisher) Publish(lunchboxID uint, event realtime.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, CapturedEvent{LunchboxID: lunchboxID, Event: event})
}

func (p *CapturePublisher) Captured() []CapturedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]CapturedEvent, len(p.Events))
	copy(out, p.Events)
	return out
}

func ParseLogs(r io.Reader) []any {
	scanner := bufio.NewScanner(r)
	var logs []any

	for scanner.Scan() {
		line := scanner.Text()
		var j any
		if err := json.Unmarshal([]byte(line), &j); err == nil {
			logs = append(logs, j)
		}
	}
	return logs
}

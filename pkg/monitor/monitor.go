package monitor

import (
	"time"

	"lunchbox.dev/lunchbox-monitoring-service/pkg/db"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/models"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/realtime"
)

type IIngest interface {
	IngestReadings(req *IngestRequest) (*IngestResult, error)
	LatestReadings(lunchboxID uint) (map[models.SensorType]models.SensorReading, error)
}

type IAlert interface {
	ReconcileAlerts(lunchbox *models.Lunchbox, candidates []AlertCandidate) ([]models.Alert, error)
	ResolveAlert(alertID uint) error
	GetLunchboxAlerts(lunchboxID uint) ([]models.Alert, error)
}

type IDevice interface {
	FindActiveByAPIKey(apiKey string) (*models.Lunchbox, error)
	CreateLunchbox(name, description, owner string) (*models.Lunchbox, error)
	RotateAPIKey(lunchboxID uint) (string, error)
}

type IThreshold interface {
	UpsertOverride(lunchboxID uint, input *models.ThresholdOverride) error
	RulesFor(lunchboxID uint) RuleTable
}

// Config carries the recognized tunables; none of them are hardcoded in the
// pipeline itself.
type Config struct {
	// DedupWindow is how long an open alert of a kind absorbs new qualifying
	// readings instead of duplicating.
	DedupWindow time.Duration
	// FutureSkew is how far ahead of the server clock a device-supplied
	// timestamp may be before it is clamped to now.
	FutureSkew time.Duration
	// Rules is the default threshold table, overridable per lunchbox.
	Rules RuleTable
}

func DefaultConfig() Config {
	return Config{
		DedupWindow: 72 * time.Hour,
		FutureSkew:  2 * time.Minute,
		Rules:       DefaultRules(),
	}
}

type Monitor struct {
	Db        db.DB
	Publisher realtime.Publisher
	Cfg       Config

	Ingest    IIngest
	Alert     IAlert
	Device    IDevice
	Threshold IThreshold
}

type ServiceOpts struct {
	Ingest    IIngest
	Alert     IAlert
	Device    IDevice
	Threshold IThreshold
}

func (m *Monitor) WithServices(opts ServiceOpts) *Monitor {
	if opts.Ingest != nil {
		m.Ingest = opts.Ingest
	}
	if opts.Alert != nil {
		m.Alert = opts.Alert
	}
	if opts.Device != nil {
		m.Device = opts.Device
	}
	if opts.Threshold != nil {
		m.Threshold = opts.Threshold
	}
	return m
}

package monitor

import (
	"fmt"

	"lunchbox.dev/lunchbox-monitoring-service/pkg/models"
)

// RuleTable holds one threshold rule set. The *Critical columns split
// severity within an already-triggered rule; they never trigger on their own.
type RuleTable struct {
	TempHigh        float64
	TempCritical    float64
	TempLow         float64
	HumidityHigh    float64
	GasHigh         float64
	GasCritical     float64
	BatteryLow      float64
	BatteryCritical float64
	ProximityNear   float64
}

func DefaultRules() RuleTable {
	return RuleTable{
		TempHigh:        30.0,
		TempCritical:    35.0,
		TempLow:         4.0,
		HumidityHigh:    75.0,
		GasHigh:         200.0,
		GasCritical:     300.0,
		BatteryLow:      20.0,
		BatteryCritical: 15.0,
		ProximityNear:   10.0,
	}
}

type AlertCandidate struct {
	Type     models.AlertType
	Severity models.Severity
	Message  string
}

// Evaluate is pure and stateless: for each sensor kind present in the batch
// it takes the LAST value of that kind (not an average) and compares against
// the rule table. Comparisons are strict > / strict < except proximity (<=).
// Motion fires on any value > 0 and is always a fresh event.
func Evaluate(rules RuleTable, readings []models.SensorReading) []AlertCandidate {
	latest := make(map[models.SensorType]*models.SensorReading, len(readings))
	for i := range readings {
		latest[readings[i].SensorType] = &readings[i]
	}

	var candidates []AlertCandidate

	if r := latest[models.SensorTemperature]; r != nil {
		if r.Value > rules.TempHigh {
			severity := models.SeverityWarning
			if r.Value >= rules.TempCritical {
				severity = models.SeverityCritical
			}
			candidates = append(candidates, AlertCandidate{
				Type:     models.AlertTemperatureHigh,
				Severity: severity,
				Message:  fmt.Sprintf("Temperature high: %.2f%s > %.2f", r.Value, r.Unit, rules.TempHigh),
			})
		} else if r.Value < rules.TempLow {
			// temp_low carries no warning tier
			candidates = append(candidates, AlertCandidate{
				Type:     models.AlertTemperatureLow,
				Severity: models.SeverityCritical,
				Message:  fmt.Sprintf("Temperature low: %.2f%s < %.2f", r.Value, r.Unit, rules.TempLow),
			})
		}
	}

	if r := latest[models.SensorHumidity]; r != nil && r.Value > rules.HumidityHigh {
		candidates = append(candidates, AlertCandidate{
			Type:     models.AlertHumidityHigh,
			Severity: models.SeverityWarning,
			Message:  fmt.Sprintf("Humidity high: %.2f%s > %.2f", r.Value, r.Unit, rules.HumidityHigh),
		})
	}

	if r := latest[models.SensorGas]; r != nil && r.Value > rules.GasHigh {
		severity := models.SeverityWarning
		if r.Value >= rules.GasCritical {
			severity = models.SeverityCritical
		}
		candidates = append(candidates, AlertCandidate{
			Type:     models.AlertGasHigh,
			Severity: severity,
			Message:  fmt.Sprintf("Gas level high: %.2f%s > %.2f", r.Value, r.Unit, rules.GasHigh),
		})
	}

	if r := latest[models.SensorBattery]; r != nil && r.Value < rules.BatteryLow {
		severity := models.SeverityWarning
		if r.Value < rules.BatteryCritical {
			severity = models.SeverityCritical
		}
		candidates = append(candidates, AlertCandidate{
			Type:     models.AlertBatteryLow,
			Severity: severity,
			Message:  fmt.Sprintf("Battery low: %.2f%s < %.2f", r.Value, r.Unit, rules.BatteryLow),
		})
	}

	if r := latest[models.SensorProximity]; r != nil && r.Value <= rules.ProximityNear {
		candidates = append(candidates, AlertCandidate{
			Type:     models.AlertProximityNear,
			Severity: models.SeverityWarning,
			Message:  fmt.Sprintf("Object near: %.2f%s <= %.2f", r.Value, r.Unit, rules.ProximityNear),
		})
	}

	if r := latest[models.SensorMotion]; r != nil && r.Value > 0 {
		candidates = append(candidates, AlertCandidate{
			Type:     models.AlertMotionDetected,
			Severity: models.SeverityWarning,
			Message:  "Motion detected",
		})
	}

	return candidates
}

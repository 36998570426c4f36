package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"lunchbox.dev/lunchbox-monitoring-service/pkg/common"
)

var maxLunchboxes int = 1000
var httpHostPort string = "127.0.0.1:1080"
var deviceSecret string = ""

var rnd *rand.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))

type provisioned struct {
	ID     uint   `json:"id"`
	APIKey string `json:"device_api_key"`
}

func main() {
	resp, err := http.Get(fmt.Sprintf("http://%s/healthz", httpHostPort))
	if err != nil {
		log.Fatal("Failed to connect to HTTP server:", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatal("HTTP server not available")
	}

	fmt.Printf("http server verified\n")

	var startTime time.Time
	var usedTime time.Duration

	startTime = time.Now()
	fleet := make([]provisioned, maxLunchboxes)
	wg := sync.WaitGroup{}
	for i := 0; i < maxLunchboxes; i++ {
		i := i
		wg.Add(1)
		go func() {
			fleet[i] = provisionLunchbox(i)
			fmt.Printf("\rprovisioned lunchbox %v", i)
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\rprovisioned %v lunchboxes: used time=%v seconds, throughput=%v action/second\n",
		maxLunchboxes, usedTime.Seconds(), float64(maxLunchboxes)/usedTime.Seconds(),
	)

	apiKeys := common.Mapper(fleet, func(p provisioned) string { return p.APIKey })

	startTime = time.Now()
	wg = sync.WaitGroup{}
	for i := 0; i < maxLunchboxes; i++ {
		i := i
		wg.Add(1)
		go func() {
			doAction(fleet[i].ID, apiKeys[i])
			wg.Done()
		}()
	}
	wg.Wait()
	usedTime = time.Since(startTime)

	fmt.Printf(
		"\n\rdid actions for %v lunchboxes: used time=%v seconds, throughput=%v action/second\n",
		maxLunchboxes, usedTime.Seconds(), float64(maxLunchboxes*3)/usedTime.Seconds(),
	)
}

func flipCoin() bool {
	return rnd.Int31n(100000)%2 == 0
}

func rndFloat64(min, max float64, decimal int) float64 {
	val := min + rnd.Float64()*(max-min)
	multiplier := float64(math.Pow10(decimal))
	return float64(math.Round(float64(val)*float64(multiplier))) / multiplier
}

func provisionLunchbox(index int) provisioned {
	payload := map[string]string{
		"name":  fmt.Sprintf("bench lunchbox %v", index),
		"owner": "benchmark",
	}
	jsonData, _ := json.Marshal(payload)
	resp, err := http.Post(fmt.Sprintf("http://%s/api/lunchboxes", httpHostPort), "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	var p provisioned
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		panic(err)
	}
	return p
}

func doAction(lunchboxID uint, apiKey string) {
	actions := []func(){
		genPostIngestAction(apiKey),
		genGetAlertsAction(lunchboxID),
		genPostThresholdsAction(lunchboxID),
	}
	actionNames := []string{
		"PostIngest",
		"GetAlerts",
		"PostThresholds",
	}
	rnd.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
		actionNames[i], actionNames[j] = actionNames[j], actionNames[i]
	})
	for index, action := range actions {
		action()
		fmt.Printf("\rexecuted action %v for lunchbox %v", actionNames[index], lunchboxID)
		time.Sleep(time.Duration(100+rnd.Int31n(1000)) * time.Millisecond)
	}
}

func genPostIngestAction(apiKey string) func() {
	return func() {
		readings := []map[string]any{
			{"sensor_type": "temp", "value": rndFloat64(0.0, 50.0, 2), "unit": "C"},
			{"sensor_type": "humi", "value": rndFloat64(0.0, 100.0, 2), "unit": "%"},
			{"sensor_type": "batt", "value": rndFloat64(0.0, 100.0, 2), "unit": "%"},
		}
		if flipCoin() {
			readings = append(readings, map[string]any{"sensor_type": "motion", "value": 1.0, "unit": ""})
		}
		payload := map[string]any{
			"api_key":  apiKey,
			"readings": readings,
		}
		jsonData, _ := json.Marshal(payload)

		req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("http://%s/api/device/ingest", httpHostPort), bytes.NewBuffer(jsonData))
		req.Header.Set("Content-Type", "application/json")
		if deviceSecret != "" {
			req.Header.Set("X-Device-Secret", deviceSecret)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusTooManyRequests {
			fmt.Printf("\nunexpected status: %v\n", resp.StatusCode)
		}
	}
}

func genGetAlertsAction(lunchboxID uint) func() {
	return func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/lunchboxes/%v/alerts", httpHostPort, lunchboxID))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			fmt.Printf("\nresponse status code != 200: %v\n", resp)
		}
	}
}

func genPostThresholdsAction(lunchboxID uint) func() {
	return func() {
		tempHigh := rndFloat64(20.0, 40.0, 2)
		gasHigh := rndFloat64(100.0, 300.0, 2)
		payload := map[string]float64{
			"temp_high":        tempHigh,
			"temp_critical":    tempHigh + 5.0,
			"temp_low":         rndFloat64(0.0, 5.0, 2),
			"humidity_high":    rndFloat64(50.0, 90.0, 2),
			"gas_high":         gasHigh,
			"gas_critical":     gasHigh + 100.0,
			"battery_low":      20.0,
			"battery_critical": 15.0,
			"proximity_near":   10.0,
		}
		jsonData, _ := json.Marshal(payload)
		resp, err := http.Post(fmt.Sprintf("http://%s/api/lunchboxes/%v/thresholds", httpHostPort, lunchboxID), "application/json", bytes.NewBuffer(jsonData))
		if err != nil {
			fmt.Printf("\nerror: %v\n", err)
			return
		}
		defer resp.Body.Close()
	}
}

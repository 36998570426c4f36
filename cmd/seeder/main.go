package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/common"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/db"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/monitor"
)

// Seeds a lunchbox and prints its device credential, for provisioning a new
// device or a local development setup.
func main() {
	name := flag.String("name", "demo lunchbox", "lunchbox display name")
	description := flag.String("description", "", "optional description")
	owner := flag.String("owner", "", "optional owner label")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	switch os.Getenv(common.EnvKeyLunchboxDBType) {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		log.Fatal("Seeding a memory database is pointless, use LUNCHBOX_DB_TYPE=file")
	default:
		log.Fatal("Unknown LUNCHBOX_DB_TYPE: " + os.Getenv(common.EnvKeyLunchboxDBType))
	}

	monitorCore := &monitor.Monitor{
		Db:  *dbInstance,
		Cfg: monitor.DefaultConfig(),
	}
	monitorCore.WithServices(monitor.ServiceOpts{
		Ingest:    monitorCore.GetIIngest(),
		Alert:     monitorCore.GetIAlert(),
		Device:    monitorCore.GetIDevice(),
		Threshold: monitorCore.GetIThreshold(),
	})

	lunchbox, err := monitorCore.Device.CreateLunchbox(*name, *description, *owner)
	if err != nil {
		log.Fatalf("failed to create lunchbox: %v", err)
	}

	fmt.Printf("created lunchbox id=%v name=%q\n", lunchbox.ID, lunchbox.Name)
	fmt.Printf("device_api_key=%s\n", lunchbox.DeviceAPIKey)
	fmt.Println("store the key in the device firmware; it is not shown again")
}

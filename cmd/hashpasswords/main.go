// Command hashpasswords is the one-time migration that converts legacy
// plaintext driver passwords to bcrypt. Records whose password already
// carries a bcrypt marker are skipped, so the command is safe to re-run.
package main

import (
	"log"

	"tricypay/internal/auth"
	"tricypay/internal/config"
	"tricypay/internal/models"
)

func main() {
	cfg := config.Load()
	config.InitDB(cfg)

	var drivers []models.Driver
	if err := config.DB.Find(&drivers).Error; err != nil {
		log.Fatalf("failed to load drivers: %v", err)
	}

	migrated := 0
	for _, d := range drivers {
		if d.Password == "" || auth.IsHashed(d.Password) {
			continue
		}

		hashed, err := auth.HashPassword(d.Password)
		if err != nil {
			log.Printf("failed to hash password for driver %d: %v", d.DriverID, err)
			continue
		}

		err = config.DB.Model(&models.Driver{}).
			Where("driver_id = ?", d.DriverID).
			Update("password", hashed).Error
		if err != nil {
			log.Printf("failed to update driver %d: %v", d.DriverID, err)
			continue
		}

		log.Printf("updated driver %d", d.DriverID)
		migrated++
	}

	log.Printf("done, %d password(s) migrated", migrated)
}

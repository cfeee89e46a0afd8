package jobs

import (
	"log"
	"time"

	"ppob/database"
	"ppob/models"
)

// StartSessionCleanup purges expired sessions on a fixed interval.
func StartSessionCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	go func() {
		for {
			<-ticker.C
			result := database.DB.
				Where("expires_at < ?", time.Now()).
				Delete(&models.Session{})

			if result.Error != nil {
				log.Printf("❌ error purging sessions: %v", result.Error)
			} else if result.RowsAffected > 0 {
				log.Printf("✅ Purged %d expired sessions\n", result.RowsAffected)
			}
		}
	}()
}

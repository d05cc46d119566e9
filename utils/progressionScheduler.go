package utils

import (
	"lms/database"
	"lms/models"
	"lms/models/course"
	"lms/progression"
	"log"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// InitializeProgressionScheduler sets up the daily progression maintenance jobs
func InitializeProgressionScheduler() {
	log.Println("[PROGRESSION-SCHEDULER] Initializing progression scheduler...")

	c := cron.New()

	// Run daily at 6 AM to finalize exhausted attempts and log activity
	c.AddFunc("0 6 * * *", func() {
		log.Println("[PROGRESSION-SCHEDULER] Running daily progression maintenance...")
		FinalizeExhaustedProgress()
		LogDailyProgressionSummary()
	})

	c.Start()
	log.Println("[PROGRESSION-SCHEDULER] Progression scheduler started - runs daily at 6 AM")
}

// FinalizeExhaustedProgress marks in-progress modules with no attempts left as FAILED.
// Catches rows where the student consumed the last attempt through quiz submissions
// without an explicit unlock call afterwards.
func FinalizeExhaustedProgress() {
	db := database.Database.Db

	var stuck []course.ModuleProgress
	if err := db.
		Where("status = ? AND attempts_used >= max_attempts AND is_deleted = ?", progression.StatusInProgress, false).
		Find(&stuck).Error; err != nil {
		log.Printf("[PROGRESSION-SCHEDULER] Error fetching exhausted progress rows: %v", err)
		return
	}

	if len(stuck) == 0 {
		return
	}
	log.Printf("[PROGRESSION-SCHEDULER] Found %d exhausted progress rows", len(stuck))

	for _, prog := range stuck {
		prog.Status = progression.StatusFailed
		if err := db.Save(&prog).Error; err != nil {
			log.Printf("[PROGRESSION-SCHEDULER] Error failing progress %d: %v", prog.ID, err)
			continue
		}

		decision := course.UnlockDecision{
			UserID:        prog.UserID,
			CourseID:      prog.CourseID,
			ModuleID:      prog.ModuleID,
			Eligible:      false,
			CanPreview:    false,
			TotalScore:    prog.CumulativeScore,
			RequiredScore: 0,
			AttemptNumber: prog.AttemptsUsed,
			Decision:      "FAILED",
			Reason:        "Attempts exhausted without meeting requirements.",
		}
		db.Create(&decision)

		var mod course.Module
		var user models.User
		if err := db.Where("id = ?", prog.ModuleID).First(&mod).Error; err != nil {
			continue
		}
		if err := db.Where("id = ?", prog.UserID).First(&user).Error; err != nil {
			continue
		}

		SendModuleFailedEmail(user.Email, user.Name, mod.Title, prog.MaxAttempts)
		NotifyProgressionEvent("module.failed", prog.UserID, prog.CourseID, prog.ModuleID, prog.CumulativeScore)
		log.Printf("[PROGRESSION-SCHEDULER] Failed progress %d for user %d on module %d", prog.ID, prog.UserID, prog.ModuleID)
	}
}

// LogDailyProgressionSummary logs unlock activity for the previous day
func LogDailyProgressionSummary() {
	db := database.Database.Db

	yesterday := now.With(time.Now().AddDate(0, 0, -1))
	start := yesterday.BeginningOfDay()
	end := yesterday.EndOfDay()

	var completed, failed, denied int64
	db.Model(&course.UnlockDecision{}).
		Where("decision = ? AND created_at BETWEEN ? AND ?", "COMPLETED", start, end).Count(&completed)
	db.Model(&course.UnlockDecision{}).
		Where("decision = ? AND created_at BETWEEN ? AND ?", "FAILED", start, end).Count(&failed)
	db.Model(&course.UnlockDecision{}).
		Where("decision = ? AND created_at BETWEEN ? AND ?", "DENIED", start, end).Count(&denied)

	log.Printf("[PROGRESSION-SCHEDULER] Decisions on %s: %d completed, %d failed, %d denied",
		start.Format("2006-01-02"), completed, failed, denied)
}

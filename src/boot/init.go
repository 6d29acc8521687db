package boot

import (
	"context"
	"log"
	"time"

	"ftm/src/db"
	"ftm/src/lib"
	"ftm/src/models"
	"ftm/src/utils"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Workspace{},
		&models.Team{},
		&models.SeatType{},
		&models.TicketValue{},
		&models.Event{},
		&models.Ticket{},
		&models.Person{},
		&models.AssignmentHistory{},
		&models.TicketRequest{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Fatalf("error creating scheduler: %s", err.Error())
	}
	sched.Start()

	_, err = lib.CreateCronJob(func() {
		utils.SnapshotDashboardStats(context.Background(), lib.GetRedisClient())
	}, time.Hour)
	if err != nil {
		log.Printf("error scheduling stats snapshot: %s\n", err.Error())
	}
}

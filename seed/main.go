// Command seed fills the slot group collection with pending demo proposals.
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"hirewire/config"
	"hirewire/database"
	slotgroupRepo "hirewire/database/repository/slotgroup"
	"hirewire/models"
	"hirewire/services/interview"
	"hirewire/services/scheduling"

	"go.mongodb.org/mongo-driver/bson"
)

func main() {
	config.LoadConfig()

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer database.CloseDB(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Clear existing slot groups.
	if _, err := db.Collection("slot_groups").DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear slot_groups collection: %v", err)
	}

	repo := slotgroupRepo.NewMongoSlotGroupRepo(db)
	if err := repo.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	days, err := scheduling.NewBusinessCalendar(config.AppConfig.Holidays)
	if err != nil {
		log.Fatalf("Invalid HOLIDAYS: %v", err)
	}
	svc := interview.NewDefaultInterviewService(repo, nil, days, config.AppConfig.SlotDuration, nil)

	// Simulation parameters.
	const candidates = 10
	hours := []int{9, 10, 11, 13, 14, 15, 16}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	created := 0
	for i := 1; i <= candidates; i++ {
		req := models.ProposeSlotsRequest{
			RequesterID: fmt.Sprintf("cand-%02d", i),
			Customer: &models.Customer{
				Name:  fmt.Sprintf("Candidate %02d", i),
				Email: fmt.Sprintf("candidate%02d@example.com", i),
			},
		}

		// One to three distinct business-day slots within the next two weeks.
		want := 1 + rng.Intn(scheduling.MaxSlots)
		seen := map[time.Time]bool{}
		for len(req.Slots) < want {
			day := time.Now().AddDate(0, 0, 1+rng.Intn(14))
			if !days.IsBusinessDay(day) {
				continue
			}
			ts := time.Date(day.Year(), day.Month(), day.Day(), hours[rng.Intn(len(hours))], 0, 0, 0, time.Local)
			if seen[ts] {
				continue
			}
			seen[ts] = true
			req.Slots = append(req.Slots, models.SlotCandidate{Timestamp: ts})
		}

		group, err := svc.ProposeSlots(ctx, "seed", req)
		if err != nil {
			log.Printf("Skipping %s: %v", req.RequesterID, err)
			continue
		}
		created++
		log.Printf("Seeded slot group %s for %s with %d slot(s)", group.ID, req.RequesterID, len(group.Slots))
	}

	log.Printf("Seeded %d pending slot groups", created)
}

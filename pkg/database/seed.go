package database

import (
	"fmt"
	"log"

	"github.com/devansh2311/deskmate/internal/models"
	"gorm.io/gorm"
)

// Seed creates the initial office layout. Idempotent: each resource kind is
// only seeded when its table is empty.
func Seed(db *gorm.DB) {
	seedMeetingRooms(db)
	seedDesks(db)
}

func seedMeetingRooms(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.MeetingRoom{}).Count(&count).Error; err != nil {
		log.Printf("[Seed] meeting room count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	rooms := []models.MeetingRoom{
		{RoomNumber: "A101", RoomName: "Executive Suite", Capacity: 12, HasProjector: true, HasVideoConference: true, Status: models.StatusVacant},
		{RoomNumber: "A102", RoomName: "Brainstorm Room", Capacity: 8, HasProjector: true, HasVideoConference: false, Status: models.StatusVacant},
		{RoomNumber: "B201", RoomName: "Focus Room", Capacity: 4, HasProjector: false, HasVideoConference: false, Status: models.StatusVacant},
		{RoomNumber: "C301", RoomName: "Conference Hall", Capacity: 20, HasProjector: true, HasVideoConference: true, Status: models.StatusVacant},
		{RoomNumber: "C302", RoomName: "Training Room", Capacity: 16, HasProjector: true, HasVideoConference: true, Status: models.StatusVacant},
		{RoomNumber: "B202", RoomName: "Quick Huddle", Capacity: 3, HasProjector: false, HasVideoConference: false, Status: models.StatusVacant},
	}
	if err := db.Create(&rooms).Error; err != nil {
		log.Printf("[Seed] meeting rooms failed: %v", err)
		return
	}
	log.Printf("[Seed] created %d meeting rooms", len(rooms))
}

func seedDesks(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Desk{}).Count(&count).Error; err != nil {
		log.Printf("[Seed] desk count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	floors := []struct {
		floor      int
		desks      int
		splitAt    int
		department [2]string
	}{
		{floor: 1, desks: 12, splitAt: 8, department: [2]string{"Engineering", "Marketing"}},
		{floor: 2, desks: 10, splitAt: 6, department: [2]string{"Finance", "HR"}},
		{floor: 3, desks: 14, splitAt: 7, department: [2]string{"Product", "Sales"}},
	}

	var desks []models.Desk
	for _, f := range floors {
		for i := 1; i <= f.desks; i++ {
			department := f.department[0]
			if i > f.splitAt {
				department = f.department[1]
			}
			desks = append(desks, models.Desk{
				DeskNumber: fmt.Sprintf("F%d-%02d", f.floor, i),
				Department: department,
				XPosition:  i * 50,
				YPosition:  f.floor * 100,
				Floor:      f.floor,
				Status:     models.StatusVacant,
			})
		}
	}
	if err := db.Create(&desks).Error; err != nil {
		log.Printf("[Seed] desks failed: %v", err)
		return
	}
	log.Printf("[Seed] created %d desks", len(desks))
}

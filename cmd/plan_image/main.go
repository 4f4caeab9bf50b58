package main

import (
	"fmt"
	"os"
	"time"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
	"github.com/stayontrack/stay-on-track-backend/internal/planner"
	"github.com/stayontrack/stay-on-track-backend/internal/render"
)

func main() {
	weekStart := planner.WeekStart(time.Now())
	week := model.PlannerWeek{
		ID:            "sample-week",
		UserID:        "sample-user",
		WeekStartDate: weekStart,
		WeekEndDate:   weekStart.AddDate(0, 0, 6),
	}

	day := func(offset, hour, minute int) time.Time {
		d := weekStart.AddDate(0, 0, offset)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
	}

	tasks := []model.PlannerTask{
		{
			Title:          "Work on Assignment 2",
			Course:         "CS2040",
			Duration:       "1 hour",
			DueDate:        weekStart,
			ScheduledStart: day(0, 9, 0),
			Status:         model.TaskStatusOnTrack,
		},
		{
			Title:          "Prepare for Midterm",
			Course:         "MA1521",
			Duration:       "2 hours",
			DueDate:        weekStart,
			ScheduledStart: day(0, 14, 0),
			Status:         model.TaskStatusAtRisk,
		},
		{
			Title:          "Work on Lab report",
			Course:         "PC1201",
			Duration:       "45 minutes",
			DueDate:        weekStart.AddDate(0, 0, 1),
			ScheduledStart: day(1, 10, 30),
			Status:         model.TaskStatusOnTrack,
			Completed:      true,
		},
		{
			Title:          "Prepare for Quiz 3",
			Course:         "CS2040",
			Duration:       "1 hour 30 minutes",
			DueDate:        weekStart.AddDate(0, 0, 3),
			ScheduledStart: day(3, 17, 0),
			Status:         model.TaskStatusOnTrack,
		},
	}

	imageData, err := render.GeneratePlanImage(week, tasks)
	if err != nil {
		fmt.Printf("Failed to render plan image: %v\n", err)
		os.Exit(1)
	}

	filename := "plan.png"
	if err := os.WriteFile(filename, imageData, 0644); err != nil {
		fmt.Printf("Failed to save file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Plan image saved to %s\n", filename)
	fmt.Printf("📅 Week: %s - %s\n", week.WeekStartDate.Format("02.01.2006"), week.WeekEndDate.Format("02.01.2006"))
	fmt.Printf("📊 Sessions: %d\n", len(tasks))
}

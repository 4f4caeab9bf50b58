package render

import (
	"bytes"
	"image/color"
	"strconv"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/stayontrack/stay-on-track-backend/internal/model"
	"github.com/stayontrack/stay-on-track-backend/internal/planner"
)

// Layout constants.
const (
	imageWidth      = 1400
	imageHeight     = 900
	headerHeight    = 100
	leftLabelsWidth = 80
	dayPaddingX     = 8
	minBlockHeight  = 8.0
	blockRadius     = 6.0
	totalDaysInWeek = 7
	hourPaddingTop  = 2
	hourPaddingBot  = 2
	defaultMinHour  = 8
	defaultMaxHour  = 22
)

// Color scheme.
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	textColor      = color.RGBA{80, 85, 90, 220}
	hourLabelColor = color.RGBA{110, 115, 120, 200}
	hourLineColor  = color.NRGBA{150, 150, 150, 255}
	todayBgColor   = color.NRGBA{255, 99, 71, 125}
	evenDayColor   = color.NRGBA{240, 240, 240, 255}
	oddDayColor    = color.NRGBA{220, 220, 220, 255}

	blockOnTrackColor   = color.RGBA{133, 193, 225, 220}
	blockAtRiskColor    = color.RGBA{255, 182, 193, 255}
	blockCompletedColor = color.RGBA{133, 193, 85, 220}
	blockTextColor      = color.RGBA{20, 24, 28, 230}
)

type hourRange struct {
	start int
	end   int
	total int
}

// GeneratePlanImage renders a week's study plan as a PNG: one column per
// day, an hour grid, and a block per session colored by its state.
func GeneratePlanImage(week model.PlannerWeek, tasks []model.PlannerTask) ([]byte, error) {
	weekStart := planner.DateOf(week.WeekStartDate)
	today := planner.DateOf(time.Now())
	highlightToday := !today.Before(weekStart) && !today.After(planner.DateOf(week.WeekEndDate))

	tasksByDay := groupTasksByDay(tasks)
	hours := calculateHourRange(tasks)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(bgColor)
	dc.Clear()

	dayWidth := (imageWidth - leftLabelsWidth) / totalDaysInWeek
	dayHeight := imageHeight - headerHeight
	cellHeight := float64(dayHeight) / float64(hours.total)

	drawHeader(dc, week)
	drawHourLabels(dc, hours, cellHeight)

	date := weekStart
	for dayIndex := 0; dayIndex < totalDaysInWeek; dayIndex++ {
		x := float64(leftLabelsWidth + dayIndex*dayWidth)
		y := float64(headerHeight)
		isToday := highlightToday && date.Equal(today)

		drawDayBackground(dc, x, y, dayWidth, dayHeight, dayIndex, isToday)
		drawDayHeader(dc, date, x, dayWidth)
		drawHourLines(dc, x, y, dayWidth, hours, cellHeight)
		drawTasksForDay(dc, tasksByDay[date.Format("2006-01-02")], x, dayWidth, hours, cellHeight)

		date = date.AddDate(0, 0, 1)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func groupTasksByDay(tasks []model.PlannerTask) map[string][]model.PlannerTask {
	byDay := make(map[string][]model.PlannerTask)
	for _, t := range tasks {
		if t.ScheduledStart.IsZero() {
			continue
		}
		key := t.DueDate.Format("2006-01-02")
		byDay[key] = append(byDay[key], t)
	}
	return byDay
}

// calculateHourRange picks the hour band to display, padded around the
// earliest and latest session of the week.
func calculateHourRange(tasks []model.PlannerTask) hourRange {
	minHour := 24
	maxHour := 0
	for _, t := range tasks {
		if t.ScheduledStart.IsZero() {
			continue
		}
		startH := t.ScheduledStart.Hour()
		end := t.ScheduledStart.Add(time.Duration(planner.ParseDurationMinutes(t.Duration)) * time.Minute)
		endH := end.Hour()
		if end.Minute() > 0 {
			endH++
		}
		if startH < minHour {
			minHour = startH
		}
		if endH > maxHour {
			maxHour = endH
		}
	}
	if minHour == 24 {
		minHour = defaultMinHour
		maxHour = defaultMaxHour
	}

	startHour := minHour - hourPaddingTop
	endHour := maxHour + hourPaddingBot
	if startHour < 0 {
		startHour = 0
	}
	if endHour > 23 {
		endHour = 23
	}
	return hourRange{start: startHour, end: endHour, total: endHour - startHour + 1}
}

func drawHeader(dc *gg.Context, week model.PlannerWeek) {
	title := "Study plan " + week.WeekStartDate.Format("02.01.2006") + " - " + week.WeekEndDate.Format("02.01.2006")
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, float64(imageWidth)/2, float64(headerHeight)/2, 0.5, 0.5)
}

func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	dc.SetColor(hourLabelColor)
	for hIdx := 0; hIdx < hours.total; hIdx++ {
		actualHour := hours.start + hIdx
		y := float64(headerHeight) + float64(hIdx)*cellHeight
		label := strconv.Itoa(actualHour) + ":00"
		dc.DrawStringAnchored(label, float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

func drawDayBackground(dc *gg.Context, x, y float64, dayWidth, dayHeight, dayIndex int, isToday bool) {
	switch {
	case isToday:
		dc.SetColor(todayBgColor)
	case dayIndex%2 == 0:
		dc.SetColor(evenDayColor)
	default:
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, y, float64(dayWidth), float64(dayHeight))
	dc.Fill()
}

func drawDayHeader(dc *gg.Context, date time.Time, x float64, dayWidth int) {
	dc.SetColor(textColor)
	label := model.WeekdayOf(date).Abbrev() + " " + date.Format("02.01")
	dc.DrawStringAnchored(label, x+float64(dayWidth)/2, float64(headerHeight)*0.75, 0.5, 0.5)
}

func drawHourLines(dc *gg.Context, x, y float64, dayWidth int, hours hourRange, cellHeight float64) {
	dc.SetColor(hourLineColor)
	dc.SetLineWidth(0.5)
	for hIdx := 0; hIdx <= hours.total; hIdx++ {
		lineY := y + float64(hIdx)*cellHeight
		dc.DrawLine(x, lineY, x+float64(dayWidth), lineY)
		dc.Stroke()
	}
}

func drawTasksForDay(dc *gg.Context, tasks []model.PlannerTask, x float64, dayWidth int, hours hourRange, cellHeight float64) {
	for _, t := range tasks {
		start := t.ScheduledStart
		minutes := planner.ParseDurationMinutes(t.Duration)

		startOffset := float64(start.Hour()-hours.start) + float64(start.Minute())/60
		blockY := float64(headerHeight) + startOffset*cellHeight
		blockH := float64(minutes) / 60 * cellHeight
		if blockH < minBlockHeight {
			blockH = minBlockHeight
		}

		dc.SetColor(blockColorFor(t))
		dc.DrawRoundedRectangle(x+dayPaddingX, blockY, float64(dayWidth)-2*dayPaddingX, blockH, blockRadius)
		dc.Fill()

		dc.SetColor(blockTextColor)
		label := start.Format("15:04") + " " + t.Course
		dc.DrawStringAnchored(label, x+float64(dayWidth)/2, blockY+blockH/2, 0.5, 0.5)
	}
}

func blockColorFor(t model.PlannerTask) color.Color {
	switch {
	case t.Completed:
		return blockCompletedColor
	case t.Status == model.TaskStatusAtRisk:
		return blockAtRiskColor
	default:
		return blockOnTrackColor
	}
}

// Package placeholder synthesises hearing listings for demonstration.
// Listings are random; seed the source to make them reproducible.
package placeholder

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"ecourts_backend/internal/feature/hearings/domain/entity"
	"ecourts_backend/internal/feature/hearings/usecase"
)

const (
	source        = "Live Court API"
	dateLayout    = "2006-01-02"
	updatedLayout = "2006-01-02 15:04:05"
)

var caseTypes = []string{"CRL", "CIV", "MAT", "WP", "SA"}

// Generator implements usecase.Generator with random listings.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
	loc *time.Location
	now func() time.Time
}

var _ usecase.Generator = (*Generator)(nil)

// NewGenerator creates a Generator drawing counts from rnd. Days are computed in loc.
func NewGenerator(rnd *rand.Rand, loc *time.Location) *Generator {
	if loc == nil {
		loc = time.UTC
	}
	return &Generator{rnd: rnd, loc: loc, now: time.Now}
}

// between returns a random int in [lo, hi].
func (g *Generator) between(lo, hi int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return lo + g.rnd.IntN(hi-lo+1)
}

func (g *Generator) today() time.Time {
	y, m, d := g.now().In(g.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, g.loc)
}

func (g *Generator) list(hearings []entity.Hearing) entity.HearingList {
	return entity.HearingList{
		Hearings:    hearings,
		Total:       len(hearings),
		Source:      source,
		LastUpdated: g.now().In(g.loc).Format(updatedLayout),
	}
}

// Today lists 20 to 35 hearings for the current day.
func (g *Generator) Today(ctx context.Context) (entity.HearingList, error) {
	day := g.today()
	l := g.list(g.day(day, "TH", 100000, 15, g.between(20, 35), "Listed for Today", 0))
	l.Date = day.Format(dateLayout)
	return l, nil
}

// Tomorrow lists 25 to 40 hearings for the next day.
func (g *Generator) Tomorrow(ctx context.Context) (entity.HearingList, error) {
	day := g.today().AddDate(0, 0, 1)
	l := g.list(g.day(day, "TM", 200000, 20, g.between(25, 40), "Listed for Tomorrow", 0))
	l.Date = day.Format(dateLayout)
	return l, nil
}

// Upcoming lists 15 to 30 hearings per day from the day after tomorrow up to days ahead.
func (g *Generator) Upcoming(ctx context.Context, days int) (entity.HearingList, error) {
	today := g.today()
	var hearings []entity.Hearing
	for offset := 2; offset <= days; offset++ {
		if err := ctx.Err(); err != nil {
			return entity.HearingList{}, err
		}
		day := today.AddDate(0, 0, offset)
		status := "Listed for " + day.Format("January 02")
		hearings = append(hearings, g.day(day, "UP", 300000+offset*100, 25, g.between(15, 30), status, offset)...)
	}
	l := g.list(hearings)
	l.DaysAhead = days
	return l, nil
}

// day builds count hearings for one date. minuteStep spaces the hearing times.
func (g *Generator) day(day time.Time, idPrefix string, cnrBase, minuteStep, count int, status string, offset int) []entity.Hearing {
	out := make([]entity.Hearing, 0, count)
	for i := range count {
		slot := time.Date(day.Year(), day.Month(), day.Day(), 10+i%7, (i*minuteStep)%60, 0, 0, g.loc)
		out = append(out, entity.Hearing{
			ID:            fmt.Sprintf("%s%s%03d", idPrefix, day.Format("20060102"), i),
			CNR:           fmt.Sprintf("DLCT01-%d-%d", cnrBase+i, day.Year()),
			CaseTitle:     fmt.Sprintf("Case %d - %s", i+1, day.Format("January 02, 2006")),
			CourtName:     fmt.Sprintf("District Court %d", i%5+1),
			JudgeName:     fmt.Sprintf("Hon'ble Judge %c", 'A'+rune(i%10)),
			HearingTime:   slot.Format("3:04 PM"),
			SerialNumber:  fmt.Sprintf("%03d", i+1),
			Parties:       fmt.Sprintf("Petitioner %d vs Respondent %d", i+1, i+1),
			CaseType:      caseTypes[i%len(caseTypes)],
			Status:        status,
			CourtHall:     fmt.Sprintf("Court Hall %d", i%6+1),
			Date:          day.Format(dateLayout),
			DaysFromToday: offset,
			IsLive:        true,
		})
	}
	return out
}

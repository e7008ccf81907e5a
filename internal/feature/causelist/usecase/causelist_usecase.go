package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	cases "ecourts_backend/internal/feature/cases/domain/entity"
	"ecourts_backend/internal/feature/causelist/domain/entity"
)

const (
	// DateLayout is the request and file name date format.
	DateLayout = "2006-01-02"

	hearingWindowDays = 2
	judgeCaseLimit    = 15
	recentFallback    = 12

	bulkStride   = 5
	bulkLimit    = 8
	bulkMinCases = 3
)

var (
	unsafeNameChars = regexp.MustCompile(`[^\w\s-]`)
	dateLayouts     = []string{DateLayout, "02-01-2006", "02/01/2006"}
)

// CaseSource supplies stored cases for dockets.
type CaseSource interface {
	ListHearingsBetween(ctx context.Context, from, to time.Time, limit int) ([]cases.Case, error)
	ListRecent(ctx context.Context, limit int) ([]cases.Case, error)
	ListPage(ctx context.Context, offset, limit int) ([]cases.Case, error)
}

// Renderer lays out a cause list document.
type Renderer interface {
	Render(doc entity.Document) ([]byte, error)
}

// FileStore keeps generated files by name.
type FileStore interface {
	Save(ctx context.Context, name string, data []byte) error
	// Open returns ErrFileNotFound when no file has the name.
	Open(ctx context.Context, name string) (io.ReadCloser, int64, error)
}

// CauseListRepository records generated cause lists.
type CauseListRepository interface {
	Create(ctx context.Context, cl *entity.CauseList) error
}

// GenerateRequest selects the cause lists to build. An empty JudgeCode builds one per judge.
type GenerateRequest struct {
	ComplexCode string
	JudgeCode   string
	Date        string
}

// GeneratedFile describes one stored cause list.
type GeneratedFile struct {
	JudgeName  string
	CourtRoom  string
	FileName   string
	CasesCount int
	FileSize   int64
}

// GenerateResult is the outcome of one generation request.
type GenerateResult struct {
	BatchID     string
	Complex     entity.Complex
	Date        time.Time
	Files       []GeneratedFile
	TotalJudges int
}

// CauseListUsecase builds cause list PDFs from stored cases.
type CauseListUsecase struct {
	source   CaseSource
	renderer Renderer
	files    FileStore
	repo     CauseListRepository
	loc      *time.Location
	now      func() time.Time
	newID    func() string
}

// NewCauseListUsecase creates a CauseListUsecase. A nil loc uses UTC. A nil repo skips snapshot rows.
func NewCauseListUsecase(source CaseSource, renderer Renderer, files FileStore, repo CauseListRepository, loc *time.Location) *CauseListUsecase {
	if loc == nil {
		loc = time.UTC
	}
	return &CauseListUsecase{
		source:   source,
		renderer: renderer,
		files:    files,
		repo:     repo,
		loc:      loc,
		now:      time.Now,
		newID:    func() string { return uuid.NewString() },
	}
}

// Complexes returns the court complexes.
func (u *CauseListUsecase) Complexes() []entity.Complex {
	return Complexes()
}

// Judges returns the judges of a complex.
func (u *CauseListUsecase) Judges(complexCode string) ([]entity.Judge, error) {
	return Judges(strings.ToUpper(strings.TrimSpace(complexCode)))
}

// Generate builds and stores the cause lists selected by req.
func (u *CauseListUsecase) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	date, err := ParseDate(req.Date, u.loc)
	if err != nil {
		return nil, err
	}
	complexCode := strings.ToUpper(strings.TrimSpace(req.ComplexCode))
	cx, err := FindComplex(complexCode)
	if err != nil {
		return nil, err
	}

	res := &GenerateResult{BatchID: u.newID(), Complex: cx, Date: date}

	if code := strings.ToUpper(strings.TrimSpace(req.JudgeCode)); code != "" {
		judge, err := findJudge(complexCode, code)
		if err != nil {
			return nil, err
		}
		rows, err := u.judgeDocket(ctx, date)
		if err != nil {
			return nil, err
		}
		file, err := u.publish(ctx, res.BatchID, cx, judge, date, rows)
		if err != nil {
			return nil, err
		}
		res.Files = append(res.Files, *file)
		res.TotalJudges = 1
		return res, nil
	}

	list, err := Judges(complexCode)
	if err != nil {
		return nil, err
	}
	res.TotalJudges = len(list)
	for i, judge := range list {
		rows, err := u.bulkDocket(ctx, i, date)
		if err != nil {
			return nil, err
		}
		file, err := u.publish(ctx, res.BatchID, cx, judge, date, rows)
		if err != nil {
			return nil, err
		}
		res.Files = append(res.Files, *file)
	}
	return res, nil
}

// Open returns a stored cause list file by name.
func (u *CauseListUsecase) Open(ctx context.Context, name string) (io.ReadCloser, int64, error) {
	if err := ValidateFileName(name); err != nil {
		return nil, 0, err
	}
	return u.files.Open(ctx, name)
}

// judgeDocket lists cases heard within two days of date, falling back to the most recent ones.
func (u *CauseListUsecase) judgeDocket(ctx context.Context, date time.Time) ([]entity.DocketRow, error) {
	from := date.AddDate(0, 0, -hearingWindowDays)
	to := date.AddDate(0, 0, hearingWindowDays)
	list, err := u.source.ListHearingsBetween(ctx, from, to, judgeCaseLimit)
	if err != nil {
		return nil, fmt.Errorf("list hearings: %w", err)
	}
	if len(list) == 0 {
		list, err = u.source.ListRecent(ctx, recentFallback)
		if err != nil {
			return nil, fmt.Errorf("list recent cases: %w", err)
		}
	}
	return DocketFromCases(list, date.Year()), nil
}

// bulkDocket gives each judge its own window of stored cases.
func (u *CauseListUsecase) bulkDocket(ctx context.Context, judgeIndex int, date time.Time) ([]entity.DocketRow, error) {
	list, err := u.source.ListPage(ctx, judgeIndex*bulkStride, bulkLimit)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	if len(list) < bulkMinCases {
		return SampleDocket(judgeIndex, date.Year()), nil
	}
	return DocketFromCases(list, date.Year()), nil
}

func (u *CauseListUsecase) publish(ctx context.Context, batchID string, cx entity.Complex, judge entity.Judge, date time.Time, rows []entity.DocketRow) (*GeneratedFile, error) {
	now := u.now().In(u.loc)
	data, err := u.renderer.Render(entity.Document{
		JudgeName:   judge.Name,
		CourtRoom:   judge.CourtRoom,
		Date:        date,
		Rows:        rows,
		GeneratedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("render cause list: %w", err)
	}

	name := FileName(judge.Name, date, now, batchID)
	if err := u.files.Save(ctx, name, data); err != nil {
		return nil, fmt.Errorf("store cause list: %w", err)
	}

	if u.repo != nil {
		payload, err := json.Marshal(rows)
		if err != nil {
			return nil, fmt.Errorf("encode docket: %w", err)
		}
		snapshot := &entity.CauseList{
			BatchID:    batchID,
			Date:       time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
			CourtName:  cx.Name,
			JudgeName:  judge.Name,
			TotalCases: len(rows),
			Data:       string(payload),
			FileName:   name,
			FileSize:   int64(len(data)),
		}
		if err := u.repo.Create(ctx, snapshot); err != nil {
			return nil, fmt.Errorf("record cause list: %w", err)
		}
	}

	slog.Info("cause list generated", "batch_id", batchID, "judge", judge.Code, "file", name, "cases", len(rows))
	return &GeneratedFile{
		JudgeName:  judge.Name,
		CourtRoom:  judge.CourtRoom,
		FileName:   name,
		CasesCount: len(rows),
		FileSize:   int64(len(data)),
	}, nil
}

// ParseDate reads a cause list date in YYYY-MM-DD, DD-MM-YYYY or DD/MM/YYYY form.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: date %q", ErrInvalidInput, s)
}

// FileName returns the stored name of a judge's cause list generated at now as part of batchID.
// The batch ID keeps names from concurrent generations in the same second apart.
func FileName(judgeName string, date, now time.Time, batchID string) string {
	safe := strings.ReplaceAll(unsafeNameChars.ReplaceAllString(judgeName, ""), " ", "_")
	batch := unsafeNameChars.ReplaceAllString(batchID, "")
	return fmt.Sprintf("CauseList_%s_%s_%s_%s.pdf", safe, date.Format(DateLayout), now.Format("20060102_150405"), batch)
}

// ValidateFileName rejects names that could leave the store's root.
func ValidateFileName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("%w: file name %q", ErrInvalidInput, name)
	}
	return nil
}

package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cases "ecourts_backend/internal/feature/cases/domain/entity"
	"ecourts_backend/internal/feature/causelist/domain/entity"
)

type mockSource struct {
	ListHearingsBetweenFunc func(ctx context.Context, from, to time.Time, limit int) ([]cases.Case, error)
	ListRecentFunc          func(ctx context.Context, limit int) ([]cases.Case, error)
	ListPageFunc            func(ctx context.Context, offset, limit int) ([]cases.Case, error)
}

func (m *mockSource) ListHearingsBetween(ctx context.Context, from, to time.Time, limit int) ([]cases.Case, error) {
	if m.ListHearingsBetweenFunc == nil {
		return nil, nil
	}
	return m.ListHearingsBetweenFunc(ctx, from, to, limit)
}

func (m *mockSource) ListRecent(ctx context.Context, limit int) ([]cases.Case, error) {
	if m.ListRecentFunc == nil {
		return nil, nil
	}
	return m.ListRecentFunc(ctx, limit)
}

func (m *mockSource) ListPage(ctx context.Context, offset, limit int) ([]cases.Case, error) {
	if m.ListPageFunc == nil {
		return nil, nil
	}
	return m.ListPageFunc(ctx, offset, limit)
}

type stubRenderer struct {
	docs []entity.Document
	err  error
}

func (r *stubRenderer) Render(doc entity.Document) ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.docs = append(r.docs, doc)
	return []byte("%PDF-" + doc.JudgeName), nil
}

type memFileStore struct {
	files   map[string][]byte
	saveErr error
}

func newMemFileStore() *memFileStore {
	return &memFileStore{files: map[string][]byte{}}
}

func (s *memFileStore) Save(_ context.Context, name string, data []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.files[name] = data
	return nil
}

func (s *memFileStore) Open(_ context.Context, name string) (io.ReadCloser, int64, error) {
	data, ok := s.files[name]
	if !ok {
		return nil, 0, ErrFileNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), int64(len(data)), nil
}

type memCauseListRepo struct {
	rows []entity.CauseList
	err  error
}

func (r *memCauseListRepo) Create(_ context.Context, cl *entity.CauseList) error {
	if r.err != nil {
		return r.err
	}
	cl.ID = uint(len(r.rows) + 1)
	r.rows = append(r.rows, *cl)
	return nil
}

var ist = time.FixedZone("IST", 5*3600+1800)

func newTestUsecase(src CaseSource) (*CauseListUsecase, *stubRenderer, *memFileStore, *memCauseListRepo) {
	r := &stubRenderer{}
	fs := newMemFileStore()
	repo := &memCauseListRepo{}
	uc := NewCauseListUsecase(src, r, fs, repo, ist)
	uc.now = func() time.Time { return time.Date(2025, 11, 17, 4, 0, 0, 0, time.UTC) }
	uc.newID = func() string { return "batch-1" }
	return uc, r, fs, repo
}

func storedCases(n int) []cases.Case {
	list := make([]cases.Case, n)
	for i := range list {
		list[i] = cases.Case{ID: uint(i + 1), CaseTitle: "A vs B", Status: "Evidence"}
	}
	return list
}

func TestGenerate_SingleJudgeUsesHearingWindow(t *testing.T) {
	t.Parallel()

	var gotFrom, gotTo time.Time
	var gotLimit int
	src := &mockSource{
		ListHearingsBetweenFunc: func(_ context.Context, from, to time.Time, limit int) ([]cases.Case, error) {
			gotFrom, gotTo, gotLimit = from, to, limit
			return storedCases(2), nil
		},
		ListRecentFunc: func(context.Context, int) ([]cases.Case, error) {
			t.Fatal("fallback must not run when hearings exist")
			return nil, nil
		},
	}
	uc, r, fs, repo := newTestUsecase(src)

	res, err := uc.Generate(context.Background(), GenerateRequest{ComplexCode: "ndc", JudgeCode: "j02", Date: "2025-11-17"})
	require.NoError(t, err)

	assert.Equal(t, "2025-11-15", gotFrom.Format(DateLayout))
	assert.Equal(t, "2025-11-19", gotTo.Format(DateLayout))
	assert.Equal(t, 15, gotLimit)

	assert.Equal(t, "batch-1", res.BatchID)
	assert.Equal(t, 1, res.TotalJudges)
	require.Len(t, res.Files, 1)
	f := res.Files[0]
	assert.Equal(t, "Hon'ble Smt. Priya Sharma", f.JudgeName)
	assert.Equal(t, "CauseList_Honble_Smt_Priya_Sharma_2025-11-17_20251117_093000_batch-1.pdf", f.FileName)
	assert.Equal(t, 2, f.CasesCount)
	assert.Equal(t, int64(len(fs.files[f.FileName])), f.FileSize)

	require.Len(t, r.docs, 1)
	assert.Equal(t, "Court Room 2", r.docs[0].CourtRoom)
	assert.Equal(t, ist, r.docs[0].GeneratedAt.Location())

	require.Len(t, repo.rows, 1)
	row := repo.rows[0]
	assert.Equal(t, "batch-1", row.BatchID)
	assert.Equal(t, "New Delhi Courts Complex", row.CourtName)
	assert.Equal(t, 2, row.TotalCases)
	assert.Equal(t, f.FileName, row.FileName)
	var docket []entity.DocketRow
	require.NoError(t, json.Unmarshal([]byte(row.Data), &docket))
	assert.Equal(t, "CC 1/2025", docket[0].CaseNumber)
}

func TestGenerate_SingleJudgeFallsBackToRecent(t *testing.T) {
	t.Parallel()

	var gotLimit int
	src := &mockSource{
		ListRecentFunc: func(_ context.Context, limit int) ([]cases.Case, error) {
			gotLimit = limit
			return storedCases(1), nil
		},
	}
	uc, _, _, _ := newTestUsecase(src)

	res, err := uc.Generate(context.Background(), GenerateRequest{ComplexCode: "CDC", JudgeCode: "J01", Date: "17-11-2025"})
	require.NoError(t, err)
	assert.Equal(t, 12, gotLimit)
	assert.Equal(t, 1, res.Files[0].CasesCount)
}

func TestGenerate_BulkGivesEachJudgeAWindow(t *testing.T) {
	t.Parallel()

	var offsets []int
	src := &mockSource{
		ListPageFunc: func(_ context.Context, offset, limit int) ([]cases.Case, error) {
			assert.Equal(t, 8, limit)
			offsets = append(offsets, offset)
			if offset >= 10 {
				return storedCases(1), nil
			}
			return storedCases(5), nil
		},
	}
	uc, r, fs, repo := newTestUsecase(src)

	res, err := uc.Generate(context.Background(), GenerateRequest{ComplexCode: "SDC", Date: "2025-11-17"})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 5, 10, 15, 20, 25}, offsets)
	assert.Equal(t, 6, res.TotalJudges)
	require.Len(t, res.Files, 6)
	assert.Len(t, fs.files, 6)
	assert.Len(t, repo.rows, 6)

	assert.Equal(t, 5, res.Files[0].CasesCount)
	assert.Equal(t, 6, res.Files[2].CasesCount, "sparse windows get sample rows")
	assert.Equal(t, "CC 201/2025", r.docs[2].Rows[0].CaseNumber)
	for _, row := range repo.rows {
		assert.Equal(t, "batch-1", row.BatchID)
	}
}

func TestGenerate_InvalidInput(t *testing.T) {
	t.Parallel()

	uc, _, fs, _ := newTestUsecase(&mockSource{})

	tests := []struct {
		name string
		req  GenerateRequest
		want error
	}{
		{"bad date", GenerateRequest{ComplexCode: "NDC", Date: "17th November"}, ErrInvalidInput},
		{"empty date", GenerateRequest{ComplexCode: "NDC"}, ErrInvalidInput},
		{"unknown complex", GenerateRequest{ComplexCode: "XYZ", Date: "2025-11-17"}, ErrUnknownComplex},
		{"unknown judge", GenerateRequest{ComplexCode: "NDC", JudgeCode: "J42", Date: "2025-11-17"}, ErrUnknownJudge},
	}

	for _, tt := range tests {
		_, err := uc.Generate(context.Background(), tt.req)
		assert.ErrorIs(t, err, tt.want, tt.name)
	}
	assert.Empty(t, fs.files)
}

func TestGenerate_Failures(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	req := GenerateRequest{ComplexCode: "NDC", JudgeCode: "J01", Date: "2025-11-17"}

	t.Run("source", func(t *testing.T) {
		t.Parallel()
		uc, _, _, _ := newTestUsecase(&mockSource{
			ListHearingsBetweenFunc: func(context.Context, time.Time, time.Time, int) ([]cases.Case, error) {
				return nil, boom
			},
		})
		_, err := uc.Generate(context.Background(), req)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("renderer", func(t *testing.T) {
		t.Parallel()
		uc, r, fs, _ := newTestUsecase(&mockSource{})
		r.err = boom
		_, err := uc.Generate(context.Background(), req)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, fs.files)
	})

	t.Run("store", func(t *testing.T) {
		t.Parallel()
		uc, _, fs, repo := newTestUsecase(&mockSource{})
		fs.saveErr = boom
		_, err := uc.Generate(context.Background(), req)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, repo.rows)
	})

	t.Run("snapshot", func(t *testing.T) {
		t.Parallel()
		uc, _, _, repo := newTestUsecase(&mockSource{})
		repo.err = boom
		_, err := uc.Generate(context.Background(), req)
		assert.ErrorIs(t, err, boom)
	})
}

func TestGenerate_NilRepositorySkipsSnapshot(t *testing.T) {
	t.Parallel()

	fs := newMemFileStore()
	uc := NewCauseListUsecase(&mockSource{}, &stubRenderer{}, fs, nil, nil)

	res, err := uc.Generate(context.Background(), GenerateRequest{ComplexCode: "NDC", JudgeCode: "J01", Date: "2025-11-17"})
	require.NoError(t, err)
	assert.Contains(t, fs.files, res.Files[0].FileName)
}

func TestOpen(t *testing.T) {
	t.Parallel()

	uc, _, fs, _ := newTestUsecase(&mockSource{})
	fs.files["CauseList_a.pdf"] = []byte("%PDF")

	rc, size, err := uc.Open(context.Background(), "CauseList_a.pdf")
	require.NoError(t, err)
	defer rc.Close()
	assert.Equal(t, int64(4), size)

	_, _, err = uc.Open(context.Background(), "missing.pdf")
	assert.ErrorIs(t, err, ErrFileNotFound)

	for _, name := range []string{"", "../etc/passwd", "a/b.pdf", `a\b.pdf`, "..pdf"} {
		_, _, err := uc.Open(context.Background(), name)
		assert.ErrorIs(t, err, ErrInvalidInput, name)
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"2025-11-17", "17-11-2025", "17/11/2025", " 2025-11-17 "} {
		d, err := ParseDate(in, ist)
		require.NoError(t, err, in)
		assert.Equal(t, "2025-11-17", d.Format(DateLayout))
		assert.Equal(t, ist, d.Location())
	}

	_, err := ParseDate("2025-13-01", ist)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFileName(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC)
	now := time.Date(2025, 11, 17, 9, 5, 3, 0, time.UTC)

	name := FileName("Hon'ble Ms. Neha Gupta", date, now, "0b6f7c4e-1d2a-4f3b-9c8d-7e6f5a4b3c2d")
	assert.Equal(t, "CauseList_Honble_Ms_Neha_Gupta_2025-11-17_20251117_090503_0b6f7c4e-1d2a-4f3b-9c8d-7e6f5a4b3c2d.pdf", name)
	assert.NoError(t, ValidateFileName(name))
	assert.False(t, strings.ContainsAny(name, " '"))
}

func TestGenerate_SameSecondBatchesKeepSeparateFiles(t *testing.T) {
	t.Parallel()

	src := &mockSource{
		ListHearingsBetweenFunc: func(context.Context, time.Time, time.Time, int) ([]cases.Case, error) {
			return storedCases(2), nil
		},
	}
	uc, _, fs, repo := newTestUsecase(src)
	ids := []string{"batch-a", "batch-b"}
	uc.newID = func() string {
		id := ids[0]
		ids = ids[1:]
		return id
	}

	req := GenerateRequest{ComplexCode: "NDC", JudgeCode: "J01", Date: "2025-11-17"}
	first, err := uc.Generate(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.NotEqual(t, first.Files[0].FileName, second.Files[0].FileName)
	assert.Len(t, fs.files, 2)
	require.Len(t, repo.rows, 2)
	assert.NotEqual(t, repo.rows[0].FileName, repo.rows[1].FileName)
}

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/twentyfour/internal/domain"
)

type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func widthDir(w domain.DigitWidth) string {
	if w == domain.WidthDouble {
		return "double"
	}
	return "single"
}

func (s *FS) pathFor(id string, w domain.DigitWidth) string {
	return filepath.Join(s.dir, widthDir(w), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	target := s.pathFor(p.ID, p.Width)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	type cand struct {
		path   string
		width  domain.DigitWidth
		legacy bool
	}
	candidates := []cand{
		{filepath.Join(s.dir, "single", id+".json"), domain.WidthSingle, false},
		{filepath.Join(s.dir, "double", id+".json"), domain.WidthDouble, false},
		{filepath.Join(s.dir, id+".json"), 0, true}, // legacy flat layout
	}
	var chosen *cand
	var data []byte
	for i := range candidates {
		c := candidates[i]
		if _, statErr := os.Stat(c.path); statErr == nil {
			b, err := os.ReadFile(c.path)
			if err != nil {
				return nil, err
			}
			data = b
			chosen = &c
			break
		}
	}
	if data == nil {
		return nil, os.ErrNotExist
	}
	var out domain.Puzzle
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	// If width is missing, infer it from the folder; legacy files default
	// to single digit.
	if out.Width == 0 {
		if chosen != nil && !chosen.legacy {
			out.Width = chosen.width
		} else {
			out.Width = domain.WidthSingle
		}
	}
	return &out, nil
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	type m struct {
		ID        string            `json:"id"`
		Name      string            `json:"name,omitempty"`
		Numbers   [4]int            `json:"numbers"`
		Width     domain.DigitWidth `json:"width"`
		CreatedAt int64             `json:"createdAt"`
	}

	var out []domain.PuzzleMeta
	type bucket struct {
		path  string
		width domain.DigitWidth
	}
	buckets := []bucket{
		{filepath.Join(s.dir, "single"), domain.WidthSingle},
		{filepath.Join(s.dir, "double"), domain.WidthDouble},
	}

	readEntry := func(path string, fallback domain.DigitWidth) {
		data, err := os.ReadFile(path)
		if err != nil {
			return
		}
		var mm m
		if err := json.Unmarshal(data, &mm); err != nil || mm.ID == "" {
			return
		}
		w := mm.Width
		if w == 0 {
			w = fallback
		}
		out = append(out, domain.PuzzleMeta{
			ID:        mm.ID,
			Name:      mm.Name,
			Numbers:   mm.Numbers,
			Width:     w,
			CreatedAt: mm.CreatedAt,
		})
	}

	for _, b := range buckets {
		ents, err := os.ReadDir(b.path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			readEntry(filepath.Join(b.path, e.Name()), b.width)
		}
	}

	// Also include legacy flat files in s.dir
	if ents, err := os.ReadDir(s.dir); err == nil {
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			readEntry(filepath.Join(s.dir, e.Name()), domain.WidthSingle)
		}
	}
	return out, nil
}

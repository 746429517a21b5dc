package engine

import (
	"testing"

	"resumescope/internal/catalog"
	"resumescope/internal/types"
)

func TestSamplerCourses(t *testing.T) {
	cat := catalog.New()
	s := NewSampler(cat, 0)

	t.Run("sample size capped at five", func(t *testing.T) {
		courses := s.Courses(types.FieldDataScience)
		if len(courses) != 5 {
			t.Errorf("expected 5 courses, got %d", len(courses))
		}
	})

	t.Run("samples come from the pool", func(t *testing.T) {
		pool := make(map[string]bool)
		for _, c := range cat.CoursesFor(types.FieldWeb) {
			pool[c.Name] = true
		}
		for _, c := range s.Courses(types.FieldWeb) {
			if !pool[c.Name] {
				t.Errorf("sampled course %q not in the catalog pool", c.Name)
			}
		}
	})

	t.Run("no duplicates in a sample", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, c := range s.Courses(types.FieldAndroid) {
			if seen[c.Name] {
				t.Errorf("duplicate course %q in sample", c.Name)
			}
			seen[c.Name] = true
		}
	})

	t.Run("other field yields nil", func(t *testing.T) {
		if got := s.Courses(types.FieldOther); got != nil {
			t.Errorf("expected nil for FieldOther, got %d courses", len(got))
		}
	})

	t.Run("small pool returned whole", func(t *testing.T) {
		wide := NewSampler(cat, 100)
		pool := cat.CoursesFor(types.FieldIOS)
		if got := wide.Courses(types.FieldIOS); len(got) != len(pool) {
			t.Errorf("expected the whole pool of %d, got %d", len(pool), len(got))
		}
	})
}

func TestSamplerDoesNotMutateCatalog(t *testing.T) {
	cat := catalog.New()
	s := NewSampler(cat, 0)

	before := cat.CoursesFor(types.FieldDataScience)
	snapshot := make([]types.CourseEntry, len(before))
	copy(snapshot, before)

	for range 50 {
		s.Courses(types.FieldDataScience)
	}

	after := cat.CoursesFor(types.FieldDataScience)
	if len(after) != len(snapshot) {
		t.Fatalf("catalog pool length changed: %d -> %d", len(snapshot), len(after))
	}
	for i := range snapshot {
		if after[i] != snapshot[i] {
			t.Errorf("catalog pool order changed at index %d: %q -> %q",
				i, snapshot[i].Name, after[i].Name)
		}
	}
}

func TestSamplerVideos(t *testing.T) {
	cat := catalog.New()
	s := NewSampler(cat, 0)

	resume := s.ResumeVideo()
	if resume == nil {
		t.Fatal("expected a resume video pick")
	}
	found := false
	for _, v := range cat.ResumeVideos() {
		if v == *resume {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("picked resume video %q not in pool", resume.Title)
	}

	if s.InterviewVideo() == nil {
		t.Fatal("expected an interview video pick")
	}
}

func TestPickVideoEmptyPool(t *testing.T) {
	if got := pickVideo(nil); got != nil {
		t.Errorf("expected nil for empty pool, got %+v", got)
	}
}

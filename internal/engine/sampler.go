package engine

import (
	"math/rand/v2"

	"resumescope/internal/catalog"
	"resumescope/internal/types"
)

// defaultMaxCourses is the number of courses returned per evaluation when
// the pool is large enough.
const defaultMaxCourses = 5

// Sampler draws randomized recommendations from the catalog. Every draw uses
// its own PCG source and operates on a copy, so the shared catalog data is
// never reordered and concurrent evaluations cannot interfere.
type Sampler struct {
	cat        *catalog.Catalog
	maxCourses int
}

// NewSampler creates a sampler. maxCourses values below 1 select the default.
func NewSampler(cat *catalog.Catalog, maxCourses int) *Sampler {
	if maxCourses < 1 {
		maxCourses = defaultMaxCourses
	}
	return &Sampler{cat: cat, maxCourses: maxCourses}
}

// newRNG returns a request-local source seeded from the process-global one.
func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Courses returns a random sample of courses for the field. The whole pool
// is returned (shuffled) when it is smaller than the sample size; fields
// without courses yield nil.
func (s *Sampler) Courses(field types.Field) []types.CourseEntry {
	pool := s.cat.CoursesFor(field)
	if len(pool) == 0 {
		return nil
	}

	shuffled := make([]types.CourseEntry, len(pool))
	copy(shuffled, pool)

	rng := newRNG()
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := min(s.maxCourses, len(shuffled))
	return shuffled[:n]
}

// ResumeVideo picks one resume-tips video uniformly, nil on an empty pool.
func (s *Sampler) ResumeVideo() *types.VideoEntry {
	return pickVideo(s.cat.ResumeVideos())
}

// InterviewVideo picks one interview-tips video uniformly, nil on an empty pool.
func (s *Sampler) InterviewVideo() *types.VideoEntry {
	return pickVideo(s.cat.InterviewVideos())
}

func pickVideo(pool []types.VideoEntry) *types.VideoEntry {
	if len(pool) == 0 {
		return nil
	}
	picked := pool[newRNG().IntN(len(pool))]
	return &picked
}

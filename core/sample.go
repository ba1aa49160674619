package core

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/huangsam/studentrisk/schema"
)

// SampleSeed fixes the PRNG for synthetic roster generation so sample data
// is reproducible across runs.
const SampleSeed = 42

// courseShare maps course names to their share of the generated roster, in
// percent. Listing order is fixed so generation stays deterministic.
var courseShare = []struct {
	name    string
	percent int
}{
	{"Computer Science Engineering", 30},
	{"Electrical Engineering", 25},
	{"Mechanical Engineering", 20},
	{"Civil Engineering", 15},
	{"Information Technology", 10},
}

var (
	sampleFirstNames = []string{"John", "Jane", "Michael", "Sarah", "David", "Emily", "Robert", "Lisa", "William", "Maria"}
	sampleLastNames  = []string{"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez"}
)

// markProfile is the clipped normal distribution used for one component.
type markProfile struct {
	feature  schema.Feature
	mean, sd float64
}

var markProfiles = []markProfile{
	{schema.FeatureCat1, 7.5, 1.5},
	{schema.FeatureCat2, 7.0, 1.8},
	{schema.FeatureAssignment, 12.5, 1.2},
	{schema.FeatureAttendance, 4.2, 0.5},
	{schema.FeatureQuiz, 7.8, 1.3},
}

// GenerateSample produces a synthetic roster of n students with marks drawn
// from clipped normal distributions and derived fields recomputed. The same
// n always yields the same roster.
func GenerateSample(n int) []schema.StudentRecord {
	rng := rand.New(rand.NewSource(SampleSeed))

	// Build the course assignment list from the percentage shares, topping
	// up rounding shortfalls with random picks.
	var courses []string
	for _, cs := range courseShare {
		count := n * cs.percent / 100
		for range count {
			courses = append(courses, cs.name)
		}
	}
	for len(courses) < n {
		courses = append(courses, courseShare[rng.Intn(len(courseShare))].name)
	}
	courses = courses[:n]
	rng.Shuffle(len(courses), func(i, j int) {
		courses[i], courses[j] = courses[j], courses[i]
	})

	students := make([]schema.StudentRecord, n)
	for i := range students {
		course := courses[i]
		r := &students[i]
		r.StudentID = fmt.Sprintf("STU%d", 1000+i)
		r.Name = sampleFirstNames[rng.Intn(len(sampleFirstNames))] + " " + sampleLastNames[rng.Intn(len(sampleLastNames))]
		r.Email = fmt.Sprintf("student%d@university.edu", i)
		r.Phone = fmt.Sprintf("+1-555-%04d", 1000+i)
		r.Age = 18 + rng.Intn(7)
		if rng.Float64() < 0.55 {
			r.Gender = "Male"
		} else {
			r.Gender = "Female"
		}
		r.CourseName = course
		r.CourseCode = fmt.Sprintf("%s%d", courseCodePrefix(course), 100+rng.Intn(400))

		for _, mp := range markProfiles {
			v := rng.NormFloat64()*mp.sd + mp.mean
			v = schema.ClampMark(mp.feature, v)
			r.SetMark(mp.feature, math.Round(v*10)/10)
		}
		Recalculate(r)
	}
	return students
}

// courseCodePrefix derives a two-letter course code prefix from the name.
func courseCodePrefix(course string) string {
	runes := []rune(course)
	if len(runes) < 2 {
		return "XX"
	}
	return string([]rune{toUpper(runes[0]), toUpper(runes[1])})
}

func toUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

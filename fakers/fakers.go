// Package fakers generates randomized default values for request schemas.
package fakers

import (
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
)

// Ranges for generated values. Both bounds are inclusive, and the score ranges are disjoint
// so that a generated max score is always above a generated min score.
const (
	maxScoreLow, maxScoreHigh = 50, 100
	minScoreLow, minScoreHigh = 1, 30
	weeksLow, weeksHigh       = 1, 10
)

// Fake produces plausible random values for fields a test does not set explicitly.
//
// A Fake is not safe for concurrent use; each test run should construct its own.
type Fake struct {
	faker *gofakeit.Faker
}

// New creates a Fake. A seed of 0 picks a random seed, so every run differs; any other
// seed makes the generated sequence reproducible.
func New(seed int64) *Fake {
	return &Fake{faker: gofakeit.New(seed)}
}

// Integer returns a random integer in [min, max].
func (f *Fake) Integer(min, max int) int {
	return f.faker.IntRange(min, max)
}

func (f *Fake) Text() string {
	return f.faker.Paragraph(1, 3, 8, " ")
}

func (f *Fake) Sentence() string {
	return f.faker.Sentence(f.Integer(5, 15))
}

func (f *Fake) UUID4() string {
	return f.faker.UUID()
}

// Email returns a random address. If domain is non-empty it replaces the generated domain.
func (f *Fake) Email(domain string) string {
	if domain == "" {
		return f.faker.Email()
	}
	return fmt.Sprintf("%s@%s", f.faker.Username(), domain)
}

func (f *Fake) Password() string {
	return f.faker.Password(true, true, true, false, false, f.Integer(8, 16))
}

func (f *Fake) FirstName() string {
	return f.faker.FirstName()
}

func (f *Fake) LastName() string {
	return f.faker.LastName()
}

// MiddleName falls back to a first name; the generator has no patronymics.
func (f *Fake) MiddleName() string {
	return f.faker.FirstName()
}

func (f *Fake) MaxScore() int {
	return f.Integer(maxScoreLow, maxScoreHigh)
}

func (f *Fake) MinScore() int {
	return f.Integer(minScoreLow, minScoreHigh)
}

// EstimatedTime returns a duration such as "1 week" or "4 weeks".
func (f *Fake) EstimatedTime() string {
	return FormatWeeks(f.Integer(weeksLow, weeksHigh))
}

// FormatWeeks renders n as "<n> week" for n == 1 and "<n> weeks" otherwise.
func FormatWeeks(n int) string {
	if n == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", n)
}

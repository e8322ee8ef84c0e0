package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arshia5/course-scheduler/internal/domain"
	"github.com/arshia5/course-scheduler/internal/testutil"
)

func collect(e *Enumerator) []domain.Schedule {
	var out []domain.Schedule
	for {
		s, ok := e.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}

func TestEnumerator_CartesianProductInOrder(t *testing.T) {
	catalog := testutil.NewTestCatalog(
		testutil.NewTestCourse("A",
			testutil.WithSection("Monday", "08:00", "09:00"),
			testutil.WithSection("Monday", "09:00", "10:00"),
		),
		testutil.NewTestCourse("B",
			testutil.WithSection("Tuesday", "08:00", "09:00"),
			testutil.WithSection("Tuesday", "09:00", "10:00"),
			testutil.WithSection("Tuesday", "10:00", "11:00"),
		),
	)

	enum := NewEnumerator(catalog)
	assert.Equal(t, 6, enum.Size())

	schedules := collect(enum)
	require.Len(t, schedules, 6)

	// Course order is catalog order; the last course varies fastest.
	for _, s := range schedules {
		assert.Equal(t, "A", s[0].Course)
		assert.Equal(t, "B", s[1].Course)
	}
	assert.Equal(t, testutil.Sec("Monday", "08:00", "09:00"), schedules[0][0].Section)
	assert.Equal(t, testutil.Sec("Tuesday", "08:00", "09:00"), schedules[0][1].Section)
	assert.Equal(t, testutil.Sec("Tuesday", "09:00", "10:00"), schedules[1][1].Section)
	assert.Equal(t, testutil.Sec("Monday", "09:00", "10:00"), schedules[3][0].Section)
}

func TestEnumerator_Restartable(t *testing.T) {
	catalog := testutil.NewTestCatalog(
		testutil.NewTestCourse("A",
			testutil.WithSection("Monday", "08:00", "09:00"),
			testutil.WithSection("Wednesday", "08:00", "09:00"),
		),
		testutil.NewTestCourse("B",
			testutil.WithSection("Friday", "08:00", "09:00"),
		),
	)

	enum := NewEnumerator(catalog)
	first := collect(enum)
	enum.Reset()
	second := collect(enum)

	assert.Equal(t, first, second)
}

func TestEnumerator_SnapshotIgnoresLaterCatalogEdits(t *testing.T) {
	catalog := testutil.NewTestCatalog(
		testutil.NewTestCourse("A", testutil.WithSection("Monday", "08:00", "09:00")),
	)
	enum := NewEnumerator(catalog)
	catalog.Upsert(testutil.NewTestCourse("B", testutil.WithSection("Friday", "08:00", "09:00")))

	schedules := collect(enum)
	require.Len(t, schedules, 1)
	assert.Len(t, schedules[0], 1)
}

func TestEnumerator_EmptyCourseEmptiesProduct(t *testing.T) {
	catalog := testutil.NewTestCatalog(
		testutil.NewTestCourse("Sectionless"),
		testutil.NewTestCourse("Fine", testutil.WithSection("Monday", "08:00", "09:00")),
	)

	enum := NewEnumerator(catalog)
	assert.Empty(t, collect(enum), "one sectionless course must empty the whole product")
	assert.Equal(t, []string{"Sectionless"}, enum.EmptyCourses())
	assert.Equal(t, 0, enum.Size())
}

func TestEnumerator_EmptyCatalog(t *testing.T) {
	enum := NewEnumerator(domain.NewCatalog())
	assert.Empty(t, collect(enum))
	assert.Empty(t, enum.EmptyCourses())
}

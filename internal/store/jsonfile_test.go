package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arshia5/course-scheduler/internal/testutil"
)

func tempJSONStore(t *testing.T) *JSONStore {
	t.Helper()
	return NewJSONStore(filepath.Join(t.TempDir(), "schedules.json"))
}

func TestJSONStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := tempJSONStore(t)

	catalog := testutil.NewTestCatalog(
		testutil.NewTestCourse("Algo", testutil.WithSection("Tuesday", "14:00", "15:20")),
	)
	require.NoError(t, st.Save(ctx, "s1", catalog))

	loaded, err := st.Load(ctx, "s1")
	require.NoError(t, err)
	require.True(t, catalog.Equal(loaded))

	course, ok := loaded.Get("Algo")
	require.True(t, ok)
	require.Len(t, course.Sections, 1)
	assert.Equal(t, testutil.Sec("Tuesday", "14:00", "15:20"), course.Sections[0])
}

func TestJSONStore_PreservesCourseOrder(t *testing.T) {
	ctx := context.Background()
	st := tempJSONStore(t)

	// Deliberately not alphabetical: a map-based decode would reorder.
	catalog := testutil.NewTestCatalog(
		testutil.NewTestCourse("Zoology", testutil.WithSection("Monday", "08:00", "09:00")),
		testutil.NewTestCourse("Algebra", testutil.WithSection("Tuesday", "08:00", "09:00")),
		testutil.NewTestCourse("Music", testutil.WithSection("Friday", "08:00", "09:00")),
	)
	require.NoError(t, st.Save(ctx, "s1", catalog))

	loaded, err := st.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Zoology", "Algebra", "Music"}, loaded.Names())
}

func TestJSONStore_UnknownStudentLoadsEmpty(t *testing.T) {
	st := tempJSONStore(t)
	catalog, err := st.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, catalog.Len())
}

func TestJSONStore_CorruptFileLoadsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedules.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	st := NewJSONStore(path)
	catalog, err := st.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 0, catalog.Len())

	ids, err := st.ListStudentIDs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestJSONStore_SaveReplacesPriorCatalog(t *testing.T) {
	ctx := context.Background()
	st := tempJSONStore(t)

	require.NoError(t, st.Save(ctx, "s1", testutil.NewTestCatalog(
		testutil.NewTestCourse("Old", testutil.WithSection("Monday", "08:00", "09:00")),
	)))
	require.NoError(t, st.Save(ctx, "s1", testutil.NewTestCatalog(
		testutil.NewTestCourse("New", testutil.WithSection("Friday", "08:00", "09:00")),
	)))

	loaded, err := st.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, []string{"New"}, loaded.Names())
}

func TestJSONStore_KeepsOtherStudents(t *testing.T) {
	ctx := context.Background()
	st := tempJSONStore(t)

	require.NoError(t, st.Save(ctx, "alice", testutil.NewTestCatalog(
		testutil.NewTestCourse("Math", testutil.WithSection("Monday", "08:00", "09:00")),
	)))
	require.NoError(t, st.Save(ctx, "bob", testutil.NewTestCatalog(
		testutil.NewTestCourse("Art", testutil.WithSection("Friday", "08:00", "09:00")),
	)))

	ids, err := st.ListStudentIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, ids)

	aliceCat, err := st.Load(ctx, "alice")
	require.NoError(t, err)
	_, ok := aliceCat.Get("Math")
	assert.True(t, ok)
}

func TestJSONStore_WireFormat(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "schedules.json")
	st := NewJSONStore(path)

	require.NoError(t, st.Save(ctx, "s1", testutil.NewTestCatalog(
		testutil.NewTestCourse("Math", testutil.WithSection("Monday", "08:00", "09:00")),
	)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `"s1"`)
	assert.Contains(t, text, `"courses"`)
	assert.Contains(t, text, `["Monday","08:00","09:00"]`)
}

func TestJSONStore_ReadsHandWrittenFile(t *testing.T) {
	// Mixed-case day names and compact formatting must both load.
	raw := `{
  "s9": {"courses": {"Phys": [["monday", "08:30", "09:15"], ["Wednesday", "10:00", "11:00"]]}}
}`
	path := filepath.Join(t.TempDir(), "schedules.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	st := NewJSONStore(path)
	catalog, err := st.Load(context.Background(), "s9")
	require.NoError(t, err)

	course, ok := catalog.Get("Phys")
	require.True(t, ok)
	require.Len(t, course.Sections, 2)
	// Day normalized to canonical case on load.
	assert.Equal(t, "Monday", course.Sections[0].Day.String())
	assert.True(t, strings.HasPrefix(course.Sections[0].String(), "Monday, 08:30"))
}

package campus_test

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sghaida/campus/campus"
	"github.com/sghaida/campus/registry"
)

//
// -----------------------------------------------------------------------------
// Construction
// -----------------------------------------------------------------------------

func TestNewUniversity_Invalid(t *testing.T) {
	t.Parallel()

	_, err := campus.NewUniversity("  ", newDirectory())
	require.ErrorIs(t, err, campus.ErrInvalidUniversity)

	_, err = campus.NewUniversity("MIT", nil)
	require.ErrorIs(t, err, campus.ErrNilDirectory)

	u, err := campus.NewUniversity(" MIT ", newDirectory())
	require.NoError(t, err)
	assert.Equal(t, "MIT", u.Name())
	assert.Equal(t, "MIT", u.String())
	assert.False(t, u.Closed())
}

//
// -----------------------------------------------------------------------------
// Appoint / Release
// -----------------------------------------------------------------------------

func TestUniversity_AppointKeepsOrderAndRejectsDuplicates(t *testing.T) {
	t.Parallel()

	dir := newDirectory()
	hs := dir.MustHire(mustProfessor(t, "Dr.", "Smith", "Computer Science"))
	hj := dir.MustHire(mustProfessor(t, "Dr.", "Jones", "Mathematics"))

	u, err := campus.NewUniversity("MIT", dir)
	require.NoError(t, err)

	require.NoError(t, u.AppointAll(hs, hj))
	assert.Equal(t, []registry.Handle{hs, hj}, u.Members())
	assert.Equal(t, 2, u.Size())
	assert.True(t, u.IsMember(hs))

	err = u.Appoint(hs)
	var dup campus.DuplicateMemberError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "MIT", dup.University)
	assert.Equal(t, hs, dup.Handle)
	assert.Equal(t, 2, u.Size())
}

func TestUniversity_AppointAllStopsAtFirstError(t *testing.T) {
	t.Parallel()

	dir := newDirectory()
	hs := dir.MustHire(mustProfessor(t, "Dr.", "Smith", "Computer Science"))
	hj := dir.MustHire(mustProfessor(t, "Dr.", "Jones", "Mathematics"))

	u, err := campus.NewUniversity("MIT", dir)
	require.NoError(t, err)

	err = u.AppointAll(hs, hs, hj)
	require.Error(t, err)
	assert.Equal(t, []registry.Handle{hs}, u.Members())
}

func TestUniversity_AppointUnknownHandle(t *testing.T) {
	t.Parallel()

	u, err := campus.NewUniversity("MIT", newDirectory())
	require.NoError(t, err)

	h := registry.NewHandle()
	err = u.Appoint(h)
	var missing registry.MissingHandleError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, h, missing.Handle)
	assert.Equal(t, 0, u.Size())
}

func TestUniversity_ReleaseUnlinksOnly(t *testing.T) {
	t.Parallel()

	dir := newDirectory()
	smith := mustProfessor(t, "Dr.", "Smith", "Computer Science")
	hs := dir.MustHire(smith)

	u, err := campus.NewUniversity("MIT", dir)
	require.NoError(t, err)
	require.NoError(t, u.Appoint(hs))

	require.NoError(t, u.Release(hs))
	assert.False(t, u.IsMember(hs))
	assert.True(t, dir.Has(hs))
	assert.Equal(t, "Dr. Smith is teaching Computer Science", smith.Teach())

	err = u.Release(hs)
	var nm campus.NotMemberError
	require.True(t, errors.As(err, &nm))
	assert.Equal(t, hs, nm.Handle)
	assert.Contains(t, nm.Error(), `"MIT" does not link teacher`)
}

//
// -----------------------------------------------------------------------------
// Sharing and lifetimes
// -----------------------------------------------------------------------------

func TestUniversity_SharedTeacherAcrossUniversities(t *testing.T) {
	t.Parallel()

	dir := newDirectory()
	smith := mustProfessor(t, "Dr.", "Smith", "Computer Science")
	hs := dir.MustHire(smith)

	mit, err := campus.NewUniversity("MIT", dir)
	require.NoError(t, err)
	stanford, err := campus.NewUniversity("Stanford", dir)
	require.NoError(t, err)

	require.NoError(t, mit.Appoint(hs))
	require.NoError(t, stanford.Appoint(hs))

	require.Len(t, mit.Faculty(), 1)
	require.Len(t, stanford.Faculty(), 1)
	assert.Same(t, mit.Faculty()[0], stanford.Faculty()[0])
	assert.Same(t, smith, mit.Faculty()[0])
}

func TestUniversity_CloseDoesNotDestroyTeachers(t *testing.T) {
	t.Parallel()

	dir := newDirectory()
	smith := mustProfessor(t, "Dr.", "Smith", "Computer Science")
	hs := dir.MustHire(smith)
	hj := dir.MustHire(mustProfessor(t, "Dr.", "Jones", "Mathematics"))

	mit, err := campus.NewUniversity("MIT", dir)
	require.NoError(t, err)
	stanford, err := campus.NewUniversity("Stanford", dir)
	require.NoError(t, err)
	require.NoError(t, mit.AppointAll(hs, hj))
	require.NoError(t, stanford.Appoint(hs))

	released := mit.Close()
	assert.Equal(t, []registry.Handle{hs, hj}, released)
	assert.True(t, mit.Closed())
	assert.Equal(t, 0, mit.Size())
	assert.Empty(t, mit.Lectures())

	// teachers are still owned by the directory and still teach
	assert.Equal(t, 2, dir.Len())
	assert.True(t, dir.Has(hs))
	assert.Equal(t, "Dr. Smith is teaching Computer Science", smith.Teach())
	assert.Equal(t, []string{"Dr. Smith is teaching Computer Science"}, stanford.Lectures())

	// closed universities refuse new links; closing twice is a no-op
	require.ErrorIs(t, mit.Appoint(hs), campus.ErrUniversityClosed)
	assert.Nil(t, mit.Close())
}

func TestUniversity_DismissedTeacherBecomesStale(t *testing.T) {
	t.Parallel()

	dir := newDirectory()
	hs := dir.MustHire(mustProfessor(t, "Dr.", "Smith", "Computer Science"))
	hj := dir.MustHire(mustProfessor(t, "Dr.", "Jones", "Mathematics"))

	u, err := campus.NewUniversity("MIT", dir)
	require.NoError(t, err)
	require.NoError(t, u.AppointAll(hs, hj))

	require.NoError(t, dir.Dismiss(hs))

	assert.True(t, u.IsMember(hs))
	assert.Equal(t, []registry.Handle{hs}, u.Stale())
	assert.Equal(t, []string{"Dr. Jones is teaching Mathematics"}, u.Lectures())

	assert.Equal(t, 1, u.Prune())
	assert.Equal(t, []registry.Handle{hj}, u.Members())
	assert.Empty(t, u.Stale())
	assert.Equal(t, 0, u.Prune())
}

//
// -----------------------------------------------------------------------------
// Lectures / Roster
// -----------------------------------------------------------------------------

func TestUniversity_LecturesPolymorphic(t *testing.T) {
	t.Parallel()

	dir := newDirectory()
	ada, err := campus.NewLecturer("Ada Lovelace", "Mathematics", "Cambridge")
	require.NoError(t, err)
	hs := dir.MustHire(mustProfessor(t, "Dr.", "Smith", "Computer Science"))
	ha := dir.MustHire(ada)

	u, err := campus.NewUniversity("MIT", dir)
	require.NoError(t, err)
	require.NoError(t, u.AppointAll(ha, hs))

	assert.Equal(t, []string{
		"Ada Lovelace is lecturing on Mathematics",
		"Dr. Smith is teaching Computer Science",
	}, u.Lectures())
}

func TestUniversity_Roster(t *testing.T) {
	t.Parallel()

	dir := newDirectory()
	hs := dir.MustHire(mustProfessor(t, "Dr.", "Smith", "Computer Science", campus.WithDepartment("Engineering")))
	hj := dir.MustHire(mustProfessor(t, "Dr.", "Jones", "Mathematics"))

	u, err := campus.NewUniversity("MIT", dir)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, u.Roster(&buf))
	assert.Equal(t, "MIT has no faculty\n", buf.String())

	require.NoError(t, u.AppointAll(hs, hj))
	buf.Reset()
	require.NoError(t, u.Roster(&buf))
	assert.Equal(t,
		"MIT faculty:\n"+
			"- Dr. Smith (Computer Science, Engineering department)\n"+
			"- Dr. Jones (Mathematics)\n",
		buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestUniversity_RosterPropagatesWriteErrors(t *testing.T) {
	t.Parallel()

	dir := newDirectory()
	u, err := campus.NewUniversity("MIT", dir)
	require.NoError(t, err)
	require.Error(t, u.Roster(failingWriter{}))

	require.NoError(t, u.Appoint(dir.MustHire(mustProfessor(t, "Dr.", "Smith", "Computer Science"))))
	require.Error(t, u.Roster(failingWriter{}))
}

//
// -----------------------------------------------------------------------------
// Departments (composition)
// -----------------------------------------------------------------------------

func TestUniversity_DepartmentsDieWithUniversity(t *testing.T) {
	t.Parallel()

	u, err := campus.NewUniversity("MIT", newDirectory())
	require.NoError(t, err)

	eng, err := u.OpenDepartment("Engineering")
	require.NoError(t, err)
	math, err := u.OpenDepartment("Mathematics")
	require.NoError(t, err)

	assert.Equal(t, "Engineering", eng.Name())
	assert.Equal(t, "MIT", eng.University())
	assert.Equal(t, "MIT/Engineering", eng.String())
	assert.Equal(t, []*campus.Department{eng, math}, u.Departments())

	_, err = u.OpenDepartment("Engineering")
	var dup campus.DuplicateDepartmentError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "Engineering", dup.Department)

	_, err = u.OpenDepartment(" ")
	require.ErrorIs(t, err, campus.ErrInvalidDepartment)

	u.Close()
	assert.True(t, eng.Closed())
	assert.True(t, math.Closed())
	assert.Empty(t, u.Departments())

	_, err = u.OpenDepartment("Physics")
	require.ErrorIs(t, err, campus.ErrUniversityClosed)
}

func TestErrors_String(t *testing.T) {
	t.Parallel()

	h := registry.MustParseHandle("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "DuplicateMemberError",
			err:  campus.DuplicateMemberError{University: "MIT", Handle: h},
			want: `campus: "MIT" already links teacher "6ba7b810-9dad-11d1-80b4-00c04fd430c8"`,
		},
		{
			name: "NotMemberError",
			err:  campus.NotMemberError{University: "MIT", Handle: h},
			want: `campus: "MIT" does not link teacher "6ba7b810-9dad-11d1-80b4-00c04fd430c8"`,
		},
		{
			name: "DuplicateDepartmentError",
			err:  campus.DuplicateDepartmentError{University: "MIT", Department: "Physics"},
			want: `campus: "MIT" already has department "Physics"`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.err.Error())
		})
	}
}

//
// -----------------------------------------------------------------------------
// Concurrency
// -----------------------------------------------------------------------------

// TestUniversity_ConcurrentAccess runs linking, iteration and dismissal from many
// goroutines at once; run with -race to check the locking.
func TestUniversity_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	dir := newDirectory()
	u, err := campus.NewUniversity("MIT", dir)
	require.NoError(t, err)

	const workers = 32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			p, err := campus.NewProfessor("Dr.", "Smith", "Computer Science")
			if err != nil {
				return
			}
			h, err := dir.Hire(p)
			if err != nil {
				return
			}
			_ = u.Appoint(h)
			_ = u.Faculty()
			_ = u.Lectures()
			_ = u.Stale()

			switch i % 3 {
			case 0:
				_ = dir.Dismiss(h)
				_ = u.Prune()
			case 1:
				_ = u.Release(h)
			}
			_ = u.Members()
		}(i)
	}
	wg.Wait()

	// every third worker dismissed, every third released, the rest stay linked
	u.Prune()
	assert.Empty(t, u.Stale())
	assert.Equal(t, workers/3, u.Size())
	assert.Len(t, u.Faculty(), workers/3)
	assert.Equal(t, workers-(workers+2)/3, dir.Len())
}

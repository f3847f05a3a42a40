package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

type fakeBillingStore struct {
	holidays      []*models.Holiday
	students      []*models.User
	paid          map[string]bool
	attendance    map[string][]*models.Attendance
	attendanceErr map[string]error
	insertErr     map[string]error

	calls    []string
	inserted []*models.Bill
	audits   []*models.AuditLog
}

func (f *fakeBillingStore) MonthHolidays(year, month int) ([]*models.Holiday, map[string]bool, error) {
	f.calls = append(f.calls, "holidays")
	set := map[string]bool{}
	for _, h := range f.holidays {
		set[h.DateStr] = true
	}
	return f.holidays, set, nil
}

func (f *fakeBillingStore) BillableStudents() ([]*models.User, error) {
	f.calls = append(f.calls, "students")
	return f.students, nil
}

func (f *fakeBillingStore) PaidStudentIDs(month string, year int) (map[string]bool, error) {
	f.calls = append(f.calls, "paid")
	if f.paid == nil {
		return map[string]bool{}, nil
	}
	return f.paid, nil
}

func (f *fakeBillingStore) DeletePendingBills(month string, year int) error {
	f.calls = append(f.calls, "delete")
	return nil
}

func (f *fakeBillingStore) StudentMonthAttendance(studentID string, year, month int) ([]*models.Attendance, error) {
	f.calls = append(f.calls, "attendance:"+studentID)
	if err := f.attendanceErr[studentID]; err != nil {
		return nil, err
	}
	return f.attendance[studentID], nil
}

func (f *fakeBillingStore) InsertBill(b *models.Bill) error {
	f.calls = append(f.calls, "insert:"+b.StudentID)
	if err := f.insertErr[b.StudentID]; err != nil {
		return err
	}
	f.inserted = append(f.inserted, b)
	return nil
}

func (f *fakeBillingStore) WriteAuditLog(e *models.AuditLog) error {
	f.calls = append(f.calls, "audit")
	f.audits = append(f.audits, e)
	return nil
}

func namedStudent(id string) *models.User {
	s := bothStudent()
	s.ID = id
	s.Name = "Student " + id
	s.JoinedAt = "2019-06-01" // enrolled well before any month under test
	return s
}

// Validation failures must happen before any storage access; the nil DB
// would panic otherwise.
func TestGenerateBillsRejectsInvalidMonthBeforeAnyWrites(t *testing.T) {
	summary, err := GenerateMonthlyBills(nil, "Smarch", 2020, nil)
	assert.Nil(t, summary)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid month name", ve.Message)
}

func TestGenerateBillsRejectsFutureMonthBeforeAnyWrites(t *testing.T) {
	summary, err := GenerateMonthlyBills(nil, "December", 3000, nil)
	assert.Nil(t, summary)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Cannot generate bills for future months.", ve.Message)
}

func TestGenerateBillsSkipsPaidStudents(t *testing.T) {
	store := &fakeBillingStore{
		students: []*models.User{namedStudent("s1"), namedStudent("s2")},
		paid:     map[string]bool{"s1": true},
	}

	summary, err := generateBills(store, "January", 2020, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.NewBills)
	assert.Equal(t, 1, summary.SkippedPaid)

	// The paid student's bill must not be recomputed or reinserted
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "s2", store.inserted[0].StudentID)
	assert.NotContains(t, store.calls, "attendance:s1")
	assert.NotContains(t, store.calls, "insert:s1")
}

func TestGenerateBillsClearsPendingBeforeInserting(t *testing.T) {
	store := &fakeBillingStore{
		students: []*models.User{namedStudent("s1")},
	}

	_, err := generateBills(store, "January", 2020, nil)
	require.NoError(t, err)

	deleteAt, insertAt := -1, -1
	for i, call := range store.calls {
		if call == "delete" && deleteAt == -1 {
			deleteAt = i
		}
		if call == "insert:s1" {
			insertAt = i
		}
	}
	require.NotEqual(t, -1, deleteAt)
	require.NotEqual(t, -1, insertAt)
	assert.Less(t, deleteAt, insertAt)
}

// One student's failure is logged and skipped; everyone else still gets a
// bill and the run reports success.
func TestGenerateBillsIsolatesPerStudentFailures(t *testing.T) {
	store := &fakeBillingStore{
		students: []*models.User{
			namedStudent("s1"), namedStudent("s2"), namedStudent("s3"),
		},
		attendanceErr: map[string]error{"s2": errors.New("connection reset")},
		insertErr:     map[string]error{"s3": errors.New("constraint violation")},
	}

	summary, err := generateBills(store, "January", 2020, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.NewBills)
	assert.Equal(t, 0, summary.SkippedPaid)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "s1", store.inserted[0].StudentID)

	// The s2 failure must not stop s3 from being attempted
	assert.Contains(t, store.calls, "insert:s3")
}

func TestGenerateBillsSkipsStudentsJoinedAfterMonth(t *testing.T) {
	late := namedStudent("s2")
	late.JoinedAt = "2020-03-01"

	store := &fakeBillingStore{
		students: []*models.User{namedStudent("s1"), late},
	}

	summary, err := generateBills(store, "January", 2020, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.NewBills)
	assert.Equal(t, 0, summary.SkippedPaid)
	assert.NotContains(t, store.calls, "insert:s2")
}

func TestGenerateBillsWritesAuditLog(t *testing.T) {
	userID := "owner-1"
	store := &fakeBillingStore{
		students: []*models.User{namedStudent("s1")},
		holidays: []*models.Holiday{{DateStr: "2020-01-26", Name: "Republic Day"}},
	}

	summary, err := generateBills(store, "January", 2020, &userID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.HolidaysInMonth)

	require.Len(t, store.audits, 1)
	entry := store.audits[0]
	assert.Equal(t, "GENERATED_BILLS", entry.Action)
	assert.Equal(t, "bills", entry.TableName)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, "owner-1", *entry.UserID)
	assert.Contains(t, string(entry.NewValues), `"month":"January"`)
}

func TestGenerateBillsStampsRequestedMonthName(t *testing.T) {
	store := &fakeBillingStore{
		students: []*models.User{namedStudent("s1")},
	}

	_, err := generateBills(store, "January", 2020, nil)
	require.NoError(t, err)

	require.Len(t, store.inserted, 1)
	assert.Equal(t, "January", store.inserted[0].Month)
	assert.Equal(t, 2020, store.inserted[0].Year)
	assert.Equal(t, models.BillPending, store.inserted[0].Status)
}

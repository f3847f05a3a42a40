package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var billColumns = []string{
	"id", "student_id", "month", "year", "base_amount", "rebate_amount",
	"final_amount", "status", "breakdown", "generated_at", "payment_reference", "paid_at",
}

// The UPDATE carries a status guard so the PENDING -> PAID transition happens
// at most once even under concurrent pay requests.
func TestMarkBillPaidTransitionsExactlyOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`UPDATE bills SET status = 'PAID'[\s\S]*AND status <> 'PAID'`).
		WithArgs("txn-1", sqlmock.AnyArg(), "bill-1").
		WillReturnRows(sqlmock.NewRows(billColumns).AddRow(
			"bill-1", "s1", "January", 2020, 2700.0, 0.0, 932.0, "PAID",
			[]byte(`{"bill_method":"attendance"}`), now, "txn-1", now,
		))

	bill, err := MarkBillPaid(db, "bill-1", "txn-1")
	require.NoError(t, err)
	assert.Equal(t, "bill-1", bill.ID)
	assert.Equal(t, 932.0, bill.FinalAmount)
	require.NotNil(t, bill.PaymentReference)
	assert.Equal(t, "txn-1", *bill.PaymentReference)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkBillPaidRejectsAlreadyPaidBill(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// A bill that is already PAID matches zero rows
	mock.ExpectQuery(`UPDATE bills SET status = 'PAID'[\s\S]*AND status <> 'PAID'`).
		WithArgs("txn-2", sqlmock.AnyArg(), "bill-1").
		WillReturnRows(sqlmock.NewRows(billColumns))

	bill, err := MarkBillPaid(db, "bill-1", "txn-2")
	assert.Nil(t, bill)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

package bills

import (
	"bytes"
	"fmt"
	"log"

	"github.com/go-pdf/fpdf"
	"github.com/gofiber/fiber/v2"

	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/config"
	"github.com/Aadityaa-Sharma/Mess-Canteen-Mangement-Software/app/models"
)

// BillPDFAPI renders the bill as a downloadable PDF invoice built entirely
// from the stored breakdown snapshot.
func BillPDFAPI(c *fiber.Ctx) error {
	bill, err := loadBillForViewer(c)
	if bill == nil {
		return err
	}

	pdfBytes, err := renderBillPDF(bill, config.GetPayment())
	if err != nil {
		log.Printf("[BILLS] Failed to render PDF for bill %s: %v", bill.ID, err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate PDF"})
	}

	filename := fmt.Sprintf("bill-%s-%s-%d.pdf", bill.StudentName, bill.Month, bill.Year)
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdfBytes)
}

func renderBillPDF(bill *models.BillWithStudent, payment config.PaymentConfig) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Mess Bill - %s %d", bill.Month, bill.Year), false)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Mess Bill", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s %d", bill.Month, bill.Year), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Student block
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Student", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, bill.StudentName, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Mobile", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, bill.StudentMobile, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, 7, "Meal Slot", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, string(bill.Breakdown.MealSlot), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Breakdown table
	b := bill.Breakdown
	rows := [][2]string{
		{"Billing method", string(b.BillMethod)},
		{"Monthly fee", fmt.Sprintf("Rs. %.0f", b.MonthlyFee)},
		{"Days in month", fmt.Sprintf("%d", b.DaysInMonth)},
		{"Days enrolled", fmt.Sprintf("%d", b.DaysEnrolled)},
		{"Per meal rate", fmt.Sprintf("Rs. %.2f", b.PerMealRate)},
		{"Meals present", fmt.Sprintf("%d", b.MealsPresent)},
		{"Meals absent", fmt.Sprintf("%d", b.MealsAbsent)},
		{"Holidays in month", fmt.Sprintf("%d", b.HolidaysInMonth)},
		{"Free holidays", fmt.Sprintf("%d", b.FreeHolidays)},
		{"Excess holidays", fmt.Sprintf("%d", b.ExcessHolidays)},
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(95, 8, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, 8, "Value", "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, row := range rows {
		pdf.CellFormat(95, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, 8, row[1], "1", 1, "L", false, 0, "")
	}

	// Absent dates, if any
	if len(b.AbsentDates) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, "Absent Dates", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, a := range b.AbsentDates {
			pdf.CellFormat(0, 6, fmt.Sprintf("%s  (%s)", a.Date, a.Shift), "", 1, "L", false, 0, "")
		}
	}

	// Total
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(95, 10, "Amount Due", "1", 0, "L", true, 0, "")
	pdf.CellFormat(95, 10, fmt.Sprintf("Rs. %.0f", bill.FinalAmount), "1", 1, "R", true, 0, "")

	if bill.Status == models.BillPaid {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 16)
		pdf.SetTextColor(0, 128, 0)
		ref := ""
		if bill.PaymentReference != nil {
			ref = " (Ref: " + *bill.PaymentReference + ")"
		}
		pdf.CellFormat(0, 10, "PAID"+ref, "", 1, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	} else {
		// UPI payment block for pending bills
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 7, "Pay via UPI", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 6, fmt.Sprintf("UPI ID: %s", payment.UPIID), "", 1, "L", false, 0, "")
		pdf.CellFormat(0, 6, fmt.Sprintf("Payee: %s", payment.PayeeName), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

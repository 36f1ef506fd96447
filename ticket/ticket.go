// Package ticket renders a booking from the history as a one-page
// eTicket PDF with a QR code of the booking reference.
package ticket

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"cinemaseat-cli/model"
)

// Render builds the PDF bytes for one booking.
func Render(b model.Booking, username string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	pdf.SetAutoPageBreak(false, 0)

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 15, "CINEMASEAT eTICKET")
	pdf.Ln(20)

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(8)

	yStart := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, yStart, 120, 55, "F")

	pdf.SetXY(20, yStart+7)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "BOOKING SUMMARY")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Booking #%d", b.ID))
	pdf.Ln(6)
	if username != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Guest: %s", username))
		pdf.Ln(6)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Seat: %d", int(b.SeatNumber)))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Show #%d", b.ShowID))

	qrPayload := fmt.Sprintf("cinemaseat://bookings/%d", b.ID)
	qrBytes, err := qrcode.Encode(qrPayload, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	pdf.RegisterImageOptionsReader("qr", gofpdf.ImageOptions{ImageType: "png"}, bytes.NewReader(qrBytes))
	pdf.ImageOptions("qr", 145, yStart+5, 45, 0, false, gofpdf.ImageOptions{ImageType: "png"}, 0, "")

	pdf.SetY(yStart + 63)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Scan this QR code for entry verification.")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 9, "SHOW DETAILS", "", 1, "L", true, 0, "")
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "", 12)
	title := strings.TrimSpace(b.MovieTitle)
	if title == "" {
		title = "Movie"
	}
	pdf.Cell(0, 8, fmt.Sprintf("Title: %s", title))
	pdf.Ln(6)
	if b.ShowStartTime != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Date & Time: %s", b.ShowStartTime.Local().Format("Mon, 02 Jan 2006 15:04")))
		pdf.Ln(6)
	}

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, 285, 195, 285)
	pdf.SetY(288)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")), "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFile writes the ticket next to the working directory and
// returns the file name.
func ExportFile(b model.Booking, username string) (string, error) {
	data, err := Render(b, username)
	if err != nil {
		return "", err
	}
	name := fmt.Sprintf("ticket-%d.pdf", b.ID)
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return "", err
	}
	return name, nil
}

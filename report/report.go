// Package report renders charging statistics and history as a PDF document
package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/adipramono/chargelog/internal/session"
	"github.com/adipramono/chargelog/internal/timeutil"
	"github.com/adipramono/chargelog/stats"
)

const (
	pageWidth   = 210 // A4 portrait, mm
	titleSize   = 20
	headingSize = 14
	bodySize    = 10
	rowHeight   = 7
)

// FileName returns the conventional report file name for the given day.
func FileName(now time.Time, zone timeutil.Zone) string {
	t := now.In(zone.Location())

	return fmt.Sprintf(
		"Laporan_Pengisian_%d_%02d_%02d.pdf",
		t.Year(), t.Month(), t.Day(),
	)
}

// Export writes the stats summary and completed-session history to a PDF
// file at path.
func Export(
	sessions []session.Session,
	summary stats.Stats,
	zone timeutil.Zone,
	now time.Time,
	path string,
) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.CellFormat(0, 12, "Laporan Pengisian Daya", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", bodySize)
	pdf.CellFormat(0, 6, fmt.Sprintf(
		"Tanggal Ekspor: %s %s",
		timeutil.FormatDateTime(now, zone),
		zone,
	), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	writeStatsTable(pdf, summary)

	completed := make([]session.Session, 0, len(sessions))

	for i := range sessions {
		if sessions[i].Completed() {
			completed = append(completed, sessions[i])
		}
	}

	if len(completed) > 0 {
		pdf.Ln(8)
		writeHistoryTable(pdf, completed, zone)
	}

	return pdf.OutputFileAndClose(path)
}

func writeStatsTable(pdf *fpdf.Fpdf, summary stats.Stats) {
	pdf.SetFont("Helvetica", "B", headingSize)
	pdf.CellFormat(0, 8, "Statistik Pengisian", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	const colWidth = 80.0

	left := (pageWidth - 2*colWidth) / 2

	rows := summary.Rows()

	pdf.SetFillColor(59, 130, 246)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", bodySize)
	pdf.SetX(left)

	for _, h := range rows[0] {
		pdf.CellFormat(colWidth, rowHeight, h, "1", 0, "C", true, 0, "")
	}

	pdf.Ln(rowHeight)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", bodySize)

	for _, row := range rows[1:] {
		pdf.SetX(left)

		for _, cell := range row {
			pdf.CellFormat(colWidth, rowHeight, cell, "1", 0, "C", false, 0, "")
		}

		pdf.Ln(rowHeight)
	}
}

func writeHistoryTable(
	pdf *fpdf.Fpdf,
	completed []session.Session,
	zone timeutil.Zone,
) {
	pdf.SetFont("Helvetica", "B", headingSize)
	pdf.CellFormat(0, 8, "Riwayat Pengisian", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	headers := []string{
		"No", "Tanggal", "Mulai", "Selesai",
		"Durasi (menit)", "Awal (%)", "Akhir (%)", "Lokasi",
	}
	widths := []float64{10, 42, 16, 16, 24, 16, 16, 50}

	pdf.SetFillColor(59, 130, 246)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", bodySize)

	for i, h := range headers {
		pdf.CellFormat(widths[i], rowHeight, h, "1", 0, "C", true, 0, "")
	}

	pdf.Ln(rowHeight)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "", bodySize)

	for i := range completed {
		sess := &completed[i]

		location := sess.Location
		if location == "" {
			location = "-"
		}

		endBattery := "-"
		if sess.EndBattery != nil {
			endBattery = strconv.Itoa(*sess.EndBattery)
		}

		cells := []string{
			strconv.Itoa(i + 1),
			timeutil.FormatDate(sess.StartTime, zone),
			timeutil.FormatTime(sess.StartTime, zone),
			timeutil.FormatTime(*sess.EndTime, zone),
			strconv.Itoa(int(sess.Duration().Round(time.Minute).Minutes())),
			strconv.Itoa(sess.StartBattery),
			endBattery,
			location,
		}

		for j, cell := range cells {
			align := "C"
			if j == 1 || j == 7 {
				align = "L"
			}

			pdf.CellFormat(widths[j], rowHeight, cell, "1", 0, align, false, 0, "")
		}

		pdf.Ln(rowHeight)
	}
}

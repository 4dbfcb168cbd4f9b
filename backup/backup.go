// Package backup encodes the session list to a spreadsheet and decodes it
// back for restore
package backup

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/adipramono/chargelog/internal/session"
	"github.com/adipramono/chargelog/internal/timeutil"
)

// SheetName is the name of the single worksheet in a backup file.
const SheetName = "Riwayat Pengisian"

// The two ISO columns are authoritative on restore. All other columns are
// human-readable derivatives regenerated from them, except the battery,
// location, id, and active-flag columns which are re-parsed as written.
var headers = []string{
	"No",
	"Tanggal",
	"Waktu Mulai",
	"Waktu Selesai",
	"Durasi (menit)",
	"Baterai Awal (%)",
	"Baterai Akhir (%)",
	"Penambahan (%)",
	"Lokasi",
	"ID",
	"Start Time ISO",
	"End Time ISO",
	"Is Active",
}

var columnWidths = []float64{5, 20, 12, 12, 15, 15, 15, 15, 15, 20, 25, 25, 10}

const (
	activeYes = "Ya"
	activeNo  = "Tidak"
	emptyCell = "-"
)

// FileName returns the conventional backup file name for the given day.
func FileName(now time.Time, zone timeutil.Zone) string {
	t := now.In(zone.Location())

	return fmt.Sprintf(
		"CLA_Backup_%d_%02d_%02d.xlsx",
		t.Year(), t.Month(), t.Day(),
	)
}

// Export writes one row per session to an xlsx file at path.
func Export(
	sessions []session.Session,
	zone timeutil.Zone,
	path string,
) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return err
	}

	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}

	if err := f.SetSheetRow(SheetName, "A1", &row); err != nil {
		return err
	}

	for i := range sessions {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}

		values := sessionRow(&sessions[i], i+1, zone)

		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return err
		}
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}

		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

func sessionRow(sess *session.Session, no int, zone timeutil.Zone) []any {
	endTime := emptyCell
	endTimeISO := ""
	duration := any(emptyCell)

	if sess.EndTime != nil {
		endTime = timeutil.FormatTime(*sess.EndTime, zone)
		endTimeISO = sess.EndTime.UTC().Format(time.RFC3339)
		duration = int(sess.Duration().Round(time.Minute).Minutes())
	}

	endBattery := any(emptyCell)
	gain := any(emptyCell)

	if sess.EndBattery != nil {
		endBattery = *sess.EndBattery
		gain = sess.BatteryGain()
	}

	location := sess.Location
	if location == "" {
		location = emptyCell
	}

	active := activeNo
	if sess.IsActive {
		active = activeYes
	}

	return []any{
		no,
		timeutil.FormatDate(sess.StartTime, zone),
		timeutil.FormatTime(sess.StartTime, zone),
		endTime,
		duration,
		sess.StartBattery,
		endBattery,
		gain,
		location,
		sess.ID,
		sess.StartTime.UTC().Format(time.RFC3339),
		endTimeISO,
		active,
	}
}

// Restore decodes a backup file into a session list. The whole file is
// rejected when it holds no data rows or when any row lacks its Start Time
// ISO value. The caller is responsible for merging the result into the
// store.
func Restore(path string) ([]session.Session, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, ErrUnreadableBackup.Wrap(err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyBackup
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, ErrUnreadableBackup.Wrap(err)
	}

	if len(rows) < 2 {
		return nil, ErrEmptyBackup
	}

	index := headerIndex(rows[0])

	sessions := make([]session.Session, 0, len(rows)-1)

	for i, row := range rows[1:] {
		sess, err := parseRow(row, index, i+2)
		if err != nil {
			return nil, err
		}

		sessions = append(sessions, sess)
	}

	return sessions, nil
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))

	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	return index
}

func cellValue(row []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

func parseRow(
	row []string,
	index map[string]int,
	rowNum int,
) (session.Session, error) {
	var sess session.Session

	startISO := cellValue(row, index, "Start Time ISO")
	if startISO == "" {
		return sess, ErrMissingStartTime.Fmt(rowNum)
	}

	startTime, err := time.Parse(time.RFC3339, startISO)
	if err != nil {
		return sess, ErrMissingStartTime.Fmt(rowNum)
	}

	sess.StartTime = startTime

	sess.ID = cellValue(row, index, "ID")
	if sess.ID == "" {
		sess.ID = session.NewID(startTime)
	}

	if v := cellValue(row, index, "Baterai Awal (%)"); v != emptyCell {
		if battery, err := strconv.Atoi(v); err == nil {
			sess.StartBattery = battery
		}
	}

	if v := cellValue(row, index, "Baterai Akhir (%)"); v != "" &&
		v != emptyCell {
		if battery, err := strconv.Atoi(v); err == nil {
			sess.EndBattery = &battery
		}
	}

	if endISO := cellValue(row, index, "End Time ISO"); endISO != "" {
		if endTime, err := time.Parse(time.RFC3339, endISO); err == nil {
			sess.EndTime = &endTime
		}
	}

	if v := cellValue(row, index, "Lokasi"); v != emptyCell {
		sess.Location = v
	}

	sess.IsActive = cellValue(row, index, "Is Active") == activeYes

	return sess, nil
}

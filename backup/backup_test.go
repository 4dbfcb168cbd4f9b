package backup

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/xuri/excelize/v2"

	"github.com/adipramono/chargelog/internal/session"
	"github.com/adipramono/chargelog/internal/timeutil"
)

func backupSessions() []session.Session {
	start1 := time.Date(2025, time.September, 1, 1, 0, 0, 0, time.UTC)
	end1 := start1.Add(2 * time.Hour)
	endBattery1 := 85

	start2 := time.Date(2025, time.September, 2, 13, 30, 0, 0, time.UTC)

	return []session.Session{
		{
			ID:           "1756688400000",
			StartTime:    start1,
			StartBattery: 20,
			EndTime:      &end1,
			EndBattery:   &endBattery1,
			Location:     "Rumah",
		},
		{
			ID:           "1756819800000",
			StartTime:    start2,
			StartBattery: 45,
			IsActive:     true,
			Location:     "Kantor",
		},
	}
}

func TestExportRestoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.xlsx")

	want := backupSessions()

	if err := Export(want, timeutil.ZoneWIB, path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	got, err := Restore(path)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}

	// coordinates are not part of the backup format
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestExportWritesExpectedColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.xlsx")

	if err := Export(backupSessions(), timeutil.ZoneWIB, path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("opening exported file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("reading sheet %q: %v", SheetName, err)
	}

	if diff := cmp.Diff(headers, rows[0]); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}

	if len(rows) != 3 {
		t.Fatalf("exported %d rows, want 3 (header + 2 sessions)", len(rows))
	}

	// the active session carries the Ya flag and empty end fields
	activeRow := rows[2]
	if activeRow[12] != "Ya" {
		t.Errorf("Is Active = %q, want Ya", activeRow[12])
	}

	if len(activeRow) > 11 && activeRow[11] != "" {
		t.Errorf("End Time ISO = %q, want empty for an active session", activeRow[11])
	}

	completedRow := rows[1]
	if completedRow[12] != "Tidak" {
		t.Errorf("Is Active = %q, want Tidak", completedRow[12])
	}

	// human-readable date in the selected zone: 08:00 WIB on 1 September
	if completedRow[1] != "Senin, 1 September 2025" {
		t.Errorf("Tanggal = %q", completedRow[1])
	}

	if completedRow[2] != "08:00" {
		t.Errorf("Waktu Mulai = %q, want 08:00", completedRow[2])
	}
}

func TestRestoreRejectsEmptySheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	if err := Export(nil, timeutil.ZoneWIB, path); err != nil {
		t.Fatalf("Export: %v", err)
	}

	_, err := Restore(path)
	if !errors.Is(err, ErrEmptyBackup) {
		t.Errorf("Restore error = %v, want ErrEmptyBackup", err)
	}
}

func TestRestoreRejectsMissingStartTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")

	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		t.Fatal(err)
	}

	header := make([]any, len(headers))
	for i, h := range headers {
		header[i] = h
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		t.Fatal(err)
	}

	// a row with an id but no Start Time ISO value
	row := []any{1, "-", "-", "-", "-", 20, "-", "-", "Rumah", "X1", "", "", "Tidak"}
	if err := f.SetSheetRow(SheetName, "A2", &row); err != nil {
		t.Fatal(err)
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	_ = f.Close()

	_, err := Restore(path)
	if !errors.Is(err, ErrMissingStartTime) {
		t.Errorf("Restore error = %v, want ErrMissingStartTime", err)
	}
}

func TestRestoreRejectsUnreadableFile(t *testing.T) {
	_, err := Restore(filepath.Join(t.TempDir(), "missing.xlsx"))
	if !errors.Is(err, ErrUnreadableBackup) {
		t.Errorf("Restore error = %v, want ErrUnreadableBackup", err)
	}
}

func TestFileName(t *testing.T) {
	// 23:30 WIT on 5 September is still 5 September; the file name follows
	// the zone-local date
	now := time.Date(2025, time.September, 5, 14, 30, 0, 0, time.UTC)

	got := FileName(now, timeutil.ZoneWIT)
	want := "CLA_Backup_2025_09_05.xlsx"

	if got != want {
		t.Errorf("FileName = %q, want %q", got, want)
	}
}

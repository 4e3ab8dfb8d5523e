package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rabitt1ove/jpholiday"
	"github.com/rabitt1ove/jpholiday/export"
)

// writeList writes the engine's own holidays for 2019-2025 in the published
// layout, optionally dropping one date.
func writeList(t *testing.T, sjis bool, drop jpholiday.Date) string {
	t.Helper()
	from := time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	var kept []jpholiday.Holiday
	for _, h := range jpholiday.HolidaysBetween(from, to) {
		if jpholiday.DateIn(h.Date, time.UTC) != drop {
			kept = append(kept, h)
		}
	}

	path := filepath.Join(t.TempDir(), "syukujitsu.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, export.WriteCSV(f, kept, export.CSVOptions{ShiftJIS: sjis}))
	require.NoError(t, f.Close())
	return path
}

func TestVerify_ShiftJISFile(t *testing.T) {
	path := writeList(t, true, jpholiday.Date{})
	out, err := execute(t, "verify", "--file", path, "--from", "2019-01-01")
	require.NoError(t, err)
	// Without --to the comparison ends on the last listed holiday.
	assert.Contains(t, out, "ok 2019-01-01..2025-11-24")
}

func TestVerify_ToPastLastListedDate(t *testing.T) {
	path := writeList(t, true, jpholiday.Date{})
	out, err := execute(t, "verify", "--file", path, "--from", "2019-01-01", "--to", "2025-12-31")
	require.NoError(t, err)
	assert.Contains(t, out, "ok 2019-01-01..2025-12-31")
}

func TestVerify_UTF8File(t *testing.T) {
	path := writeList(t, false, jpholiday.Date{})
	out, err := execute(t, "verify", "--file", path, "--utf8", "--from", "2020-01-01", "--to", "2020-12-31")
	require.NoError(t, err)
	assert.Contains(t, out, "ok 2020-01-01..2020-12-31")
}

func TestVerify_Mismatch(t *testing.T) {
	path := writeList(t, true, jpholiday.NewDate(2021, time.July, 23))
	out, err := execute(t, "verify", "--file", path, "--from", "2019-01-01")
	require.ErrorIs(t, err, ErrMismatch)
	assert.Contains(t, out, "2021-07-23 extra: sport_no_hi")
}

func TestVerify_Errors(t *testing.T) {
	_, err := execute(t, "verify", "--file", filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	path := writeList(t, true, jpholiday.Date{})
	_, err = execute(t, "verify", "--file", path, "--from", "2026-01-01")
	assert.ErrorContains(t, err, "nothing to compare")

	_, err = execute(t, "verify", "--file", path, "--from", "yesterday")
	assert.Error(t, err)
}

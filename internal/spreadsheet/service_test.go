package spreadsheet

import (
	"path/filepath"
	"testing"
	"time"

	"membertrack/internal/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func strPtr(s string) *string {
	return &s
}

func TestExportImportRoundTrip(t *testing.T) {
	svc := NewService()
	path := filepath.Join(t.TempDir(), "members.xlsx")

	due := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	members := []member.MemberWithStats{
		{
			Member: member.Member{
				ID:             1,
				Name:           "Alice",
				Email:          strPtr("alice@example.com"),
				Phone:          strPtr("555-0100"),
				Address:        strPtr("1 Main St"),
				MembershipType: member.TypePremium,
				Status:         member.StatusActive,
				JoinDate:       time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				Notes:          strPtr("founding member"),
			},
			LastDueDate:  &due,
			PaymentCount: 4,
		},
		{
			Member: member.Member{
				ID:             2,
				Name:           "Bob",
				MembershipType: member.TypeStandard,
				Status:         member.StatusInactive,
				JoinDate:       time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	require.NoError(t, svc.ExportMembers(members, path))

	imported, err := svc.ImportMembers(path)
	require.NoError(t, err)
	require.Len(t, imported, 2)

	// Everything except id, join date and the derived aggregates round-trips.
	assert.Equal(t, "Alice", imported[0].Name)
	assert.Equal(t, "alice@example.com", imported[0].Email)
	assert.Equal(t, "555-0100", imported[0].Phone)
	assert.Equal(t, "1 Main St", imported[0].Address)
	assert.Equal(t, "premium", imported[0].MembershipType)
	assert.Equal(t, "active", imported[0].Status)
	assert.Equal(t, "founding member", imported[0].Notes)

	assert.Equal(t, "Bob", imported[1].Name)
	assert.Equal(t, "", imported[1].Email)
	assert.Equal(t, "standard", imported[1].MembershipType)
	assert.Equal(t, "inactive", imported[1].Status)
}

func TestExportOverwritesExistingFile(t *testing.T) {
	svc := NewService()
	path := filepath.Join(t.TempDir(), "members.xlsx")

	first := []member.MemberWithStats{
		{Member: member.Member{ID: 1, Name: "Alice", MembershipType: member.TypeStandard, Status: member.StatusActive}},
		{Member: member.Member{ID: 2, Name: "Bob", MembershipType: member.TypeStandard, Status: member.StatusActive}},
	}
	require.NoError(t, svc.ExportMembers(first, path))

	second := first[:1]
	require.NoError(t, svc.ExportMembers(second, path))

	imported, err := svc.ImportMembers(path)
	require.NoError(t, err)
	assert.Len(t, imported, 1)
}

func TestImportHeaderAliases(t *testing.T) {
	svc := NewService()
	path := filepath.Join(t.TempDir(), "aliases.xlsx")

	f := excelize.NewFile()
	headers := []interface{}{"NAME", "membership_type", "Status", "EMAIL"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &headers))
	row := []interface{}{"Carol", "vip", "suspended", "carol@example.com"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	imported, err := svc.ImportMembers(path)
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, "Carol", imported[0].Name)
	assert.Equal(t, "vip", imported[0].MembershipType)
	assert.Equal(t, "suspended", imported[0].Status)
	assert.Equal(t, "carol@example.com", imported[0].Email)
}

func TestImportSkipsRowsWithoutName(t *testing.T) {
	svc := NewService()
	path := filepath.Join(t.TempDir(), "noname.xlsx")

	f := excelize.NewFile()
	headers := []interface{}{"Name", "Status", "Email"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &headers))
	row1 := []interface{}{"Bob", "active", ""}
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row1))
	row2 := []interface{}{"", "", "x@x.com"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &row2))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	imported, err := svc.ImportMembers(path)
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, "Bob", imported[0].Name)
}

func TestImportDefaultsTypeAndStatus(t *testing.T) {
	svc := NewService()
	path := filepath.Join(t.TempDir(), "defaults.xlsx")

	f := excelize.NewFile()
	headers := []interface{}{"Name"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &headers))
	row := []interface{}{"Dana"}
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &row))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	imported, err := svc.ImportMembers(path)
	require.NoError(t, err)
	require.Len(t, imported, 1)
	assert.Equal(t, "standard", imported[0].MembershipType)
	assert.Equal(t, "active", imported[0].Status)
}

func TestImportMissingFile(t *testing.T) {
	svc := NewService()

	_, err := svc.ImportMembers(filepath.Join(t.TempDir(), "does-not-exist.xlsx"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open spreadsheet file")
}

func TestImportEmptySheet(t *testing.T) {
	svc := NewService()
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	imported, err := svc.ImportMembers(path)
	require.NoError(t, err)
	assert.Empty(t, imported)
}

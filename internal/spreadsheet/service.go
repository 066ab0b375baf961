package spreadsheet

import (
	"fmt"
	"strings"

	"membertrack/internal/member"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Members"

var exportColumns = []struct {
	header string
	width  float64
}{
	{"ID", 5},
	{"Name", 20},
	{"Email", 25},
	{"Phone", 15},
	{"Address", 30},
	{"Membership Type", 15},
	{"Status", 10},
	{"Join Date", 12},
	{"Last Due Date", 12},
	{"Payment Count", 12},
	{"Notes", 30},
}

type Service interface {
	ExportMembers(members []member.MemberWithStats, path string) error
	ImportMembers(path string) ([]member.CreateMemberRequest, error)
}

type service struct{}

func NewService() Service {
	return &service{}
}

// ExportMembers writes one row per member to a single-sheet xlsx file,
// building the whole sheet in memory. An existing file at path is overwritten.
func (s *service) ExportMembers(members []member.MemberWithStats, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to build spreadsheet: %w", err)
	}

	headers := make([]interface{}, len(exportColumns))
	for i, col := range exportColumns {
		headers[i] = col.header

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to build spreadsheet: %w", err)
		}
		if err := f.SetColWidth(sheetName, name, name, col.width); err != nil {
			return fmt.Errorf("failed to build spreadsheet: %w", err)
		}
	}
	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return fmt.Errorf("failed to build spreadsheet: %w", err)
	}

	for i, m := range members {
		lastDue := ""
		if m.LastDueDate != nil {
			lastDue = m.LastDueDate.Format("2006-01-02")
		}

		row := []interface{}{
			m.ID,
			m.Name,
			stringOrEmpty(m.Email),
			stringOrEmpty(m.Phone),
			stringOrEmpty(m.Address),
			string(m.MembershipType),
			string(m.Status),
			m.JoinDate.Format("2006-01-02"),
			lastDue,
			m.PaymentCount,
			stringOrEmpty(m.Notes),
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to build spreadsheet: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to build spreadsheet: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write spreadsheet file: %w", err)
	}

	return nil
}

// ImportMembers reads the first sheet of the file at path and returns one
// candidate member per data row. Rows without a name are dropped. Nothing is
// persisted here; the caller decides what to do with each candidate.
func (s *service) ImportMembers(path string) ([]member.CreateMemberRequest, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet file: %w", err)
	}
	if len(rows) == 0 {
		return []member.CreateMemberRequest{}, nil
	}

	columns := map[string]int{}
	for i, header := range rows[0] {
		columns[normalizeHeader(header)] = i
	}

	members := []member.CreateMemberRequest{}
	for _, row := range rows[1:] {
		candidate := member.CreateMemberRequest{
			Name:           cellValue(row, columns, "name"),
			Email:          cellValue(row, columns, "email"),
			Phone:          cellValue(row, columns, "phone"),
			Address:        cellValue(row, columns, "address"),
			MembershipType: cellValue(row, columns, "membership_type"),
			Status:         cellValue(row, columns, "status"),
			Notes:          cellValue(row, columns, "notes"),
		}

		// Rows without a name cannot become members.
		if candidate.Name == "" {
			continue
		}

		if candidate.MembershipType == "" {
			candidate.MembershipType = string(member.TypeStandard)
		}
		if candidate.Status == "" {
			candidate.Status = string(member.StatusActive)
		}

		members = append(members, candidate)
	}

	return members, nil
}

// normalizeHeader maps both the human-readable header ("Membership Type") and
// the raw field name ("membership_type") onto the same key.
func normalizeHeader(header string) string {
	normalized := strings.ToLower(strings.TrimSpace(header))
	return strings.ReplaceAll(normalized, " ", "_")
}

func cellValue(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteSummaryCSV writes summary rows as CSV with a header line.
func WriteSummaryCSV(w io.Writer, rows []SummaryRow) error {
	writer := csv.NewWriter(w)

	header := []string{"Customer", "Buyer", "Style", "Color", "PO No", "Order Qty", "Total Print", "Total Pack", "Total Dispatch", "Total Rejects", "Reject %"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			row.Order.Customer,
			row.Order.Buyer,
			row.Order.Style,
			row.Order.Color,
			row.Order.PONo,
			strconv.Itoa(row.Order.Qty),
			strconv.Itoa(row.TotalPrint),
			strconv.Itoa(row.TotalPack),
			strconv.Itoa(row.TotalDispatch),
			strconv.Itoa(row.TotalRejects),
			fmt.Sprintf("%.1f", row.RejectPct),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteMatrixCSV writes the matrix with one column per date. Dates with no
// activity for a row are written as empty fields.
func WriteMatrixCSV(w io.Writer, m Matrix) error {
	writer := csv.NewWriter(w)

	header := append([]string{"Customer", "Style", "PO No", "Metric"}, m.Dates...)
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, row := range m.Rows {
		record := make([]string, 0, 4+len(m.Dates))
		record = append(record, row.Order.Customer, row.Order.Style, row.Order.PONo, row.Metric)
		for _, date := range m.Dates {
			v, ok := row.Cell(date)
			if !ok {
				record = append(record, "")
				continue
			}
			record = append(record, strconv.Itoa(v))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

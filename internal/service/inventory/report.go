package inventory

import (
	"bufio"
	"fmt"
	"io"
)

// ReportHeader — первая строка отчёта.
const ReportHeader = "Items Report"

// PrintReport выводит заголовок и по строке «товар -> количество» на позицию.
func (s *Store) PrintReport(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, ReportHeader); err != nil {
		return err
	}
	for _, e := range s.repo.Entries() {
		if _, err := fmt.Fprintf(bw, "%s -> %d\n", e.Item, e.Qty); err != nil {
			return err
		}
	}
	return bw.Flush()
}

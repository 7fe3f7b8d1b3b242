package domain

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type Half int

const (
	FirstHalf Half = iota
	SecondHalf
)

func (h Half) String() string {
	if h == SecondHalf {
		return "Last 6 Months (Jul-Dec)"
	}
	return "First 6 Months (Jan-Jun)"
}

// DateRange é inclusivo nas duas pontas e só existe como filtro da busca.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// HalfYear devolve 01/01–30/06 ou 01/07–31/12 do ano informado.
func HalfYear(year int, half Half) DateRange {
	if half == SecondHalf {
		return DateRange{
			Start: time.Date(year, time.July, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
		}
	}
	return DateRange{
		Start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(year, time.June, 30, 0, 0, 0, 0, time.UTC),
	}
}

func (r DateRange) PublishedAfter() string {
	return r.Start.Format(dateLayout) + "T00:00:00Z"
}

func (r DateRange) PublishedBefore() string {
	return r.End.Format(dateLayout) + "T23:59:59Z"
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s to %s", r.Start.Format(dateLayout), r.End.Format(dateLayout))
}

// Package bizdate convierte las fechas de negocio que envían los PDA
// ("20240131" o "2024-01-31") a time.Time en la zona horaria de la planta.
package bizdate

import (
	"fmt"
	"strings"
	"time"
)

const (
	compactLayout = "20060102"
	isoLayout     = "2006-01-02"
)

// Parse interpreta s como fecha de negocio (medianoche en loc).
func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.UTC
	}
	layout := isoLayout
	if len(s) == len(compactLayout) && !strings.Contains(s, "-") {
		layout = compactLayout
	}
	t, err := time.ParseInLocation(layout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("bizdate: fecha inválida %q: %w", s, err)
	}
	return t, nil
}

// ParseOr devuelve def cuando s está vacío; si no, delega en Parse.
func ParseOr(s string, loc *time.Location, def time.Time) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return def, nil
	}
	return Parse(s, loc)
}

// Today fecha de negocio actual (medianoche) en loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	n := now.In(loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
}

// Compact formatea como YYYYMMDD (formato de las tablas heredadas).
func Compact(t time.Time) string {
	return t.Format(compactLayout)
}

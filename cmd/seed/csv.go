package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

// decoded envuelve r con el decodificador EUC-KR (exportaciones del ERP).
func decoded(r io.Reader, eucKR bool) io.Reader {
	if !eucKR {
		return r
	}
	return transform.NewReader(r, korean.EUCKR.NewDecoder())
}

// readRows lee el CSV saltando la cabecera y las filas vacías.
func readRows(r io.Reader, minCols int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out [][]string
	line := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}
		line++
		if line == 1 || (len(rec) == 1 && strings.TrimSpace(rec[0]) == "") {
			continue
		}
		if len(rec) < minCols {
			return nil, fmt.Errorf("línea %d: se esperaban %d columnas, hay %d", line, minCols, len(rec))
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		out = append(out, rec)
	}
	return out, nil
}

// parseItems columnas: item_code, item_name, spec, unit[, use_yn].
func parseItems(r io.Reader, now time.Time) ([]*entity.Item, error) {
	rows, err := readRows(r, 4)
	if err != nil {
		return nil, err
	}
	items := make([]*entity.Item, 0, len(rows))
	for _, rec := range rows {
		if rec[0] == "" {
			continue
		}
		items = append(items, &entity.Item{
			ItemCode:  rec[0],
			ItemName:  rec[1],
			Spec:      rec[2],
			Unit:      rec[3],
			UseYN:     useYN(rec, 4),
			UpdatedAt: now,
		})
	}
	return items, nil
}

// parseWarehouses columnas: saupj, whs_code, whs_name, whs_type[, use_yn].
func parseWarehouses(r io.Reader) ([]*entity.Warehouse, error) {
	rows, err := readRows(r, 4)
	if err != nil {
		return nil, err
	}
	whs := make([]*entity.Warehouse, 0, len(rows))
	for _, rec := range rows {
		if rec[0] == "" || rec[1] == "" {
			continue
		}
		whs = append(whs, &entity.Warehouse{
			Saupj:   rec[0],
			WhsCode: rec[1],
			WhsName: rec[2],
			WhsType: rec[3],
			UseYN:   useYN(rec, 4),
		})
	}
	return whs, nil
}

func useYN(rec []string, i int) string {
	if i < len(rec) && strings.EqualFold(rec[i], "N") {
		return "N"
	}
	return "Y"
}

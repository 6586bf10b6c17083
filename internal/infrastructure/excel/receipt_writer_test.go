package excel

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/mes-pda-api/internal/application/dto"
)

func TestWriteReceipts(t *testing.T) {
	rows := []dto.MovementResponse{
		{MovDate: "20240315", BoxNo: "BOX001", ItemCode: "ITEM-A", ToWhsCode: "WH01", Qty: decimal.NewFromInt(50), RegUser: "PDA01", RegDate: "2024-03-15 10:00"},
		{MovDate: "20240315", BoxNo: "BOX002", ItemCode: "ITEM-A", ToWhsCode: "WH01", Qty: decimal.NewFromInt(20), RegUser: "PDA01", Cancelled: true},
	}

	data, err := NewReceiptWriter().WriteReceipts(context.Background(), "Recepciones WH01", rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Recepciones WH01", title)

	got, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "Box", got[1][1])
	assert.Equal(t, "BOX002", got[3][1])
	assert.Equal(t, "Y", got[3][8])
}

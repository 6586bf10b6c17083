package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mes-pda-api/internal/domain/entity"
)

func TestGenerateShipmentSlip(t *testing.T) {
	day := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	s := &entity.Shipment{
		ShipNo: "SH1000-20240315-01", Saupj: "1000", ShipDate: day, Round: 1,
		CustomerCode: "C01", WhsCode: "WH01", RegUser: "PDA01", RegDate: day,
		Lines: []entity.ShipmentLine{
			{ShipNo: "SH1000-20240315-01", BoxNo: "BOX001", ItemCode: "ITEM-A", Quantity: decimal.NewFromInt(5)},
			{ShipNo: "SH1000-20240315-01", BoxNo: "BOX002", ItemCode: "ITEM-B", Quantity: decimal.NewFromInt(7)},
		},
	}
	items := map[string]*entity.Item{"ITEM-A": {ItemCode: "ITEM-A", ItemName: "Placa principal"}}

	doc, err := NewMarotoPDFGenerator().GenerateShipmentSlip(context.Background(), s, items)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(doc, []byte("%PDF")))
}

func TestGenerateShipmentSlip_Nil(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateShipmentSlip(context.Background(), nil, nil)
	assert.Error(t, err)
}

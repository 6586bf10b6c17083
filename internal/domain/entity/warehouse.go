package entity

// Tipos de almacén (pmw100.whs_type).
const (
	WarehouseMaterial = "M" // almacén de materiales
	WarehouseProduct  = "P" // producto terminado
	WarehouseLine     = "L" // stock virtual de línea
	WarehouseVendor   = "V" // proveedor externo
)

// Warehouse ubicación física o lógica donde vive el stock.
type Warehouse struct {
	Saupj   string
	WhsCode string
	WhsName string
	WhsType string
	UseYN   string
}

// Line línea de producción; LineWhs es su ubicación de stock de línea.
type Line struct {
	Saupj    string
	LineCode string
	LineName string
	OpCode   string
	LineWhs  string
}

// Code elemento de una lista de códigos (combo) de pmc100.
type Code struct {
	MajorCode string
	MinorCode string
	CodeName  string
	SortSeq   int
}

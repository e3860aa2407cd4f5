package chart

import "github.com/rgavilanes/contable/internal/ledger"

// ClassLabel maps each account class to its display label.
var ClassLabel = map[ledger.Class]string{
	ledger.ClassAsset:     "Activos",
	ledger.ClassLiability: "Pasivos",
	ledger.ClassEquity:    "Patrimonio",
	ledger.ClassRevenue:   "Ingresos",
	ledger.ClassExpense:   "Gastos",
}

// Default is the curated starting catalog. It includes the two well-known tax
// accounts (1103 and 2103.01) so tax-bearing entries work out of the box.
// Codes follow the length scheme: 1 digit class, 2 digit sub-class, 4 digit
// postable leaf, dotted sub-leaf.
func Default() []ledger.Account {
	return []ledger.Account{
		{Code: "1", Name: "Activos"},
		{Code: "11", Name: "Activo Corriente"},
		{Code: "1101", Name: "Caja"},
		{Code: "1102", Name: "Bancos"},
		{Code: "1103", Name: "IVA Crédito Fiscal"},
		{Code: "1104", Name: "Cuentas por Cobrar"},
		{Code: "1105", Name: "Inventario"},
		{Code: "12", Name: "Activo No Corriente"},
		{Code: "1201", Name: "Mobiliario y Equipo"},
		{Code: "1202", Name: "Equipo de Cómputo"},
		{Code: "2", Name: "Pasivos"},
		{Code: "21", Name: "Pasivo Corriente"},
		{Code: "2101", Name: "Cuentas por Pagar"},
		{Code: "2102", Name: "Préstamos Bancarios"},
		{Code: "2103", Name: "Impuestos por Pagar"},
		{Code: "2103.01", Name: "IVA Débito Fiscal"},
		{Code: "3", Name: "Patrimonio"},
		{Code: "31", Name: "Capital"},
		{Code: "3101", Name: "Capital Social"},
		{Code: "3102", Name: "Utilidades Retenidas"},
		{Code: "4", Name: "Ingresos"},
		{Code: "41", Name: "Ingresos de Operación"},
		{Code: "4101", Name: "Ventas"},
		{Code: "4102", Name: "Ingresos por Servicios"},
		{Code: "5", Name: "Gastos"},
		{Code: "51", Name: "Gastos de Operación"},
		{Code: "5101", Name: "Gastos de Administración"},
		{Code: "5102", Name: "Sueldos y Salarios"},
		{Code: "5103", Name: "Alquileres"},
		{Code: "5104", Name: "Servicios Básicos"},
	}
}

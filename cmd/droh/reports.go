package main

import (
	"github.com/spf13/cobra"

	"github.com/bekendz87/droh-admin/internal/reports"
)

func invoicesCmd() *cobra.Command {
	return reportCmd("invoices", "Browse the invoice report", reports.Invoices)
}

func cashierCmd() *cobra.Command {
	return reportCmd("cashier", "Browse cashier top-ups and withdrawals", reports.Cashier)
}

func examinationsCmd() *cobra.Command {
	return reportCmd("examinations", "Browse the examination report", reports.Examinations)
}

func debitsCmd() *cobra.Command {
	return reportCmd("debits", "Browse debit and refund requests", reports.Debits)
}

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bekendz87/droh-admin/internal/report"
)

func TestParseSetPairs(t *testing.T) {
	values, err := parseSetPairs([]string{
		"invoiceType=payment",
		"sources=cash,card",
		"patient=",
	})
	require.NoError(t, err)

	assert.Equal(t, report.FieldValue{Value: "payment"}, values["invoiceType"])
	assert.Equal(t, report.FieldValue{Values: []string{"cash", "card"}}, values["sources"])
	assert.Equal(t, report.FieldValue{}, values["patient"])
}

func TestParseSetPairsRejectsMalformed(t *testing.T) {
	_, err := parseSetPairs([]string{"no-equals-sign"})
	assert.Error(t, err)

	_, err = parseSetPairs([]string{"=value"})
	assert.Error(t, err)
}

func TestDescribeValues(t *testing.T) {
	got := describeValues(report.ValueMap{
		"sources": {Values: []string{"cash", "card"}},
		"empty":   {},
	})
	assert.Contains(t, got, "sources=cash,card")
	assert.NotContains(t, got, "empty")
}

package main

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ecommerce-dashboard/infrastructure/repository"
)

func TestSchema_PaymentValueKeepsFullPrecision(t *testing.T) {
	var payments string
	for _, stmt := range schema {
		if strings.HasPrefix(stmt, "CREATE TABLE "+repository.PaymentsTable+" ") {
			payments = stmt
		}
	}

	if assert.NotEmpty(t, payments) {
		assert.Regexp(t, regexp.MustCompile(`payment_value NUMERIC NOT NULL`), payments)
		assert.NotContains(t, payments, "NUMERIC(", "precisão fixa arredonda o valor importado")
	}
}

package reporting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
)

func payment(orderID, paymentType, value string) domain.Payment {
	return domain.Payment{
		OrderID:      orderID,
		Sequential:   1,
		Type:         paymentType,
		Installments: 1,
		Value:        decimal.RequireFromString(value),
	}
}

func order(id, status string, purchasedAt time.Time) domain.Order {
	return domain.Order{
		OrderID:           id,
		CustomerID:        "c-" + id,
		Status:            status,
		PurchaseTimestamp: domain.Timestamp{Raw: purchasedAt.Format("2006-01-02 15:04:05"), Time: purchasedAt},
	}
}

func TestSummarizePaymentMethods(t *testing.T) {
	payments := []domain.Payment{
		payment("1", "credit_card", "10"),
		payment("2", "boleto", "20"),
		payment("3", "credit_card", "30"),
		payment("4", "voucher", "5"),
		payment("4", "credit_card", "5"),
		payment("5", "boleto", "12"),
	}

	summary := SummarizePaymentMethods(payments)

	assert.Equal(t, []domain.CategoryCount{
		{Key: "credit_card", Count: 3},
		{Key: "boleto", Count: 2},
		{Key: "voucher", Count: 1},
	}, summary)

	total := 0
	for _, row := range summary {
		total += row.Count
	}
	assert.Equal(t, len(payments), total, "as contagens devem particionar a tabela")
}

func TestSummarizePaymentMethods_TiesAreDeterministic(t *testing.T) {
	payments := []domain.Payment{
		payment("1", "voucher", "1"),
		payment("2", "debit_card", "1"),
		payment("3", "boleto", "1"),
		payment("4", "credit_card", "1"),
	}

	expected := []domain.CategoryCount{
		{Key: "boleto", Count: 1},
		{Key: "credit_card", Count: 1},
		{Key: "debit_card", Count: 1},
		{Key: "voucher", Count: 1},
	}

	for i := 0; i < 20; i++ {
		assert.Equal(t, expected, SummarizePaymentMethods(payments))
	}
}

func TestSummarizeOrderStatus(t *testing.T) {
	jan := time.Date(2018, 1, 10, 0, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		order("1", "delivered", jan),
		order("2", "shipped", jan),
		order("3", "delivered", jan),
		order("4", "canceled", jan),
		order("5", "delivered", jan),
	}

	summary := SummarizeOrderStatus(orders)

	assert.Equal(t, []domain.CategoryCount{
		{Key: "delivered", Count: 3},
		{Key: "canceled", Count: 1},
		{Key: "shipped", Count: 1},
	}, summary)

	keys := make(map[string]bool)
	for _, row := range summary {
		keys[row.Key] = true
	}
	assert.Equal(t, map[string]bool{"delivered": true, "shipped": true, "canceled": true}, keys)
}

func TestSummarizeMonthlyTrend_GapPolicy(t *testing.T) {
	orders := []domain.Order{
		order("jan-1", "delivered", time.Date(2018, 1, 5, 10, 0, 0, 0, time.UTC)),
		order("jan-2", "delivered", time.Date(2018, 1, 28, 22, 0, 0, 0, time.UTC)),
		order("feb-1", "delivered", time.Date(2018, 2, 2, 9, 0, 0, 0, time.UTC)),
	}
	payments := []domain.Payment{
		payment("jan-1", "credit_card", "100"),
		payment("jan-2", "boleto", "50"),
	}

	trend := SummarizeMonthlyTrend(orders, payments)

	require.Len(t, trend, 1, "fevereiro não tem pagamento e não deve aparecer")
	assert.Equal(t, time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), trend[0].Month)
	assert.Equal(t, "2018-01", trend[0].Period())
	assert.Equal(t, 2, trend[0].OrderCount)
	assert.True(t, decimal.NewFromInt(150).Equal(trend[0].Revenue), "receita: %s", trend[0].Revenue)
}

func TestSummarizeMonthlyTrend_MultiplePaymentsAndOrdering(t *testing.T) {
	orders := []domain.Order{
		order("mar", "delivered", time.Date(2018, 3, 1, 0, 0, 0, 0, time.UTC)),
		order("jan", "delivered", time.Date(2018, 1, 31, 23, 59, 59, 0, time.UTC)),
		order("may", "delivered", time.Date(2018, 5, 15, 0, 0, 0, 0, time.UTC)),
	}
	payments := []domain.Payment{
		payment("mar", "credit_card", "10.10"),
		payment("mar", "voucher", "0.20"),
		payment("jan", "boleto", "99.99"),
		payment("may", "credit_card", "1"),
		payment("unknown", "credit_card", "500"),
	}

	trend := SummarizeMonthlyTrend(orders, payments)

	require.Len(t, trend, 3)
	assert.Equal(t, "2018-01", trend[0].Period())
	assert.Equal(t, "2018-03", trend[1].Period())
	assert.Equal(t, "2018-05", trend[2].Period(), "abril não tem atividade e não é sintetizado")

	assert.Equal(t, 2, trend[1].OrderCount, "um pedido com dois pagamentos conta duas vezes")
	assert.True(t, decimal.RequireFromString("10.30").Equal(trend[1].Revenue))
	assert.True(t, decimal.RequireFromString("99.99").Equal(trend[0].Revenue))
}

func TestSummarizeMonthlyTrend_NoMatchingKeys(t *testing.T) {
	orders := []domain.Order{order("1", "delivered", time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC))}
	payments := []domain.Payment{payment("2", "boleto", "10")}

	trend := SummarizeMonthlyTrend(orders, payments)

	assert.NotNil(t, trend)
	assert.Empty(t, trend)
}

func TestSummarizeGeo(t *testing.T) {
	customers := []domain.Customer{
		{CustomerID: "1", City: "A", ZipCodePrefix: "1"},
		{CustomerID: "2", City: "A", ZipCodePrefix: "1"},
		{CustomerID: "3", City: "B", ZipCodePrefix: "2"},
	}
	geolocations := []domain.Geolocation{
		{ZipCodePrefix: "1", Lat: 10, Lng: 20},
		{ZipCodePrefix: "2", Lat: 30, Lng: 40},
	}

	summary := SummarizeGeo(geolocations, customers)

	assert.Equal(t, []domain.CityDensity{
		{City: "A", Count: 2, Lat: 10, Lng: 20},
		{City: "B", Count: 1, Lat: 30, Lng: 40},
	}, summary)
}

func TestSummarizeGeo_RepresentativeAndUnmatched(t *testing.T) {
	customers := []domain.Customer{
		{CustomerID: "1", City: "sao paulo", ZipCodePrefix: "01037"},
		{CustomerID: "2", City: "sao paulo", ZipCodePrefix: "1046"},
		{CustomerID: "3", City: "campinas", ZipCodePrefix: "13000"},
		{CustomerID: "4", City: "curitiba", ZipCodePrefix: "80000"},
	}
	geolocations := []domain.Geolocation{
		{ZipCodePrefix: "1037", Lat: -23.54, Lng: -46.63},
		{ZipCodePrefix: "1037", Lat: -23.99, Lng: -46.99},
		{ZipCodePrefix: "1046", Lat: -23.50, Lng: -46.60},
		{ZipCodePrefix: "13000", Lat: -22.90, Lng: -47.06},
	}

	summary := SummarizeGeo(geolocations, customers)

	require.Len(t, summary, 2, "curitiba não tem prefixo correspondente")
	assert.Equal(t, domain.CityDensity{City: "sao paulo", Count: 2, Lat: -23.54, Lng: -46.63}, summary[0])
	assert.Equal(t, domain.CityDensity{City: "campinas", Count: 1, Lat: -22.90, Lng: -47.06}, summary[1])
}

func TestSummarizeGeo_BlankPrefixesDoNotJoin(t *testing.T) {
	customers := []domain.Customer{
		{CustomerID: "1", City: "sem cep", ZipCodePrefix: ""},
		{CustomerID: "2", City: "sem cep", ZipCodePrefix: "   "},
		{CustomerID: "3", City: "campinas", ZipCodePrefix: "13000"},
	}
	geolocations := []domain.Geolocation{
		{ZipCodePrefix: " ", Lat: 1, Lng: 1},
		{ZipCodePrefix: "", Lat: 2, Lng: 2},
		{ZipCodePrefix: "13000", Lat: -22.90, Lng: -47.06},
	}

	summary := SummarizeGeo(geolocations, customers)

	assert.Equal(t, []domain.CityDensity{
		{City: "campinas", Count: 1, Lat: -22.90, Lng: -47.06},
	}, summary)
}

func TestSummarizeGeo_TiesOrderedByCity(t *testing.T) {
	customers := []domain.Customer{
		{CustomerID: "1", City: "recife", ZipCodePrefix: "3"},
		{CustomerID: "2", City: "belem", ZipCodePrefix: "1"},
		{CustomerID: "3", City: "manaus", ZipCodePrefix: "2"},
		{CustomerID: "4", City: "manaus", ZipCodePrefix: "2"},
		{CustomerID: "5", City: "recife", ZipCodePrefix: "3"},
		{CustomerID: "6", City: "belem", ZipCodePrefix: "1"},
		{CustomerID: "7", City: "aracaju", ZipCodePrefix: "4"},
	}
	geolocations := []domain.Geolocation{
		{ZipCodePrefix: "1", Lat: 1, Lng: 1},
		{ZipCodePrefix: "2", Lat: 2, Lng: 2},
		{ZipCodePrefix: "3", Lat: 3, Lng: 3},
		{ZipCodePrefix: "4", Lat: 4, Lng: 4},
	}

	summary := SummarizeGeo(geolocations, customers)

	require.Len(t, summary, 4)
	var order []string
	for _, row := range summary {
		order = append(order, row.City)
	}
	assert.Equal(t, []string{"belem", "manaus", "recife", "aracaju"}, order)
	assert.Equal(t, 2, summary[0].Count)
	assert.Equal(t, 1, summary[3].Count)
}

func TestSummarizeGeo_NoCustomers(t *testing.T) {
	geolocations := []domain.Geolocation{
		{ZipCodePrefix: "1037", Lat: -23.54, Lng: -46.63},
	}

	for _, customers := range [][]domain.Customer{nil, {}} {
		geo := SummarizeGeo(geolocations, customers)
		assert.NotNil(t, geo)
		assert.Empty(t, geo)
	}
}

func TestAggregations_EmptyInput(t *testing.T) {
	paymentSummary := SummarizePaymentMethods(nil)
	assert.NotNil(t, paymentSummary)
	assert.Empty(t, paymentSummary)

	statusSummary := SummarizeOrderStatus([]domain.Order{})
	assert.NotNil(t, statusSummary)
	assert.Empty(t, statusSummary)

	trend := SummarizeMonthlyTrend(nil, nil)
	assert.NotNil(t, trend)
	assert.Empty(t, trend)

	geo := SummarizeGeo(nil, []domain.Customer{{City: "A", ZipCodePrefix: "1"}})
	assert.NotNil(t, geo)
	assert.Empty(t, geo)
}

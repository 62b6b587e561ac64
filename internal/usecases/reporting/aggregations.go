package reporting

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
	"github.com/vfg2006/ecommerce-dashboard/pkg/utils"
)

// SummarizePaymentMethods conta os pagamentos por payment_type.
// Ordena por contagem decrescente e, em caso de empate, pelo tipo em ordem lexical crescente.
func SummarizePaymentMethods(payments []domain.Payment) []domain.CategoryCount {
	return countBy(payments, func(p domain.Payment) string { return p.Type })
}

// SummarizeOrderStatus conta os pedidos por order_status, com a mesma ordenação de SummarizePaymentMethods
func SummarizeOrderStatus(orders []domain.Order) []domain.CategoryCount {
	return countBy(orders, func(o domain.Order) string { return o.Status })
}

// SummarizeMonthlyTrend cruza pedidos e pagamentos por order_id (inner join) e agrupa pelo mês
// da data de compra. Cada pagamento de um pedido conta como uma linha. Meses sem nenhuma linha
// cruzada não aparecem no resultado. Os pedidos precisam ter passado pela limpeza.
func SummarizeMonthlyTrend(orders []domain.Order, payments []domain.Payment) []domain.MonthlyTrend {
	paymentsByOrder := make(map[string][]decimal.Decimal, len(payments))
	for _, payment := range payments {
		paymentsByOrder[payment.OrderID] = append(paymentsByOrder[payment.OrderID], payment.Value)
	}

	buckets := make(map[time.Time]*domain.MonthlyTrend)
	for _, order := range orders {
		values, ok := paymentsByOrder[order.OrderID]
		if !ok {
			continue
		}

		month := utils.StartOfMonth(order.PurchaseTimestamp.Time)
		bucket, exists := buckets[month]
		if !exists {
			bucket = &domain.MonthlyTrend{Month: month, Revenue: decimal.Zero}
			buckets[month] = bucket
		}

		for _, value := range values {
			bucket.OrderCount++
			bucket.Revenue = bucket.Revenue.Add(value)
		}
	}

	trend := make([]domain.MonthlyTrend, 0, len(buckets))
	for _, bucket := range buckets {
		trend = append(trend, *bucket)
	}

	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Month.Before(trend[j].Month)
	})

	return trend
}

// SummarizeGeo cruza clientes e geolocalização pelo prefixo de CEP (inner join) e conta os
// clientes por cidade. As coordenadas de cada cidade vêm da primeira linha de geolocalização do
// prefixo do primeiro cliente encontrado daquela cidade, na ordem das tabelas.
// Prefixos vazios depois da normalização não participam do join, dos dois lados.
// Ordena por contagem decrescente e, em caso de empate, pela cidade. Não trunca o resultado.
func SummarizeGeo(geolocations []domain.Geolocation, customers []domain.Customer) []domain.CityDensity {
	firstByPrefix := make(map[string]domain.Geolocation, len(geolocations))
	for _, geo := range geolocations {
		prefix := domain.NormalizeZipCodePrefix(geo.ZipCodePrefix)
		if prefix == "" {
			continue
		}
		if _, exists := firstByPrefix[prefix]; !exists {
			firstByPrefix[prefix] = geo
		}
	}

	cities := make(map[string]*domain.CityDensity)
	for _, customer := range customers {
		prefix := domain.NormalizeZipCodePrefix(customer.ZipCodePrefix)
		if prefix == "" {
			continue
		}

		geo, ok := firstByPrefix[prefix]
		if !ok {
			continue
		}

		city, exists := cities[customer.City]
		if !exists {
			city = &domain.CityDensity{City: customer.City, Lat: geo.Lat, Lng: geo.Lng}
			cities[customer.City] = city
		}
		city.Count++
	}

	density := make([]domain.CityDensity, 0, len(cities))
	for _, city := range cities {
		density = append(density, *city)
	}

	sort.Slice(density, func(i, j int) bool {
		if density[i].Count != density[j].Count {
			return density[i].Count > density[j].Count
		}
		return density[i].City < density[j].City
	})

	return density
}

func countBy[T any](rows []T, key func(T) string) []domain.CategoryCount {
	counts := make(map[string]int)
	for _, row := range rows {
		counts[key(row)]++
	}

	summary := make([]domain.CategoryCount, 0, len(counts))
	for k, count := range counts {
		summary = append(summary, domain.CategoryCount{Key: k, Count: count})
	}

	sort.Slice(summary, func(i, j int) bool {
		if summary[i].Count != summary[j].Count {
			return summary[i].Count > summary[j].Count
		}
		return summary[i].Key < summary[j].Key
	})

	return summary
}

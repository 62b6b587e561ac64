package domain

import (
	"fmt"
	"strings"
)

// ReportKind identifica um dos resumos exibidos no dashboard
type ReportKind string

const (
	ReportPaymentMethods ReportKind = "payment_methods"
	ReportOrderStatus    ReportKind = "order_status"
	ReportMonthlyTrend   ReportKind = "monthly_trend"
	ReportGeo            ReportKind = "geo"
)

// AllReports lista os resumos na ordem em que as abas aparecem
var AllReports = []ReportKind{
	ReportPaymentMethods,
	ReportOrderStatus,
	ReportMonthlyTrend,
	ReportGeo,
}

// Title retorna o nome da aba exibida para o resumo
func (k ReportKind) Title() string {
	switch k {
	case ReportPaymentMethods:
		return "Metode Pembayaran"
	case ReportOrderStatus:
		return "Status transaksi"
	case ReportMonthlyTrend:
		return "Tren pengguna"
	case ReportGeo:
		return "Demografi pembeli"
	default:
		return string(k)
	}
}

// Caption retorna o texto exibido abaixo do título da aba
func (k ReportKind) Caption() string {
	switch k {
	case ReportPaymentMethods:
		return "Lihat Metode pembayaran yang banyak dipakai oleh pengguna"
	case ReportOrderStatus:
		return "Lihat persentase status transaksi"
	case ReportMonthlyTrend:
		return "Lihat tren pengguna berdasarkan jumlah pengguna dan total pembayaran yang didapatkan oleh perusahaan"
	case ReportGeo:
		return "Lihat kota dengan jumlah pembeli terbanyak"
	default:
		return ""
	}
}

// ParseReportKinds converte a lista configurada em resumos válidos, mantendo a ordem de AllReports
func ParseReportKinds(names []string) ([]ReportKind, error) {
	requested := make(map[ReportKind]bool, len(names))
	for _, name := range names {
		name = strings.TrimSpace(strings.ToLower(name))
		if name == "" {
			continue
		}

		kind := ReportKind(name)
		if !kind.Valid() {
			return nil, fmt.Errorf("relatório desconhecido: %s", name)
		}
		requested[kind] = true
	}

	kinds := make([]ReportKind, 0, len(requested))
	for _, kind := range AllReports {
		if requested[kind] {
			kinds = append(kinds, kind)
		}
	}

	return kinds, nil
}

// Valid indica se o resumo é conhecido
func (k ReportKind) Valid() bool {
	for _, kind := range AllReports {
		if k == kind {
			return true
		}
	}
	return false
}

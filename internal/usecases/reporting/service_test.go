package reporting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ecommerce-dashboard/infrastructure/dataset/mocks"
	"github.com/vfg2006/ecommerce-dashboard/internal/domain"
	"go.uber.org/mock/gomock"
)

func rawOrder(id, status, purchasedAt string) domain.Order {
	return domain.Order{
		OrderID:               id,
		CustomerID:            "c-" + id,
		Status:                status,
		PurchaseTimestamp:     domain.Timestamp{Raw: purchasedAt},
		ApprovedAt:            domain.Timestamp{Raw: purchasedAt},
		DeliveredCarrierDate:  domain.Timestamp{Raw: purchasedAt},
		DeliveredCustomerDate: domain.Timestamp{Raw: purchasedAt},
		EstimatedDeliveryDate: domain.Timestamp{Raw: purchasedAt},
	}
}

func fixtureDataset() *domain.Dataset {
	incomplete := rawOrder("3", "canceled", "2018-02-10 08:00:00")
	incomplete.DeliveredCustomerDate = domain.Timestamp{}

	return &domain.Dataset{
		Source: domain.DatasetSourceCSV,
		Orders: []domain.Order{
			rawOrder("1", "delivered", "2018-01-05 10:00:00"),
			rawOrder("2", "delivered", "2018-02-07 11:30:00"),
			incomplete,
		},
		Payments: []domain.Payment{
			payment("1", "credit_card", "100.50"),
			payment("2", "boleto", "20"),
			payment("3", "voucher", "5"),
		},
		Customers: []domain.Customer{
			{CustomerID: "c-1", City: "sao paulo", ZipCodePrefix: "1037"},
		},
		Geolocations: []domain.Geolocation{
			{ZipCodePrefix: "1037", Lat: -23.5, Lng: -46.6},
		},
	}
}

func TestService_NotLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewService(mocks.NewMockLoader(ctrl), domain.AllReports)

	_, err := service.Info()
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)

	_, err = service.Summaries(domain.ReportPaymentMethods)
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)

	_, err = service.Summaries(domain.ReportGeo)
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)
}

func TestService_Reload(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(fixtureDataset(), nil)

	service := NewService(loader, domain.AllReports)

	info, err := service.Reload(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, info.ID)
	assert.Equal(t, domain.DatasetSourceCSV, info.Source)
	assert.Equal(t, 3, info.OrdersLoaded)
	assert.Equal(t, 1, info.OrdersDropped)
	assert.Equal(t, 2, info.OrdersCount)
	assert.Equal(t, 3, info.PaymentsCount)

	set, err := service.Summaries()
	require.NoError(t, err)
	assert.Equal(t, info.ID, set.DatasetID)

	assert.Equal(t, []domain.CategoryCount{{Key: "delivered", Count: 2}}, set.OrderStatus)
	assert.Len(t, set.PaymentMethods, 3, "a limpeza não afeta a tabela de pagamentos")

	require.Len(t, set.MonthlyTrend, 2)
	assert.Equal(t, "2018-01", set.MonthlyTrend[0].Period())
	assert.Equal(t, "2018-02", set.MonthlyTrend[1].Period())

	assert.Equal(t, []domain.CityDensity{{City: "sao paulo", Count: 1, Lat: -23.5, Lng: -46.6}}, set.Geo)
}

func TestService_FailedReloadKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	gomock.InOrder(
		loader.EXPECT().Load(gomock.Any()).Return(fixtureDataset(), nil),
		loader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("arquivo indisponível")),
	)

	service := NewService(loader, domain.AllReports)

	first, err := service.Reload(context.Background())
	require.NoError(t, err)

	_, err = service.Reload(context.Background())
	require.Error(t, err)

	current, err := service.Info()
	require.NoError(t, err)
	assert.Equal(t, first.ID, current.ID)
}

func TestService_InvalidTimestampFailsReload(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	ds := fixtureDataset()
	ds.Orders[0].ApprovedAt = domain.Timestamp{Raw: "ontem"}
	loader.EXPECT().Load(gomock.Any()).Return(ds, nil)

	service := NewService(loader, domain.AllReports)

	_, err := service.Reload(context.Background())
	require.Error(t, err)

	_, err = service.Info()
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)
}

func TestService_DisabledReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(fixtureDataset(), nil)

	service := NewService(loader, []domain.ReportKind{domain.ReportPaymentMethods, domain.ReportGeo})

	_, err := service.Reload(context.Background())
	require.NoError(t, err)

	assert.True(t, service.Enabled(domain.ReportGeo))
	assert.False(t, service.Enabled(domain.ReportMonthlyTrend))

	_, err = service.Summaries(domain.ReportMonthlyTrend)
	assert.ErrorIs(t, err, ErrReportDisabled)

	_, err = service.Summaries(domain.ReportOrderStatus)
	assert.ErrorIs(t, err, ErrReportDisabled)

	reports := service.Reports()
	assert.Equal(t, []domain.ReportKind{domain.ReportPaymentMethods, domain.ReportGeo}, reports)
}

func TestService_Summaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)
	loader.EXPECT().Load(gomock.Any()).Return(fixtureDataset(), nil)

	service := NewService(loader, []domain.ReportKind{domain.ReportOrderStatus, domain.ReportGeo})

	info, err := service.Reload(context.Background())
	require.NoError(t, err)

	set, err := service.Summaries()
	require.NoError(t, err)

	assert.Equal(t, info.ID, set.DatasetID)
	assert.Equal(t, info.LoadedAt, set.LoadedAt)
	assert.Equal(t, []domain.ReportKind{domain.ReportOrderStatus, domain.ReportGeo}, set.Reports)
	assert.Equal(t, []domain.CategoryCount{{Key: "delivered", Count: 2}}, set.OrderStatus)
	assert.Len(t, set.Geo, 1)
	assert.Nil(t, set.PaymentMethods, "relatório desabilitado não é calculado")
	assert.Nil(t, set.MonthlyTrend)

	single, err := service.Summaries(domain.ReportGeo)
	require.NoError(t, err)
	assert.Equal(t, []domain.ReportKind{domain.ReportGeo}, single.Reports)
	assert.Nil(t, single.OrderStatus)

	_, err = service.Summaries(domain.ReportGeo, domain.ReportMonthlyTrend)
	assert.ErrorIs(t, err, ErrReportDisabled)
}

func TestService_SummariesSingleSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockLoader(ctrl)

	second := fixtureDataset()
	second.Payments = second.Payments[:1]

	gomock.InOrder(
		loader.EXPECT().Load(gomock.Any()).Return(fixtureDataset(), nil),
		loader.EXPECT().Load(gomock.Any()).Return(second, nil),
	)

	service := NewService(loader, domain.AllReports)

	_, err := service.Reload(context.Background())
	require.NoError(t, err)

	before, err := service.Summaries()
	require.NoError(t, err)

	reloaded, err := service.Reload(context.Background())
	require.NoError(t, err)

	// o conjunto calculado antes da recarga continua inteiro no snapshot antigo
	assert.NotEqual(t, reloaded.ID, before.DatasetID)
	assert.Len(t, before.PaymentMethods, 3)

	after, err := service.Summaries()
	require.NoError(t, err)
	assert.Equal(t, reloaded.ID, after.DatasetID)
	assert.Len(t, after.PaymentMethods, 1)
}

func TestService_SummariesNotLoaded(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewService(mocks.NewMockLoader(ctrl), domain.AllReports)

	_, err := service.Summaries()
	assert.ErrorIs(t, err, ErrDatasetNotLoaded)
}

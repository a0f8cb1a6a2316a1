package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kosht/internal/models/db_models"
	"kosht/internal/models/request_models"
	"kosht/pkg/liqpay"
	"kosht/pkg/utils"
)

func newOrderFixture(t *testing.T) (OrderServiceInterface, *fakeOrderRepo, *fakeProjectRepo, *fakeMailService) {
	t.Helper()

	client, err := liqpay.New("public-key", "private-key")
	require.NoError(t, err)

	orders := newFakeOrderRepo()
	projects := newFakeProjectRepo()
	mail := &fakeMailService{}
	cfg := PaymentConfig{
		DefaultProjectSlug: "shpp-kowo",
		FrontendURL:        "https://donate.example.org",
		ServerURL:          "https://api.example.org",
	}
	return NewOrderService(orders, projects, client, mail, cfg), orders, projects, mail
}

func boolPtr(b bool) *bool { return &b }

func TestCreateDonation_BuildsOrderAndCheckout(t *testing.T) {
	service, orders, projects, mail := newOrderFixture(t)
	project := projects.add(&db_models.Project{Slug: "well", State: db_models.ProjectPublished})

	resp, err := service.CreateDonation(context.Background(), project.ID.String(), request_models.DonationRequest{
		Amount:    300,
		Subscribe: boolPtr(false),
		Name:      "Olha",
		Email:     "olha@example.org",
	})
	require.NoError(t, err)

	order, err := orders.GetByID(context.Background(), resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, db_models.OrderStatusCreated, order.Status)
	assert.Equal(t, float64(300), order.Amount)
	assert.Equal(t, "UAH", order.Currency) // defaulted
	assert.Equal(t, project.ID, order.ProjectID)

	raw, err := base64.StdEncoding.DecodeString(resp.Checkout.Data)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "pay", payload["action"])
	assert.Equal(t, resp.OrderID+":"+project.ID.String(), payload["order_id"])
	assert.Contains(t, payload["server_url"], "/api/v1/transactions/liqpay-confirmation")
	_, hasSubscribe := payload["subscribe"]
	assert.False(t, hasSubscribe)

	require.Len(t, mail.admin, 1)
	assert.Contains(t, mail.admin[0].Subject, "Step 1")
}

func TestCreateDonation_SubscriptionCarriesSchedule(t *testing.T) {
	service, _, projects, _ := newOrderFixture(t)
	project := projects.add(&db_models.Project{Slug: "well", State: db_models.ProjectPublished})

	resp, err := service.CreateDonation(context.Background(), project.ID.String(), request_models.DonationRequest{
		Amount:    50,
		Subscribe: boolPtr(true),
		Language:  "en",
	})
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(resp.Checkout.Data)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "subscribe", payload["action"])
	assert.Equal(t, "1", payload["subscribe"])
	assert.Equal(t, "month", payload["subscribe_periodicity"])
	assert.NotEmpty(t, payload["subscribe_date_start"])
}

func TestCreateDonation_ArchivedProjectRejected(t *testing.T) {
	service, orders, projects, mail := newOrderFixture(t)
	project := projects.add(&db_models.Project{Slug: "done", State: db_models.ProjectArchived})

	_, err := service.CreateDonation(context.Background(), project.ID.String(), request_models.DonationRequest{
		Amount:    300,
		Subscribe: boolPtr(false),
	})
	require.ErrorIs(t, err, utils.ErrProjectArchived)
	assert.Empty(t, orders.orders)
	assert.Empty(t, mail.admin)
}

func TestCreateDonation_UnknownProjectRejected(t *testing.T) {
	service, _, _, _ := newOrderFixture(t)

	_, err := service.CreateDonation(context.Background(), "00000000-0000-0000-0000-000000000001", request_models.DonationRequest{
		Amount:    300,
		Subscribe: boolPtr(false),
	})
	require.ErrorIs(t, err, utils.ErrProjectNotFound)
}

func TestDonorDetails_MergesAndNotifies(t *testing.T) {
	service, orders, projects, mail := newOrderFixture(t)
	project := projects.add(&db_models.Project{Slug: "well", State: db_models.ProjectPublished})
	order := orders.add(&db_models.Order{
		ProjectID:   project.ID,
		DonatorName: "Olha",
		Amount:      300,
		Currency:    "UAH",
		Language:    "en",
	})

	err := service.DonorDetails(context.Background(), request_models.DonorDetailsRequest{
		OrderID: order.ID.String(),
		Surname: "Kovalenko",
		Email:   "olha@example.org",
	})
	require.NoError(t, err)

	// Partial update: the name set at step-1 survives.
	assert.Equal(t, "Olha", order.DonatorName)
	assert.Equal(t, "Kovalenko", order.DonatorSurname)
	assert.Equal(t, "olha@example.org", order.DonatorEmail)

	require.Len(t, mail.admin, 1)
	assert.Contains(t, mail.admin[0].Subject, "Step 2")
	require.Len(t, mail.donor, 1)
	assert.Equal(t, "olha@example.org", mail.donor[0].To)
	assert.Contains(t, mail.donor[0].Subject, "Confirmation")
}

func TestDonorDetails_UnknownOrder(t *testing.T) {
	service, _, _, _ := newOrderFixture(t)

	err := service.DonorDetails(context.Background(), request_models.DonorDetailsRequest{
		OrderID: "00000000-0000-0000-0000-000000000001",
	})
	require.ErrorIs(t, err, utils.ErrOrderNotFound)
}

func TestSubscriptionStats(t *testing.T) {
	service, orders, projects, _ := newOrderFixture(t)
	project := projects.add(&db_models.Project{Slug: "well", State: db_models.ProjectPublished})

	orders.add(&db_models.Order{ProjectID: project.ID, Amount: 50, Status: db_models.OrderStatusSubscribed})
	orders.add(&db_models.Order{ProjectID: project.ID, Amount: 100, Status: db_models.OrderStatusSubscribed})
	orders.add(&db_models.Order{ProjectID: project.ID, Amount: 300, Status: db_models.OrderStatusSuccess})
	orders.add(&db_models.Order{ProjectID: project.ID, Amount: 20, Status: db_models.OrderStatusCreated})

	stats, err := service.SubscriptionStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.DonatorsAmount)
	assert.Equal(t, float64(150), stats.MoneyAmount)
}

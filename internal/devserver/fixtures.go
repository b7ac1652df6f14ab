package devserver

import (
	"context"
	"math/rand"
	"time"

	"parceldash/internal/domain"
)

// Seed loads a representative data set: orders across the whole status
// progression, onboarded riders in several states, a pending application
// queue and a customer base. Online riders get a starting position.
func Seed(ctx context.Context, repo *Repo, locations LocationStore) error {
	now := time.Now()
	rating := 5

	alice := &domain.Customer{
		ID:          "customer-1",
		Name:        strPtr("Alice Mwangi"),
		Email:       "alice@example.com",
		Status:      domain.CustomerStatusActive,
		IsVerified:  true,
		TotalOrders: 14,
		TotalSpent:  212.50,
		CreatedAt:   now.Add(-90 * 24 * time.Hour),
	}
	bob := &domain.Customer{
		ID:          "customer-2",
		Email:       "bob@example.com",
		Status:      domain.CustomerStatusInactive,
		IsVerified:  false,
		TotalOrders: 1,
		TotalSpent:  8.00,
		CreatedAt:   now.Add(-30 * 24 * time.Hour),
	}
	carol := &domain.Customer{
		ID:          "customer-3",
		Name:        strPtr("Carol Otieno"),
		Email:       "carol@example.com",
		Status:      domain.CustomerStatusSuspended,
		IsVerified:  true,
		TotalOrders: 7,
		TotalSpent:  96.75,
		CreatedAt:   now.Add(-60 * 24 * time.Hour),
	}
	for _, c := range []*domain.Customer{alice, bob, carol} {
		repo.PutCustomer(c)
	}

	riders := []*domain.Rider{
		{
			ID:           "rider-1",
			Name:         "David Kim",
			Email:        "david@parceldash.dev",
			Status:       domain.RiderStatusOnline,
			Availability: true,
			VehicleDetails: domain.VehicleDetails{
				Type: "motorbike", Model: "Boxer 150", LicensePlate: "KMC 412D",
			},
			Performance: &domain.PerformanceMetrics{TotalDeliveries: 320, CompletionRate: 0.97, AverageRating: 4.8},
			CreatedAt:   now.Add(-200 * 24 * time.Hour),
		},
		{
			ID:           "rider-2",
			Name:         "Esther Njeri",
			Email:        "esther@parceldash.dev",
			Status:       domain.RiderStatusOnline,
			Availability: false,
			VehicleDetails: domain.VehicleDetails{
				Type: "bicycle",
			},
			Performance: &domain.PerformanceMetrics{TotalDeliveries: 58, CompletionRate: 0.91, AverageRating: 4.5},
			CreatedAt:   now.Add(-40 * 24 * time.Hour),
		},
		{
			ID:           "rider-3",
			Name:         "Frank Ouma",
			Email:        "frank@parceldash.dev",
			Status:       domain.RiderStatusOffline,
			Availability: false,
			VehicleDetails: domain.VehicleDetails{
				Type: "van", Model: "Probox", LicensePlate: "KDA 001A",
			},
			CreatedAt: now.Add(-300 * 24 * time.Hour),
		},
		{
			ID:     "rider-4",
			Name:   "Grace Wanjiku",
			Email:  "grace@parceldash.dev",
			Status: domain.RiderStatusSuspended,
			VehicleDetails: domain.VehicleDetails{
				Type: "motorbike",
			},
			CreatedAt: now.Add(-100 * 24 * time.Hour),
		},
	}
	for _, r := range riders {
		repo.PutRider(r)
	}

	// Nairobi CBD starting positions for the online riders.
	if err := locations.UpdateLocation(ctx, "rider-1", -1.2864, 36.8172); err != nil {
		return err
	}
	if err := locations.UpdateLocation(ctx, "rider-2", -1.2921, 36.8219); err != nil {
		return err
	}

	pending := []*domain.PendingRider{
		{
			ID:    "application-1",
			Name:  "Henry Baraka",
			Email: "henry@example.com",
			VehicleDetails: domain.VehicleDetails{
				Type: "motorbike", Model: "TVS HLX", LicensePlate: "KMD 889F",
			},
			NationalID: "30112244",
			IsVerified: true,
			Status:     domain.RiderStatusPending,
			CreatedAt:  now.Add(-5 * 24 * time.Hour),
		},
		{
			ID:    "application-2",
			Name:  "Irene Achieng",
			Email: "irene@example.com",
			VehicleDetails: domain.VehicleDetails{
				Type: "bicycle",
			},
			NationalID: "28990011",
			IsVerified: false,
			Status:     domain.RiderStatusPending,
			CreatedAt:  now.Add(-2 * 24 * time.Hour),
		},
	}
	for _, p := range pending {
		repo.PutPending(p)
	}

	orders := []*domain.Order{
		{
			ID:              "order-1",
			TrackingNumber:  "PD-2024-0001",
			Status:          domain.OrderStatusPending,
			PaymentStatus:   domain.PaymentStatusPending,
			ParcelSize:      domain.ParcelSizeSmall,
			PickupAddress:   "Kimathi Street 12, Nairobi",
			DeliveryAddress: "Ngong Road 45, Nairobi",
			Customer:        &domain.OrderCustomer{ID: alice.ID, Name: "Alice Mwangi", Email: alice.Email},
			DeliveryFee:     3.50,
			CreatedAt:       now.Add(-2 * time.Hour),
			UpdatedAt:       now.Add(-2 * time.Hour),
		},
		{
			ID:              "order-2",
			TrackingNumber:  "PD-2024-0002",
			Status:          domain.OrderStatusInTransit,
			PaymentStatus:   domain.PaymentStatusPaid,
			ParcelSize:      domain.ParcelSizeMedium,
			PickupAddress:   "Moi Avenue 3, Nairobi",
			DeliveryAddress: "Westlands Square, Nairobi",
			Customer:        &domain.OrderCustomer{ID: carol.ID, Name: "Carol Otieno", Email: carol.Email},
			Rider:           &domain.OrderRider{ID: "rider-1", Name: "David Kim"},
			DeliveryFee:     5.00,
			CreatedAt:       now.Add(-26 * time.Hour),
			UpdatedAt:       now.Add(-1 * time.Hour),
		},
		{
			ID:              "order-3",
			TrackingNumber:  "PD-2024-0003",
			Status:          domain.OrderStatusDelivered,
			PaymentStatus:   domain.PaymentStatusPaid,
			ParcelSize:      domain.ParcelSizeLarge,
			PickupAddress:   "Industrial Area, Nairobi",
			DeliveryAddress: "Karen Plains Rd, Nairobi",
			Customer:        &domain.OrderCustomer{ID: alice.ID, Name: "Alice Mwangi", Email: alice.Email},
			Rider:           &domain.OrderRider{ID: "rider-3", Name: "Frank Ouma"},
			DeliveryFee:     12.00,
			Rating:          &rating,
			CreatedAt:       now.Add(-4 * 24 * time.Hour),
			UpdatedAt:       now.Add(-3 * 24 * time.Hour),
		},
		{
			ID:              "order-4",
			TrackingNumber:  "PD-2024-0004",
			Status:          domain.OrderStatusCancelled,
			PaymentStatus:   domain.PaymentStatusRefunded,
			ParcelSize:      domain.ParcelSizeSmall,
			PickupAddress:   "Tom Mboya St 9, Nairobi",
			DeliveryAddress: "South B, Nairobi",
			Customer:        &domain.OrderCustomer{ID: bob.ID, Name: "", Email: bob.Email},
			DeliveryFee:     3.00,
			CreatedAt:       now.Add(-10 * 24 * time.Hour),
			UpdatedAt:       now.Add(-9 * 24 * time.Hour),
		},
	}
	for _, o := range orders {
		repo.PutOrder(o)
	}

	return nil
}

// StartSimulator jitters online riders' positions on the given interval so
// the map view has movement to poll. It stops when ctx is cancelled.
func StartSimulator(ctx context.Context, repo *Repo, locations LocationStore, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Second
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				online, _, _ := repo.ListRiders(listFilter{limit: 100}, true)
				for _, r := range online {
					pos, err := locations.GetLocation(ctx, r.ID)
					if err != nil || pos == nil {
						continue
					}
					lat := pos.Lat + (rand.Float64()-0.5)*0.002
					lng := pos.Lng + (rand.Float64()-0.5)*0.002
					_ = locations.UpdateLocation(ctx, r.ID, lat, lng)
				}
			}
		}
	}()
}

func strPtr(s string) *string { return &s }

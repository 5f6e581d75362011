//go:build unit

package view_test

import (
	"context"
	"testing"

	"ev-campus-client/internal/client"
	"ev-campus-client/internal/pkg/errs"
	"ev-campus-client/internal/view"
	"ev-campus-client/tests/common/builder"
	clientmock "ev-campus-client/tests/mock/client"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDashboardLoad(t *testing.T) {
	t.Run("caches the remote list in server order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ops := clientmock.NewMockOperations(ctrl)
		bookings := builder.NewBookingBuilder().BuildList(3)
		ops.EXPECT().ListMyBookings(gomock.Any()).Return(bookings, nil)

		d := view.NewDashboard()
		assert.False(t, d.Loaded())
		require.NoError(t, d.Load(context.Background(), ops))

		assert.True(t, d.Loaded())
		if diff := cmp.Diff(bookings, d.Bookings()); diff != "" {
			t.Errorf("bookings mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("failed refresh keeps the previous cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ops := clientmock.NewMockOperations(ctrl)
		bookings := builder.NewBookingBuilder().BuildList(2)
		gomock.InOrder(
			ops.EXPECT().ListMyBookings(gomock.Any()).Return(bookings, nil),
			ops.EXPECT().ListMyBookings(gomock.Any()).
				Return(nil, errs.Mark(errs.New("boom"), client.ErrTransport)),
		)

		d := view.NewDashboard()
		require.NoError(t, d.Load(context.Background(), ops))
		require.Error(t, d.Load(context.Background(), ops))

		assert.Len(t, d.Bookings(), 2)
	})
}

func TestDashboardRemove(t *testing.T) {
	ctrl := gomock.NewController(t)
	ops := clientmock.NewMockOperations(ctrl)
	bookings := builder.NewBookingBuilder().BuildList(3)
	ops.EXPECT().ListMyBookings(gomock.Any()).Return(bookings, nil)

	d := view.NewDashboard()
	require.NoError(t, d.Load(context.Background(), ops))

	d.Remove(bookings[1].ID)

	remaining := d.Bookings()
	require.Len(t, remaining, 2)
	assert.Equal(t, bookings[0].ID, remaining[0].ID)
	assert.Equal(t, bookings[2].ID, remaining[1].ID)

	// Unknown id is a no-op.
	d.Remove(9999)
	assert.Len(t, d.Bookings(), 2)
}

func TestDashboardCO2Savings(t *testing.T) {
	cases := []struct {
		name     string
		bookings int
		expected string
	}{
		{name: "no bookings", bookings: 0, expected: "0.00"},
		{name: "one booking", bookings: 1, expected: "0.61"},
		{name: "three bookings", bookings: 3, expected: "1.83"},
		{name: "twenty six bookings", bookings: 26, expected: "15.86"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ops := clientmock.NewMockOperations(ctrl)
			ops.EXPECT().ListMyBookings(gomock.Any()).
				Return(builder.NewBookingBuilder().BuildList(tc.bookings), nil)

			d := view.NewDashboard()
			require.NoError(t, d.Load(context.Background(), ops))
			assert.Equal(t, tc.expected, d.CO2SavingsKg())
		})
	}
}
